package ports

import (
	"context"
	"time"

	"github.com/hrbot/backend/internal/domain"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, email, otp string, expiresAt time.Time) (*domain.PasswordReset, error)
	FindUnused(ctx context.Context, email, otp string) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, id int64) error
}
