package ports

import (
	"context"

	"github.com/hrbot/backend/internal/domain"
)

type EmployeeRepository interface {
	Create(ctx context.Context, clerkID, email, name, role string) (*domain.Employee, error)
	FindByClerkID(ctx context.Context, clerkID string) (*domain.Employee, error)
	SetFirstLogin(ctx context.Context, clerkID string, firstLogin bool) error
}
