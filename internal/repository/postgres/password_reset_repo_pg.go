package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hrbot/backend/internal/domain"
	"github.com/hrbot/backend/internal/repository/ports"
)

type PasswordResetRepository struct {
	db *sqlx.DB
}

func NewPasswordResetRepo(db *sqlx.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, email, otp string, expiresAt time.Time) (*domain.PasswordReset, error) {
	const query = `
        INSERT INTO password_resets (email, otp, expires_at, used)
        VALUES ($1, $2, $3, FALSE)
        RETURNING id, email, otp, expires_at, used
    `
	row := r.db.QueryRowxContext(ctx, query, email, otp, expiresAt)
	var reset domain.PasswordReset
	if err := row.StructScan(&reset); err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) FindUnused(ctx context.Context, email, otp string) (*domain.PasswordReset, error) {
	const query = `
        SELECT id, email, otp, expires_at, used
        FROM password_resets
        WHERE email = $1 AND otp = $2 AND used = FALSE
        ORDER BY id
        LIMIT 1
    `
	var reset domain.PasswordReset
	if err := r.db.GetContext(ctx, &reset, query, email, otp); err != nil {
		return nil, err
	}
	return &reset, nil
}

// MarkUsed claims the row only if it is still unused, so two concurrent
// verifications cannot both succeed. A lost claim reports sql.ErrNoRows.
func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id int64) error {
	const query = `
        UPDATE password_resets
        SET used = TRUE
        WHERE id = $1 AND used = FALSE
    `
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var _ ports.PasswordResetRepository = (*PasswordResetRepository)(nil)
