package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hrbot/backend/internal/domain"
	"github.com/hrbot/backend/internal/repository/ports"
)

type EmployeeRepository struct {
	db *sqlx.DB
}

func NewEmployeeRepo(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, clerkID, email, name, role string) (*domain.Employee, error) {
	const query = `
        INSERT INTO employees (clerk_id, email, name, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, clerk_id, email, name, employee_id, hourly_rate, role, first_login, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, clerkID, email, name, role)
	var employee domain.Employee
	if err := row.StructScan(&employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByClerkID(ctx context.Context, clerkID string) (*domain.Employee, error) {
	const query = `
        SELECT id, clerk_id, email, name, employee_id, hourly_rate, role, first_login, created_at
        FROM employees
        WHERE clerk_id = $1
    `
	var employee domain.Employee
	if err := r.db.GetContext(ctx, &employee, query, clerkID); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) SetFirstLogin(ctx context.Context, clerkID string, firstLogin bool) error {
	const query = `
        UPDATE employees
        SET first_login = $2
        WHERE clerk_id = $1
    `
	result, err := r.db.ExecContext(ctx, query, clerkID, firstLogin)
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

var _ ports.EmployeeRepository = (*EmployeeRepository)(nil)
