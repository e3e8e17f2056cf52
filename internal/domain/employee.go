package domain

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ClerkID    string    `db:"clerk_id" json:"clerk_id"`
	Email      string    `db:"email" json:"email"`
	Name       string    `db:"name" json:"name"`
	EmployeeID *string   `db:"employee_id" json:"employee_id,omitempty"`
	HourlyRate *float64  `db:"hourly_rate" json:"hourly_rate,omitempty"`
	Role       string    `db:"role" json:"role"`
	FirstLogin bool      `db:"first_login" json:"first_login"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
