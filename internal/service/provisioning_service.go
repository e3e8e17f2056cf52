package service

import (
	"context"
	"strings"

	"github.com/hrbot/backend/internal/domain"
	"github.com/hrbot/backend/internal/repository/ports"
)

const (
	defaultEmployeeName = "New Employee"
	defaultEmployeeRole = "employee"
)

// NewUserEvent carries the fields of an identity-provider "user.created"
// event that provisioning uses.
type NewUserEvent struct {
	ClerkID   string
	Emails    []string
	FirstName string
	LastName  string
}

type ProvisioningService struct {
	employees ports.EmployeeRepository
}

func NewProvisioningService(employees ports.EmployeeRepository) *ProvisioningService {
	return &ProvisioningService{employees: employees}
}

// ProvisionEmployee creates the employee row for a newly registered
// identity. The first listed email address is used; a blank name falls
// back to "New Employee". The first-login flag is left to the store
// default of true.
func (s *ProvisioningService) ProvisionEmployee(ctx context.Context, event NewUserEvent) (*domain.Employee, error) {
	email := ""
	if len(event.Emails) > 0 {
		email = event.Emails[0]
	}
	name := strings.TrimSpace(event.FirstName + " " + event.LastName)
	if name == "" {
		name = defaultEmployeeName
	}

	employee, err := s.employees.Create(ctx, event.ClerkID, email, name, defaultEmployeeRole)
	if err != nil {
		// A redelivered user.created event trips the clerk_id unique
		// constraint; the employee row already exists.
		if isUniqueViolation(err) {
			return s.employees.FindByClerkID(ctx, event.ClerkID)
		}
		return nil, err
	}
	return employee, nil
}
