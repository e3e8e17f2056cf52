package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrbot/backend/internal/domain"
)

func TestProvisionEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("maps event fields", func(t *testing.T) {
		repo := &fakeEmployeeRepo{}
		svc := NewProvisioningService(repo)

		employee, err := svc.ProvisionEmployee(ctx, NewUserEvent{
			ClerkID:   "user_2abc",
			Emails:    []string{"jane@example.com", "jane.alt@example.com"},
			FirstName: "Jane",
			LastName:  "Doe",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.createCalls) != 1 {
			t.Fatalf("expected one insert, got %d", len(repo.createCalls))
		}
		call := repo.createCalls[0]
		if call.clerkID != "user_2abc" || call.email != "jane@example.com" || call.name != "Jane Doe" || call.role != "employee" {
			t.Fatalf("unexpected insert: %+v", call)
		}
		if employee == nil || !employee.FirstLogin {
			t.Fatalf("expected provisioned employee with first login set, got %+v", employee)
		}
	})

	t.Run("no email addresses", func(t *testing.T) {
		repo := &fakeEmployeeRepo{}
		svc := NewProvisioningService(repo)

		if _, err := svc.ProvisionEmployee(ctx, NewUserEvent{ClerkID: "user_2abc"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createCalls[0].email != "" {
			t.Fatalf("expected empty email, got %q", repo.createCalls[0].email)
		}
	})

	t.Run("blank name uses placeholder", func(t *testing.T) {
		repo := &fakeEmployeeRepo{}
		svc := NewProvisioningService(repo)

		if _, err := svc.ProvisionEmployee(ctx, NewUserEvent{ClerkID: "user_2abc"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createCalls[0].name != "New Employee" {
			t.Fatalf("expected placeholder name, got %q", repo.createCalls[0].name)
		}
	})

	t.Run("single name part", func(t *testing.T) {
		repo := &fakeEmployeeRepo{}
		svc := NewProvisioningService(repo)

		if _, err := svc.ProvisionEmployee(ctx, NewUserEvent{ClerkID: "user_2abc", FirstName: "Jane"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.createCalls[0].name != "Jane" {
			t.Fatalf("expected trimmed single name, got %q", repo.createCalls[0].name)
		}
	})

	t.Run("redelivered event returns existing employee", func(t *testing.T) {
		existing := &domain.Employee{ClerkID: "user_2abc", Email: "jane@example.com"}
		repo := &fakeEmployeeRepo{
			createErr:  &pgconn.PgError{Code: "23505"},
			findResult: existing,
		}
		svc := NewProvisioningService(repo)

		employee, err := svc.ProvisionEmployee(ctx, NewUserEvent{ClerkID: "user_2abc", Emails: []string{"jane@example.com"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if employee == nil || employee.ClerkID != "user_2abc" {
			t.Fatalf("expected existing employee, got %+v", employee)
		}
		if repo.findInput != "user_2abc" {
			t.Fatalf("expected lookup of the existing employee, got %q", repo.findInput)
		}
	})

	t.Run("propagates insert failure", func(t *testing.T) {
		repo := &fakeEmployeeRepo{createErr: errors.New("insert failed")}
		svc := NewProvisioningService(repo)

		if _, err := svc.ProvisionEmployee(ctx, NewUserEvent{ClerkID: "user_2abc"}); err == nil {
			t.Fatal("expected error from store")
		}
	})
}
