package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrbot/backend/internal/repository/ports"
	"github.com/hrbot/backend/internal/util"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrOTPInvalid       = errors.New("otp invalid")
	ErrOTPExpired       = errors.New("otp expired")
)

// OTPSender delivers a one-time passcode to an employee's email address.
type OTPSender interface {
	SendOTP(ctx context.Context, email, otp string) error
}

type AuthServiceConfig struct {
	OTPTTL    time.Duration
	OTPLength int
}

const (
	defaultOTPTTL    = 10 * time.Minute
	defaultOTPLength = 6
)

type AuthService struct {
	employees ports.EmployeeRepository
	resets    ports.PasswordResetRepository
	mailer    OTPSender

	otpTTL    time.Duration
	otpLength int
	now       func() time.Time
}

func NewAuthService(
	employees ports.EmployeeRepository,
	resets ports.PasswordResetRepository,
	mailer OTPSender,
	cfg AuthServiceConfig,
) *AuthService {
	ttl := cfg.OTPTTL
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}
	length := cfg.OTPLength
	if length <= 0 {
		length = defaultOTPLength
	}
	return &AuthService{
		employees: employees,
		resets:    resets,
		mailer:    mailer,
		otpTTL:    ttl,
		otpLength: length,
		now:       time.Now,
	}
}

// CheckFirstLogin reports whether the employee still has to change the
// provisional password. Unknown users report true so the client routes
// them through the change-password flow.
func (s *AuthService) CheckFirstLogin(ctx context.Context, userID string) (bool, error) {
	employee, err := s.employees.FindByClerkID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return true, nil
		}
		return false, err
	}
	return employee.FirstLogin, nil
}

func (s *AuthService) UpdateFirstLogin(ctx context.Context, userID string, firstLogin bool) error {
	if err := s.employees.SetFirstLogin(ctx, userID, firstLogin); err != nil {
		if isNotFound(err) {
			return ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

// IssueOTP stores a fresh passcode for email and mails it out. The row is
// persisted before the send; a delivery failure surfaces as an error but
// leaves the stored code redeemable.
func (s *AuthService) IssueOTP(ctx context.Context, email string) error {
	otp, err := util.GenerateNumericOTP(s.otpLength)
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	expiresAt := s.now().UTC().Add(s.otpTTL)
	if _, err := s.resets.Create(ctx, email, otp, expiresAt); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}
	if err := s.mailer.SendOTP(ctx, email, otp); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}
	return nil
}

// VerifyOTP redeems the code issued to email. Expired codes are reported
// as expired and stay unredeemed; any other failure to match reports
// invalid. At most one concurrent verification of the same code succeeds.
func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) error {
	reset, err := s.resets.FindUnused(ctx, email, otp)
	if err != nil {
		if isNotFound(err) {
			return ErrOTPInvalid
		}
		return err
	}
	if !reset.ExpiresAt.After(s.now().UTC()) {
		return ErrOTPExpired
	}
	if err := s.resets.MarkUsed(ctx, reset.ID); err != nil {
		if isNotFound(err) {
			// a concurrent verification claimed the row first
			return ErrOTPInvalid
		}
		return err
	}
	return nil
}
