package mail

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// OTPMailer delivers password-reset codes through SendGrid.
type OTPMailer struct {
	client *sendgrid.Client
	from   string
}

func NewOTPMailer(apiKey, from string) *OTPMailer {
	return &OTPMailer{
		client: sendgrid.NewSendClient(strings.TrimSpace(apiKey)),
		from:   strings.TrimSpace(from),
	}
}

func (m *OTPMailer) SendOTP(ctx context.Context, email, otp string) error {
	if m == nil || m.client == nil {
		return errors.New("mailer not configured")
	}
	if m.from == "" {
		return errors.New("mailer missing configuration")
	}

	subject := "Your HR Bot Password Reset Code"
	plain := fmt.Sprintf("Your verification code is %s. This code will expire in 10 minutes. If you didn't request this, please ignore this email.", otp)
	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h2 style="color: #4F46E5;">Password Reset Code</h2>
        <p>You requested a password reset for your HR Bot account.</p>
        <p>Your verification code is:</p>
        <h1 style="color: #4F46E5; font-size: 32px; letter-spacing: 5px;">%s</h1>
        <p>This code will expire in 10 minutes.</p>
        <p>If you didn't request this, please ignore this email.</p>
        <hr style="border: 1px solid #e5e5e5; margin: 20px 0;">
        <p style="color: #666; font-size: 14px;">HR Bot System</p>
    </div>`, otp)

	from := mail.NewEmail("HR Bot", m.from)
	to := mail.NewEmail("", email)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed with status %d", response.StatusCode)
	}
	return nil
}

// ConsoleOTPMailer logs codes instead of sending email. It stands in for
// SendGrid in development environments without an API key.
type ConsoleOTPMailer struct{}

func (ConsoleOTPMailer) SendOTP(ctx context.Context, email, otp string) error {
	log.Printf("OTP for %s: %s", email, otp)
	return nil
}
