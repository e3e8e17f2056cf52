package http

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid OTP"`
}

// SuccessResponse denotes a simple success flag.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// MessageResponse carries a success flag plus a human-readable message.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"OTP sent to email"`
}

// FirstLoginResponse reports whether the user must still change the
// provisional password.
type FirstLoginResponse struct {
	FirstLogin bool `json:"firstLogin" example:"true"`
}

// CheckFirstLoginRequest identifies the user by Clerk id.
type CheckFirstLoginRequest struct {
	UserID string `json:"userId" example:"user_2abcDEFghiJKLmnop"`
}

// UpdateFirstLoginRequest carries the new first-login flag value.
type UpdateFirstLoginRequest struct {
	UserID     string `json:"userId" example:"user_2abcDEFghiJKLmnop"`
	FirstLogin bool   `json:"firstLogin" example:"false"`
}

// SendOTPRequest asks for a password-reset code.
type SendOTPRequest struct {
	Email string `json:"email" example:"user@example.com"`
}

// VerifyOTPRequest redeems a password-reset code.
type VerifyOTPRequest struct {
	Email string `json:"email" example:"user@example.com"`
	OTP   string `json:"otp" example:"123456"`
}

// WebhookAckResponse acknowledges receipt of a webhook event.
type WebhookAckResponse struct {
	Received bool `json:"received" example:"true"`
}
