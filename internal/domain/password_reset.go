package domain

import "time"

type PasswordReset struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	OTP       string    `db:"otp" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	Used      bool      `db:"used" json:"used"`
}
