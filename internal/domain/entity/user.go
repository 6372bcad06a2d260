package entity

import (
	"time"
)

// User represents a registered account in the system
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	DisplayName   string    `json:"display_name"`
	EmailVerified bool      `json:"email_verified"`
	// Verification is non-nil iff an email verification is pending.
	// Token and expiry always travel together inside it.
	Verification *PendingVerification `json:"-"`
	CreatedAt    time.Time            `json:"created_at"`
}

// PendingVerification holds the opaque verification token issued for an
// unverified account together with its expiry. A verified account must
// never carry one.
type PendingVerification struct {
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
// The comparison is strict: a token redeemed exactly at ExpiresAt is valid.
func (p *PendingVerification) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// HasPendingVerification reports whether the user still has a live
// verification token.
func (u *User) HasPendingVerification() bool {
	return u.Verification != nil
}
