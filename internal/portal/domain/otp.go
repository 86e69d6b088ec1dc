package domain

import "time"

// OTPChallenge is a pending email login challenge. A new challenge replaces
// any earlier one for the same user, so at most one is live per account.
type OTPChallenge struct {
	ID        string
	UserID    string
	Code      string // fingerprint of the emailed 6-digit code, never plaintext
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (c OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
