package domain

import "time"

// User roles. Admins manage deals, users, and documents for other accounts.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Username     string
	Email        string     // unique, lowercased
	PasswordHash string     // bcrypt encoded
	Role         string     // "User" or "Admin"
	MFAEnabled   *time.Time // Timestamp when TOTP was enabled (nullable)
	MFASecret    *string    // TOTP secret (nullable, base32 encoded)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display and email bodies.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
