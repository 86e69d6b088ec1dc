package domain

import "time"

// ProfileTypeIndividual is the type given to auto-created default profiles.
const ProfileTypeIndividual = "INDIVIDUAL"

// Profile is an investment entity a user invests through, e.g. an LLC,
// trust, or the individual themselves.
type Profile struct {
	ID                string
	UserID            string
	EntityName        string
	Jurisdiction      string
	TaxClassification string
	ProfileType       string
	ContactEmail      string
	ContactPhone      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
