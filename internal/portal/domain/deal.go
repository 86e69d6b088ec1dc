package domain

import "time"

// Deal types. Subtype is only meaningful for real estate deals and is
// cleared for any other type.
const (
	DealTypeRealEstate = "REAL_ESTATE"
	DealTypePreIPO     = "PRE_IPO"
)

// Deal statuses. Draft deals are only reachable through the admin surface.
const (
	DealStatusPublished = "PUBLISHED"
	DealStatusDraft     = "DRAFT"
)

// Interest statuses.
const (
	InterestStatusInterested = "INTERESTED"
	InterestStatusWithdrawn  = "WITHDRAWN"
)

// Deal is an investment offering managed by admins. Investors only ever see
// published deals.
type Deal struct {
	ID                  string
	Name                string
	DealType            string
	DealSubtype         string
	DealStage           string
	Sponsors            string
	CloseDate           *time.Time
	OfferingSize        *float64
	UnitPrice           *float64
	Status              string
	FundingInstructions string
	DetailsJSON         string // free-form per-deal attributes, raw JSON
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ValidDealType reports whether t is a recognised deal type.
func ValidDealType(t string) bool {
	return t == DealTypeRealEstate || t == DealTypePreIPO
}

// ValidDealStatus reports whether s is a recognised deal status.
func ValidDealStatus(s string) bool {
	return s == DealStatusPublished || s == DealStatusDraft
}

// DealInterest records that a user flagged interest in a deal. At most one
// row exists per (deal, user); re-expressing interest revives a withdrawn
// row instead of inserting a second one.
type DealInterest struct {
	ID        string
	DealID    string
	UserID    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
