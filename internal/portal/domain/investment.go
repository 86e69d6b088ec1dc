package domain

import "time"

// Investment statuses.
const (
	InvestmentStatusActive = "Active"
	InvestmentStatusExited = "Exited"
)

// Investment is a position a user holds in a named deal. Rows are always
// scoped to their owner; admins use the explicit for-user operations.
type Investment struct {
	ID                string
	UserID            string
	DealName          string
	InvestmentTotal   float64
	DistributionTotal float64
	Status            string
	CloseDate         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// InvestmentSummary aggregates a user's positions for the dashboard.
type InvestmentSummary struct {
	InvestedTotal     float64
	DistributionTotal float64
	Count             int
}
