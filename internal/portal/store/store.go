package store

import (
	"context"
	"errors"
	"time"

	"github.com/victorygp/portal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a Tx scope for multi-step operations that must be atomic.
type Store interface {
	Users() Users
	OTPChallenges() OTPChallenges
	Investments() Investments
	Profiles() Profiles
	Documents() Documents
	Deals() Deals

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up a user by lowercased email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists on a duplicate email or username.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users ordered by email. Admin directory.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// UpdateMFASecret sets the TOTP secret for a user.
	UpdateMFASecret(ctx context.Context, userID string, secret string) error

	// EnableMFA marks MFA as enabled (sets mfa_enabled timestamp).
	EnableMFA(ctx context.Context, userID string) error

	// DisableMFA clears mfa_enabled and mfa_secret.
	DisableMFA(ctx context.Context, userID string) error

	// DeleteUser cascades to the user's rows (per schema).
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type OTPChallenges interface {
	// ReplaceOTPChallenge deletes any live challenge for the user and inserts
	// the new one, so at most one challenge exists per account.
	ReplaceOTPChallenge(ctx context.Context, c domain.OTPChallenge) error

	// GetOTPChallengeByUser returns the live challenge for a user.
	GetOTPChallengeByUser(ctx context.Context, userID string) (domain.OTPChallenge, error)

	// DeleteOTPChallenge consumes a challenge after verification.
	DeleteOTPChallenge(ctx context.Context, id string) error

	// DeleteExpiredOTPChallenges is housekeeping.
	DeleteExpiredOTPChallenges(ctx context.Context, now time.Time) error
}

type Investments interface {
	// CreateInvestment inserts a new position.
	CreateInvestment(ctx context.Context, inv domain.Investment) error

	// GetInvestmentByID returns a position regardless of owner; ownership
	// checks live in the service layer.
	GetInvestmentByID(ctx context.Context, id string) (domain.Investment, error)

	// ListInvestmentsByUser returns a user's positions, newest first.
	ListInvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error)

	// ListAllInvestments returns every position, newest first. Admin view.
	ListAllInvestments(ctx context.Context) ([]domain.Investment, error)

	// UpdateInvestment rewrites the mutable fields and bumps updated_at.
	UpdateInvestment(ctx context.Context, inv domain.Investment) error

	// DeleteInvestment removes a position.
	DeleteInvestment(ctx context.Context, id string) error

	// SummarizeInvestmentsByUser aggregates totals for the dashboard.
	SummarizeInvestmentsByUser(ctx context.Context, userID string) (domain.InvestmentSummary, error)
}

type Profiles interface {
	CreateProfile(ctx context.Context, p domain.Profile) error
	GetProfileByID(ctx context.Context, id string) (domain.Profile, error)
	ListProfilesByUser(ctx context.Context, userID string) ([]domain.Profile, error)

	// ListAllProfiles returns every entity, newest first. Admin view.
	ListAllProfiles(ctx context.Context) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, p domain.Profile) error
	DeleteProfile(ctx context.Context, id string) error
}

type Documents interface {
	// CreateDocument inserts document metadata. Returns ErrAlreadyExists when
	// the recipient already has a document with the same stored name.
	CreateDocument(ctx context.Context, d domain.Document) error

	GetDocumentByID(ctx context.Context, id string) (domain.Document, error)

	// ListDocumentsByRecipient returns the documents a user can see, as
	// recipient or as uploader, newest first.
	ListDocumentsByRecipient(ctx context.Context, userID string) ([]domain.Document, error)

	// ListAllDocuments returns every document, newest first. Admin view.
	ListAllDocuments(ctx context.Context) ([]domain.Document, error)

	// NameExistsForRecipient reports whether the recipient already holds a
	// document with this stored name. Used for collision renaming.
	NameExistsForRecipient(ctx context.Context, userID, name string) (bool, error)

	DeleteDocument(ctx context.Context, id string) error
}

type Deals interface {
	CreateDeal(ctx context.Context, d domain.Deal) error
	GetDealByID(ctx context.Context, id string) (domain.Deal, error)

	// ListDeals returns deals newest first, optionally filtered by status.
	ListDeals(ctx context.Context, status string) ([]domain.Deal, error)

	UpdateDeal(ctx context.Context, d domain.Deal) error
	DeleteDeal(ctx context.Context, id string) error

	// CreateInterest inserts an interest row. Returns ErrAlreadyExists when
	// the (deal, user) pair already has one.
	CreateInterest(ctx context.Context, i domain.DealInterest) error

	// GetInterest returns the interest row for a (deal, user) pair.
	GetInterest(ctx context.Context, dealID, userID string) (domain.DealInterest, error)

	// UpdateInterestStatus flips a row between interested and withdrawn.
	UpdateInterestStatus(ctx context.Context, id, status string) error

	// ListInterestsByUser returns all of a user's interest rows.
	ListInterestsByUser(ctx context.Context, userID string) ([]domain.DealInterest, error)

	// ListInterestsByDeal returns all interest rows for a deal. Admin view.
	ListInterestsByDeal(ctx context.Context, dealID string) ([]domain.DealInterest, error)
}
