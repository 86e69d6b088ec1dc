package domain

import "time"

// Document types. Uploads default to OTHER.
const (
	DocumentTypeLLC       = "LLC"
	DocumentTypeEIN       = "EIN"
	DocumentTypeVoidCheck = "VOID_CHECK"
	DocumentTypeTax       = "TAX"
	DocumentTypeOther     = "OTHER"
)

// ValidDocumentType reports whether t is a recognised document type.
func ValidDocumentType(t string) bool {
	switch t {
	case DocumentTypeLLC, DocumentTypeEIN, DocumentTypeVoidCheck,
		DocumentTypeTax, DocumentTypeOther:
		return true
	}
	return false
}

// Document is a stored PDF. UploaderID is who pushed the bytes; RecipientID
// is who the document is for. They differ when an admin uploads on a user's
// behalf. The DealID/ProfileID/InvestmentID linkages are optional; DealName
// and ProfileName carry free-text context when no row linkage exists.
type Document struct {
	ID             string
	Name           string // stored object name, unique per recipient
	Label          string // user-facing label, optional
	DocumentType   string
	RequirementKey string // onboarding checklist slot this document fills
	DealName       string
	ProfileName    string
	DealID         string
	ProfileID      string
	InvestmentID   string
	FilePath       string // key inside the blob bucket
	ContentType    string
	SizeBytes      int64
	UploaderID     string
	UploadedByRole string
	RecipientID    string
	UploadedAt     time.Time
}

// ViewableBy reports whether a user may fetch this document's bytes.
func (d Document) ViewableBy(u User) bool {
	return u.IsAdmin() || d.UploaderID == u.ID || d.RecipientID == u.ID
}
