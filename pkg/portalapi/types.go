package portalapi

import "time"

// Request/response bodies shared by the HTTP handlers and the e2e tests.

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginInitRequest doubles as the email-existence probe (password omitted)
// and the password step that triggers the OTP dispatch.
type LoginInitRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type LoginInitResponse struct {
	Exists  bool `json:"exists"`
	OTPSent bool `json:"otp_sent,omitempty"`
}

type LoginVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type LoginVerifyResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserInfo `json:"user"`
}

type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type MFAEnrollResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
	Issuer     string `json:"issuer"`
	Account    string `json:"account"`
}

type MFAVerifyRequest struct {
	Code string `json:"code"`
}

type InvestmentRequest struct {
	DealName          string     `json:"deal_name"`
	InvestmentTotal   float64    `json:"investment_total"`
	DistributionTotal float64    `json:"distribution_total"`
	Status            string     `json:"status,omitempty"`
	CloseDate         *time.Time `json:"close_date,omitempty"`
}

type InvestmentResponse struct {
	ID                string     `json:"id"`
	DealName          string     `json:"deal_name"`
	InvestmentTotal   float64    `json:"investment_total"`
	DistributionTotal float64    `json:"distribution_total"`
	Status            string     `json:"status"`
	CloseDate         *time.Time `json:"close_date,omitempty"`
	UserID            string     `json:"user_id,omitempty"`
}

type InvestmentSummaryResponse struct {
	InvestedTotal     float64 `json:"invested_total"`
	DistributionTotal float64 `json:"distribution_total"`
	Count             int     `json:"count"`
}

type ProfileRequest struct {
	EntityName        string `json:"entity_name"`
	Jurisdiction      string `json:"jurisdiction,omitempty"`
	TaxClassification string `json:"tax_classification,omitempty"`
	ProfileType       string `json:"profile_type,omitempty"`
	ContactEmail      string `json:"contact_email,omitempty"`
	ContactPhone      string `json:"contact_phone,omitempty"`
}

type ProfileResponse struct {
	ID                string `json:"id"`
	EntityName        string `json:"entity_name"`
	Jurisdiction      string `json:"jurisdiction,omitempty"`
	TaxClassification string `json:"tax_classification,omitempty"`
	ProfileType       string `json:"profile_type,omitempty"`
	ContactEmail      string `json:"contact_email,omitempty"`
	ContactPhone      string `json:"contact_phone,omitempty"`
	UserID            string `json:"user_id,omitempty"`
}

type DealRequest struct {
	Name                string     `json:"name"`
	DealType            string     `json:"deal_type"`
	DealSubtype         string     `json:"deal_subtype,omitempty"`
	DealStage           string     `json:"deal_stage,omitempty"`
	Sponsors            string     `json:"sponsors,omitempty"`
	CloseDate           *time.Time `json:"close_date,omitempty"`
	OfferingSize        *float64   `json:"offering_size,omitempty"`
	UnitPrice           *float64   `json:"unit_price,omitempty"`
	Status              string     `json:"status,omitempty"`
	FundingInstructions string     `json:"funding_instructions,omitempty"`
	DetailsJSON         string     `json:"details_json,omitempty"`
}

type DealResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	DealType     string     `json:"deal_type"`
	DealSubtype  string     `json:"deal_subtype,omitempty"`
	DealStage    string     `json:"deal_stage,omitempty"`
	Sponsors     string     `json:"sponsors,omitempty"`
	CloseDate    *time.Time `json:"close_date,omitempty"`
	OfferingSize *float64   `json:"offering_size,omitempty"`
	UnitPrice    *float64   `json:"unit_price,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

type InterestResponse struct {
	ID        string    `json:"id"`
	DealID    string    `json:"deal_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type InterestAdminResponse struct {
	InterestResponse

	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
}

type DocumentResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Label          string    `json:"label,omitempty"`
	DocumentType   string    `json:"document_type"`
	RequirementKey string    `json:"requirement_key,omitempty"`
	DealName       string    `json:"deal_name,omitempty"`
	ProfileName    string    `json:"profile_name,omitempty"`
	DealID         string    `json:"deal_id,omitempty"`
	ProfileID      string    `json:"profile_id,omitempty"`
	InvestmentID   string    `json:"investment_id,omitempty"`
	FilePath       string    `json:"file_path"`
	UploadedByRole string    `json:"uploaded_by_role,omitempty"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

type UploadResponse struct {
	Message    string    `json:"message"`
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type AdminUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type HealthChecks struct {
	Database string `json:"database,omitempty"`
	Blobs    string `json:"blobs,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
