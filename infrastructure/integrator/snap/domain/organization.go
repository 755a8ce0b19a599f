package snapdomain

import "time"

type Organization struct {
	ID                           string      `json:"id,omitempty"`
	Name                         string      `json:"name,omitempty"`
	Type                         string      `json:"type,omitempty"`
	State                        string      `json:"state,omitempty"`
	AddressLine1                 string      `json:"address_line_1,omitempty"`
	Locality                     string      `json:"locality,omitempty"`
	AdministrativeDistrictLevel1 string      `json:"administrative_district_level_1,omitempty"`
	Country                      string      `json:"country,omitempty"`
	PostalCode                   string      `json:"postal_code,omitempty"`
	MyDisplayName                string      `json:"my_display_name,omitempty"`
	MyInvitedEmail               string      `json:"my_invited_email,omitempty"`
	MyMemberID                   string      `json:"my_member_id,omitempty"`
	Roles                        []string    `json:"roles,omitempty"`
	AdAccounts                   []AdAccount `json:"ad_accounts,omitempty"`
	CreatedAt                    *time.Time  `json:"created_at,omitempty"`
	UpdatedAt                    *time.Time  `json:"updated_at,omitempty"`
}

type FundingSourceType string

const (
	FundingSourceLineOfCredit FundingSourceType = "LINE_OF_CREDIT"
	FundingSourceCreditCard   FundingSourceType = "CREDIT_CARD"
	FundingSourceCoupon       FundingSourceType = "COUPON"
	FundingSourcePaypal       FundingSourceType = "PAYPAL"
)

type FundingSource struct {
	ID                   string            `json:"id,omitempty"`
	Type                 FundingSourceType `json:"type,omitempty"`
	Status               string            `json:"status,omitempty"`
	Currency             string            `json:"currency,omitempty"`
	BudgetSpentMicro     int64             `json:"budget_spent_micro,omitempty"`
	TotalBudgetMicro     int64             `json:"total_budget_micro,omitempty"`
	AvailableCreditMicro int64             `json:"available_credit_micro,omitempty"`
	CardType             string            `json:"card_type,omitempty"`
	Name                 string            `json:"name,omitempty"`
	Last4                string            `json:"last_4,omitempty"`
	ExpirationYear       string            `json:"expiration_year,omitempty"`
	ExpirationMonth      string            `json:"expiration_month,omitempty"`
	StartDate            *time.Time        `json:"start_date,omitempty"`
	EndDate              *time.Time        `json:"end_date,omitempty"`
	CreatedAt            *time.Time        `json:"created_at,omitempty"`
	UpdatedAt            *time.Time        `json:"updated_at,omitempty"`
}

type BillingCenter struct {
	ID                           string     `json:"id,omitempty"`
	OrganizationID               string     `json:"organization_id,omitempty"`
	Name                         string     `json:"name,omitempty"`
	EmailAddress                 string     `json:"email_address,omitempty"`
	AddressLine1                 string     `json:"address_line_1,omitempty"`
	Locality                     string     `json:"locality,omitempty"`
	AdministrativeDistrictLevel1 string     `json:"administrative_district_level_1,omitempty"`
	Country                      string     `json:"country,omitempty"`
	PostalCode                   string     `json:"postal_code,omitempty"`
	AlternativeEmailAddresses    []string   `json:"alternative_email_addresses,omitempty"`
	CreatedAt                    *time.Time `json:"created_at,omitempty"`
	UpdatedAt                    *time.Time `json:"updated_at,omitempty"`
}

type Member struct {
	ID             string     `json:"id,omitempty"`
	OrganizationID string     `json:"organization_id,omitempty"`
	Email          string     `json:"email,omitempty"`
	DisplayName    string     `json:"display_name,omitempty"`
	MemberStatus   string     `json:"member_status,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
