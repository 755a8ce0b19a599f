package snapdomain

import "time"

type AdAccountType string

const (
	AdAccountTypePartner AdAccountType = "PARTNER"
	AdAccountTypeDirect  AdAccountType = "DIRECT"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusPaused   AdAccountStatus = "PAUSED"
	AdAccountStatusDisabled AdAccountStatus = "DISABLED"
)

type AdAccount struct {
	ID                       string          `json:"id,omitempty"`
	OrganizationID           string          `json:"organization_id,omitempty"`
	Name                     string          `json:"name,omitempty"`
	Type                     AdAccountType   `json:"type,omitempty"`
	Status                   AdAccountStatus `json:"status,omitempty"`
	FundingSourceIDs         []string        `json:"funding_source_ids,omitempty"`
	BillingCenterID          string          `json:"billing_center_id,omitempty"`
	BillingType              string          `json:"billing_type,omitempty"`
	Currency                 string          `json:"currency,omitempty"`
	Timezone                 string          `json:"timezone,omitempty"`
	Advertiser               string          `json:"advertiser,omitempty"`
	AdvertiserOrganizationID string          `json:"advertiser_organization_id,omitempty"`
	AgencyRepresentingClient bool            `json:"agency_representing_client,omitempty"`
	ClientPayingInvoices     bool            `json:"client_paying_invoices,omitempty"`
	LifetimeSpendCapMicro    int64           `json:"lifetime_spend_cap_micro,omitempty"`
	CreatedAt                *time.Time      `json:"created_at,omitempty"`
	UpdatedAt                *time.Time      `json:"updated_at,omitempty"`
}
