package snapdomain

import "time"

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "ACTIVE"
	CampaignStatusPaused CampaignStatus = "PAUSED"
)

type CampaignObjective string

const (
	ObjectiveBrandAwareness CampaignObjective = "BRAND_AWARENESS"
	ObjectiveAppInstalls    CampaignObjective = "APP_INSTALLS"
	ObjectiveAppConversion  CampaignObjective = "APP_CONVERSION"
	ObjectiveWebConversion  CampaignObjective = "WEB_CONVERSION"
	ObjectiveVideoViews     CampaignObjective = "VIDEO_VIEWS"
	ObjectiveLeadGeneration CampaignObjective = "LEAD_GENERATION"
	ObjectiveEngagement     CampaignObjective = "ENGAGEMENT"
	ObjectivePromoteStories CampaignObjective = "PROMOTE_STORIES"
)

type MeasurementSpec struct {
	IOSAppID      string `json:"ios_app_id,omitempty"`
	AndroidAppURL string `json:"android_app_url,omitempty"`
}

// Campaign agrupa ad squads sob um orçamento e um período; valores monetários em micro-moeda
type Campaign struct {
	ID                    string            `json:"id,omitempty"`
	AdAccountID           string            `json:"ad_account_id,omitempty"`
	Name                  string            `json:"name,omitempty"`
	Status                CampaignStatus    `json:"status,omitempty"`
	Objective             CampaignObjective `json:"objective,omitempty"`
	StartTime             *time.Time        `json:"start_time,omitempty"`
	EndTime               *time.Time        `json:"end_time,omitempty"`
	DailyBudgetMicro      int64             `json:"daily_budget_micro,omitempty"`
	LifetimeSpendCapMicro int64             `json:"lifetime_spend_cap_micro,omitempty"`
	MeasurementSpec       *MeasurementSpec  `json:"measurement_spec,omitempty"`
	CreatedAt             *time.Time        `json:"created_at,omitempty"`
	UpdatedAt             *time.Time        `json:"updated_at,omitempty"`
}
