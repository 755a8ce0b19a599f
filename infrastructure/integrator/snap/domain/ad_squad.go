package snapdomain

import "time"

type AdSquadType string

const AdSquadTypeSnapAds AdSquadType = "SNAP_ADS"

type Placement string

const (
	PlacementSnapAds      Placement = "SNAP_ADS"
	PlacementUntitled     Placement = "UNTITLED"
	PlacementContent      Placement = "CONTENT"
	PlacementUserStories  Placement = "USER_STORIES"
	PlacementDiscoverFeed Placement = "DISCOVER_FEED"
	PlacementSpotlight    Placement = "SPOTLIGHT"
)

type BillingEvent string

const BillingEventImpression BillingEvent = "IMPRESSION"

type OptimizationGoal string

const (
	OptimizationGoalImpressions     OptimizationGoal = "IMPRESSIONS"
	OptimizationGoalSwipes          OptimizationGoal = "SWIPES"
	OptimizationGoalAppInstalls     OptimizationGoal = "APP_INSTALLS"
	OptimizationGoalVideoViews      OptimizationGoal = "VIDEO_VIEWS"
	OptimizationGoalVideoViews15Sec OptimizationGoal = "VIDEO_VIEWS_15_SEC"
	OptimizationGoalPixelPurchase   OptimizationGoal = "PIXEL_PURCHASE"
	OptimizationGoalPixelSignup     OptimizationGoal = "PIXEL_SIGNUP"
)

type GeoTarget struct {
	CountryCode string   `json:"country_code"`
	RegionID    []string `json:"region_id,omitempty"`
	MetroID     []string `json:"metro_id,omitempty"`
	PostalCode  []string `json:"postal_code,omitempty"`
}

type DemographicTarget struct {
	Gender    string   `json:"gender,omitempty"`
	MinAge    string   `json:"min_age,omitempty"`
	MaxAge    string   `json:"max_age,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

type Targeting struct {
	Geos         []GeoTarget         `json:"geos,omitempty"`
	Demographics []DemographicTarget `json:"demographics,omitempty"`
}

type AdSquad struct {
	ID                  string           `json:"id,omitempty"`
	CampaignID          string           `json:"campaign_id,omitempty"`
	Name                string           `json:"name,omitempty"`
	Type                AdSquadType      `json:"type,omitempty"`
	Status              CampaignStatus   `json:"status,omitempty"`
	Targeting           *Targeting       `json:"targeting,omitempty"`
	Placement           Placement        `json:"placement,omitempty"`
	BillingEvent        BillingEvent     `json:"billing_event,omitempty"`
	OptimizationGoal    OptimizationGoal `json:"optimization_goal,omitempty"`
	AutoBid             bool             `json:"auto_bid,omitempty"`
	TargetBid           bool             `json:"target_bid,omitempty"`
	BidMicro            int64            `json:"bid_micro,omitempty"`
	DailyBudgetMicro    int64            `json:"daily_budget_micro,omitempty"`
	LifetimeBudgetMicro int64            `json:"lifetime_budget_micro,omitempty"`
	StartTime           *time.Time       `json:"start_time,omitempty"`
	EndTime             *time.Time       `json:"end_time,omitempty"`
	PacingType          string           `json:"pacing_type,omitempty"`
	CreatedAt           *time.Time       `json:"created_at,omitempty"`
	UpdatedAt           *time.Time       `json:"updated_at,omitempty"`
}
