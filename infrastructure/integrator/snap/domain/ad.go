package snapdomain

import "time"

type AdStatus string

const (
	AdStatusActive AdStatus = "ACTIVE"
	AdStatusPaused AdStatus = "PAUSED"
)

type AdType string

const (
	AdTypeSnapAd        AdType = "SNAP_AD"
	AdTypeLongformVideo AdType = "LONGFORM_VIDEO"
	AdTypeAppInstall    AdType = "APP_INSTALL"
	AdTypeRemoteWebpage AdType = "REMOTE_WEBPAGE"
	AdTypeDeepLink      AdType = "DEEP_LINK"
	AdTypeStory         AdType = "STORY"
	AdTypeAdToLens      AdType = "AD_TO_LENS"
	AdTypeAdToCall      AdType = "AD_TO_CALL"
	AdTypeAdToMessage   AdType = "AD_TO_MESSAGE"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING_REVIEW"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

type Ad struct {
	ID                  string       `json:"id,omitempty"`
	AdSquadID           string       `json:"ad_squad_id,omitempty"`
	CreativeID          string       `json:"creative_id,omitempty"`
	Name                string       `json:"name,omitempty"`
	Status              AdStatus     `json:"status,omitempty"`
	Type                AdType       `json:"type,omitempty"`
	RenderType          string       `json:"render_type,omitempty"`
	ReviewStatus        ReviewStatus `json:"review_status,omitempty"`
	ReviewStatusReasons []string     `json:"review_status_reasons,omitempty"`
	CreatedAt           *time.Time   `json:"created_at,omitempty"`
	UpdatedAt           *time.Time   `json:"updated_at,omitempty"`
}
