package snapdomain

import "time"

type Pixel struct {
	ID              string     `json:"id,omitempty"`
	AdAccountID     string     `json:"ad_account_id,omitempty"`
	Name            string     `json:"name,omitempty"`
	Status          string     `json:"status,omitempty"`
	EffectiveStatus string     `json:"effective_status,omitempty"`
	PixelJavascript string     `json:"pixel_javascript,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
