package snapdomain

import "time"

type CreativeType string

const (
	CreativeTypeSnapAd        CreativeType = "SNAP_AD"
	CreativeTypeAppInstall    CreativeType = "APP_INSTALL"
	CreativeTypeLongformVideo CreativeType = "LONGFORM_VIDEO"
	CreativeTypeWebView       CreativeType = "WEB_VIEW"
	CreativeTypeDeepLink      CreativeType = "DEEP_LINK"
	CreativeTypeAdToLens      CreativeType = "AD_TO_LENS"
	CreativeTypeCollection    CreativeType = "COLLECTION"
)

type WebViewProperties struct {
	URL                    string `json:"url,omitempty"`
	AllowSnapJavascriptSDK bool   `json:"allow_snap_javascript_sdk,omitempty"`
	BlockPreload           bool   `json:"block_preload,omitempty"`
}

type AppInstallProperties struct {
	AppName       string `json:"app_name,omitempty"`
	IOSAppID      string `json:"ios_app_id,omitempty"`
	AndroidAppURL string `json:"android_app_url,omitempty"`
	IconMediaID   string `json:"icon_media_id,omitempty"`
}

type DeepLinkProperties struct {
	DeepLinkURI        string `json:"deep_link_uri,omitempty"`
	AppName            string `json:"app_name,omitempty"`
	IOSAppID           string `json:"ios_app_id,omitempty"`
	AndroidAppURL      string `json:"android_app_url,omitempty"`
	FallbackType       string `json:"fallback_type,omitempty"`
	WebViewFallbackURL string `json:"web_view_fallback_url,omitempty"`
}

type Creative struct {
	ID                   string                `json:"id,omitempty"`
	AdAccountID          string                `json:"ad_account_id,omitempty"`
	Name                 string                `json:"name,omitempty"`
	Type                 CreativeType          `json:"type,omitempty"`
	PackagingStatus      string                `json:"packaging_status,omitempty"`
	ReviewStatus         ReviewStatus          `json:"review_status,omitempty"`
	Shareable            bool                  `json:"shareable,omitempty"`
	Headline             string                `json:"headline,omitempty"`
	BrandName            string                `json:"brand_name,omitempty"`
	CallToAction         string                `json:"call_to_action,omitempty"`
	RenderType           string                `json:"render_type,omitempty"`
	TopSnapMediaID       string                `json:"top_snap_media_id,omitempty"`
	TopSnapCropPosition  string                `json:"top_snap_crop_position,omitempty"`
	WebViewProperties    *WebViewProperties    `json:"web_view_properties,omitempty"`
	AppInstallProperties *AppInstallProperties `json:"app_install_properties,omitempty"`
	DeepLinkProperties   *DeepLinkProperties   `json:"deep_link_properties,omitempty"`
	CreatedAt            *time.Time            `json:"created_at,omitempty"`
	UpdatedAt            *time.Time            `json:"updated_at,omitempty"`
}
