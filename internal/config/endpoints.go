package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Operações conhecidas pelo cliente; cada uma tem um template de caminho
const (
	OpOrganizationsList = "organizations.list"
	OpOrganizationsGet  = "organizations.get"

	OpFundingSourcesList = "fundingsources.list"
	OpFundingSourcesGet  = "fundingsources.get"
	OpBillingCentersList = "billingcenters.list"
	OpBillingCentersGet  = "billingcenters.get"
	OpMembersList        = "members.list"

	OpAdAccountsList   = "adaccounts.list"
	OpAdAccountsGet    = "adaccounts.get"
	OpAdAccountsUpdate = "adaccounts.update"

	OpCampaignsCreate = "campaigns.create"
	OpCampaignsUpdate = "campaigns.update"
	OpCampaignsList   = "campaigns.list"
	OpCampaignsGet    = "campaigns.get"
	OpCampaignsDelete = "campaigns.delete"

	OpAdSquadsCreate          = "adsquads.create"
	OpAdSquadsUpdate          = "adsquads.update"
	OpAdSquadsListByCampaign  = "adsquads.list_by_campaign"
	OpAdSquadsListByAdAccount = "adsquads.list_by_ad_account"
	OpAdSquadsGet             = "adsquads.get"
	OpAdSquadsDelete          = "adsquads.delete"

	OpAdsCreate          = "ads.create"
	OpAdsUpdate          = "ads.update"
	OpAdsListByAdSquad   = "ads.list_by_ad_squad"
	OpAdsListByAdAccount = "ads.list_by_ad_account"
	OpAdsGet             = "ads.get"
	OpAdsDelete          = "ads.delete"

	OpCreativesCreate = "creatives.create"
	OpCreativesUpdate = "creatives.update"
	OpCreativesList   = "creatives.list"
	OpCreativesGet    = "creatives.get"

	OpMediaCreate      = "media.create"
	OpMediaList        = "media.list"
	OpMediaGet         = "media.get"
	OpMediaPreview     = "media.preview"
	OpMediaUpload      = "media.upload"
	OpMediaUploadLarge = "media.upload_large"

	OpPixelsByAdAccount = "pixels.by_ad_account"
	OpPixelsUpdate      = "pixels.update"
	OpPixelsGet         = "pixels.get"

	OpAuditLogsList = "auditlogs.list"
)

var DefaultEndpoints = Endpoints{
	OpOrganizationsList: "/me/organizations",
	OpOrganizationsGet:  "/organizations/{organization_id}",

	OpFundingSourcesList: "/organizations/{organization_id}/fundingsources",
	OpFundingSourcesGet:  "/fundingsources/{funding_source_id}",
	OpBillingCentersList: "/organizations/{organization_id}/billingcenters",
	OpBillingCentersGet:  "/billingcenters/{billing_center_id}",
	OpMembersList:        "/organizations/{organization_id}/members",

	OpAdAccountsList:   "/organizations/{organization_id}/adaccounts",
	OpAdAccountsGet:    "/adaccounts/{ad_account_id}",
	OpAdAccountsUpdate: "/organizations/{organization_id}/adaccounts",

	OpCampaignsCreate: "/adaccounts/{ad_account_id}/campaigns",
	OpCampaignsUpdate: "/adaccounts/{ad_account_id}/campaigns",
	OpCampaignsList:   "/adaccounts/{ad_account_id}/campaigns",
	OpCampaignsGet:    "/campaigns/{campaign_id}",
	OpCampaignsDelete: "/campaigns/{campaign_id}",

	OpAdSquadsCreate:          "/campaigns/{campaign_id}/adsquads",
	OpAdSquadsUpdate:          "/campaigns/{campaign_id}/adsquads",
	OpAdSquadsListByCampaign:  "/campaigns/{campaign_id}/adsquads",
	OpAdSquadsListByAdAccount: "/adaccounts/{ad_account_id}/adsquads",
	OpAdSquadsGet:             "/adsquads/{ad_squad_id}",
	OpAdSquadsDelete:          "/adsquads/{ad_squad_id}",

	OpAdsCreate:          "/adsquads/{ad_squad_id}/ads",
	OpAdsUpdate:          "/adsquads/{ad_squad_id}/ads",
	OpAdsListByAdSquad:   "/adsquads/{ad_squad_id}/ads",
	OpAdsListByAdAccount: "/adaccounts/{ad_account_id}/ads",
	OpAdsGet:             "/ads/{ad_id}",
	OpAdsDelete:          "/ads/{ad_id}",

	OpCreativesCreate: "/adaccounts/{ad_account_id}/creatives",
	OpCreativesUpdate: "/adaccounts/{ad_account_id}/creatives",
	OpCreativesList:   "/adaccounts/{ad_account_id}/creatives",
	OpCreativesGet:    "/creatives/{creative_id}",

	OpMediaCreate:      "/adaccounts/{ad_account_id}/media",
	OpMediaList:        "/adaccounts/{ad_account_id}/media",
	OpMediaGet:         "/media/{media_id}",
	OpMediaPreview:     "/media/{media_id}/preview",
	OpMediaUpload:      "/media/{media_id}/upload",
	OpMediaUploadLarge: "/media/{media_id}/multipart-upload-v2",

	OpPixelsByAdAccount: "/adaccounts/{ad_account_id}/pixels",
	OpPixelsUpdate:      "/adaccounts/{ad_account_id}/pixels",
	OpPixelsGet:         "/pixels/{pixel_id}",

	OpAuditLogsList: "/{entity_path}/{entity_id}/change_logs",
}

var (
	ErrEndpointNotConfigured = errors.New("endpoint not configured")
	ErrMissingPathParam      = errors.New("missing path parameter")
)

var placeholder = regexp.MustCompile(`\{[a-z_]+\}`)

// Endpoints mapeia o nome da operação para o template do caminho
type Endpoints map[string]string

// Resolve monta a URL completa de uma operação substituindo os placeholders
func (e Endpoints) Resolve(baseURL, operation string, params map[string]string) (string, error) {
	template, ok := e[operation]
	if !ok || template == "" {
		return "", fmt.Errorf("config: %w: %s", ErrEndpointNotConfigured, operation)
	}

	path := template
	for name, value := range params {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}

	if missing := placeholder.FindString(path); missing != "" {
		return "", fmt.Errorf("config: %w %s for %s", ErrMissingPathParam, missing, operation)
	}

	return strings.TrimRight(baseURL, "/") + path, nil
}
