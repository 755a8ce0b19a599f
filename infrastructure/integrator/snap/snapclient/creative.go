package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"unicode/utf8"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

const (
	creativeIDRequired = "The creative ID is required"

	maxHeadlineLength  = 34
	maxBrandNameLength = 25
)

func (c *SnapClient) CreateCreative(ctx context.Context, oauthAccessToken string, creative *snapdomain.Creative) (*snapdomain.Creative, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateCreative(creative, false); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPost, config.OpCreativesCreate,
		params{"ad_account_id": creative.AdAccountID}, creative, snapdomain.CreativeResource)
}

func (c *SnapClient) UpdateCreative(ctx context.Context, oauthAccessToken string, creative *snapdomain.Creative) (*snapdomain.Creative, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateCreative(creative, true); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPut, config.OpCreativesUpdate,
		params{"ad_account_id": creative.AdAccountID}, creative, snapdomain.CreativeResource)
}

func (c *SnapClient) GetAllCreatives(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.Creative, error) {
	if err := requireID(oauthAccessToken, adAccountID, adAccountIDRequired); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.Creative](ctx, c, oauthAccessToken, config.OpCreativesList,
		params{"ad_account_id": adAccountID}, nil, snapdomain.CreativeResource)
}

func (c *SnapClient) GetSpecificCreative(ctx context.Context, oauthAccessToken, creativeID string) (*snapdomain.Creative, error) {
	if err := requireID(oauthAccessToken, creativeID, creativeIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.Creative](ctx, c, oauthAccessToken, config.OpCreativesGet,
		params{"creative_id": creativeID}, snapdomain.CreativeResource)
}

func validateCreative(creative *snapdomain.Creative, update bool) error {
	if creative == nil {
		creative = &snapdomain.Creative{}
	}

	var v violations
	if update {
		v.require(present(creative.ID), creativeIDRequired)
	}
	v.require(present(creative.AdAccountID), adAccountIDRequired)
	v.require(present(creative.Name), "The name is required")
	v.require(present(string(creative.Type)), "The type is required")
	v.require(present(creative.Headline), "The headline is required")
	v.require(present(creative.BrandName), "The brand name is required")
	v.require(present(creative.TopSnapMediaID), "The top snap media ID is required")
	v.require(utf8.RuneCountInString(creative.Headline) <= maxHeadlineLength,
		fmt.Sprintf("The headline mustn't exceed %d characters", maxHeadlineLength))
	v.require(utf8.RuneCountInString(creative.BrandName) <= maxBrandNameLength,
		fmt.Sprintf("The brand name mustn't exceed %d characters", maxBrandNameLength))

	switch creative.Type {
	case snapdomain.CreativeTypeWebView:
		v.require(creative.WebViewProperties != nil && present(creative.WebViewProperties.URL), "The web view URL is required")
	case snapdomain.CreativeTypeAppInstall:
		props := creative.AppInstallProperties
		if props == nil {
			props = &snapdomain.AppInstallProperties{}
		}
		v.require(present(props.AppName), "The app name is required")
		v.require(present(props.IOSAppID) || present(props.AndroidAppURL), "The iOS app ID or the Android app URL is required")
	case snapdomain.CreativeTypeDeepLink:
		v.require(creative.DeepLinkProperties != nil && present(creative.DeepLinkProperties.DeepLinkURI), "The deep link URI is required")
	}
	return v.err()
}
