package snapclient

import (
	"context"
	"net/http"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

const campaignIDRequired = "The campaign ID is required"

func (c *SnapClient) CreateCampaign(ctx context.Context, oauthAccessToken string, campaign *snapdomain.Campaign) (*snapdomain.Campaign, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateCampaign(campaign, false); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPost, config.OpCampaignsCreate,
		params{"ad_account_id": campaign.AdAccountID}, campaign, snapdomain.CampaignResource)
}

func (c *SnapClient) UpdateCampaign(ctx context.Context, oauthAccessToken string, campaign *snapdomain.Campaign) (*snapdomain.Campaign, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateCampaign(campaign, true); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPut, config.OpCampaignsUpdate,
		params{"ad_account_id": campaign.AdAccountID}, campaign, snapdomain.CampaignResource)
}

func (c *SnapClient) GetAllCampaigns(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.Campaign, error) {
	if err := requireID(oauthAccessToken, adAccountID, adAccountIDRequired); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.Campaign](ctx, c, oauthAccessToken, config.OpCampaignsList,
		params{"ad_account_id": adAccountID}, nil, snapdomain.CampaignResource)
}

func (c *SnapClient) GetSpecificCampaign(ctx context.Context, oauthAccessToken, campaignID string) (*snapdomain.Campaign, error) {
	if err := requireID(oauthAccessToken, campaignID, campaignIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.Campaign](ctx, c, oauthAccessToken, config.OpCampaignsGet,
		params{"campaign_id": campaignID}, snapdomain.CampaignResource)
}

func (c *SnapClient) DeleteCampaign(ctx context.Context, oauthAccessToken, campaignID string) error {
	if err := requireID(oauthAccessToken, campaignID, campaignIDRequired); err != nil {
		return err
	}

	return remove(ctx, c, oauthAccessToken, config.OpCampaignsDelete, params{"campaign_id": campaignID})
}

func validateCampaign(campaign *snapdomain.Campaign, update bool) error {
	if campaign == nil {
		campaign = &snapdomain.Campaign{}
	}

	var v violations
	if update {
		v.require(present(campaign.ID), campaignIDRequired)
	}
	v.require(present(campaign.AdAccountID), adAccountIDRequired)
	v.require(campaign.StartTime != nil && !campaign.StartTime.IsZero(), "The start time is required")
	v.require(present(campaign.Name), "The campaign name is required")
	v.require(present(string(campaign.Status)), "The status is required")
	if campaign.StartTime != nil && campaign.EndTime != nil && !campaign.EndTime.After(*campaign.StartTime) {
		v.add("The end time must be after the start time")
	}
	return v.err()
}
