package snapclient

import (
	"context"
	"net/http"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

// Ad squads usam "is mandatory" nas mensagens de validação
const (
	adSquadIDMandatory  = "The ad squad ID is mandatory"
	campaignIDMandatory = "The campaign ID is mandatory"
)

func (c *SnapClient) CreateAdSquad(ctx context.Context, oauthAccessToken string, adSquad *snapdomain.AdSquad) (*snapdomain.AdSquad, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateAdSquad(adSquad, false); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPost, config.OpAdSquadsCreate,
		params{"campaign_id": adSquad.CampaignID}, adSquad, snapdomain.AdSquadResource)
}

func (c *SnapClient) UpdateAdSquad(ctx context.Context, oauthAccessToken string, adSquad *snapdomain.AdSquad) (*snapdomain.AdSquad, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateAdSquad(adSquad, true); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPut, config.OpAdSquadsUpdate,
		params{"campaign_id": adSquad.CampaignID}, adSquad, snapdomain.AdSquadResource)
}

func (c *SnapClient) GetAllAdSquadsFromCampaign(ctx context.Context, oauthAccessToken, campaignID string) ([]snapdomain.AdSquad, error) {
	if err := requireID(oauthAccessToken, campaignID, campaignIDMandatory); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.AdSquad](ctx, c, oauthAccessToken, config.OpAdSquadsListByCampaign,
		params{"campaign_id": campaignID}, nil, snapdomain.AdSquadResource)
}

func (c *SnapClient) GetAllAdSquadsFromAdAccount(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.AdSquad, error) {
	if err := requireID(oauthAccessToken, adAccountID, "The ad account ID is mandatory"); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.AdSquad](ctx, c, oauthAccessToken, config.OpAdSquadsListByAdAccount,
		params{"ad_account_id": adAccountID}, nil, snapdomain.AdSquadResource)
}

func (c *SnapClient) GetSpecificAdSquad(ctx context.Context, oauthAccessToken, adSquadID string) (*snapdomain.AdSquad, error) {
	if err := requireID(oauthAccessToken, adSquadID, adSquadIDMandatory); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.AdSquad](ctx, c, oauthAccessToken, config.OpAdSquadsGet,
		params{"ad_squad_id": adSquadID}, snapdomain.AdSquadResource)
}

func (c *SnapClient) DeleteAdSquad(ctx context.Context, oauthAccessToken, adSquadID string) error {
	if err := requireID(oauthAccessToken, adSquadID, adSquadIDMandatory); err != nil {
		return err
	}

	return remove(ctx, c, oauthAccessToken, config.OpAdSquadsDelete, params{"ad_squad_id": adSquadID})
}

func validateAdSquad(adSquad *snapdomain.AdSquad, update bool) error {
	if adSquad == nil {
		adSquad = &snapdomain.AdSquad{}
	}

	var v violations
	if update {
		v.require(present(adSquad.ID), adSquadIDMandatory)
	}
	v.require(present(adSquad.CampaignID), campaignIDMandatory)
	v.require(present(adSquad.Name), "The name is mandatory")
	v.require(present(string(adSquad.Type)), "The type is mandatory")
	v.require(present(string(adSquad.Status)), "The status is mandatory")
	v.require(adSquad.Targeting != nil, "The targeting is mandatory")
	v.require(present(string(adSquad.Placement)), "The placement is mandatory")
	v.require(present(string(adSquad.BillingEvent)), "The billing event is mandatory")
	v.require(present(string(adSquad.OptimizationGoal)), "The optimization goal is mandatory")
	if !adSquad.AutoBid {
		v.require(adSquad.BidMicro > 0, "The bid micro is mandatory")
	}
	v.require(adSquad.DailyBudgetMicro > 0 || adSquad.LifetimeBudgetMicro > 0,
		"The daily budget micro or the lifetime budget micro is mandatory")
	return v.err()
}
