package snapclient

import (
	"context"
	"net/http"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

const (
	adIDRequired      = "The ad ID is required"
	adSquadIDRequired = "The ad squad ID is required"
)

func (c *SnapClient) CreateAd(ctx context.Context, oauthAccessToken string, ad *snapdomain.Ad) (*snapdomain.Ad, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateAd(ad, false); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPost, config.OpAdsCreate,
		params{"ad_squad_id": ad.AdSquadID}, ad, snapdomain.AdResource)
}

func (c *SnapClient) UpdateAd(ctx context.Context, oauthAccessToken string, ad *snapdomain.Ad) (*snapdomain.Ad, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateAd(ad, true); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPut, config.OpAdsUpdate,
		params{"ad_squad_id": ad.AdSquadID}, ad, snapdomain.AdResource)
}

func (c *SnapClient) GetAllAdsFromAdSquad(ctx context.Context, oauthAccessToken, adSquadID string) ([]snapdomain.Ad, error) {
	if err := requireID(oauthAccessToken, adSquadID, adSquadIDRequired); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.Ad](ctx, c, oauthAccessToken, config.OpAdsListByAdSquad,
		params{"ad_squad_id": adSquadID}, nil, snapdomain.AdResource)
}

func (c *SnapClient) GetAllAdsFromAdAccount(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.Ad, error) {
	if err := requireID(oauthAccessToken, adAccountID, adAccountIDRequired); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.Ad](ctx, c, oauthAccessToken, config.OpAdsListByAdAccount,
		params{"ad_account_id": adAccountID}, nil, snapdomain.AdResource)
}

func (c *SnapClient) GetSpecificAd(ctx context.Context, oauthAccessToken, adID string) (*snapdomain.Ad, error) {
	if err := requireID(oauthAccessToken, adID, adIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.Ad](ctx, c, oauthAccessToken, config.OpAdsGet,
		params{"ad_id": adID}, snapdomain.AdResource)
}

func (c *SnapClient) DeleteAd(ctx context.Context, oauthAccessToken, adID string) error {
	if err := requireID(oauthAccessToken, adID, adIDRequired); err != nil {
		return err
	}

	return remove(ctx, c, oauthAccessToken, config.OpAdsDelete, params{"ad_id": adID})
}

func validateAd(ad *snapdomain.Ad, update bool) error {
	if ad == nil {
		ad = &snapdomain.Ad{}
	}

	var v violations
	if update {
		v.require(present(ad.ID), adIDRequired)
	}
	v.require(present(ad.AdSquadID), adSquadIDRequired)
	v.require(present(ad.CreativeID), "The creative ID is required")
	v.require(present(ad.Name), "The name is required")
	v.require(present(string(ad.Type)), "The type is required")
	v.require(present(string(ad.Status)), "The status is required")
	return v.err()
}
