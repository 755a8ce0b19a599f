package snapclient

import (
	"context"
	"net/http"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

const adAccountIDRequired = "The ad account ID is required"

func (c *SnapClient) GetAllAdAccounts(ctx context.Context, oauthAccessToken, organizationID string) ([]snapdomain.AdAccount, error) {
	if err := requireID(oauthAccessToken, organizationID, organizationIDRequired); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.AdAccount](ctx, c, oauthAccessToken, config.OpAdAccountsList,
		params{"organization_id": organizationID}, nil, snapdomain.AdAccountResource)
}

func (c *SnapClient) GetSpecificAdAccount(ctx context.Context, oauthAccessToken, adAccountID string) (*snapdomain.AdAccount, error) {
	if err := requireID(oauthAccessToken, adAccountID, adAccountIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.AdAccount](ctx, c, oauthAccessToken, config.OpAdAccountsGet,
		params{"ad_account_id": adAccountID}, snapdomain.AdAccountResource)
}

func (c *SnapClient) UpdateAdAccount(ctx context.Context, oauthAccessToken string, adAccount *snapdomain.AdAccount) (*snapdomain.AdAccount, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateAdAccount(adAccount); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPut, config.OpAdAccountsUpdate,
		params{"organization_id": adAccount.OrganizationID}, adAccount, snapdomain.AdAccountResource)
}

func validateAdAccount(adAccount *snapdomain.AdAccount) error {
	if adAccount == nil {
		adAccount = &snapdomain.AdAccount{}
	}

	var v violations
	v.require(present(adAccount.ID), adAccountIDRequired)
	v.require(present(adAccount.OrganizationID), organizationIDRequired)
	v.require(present(adAccount.Name), "The name is required")
	v.require(present(string(adAccount.Type)), "The type is required")
	v.require(len(adAccount.FundingSourceIDs) > 0, "The funding source IDs are required")
	v.require(present(adAccount.Currency), "The currency is required")
	v.require(present(adAccount.Timezone), "The timezone is required")
	if adAccount.Type == snapdomain.AdAccountTypePartner {
		v.require(present(adAccount.Advertiser), "The advertiser is required")
	}
	return v.err()
}
