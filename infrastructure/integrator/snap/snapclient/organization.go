package snapclient

import (
	"context"
	"strconv"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

const organizationIDRequired = "The organization ID is required"

// GetAllOrganizations lista as organizações do usuário dono do token.
// withAdAccounts inclui as contas de anúncio de cada organização na resposta.
func (c *SnapClient) GetAllOrganizations(ctx context.Context, oauthAccessToken string, withAdAccounts bool) ([]snapdomain.Organization, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}

	var query map[string]string
	if withAdAccounts {
		query = map[string]string{"with_ad_accounts": strconv.FormatBool(withAdAccounts)}
	}

	return fetchAll[snapdomain.Organization](ctx, c, oauthAccessToken, config.OpOrganizationsList, nil, query, snapdomain.OrganizationResource)
}

func (c *SnapClient) GetSpecificOrganization(ctx context.Context, oauthAccessToken, organizationID string) (*snapdomain.Organization, error) {
	if err := requireID(oauthAccessToken, organizationID, organizationIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.Organization](ctx, c, oauthAccessToken, config.OpOrganizationsGet,
		params{"organization_id": organizationID}, snapdomain.OrganizationResource)
}
