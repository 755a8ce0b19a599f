package snapclient

import (
	"context"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

const (
	fundingSourceIDRequired = "The funding source ID is required"
	billingCenterIDRequired = "The billing center ID is required"
)

func (c *SnapClient) GetAllFundingSources(ctx context.Context, oauthAccessToken, organizationID string) ([]snapdomain.FundingSource, error) {
	if err := requireID(oauthAccessToken, organizationID, organizationIDRequired); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.FundingSource](ctx, c, oauthAccessToken, config.OpFundingSourcesList,
		params{"organization_id": organizationID}, nil, snapdomain.FundingSourceResource)
}

func (c *SnapClient) GetSpecificFundingSource(ctx context.Context, oauthAccessToken, fundingSourceID string) (*snapdomain.FundingSource, error) {
	if err := requireID(oauthAccessToken, fundingSourceID, fundingSourceIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.FundingSource](ctx, c, oauthAccessToken, config.OpFundingSourcesGet,
		params{"funding_source_id": fundingSourceID}, snapdomain.FundingSourceResource)
}

func (c *SnapClient) GetAllBillingCenters(ctx context.Context, oauthAccessToken, organizationID string) ([]snapdomain.BillingCenter, error) {
	if err := requireID(oauthAccessToken, organizationID, organizationIDRequired); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.BillingCenter](ctx, c, oauthAccessToken, config.OpBillingCentersList,
		params{"organization_id": organizationID}, nil, snapdomain.BillingCenterResource)
}

func (c *SnapClient) GetSpecificBillingCenter(ctx context.Context, oauthAccessToken, billingCenterID string) (*snapdomain.BillingCenter, error) {
	if err := requireID(oauthAccessToken, billingCenterID, billingCenterIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.BillingCenter](ctx, c, oauthAccessToken, config.OpBillingCentersGet,
		params{"billing_center_id": billingCenterID}, snapdomain.BillingCenterResource)
}

// GetAllMembers lista os membros (usuários convidados) da organização
func (c *SnapClient) GetAllMembers(ctx context.Context, oauthAccessToken, organizationID string) ([]snapdomain.Member, error) {
	if err := requireID(oauthAccessToken, organizationID, organizationIDRequired); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.Member](ctx, c, oauthAccessToken, config.OpMembersList,
		params{"organization_id": organizationID}, nil, snapdomain.MemberResource)
}
