package snap

import (
	"context"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
)

type SnapIntegrator struct {
	Client snapclient.Client
}

func New(client snapclient.Client) *SnapIntegrator {
	return &SnapIntegrator{
		Client: client,
	}
}

// GetOrganizationTree monta a hierarquia organização > contas > campanhas > ad squads > anúncios.
// Falhas abaixo do nível de conta são registradas e o ramo fica vazio.
func (s *SnapIntegrator) GetOrganizationTree(ctx context.Context, oauthAccessToken, organizationID string) (*snapdomain.OrganizationTree, error) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("organization_id", organizationID)

	organization, err := s.Client.GetSpecificOrganization(ctx, oauthAccessToken, organizationID)
	if err != nil {
		logger.WithError(err).Error("tree: failed to get organization")
		return nil, err
	}

	adAccounts, err := s.Client.GetAllAdAccounts(ctx, oauthAccessToken, organizationID)
	if err != nil {
		logger.WithError(err).Error("tree: failed to get ad accounts for organization")
		return nil, err
	}

	tree := &snapdomain.OrganizationTree{
		AdAccounts: make([]snapdomain.AdAccountNode, 0, len(adAccounts)),
	}
	if organization != nil {
		tree.Organization = *organization
	}

	for _, adAccount := range adAccounts {
		tree.AdAccounts = append(tree.AdAccounts, snapdomain.AdAccountNode{
			AdAccount: adAccount,
			Campaigns: s.campaignNodes(ctx, oauthAccessToken, adAccount.ID),
		})
	}

	logger.WithField("total_accounts", len(tree.AdAccounts)).Info("tree: organization tree built")
	return tree, nil
}

func (s *SnapIntegrator) campaignNodes(ctx context.Context, oauthAccessToken, adAccountID string) []snapdomain.CampaignNode {
	nodes := make([]snapdomain.CampaignNode, 0)

	campaigns, err := s.Client.GetAllCampaigns(ctx, oauthAccessToken, adAccountID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("ad_account_id", adAccountID).
			Error("tree: failed to get campaigns for ad account")
		return nodes
	}

	for _, campaign := range campaigns {
		nodes = append(nodes, snapdomain.CampaignNode{
			Campaign: campaign,
			AdSquads: s.adSquadNodes(ctx, oauthAccessToken, campaign.ID),
		})
	}
	return nodes
}

func (s *SnapIntegrator) adSquadNodes(ctx context.Context, oauthAccessToken, campaignID string) []snapdomain.AdSquadNode {
	nodes := make([]snapdomain.AdSquadNode, 0)

	adSquads, err := s.Client.GetAllAdSquadsFromCampaign(ctx, oauthAccessToken, campaignID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).
			Error("tree: failed to get ad squads for campaign")
		return nodes
	}

	for _, adSquad := range adSquads {
		ads, err := s.Client.GetAllAdsFromAdSquad(ctx, oauthAccessToken, adSquad.ID)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("ad_squad_id", adSquad.ID).
				Error("tree: failed to get ads for ad squad")
			ads = make([]snapdomain.Ad, 0)
		}

		nodes = append(nodes, snapdomain.AdSquadNode{AdSquad: adSquad, Ads: ads})
	}
	return nodes
}
