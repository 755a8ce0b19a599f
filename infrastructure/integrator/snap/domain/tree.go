package snapdomain

type AdSquadNode struct {
	AdSquad
	Ads []Ad `json:"ads"`
}

type CampaignNode struct {
	Campaign
	AdSquads []AdSquadNode `json:"ad_squads"`
}

type AdAccountNode struct {
	AdAccount
	Campaigns []CampaignNode `json:"campaigns"`
}

// OrganizationTree é a hierarquia completa organização → ad accounts → campanhas → ad squads → ads
type OrganizationTree struct {
	Organization Organization    `json:"organization"`
	AdAccounts   []AdAccountNode `json:"ad_accounts"`
}
