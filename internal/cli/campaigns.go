package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/snapchat-marketing-api/pkg/utils"
)

func (a *App) newAdAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adaccounts",
		Short: "Inspect ad accounts",
	}

	var organizationID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List the ad accounts of an organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := a.Client.GetAllAdAccounts(cmd.Context(), a.flags.Token, organizationID)
			if err != nil {
				return err
			}
			return a.printJSON(accounts)
		},
	}
	list.Flags().StringVar(&organizationID, "organization", "", "Organization ID")

	cmd.AddCommand(list)
	return cmd
}

func (a *App) newCampaignsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Inspect campaigns",
	}

	var adAccountID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List the campaigns of an ad account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			campaigns, err := a.Client.GetAllCampaigns(cmd.Context(), a.flags.Token, adAccountID)
			if err != nil {
				return err
			}
			return a.printJSON(campaigns)
		},
	}
	list.Flags().StringVar(&adAccountID, "ad-account", "", "Ad account ID")

	get := &cobra.Command{
		Use:   "get <campaign-id>",
		Short: "Show a single campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaign, err := a.Client.GetSpecificCampaign(cmd.Context(), a.flags.Token, args[0])
			if err != nil {
				return err
			}
			return a.printJSON(campaign)
		},
	}

	cmd.AddCommand(list, get, a.newCampaignsCreateCmd())
	return cmd
}

func (a *App) newCampaignsCreateCmd() *cobra.Command {
	var (
		campaign    snapdomain.Campaign
		status      string
		objective   string
		start, end  string
		dailyBudget float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a campaign in an ad account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if campaign.StartTime, err = parseTimeFlag("start", start); err != nil {
				return err
			}
			if campaign.EndTime, err = parseTimeFlag("end", end); err != nil {
				return err
			}
			campaign.Status = snapdomain.CampaignStatus(strings.ToUpper(status))
			campaign.Objective = snapdomain.CampaignObjective(strings.ToUpper(objective))
			if dailyBudget > 0 {
				campaign.DailyBudgetMicro = utils.UnitsToMicro(dailyBudget)
			}

			created, err := a.Client.CreateCampaign(cmd.Context(), a.flags.Token, &campaign)
			if err != nil {
				return err
			}
			return a.printJSON(created)
		},
	}

	cmd.Flags().StringVar(&campaign.AdAccountID, "ad-account", "", "Ad account ID")
	cmd.Flags().StringVar(&campaign.Name, "name", "", "Campaign name")
	cmd.Flags().StringVar(&status, "status", string(snapdomain.CampaignStatusPaused), "ACTIVE or PAUSED")
	cmd.Flags().StringVar(&objective, "objective", "", "Campaign objective")
	cmd.Flags().StringVar(&start, "start", "", "Start time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().Float64Var(&dailyBudget, "daily-budget", 0, "Daily budget in the account currency")
	return cmd
}

func parseTimeFlag(name, value string) (*time.Time, error) {
	t, err := utils.ParseTime(value)
	if err != nil {
		return nil, apiErrors.NewArgumentError(fmt.Sprintf("The %s time must be RFC3339 or YYYY-MM-DD", name))
	}
	return t, nil
}

func (a *App) newAdsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Inspect ads",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <ad-id>",
		Short: "Show a single ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ad, err := a.Client.GetSpecificAd(cmd.Context(), a.flags.Token, args[0])
			if err != nil {
				return err
			}
			return a.printJSON(ad)
		},
	})
	return cmd
}
