package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newOrganizationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "organizations",
		Aliases: []string{"orgs"},
		Short:   "Inspect organizations",
	}

	cmd.AddCommand(a.newOrganizationsListCmd(), a.newOrganizationsTreeCmd())
	return cmd
}

func (a *App) newOrganizationsListCmd() *cobra.Command {
	var withAdAccounts bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the organizations of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orgs, err := a.Client.GetAllOrganizations(cmd.Context(), a.flags.Token, withAdAccounts)
			if err != nil {
				return err
			}
			return a.printJSON(orgs)
		},
	}

	cmd.Flags().BoolVar(&withAdAccounts, "with-ad-accounts", false, "Embed the ad accounts of each organization")
	return cmd
}

func (a *App) newOrganizationsTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <organization-id>",
		Short: "Print the organization > ad account > campaign > ad squad > ad hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.Tree.GetOrganizationTree(cmd.Context(), a.flags.Token, args[0])
			if err != nil {
				return err
			}
			return a.printJSON(tree)
		},
	}
}
