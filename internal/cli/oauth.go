package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newOAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oauth",
		Short: "Authorize the application and manage tokens",
	}

	var state string
	url := &cobra.Command{
		Use:   "url",
		Short: "Print the URL the user must open to authorize the application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			authURL, err := a.Client.AuthorizationURL(state)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, authURL)
			return err
		},
	}
	url.Flags().StringVar(&state, "state", "", "Opaque value echoed back on the redirect")

	var code string
	exchange := &cobra.Command{
		Use:   "exchange",
		Short: "Exchange an authorization code for an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.Client.ExchangeCode(cmd.Context(), code)
			if err != nil {
				return err
			}
			return a.printJSON(token)
		},
	}
	exchange.Flags().StringVar(&code, "code", "", "Authorization code received on the redirect")

	var refreshToken string
	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Obtain a new access token from a refresh token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.Client.RefreshAccessToken(cmd.Context(), refreshToken)
			if err != nil {
				return err
			}
			return a.printJSON(token)
		},
	}
	refresh.Flags().StringVar(&refreshToken, "refresh-token", "", "Refresh token")

	cmd.AddCommand(url, exchange, refresh)
	return cmd
}
