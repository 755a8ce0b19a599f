package cli

import (
	"strings"

	"github.com/spf13/cobra"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/usecases/uploading"
)

func (a *App) newMediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Upload creative media",
	}

	var params uploading.UploadParams
	upload := &cobra.Command{
		Use:   "upload",
		Short: "Create a media entity and upload an image or video file to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Token = a.flags.Token
			result, err := a.Uploader.Upload(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.printJSON(result)
		},
	}
	upload.Flags().StringVar(&params.AdAccountID, "ad-account", "", "Ad account ID")
	upload.Flags().StringVar(&params.FilePath, "file", "", "Path of the image or video")
	upload.Flags().StringVar(&params.Name, "name", "", "Media name (defaults to the file name)")

	cmd.AddCommand(upload)
	return cmd
}

func (a *App) newAuditLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auditlogs",
		Short: "Inspect the change history of an entity",
	}

	var entity, entityID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List the audit logs of a campaign, ad squad, ad or creative",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entityType := snapdomain.AuditEntityType(strings.ToUpper(entity))
			logs, err := a.Client.GetAuditLogs(cmd.Context(), a.flags.Token, entityType, entityID)
			if err != nil {
				return err
			}
			return a.printJSON(logs)
		},
	}
	list.Flags().StringVar(&entity, "entity", "", "Entity type (CAMPAIGN, ADSQUAD, AD, CREATIVE)")
	list.Flags().StringVar(&entityID, "id", "", "Entity ID")

	cmd.AddCommand(list)
	return cmd
}
