package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/snapclient"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
	"github.com/vfg2006/snapchat-marketing-api/internal/usecases/uploading"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
)

// TreeBuilder monta a hierarquia completa de uma organização
type TreeBuilder interface {
	GetOrganizationTree(ctx context.Context, oauthAccessToken, organizationID string) (*snapdomain.OrganizationTree, error)
}

type rootFlags struct {
	Token    string
	LogLevel string
}

// App concentra as dependências dos comandos; os campos nil são criados a partir da configuração
type App struct {
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
	flags  rootFlags

	Client   snapclient.Client
	Tree     TreeBuilder
	Uploader uploading.Uploader
}

func NewApp(cfg *config.Config, out, errOut io.Writer) *App {
	return &App{
		cfg:    cfg,
		out:    out,
		errOut: errOut,
	}
}

// Execute carrega a configuração do ambiente e roda o comando pedido
func Execute(ctx context.Context, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	return NewApp(cfg, os.Stdout, os.Stderr).Run(ctx, args)
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root.ExecuteContext(ctx)
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "snapads",
		Short:         "Command line client for the Snapchat Marketing API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a.setup()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.flags.Token, "token", a.cfg.Snap.AccessToken, "OAuth access token (default SNAP_ACCESS_TOKEN)")
	root.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", a.cfg.App.LogLevel, "Log level (debug, info, warn, error)")

	root.AddCommand(
		a.newOrganizationsCmd(),
		a.newAdAccountsCmd(),
		a.newCampaignsCmd(),
		a.newAdsCmd(),
		a.newMediaCmd(),
		a.newAuditLogsCmd(),
		a.newOAuthCmd(),
	)

	return root
}

// setup roda depois do parse das flags: o nível de log pode ter mudado
func (a *App) setup() {
	logger := log.New(a.flags.LogLevel, a.cfg.App.LogFormat, a.errOut)
	log.L = logger

	if a.Client == nil {
		a.Client = snapclient.NewClient(a.cfg, snapclient.WithLogger(logger))
	}
	if a.Tree == nil {
		a.Tree = snap.New(a.Client)
	}
	if a.Uploader == nil {
		a.Uploader = uploading.NewService(a.Client, a.cfg)
	}
}

// ExitCode converte o erro do comando no código de saída do processo
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// FormatError prefixa a mensagem com o tipo do erro, quando conhecido
func FormatError(err error) string {
	if kind, ok := apiErrors.KindOf(err); ok {
		return fmt.Sprintf("%s error: %s", kind, err.Error())
	}
	return fmt.Sprintf("error: %s", err.Error())
}
