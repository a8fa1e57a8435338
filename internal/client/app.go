package client

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/ucip-keeper/internal/adapter"
	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/models"
	"github.com/spf13/cobra"
)

// AdapterFactory builds a server adapter from the effective configuration,
// after command-line flags have been applied.
type AdapterFactory func(cfg config.ClientConfig, logger *logger.Logger) (adapter.ServerAdapter, error)

// App is the ucip CLI.
type App struct {
	cfg        config.ClientConfig
	newAdapter AdapterFactory
	codec      *codec.UCIPCodec
	buildInfo  models.AppBuildInfo

	in  io.Reader
	out io.Writer
	err io.Writer

	logger *logger.Logger
}

// NewApp returns a CLI over cfg. newAdapter is called once per command that
// needs the server.
func NewApp(cfg config.ClientConfig, newAdapter AdapterFactory, ucipCodec *codec.UCIPCodec, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		cfg:        cfg,
		newAdapter: newAdapter,
		codec:      ucipCodec,
		buildInfo:  buildInfo,
		in:         os.Stdin,
		out:        os.Stdout,
		err:        os.Stderr,
		logger:     logger,
	}
}

// Run executes the command named by os.Args. SIGINT and SIGTERM cancel the
// in-flight request.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.execute(ctx, os.Args[1:])
}

func (a *App) execute(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.err)

	return root.ExecuteContext(ctx)
}

// rootOptions holds global flags. Non-empty values override the environment.
type rootOptions struct {
	serverURL string
	token     string
	signKey   string
	verbose   bool
}

func (a *App) newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "ucip",
		Short:         "ucip - user context client",
		Long:          "Command-line client for the ucip-keeper encrypted user context service.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.serverURL != "" {
				a.cfg.ServerURL = opts.serverURL
			}
			if opts.token != "" {
				a.cfg.Token = opts.token
			}
			if opts.signKey != "" {
				a.cfg.TokenSignKey = opts.signKey
			}
			if opts.verbose {
				a.logger = logger.NewClientLogger("ucip-client", true)
			}
			return a.cfg.Validate()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.serverURL, "server", "", "server base URL (env UCIP_SERVER_URL)")
	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "bearer token (env UCIP_TOKEN)")
	cmd.PersistentFlags().StringVar(&opts.signKey, "sign-key", "", "token sign key for minting (env UCIP_TOKEN_SIGN_KEY)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(a.newTokenCommand())
	cmd.AddCommand(a.newGetCommand())
	cmd.AddCommand(a.newUpdateCommand())
	cmd.AddCommand(a.newEncodeCommand())
	cmd.AddCommand(a.newValidateCommand())
	cmd.AddCommand(a.newVersionCommand())
	cmd.AddCommand(a.newHealthCommand())

	return cmd
}
