// Package cli implements the guuid command.
package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guuid/v2"
	"github.com/Lzww0608/guuid/v2/internal/config"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	configPath string
	verbose    bool

	logger  *slog.Logger
	factory *guuid.Factory

	closer io.Closer
	cancel context.CancelFunc
}

const heartbeatInterval = 3 * time.Second

// NewRootCmd returns the guuid command. Results are written to stdout and
// diagnostics to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "guuid",
		Short: "Generate and inspect UUIDs",
		Long: `guuid generates UUIDs of versions 1 to 8 and decodes existing UUIDs
into their fields, version, variant and embedded time.

The factory can be configured with a YAML file (--config) and with
GUUID_* environment variables, which take precedence over the file.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), stderr)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML configuration file")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newDecodeCmd(a))
	return root
}

func (a *app) setup(ctx context.Context, stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.logger = newLogger(stderr, cfg.LogLevel, a.verbose)

	opts, err := cfg.Factory.Options()
	if err != nil {
		return err
	}
	provider, closer, err := nodeProvider(cfg.NodeSource, a.logger)
	if err != nil {
		return err
	}
	a.closer = closer
	if provider != nil {
		opts = append(opts, guuid.WithNodeProvider(provider))
		ctx, a.cancel = context.WithCancel(ctx)
		heartbeat(ctx, provider, heartbeatInterval)
	}

	a.factory = guuid.NewFactory(append(opts, guuid.WithLogger(a.logger))...)
	a.logger.Debug("configuration loaded", "path", a.configPath, "layout", a.factory.Layout().String())
	return nil
}

func (a *app) teardown() error {
	if a.cancel != nil {
		a.cancel()
	}
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
