package commands

import (
	"context"

	"github.com/spf13/cobra"

	"toolbox/internal/config"
	"toolbox/internal/currency"
	"toolbox/internal/observability"
	"toolbox/internal/theme"
)

var (
	configPath string
	endpoint   string
	verbose    bool

	cfg   config.Config
	rater currency.Rater
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tools",
		Short:        "Calculator, counter and currency converter",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if endpoint != "" {
				cfg.Exchange.Endpoint = endpoint
			}

			if verbose {
				if err := observability.InitLogger("debug", true); err != nil {
					return err
				}
			}
			if err := currency.InitMetrics(); err != nil {
				return err
			}

			rater = currency.NewClient(
				cfg.Exchange.Endpoint,
				cfg.Exchange.AccessKey,
				observability.NewHTTPClient(cfg.Exchange.Timeout),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.SyncLogger()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $TOOLBOX_CONFIG)")
	root.PersistentFlags().StringVar(&endpoint, "endpoint", "", "exchange-rate endpoint, overrides the config")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logs on stderr")

	root.AddCommand(calcCmd(), countCmd(), convertCmd(), currenciesCmd())
	return root
}

// renderContext carries the configured theme to the renderers.
func renderContext(cmd *cobra.Command) context.Context {
	return theme.NewContext(cmd.Context(), cfg.DefaultTheme())
}
