package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/castlewars/internal/api"
	"github.com/mcoot/castlewars/internal/factory"
)

func newServeCmd() *cobra.Command {
	serverCfg := api.DefaultServerConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the JSON API for running headless matches and reading match history.
Server logs are written to stderr as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesCfg, err := cfg.LoadRules()
			if err != nil {
				return err
			}

			serverLogger := cfg.ServerLogger(cmd.ErrOrStderr())

			app, err := factory.New(cfg.FactoryConfig(serverLogger, rulesCfg))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			server := api.NewServer(app.Router(), serverCfg, serverLogger)
			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&serverCfg.Host, "host", getEnvOrDefault("CASTLEWARS_HOST", serverCfg.Host), "Listen host (env: CASTLEWARS_HOST)")
	cmd.Flags().IntVarP(&serverCfg.Port, "port", "p", serverCfg.Port, "Listen port")

	return cmd
}
