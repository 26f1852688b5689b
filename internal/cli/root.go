package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/castlewars/internal/render"
)

var (
	cfg    *Config
	client *Client
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "castlewars",
		Short: "Turn-based castle strategy simulation",
		Long: `castlewars is a small turn-based strategy game. Every player owns a castle
and spends gold on farmers, archers and knights. The last castle standing wins.

Play interactively against computer opponents, simulate fully scripted matches,
or run the HTTP API and browse the recorded match history.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != render.FormatText && cfg.Output != render.FormatJSON {
				return fmt.Errorf("%w: %q", render.ErrUnknownFormat, cfg.Output)
			}
			logger = cfg.Logger(cmd.ErrOrStderr())
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: CASTLEWARS_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: CASTLEWARS_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "YAML rules file (env: CASTLEWARS_RULES)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Match history storage for local matches: memory, redis (env: CASTLEWARS_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL when --storage=redis (env: CASTLEWARS_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error; default warn, info for serve (env: CASTLEWARS_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output (debug logging)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
