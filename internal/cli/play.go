package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/castlewars/internal/factory"
	"github.com/mcoot/castlewars/internal/services/human"
	"github.com/mcoot/castlewars/internal/services/match"
)

func newPlayCmd() *cobra.Command {
	var (
		name   string
		seed   uint64
		events bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match against computer opponents",
		Long: `Play a match on stdin/stdout. After every turn you may buy units with your gold:
enter 1/farmer, 2/archer or 3/knight, or an empty line to end your purchases.

The match ends when your castle falls, every opponent's castle falls,
or the turn limit from the rules is reached.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesCfg, err := cfg.LoadRules()
			if err != nil {
				return err
			}

			app, err := factory.New(cfg.FactoryConfig(logger, rulesCfg))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			out, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			input := human.NewLineInput(cmd.InOrStdin(), cmd.OutOrStdout())
			setup := match.Setup{
				HumanName: name,
				Human:     human.NewInteractiveStrategy(input, cmd.OutOrStdout()),
				Rules:     rulesCfg,
				Renderer:  out,
			}
			if cmd.Flags().Changed("seed") {
				setup.Seed = &seed
			}
			if events {
				setup.OnEvent = eventPrinter(cmd.ErrOrStderr(), isJSON())
			}

			_, err = app.Runner.Run(cmd.Context(), setup)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "You", "Your player name")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible match")
	cmd.Flags().BoolVar(&events, "events", false, "Print every game event to stderr")

	return cmd
}
