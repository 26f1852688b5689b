package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/castlewars/internal/factory"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/render"
	"github.com/mcoot/castlewars/internal/services/match"
)

// simulateOptions holds the flags of the simulate command
type simulateOptions struct {
	games     int
	seed      uint64
	seeded    bool
	name      string
	opponents []string
	maxTurns  int
	showTurns bool
	events    bool
	remote    bool
}

func newSimulateCmd() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run fully scripted matches",
		Long: `Run one or more matches where every player, the protagonist included, follows the
scripted strategy. With --seed the matches are reproducible: match i uses seed+i.

With --remote the matches run on the server and are recorded in its history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.games <= 0 {
				return fmt.Errorf("--games must be positive")
			}
			opts.seeded = cmd.Flags().Changed("seed")

			out, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			var summaries []*model.MatchSummary
			if opts.remote {
				summaries, err = simulateRemote(opts, out)
			} else {
				summaries, err = simulateLocal(cmd, opts, out)
			}
			if err != nil {
				return err
			}

			if !isJSON() && opts.games > 1 {
				return out.RenderMessage(tally(summaries))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.games, "games", "n", 1, "Number of matches to run")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible matches")
	cmd.Flags().StringVar(&opts.name, "name", "", "Protagonist name")
	cmd.Flags().StringSliceVar(&opts.opponents, "opponents", nil, "Opponent names (overrides the rules)")
	cmd.Flags().IntVar(&opts.maxTurns, "max-turns", 0, "Turn limit (overrides the rules)")
	cmd.Flags().BoolVar(&opts.showTurns, "turns", false, "Render the board after every turn")
	cmd.Flags().BoolVar(&opts.events, "events", false, "Print every game event to stderr")
	cmd.Flags().BoolVar(&opts.remote, "remote", false, "Run the matches on the server")

	return cmd
}

func simulateLocal(cmd *cobra.Command, opts simulateOptions, out render.Renderer) ([]*model.MatchSummary, error) {
	rulesCfg, err := cfg.LoadRules()
	if err != nil {
		return nil, err
	}
	if opts.opponents != nil {
		rulesCfg.Opponents = opts.opponents
	}
	if opts.maxTurns > 0 {
		rulesCfg.MaxTurns = opts.maxTurns
	}

	app, err := factory.New(cfg.FactoryConfig(logger, rulesCfg))
	if err != nil {
		return nil, err
	}
	defer func() { _ = app.Close() }()

	summaries := make([]*model.MatchSummary, 0, opts.games)
	for i := 0; i < opts.games; i++ {
		setup := match.Setup{
			HumanName: opts.name,
			Rules:     rulesCfg,
		}
		if opts.seeded {
			seed := opts.seed + uint64(i)
			setup.Seed = &seed
		}
		if opts.showTurns {
			setup.Renderer = out
		}
		if opts.events {
			setup.OnEvent = eventPrinter(cmd.ErrOrStderr(), isJSON())
		}

		summary, err := app.Runner.Run(cmd.Context(), setup)
		if err != nil {
			return nil, err
		}
		if !opts.showTurns {
			if err := out.RenderMatch(summary); err != nil {
				return nil, err
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func simulateRemote(opts simulateOptions, out render.Renderer) ([]*model.MatchSummary, error) {
	summaries := make([]*model.MatchSummary, 0, opts.games)
	for i := 0; i < opts.games; i++ {
		req := CreateMatchRequest{
			Name:      opts.name,
			Opponents: opts.opponents,
			MaxTurns:  opts.maxTurns,
		}
		if opts.seeded {
			seed := opts.seed + uint64(i)
			req.Seed = &seed
		}

		summary, err := client.CreateMatch(req)
		if err != nil {
			return nil, err
		}
		if err := out.RenderMatch(summary); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// tally summarizes the outcomes of several matches in one line
func tally(summaries []*model.MatchSummary) string {
	counts := make(map[model.MatchOutcome]int)
	turns := 0
	for _, s := range summaries {
		counts[s.Outcome]++
		turns += s.Turns
	}
	avg := 0.0
	if len(summaries) > 0 {
		avg = float64(turns) / float64(len(summaries))
	}
	return fmt.Sprintf("%d matches: %d won, %d defeated, %d hit the turn limit (%.1f turns on average)",
		len(summaries),
		counts[model.OutcomeHumanWon],
		counts[model.OutcomeHumanDefeated],
		counts[model.OutcomeTurnLimit],
		avg,
	)
}
