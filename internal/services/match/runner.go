package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/castlewars/internal/dependencies/clock"
	"github.com/mcoot/castlewars/internal/dependencies/random"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/rules"
	"github.com/mcoot/castlewars/internal/services/bot"
	"github.com/mcoot/castlewars/internal/services/game"
	"github.com/mcoot/castlewars/internal/storage"
)

// DefaultHumanName is used for the protagonist when Setup leaves it empty
const DefaultHumanName = "Player"

// Renderer shows the state of a running match
type Renderer interface {
	RenderTurn(g *game.Game) error
	RenderOutcome(g *game.Game, summary *model.MatchSummary) error
}

// Setup describes one match to run
type Setup struct {
	HumanName string
	// Human is the protagonist's strategy. Nil makes the protagonist scripted.
	Human game.Strategy
	Rules rules.Config
	// Seed, when set, makes the whole match reproducible
	Seed *uint64
	// Renderer is optional
	Renderer Renderer
	// OnEvent is optional and receives every game event
	OnEvent game.EventHandler
}

// Runner builds games and drives them to completion, recording each finished match
type Runner struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewRunner creates a Runner. A nil storage disables match recording.
func NewRunner(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		storage: store,
		clock:   clk,
		random:  rnd,
		logger:  logger.With(slog.String("component", "match")),
	}
}

// NewGame creates the game described by setup: the protagonist first as p1,
// then one scripted player per configured opponent.
func (r *Runner) NewGame(setup Setup) (*game.Game, error) {
	if err := setup.Rules.Validate(); err != nil {
		return nil, err
	}

	rnd := r.random
	if setup.Seed != nil {
		rnd = random.NewSeeded(*setup.Seed)
	}

	name := setup.HumanName
	if name == "" {
		name = DefaultHumanName
	}
	human := setup.Human
	if human == nil {
		human = bot.NewRandomStrategy(rnd)
	}

	players := make([]*game.Player, 0, len(setup.Rules.Opponents)+1)
	players = append(players, game.NewPlayer(playerID(0), name, human, setup.Rules, r.logger))
	for i, opponent := range setup.Rules.Opponents {
		strategy := bot.NewRandomStrategy(rnd)
		players = append(players, game.NewPlayer(playerID(i+1), opponent, strategy, setup.Rules, r.logger))
	}

	g, err := game.New(players, rnd, setup.Rules, r.logger)
	if err != nil {
		return nil, err
	}
	g.SetEventHandler(setup.OnEvent)
	return g, nil
}

// Run plays a complete match and records its summary
func (r *Runner) Run(ctx context.Context, setup Setup) (*model.MatchSummary, error) {
	g, err := r.NewGame(setup)
	if err != nil {
		return nil, err
	}

	createdAt := r.clock.Now()
	id := model.MatchID(uuid.NewString())
	logger := r.logger.With(slog.String("match_id", string(id)))
	logger.Info("match started",
		slog.Int("players", len(g.Players())),
		slog.Bool("seeded", setup.Seed != nil),
	)

	outcome, err := Play(ctx, g, setup.Renderer)
	if err != nil {
		logger.Warn("match aborted", slog.Int("turn", g.Turn()), slog.String("error", err.Error()))
		return nil, err
	}

	summary := Summarize(g, outcome)
	summary.ID = id
	summary.Seed = setup.Seed
	summary.CreatedAt = createdAt
	summary.CompletedAt = r.clock.Now()

	if setup.Renderer != nil {
		if err := setup.Renderer.RenderOutcome(g, summary); err != nil {
			return nil, fmt.Errorf("render outcome: %w", err)
		}
	}

	if r.storage != nil {
		if err := r.storage.SaveMatch(ctx, summary); err != nil {
			return nil, fmt.Errorf("save match: %w", err)
		}
	}

	logger.Info("match finished",
		slog.String("outcome", string(summary.Outcome)),
		slog.Int("turns", summary.Turns),
	)
	return summary, nil
}

// Play runs the turn loop on g until the protagonist loses, wins, or the turn cap is hit.
// Each iteration resolves the unit phase, renders, checks the end conditions and
// only then lets players buy, so a unit never acts in the turn it was bought.
func Play(ctx context.Context, g *game.Game, renderer Renderer) (model.MatchOutcome, error) {
	for g.Turn() < g.Rules().MaxTurns {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		g.MakeTurn()
		if renderer != nil {
			if err := renderer.RenderTurn(g); err != nil {
				return "", fmt.Errorf("render turn %d: %w", g.Turn(), err)
			}
		}

		if g.IsHumanDefeated() {
			return model.OutcomeHumanDefeated, nil
		}
		if g.IsHumanVictorious() {
			return model.OutcomeHumanWon, nil
		}

		if err := g.ResolveDecisions(ctx); err != nil {
			return "", err
		}
	}
	return model.OutcomeTurnLimit, nil
}

// Summarize captures the final state of g. The caller fills in identity and timestamps.
func Summarize(g *game.Game, outcome model.MatchOutcome) *model.MatchSummary {
	players := make([]model.PlayerSummary, 0, len(g.Players()))
	for _, p := range g.Players() {
		players = append(players, p.Summary())
	}
	return &model.MatchSummary{
		Turns:   g.Turn(),
		Outcome: outcome,
		Players: players,
	}
}

func playerID(i int) model.PlayerID {
	return model.PlayerID(fmt.Sprintf("p%d", i+1))
}
