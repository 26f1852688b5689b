package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/castlewars/internal/dependencies/random"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/rules"
)

// EventHandler receives events as the game resolves turns and purchases
type EventHandler func(model.Event)

// Game owns all players and drives turn resolution.
// The first player is the human (protagonist); the rest are scripted.
type Game struct {
	players []*Player
	random  random.Random
	rules   rules.Config
	turn    int
	onEvent EventHandler
	logger  *slog.Logger
}

// New creates a game over a fixed roster of players
func New(players []*Player, rnd random.Random, cfg rules.Config, logger *slog.Logger) (*Game, error) {
	if len(players) == 0 {
		return nil, model.ErrNoPlayers
	}
	seen := make(map[model.PlayerID]bool, len(players))
	for _, p := range players {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %s", model.ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Game{
		players: players,
		random:  rnd,
		rules:   cfg,
		logger:  logger.With(slog.String("component", "game")),
	}, nil
}

// SetEventHandler registers fn to receive game events; nil disables events
func (g *Game) SetEventHandler(fn EventHandler) {
	g.onEvent = fn
}

// Players returns all players in turn order
func (g *Game) Players() []*Player {
	return g.players
}

// Human returns the protagonist player
func (g *Game) Human() *Player {
	return g.players[0]
}

// Scripted returns every player except the protagonist
func (g *Game) Scripted() []*Player {
	return g.players[1:]
}

// Player looks up a player by ID, returning nil if unknown
func (g *Game) Player(id model.PlayerID) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Turn returns the number of turns resolved so far
func (g *Game) Turn() int {
	return g.turn
}

// Random returns the game's random source
func (g *Game) Random() random.Random {
	return g.random
}

// Rules returns the rules the game was created with
func (g *Game) Rules() rules.Config {
	return g.rules
}

// MakeTurn runs the unit action phase for every player still in the game
func (g *Game) MakeTurn() {
	g.turn++
	for _, p := range g.players {
		if !p.IsDefeated() {
			p.OnTurn(g)
		}
	}
	g.logger.Debug("turn resolved", slog.Int("turn", g.turn))
}

// ResolveDecisions runs the purchase phase for every player still in the game.
// It is kept apart from MakeTurn so purchases never act in the turn they were made.
func (g *Game) ResolveDecisions(ctx context.Context) error {
	for _, p := range g.players {
		if p.IsDefeated() {
			continue
		}
		bought, err := p.Decide(ctx, g)
		for _, kind := range bought {
			g.emit(model.Event{
				Type:     model.EventUnitBought,
				Turn:     g.turn,
				PlayerID: p.ID,
				Unit:     kind,
				Payload:  model.UnitBoughtPayload{GoldLeft: p.Gold},
			})
		}
		if err != nil {
			return fmt.Errorf("purchase phase for %s: %w", p.Name, err)
		}
	}
	return nil
}

// IsHumanDefeated returns true once the protagonist's castle has died
func (g *Game) IsHumanDefeated() bool {
	return g.Human().IsDefeated()
}

// IsHumanVictorious returns true when every scripted player is defeated
func (g *Game) IsHumanVictorious() bool {
	for _, p := range g.Scripted() {
		if !p.IsDefeated() {
			return false
		}
	}
	return true
}

// attack resolves one hit and dispatches the death notification if it killed the target
// ApplyDamage deals amount to unit outside of a regular attack.
// A killing blow removes the unit from its owner and emits the death events,
// exactly as a unit attack would.
func (g *Game) ApplyDamage(unit *Unit, amount int) (taken int, died bool) {
	taken, died = unit.applyDamage(amount)
	if died {
		g.unitDied(unit)
	}
	return taken, died
}

func (g *Game) attack(attacker, target *Unit) {
	taken, died := target.applyDamage(attacker.stats.Damage)
	g.emit(model.Event{
		Type:     model.EventUnitAttacked,
		Turn:     g.turn,
		PlayerID: target.Owner,
		Unit:     target.Kind,
		UnitID:   target.ID,
		Payload: model.UnitAttackedPayload{
			AttackerOwner: attacker.Owner,
			Attacker:      attacker.Kind,
			Damage:        taken,
			RemainingHP:   target.HP,
		},
	})
	if died {
		g.unitDied(target)
	}
}

func (g *Game) unitDied(unit *Unit) {
	owner := g.Player(unit.Owner)
	if owner == nil {
		return
	}
	owner.OnUnitDied(unit)
	g.logger.Debug("unit died",
		slog.String("player_id", string(owner.ID)),
		slog.String("unit", string(unit.Kind)),
		slog.Int("unit_id", unit.ID),
		slog.Int("turn", g.turn),
	)
	g.emit(model.Event{
		Type:     model.EventUnitDied,
		Turn:     g.turn,
		PlayerID: owner.ID,
		Unit:     unit.Kind,
		UnitID:   unit.ID,
	})

	if unit.Kind == model.UnitCastle {
		owner.OnCastleDestroyed()
		g.emit(model.Event{
			Type:     model.EventCastleDestroyed,
			Turn:     g.turn,
			PlayerID: owner.ID,
			Unit:     unit.Kind,
			UnitID:   unit.ID,
		})
	}
}

func (g *Game) emit(e model.Event) {
	if g.onEvent != nil {
		g.onEvent(e)
	}
}
