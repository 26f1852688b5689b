package game

import (
	"context"
	"log/slog"
	"slices"

	"github.com/mcoot/castlewars/internal/dependencies/random"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/rules"
)

// Player owns a castle, a roster of units and a gold balance
type Player struct {
	ID   model.PlayerID
	Name string
	Gold int

	castle     *Unit
	units      []*Unit // Creation order; the castle is first until it dies
	bought     map[model.UnitKind]int
	nextUnitID int
	strategy   Strategy
	rules      rules.Config
	logger     *slog.Logger
}

// NewPlayer creates a player holding only a full-health castle and the starting gold
func NewPlayer(id model.PlayerID, name string, strategy Strategy, cfg rules.Config, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Player{
		ID:       id,
		Name:     name,
		Gold:     cfg.StartingGold,
		bought:   make(map[model.UnitKind]int),
		strategy: strategy,
		rules:    cfg,
		logger: logger.With(
			slog.String("player_id", string(id)),
			slog.String("player", name),
		),
	}
	// The castle stats are static, so this cannot fail
	p.castle, _ = p.addUnit(model.UnitCastle)
	return p
}

// Castle returns the player's castle, dead or alive
func (p *Player) Castle() *Unit {
	return p.castle
}

// Units returns a copy of the current roster in creation order
func (p *Player) Units() []*Unit {
	return slices.Clone(p.units)
}

// Strategy returns the player's decision strategy
func (p *Player) Strategy() Strategy {
	return p.strategy
}

// TimesBought returns how many units of the kind this player has purchased
func (p *Player) TimesBought(kind model.UnitKind) int {
	return p.bought[kind]
}

// IsDefeated returns true once the castle has died; this never reverts
func (p *Player) IsDefeated() bool {
	return !p.castle.IsAlive()
}

// UnitCost returns the current price of the kind for this player
func (p *Player) UnitCost(kind model.UnitKind) (int, error) {
	stats, err := model.StatsFor(kind)
	if err != nil {
		return 0, err
	}
	return escalatedPrice(stats.Cost, p.rules.PriceGrowth, p.bought[kind]), nil
}

// CanBuy reports whether the player can afford the kind right now.
// Unknown kinds return ErrInvalidUnitType and kinds not for sale return ErrNotForSale.
func (p *Player) CanBuy(kind model.UnitKind) (bool, error) {
	stats, err := model.StatsFor(kind)
	if err != nil {
		return false, err
	}
	if !stats.ForSale {
		return false, model.ErrNotForSale
	}
	cost, err := p.UnitCost(kind)
	if err != nil {
		return false, err
	}
	return p.Gold >= cost, nil
}

// Buy pays for a new unit of the kind and appends it to the roster.
// On any error nothing changes.
func (p *Player) Buy(kind model.UnitKind) (*Unit, error) {
	ok, err := p.CanBuy(kind)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrCannotBuy
	}

	cost, err := p.UnitCost(kind)
	if err != nil {
		return nil, err
	}
	unit, err := p.addUnit(kind)
	if err != nil {
		return nil, err
	}
	p.Gold -= cost
	p.bought[kind]++

	p.logger.Debug("unit bought",
		slog.String("unit", string(kind)),
		slog.Int("cost", cost),
		slog.Int("gold_left", p.Gold),
	)
	return unit, nil
}

// OnTurn lets every unit in the roster act, in roster order.
// The roster is snapshotted first; units killed mid-sweep are skipped.
func (p *Player) OnTurn(g *Game) {
	for _, unit := range slices.Clone(p.units) {
		if unit.IsAlive() {
			unit.OnTurn(g)
		}
	}
}

// OnUnitDied removes the unit from the roster by identity
func (p *Player) OnUnitDied(unit *Unit) {
	p.units = slices.DeleteFunc(p.units, func(u *Unit) bool {
		return u == unit
	})
}

// OnCastleDestroyed records the player's defeat
func (p *Player) OnCastleDestroyed() {
	p.logger.Info("castle destroyed")
}

// RandomAliveEnemy picks a living unit owned by any other player, uniformly at random.
// It returns nil when no such unit exists.
func (p *Player) RandomAliveEnemy(g *Game) *Unit {
	var enemies []*Unit
	for _, other := range g.players {
		if other == p {
			continue
		}
		for _, unit := range other.units {
			if unit.IsAlive() {
				enemies = append(enemies, unit)
			}
		}
	}
	enemy, _ := random.Choice(g.random, enemies)
	return enemy
}

// Decide runs the player's purchase phase through its strategy
func (p *Player) Decide(ctx context.Context, g *Game) ([]model.UnitKind, error) {
	if p.strategy == nil {
		return nil, nil
	}
	return p.strategy.Decide(ctx, p, g)
}

// Summary captures the player's current state for match history
func (p *Player) Summary() model.PlayerSummary {
	roster := make(map[model.UnitKind]int)
	for _, unit := range p.units {
		roster[unit.Kind]++
	}
	bought := make(map[model.UnitKind]int, len(p.bought))
	for kind, n := range p.bought {
		bought[kind] = n
	}
	strategy := ""
	if p.strategy != nil {
		strategy = p.strategy.Name()
	}
	return model.PlayerSummary{
		ID:       p.ID,
		Name:     p.Name,
		Strategy: strategy,
		Gold:     p.Gold,
		Defeated: p.IsDefeated(),
		Roster:   roster,
		Bought:   bought,
	}
}

func (p *Player) addUnit(kind model.UnitKind) (*Unit, error) {
	p.nextUnitID++
	unit, err := newUnit(p.nextUnitID, kind, p.ID)
	if err != nil {
		p.nextUnitID--
		return nil, err
	}
	p.units = append(p.units, unit)
	return unit, nil
}
