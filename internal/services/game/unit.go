package game

import (
	"fmt"

	"github.com/mcoot/castlewars/internal/model"
)

// Unit is a single combatant owned by a player
type Unit struct {
	ID    int // Sequence number, unique within the owner's units
	Kind  model.UnitKind
	HP    int
	Owner model.PlayerID // Non-owning back-reference, resolved through the Game
	stats model.UnitStats
}

func newUnit(id int, kind model.UnitKind, owner model.PlayerID) (*Unit, error) {
	stats, err := model.StatsFor(kind)
	if err != nil {
		return nil, err
	}
	return &Unit{
		ID:    id,
		Kind:  kind,
		HP:    stats.BaseHP,
		Owner: owner,
		stats: stats,
	}, nil
}

// Stats returns the static stat block of the unit's kind
func (u *Unit) Stats() model.UnitStats {
	return u.stats
}

// IsAlive returns true while the unit has hit points left
func (u *Unit) IsAlive() bool {
	return u.HP > 0
}

// applyDamage reduces hit points by the amount left after armor.
// It returns the damage actually taken and whether this hit killed the unit.
// A dead unit takes no further damage, so died is reported at most once.
// Callers go through Game.ApplyDamage so the owner learns about a death.
func (u *Unit) applyDamage(amount int) (taken int, died bool) {
	if !u.IsAlive() {
		return 0, false
	}
	taken = max(0, amount-u.stats.Armor)
	u.HP -= taken
	return taken, !u.IsAlive()
}

// OnTurn performs the unit's per-turn action. Dead units do nothing.
func (u *Unit) OnTurn(g *Game) {
	if !u.IsAlive() {
		return
	}
	owner := g.Player(u.Owner)
	if owner == nil {
		return
	}

	switch {
	case u.Kind == model.UnitFarmer:
		owner.Gold += g.rules.FarmerIncome
	case u.Kind.IsCombatant():
		target := owner.RandomAliveEnemy(g)
		if target == nil {
			return // Nobody left to fight
		}
		g.attack(u, target)
	}
}

func (u *Unit) String() string {
	return fmt.Sprintf("<%s hp=%d/%d def=%d atk=%d>", u.stats.Name, u.HP, u.stats.BaseHP, u.stats.Armor, u.stats.Damage)
}
