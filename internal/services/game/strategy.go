package game

import (
	"context"

	"github.com/mcoot/castlewars/internal/model"
)

// Strategy decides how a player spends gold during the purchase phase
type Strategy interface {
	// Name identifies the strategy in summaries and logs
	Name() string
	// Decide runs the purchase phase for p and returns the kinds bought, in order
	Decide(ctx context.Context, p *Player, g *Game) ([]model.UnitKind, error)
}
