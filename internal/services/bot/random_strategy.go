package bot

import (
	"context"

	"github.com/mcoot/castlewars/internal/dependencies/random"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/services/game"
)

// RandomStrategy saves up for one wanted unit at a time. Each time it can afford
// the wanted unit it buys exactly one and picks the next wanted kind at random.
type RandomStrategy struct {
	random random.Random
	want   model.UnitKind
}

var _ game.Strategy = (*RandomStrategy)(nil)

// NewRandomStrategy creates a RandomStrategy that starts by saving for a farmer
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{
		random: rnd,
		want:   model.UnitFarmer,
	}
}

// Name returns the strategy identifier
func (s *RandomStrategy) Name() string {
	return model.StrategyScripted
}

// Want returns the kind the strategy is currently saving for
func (s *RandomStrategy) Want() model.UnitKind {
	return s.want
}

// Decide buys the wanted unit if affordable, otherwise keeps saving
func (s *RandomStrategy) Decide(ctx context.Context, p *game.Player, g *game.Game) ([]model.UnitKind, error) {
	ok, err := p.CanBuy(s.want)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if _, err := p.Buy(s.want); err != nil {
		return nil, err
	}
	bought := s.want
	s.wantAnotherUnit()
	return []model.UnitKind{bought}, nil
}

func (s *RandomStrategy) wantAnotherUnit() {
	if kind, ok := random.Choice(s.random, model.PurchasableKinds()); ok {
		s.want = kind
	}
}
