package bot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/castlewars/internal/dependencies/mocks"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/rules"
	"github.com/mcoot/castlewars/internal/services/bot"
	"github.com/mcoot/castlewars/internal/services/game"
	"github.com/mcoot/castlewars/internal/testutil"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.RandomStrategy
	player     *game.Player
	game       *game.Game
	ctx        context.Context
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewRandomStrategy(s.mockRandom)
	s.player = game.NewPlayer("p2", "Alice", s.strategy, rules.DefaultConfig(), testutil.NopLogger())

	var err error
	s.game, err = game.New([]*game.Player{s.player}, s.mockRandom, rules.DefaultConfig(), testutil.NopLogger())
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *StrategySuite) TestStartsWantingFarmer() {
	s.Equal(model.UnitFarmer, s.strategy.Want())
	s.Equal(model.StrategyScripted, s.strategy.Name())
}

func (s *StrategySuite) TestBuysWantedUnitAndRerolls() {
	s.mockRandom.QueueIntn(2) // Knight

	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	s.Equal([]model.UnitKind{model.UnitFarmer}, bought)
	s.Equal(0, s.player.Gold)
	s.Len(s.player.Units(), 2)
	s.Equal(model.UnitKnight, s.strategy.Want())
	s.Equal([]int{3}, s.mockRandom.IntnCalls)
}

func (s *StrategySuite) TestSavesWhenUnaffordable() {
	s.mockRandom.QueueIntn(1) // Archer
	_, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)
	s.Equal(model.UnitArcher, s.strategy.Want())

	s.player.Gold = 19
	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	s.Empty(bought)
	s.Equal(19, s.player.Gold)
	s.Equal(model.UnitArcher, s.strategy.Want(), "keeps saving for the same unit")
	s.Len(s.mockRandom.IntnCalls, 1)
}

func (s *StrategySuite) TestBuysAtMostOneUnitPerDecision() {
	s.player.Gold = 1000
	s.mockRandom.QueueIntn(0) // Farmer again

	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	s.Len(bought, 1)
	s.Equal(995, s.player.Gold)
}

func (s *StrategySuite) TestUsesEscalatedPrice() {
	s.player.Gold = 11
	s.mockRandom.QueueIntn(0, 0)

	_, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)
	_, err = s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	s.Equal(0, s.player.Gold, "5 then 6")
	s.Equal(2, s.player.TimesBought(model.UnitFarmer))
}
