package human_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/castlewars/internal/dependencies/mocks"
	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/rules"
	"github.com/mcoot/castlewars/internal/services/game"
	"github.com/mcoot/castlewars/internal/services/human"
	"github.com/mcoot/castlewars/internal/testutil"
)

type failingInput struct{ err error }

func (f failingInput) ReadChoice(context.Context, string) (string, error) {
	return "", f.err
}

type StrategySuite struct {
	suite.Suite
	out    *bytes.Buffer
	player *game.Player
	game   *game.Game
	ctx    context.Context
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

// setup wires a single human player reading the given keystrokes
func (s *StrategySuite) setup(keys string) *human.InteractiveStrategy {
	input := human.NewLineInput(strings.NewReader(keys), s.out)
	strategy := human.NewInteractiveStrategy(input, s.out)
	s.player = game.NewPlayer("p1", "Human", strategy, rules.DefaultConfig(), testutil.NopLogger())

	var err error
	s.game, err = game.New([]*game.Player{s.player}, mocks.NewMockRandom(), rules.DefaultConfig(), testutil.NopLogger())
	s.Require().NoError(err)
	return strategy
}

func (s *StrategySuite) TestName() {
	s.Equal(model.StrategyInteractive, s.setup("").Name())
}

func (s *StrategySuite) TestEmptyLineEndsPhase() {
	s.setup("\n")

	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)
	s.Empty(bought)
	s.Equal(5, s.player.Gold)
}

func (s *StrategySuite) TestBuyFarmerThenPass() {
	s.setup("1\n\n")

	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	s.Equal([]model.UnitKind{model.UnitFarmer}, bought)
	s.Equal(0, s.player.Gold)
	s.Contains(s.out.String(), "Bought a new Farmer.")
}

func (s *StrategySuite) TestPromptShowsCurrentPrices() {
	s.setup("1\n\n")

	_, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	out := s.out.String()
	s.Contains(out, "You have 5 gold, who do you want to buy? (enter - nobody, 1 - farmer (5), 2 - archer (20), 3 - knight (30)) > ")
	s.Contains(out, "You have 0 gold, who do you want to buy? (enter - nobody, 1 - farmer (6), 2 - archer (20), 3 - knight (30)) > ")
}

func (s *StrategySuite) TestInvalidChoiceRePrompts() {
	s.setup("7\nwizard\n\n")

	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	s.Empty(bought)
	s.Equal(2, strings.Count(s.out.String(), "Unknown choice, try again."))
	s.Equal(3, strings.Count(s.out.String(), "who do you want to buy?"))
}

func (s *StrategySuite) TestCastleIsNotForSale() {
	s.setup("castle\n\n")

	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	s.Empty(bought)
	s.Equal(1, strings.Count(s.out.String(), "Unknown choice, try again."))
	s.Len(s.player.Units(), 1)
}

func (s *StrategySuite) TestUnaffordableChoiceReportsAndRePrompts() {
	s.setup("2\n1\n\n")

	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	s.Equal([]model.UnitKind{model.UnitFarmer}, bought)
	s.Contains(s.out.String(), "Not enough gold to buy Archer.")
	s.Len(s.player.Units(), 2)
}

func (s *StrategySuite) TestMultiplePurchasesByNameAndNumber() {
	s.setup("1\nFarmer\n  KNIGHT  \n\n")
	s.player.Gold = 100

	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)

	s.Equal([]model.UnitKind{model.UnitFarmer, model.UnitFarmer, model.UnitKnight}, bought)
	s.Equal(59, s.player.Gold)
}

func (s *StrategySuite) TestEndOfInputEndsPhase() {
	s.setup("1")

	bought, err := s.player.Decide(s.ctx, s.game)
	s.Require().NoError(err)
	s.Equal([]model.UnitKind{model.UnitFarmer}, bought)
}

func (s *StrategySuite) TestCancelledContext() {
	s.setup("1\n\n")
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.player.Decide(ctx, s.game)
	s.ErrorIs(err, context.Canceled)
	s.Equal(5, s.player.Gold)
}

func (s *StrategySuite) TestInputErrorPropagates() {
	boom := errors.New("terminal gone")
	strategy := human.NewInteractiveStrategy(failingInput{err: boom}, s.out)
	player := game.NewPlayer("p1", "Human", strategy, rules.DefaultConfig(), testutil.NopLogger())
	g, err := game.New([]*game.Player{player}, mocks.NewMockRandom(), rules.DefaultConfig(), testutil.NopLogger())
	s.Require().NoError(err)

	_, err = player.Decide(s.ctx, g)
	s.ErrorIs(err, boom)
}
