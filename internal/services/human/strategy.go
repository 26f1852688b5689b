package human

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/services/game"
)

// InteractiveStrategy asks a person what to buy until they pass
type InteractiveStrategy struct {
	input Input
	out   io.Writer
}

var _ game.Strategy = (*InteractiveStrategy)(nil)

// NewInteractiveStrategy creates a strategy reading choices from input and reporting on out
func NewInteractiveStrategy(input Input, out io.Writer) *InteractiveStrategy {
	return &InteractiveStrategy{
		input: input,
		out:   out,
	}
}

// Name returns the strategy identifier
func (s *InteractiveStrategy) Name() string {
	return model.StrategyInteractive
}

// Decide keeps prompting and buying until the player enters an empty line.
// Unaffordable choices are reported and asked again; end of input ends the phase.
func (s *InteractiveStrategy) Decide(ctx context.Context, p *game.Player, g *game.Game) ([]model.UnitKind, error) {
	var bought []model.UnitKind
	for {
		kind, done, err := s.askUnitToBuy(ctx, p)
		if err != nil {
			return bought, err
		}
		if done {
			return bought, nil
		}

		ok, err := p.CanBuy(kind)
		if err != nil {
			return bought, err
		}
		if !ok {
			fmt.Fprintf(s.out, "Not enough gold to buy %s.\n", kind.DisplayName())
			continue
		}

		if _, err := p.Buy(kind); err != nil {
			return bought, err
		}
		bought = append(bought, kind)
		fmt.Fprintf(s.out, "Bought a new %s.\n", kind.DisplayName())
	}
}

// askUnitToBuy prompts until the input names a unit or is empty (done)
func (s *InteractiveStrategy) askUnitToBuy(ctx context.Context, p *game.Player) (model.UnitKind, bool, error) {
	for {
		prompt, err := s.prompt(p)
		if err != nil {
			return "", false, err
		}

		line, err := s.input.ReadChoice(ctx, prompt)
		if errors.Is(err, io.EOF) {
			return "", true, nil
		}
		if err != nil {
			return "", false, err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == "" {
			return "", true, nil
		}
		if kind, ok := parseChoice(choice); ok {
			return kind, false, nil
		}

		fmt.Fprintln(s.out, "Unknown choice, try again.")
	}
}

func (s *InteractiveStrategy) prompt(p *game.Player) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You have %d gold, who do you want to buy? (enter - nobody", p.Gold)
	for i, kind := range model.PurchasableKinds() {
		cost, err := p.UnitCost(kind)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, ", %d - %s (%d)", i+1, strings.ToLower(kind.DisplayName()), cost)
	}
	b.WriteString(") > ")
	return b.String(), nil
}

// parseChoice accepts a menu number or a unit name
func parseChoice(choice string) (model.UnitKind, bool) {
	purchasable := model.PurchasableKinds()
	for i, kind := range purchasable {
		if choice == fmt.Sprint(i+1) {
			return kind, true
		}
	}
	kind, err := model.ParseUnitKind(choice)
	if err != nil || !slices.Contains(purchasable, kind) {
		return "", false
	}
	return kind, true
}
