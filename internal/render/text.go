package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/services/game"
)

// Text renders colored, tabular output for terminals
type Text struct {
	w io.Writer

	title   *color.Color
	success *color.Color
	failure *color.Color
	info    *color.Color
}

// NewText creates a text renderer. Colors follow color.NoColor.
func NewText(w io.Writer) *Text {
	return &Text{
		w:       w,
		title:   color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		info:    color.New(color.FgYellow),
	}
}

// RenderTurn prints every player's gold and roster after the unit phase
func (t *Text) RenderTurn(g *game.Game) error {
	if _, err := t.title.Fprintf(t.w, "===== Turn %d =====\n", g.Turn()); err != nil {
		return err
	}

	for _, p := range g.Players() {
		if _, err := fmt.Fprintf(t.w, "%s  gold: %d\n", p.Name, p.Gold); err != nil {
			return err
		}
		if p.IsDefeated() {
			if _, err := t.failure.Fprintf(t.w, "%s has been defeated\n", p.Name); err != nil {
				return err
			}
		}

		table := tablewriter.NewTable(t.w,
			tablewriter.WithHeader([]string{"#", "Unit", "HP", "Armor", "Damage"}),
		)
		for _, u := range p.Units() {
			stats := u.Stats()
			if err := table.Append([]string{
				strconv.Itoa(u.ID),
				stats.Name,
				fmt.Sprintf("%d/%d", u.HP, stats.BaseHP),
				strconv.Itoa(stats.Armor),
				strconv.Itoa(stats.Damage),
			}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(t.w); err != nil {
			return err
		}
	}
	return nil
}

// RenderOutcome announces how the match ended
func (t *Text) RenderOutcome(g *game.Game, summary *model.MatchSummary) error {
	name := g.Human().Name
	var err error
	switch summary.Outcome {
	case model.OutcomeHumanWon:
		_, err = t.success.Fprintf(t.w, "=== %s won after %s!\n", name, turns(summary.Turns))
	case model.OutcomeHumanDefeated:
		_, err = t.failure.Fprintf(t.w, "=== %s was defeated after %s\n", name, turns(summary.Turns))
	default:
		_, err = t.info.Fprintf(t.w, "=== No winner after %s\n", turns(summary.Turns))
	}
	return err
}

// RenderMatch prints the details of one recorded match
func (t *Text) RenderMatch(summary *model.MatchSummary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Match: %s\n", summary.ID)
	fmt.Fprintf(&b, "Outcome: %s\n", t.outcome(summary.Outcome))
	fmt.Fprintf(&b, "Turns: %d\n", summary.Turns)
	if summary.Seed != nil {
		fmt.Fprintf(&b, "Seed: %d\n", *summary.Seed)
	}
	if winner := summary.Winner(); winner != "" {
		fmt.Fprintf(&b, "Winner: %s\n", winner)
	}
	fmt.Fprintf(&b, "Completed: %s\n", summary.CompletedAt.Format(time.RFC3339))
	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return err
	}

	table := tablewriter.NewTable(t.w,
		tablewriter.WithHeader([]string{"Player", "Strategy", "Gold", "Status", "Roster", "Bought"}),
	)
	for _, p := range summary.Players {
		status := "alive"
		if p.Defeated {
			status = "defeated"
		}
		if err := table.Append([]string{
			p.Name,
			model.StrategyDisplayName(p.Strategy),
			strconv.Itoa(p.Gold),
			status,
			formatCounts(p.Roster),
			formatCounts(p.Bought),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

// RenderMatches prints one row per recorded match
func (t *Text) RenderMatches(matches []*model.MatchSummary) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(t.w, "No matches recorded")
		return err
	}

	table := tablewriter.NewTable(t.w,
		tablewriter.WithHeader([]string{"ID", "Completed", "Outcome", "Turns", "Winner"}),
	)
	for _, m := range matches {
		winner := m.Winner()
		if winner == "" {
			winner = "-"
		}
		if err := table.Append([]string{
			string(m.ID),
			m.CompletedAt.Format(time.RFC3339),
			t.outcome(m.Outcome),
			strconv.Itoa(m.Turns),
			winner,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

// RenderMessage prints a plain line
func (t *Text) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(t.w, msg)
	return err
}

// RenderError prints an error line
func (t *Text) RenderError(err error) error {
	_, werr := t.failure.Fprintf(t.w, "Error: %s\n", err)
	return werr
}

func (t *Text) outcome(outcome model.MatchOutcome) string {
	switch outcome {
	case model.OutcomeHumanWon:
		return t.success.Sprint("won")
	case model.OutcomeHumanDefeated:
		return t.failure.Sprint("defeated")
	case model.OutcomeTurnLimit:
		return t.info.Sprint("turn limit")
	default:
		return string(outcome)
	}
}

func turns(n int) string {
	if n == 1 {
		return "1 turn"
	}
	return fmt.Sprintf("%d turns", n)
}

// formatCounts renders per-kind counts in stat-table order, e.g. "castle=1 farmer=2"
func formatCounts(counts map[model.UnitKind]int) string {
	var parts []string
	for _, kind := range model.AllUnitKinds() {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", kind, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
