package render

import (
	"encoding/json"
	"io"

	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/services/game"
)

// JSON renders one JSON document per line
type JSON struct {
	enc *json.Encoder
}

// NewJSON creates a JSON lines renderer
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// TurnRecord is written after each unit phase
type TurnRecord struct {
	Type    string                `json:"type"`
	Turn    int                   `json:"turn"`
	Players []model.PlayerSummary `json:"players"`
}

// OutcomeRecord is written once a match ends
type OutcomeRecord struct {
	Type  string              `json:"type"`
	Match *model.MatchSummary `json:"match"`
}

func (j *JSON) RenderTurn(g *game.Game) error {
	players := make([]model.PlayerSummary, 0, len(g.Players()))
	for _, p := range g.Players() {
		players = append(players, p.Summary())
	}
	return j.enc.Encode(TurnRecord{Type: "turn", Turn: g.Turn(), Players: players})
}

func (j *JSON) RenderOutcome(g *game.Game, summary *model.MatchSummary) error {
	return j.enc.Encode(OutcomeRecord{Type: "outcome", Match: summary})
}

func (j *JSON) RenderMatch(summary *model.MatchSummary) error {
	return j.enc.Encode(summary)
}

func (j *JSON) RenderMatches(matches []*model.MatchSummary) error {
	if matches == nil {
		matches = []*model.MatchSummary{}
	}
	return j.enc.Encode(matches)
}

func (j *JSON) RenderMessage(msg string) error {
	return j.enc.Encode(map[string]string{"message": msg})
}

func (j *JSON) RenderError(err error) error {
	return j.enc.Encode(map[string]any{
		"error": map[string]string{
			"message": err.Error(),
		},
	})
}
