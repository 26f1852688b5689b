package response

import (
	"time"

	"github.com/mcoot/castlewars/internal/model"
)

// Player represents a player's final state in API responses
type Player struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Strategy string         `json:"strategy"`
	Gold     int            `json:"gold"`
	Defeated bool           `json:"defeated"`
	Roster   map[string]int `json:"roster"`
	Bought   map[string]int `json:"bought"`
}

// PlayerFromModel converts a model.PlayerSummary to a response Player
func PlayerFromModel(p model.PlayerSummary) Player {
	return Player{
		ID:       string(p.ID),
		Name:     p.Name,
		Strategy: p.Strategy,
		Gold:     p.Gold,
		Defeated: p.Defeated,
		Roster:   countsFromModel(p.Roster),
		Bought:   countsFromModel(p.Bought),
	}
}

// Match represents a recorded match
type Match struct {
	ID          string    `json:"id"`
	Seed        *uint64   `json:"seed,omitempty"`
	Turns       int       `json:"turns"`
	Outcome     string    `json:"outcome"`
	Winner      *string   `json:"winner"`
	Players     []Player  `json:"players"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// MatchFromModel converts a model.MatchSummary to a response Match
func MatchFromModel(m *model.MatchSummary) Match {
	players := make([]Player, len(m.Players))
	for i, p := range m.Players {
		players[i] = PlayerFromModel(p)
	}

	var winner *string
	if name := m.Winner(); name != "" {
		winner = &name
	}

	return Match{
		ID:          string(m.ID),
		Seed:        m.Seed,
		Turns:       m.Turns,
		Outcome:     string(m.Outcome),
		Winner:      winner,
		Players:     players,
		CreatedAt:   m.CreatedAt,
		CompletedAt: m.CompletedAt,
	}
}

// MatchList is the response for listing matches
type MatchList struct {
	Matches []Match `json:"matches"`
}

// MatchListFromModel converts a slice of summaries, keeping their order
func MatchListFromModel(matches []*model.MatchSummary) MatchList {
	list := MatchList{Matches: make([]Match, len(matches))}
	for i, m := range matches {
		list.Matches[i] = MatchFromModel(m)
	}
	return list
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

func countsFromModel(counts map[model.UnitKind]int) map[string]int {
	out := make(map[string]int, len(counts))
	for kind, n := range counts {
		out[string(kind)] = n
	}
	return out
}
