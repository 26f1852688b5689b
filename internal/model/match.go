package model

import "time"

// MatchID uniquely identifies a recorded match
type MatchID string

// MatchOutcome describes how a match ended, from the protagonist's point of view
type MatchOutcome string

const (
	OutcomeHumanWon      MatchOutcome = "human_won"
	OutcomeHumanDefeated MatchOutcome = "human_defeated"
	OutcomeTurnLimit     MatchOutcome = "turn_limit" // Neither side finished before the turn cap
)

// MatchSummary is a lightweight record of a completed match
type MatchSummary struct {
	ID          MatchID         `json:"id"`
	Seed        *uint64         `json:"seed,omitempty"` // Set when the match used a seeded random source
	Turns       int             `json:"turns"`
	Outcome     MatchOutcome    `json:"outcome"`
	Players     []PlayerSummary `json:"players"` // Protagonist first
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt time.Time       `json:"completed_at"`
}

// Winner returns the name of the sole undefeated player, or empty if there is none
func (m *MatchSummary) Winner() string {
	winner := ""
	for _, p := range m.Players {
		if p.Defeated {
			continue
		}
		if winner != "" {
			return ""
		}
		winner = p.Name
	}
	return winner
}
