package model

// PlayerID identifies a player within a single game
type PlayerID string

// PlayerSummary is the final state of one player at the end of a match
type PlayerSummary struct {
	ID       PlayerID         `json:"id"`
	Name     string           `json:"name"`
	Strategy string           `json:"strategy"`
	Gold     int              `json:"gold"`
	Defeated bool             `json:"defeated"`
	Roster   map[UnitKind]int `json:"roster"` // Living units per kind
	Bought   map[UnitKind]int `json:"bought"` // Units purchased per kind over the match
}
