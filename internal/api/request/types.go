package request

// CreateMatchRequest is the request body for running a headless match.
// Every field is optional; omitted fields fall back to the server's rules.
type CreateMatchRequest struct {
	Seed      *uint64  `json:"seed,omitempty"`
	Name      string   `json:"name,omitempty"` // Protagonist name
	Opponents []string `json:"opponents,omitempty"`
	MaxTurns  int      `json:"max_turns,omitempty"`
}
