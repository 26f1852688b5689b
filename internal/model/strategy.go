package model

// Decision strategy constants
const (
	StrategyScripted    = "scripted"
	StrategyInteractive = "interactive"
)

// StrategyDisplayName returns a human-readable label for a strategy
func StrategyDisplayName(strategy string) string {
	switch strategy {
	case StrategyScripted:
		return "Computer"
	case StrategyInteractive:
		return "Human"
	default:
		return strategy
	}
}
