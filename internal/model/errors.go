package model

import "errors"

// Common errors used across the application
var (
	// Purchase errors
	ErrInvalidUnitType = errors.New("invalid unit type")
	ErrNotForSale      = errors.New("unit is not for sale")
	ErrCannotBuy       = errors.New("cannot buy unit")

	// Game setup errors
	ErrNoPlayers       = errors.New("game needs at least one player")
	ErrDuplicatePlayer = errors.New("duplicate player id")
	ErrInvalidRules    = errors.New("invalid rules")

	// Match history errors
	ErrMatchNotFound = errors.New("match not found")
)
