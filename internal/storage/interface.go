package storage

import (
	"context"

	"github.com/mcoot/castlewars/internal/model"
)

// Storage defines the interface for match history persistence.
// Only finished matches are stored; live games stay in memory.
type Storage interface {
	SaveMatch(ctx context.Context, match *model.MatchSummary) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.MatchSummary, error)
	// ListMatches returns up to limit matches, most recently completed first.
	// A limit of zero or less returns every match.
	ListMatches(ctx context.Context, limit int) ([]*model.MatchSummary, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error
}
