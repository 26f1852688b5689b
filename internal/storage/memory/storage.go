package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu      sync.RWMutex
	matches map[model.MatchID]*model.MatchSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		matches: make(map[model.MatchID]*model.MatchSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveMatch(ctx context.Context, match *model.MatchSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = match
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.MatchSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match, nil
}

func (s *Storage) ListMatches(ctx context.Context, limit int) ([]*model.MatchSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]*model.MatchSummary, 0, len(s.matches))
	for _, m := range s.matches {
		matches = append(matches, m)
	}
	slices.SortFunc(matches, func(a, b *model.MatchSummary) int {
		if c := b.CompletedAt.Compare(a.CompletedAt); c != 0 {
			return c
		}
		return compareIDs(b.ID, a.ID)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
	return nil
}

func compareIDs(a, b model.MatchID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
