package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/castlewars/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	base    time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) match(id string, offset time.Duration) *model.MatchSummary {
	return &model.MatchSummary{
		ID:          model.MatchID(id),
		Turns:       10,
		Outcome:     model.OutcomeHumanWon,
		CreatedAt:   s.base,
		CompletedAt: s.base.Add(offset),
	}
}

func (s *StorageSuite) ids(matches []*model.MatchSummary) []model.MatchID {
	ids := make([]model.MatchID, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids
}

func (s *StorageSuite) TestSaveAndGetMatch() {
	m := s.match("match-1", 0)
	s.Require().NoError(s.storage.SaveMatch(s.ctx, m))

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(m, retrieved)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestSaveOverwrites() {
	_ = s.storage.SaveMatch(s.ctx, s.match("match-1", 0))
	updated := s.match("match-1", 0)
	updated.Turns = 99
	_ = s.storage.SaveMatch(s.ctx, updated)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(99, retrieved.Turns)
}

func (s *StorageSuite) TestListMatchesNewestFirst() {
	_ = s.storage.SaveMatch(s.ctx, s.match("old", time.Minute))
	_ = s.storage.SaveMatch(s.ctx, s.match("new", 3*time.Minute))
	_ = s.storage.SaveMatch(s.ctx, s.match("mid", 2*time.Minute))

	matches, err := s.storage.ListMatches(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal([]model.MatchID{"new", "mid", "old"}, s.ids(matches))
}

func (s *StorageSuite) TestListMatchesLimit() {
	_ = s.storage.SaveMatch(s.ctx, s.match("a", time.Minute))
	_ = s.storage.SaveMatch(s.ctx, s.match("b", 2*time.Minute))
	_ = s.storage.SaveMatch(s.ctx, s.match("c", 3*time.Minute))

	matches, err := s.storage.ListMatches(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal([]model.MatchID{"c", "b"}, s.ids(matches))
}

func (s *StorageSuite) TestListMatchesEmpty() {
	matches, err := s.storage.ListMatches(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *StorageSuite) TestDeleteMatch() {
	_ = s.storage.SaveMatch(s.ctx, s.match("match-1", 0))
	s.Require().NoError(s.storage.DeleteMatch(s.ctx, "match-1"))

	_, err := s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)

	// Deleting again is fine
	s.NoError(s.storage.DeleteMatch(s.ctx, "match-1"))
}
