package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/castlewars/internal/model"
	"github.com/mcoot/castlewars/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveMatch(ctx context.Context, match *model.MatchSummary) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, matchKey(match.ID), data, s.cfg.MatchTTL)
	pipe.ZAdd(ctx, matchesIndexKey(), redis.Z{
		Score:  float64(match.CompletedAt.UnixMilli()),
		Member: string(match.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.MatchSummary, error) {
	data, err := s.client.Get(ctx, matchKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.MatchSummary
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// ListMatches returns up to limit matches, newest first. Index entries whose record
// has expired are pruned, and the index is read further until limit live matches are found.
func (s *Storage) ListMatches(ctx context.Context, limit int) ([]*model.MatchSummary, error) {
	matches := []*model.MatchSummary{}
	var start int64
	for {
		stop := int64(-1)
		if limit > 0 {
			stop = start + int64(limit-len(matches)) - 1
		}

		ids, err := s.client.ZRevRange(ctx, matchesIndexKey(), start, stop).Result()
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return matches, nil
		}

		page, expired, err := s.loadMatches(ctx, ids)
		if err != nil {
			return nil, err
		}
		matches = append(matches, page...)

		// Drop index entries whose match has expired
		if len(expired) > 0 {
			if err := s.client.ZRem(ctx, matchesIndexKey(), expired...).Err(); err != nil {
				return nil, err
			}
		}

		// Pruned entries no longer occupy index positions
		start += int64(len(ids) - len(expired))
		if stop < 0 || len(expired) == 0 || len(matches) >= limit {
			return matches, nil
		}
	}
}

// loadMatches fetches the records for ids in order, reporting the ids whose record is gone
func (s *Storage) loadMatches(ctx context.Context, ids []string) ([]*model.MatchSummary, []interface{}, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = matchKey(model.MatchID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}

	matches := make([]*model.MatchSummary, 0, len(values))
	var expired []interface{}
	for i, val := range values {
		if val == nil {
			expired = append(expired, ids[i])
			continue
		}
		var match model.MatchSummary
		if err := json.Unmarshal([]byte(val.(string)), &match); err != nil {
			continue // Skip invalid data
		}
		matches = append(matches, &match)
	}
	return matches, expired, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, matchKey(id))
	pipe.ZRem(ctx, matchesIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}
