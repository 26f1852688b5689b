package redis

import (
	"fmt"

	"github.com/mcoot/castlewars/internal/model"
)

// Key prefix for all castlewars data
const keyPrefix = "castlewars"

// matchKey returns the Redis key for a MatchSummary
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchesIndexKey returns the Redis key for the sorted set of match IDs,
// scored by completion time
func matchesIndexKey() string {
	return fmt.Sprintf("%s:idx:matches", keyPrefix)
}
