// Package cache implements the leaderboard ranked-view cache on Redis and
// on an in-process expirable LRU.
package cache

import (
	"time"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
)

// SchemaVersion is bumped when the cached shape changes so stale payloads
// are treated as misses
const SchemaVersion = "1"

const allTimeKey = "leaderboard:all-time"

type cachedLeaderboard struct {
	Version  string                     `json:"version"`
	Entries  []*entity.LeaderboardEntry `json:"entries"`
	CachedAt time.Time                  `json:"cachedAt"`
}

func newCachedLeaderboard(entries []*entity.LeaderboardEntry) *cachedLeaderboard {
	return &cachedLeaderboard{
		Version:  SchemaVersion,
		Entries:  copyEntries(entries),
		CachedAt: time.Now(),
	}
}

func copyEntries(entries []*entity.LeaderboardEntry) []*entity.LeaderboardEntry {
	out := make([]*entity.LeaderboardEntry, len(entries))
	for i, e := range entries {
		c := *e
		out[i] = &c
	}
	return out
}
