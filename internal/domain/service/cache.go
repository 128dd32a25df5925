package service

import (
	"context"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
)

// LeaderboardCache stores the sorted all-time leaderboard.
// A miss is reported as (nil, false, nil).
type LeaderboardCache interface {
	Get(ctx context.Context) ([]*entity.LeaderboardEntry, bool, error)
	Set(ctx context.Context, entries []*entity.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}
