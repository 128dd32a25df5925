package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
)

type leaderboardRepository struct {
	mu       sync.RWMutex
	byPlayer map[int64]*entity.LeaderboardEntry
	nextID   int64
}

// NewLeaderboardRepository creates a new in-memory leaderboard repository
func NewLeaderboardRepository() repository.LeaderboardRepository {
	return &leaderboardRepository{
		byPlayer: make(map[int64]*entity.LeaderboardEntry),
		nextID:   1,
	}
}

func (r *leaderboardRepository) GetByPlayerID(_ context.Context, playerID int64) (*entity.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byPlayer[playerID]
	if !ok {
		return nil, nil
	}
	c := *entry
	return &c, nil
}

func (r *leaderboardRepository) Create(_ context.Context, entry *entity.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPlayer[entry.PlayerID]; ok {
		return repository.ErrDuplicateKey
	}
	entry.ID = r.nextID
	r.nextID++
	entry.UpdatedAt = time.Now()
	c := *entry
	r.byPlayer[entry.PlayerID] = &c
	return nil
}

func (r *leaderboardRepository) Update(_ context.Context, entry *entity.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPlayer[entry.PlayerID]; !ok {
		return repository.ErrNotFound
	}
	entry.UpdatedAt = time.Now()
	c := *entry
	r.byPlayer[entry.PlayerID] = &c
	return nil
}

func (r *leaderboardRepository) List(_ context.Context) ([]*entity.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.LeaderboardEntry, 0, len(r.byPlayer))
	for _, e := range r.byPlayer {
		c := *e
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PlayerID < result[j].PlayerID
	})
	return result, nil
}
