// Package memory implements the repositories on process memory. Records are
// copied on the way in and out so callers never share state with the store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
)

type battleRepository struct {
	mu      sync.RWMutex
	battles map[int64]*entity.Battle
	nextID  int64
}

// NewBattleRepository creates a new in-memory battle repository
func NewBattleRepository() repository.BattleRepository {
	return &battleRepository{
		battles: make(map[int64]*entity.Battle),
		nextID:  1,
	}
}

func (r *battleRepository) Create(_ context.Context, battle *entity.Battle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	battle.ID = r.nextID
	r.nextID++
	if battle.CreatedAt.IsZero() {
		battle.CreatedAt = time.Now()
	}
	r.battles[battle.ID] = battle.Clone()
	return nil
}

func (r *battleRepository) GetByID(_ context.Context, id int64) (*entity.Battle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	battle, ok := r.battles[id]
	if !ok {
		return nil, nil
	}
	return battle.Clone(), nil
}

func (r *battleRepository) Update(_ context.Context, battle *entity.Battle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.battles[battle.ID]; !ok {
		return repository.ErrNotFound
	}
	r.battles[battle.ID] = battle.Clone()
	return nil
}

func (r *battleRepository) ListCompletedByPlayer(_ context.Context, playerID int64) ([]*entity.Battle, error) {
	return r.listCompleted(func(b *entity.Battle) bool {
		return b.PlayerID == playerID
	}), nil
}

func (r *battleRepository) ListCompletedSince(_ context.Context, since time.Time) ([]*entity.Battle, error) {
	return r.listCompleted(func(b *entity.Battle) bool {
		return b.CompletedAt != nil && !b.CompletedAt.Before(since)
	}), nil
}

func (r *battleRepository) listCompleted(match func(*entity.Battle) bool) []*entity.Battle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Battle, 0)
	for _, b := range r.battles {
		if b.Completed && match(b) {
			result = append(result, b.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
