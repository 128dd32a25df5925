package memory

import (
	"context"
	"sync"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
)

type scoreRepository struct {
	mu       sync.RWMutex
	byBattle map[int64]*entity.Score
	nextID   int64
}

// NewScoreRepository creates a new in-memory score repository
func NewScoreRepository() repository.ScoreRepository {
	return &scoreRepository{
		byBattle: make(map[int64]*entity.Score),
		nextID:   1,
	}
}

func (r *scoreRepository) Create(_ context.Context, score *entity.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byBattle[score.BattleID]; ok {
		return repository.ErrDuplicateKey
	}
	score.ID = r.nextID
	r.nextID++
	c := *score
	r.byBattle[score.BattleID] = &c
	return nil
}

func (r *scoreRepository) GetByBattleID(_ context.Context, battleID int64) (*entity.Score, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	score, ok := r.byBattle[battleID]
	if !ok {
		return nil, nil
	}
	c := *score
	return &c, nil
}
