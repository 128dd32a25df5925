package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
)

type playerRepository struct {
	mu         sync.RWMutex
	players    map[int64]*entity.Player
	byUsername map[string]int64
	nextID     int64
}

// NewPlayerRepository creates a new in-memory player repository
func NewPlayerRepository() repository.PlayerRepository {
	return &playerRepository{
		players:    make(map[int64]*entity.Player),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

func (r *playerRepository) Create(_ context.Context, player *entity.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[player.Username]; ok {
		return repository.ErrDuplicateKey
	}
	player.ID = r.nextID
	r.nextID++
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now()
	}
	c := *player
	r.players[player.ID] = &c
	r.byUsername[player.Username] = player.ID
	return nil
}

func (r *playerRepository) GetByID(_ context.Context, id int64) (*entity.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	player, ok := r.players[id]
	if !ok {
		return nil, nil
	}
	c := *player
	return &c, nil
}

func (r *playerRepository) GetByUsername(_ context.Context, username string) (*entity.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	c := *r.players[id]
	return &c, nil
}

func (r *playerRepository) ListByIDs(_ context.Context, ids []int64) ([]*entity.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.players[id]; ok {
			c := *p
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}
