package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
)

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *entity.Player) error {
	return translate(r.db.WithContext(ctx).Create(player).Error)
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (*entity.Player, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *playerRepository) GetByUsername(ctx context.Context, username string) (*entity.Player, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *playerRepository) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Player, error) {
	players := make([]*entity.Player, 0, len(ids))
	if len(ids) == 0 {
		return players, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) first(ctx context.Context, query string, arg any) (*entity.Player, error) {
	var player entity.Player
	err := r.db.WithContext(ctx).First(&player, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}
