package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
)

type leaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *gorm.DB) repository.LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) GetByPlayerID(ctx context.Context, playerID int64) (*entity.LeaderboardEntry, error) {
	var entry entity.LeaderboardEntry
	err := r.db.WithContext(ctx).First(&entry, "user_id = ?", playerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *leaderboardRepository) Create(ctx context.Context, entry *entity.LeaderboardEntry) error {
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *leaderboardRepository) Update(ctx context.Context, entry *entity.LeaderboardEntry) error {
	return updateAll(r.db.WithContext(ctx), entry)
}

func (r *leaderboardRepository) List(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	var entries []*entity.LeaderboardEntry
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
