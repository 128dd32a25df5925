package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
)

type scoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *gorm.DB) repository.ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Create(ctx context.Context, score *entity.Score) error {
	return translate(r.db.WithContext(ctx).Create(score).Error)
}

func (r *scoreRepository) GetByBattleID(ctx context.Context, battleID int64) (*entity.Score, error) {
	var score entity.Score
	err := r.db.WithContext(ctx).First(&score, "battle_id = ?", battleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &score, nil
}
