// Package postgres implements the repositories on PostgreSQL through gorm.
// The connection is expected to be opened with TranslateError so unique
// violations surface as gorm.ErrDuplicatedKey.
package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
)

type battleRepository struct {
	db *gorm.DB
}

// NewBattleRepository creates a new battle repository
func NewBattleRepository(db *gorm.DB) repository.BattleRepository {
	return &battleRepository{db: db}
}

func (r *battleRepository) Create(ctx context.Context, battle *entity.Battle) error {
	return translate(r.db.WithContext(ctx).Create(battle).Error)
}

func (r *battleRepository) GetByID(ctx context.Context, id int64) (*entity.Battle, error) {
	var battle entity.Battle
	err := r.db.WithContext(ctx).First(&battle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &battle, nil
}

func (r *battleRepository) Update(ctx context.Context, battle *entity.Battle) error {
	return updateAll(r.db.WithContext(ctx), battle)
}

func (r *battleRepository) ListCompletedByPlayer(ctx context.Context, playerID int64) ([]*entity.Battle, error) {
	var battles []*entity.Battle
	err := r.db.WithContext(ctx).
		Where("completed = ? AND user_id = ?", true, playerID).
		Order("id ASC").
		Find(&battles).Error
	if err != nil {
		return nil, err
	}
	return battles, nil
}

func (r *battleRepository) ListCompletedSince(ctx context.Context, since time.Time) ([]*entity.Battle, error) {
	var battles []*entity.Battle
	err := r.db.WithContext(ctx).
		Where("completed = ? AND completed_at >= ?", true, since).
		Order("id ASC").
		Find(&battles).Error
	if err != nil {
		return nil, err
	}
	return battles, nil
}

// updateAll writes every column of an existing row, zero values included
func updateAll(db *gorm.DB, model any) error {
	result := db.Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.ErrDuplicateKey
	}
	return err
}
