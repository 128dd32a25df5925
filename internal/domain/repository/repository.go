package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
)

// Store errors
var (
	// ErrDuplicateKey is returned when a unique constraint would be violated
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned when updating a record that does not exist
	ErrNotFound = errors.New("record not found")
)

// Lookups return (nil, nil) when the record does not exist.

// BattleRepository defines the interface for battle data operations
type BattleRepository interface {
	// Create creates a new battle and assigns its ID
	Create(ctx context.Context, battle *entity.Battle) error

	// GetByID retrieves a battle by its ID
	GetByID(ctx context.Context, id int64) (*entity.Battle, error)

	// Update persists all fields of an existing battle
	Update(ctx context.Context, battle *entity.Battle) error

	// ListCompletedByPlayer retrieves a player's completed battles, oldest first
	ListCompletedByPlayer(ctx context.Context, playerID int64) ([]*entity.Battle, error)

	// ListCompletedSince retrieves battles completed at or after since, oldest first
	ListCompletedSince(ctx context.Context, since time.Time) ([]*entity.Battle, error)
}

// ScoreRepository defines the interface for score data operations
type ScoreRepository interface {
	// Create creates the score record for a battle; one per battle
	Create(ctx context.Context, score *entity.Score) error

	// GetByBattleID retrieves the score for a battle
	GetByBattleID(ctx context.Context, battleID int64) (*entity.Score, error)
}

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	// Create creates a new player; returns ErrDuplicateKey if the username is taken
	Create(ctx context.Context, player *entity.Player) error

	// GetByID retrieves a player by ID
	GetByID(ctx context.Context, id int64) (*entity.Player, error)

	// GetByUsername retrieves a player by username
	GetByUsername(ctx context.Context, username string) (*entity.Player, error)

	// ListByIDs retrieves the players with the given IDs
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Player, error)
}

// LeaderboardRepository defines the interface for leaderboard data operations
type LeaderboardRepository interface {
	// GetByPlayerID retrieves the entry for a player
	GetByPlayerID(ctx context.Context, playerID int64) (*entity.LeaderboardEntry, error)

	// Create creates a new entry; returns ErrDuplicateKey if the player already has one
	Create(ctx context.Context, entry *entity.LeaderboardEntry) error

	// Update persists all fields of an existing entry
	Update(ctx context.Context, entry *entity.LeaderboardEntry) error

	// List retrieves all entries
	List(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}
