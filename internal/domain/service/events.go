package service

import (
	"time"

	"github.com/ressKim-io/idea-arena/internal/domain/entity"
)

// BattleEvent announces that a battle reached a new lifecycle state
type BattleEvent struct {
	BattleID int64              `json:"battleId"`
	State    entity.BattleState `json:"state"`
	At       time.Time          `json:"at"`
}

// BattleNotifier fans battle events out to subscribers.
// Publish must not block on slow subscribers.
type BattleNotifier interface {
	Publish(event BattleEvent)
}
