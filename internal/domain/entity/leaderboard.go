package entity

import (
	"math"
	"time"
)

// Period selects the time window of a leaderboard view
type Period string

const (
	PeriodAllTime Period = "all-time"
	PeriodMonthly Period = "monthly"
	PeriodWeekly  Period = "weekly"
)

// ParsePeriod returns the period, defaulting to all-time for unknown values
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodMonthly:
		return PeriodMonthly
	case PeriodWeekly:
		return PeriodWeekly
	default:
		return PeriodAllTime
	}
}

// Since returns the start of the window ending at now.
// The zero time means the period is unbounded.
func (p Period) Since(now time.Time) time.Time {
	switch p {
	case PeriodMonthly:
		return now.AddDate(0, 0, -30)
	case PeriodWeekly:
		return now.AddDate(0, 0, -7)
	default:
		return time.Time{}
	}
}

// LeaderboardEntry holds the aggregated standing for one player
type LeaderboardEntry struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PlayerID     int64     `json:"userId" gorm:"column:user_id;not null;uniqueIndex"`
	Username     string    `json:"username" gorm:"type:varchar(64);not null"`
	TotalBattles int       `json:"totalBattles" gorm:"not null;default:0"`
	Wins         int       `json:"wins" gorm:"not null;default:0"`
	WinRate      int       `json:"winRate" gorm:"not null;default:0"`
	AvgScore     int       `json:"avgScore" gorm:"not null;default:0;index"`
	ScoreSum     int       `json:"-" gorm:"not null;default:0"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (LeaderboardEntry) TableName() string {
	return "leaderboard"
}

// NewLeaderboardEntry creates an empty entry for a player
func NewLeaderboardEntry(playerID int64, username string) *LeaderboardEntry {
	return &LeaderboardEntry{
		PlayerID: playerID,
		Username: username,
	}
}

// Record folds one battle outcome into the entry. score is the
// challenger's battle total.
func (e *LeaderboardEntry) Record(won bool, score int) {
	e.TotalBattles++
	if won {
		e.Wins++
	}
	e.ScoreSum += score
	e.recompute()
}

func (e *LeaderboardEntry) recompute() {
	if e.TotalBattles == 0 {
		e.WinRate = 0
		e.AvgScore = 0
		return
	}
	e.WinRate = int(math.Round(100 * float64(e.Wins) / float64(e.TotalBattles)))
	e.AvgScore = int(math.Round(float64(e.ScoreSum) / float64(e.TotalBattles)))
}

// RankedEntry is a leaderboard entry annotated for a requesting user
type RankedEntry struct {
	Rank          int    `json:"rank"`
	PlayerID      int64  `json:"userId"`
	Username      string `json:"username"`
	TotalBattles  int    `json:"totalBattles"`
	Wins          int    `json:"wins"`
	WinRate       int    `json:"winRate"`
	AvgScore      int    `json:"avgScore"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}
