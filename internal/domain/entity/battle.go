package entity

import (
	"errors"
	"time"
)

// ErrInvalidTransition is returned when a battle mutation is applied out of order
var ErrInvalidTransition = errors.New("invalid battle state transition")

// BattleState represents the lifecycle position of a battle
type BattleState string

const (
	BattleStateCreated             BattleState = "created"
	BattleStateChallengerSubmitted BattleState = "challenger_submitted"
	BattleStateOpponentResponded   BattleState = "opponent_responded"
	BattleStateCompleted           BattleState = "completed"
)

// OpponentType represents who the challenger is playing against
type OpponentType string

const (
	OpponentTypeAI    OpponentType = "ai"
	OpponentTypeHuman OpponentType = "human"
)

// ParseOpponentType returns the opponent type, defaulting to ai for unknown values
func ParseOpponentType(s string) OpponentType {
	if OpponentType(s) == OpponentTypeHuman {
		return OpponentTypeHuman
	}
	return OpponentTypeAI
}

// Battle represents a creativity battle between a challenger and an opponent
type Battle struct {
	ID                 int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	Prompt             string       `json:"prompt" gorm:"type:text;not null"`
	PlayerID           int64        `json:"userId" gorm:"column:user_id;not null;index"`
	ChallengerSolution *string      `json:"userSolution" gorm:"column:user_solution;type:text"`
	OpponentSolution   *string      `json:"aiSolution" gorm:"column:ai_solution;type:text"`
	ChallengerScore    *int         `json:"userScore" gorm:"column:user_score"`
	OpponentScore      *int         `json:"aiScore" gorm:"column:ai_score"`
	ChallengerWon      *bool        `json:"userWon" gorm:"column:user_won"`
	Completed          bool         `json:"completed" gorm:"not null;default:false;index"`
	OpponentType       OpponentType `json:"opponentType" gorm:"type:varchar(10);not null;default:'ai'"`
	CreatedAt          time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	CompletedAt        *time.Time   `json:"completedAt,omitempty" gorm:"index"`
}

// TableName returns the table name for GORM
func (Battle) TableName() string {
	return "battles"
}

// NewBattle creates a new Battle with no solutions
func NewBattle(prompt string, playerID int64, opponentType OpponentType) *Battle {
	return &Battle{
		Prompt:       prompt,
		PlayerID:     playerID,
		OpponentType: opponentType,
	}
}

// State derives the lifecycle state from the populated fields
func (b *Battle) State() BattleState {
	switch {
	case b.Completed:
		return BattleStateCompleted
	case b.OpponentSolution != nil:
		return BattleStateOpponentResponded
	case b.ChallengerSolution != nil:
		return BattleStateChallengerSubmitted
	default:
		return BattleStateCreated
	}
}

// IsCompleted returns true if the battle has been judged
func (b *Battle) IsCompleted() bool {
	return b.Completed
}

// SubmitChallenger records the challenger's solution
func (b *Battle) SubmitChallenger(solution string) error {
	if b.State() != BattleStateCreated {
		return ErrInvalidTransition
	}
	b.ChallengerSolution = &solution
	return nil
}

// SetOpponentSolution records the opponent's solution
func (b *Battle) SetOpponentSolution(solution string) error {
	if b.State() != BattleStateChallengerSubmitted {
		return ErrInvalidTransition
	}
	b.OpponentSolution = &solution
	return nil
}

// Complete records both totals and the winner, and marks the battle completed.
// It is only valid once both solutions are present.
func (b *Battle) Complete(challengerTotal, opponentTotal int, challengerWon bool, at time.Time) error {
	if b.State() != BattleStateOpponentResponded {
		return ErrInvalidTransition
	}
	b.ChallengerScore = &challengerTotal
	b.OpponentScore = &opponentTotal
	b.ChallengerWon = &challengerWon
	b.Completed = true
	b.CompletedAt = &at
	return nil
}

// Clone returns a deep copy so stored records are never aliased
func (b *Battle) Clone() *Battle {
	c := *b
	if b.ChallengerSolution != nil {
		v := *b.ChallengerSolution
		c.ChallengerSolution = &v
	}
	if b.OpponentSolution != nil {
		v := *b.OpponentSolution
		c.OpponentSolution = &v
	}
	if b.ChallengerScore != nil {
		v := *b.ChallengerScore
		c.ChallengerScore = &v
	}
	if b.OpponentScore != nil {
		v := *b.OpponentScore
		c.OpponentScore = &v
	}
	if b.ChallengerWon != nil {
		v := *b.ChallengerWon
		c.ChallengerWon = &v
	}
	if b.CompletedAt != nil {
		v := *b.CompletedAt
		c.CompletedAt = &v
	}
	return &c
}
