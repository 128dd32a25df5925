package service

import "context"

// Side identifies a party in a battle
type Side string

const (
	SideChallenger Side = "user"
	SideOpponent   Side = "ai"
)

// PartyScore is the judgment for one side of a battle
type PartyScore struct {
	Originality         int    `json:"originality"`
	Logic               int    `json:"logic"`
	Expression          int    `json:"expression"`
	OriginalityFeedback string `json:"originalityFeedback"`
	LogicFeedback       string `json:"logicFeedback"`
	ExpressionFeedback  string `json:"expressionFeedback"`
	Total               int    `json:"total"`
}

// Evaluation is the structured result of judging a battle
type Evaluation struct {
	Challenger PartyScore `json:"userScore"`
	Opponent   PartyScore `json:"aiScore"`
	Commentary string     `json:"judgeFeedback"`
	Winner     Side       `json:"winner"`
}

// ChallengerWon reports whether the challenger won
func (e *Evaluation) ChallengerWon() bool {
	return e.Winner == SideChallenger
}

// EvaluationRequest carries the inputs of a judgment
type EvaluationRequest struct {
	Prompt             string
	ChallengerSolution string
	OpponentSolution   string
}

// PromptGenerator produces creative challenges
type PromptGenerator interface {
	// Generate never fails and never returns an empty prompt
	Generate(ctx context.Context) string
}

// OpponentSolver produces the automated opponent's solution
type OpponentSolver interface {
	// Solve never fails and never returns an empty solution
	Solve(ctx context.Context, prompt string) string
}

// Judge scores both solutions of a battle
type Judge interface {
	// Evaluate never fails; dependency errors degrade to procedural scoring
	Evaluate(ctx context.Context, req *EvaluationRequest) *Evaluation
}
