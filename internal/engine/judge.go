package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ressKim-io/idea-arena/internal/domain/service"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/metrics"
)

const (
	// MinSolutionLength is the rune count below which a challenger
	// solution forfeits
	MinSolutionLength = 20

	// ChallengerWinProbability biases degraded scoring toward the challenger
	ChallengerWinProbability = 0.8

	winnerBandFloor = 75
	loserBandFloor  = 55
	bandWidth       = 20
)

// Scoring paths reported to metrics
const (
	ScoringSentinel   = "sentinel"
	ScoringDegenerate = "degenerate"
	ScoringLive       = "live"
	ScoringDegraded   = "degraded"
)

var errMalformedEvaluation = errors.New("malformed evaluation")

const judgeSystemInstruction = `You are an impartial judge in a creativity battle. You'll evaluate two solutions to a creative prompt based on:

1. Originality (0-100): Novelty, uniqueness, and innovation
2. Logic (0-100): Feasibility, practicality, and coherence
3. Expression (0-100): Clarity, engagement, and communication quality

Provide detailed feedback for each category for both solutions. Calculate a total score for each participant (sum of the three scores). Determine the winner based on total score. If scores are tied, choose the solution with higher originality.

Output your evaluation as a JSON object with this format:
{
  "userScore": {
    "originality": number,
    "logic": number,
    "expression": number,
    "originalityFeedback": string,
    "logicFeedback": string,
    "expressionFeedback": string,
    "total": number
  },
  "aiScore": {
    "originality": number,
    "logic": number,
    "expression": number,
    "originalityFeedback": string,
    "logicFeedback": string,
    "expressionFeedback": string,
    "total": number
  },
  "judgeFeedback": string,
  "winner": "user" or "ai"
}`

const judgeUserTemplate = `Prompt: %s

User solution:
%s

AI solution:
%s

Please evaluate both solutions fairly and provide your judgment.`

// Judge scores both solutions of a battle
type Judge struct {
	mode      Mode
	generator service.TextGenerator
	rng       Rand
	logger    *zap.Logger
}

// NewJudge creates a new Judge
func NewJudge(mode Mode, generator service.TextGenerator, rng Rand, logger *zap.Logger) *Judge {
	return &Judge{
		mode:      mode,
		generator: generator,
		rng:       rng,
		logger:    logger,
	}
}

// Evaluate scores the request. The sentinel check runs first, then the
// length check, then live scoring with degraded scoring as the fallback.
func (j *Judge) Evaluate(ctx context.Context, req *service.EvaluationRequest) *service.Evaluation {
	if IsSentinel(req.OpponentSolution) {
		metrics.Judgements.WithLabelValues(ScoringSentinel).Inc()
		return sentinelEvaluation()
	}

	if IsDegenerate(req.ChallengerSolution) {
		metrics.Judgements.WithLabelValues(ScoringDegenerate).Inc()
		return degenerateEvaluation()
	}

	if j.mode == ModeLive && j.generator != nil {
		eval, err := j.evaluateLive(ctx, req)
		if err == nil {
			metrics.Judgements.WithLabelValues(ScoringLive).Inc()
			return eval
		}
		reason := service.FailureReason(err)
		metrics.Fallbacks.WithLabelValues("judge", reason).Inc()
		j.logger.Warn("Live judgement failed, using degraded scoring",
			zap.String("reason", reason),
			zap.Error(err),
		)
	}

	metrics.Judgements.WithLabelValues(ScoringDegraded).Inc()
	return j.evaluateDegraded()
}

// IsDegenerate reports whether a challenger solution is too short to judge
func IsDegenerate(solution string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(solution)) < MinSolutionLength
}

func (j *Judge) evaluateLive(ctx context.Context, req *service.EvaluationRequest) (*service.Evaluation, error) {
	content, err := j.generator.Complete(ctx, &service.CompletionRequest{
		System:      judgeSystemInstruction,
		User:        fmt.Sprintf(judgeUserTemplate, req.Prompt, req.ChallengerSolution, req.OpponentSolution),
		Temperature: 0.2,
		MaxTokens:   1000,
		JSON:        true,
	})
	if err != nil {
		return nil, err
	}

	eval, err := parseEvaluation(content)
	if err != nil {
		return nil, err
	}
	if eval.Commentary == "" {
		eval.Commentary = pick(j.rng, commentaryFor(eval.Winner))
	}
	return eval, nil
}

// judgedScore mirrors one side of the model's JSON. Subscores are pointers
// so a missing field is told apart from a zero.
type judgedScore struct {
	Originality         *int   `json:"originality"`
	Logic               *int   `json:"logic"`
	Expression          *int   `json:"expression"`
	OriginalityFeedback string `json:"originalityFeedback"`
	LogicFeedback       string `json:"logicFeedback"`
	ExpressionFeedback  string `json:"expressionFeedback"`
}

type judgedEvaluation struct {
	UserScore     *judgedScore `json:"userScore"`
	AIScore       *judgedScore `json:"aiScore"`
	JudgeFeedback string       `json:"judgeFeedback"`
	Winner        service.Side `json:"winner"`
}

// parseEvaluation decodes a JSON evaluation and normalizes it so totals
// and the winner always agree with the subscores. Output missing a side,
// a subscore or a feedback string is malformed.
func parseEvaluation(content string) (*service.Evaluation, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object", errMalformedEvaluation)
	}

	var judged judgedEvaluation
	if err := json.Unmarshal([]byte(content[start:end+1]), &judged); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedEvaluation, err)
	}

	challenger, err := judged.UserScore.toPartyScore("userScore")
	if err != nil {
		return nil, err
	}
	opponent, err := judged.AIScore.toPartyScore("aiScore")
	if err != nil {
		return nil, err
	}

	eval := &service.Evaluation{
		Challenger: challenger,
		Opponent:   opponent,
		Commentary: strings.TrimSpace(judged.JudgeFeedback),
	}
	normalizeScore(&eval.Challenger)
	normalizeScore(&eval.Opponent)
	eval.Winner = decideWinner(eval.Challenger, eval.Opponent, judged.Winner)
	return eval, nil
}

func (s *judgedScore) toPartyScore(field string) (service.PartyScore, error) {
	if s == nil {
		return service.PartyScore{}, fmt.Errorf("%w: missing %s", errMalformedEvaluation, field)
	}
	if s.Originality == nil || s.Logic == nil || s.Expression == nil {
		return service.PartyScore{}, fmt.Errorf("%w: %s is missing a subscore", errMalformedEvaluation, field)
	}

	score := service.PartyScore{
		Originality:         *s.Originality,
		Logic:               *s.Logic,
		Expression:          *s.Expression,
		OriginalityFeedback: strings.TrimSpace(s.OriginalityFeedback),
		LogicFeedback:       strings.TrimSpace(s.LogicFeedback),
		ExpressionFeedback:  strings.TrimSpace(s.ExpressionFeedback),
	}
	if score.OriginalityFeedback == "" || score.LogicFeedback == "" || score.ExpressionFeedback == "" {
		return service.PartyScore{}, fmt.Errorf("%w: %s is missing feedback", errMalformedEvaluation, field)
	}
	return score, nil
}

func normalizeScore(s *service.PartyScore) {
	s.Originality = clamp(s.Originality)
	s.Logic = clamp(s.Logic)
	s.Expression = clamp(s.Expression)
	s.Total = s.Originality + s.Logic + s.Expression
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// decideWinner picks the higher total, then the higher originality.
// A full tie keeps the declared winner, or the challenger if none was declared.
func decideWinner(challenger, opponent service.PartyScore, declared service.Side) service.Side {
	switch {
	case challenger.Total > opponent.Total:
		return service.SideChallenger
	case challenger.Total < opponent.Total:
		return service.SideOpponent
	case challenger.Originality > opponent.Originality:
		return service.SideChallenger
	case challenger.Originality < opponent.Originality:
		return service.SideOpponent
	case declared == service.SideOpponent:
		return service.SideOpponent
	default:
		return service.SideChallenger
	}
}

// evaluateDegraded synthesizes scores procedurally. Winner subscores are
// drawn from a band strictly above the loser band so totals always agree
// with the drawn winner.
func (j *Judge) evaluateDegraded() *service.Evaluation {
	winner := service.SideOpponent
	if j.rng.Float64() < ChallengerWinProbability {
		winner = service.SideChallenger
	}

	winning := j.degradedScore(winnerBandFloor, winnerFeedback)
	losing := j.degradedScore(loserBandFloor, loserFeedback)

	eval := &service.Evaluation{
		Commentary: pick(j.rng, commentaryFor(winner)),
		Winner:     winner,
	}
	if winner == service.SideChallenger {
		eval.Challenger, eval.Opponent = winning, losing
	} else {
		eval.Challenger, eval.Opponent = losing, winning
	}
	return eval
}

func (j *Judge) degradedScore(floor int, pools feedbackPools) service.PartyScore {
	s := service.PartyScore{
		Originality:         floor + j.rng.Intn(bandWidth),
		Logic:               floor + j.rng.Intn(bandWidth),
		Expression:          floor + j.rng.Intn(bandWidth),
		OriginalityFeedback: pick(j.rng, pools.originality),
		LogicFeedback:       pick(j.rng, pools.logic),
		ExpressionFeedback:  pick(j.rng, pools.expression),
	}
	s.Total = s.Originality + s.Logic + s.Expression
	return s
}

func sentinelEvaluation() *service.Evaluation {
	return &service.Evaluation{
		Challenger: service.PartyScore{
			Originality:         85,
			Logic:               80,
			Expression:          82,
			OriginalityFeedback: "Your solution stands on its own with a creative approach.",
			LogicFeedback:       "The idea is reasoned through and practical.",
			ExpressionFeedback:  "The solution is communicated clearly.",
			Total:               247,
		},
		Opponent: service.PartyScore{
			Originality:         10,
			Logic:               10,
			Expression:          10,
			OriginalityFeedback: "No solution was produced.",
			LogicFeedback:       "No solution was produced.",
			ExpressionFeedback:  "No solution was produced.",
			Total:               30,
		},
		Commentary: "The opponent was unable to produce a solution for this challenge, so you win automatically.",
		Winner:     service.SideChallenger,
	}
}

func degenerateEvaluation() *service.Evaluation {
	return &service.Evaluation{
		Challenger: service.PartyScore{
			Originality:         45,
			Logic:               40,
			Expression:          42,
			OriginalityFeedback: "The solution is too brief to show an original idea.",
			LogicFeedback:       "There is not enough detail to judge feasibility.",
			ExpressionFeedback:  "Expand on the idea to communicate it fully.",
			Total:               127,
		},
		Opponent: service.PartyScore{
			Originality:         75,
			Logic:               80,
			Expression:          78,
			OriginalityFeedback: "The solution offers a complete creative concept.",
			LogicFeedback:       "The approach is practical and coherent.",
			ExpressionFeedback:  "The solution is explained clearly.",
			Total:               233,
		},
		Commentary: "Your solution provided insufficient detail for a full evaluation, so the opponent wins this round. Describe your idea in more depth next time.",
		Winner:     service.SideOpponent,
	}
}
