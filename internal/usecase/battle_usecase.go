package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/idea-arena/internal/concurrency"
	"github.com/ressKim-io/idea-arena/internal/domain/entity"
	"github.com/ressKim-io/idea-arena/internal/domain/repository"
	"github.com/ressKim-io/idea-arena/internal/domain/service"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/metrics"
)

// Error definitions for battle usecase
var (
	ErrBattleNotFound       = errors.New("battle not found")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrBattleCompleted      = errors.New("battle already completed")
	ErrBattleNotCompleted   = errors.New("battle not completed")
	ErrSubmissionInProgress = errors.New("solution already submitted")
	ErrScoreNotFound        = errors.New("score not found")
)

// CreateBattleInput represents the input for creating a battle
type CreateBattleInput struct {
	OpponentType string `json:"opponentType"`
	Username     string `json:"username" binding:"max=64"`
}

// SubmitSolutionInput represents the input for submitting a solution
type SubmitSolutionInput struct {
	Solution string `json:"solution" binding:"required,min=10"`
}

// BattleOutput represents the output for battle operations
type BattleOutput struct {
	ID           int64   `json:"id"`
	Prompt       string  `json:"prompt"`
	UserID       int64   `json:"userId"`
	UserSolution *string `json:"userSolution"`
	AISolution   *string `json:"aiSolution"`
	UserScore    *int    `json:"userScore"`
	AIScore      *int    `json:"aiScore"`
	UserWon      *bool   `json:"userWon"`
	Completed    bool    `json:"completed"`
	OpponentType string  `json:"opponentType"`
	State        string  `json:"state"`
	CreatedAt    string  `json:"createdAt"`
	CompletedAt  *string `json:"completedAt,omitempty"`
}

// SubmitOutput confirms that a solution was accepted and judged
type SubmitOutput struct {
	Success   bool   `json:"success"`
	BattleID  int64  `json:"battleId"`
	Completed bool   `json:"completed"`
	State     string `json:"state"`
}

// ResultsOutput represents a completed battle with its score breakdown
type ResultsOutput struct {
	Battle *BattleOutput `json:"battle"`
	Scores *entity.Score `json:"scores"`
}

// BattleUsecase defines the interface for the battle lifecycle
type BattleUsecase interface {
	Create(ctx context.Context, input *CreateBattleInput) (*BattleOutput, error)
	GetByID(ctx context.Context, id int64) (*BattleOutput, error)
	// Submit runs the submit, solve, judge and record chain for one battle
	Submit(ctx context.Context, id int64, input *SubmitSolutionInput) (*SubmitOutput, error)
	GetResults(ctx context.Context, id int64) (*ResultsOutput, error)
}

// BattleDeps groups the collaborators of the battle usecase
type BattleDeps struct {
	BattleRepo  repository.BattleRepository
	ScoreRepo   repository.ScoreRepository
	Players     PlayerUsecase
	Leaderboard LeaderboardUsecase
	Prompts     service.PromptGenerator
	Solver      service.OpponentSolver
	Judge       service.Judge
	// Locks must be shared with the leaderboard usecase
	Locks *concurrency.LockManager
	// Notifier is optional
	Notifier service.BattleNotifier
	Logger   *zap.Logger
}

type battleUsecase struct {
	battleRepo  repository.BattleRepository
	scoreRepo   repository.ScoreRepository
	players     PlayerUsecase
	leaderboard LeaderboardUsecase
	prompts     service.PromptGenerator
	solver      service.OpponentSolver
	judge       service.Judge
	locks       *concurrency.LockManager
	notifier    service.BattleNotifier
	logger      *zap.Logger
	now         func() time.Time
}

// NewBattleUsecase creates a new battle usecase
func NewBattleUsecase(deps BattleDeps) BattleUsecase {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	locks := deps.Locks
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &battleUsecase{
		battleRepo:  deps.BattleRepo,
		scoreRepo:   deps.ScoreRepo,
		players:     deps.Players,
		leaderboard: deps.Leaderboard,
		prompts:     deps.Prompts,
		solver:      deps.Solver,
		judge:       deps.Judge,
		locks:       locks,
		notifier:    deps.Notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (u *battleUsecase) Create(ctx context.Context, input *CreateBattleInput) (*BattleOutput, error) {
	if input == nil {
		input = &CreateBattleInput{}
	}

	player, _, err := u.players.GetOrCreate(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	opponent := entity.ParseOpponentType(input.OpponentType)
	battle := entity.NewBattle(u.prompts.Generate(ctx), player.ID, opponent)

	if err := u.battleRepo.Create(ctx, battle); err != nil {
		return nil, fmt.Errorf("create battle: %w", err)
	}

	metrics.BattlesCreated.WithLabelValues(string(opponent)).Inc()
	u.publish(battle)
	u.logger.Info("Battle created",
		zap.Int64("battle_id", battle.ID),
		zap.Int64("player_id", player.ID),
		zap.String("opponent", string(opponent)),
	)

	return toBattleOutput(battle), nil
}

func (u *battleUsecase) GetByID(ctx context.Context, id int64) (*BattleOutput, error) {
	battle, err := u.battleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if battle == nil {
		return nil, ErrBattleNotFound
	}

	return toBattleOutput(battle), nil
}

func (u *battleUsecase) Submit(ctx context.Context, id int64, input *SubmitSolutionInput) (*SubmitOutput, error) {
	if input == nil || strings.TrimSpace(input.Solution) == "" {
		return nil, ErrInvalidRequest
	}

	// An abandoned request still completes the chain
	ctx = context.WithoutCancel(ctx)

	unlock := u.locks.Lock(concurrency.BattleKey(id))
	defer unlock()

	battle, err := u.battleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if battle == nil {
		return nil, ErrBattleNotFound
	}

	switch battle.State() {
	case entity.BattleStateCreated:
	case entity.BattleStateCompleted:
		return nil, ErrBattleCompleted
	default:
		return nil, ErrSubmissionInProgress
	}

	start := time.Now()
	defer func() {
		metrics.SubmitDuration.Observe(time.Since(start).Seconds())
	}()

	if err := battle.SubmitChallenger(input.Solution); err != nil {
		return nil, err
	}
	if err := u.battleRepo.Update(ctx, battle); err != nil {
		return nil, fmt.Errorf("persist challenger solution: %w", err)
	}
	u.publish(battle)

	if err := battle.SetOpponentSolution(u.solver.Solve(ctx, battle.Prompt)); err != nil {
		return nil, err
	}
	if err := u.battleRepo.Update(ctx, battle); err != nil {
		return nil, fmt.Errorf("persist opponent solution: %w", err)
	}
	u.publish(battle)

	eval := u.judge.Evaluate(ctx, &service.EvaluationRequest{
		Prompt:             battle.Prompt,
		ChallengerSolution: *battle.ChallengerSolution,
		OpponentSolution:   *battle.OpponentSolution,
	})

	if err := u.complete(ctx, battle, eval); err != nil {
		return nil, err
	}

	u.logger.Info("Battle completed",
		zap.Int64("battle_id", battle.ID),
		zap.String("winner", string(eval.Winner)),
		zap.Int("user_total", eval.Challenger.Total),
		zap.Int("ai_total", eval.Opponent.Total),
	)

	return &SubmitOutput{
		Success:   true,
		BattleID:  battle.ID,
		Completed: battle.Completed,
		State:     string(battle.State()),
	}, nil
}

// complete persists the judgement and folds it into the leaderboard while
// holding the player's history lock, so a concurrent rebuild sees either
// neither write or both
func (u *battleUsecase) complete(ctx context.Context, battle *entity.Battle, eval *service.Evaluation) error {
	unlock := u.locks.Lock(concurrency.HistoryKey(battle.PlayerID))
	defer unlock()

	if err := battle.Complete(eval.Challenger.Total, eval.Opponent.Total, eval.ChallengerWon(), u.now()); err != nil {
		return err
	}
	if err := u.battleRepo.Update(ctx, battle); err != nil {
		return fmt.Errorf("persist battle completion: %w", err)
	}

	if err := u.scoreRepo.Create(ctx, toScore(battle.ID, eval)); err != nil {
		return fmt.Errorf("persist score: %w", err)
	}

	metrics.BattlesCompleted.WithLabelValues(string(eval.Winner)).Inc()
	u.publish(battle)

	if err := u.recordOutcome(ctx, battle); err != nil {
		u.logger.Error("Leaderboard update failed after battle completion",
			zap.Int64("battle_id", battle.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (u *battleUsecase) recordOutcome(ctx context.Context, battle *entity.Battle) error {
	var username string
	player, err := u.players.GetByID(ctx, battle.PlayerID)
	switch {
	case err == nil:
		username = player.Username
	case !errors.Is(err, ErrPlayerNotFound):
		return fmt.Errorf("resolve player: %w", err)
	}

	return u.leaderboard.RecordOutcome(ctx, Outcome{
		PlayerID: battle.PlayerID,
		Username: username,
		Won:      *battle.ChallengerWon,
		Score:    *battle.ChallengerScore,
	})
}

func (u *battleUsecase) GetResults(ctx context.Context, id int64) (*ResultsOutput, error) {
	battle, err := u.battleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if battle == nil {
		return nil, ErrBattleNotFound
	}
	if !battle.IsCompleted() {
		return nil, ErrBattleNotCompleted
	}

	score, err := u.scoreRepo.GetByBattleID(ctx, id)
	if err != nil {
		return nil, err
	}
	if score == nil {
		return nil, ErrScoreNotFound
	}

	return &ResultsOutput{
		Battle: toBattleOutput(battle),
		Scores: score,
	}, nil
}

func (u *battleUsecase) publish(battle *entity.Battle) {
	if u.notifier == nil {
		return
	}
	u.notifier.Publish(service.BattleEvent{
		BattleID: battle.ID,
		State:    battle.State(),
		At:       u.now(),
	})
}

func toScore(battleID int64, eval *service.Evaluation) *entity.Score {
	return &entity.Score{
		BattleID:                      battleID,
		ChallengerOriginality:         eval.Challenger.Originality,
		ChallengerLogic:               eval.Challenger.Logic,
		ChallengerExpression:          eval.Challenger.Expression,
		OpponentOriginality:           eval.Opponent.Originality,
		OpponentLogic:                 eval.Opponent.Logic,
		OpponentExpression:            eval.Opponent.Expression,
		JudgeFeedback:                 eval.Commentary,
		ChallengerOriginalityFeedback: eval.Challenger.OriginalityFeedback,
		ChallengerLogicFeedback:       eval.Challenger.LogicFeedback,
		ChallengerExpressionFeedback:  eval.Challenger.ExpressionFeedback,
		OpponentOriginalityFeedback:   eval.Opponent.OriginalityFeedback,
		OpponentLogicFeedback:         eval.Opponent.LogicFeedback,
		OpponentExpressionFeedback:    eval.Opponent.ExpressionFeedback,
	}
}

func toBattleOutput(b *entity.Battle) *BattleOutput {
	out := &BattleOutput{
		ID:           b.ID,
		Prompt:       b.Prompt,
		UserID:       b.PlayerID,
		UserSolution: b.ChallengerSolution,
		AISolution:   b.OpponentSolution,
		UserScore:    b.ChallengerScore,
		AIScore:      b.OpponentScore,
		UserWon:      b.ChallengerWon,
		Completed:    b.Completed,
		OpponentType: string(b.OpponentType),
		State:        string(b.State()),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
	if b.CompletedAt != nil {
		s := b.CompletedAt.Format(time.RFC3339)
		out.CompletedAt = &s
	}
	return out
}
