package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ressKim-io/idea-arena/internal/domain/service"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/metrics"
)

// SentinelMarker identifies an opponent that could not produce a solution.
// The judge awards the challenger an automatic win when it sees it.
const SentinelMarker = "unable to generate a solution"

// SentinelSolution is returned when no content path can produce a solution
const SentinelSolution = "The AI was unable to generate a solution at this time due to technical difficulties."

const solverSystemInstruction = "You are a creative problem solver participating in a creativity battle. " +
	"You will be given a creative prompt and must provide an innovative, logical, and well-expressed solution. " +
	"Your solution should be original, practical, and clearly communicated. Aim for approximately 150-250 words."

// IsSentinel reports whether an opponent solution is the failure sentinel
func IsSentinel(solution string) bool {
	return strings.Contains(solution, SentinelMarker)
}

// OpponentSolver produces the automated opponent's solution
type OpponentSolver struct {
	mode      Mode
	generator service.TextGenerator
	rng       Rand
	logger    *zap.Logger
	curated   map[string][]string
	generic   []string
}

// NewOpponentSolver creates an OpponentSolver backed by the built-in content
func NewOpponentSolver(mode Mode, generator service.TextGenerator, rng Rand, logger *zap.Logger) *OpponentSolver {
	return NewOpponentSolverWithContent(mode, generator, rng, logger, curatedSolutions, genericSolutions)
}

// NewOpponentSolverWithContent creates an OpponentSolver with explicit
// degraded-mode content
func NewOpponentSolverWithContent(
	mode Mode,
	generator service.TextGenerator,
	rng Rand,
	logger *zap.Logger,
	curated map[string][]string,
	generic []string,
) *OpponentSolver {
	return &OpponentSolver{
		mode:      mode,
		generator: generator,
		rng:       rng,
		logger:    logger,
		curated:   curated,
		generic:   generic,
	}
}

// Solve returns the opponent's solution for prompt
func (s *OpponentSolver) Solve(ctx context.Context, prompt string) string {
	if s.mode == ModeLive && s.generator != nil {
		solution, err := s.generator.Complete(ctx, &service.CompletionRequest{
			System:      solverSystemInstruction,
			User:        "Creative challenge: " + prompt,
			Temperature: 0.8,
			MaxTokens:   500,
		})
		if err == nil && solution != "" {
			return solution
		}
		if err == nil {
			err = service.ErrEmptyCompletion
		}
		reason := service.FailureReason(err)
		metrics.Fallbacks.WithLabelValues("solver", reason).Inc()
		s.logger.Warn("Opponent generation failed, using curated solution",
			zap.String("reason", reason),
			zap.Error(err),
		)
	}

	if solution := s.curatedSolution(prompt); solution != "" {
		return solution
	}

	s.logger.Error("No opponent content available, returning sentinel", zap.String("prompt", prompt))
	return SentinelSolution
}

func (s *OpponentSolver) curatedSolution(prompt string) string {
	if candidates := s.curated[strings.TrimSpace(prompt)]; len(candidates) > 0 {
		return pick(s.rng, candidates)
	}
	return pick(s.rng, s.generic)
}
