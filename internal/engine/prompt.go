package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/ressKim-io/idea-arena/internal/domain/service"
	"github.com/ressKim-io/idea-arena/internal/infrastructure/metrics"
)

const promptSystemInstruction = "You are a creativity coach who creates thought-provoking creative challenges. " +
	"Generate ONE creative prompt that would make for an interesting 3-minute creativity battle. " +
	"The prompt should be open-ended enough to allow for multiple approaches but specific enough to provide direction. " +
	"Don't include any additional text, just the prompt itself."

// CuratedPrompts is the fallback prompt list used when generation is unavailable
var CuratedPrompts = []string{
	"Design a flying classroom that can travel anywhere in the world",
	"Create a device that helps people remember their dreams",
	"Invent a new sport that combines three existing sports",
	"Design a restaurant concept for the year 2050",
	"Create a new musical instrument that uses unconventional materials",
	"Design a sustainable home that could exist in extreme weather conditions",
	"Invent a new holiday and its traditions",
	"Create a transportation system for a city built underwater",
	"Design a device that translates animal communication into human language",
	"Create a new form of art that engages all five senses",
}

// PromptGenerator produces battle prompts
type PromptGenerator struct {
	mode      Mode
	generator service.TextGenerator
	rng       Rand
	logger    *zap.Logger
}

// NewPromptGenerator creates a new PromptGenerator. A nil generator forces
// the curated path.
func NewPromptGenerator(mode Mode, generator service.TextGenerator, rng Rand, logger *zap.Logger) *PromptGenerator {
	return &PromptGenerator{
		mode:      mode,
		generator: generator,
		rng:       rng,
		logger:    logger,
	}
}

// Generate returns a prompt, degrading to the curated list on any failure
func (g *PromptGenerator) Generate(ctx context.Context) string {
	if g.mode == ModeLive && g.generator != nil {
		prompt, err := g.generator.Complete(ctx, &service.CompletionRequest{
			System:      promptSystemInstruction,
			Temperature: 0.9,
			MaxTokens:   100,
		})
		if err == nil && prompt != "" {
			return prompt
		}
		if err == nil {
			err = service.ErrEmptyCompletion
		}
		reason := service.FailureReason(err)
		metrics.Fallbacks.WithLabelValues("prompt", reason).Inc()
		g.logger.Warn("Prompt generation failed, using curated prompt",
			zap.String("reason", reason),
			zap.Error(err),
		)
	}

	return pick(g.rng, CuratedPrompts)
}
