package service

import (
	"context"
	"errors"
)

// Text generation errors. Callers degrade on any of them; the distinction
// only feeds logs and metrics.
var (
	ErrInvalidCredentials = errors.New("text generation: invalid credentials")
	ErrRateLimited        = errors.New("text generation: rate limited")
	ErrUnavailable        = errors.New("text generation: service unavailable")
	ErrEmptyCompletion    = errors.New("text generation: empty completion")
)

// CompletionRequest describes a single chat completion
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
	// JSON asks the provider to return a JSON object
	JSON bool
}

// TextGenerator defines the interface for an external text generation dependency
type TextGenerator interface {
	// Complete returns the trimmed completion text
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}

// FailureReason returns a short label for a text generation error
func FailureReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrEmptyCompletion):
		return "empty"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "other"
	}
}
