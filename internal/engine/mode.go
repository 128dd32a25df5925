// Package engine holds the battle evaluation and scoring engine: prompt
// generation, the automated opponent and the judge.
package engine

import "fmt"

// Mode selects whether the engine calls the text generation dependency
type Mode string

const (
	// ModeLive calls the dependency and degrades on failure
	ModeLive Mode = "live"
	// ModeDegraded never calls the dependency
	ModeDegraded Mode = "degraded"
)

// ParseMode parses a configured mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLive:
		return ModeLive, nil
	case ModeDegraded:
		return ModeDegraded, nil
	default:
		return "", fmt.Errorf("unknown engine mode %q", s)
	}
}
