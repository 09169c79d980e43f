// Package cheer produces short spoken-style encouragement lines shown at
// session milestones: completing a part, finishing a session, or pushing
// through a rough patch. Generation is asynchronous and best-effort; a
// missing or failing provider degrades to built-in lines.
package cheer

import (
	"context"
	"time"
)

// Moment describes why encouragement is wanted.
type Moment string

const (
	MomentPartDone    Moment = "part-done"
	MomentSessionDone Moment = "session-done"
	MomentRoughPatch  Moment = "rough-patch"
	MomentComeback    Moment = "comeback"
)

// Input summarizes the situation for the provider.
type Input struct {
	Moment     Moment
	PlayerName string
	Answered   int
	Correct    int
	PartNumber int
	PartCount  int
	AvgMs      int64
}

// Provider turns an Input into one short encouragement line.
type Provider interface {
	Cheer(ctx context.Context, in Input) (string, error)
	ModelID() string
}

// Config tunes generation.
type Config struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns sensible generation settings.
func DefaultConfig() Config {
	return Config{
		Model:       "claude-haiku",
		MaxTokens:   100,
		Temperature: 0.8,
		Timeout:     6 * time.Second,
	}
}
