package store

import (
	"context"
	"time"

	"github.com/abhisek/sumleap/internal/plan"
)

// SessionAction is the lifecycle action recorded on a SessionEvent.
type SessionAction string

const (
	ActionStart    SessionAction = "start"
	ActionPause    SessionAction = "pause"
	ActionResume   SessionAction = "resume"
	ActionEndEarly SessionAction = "end_early"
	ActionComplete SessionAction = "complete"
)

// SessionEventData captures one session lifecycle event.
type SessionEventData struct {
	PlanID       string
	PlayerID     string
	Action       SessionAction
	Reason       string
	Message      string
	Answered     int
	Correct      int
	DurationSecs int
	PartHealth   []plan.PartHealth
	Timestamp    time.Time
}

// AssistEventData captures one assistance state transition.
type AssistEventData struct {
	PlanID    string
	SlotID    string
	FromState string
	ToState   string
	Trigger   string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendResult records one answered problem.
	AppendResult(ctx context.Context, planID, playerID string, res plan.SlotResult) error

	// AppendSession records a session lifecycle event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendAssist records an assistance state transition.
	AppendAssist(ctx context.Context, data AssistEventData) error

	// PlanResults returns all recorded results for a plan in event order.
	PlanResults(ctx context.Context, planID string) ([]plan.SlotResult, error)

	// RecentSessions returns the most recent session end events, newest
	// first.
	RecentSessions(ctx context.Context, limit int) ([]SessionEventData, error)
}

// PlanRepo persists and restores session plan snapshots.
type PlanRepo interface {
	// Save stores a snapshot of the plan at the current event sequence.
	Save(ctx context.Context, p *plan.SessionPlan) error

	// Latest returns the most recent snapshot for a player's unfinished
	// plan, or nil when there is nothing to resume.
	Latest(ctx context.Context, playerID string) (*plan.SessionPlan, error)

	// Prune deletes all but the N most recent snapshots per plan.
	Prune(ctx context.Context, keep int) error
}
