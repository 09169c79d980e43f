package controller

import (
	"context"

	"github.com/abhisek/sumleap/internal/plan"
)

// RedoRecord is the payload for persisting a redone attempt.
type RedoRecord struct {
	PlayerID     string
	PlanID       string
	Result       plan.SlotResult
	OriginalPart int
	OriginalSlot int
	LinearIndex  int
}

// AnswerRecorder is the persistence collaborator contract. The controller
// never inspects failures: an error from RecordResult or RecordRedo is
// swallowed at the boundary and advance resolution degrades to the
// loading fallback.
type AnswerRecorder interface {
	// RecordResult persists a result and settles when the plan owner has
	// applied it. Used on awaited submission paths.
	RecordResult(ctx context.Context, res plan.SlotResult) error

	// EnqueueResult hands a result to a serializing write queue and
	// returns immediately. Used on the optimistic-advance path; ordering
	// is the queue's responsibility, not the controller's.
	EnqueueResult(res plan.SlotResult)

	// RecordRedo persists a redone attempt. The returned plan is the
	// updated authoritative state; the controller does not consume it.
	RecordRedo(ctx context.Context, rec RedoRecord) (*plan.SessionPlan, error)
}

// SessionHooks are host notification callbacks for session lifecycle
// moments. All optional; implementations must not block.
type SessionHooks interface {
	OnPause(info PauseInfo)
	OnResume()
	OnEndEarly(h plan.HealthSummary)
	OnComplete(h plan.HealthSummary)
	OnPartTransition(fromPart, toPart int)
	OnPartTransitionComplete(part int)
}

// NopSessionHooks is the do-nothing SessionHooks implementation.
type NopSessionHooks struct{}

func (NopSessionHooks) OnPause(PauseInfo)              {}
func (NopSessionHooks) OnResume()                      {}
func (NopSessionHooks) OnEndEarly(plan.HealthSummary)  {}
func (NopSessionHooks) OnComplete(plan.HealthSummary)  {}
func (NopSessionHooks) OnPartTransition(int, int)      {}
func (NopSessionHooks) OnPartTransitionComplete(int)   {}
