package practice

import (
	"time"

	"github.com/abhisek/sumleap/internal/controller"
	"github.com/abhisek/sumleap/internal/plan"
	"github.com/abhisek/sumleap/internal/store"
)

// sessionReadyMsg is sent when the plan is built or resumed and the
// recorder is live.
type sessionReadyMsg struct {
	Plan     *plan.SessionPlan
	Recorder *store.Recorder
	Err      error
}

// assistTimerMsg fires a scheduled assistance timer. Seq guards against
// stale timers from earlier schedules.
type assistTimerMsg struct {
	Seq int
}

// disambigTimerMsg fires the partial-sum disambiguation timeout.
type disambigTimerMsg struct {
	Seq int
}

// resolutionMsg delivers the advance-resolution outcome.
type resolutionMsg struct {
	Res controller.Resolution
}

// transitionDoneMsg ends the slide animation window.
type transitionDoneMsg struct {
	Seq int
}

// wrongFlashDoneMsg clears the brief try-again flash.
type wrongFlashDoneMsg struct {
	Seq int
}

// planChangedMsg is sent when the recorder applied a mutation.
type planChangedMsg struct{}

// cheerPollMsg polls the async encouragement service.
type cheerPollMsg time.Time

// remoteRequestMsg carries an external request from the control listener.
type remoteRequestMsg struct {
	Req controller.Request
}

// sessionEndMsg triggers the end-of-session flow.
type sessionEndMsg struct {
	early bool
}
