package assist

import "time"

// NextTimer computes the timer event due next for the snapshot, and how
// long until it fires. A zero or negative wait means the threshold has
// already elapsed and the event should be dispatched immediately. The
// second return is false when no timer is pending in the current state.
//
// Elapsed time is measured from the idle start against the threshold for
// the current state, so escalation thresholds are cumulative: a learner
// who sits idle walks encouragement -> help offer -> auto-pause on one
// clock. TIMER_AUTO_PAUSE events need Stats filled in by the caller
// before dispatch.
func NextTimer(s *Snapshot, now time.Time) (Event, time.Duration, bool) {
	ctx := &s.Context

	switch s.State {
	case StateIdle:
		due := ctx.IdleStartedAt.Add(time.Duration(ctx.Thresholds.EncouragementMs) * time.Millisecond)
		ev := Event{Kind: EvTimerEncouragement, At: now}

		// A pending move-on grace can come due before encouragement.
		if ctx.AllTermsHelped && !ctx.MoveOnAvailable && ctx.MoveOnGraceStartedAt != nil {
			graceDue := ctx.MoveOnGraceStartedAt.Add(time.Duration(ctx.MoveOnGraceMs) * time.Millisecond)
			if graceDue.Before(due) {
				return Event{Kind: EvTimerMoveOnGrace, At: now}, graceDue.Sub(now), true
			}
		}
		return ev, due.Sub(now), true

	case StateEncouraging:
		due := ctx.IdleStartedAt.Add(time.Duration(ctx.Thresholds.HelpOfferMs) * time.Millisecond)
		return Event{Kind: EvTimerHelpOffer, At: now}, due.Sub(now), true

	case StateOfferingHelp:
		due := ctx.IdleStartedAt.Add(time.Duration(ctx.Thresholds.AutoPauseMs) * time.Millisecond)
		return Event{Kind: EvTimerAutoPause, At: now}, due.Sub(now), true
	}

	return Event{}, 0, false
}
