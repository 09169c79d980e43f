package assist

import (
	"fmt"
	"time"
)

// Reduce applies one event to a snapshot and returns the next snapshot.
// It is a pure function: the input snapshot is never mutated. Unhandled
// (state, event) pairs return the input pointer unchanged.
func Reduce(s *Snapshot, ev Event) *Snapshot {
	switch ev.Kind {
	case EvProblemChanged:
		return problemChanged(s, ev)
	case EvUpdateThresholds:
		return updateThresholds(s, ev)
	case EvDismissSuggestion:
		next := clone(s)
		next.Context.SuggestionDismissed = true
		return commit(next, s.State, ev, "")
	}

	switch s.State {
	case StateIdle:
		return reduceIdle(s, ev)
	case StateEncouraging:
		return reduceEncouraging(s, ev)
	case StateOfferingHelp:
		return reduceOfferingHelp(s, ev)
	case StateAutoPaused:
		return reduceAutoPaused(s, ev)
	case StateInHelp:
		return reduceInHelp(s, ev)
	}
	return s
}

func reduceIdle(s *Snapshot, ev Event) *Snapshot {
	switch ev.Kind {
	case EvTimerEncouragement:
		return commit(clone(s), StateEncouraging, ev, "")
	case EvDigitTyped:
		next := clone(s)
		next.Context.IdleStartedAt = ev.At
		return commit(next, StateIdle, ev, "idle reset")
	case EvWrongAnswer:
		return wrongAnswer(s, ev)
	case EvHelpEntered:
		return commit(clone(s), StateInHelp, ev, "")
	case EvTimerMoveOnGrace:
		if !s.Context.AllTermsHelped {
			return s
		}
		next := clone(s)
		next.Context.MoveOnAvailable = true
		next.Context.MoveOnGraceStartedAt = nil
		return commit(next, StateIdle, ev, "move-on available")
	}
	return s
}

func reduceEncouraging(s *Snapshot, ev Event) *Snapshot {
	switch ev.Kind {
	case EvTimerHelpOffer:
		return commit(clone(s), StateOfferingHelp, ev, "")
	case EvDigitTyped:
		next := clone(s)
		next.Context.IdleStartedAt = ev.At
		return commit(next, StateIdle, ev, "idle reset")
	case EvHelpEntered:
		return commit(clone(s), StateInHelp, ev, "")
	case EvWrongAnswer:
		return wrongAnswer(s, ev)
	}
	return s
}

func reduceOfferingHelp(s *Snapshot, ev Event) *Snapshot {
	switch ev.Kind {
	case EvTimerAutoPause:
		next := clone(s)
		next.Context.AutoPauseStats = ev.Stats
		return commit(next, StateAutoPaused, ev, "")
	case EvDigitTyped:
		next := clone(s)
		next.Context.IdleStartedAt = ev.At
		return commit(next, StateIdle, ev, "idle reset")
	case EvHelpEntered:
		return commit(clone(s), StateInHelp, ev, "")
	}
	return s
}

func reduceAutoPaused(s *Snapshot, ev Event) *Snapshot {
	if ev.Kind != EvResumed {
		return s
	}
	next := clone(s)
	next.Context.IdleStartedAt = ev.At
	return commit(next, StateIdle, ev, "")
}

func reduceInHelp(s *Snapshot, ev Event) *Snapshot {
	switch ev.Kind {
	case EvHelpTermCompleted:
		next := clone(s)
		next.Context.HelpedTerms[ev.TermIndex] = struct{}{}
		return commit(next, StateInHelp, ev, fmt.Sprintf("term %d", ev.TermIndex))

	case EvHelpExited:
		next := clone(s)
		next.Context.IdleStartedAt = ev.At

		// The last term needs no stepping: finishing the one before it
		// already lands on the answer.
		helpable := ev.TermCount - 1
		if helpable < 0 {
			helpable = 0
		}
		wasHelped := next.Context.AllTermsHelped
		next.Context.AllTermsHelped = helpable > 0 && len(next.Context.HelpedTerms) >= helpable

		note := ""
		if next.Context.AllTermsHelped && !wasHelped && !next.Context.MoveOnAvailable {
			at := ev.At
			next.Context.MoveOnGraceStartedAt = &at
			note = "all terms helped"
		}
		return commit(next, StateIdle, ev, note)

	case EvDigitTyped:
		next := clone(s)
		next.Context.IdleStartedAt = ev.At
		return commit(next, StateIdle, ev, "idle reset")
	}
	return s
}

func wrongAnswer(s *Snapshot, ev Event) *Snapshot {
	next := clone(s)
	next.Context.WrongAttempts++
	next.Context.SuggestionDismissed = false

	to := s.State
	note := fmt.Sprintf("wrong=%d", next.Context.WrongAttempts)
	if next.Context.WrongAttempts >= next.Context.WrongAnswerThreshold {
		to = StateOfferingHelp
	}
	return commit(next, to, ev, note)
}

func problemChanged(s *Snapshot, ev Event) *Snapshot {
	next := &Snapshot{
		State: s.State, // commit records the transition source
		Context: Context{
			WrongAnswerThreshold: s.Context.WrongAnswerThreshold,
			MoveOnGraceMs:        s.Context.MoveOnGraceMs,
			HelpedTerms:          map[int]struct{}{},
			IdleStartedAt:        ev.At,
			Thresholds:           s.Context.Thresholds,
		},
	}
	return commit(next, StateIdle, ev, "")
}

func updateThresholds(s *Snapshot, ev Event) *Snapshot {
	if ev.Thresholds == nil {
		return s
	}
	next := clone(s)
	next.Context.Thresholds = *ev.Thresholds
	return commit(next, s.State, ev, "")
}

// clone copies a snapshot deeply enough that mutating the copy cannot be
// observed through the original.
func clone(s *Snapshot) *Snapshot {
	next := *s
	next.Context.HelpedTerms = make(map[int]struct{}, len(s.Context.HelpedTerms))
	for k := range s.Context.HelpedTerms {
		next.Context.HelpedTerms[k] = struct{}{}
	}
	if s.Context.MoveOnGraceStartedAt != nil {
		at := *s.Context.MoveOnGraceStartedAt
		next.Context.MoveOnGraceStartedAt = &at
	}
	return &next
}

// commit finalizes a transition: sets the target state and prepends a log
// entry, truncating to the cap.
func commit(next *Snapshot, to State, ev Event, note string) *Snapshot {
	from := next.State
	next.State = to

	entry := LogEntry{At: ev.At, Event: ev.Kind, From: from, To: to, Note: note}
	log := make([]LogEntry, 0, len(next.Context.Log)+1)
	log = append(log, entry)
	log = append(log, next.Context.Log...)
	if len(log) > MaxLogEntries {
		log = log[:MaxLogEntries]
	}
	next.Context.Log = log
	return next
}

// ShiftIdle moves the idle clock (and any pending move-on grace) forward
// by d. Used by the host to exclude externally-paused time from the
// escalation timers.
func ShiftIdle(s *Snapshot, d time.Duration) *Snapshot {
	if d <= 0 {
		return s
	}
	next := clone(s)
	next.Context.IdleStartedAt = next.Context.IdleStartedAt.Add(d)
	if next.Context.MoveOnGraceStartedAt != nil {
		at := next.Context.MoveOnGraceStartedAt.Add(d)
		next.Context.MoveOnGraceStartedAt = &at
	}
	return next
}
