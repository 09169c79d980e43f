package assist

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestSnapshot() *Snapshot {
	return NewSnapshot(DefaultConfig(), t0)
}

func at(secs int) time.Time {
	return t0.Add(time.Duration(secs) * time.Second)
}

func TestReduce_UnhandledIsIdentity(t *testing.T) {
	cases := []struct {
		state State
		kind  EventKind
	}{
		{StateIdle, EvTimerHelpOffer},
		{StateIdle, EvTimerAutoPause},
		{StateIdle, EvResumed},
		{StateIdle, EvHelpExited},
		{StateEncouraging, EvTimerEncouragement},
		{StateEncouraging, EvTimerMoveOnGrace},
		{StateOfferingHelp, EvWrongAnswer},
		{StateOfferingHelp, EvResumed},
		{StateAutoPaused, EvDigitTyped},
		{StateAutoPaused, EvWrongAnswer},
		{StateAutoPaused, EvTimerAutoPause},
		{StateInHelp, EvWrongAnswer},
		{StateInHelp, EvTimerEncouragement},
	}

	for _, tc := range cases {
		s := newTestSnapshot()
		s.State = tc.state
		got := Reduce(s, Event{Kind: tc.kind, At: at(1)})
		if got != s {
			t.Errorf("Reduce(%s, %s) returned a new snapshot, want identity", tc.state, tc.kind)
		}
	}
}

func TestReduce_MoveOnGraceWithoutAllHelpedIsIdentity(t *testing.T) {
	s := newTestSnapshot()
	got := Reduce(s, Event{Kind: EvTimerMoveOnGrace, At: at(1)})
	if got != s {
		t.Error("TIMER_MOVE_ON_GRACE without allTermsHelped should be a no-op")
	}
}

func TestReduce_ProblemChangedResetsFromEveryState(t *testing.T) {
	for _, state := range []State{StateIdle, StateEncouraging, StateOfferingHelp, StateAutoPaused, StateInHelp} {
		s := newTestSnapshot()
		s.State = state
		s.Context.WrongAttempts = 5
		s.Context.HelpedTerms[1] = struct{}{}
		s.Context.AllTermsHelped = true
		s.Context.MoveOnAvailable = true
		gs := at(2)
		s.Context.MoveOnGraceStartedAt = &gs

		got := Reduce(s, Event{Kind: EvProblemChanged, At: at(10)})

		if got.State != StateIdle {
			t.Errorf("from %s: state = %s, want idle", state, got.State)
		}
		ctx := got.Context
		if ctx.WrongAttempts != 0 || len(ctx.HelpedTerms) != 0 || ctx.AllTermsHelped ||
			ctx.MoveOnAvailable || ctx.MoveOnGraceStartedAt != nil {
			t.Errorf("from %s: context not fully reset: %+v", state, ctx)
		}
		if !ctx.IdleStartedAt.Equal(at(10)) {
			t.Errorf("from %s: idle start = %v, want event time", state, ctx.IdleStartedAt)
		}
	}
}

func TestReduce_UpdateThresholdsFromEveryState(t *testing.T) {
	th := Thresholds{EncouragementMs: 1, HelpOfferMs: 2, AutoPauseMs: 3}
	for _, state := range []State{StateIdle, StateEncouraging, StateOfferingHelp, StateAutoPaused, StateInHelp} {
		s := newTestSnapshot()
		s.State = state
		got := Reduce(s, Event{Kind: EvUpdateThresholds, At: at(1), Thresholds: &th})
		if got.State != state {
			t.Errorf("from %s: state changed to %s", state, got.State)
		}
		if got.Context.Thresholds != th {
			t.Errorf("from %s: thresholds not applied", state)
		}
	}
}

func TestReduce_DismissSuggestionContextOnly(t *testing.T) {
	s := newTestSnapshot()
	s.State = StateEncouraging
	got := Reduce(s, Event{Kind: EvDismissSuggestion, At: at(1)})
	if got.State != StateEncouraging {
		t.Errorf("state = %s, want encouraging", got.State)
	}
	if !got.Context.SuggestionDismissed {
		t.Error("expected suggestion dismissed")
	}
}

func TestReduce_WrongAnswerEscalation(t *testing.T) {
	s := newTestSnapshot() // threshold 3

	s = Reduce(s, Event{Kind: EvWrongAnswer, At: at(1)})
	if s.State != StateIdle || s.Context.WrongAttempts != 1 {
		t.Fatalf("after 1 wrong: state=%s count=%d", s.State, s.Context.WrongAttempts)
	}
	s = Reduce(s, Event{Kind: EvWrongAnswer, At: at(2)})
	if s.State != StateIdle || s.Context.WrongAttempts != 2 {
		t.Fatalf("after 2 wrong: state=%s count=%d", s.State, s.Context.WrongAttempts)
	}
	s = Reduce(s, Event{Kind: EvWrongAnswer, At: at(3)})
	if s.State != StateOfferingHelp || s.Context.WrongAttempts != 3 {
		t.Fatalf("after 3 wrong: state=%s count=%d, want offeringHelp/3", s.State, s.Context.WrongAttempts)
	}
}

func TestReduce_WrongAnswerCountMonotonic(t *testing.T) {
	s := newTestSnapshot()
	prev := 0
	for i := 0; i < 6; i++ {
		s = Reduce(s, Event{Kind: EvWrongAnswer, At: at(i)})
		if s.Context.WrongAttempts < prev {
			t.Fatalf("wrong count decreased: %d -> %d", prev, s.Context.WrongAttempts)
		}
		prev = s.Context.WrongAttempts
		// offeringHelp ignores WRONG_ANSWER; re-arm via digit.
		if s.State == StateOfferingHelp {
			s = Reduce(s, Event{Kind: EvDigitTyped, At: at(i)})
		}
	}
}

func TestReduce_FullEscalationScenario(t *testing.T) {
	s := newTestSnapshot()

	s = Reduce(s, Event{Kind: EvTimerEncouragement, At: at(20)})
	if s.State != StateEncouraging {
		t.Fatalf("state = %s, want encouraging", s.State)
	}
	if s.Context.AutoPauseStats != nil {
		t.Error("stats should not be set yet")
	}

	s = Reduce(s, Event{Kind: EvTimerHelpOffer, At: at(40)})
	if s.State != StateOfferingHelp {
		t.Fatalf("state = %s, want offeringHelp", s.State)
	}
	if s.Context.AutoPauseStats != nil {
		t.Error("stats should not be set yet")
	}

	stats := &AutoPauseStats{Attempted: 4, Wrong: 3, StuckMs: 75_000}
	s = Reduce(s, Event{Kind: EvTimerAutoPause, At: at(75), Stats: stats})
	if s.State != StateAutoPaused {
		t.Fatalf("state = %s, want autoPaused", s.State)
	}
	if s.Context.AutoPauseStats != stats {
		t.Error("expected auto-pause stats stored")
	}

	s = Reduce(s, Event{Kind: EvResumed, At: at(120)})
	if s.State != StateIdle {
		t.Fatalf("state = %s, want idle", s.State)
	}
	if !s.Context.IdleStartedAt.Equal(at(120)) {
		t.Error("resume should reset the idle clock")
	}
}

func TestReduce_DigitTypedResetsIdleClock(t *testing.T) {
	s := newTestSnapshot()
	s = Reduce(s, Event{Kind: EvTimerEncouragement, At: at(20)})
	s = Reduce(s, Event{Kind: EvDigitTyped, At: at(25)})
	if s.State != StateIdle {
		t.Fatalf("state = %s, want idle", s.State)
	}
	if !s.Context.IdleStartedAt.Equal(at(25)) {
		t.Errorf("idle start = %v, want %v", s.Context.IdleStartedAt, at(25))
	}
}

func TestReduce_HelpTermIdempotent(t *testing.T) {
	s := newTestSnapshot()
	s = Reduce(s, Event{Kind: EvHelpEntered, At: at(1)})

	s = Reduce(s, Event{Kind: EvHelpTermCompleted, At: at(2), TermIndex: 1})
	s = Reduce(s, Event{Kind: EvHelpTermCompleted, At: at(3), TermIndex: 1})
	if len(s.Context.HelpedTerms) != 1 {
		t.Errorf("helped terms = %d, want 1", len(s.Context.HelpedTerms))
	}
}

func TestReduce_AllTermsHelpedGrace(t *testing.T) {
	// 4-term problem: 3 helpable terms.
	s := newTestSnapshot()
	s = Reduce(s, Event{Kind: EvHelpEntered, At: at(1)})
	s = Reduce(s, Event{Kind: EvHelpTermCompleted, At: at(2), TermIndex: 1})
	s = Reduce(s, Event{Kind: EvHelpTermCompleted, At: at(3), TermIndex: 2})
	s = Reduce(s, Event{Kind: EvHelpExited, At: at(4), TermCount: 4})

	if s.Context.AllTermsHelped {
		t.Fatal("two of three helpable terms should not set allTermsHelped")
	}
	if s.Context.MoveOnGraceStartedAt != nil {
		t.Fatal("no grace timer without allTermsHelped")
	}

	s = Reduce(s, Event{Kind: EvHelpEntered, At: at(5)})
	s = Reduce(s, Event{Kind: EvHelpTermCompleted, At: at(6), TermIndex: 3})
	s = Reduce(s, Event{Kind: EvHelpExited, At: at(7), TermCount: 4})

	if !s.Context.AllTermsHelped {
		t.Fatal("all three helpable terms should set allTermsHelped")
	}
	if s.Context.MoveOnGraceStartedAt == nil {
		t.Fatal("expected move-on grace timer started")
	}
	if !s.Context.MoveOnGraceStartedAt.Equal(at(7)) {
		t.Errorf("grace start = %v, want %v", s.Context.MoveOnGraceStartedAt, at(7))
	}
}

func TestReduce_SingleTermProblemNeverAllHelped(t *testing.T) {
	s := newTestSnapshot()
	s = Reduce(s, Event{Kind: EvHelpEntered, At: at(1)})
	s = Reduce(s, Event{Kind: EvHelpExited, At: at(2), TermCount: 1})
	if s.Context.AllTermsHelped {
		t.Error("helpableTermCount == 0 must not set allTermsHelped")
	}
}

func TestReduce_MoveOnGraceSetsAvailability(t *testing.T) {
	s := newTestSnapshot()
	s.Context.AllTermsHelped = true
	gs := at(1)
	s.Context.MoveOnGraceStartedAt = &gs

	s = Reduce(s, Event{Kind: EvTimerMoveOnGrace, At: at(5)})
	if !s.Context.MoveOnAvailable {
		t.Fatal("expected move-on available")
	}
	if s.Context.MoveOnGraceStartedAt != nil {
		t.Error("grace start must be cleared once move-on is available")
	}
}

func TestReduce_LogCappedNewestFirst(t *testing.T) {
	s := newTestSnapshot()
	for i := 0; i < 50; i++ {
		s = Reduce(s, Event{Kind: EvDigitTyped, At: at(i)})
	}

	if len(s.Context.Log) > MaxLogEntries {
		t.Fatalf("log length = %d, want <= %d", len(s.Context.Log), MaxLogEntries)
	}
	for i := 1; i < len(s.Context.Log); i++ {
		if s.Context.Log[i].At.After(s.Context.Log[i-1].At) {
			t.Fatalf("log not newest-first at %d", i)
		}
	}
	if !s.Context.Log[0].At.Equal(at(49)) {
		t.Errorf("newest entry = %v, want %v", s.Context.Log[0].At, at(49))
	}
}

func TestReduce_InputSnapshotNotMutated(t *testing.T) {
	s := newTestSnapshot()
	inHelp := Reduce(s, Event{Kind: EvHelpEntered, At: at(1)})
	_ = Reduce(inHelp, Event{Kind: EvHelpTermCompleted, At: at(2), TermIndex: 1})

	if len(inHelp.Context.HelpedTerms) != 0 {
		t.Error("reducer mutated its input snapshot")
	}
}

func TestShowWrongAnswerSuggestion(t *testing.T) {
	s := newTestSnapshot()
	s.Context.WrongAttempts = 3

	if !ShowWrongAnswerSuggestion(s) {
		t.Error("expected suggestion at threshold in idle")
	}

	s.State = StateInHelp
	if ShowWrongAnswerSuggestion(s) {
		t.Error("no suggestion while in help")
	}
	s.State = StateAutoPaused
	if ShowWrongAnswerSuggestion(s) {
		t.Error("no suggestion while auto-paused")
	}

	s.State = StateIdle
	s.Context.SuggestionDismissed = true
	if ShowWrongAnswerSuggestion(s) {
		t.Error("no suggestion after dismissal")
	}
}

func TestNextTimer_FiresImmediatelyWhenElapsed(t *testing.T) {
	s := newTestSnapshot() // encouragement at 20s

	ev, wait, ok := NextTimer(s, at(30))
	if !ok || ev.Kind != EvTimerEncouragement {
		t.Fatalf("ev = %v ok = %v", ev, ok)
	}
	if wait > 0 {
		t.Errorf("wait = %v, want <= 0 for already-elapsed threshold", wait)
	}
}

func TestNextTimer_PerState(t *testing.T) {
	s := newTestSnapshot()

	ev, wait, ok := NextTimer(s, at(5))
	if !ok || ev.Kind != EvTimerEncouragement || wait != 15*time.Second {
		t.Errorf("idle: ev=%v wait=%v ok=%v", ev.Kind, wait, ok)
	}

	s = Reduce(s, Event{Kind: EvTimerEncouragement, At: at(20)})
	ev, wait, ok = NextTimer(s, at(20))
	if !ok || ev.Kind != EvTimerHelpOffer || wait != 20*time.Second {
		t.Errorf("encouraging: ev=%v wait=%v ok=%v", ev.Kind, wait, ok)
	}

	s = Reduce(s, Event{Kind: EvTimerHelpOffer, At: at(40)})
	ev, wait, ok = NextTimer(s, at(40))
	if !ok || ev.Kind != EvTimerAutoPause || wait != 35*time.Second {
		t.Errorf("offeringHelp: ev=%v wait=%v ok=%v", ev.Kind, wait, ok)
	}

	s = Reduce(s, Event{Kind: EvTimerAutoPause, At: at(75), Stats: &AutoPauseStats{}})
	if _, _, ok = NextTimer(s, at(75)); ok {
		t.Error("autoPaused: no timer expected")
	}

	s = Reduce(s, Event{Kind: EvResumed, At: at(80)})
	s = Reduce(s, Event{Kind: EvHelpEntered, At: at(81)})
	if _, _, ok = NextTimer(s, at(81)); ok {
		t.Error("inHelp: no timer expected")
	}
}

func TestNextTimer_MoveOnGraceBeatsEncouragement(t *testing.T) {
	s := newTestSnapshot()
	s.Context.AllTermsHelped = true
	gs := at(0)
	s.Context.MoveOnGraceStartedAt = &gs // due at 4s, encouragement at 20s

	ev, wait, ok := NextTimer(s, at(1))
	if !ok || ev.Kind != EvTimerMoveOnGrace {
		t.Fatalf("ev = %v, want move-on grace", ev.Kind)
	}
	if wait != 3*time.Second {
		t.Errorf("wait = %v, want 3s", wait)
	}
}

func TestShiftIdle(t *testing.T) {
	s := newTestSnapshot()
	gs := at(2)
	s.Context.MoveOnGraceStartedAt = &gs

	shifted := ShiftIdle(s, 10*time.Second)
	if !shifted.Context.IdleStartedAt.Equal(at(10)) {
		t.Errorf("idle start = %v, want %v", shifted.Context.IdleStartedAt, at(10))
	}
	if !shifted.Context.MoveOnGraceStartedAt.Equal(at(12)) {
		t.Errorf("grace start = %v, want %v", shifted.Context.MoveOnGraceStartedAt, at(12))
	}
	if ShiftIdle(s, 0) != s {
		t.Error("zero shift should be identity")
	}
}
