package controller

import (
	"testing"
	"time"

	"github.com/abhisek/sumleap/internal/plan"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func target(terms []int, part, slot, epoch int) TransitionTarget {
	return TransitionTarget{
		Problem:   plan.NewProblem(terms),
		SlotID:    "s",
		PartIndex: part,
		SlotIndex: slot,
		Epoch:     epoch,
	}
}

func boundController(t *testing.T, clock *fakeClock, terms []int) *Controller {
	t.Helper()
	c := New(clock.Now)
	if !c.BindAttempt(target(terms, 0, 0, 0), false) {
		t.Fatal("BindAttempt failed from loading")
	}
	return c
}

func typeDigits(c *Controller, s string) {
	for _, d := range s {
		c.HandleDigit(d)
	}
}

func TestBindAttemptOnlyFromLoading(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5})
	if c.Phase() != PhaseInputting {
		t.Fatalf("phase = %v, want inputting", c.Phase())
	}
	if c.BindAttempt(target([]int{1, 2}, 0, 1, 0), false) {
		t.Error("BindAttempt succeeded outside loading")
	}
}

func TestHandleDigitGating(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5})

	if c.HandleDigit('x') {
		t.Error("accepted non-digit")
	}
	if !c.HandleDigit('8') {
		t.Error("rejected digit while inputting")
	}

	c.phase = PhaseSubmitting
	if c.HandleDigit('1') {
		t.Error("accepted digit while submitting")
	}
	c.phase = PhasePaused
	if c.HandleDigit('1') {
		t.Error("accepted digit while paused")
	}
}

func TestBackspace(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5})

	if c.HandleBackspace() {
		t.Error("backspace on empty answer reported true")
	}
	typeDigits(c, "12")
	c.HandleBackspace()
	if got := c.Attempt().Answer; got != "1" {
		t.Errorf("answer = %q, want \"1\"", got)
	}
}

func TestPartialSumEntersDisambiguation(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5, 2}) // prefix sums 3, 8, 10

	typeDigits(c, "8")
	if c.Phase() != PhaseAwaitingDisambiguation {
		t.Fatalf("phase = %v, want awaitingDisambiguation", c.Phase())
	}
	if c.DisambiguationTerm() != 2 {
		t.Errorf("disambiguation term = %d, want 2", c.DisambiguationTerm())
	}

	// Typing on clears it when the value no longer matches a prefix sum.
	typeDigits(c, "1")
	if c.Phase() != PhaseInputting {
		t.Errorf("phase = %v, want inputting after mismatch", c.Phase())
	}
	if c.DisambiguationTerm() != 0 {
		t.Errorf("disambiguation term = %d, want 0", c.DisambiguationTerm())
	}
}

func TestClearAnswerDropsDisambiguation(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5, 2})

	typeDigits(c, "8")
	if c.Phase() != PhaseAwaitingDisambiguation {
		t.Fatalf("phase = %v, want awaitingDisambiguation", c.Phase())
	}

	c.ClearAnswer()
	if c.Phase() != PhaseInputting {
		t.Errorf("phase = %v, want inputting after clear", c.Phase())
	}
	if c.Attempt().Answer != "" {
		t.Errorf("answer = %q, want empty", c.Attempt().Answer)
	}
	if c.DisambiguationTerm() != 0 {
		t.Errorf("disambiguation term = %d, want 0", c.DisambiguationTerm())
	}
	if c.AutoEnterHelp() {
		t.Error("auto help entered with no disambiguation armed")
	}
}

func TestFullAnswerIsNotDisambiguation(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5, 2})

	typeDigits(c, "10")
	if c.Phase() != PhaseInputting {
		t.Errorf("phase = %v, want inputting for the final sum", c.Phase())
	}
}

func TestAutoEnterHelpFromDisambiguation(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5, 2})

	typeDigits(c, "3")
	if c.Phase() != PhaseAwaitingDisambiguation {
		t.Fatalf("phase = %v", c.Phase())
	}
	if !c.AutoEnterHelp() {
		t.Fatal("AutoEnterHelp failed")
	}
	if c.Phase() != PhaseHelpMode {
		t.Fatalf("phase = %v, want helpMode", c.Phase())
	}
	if c.HelpTerm() != 1 {
		t.Errorf("help term = %d, want 1", c.HelpTerm())
	}
	if !c.Attempt().UsedHelp {
		t.Error("UsedHelp not set")
	}
}

func TestHelpModeStepThrough(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5, 2})

	if !c.EnterHelpMode(0) {
		t.Fatal("EnterHelpMode failed")
	}
	done, ok := c.CompleteHelpTerm()
	if !ok || done != 0 {
		t.Fatalf("CompleteHelpTerm = (%d, %v), want (0, true)", done, ok)
	}
	if c.HelpTerm() != 1 {
		t.Errorf("help term = %d, want 1", c.HelpTerm())
	}

	typeDigits(c, "99")
	if !c.ExitHelpMode(true) {
		t.Fatal("ExitHelpMode failed")
	}
	if c.Phase() != PhaseInputting {
		t.Errorf("phase = %v, want inputting", c.Phase())
	}
	if c.Attempt().Answer != "" {
		t.Errorf("answer = %q, want cleared", c.Attempt().Answer)
	}
	if !c.MoveOnSignal() {
		t.Error("move-on signal lost")
	}
	if c.MoveOnSignal() {
		t.Error("move-on signal not consumed")
	}
}

func TestEnterHelpModeBounds(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5})
	if c.EnterHelpMode(-1) {
		t.Error("accepted negative term index")
	}
	if c.EnterHelpMode(2) {
		t.Error("accepted out-of-range term index")
	}
}

func TestShouldAutoSubmit(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5, 2})

	typeDigits(c, "10")
	if !c.ShouldAutoSubmit() {
		t.Error("auto submit refused on matching answer")
	}

	c2 := New(clock.Now)
	c2.BindAttempt(target([]int{3, 5, 2}, 0, 0, 0), true)
	for _, d := range "10" {
		c2.HandleDigit(d)
	}
	if c2.ShouldAutoSubmit() {
		t.Error("auto submit allowed on a manual-submit attempt")
	}
}

func TestFeedbackAndTransitionFlow(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "8")

	p := onePartPlan([]int{3, 5}, []int{1, 1})
	sub := c.StartSubmit(p)
	if sub == nil {
		t.Fatal("StartSubmit returned nil")
	}
	if c.Phase() != PhaseSubmitting {
		t.Fatalf("phase = %v, want submitting", c.Phase())
	}

	if !c.CompleteSubmit(VerdictCorrect) {
		t.Fatal("CompleteSubmit failed")
	}
	if c.Phase() != PhaseShowingFeedback {
		t.Fatalf("phase = %v, want showingFeedback", c.Phase())
	}
	if c.Outgoing() == nil {
		t.Fatal("outgoing attempt not retained")
	}

	next := target([]int{1, 1}, 0, 1, 0)
	if !c.StartTransition(next) {
		t.Fatal("StartTransition failed")
	}
	if !c.CompleteTransition(false) {
		t.Fatal("CompleteTransition failed")
	}
	if c.Phase() != PhaseInputting {
		t.Fatalf("phase = %v, want inputting", c.Phase())
	}
	if c.Attempt().SlotIndex != 1 {
		t.Errorf("bound slot index = %d, want 1", c.Attempt().SlotIndex)
	}
	if c.Outgoing() != nil {
		t.Error("outgoing attempt survived rebind")
	}
}

func TestClearToLoading(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "7")

	c.ClearToLoading()
	if c.Phase() != PhaseLoading {
		t.Fatalf("phase = %v, want loading", c.Phase())
	}
	if c.Attempt() != nil || c.Target() != nil || c.Verdict() != "" {
		t.Error("stale attempt state after clear")
	}
}

func TestPauseResumeRestoresPhase(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5, 2})
	typeDigits(c, "3") // awaitingDisambiguation

	if !c.BeginPause(PauseInfo{Reason: PauseTeacher, Message: "break time"}) {
		t.Fatal("BeginPause failed")
	}
	if c.Phase() != PhasePaused {
		t.Fatalf("phase = %v, want paused", c.Phase())
	}
	if c.BeginPause(PauseInfo{Reason: PauseManual}) {
		t.Error("double pause accepted")
	}

	clock.Advance(10 * time.Second)
	d, ok := c.Resume()
	if !ok {
		t.Fatal("Resume failed")
	}
	if d != 10*time.Second {
		t.Errorf("pause duration = %v, want 10s", d)
	}
	if c.Phase() != PhaseAwaitingDisambiguation {
		t.Errorf("phase = %v, want awaitingDisambiguation restored", c.Phase())
	}
	if c.PauseState() != nil {
		t.Error("pause info not cleared")
	}
}

func TestElapsedExcludesPausedTime(t *testing.T) {
	clock := newFakeClock()
	c := boundController(t, clock, []int{3, 5})

	clock.Advance(4 * time.Second)
	c.BeginPause(PauseInfo{Reason: PauseManual})
	clock.Advance(30 * time.Second)

	if got := c.ElapsedMs(); got != 4000 {
		t.Errorf("elapsed during pause = %dms, want 4000", got)
	}

	c.Resume()
	clock.Advance(2 * time.Second)
	if got := c.ElapsedMs(); got != 6000 {
		t.Errorf("elapsed after resume = %dms, want 6000", got)
	}
}
