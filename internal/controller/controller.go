package controller

import (
	"strconv"
	"time"
)

// Controller is the interaction-phase state machine. It owns the live
// Attempt and nothing else; the assistance machine and session plan live
// outside and communicate through explicit calls. All methods must be
// invoked from the host event loop; the controller is not goroutine-safe.
type Controller struct {
	phase       Phase
	resumePhase Phase

	attempt  *Attempt
	outgoing *Attempt
	verdict  Verdict
	target   *TransitionTarget

	pause *PauseInfo

	helpTerm     int
	disambigTerm int
	moveOnSignal bool

	redo *RedoState

	now func() time.Time
}

// New creates a controller in the loading phase.
func New(now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{phase: PhaseLoading, now: now}
}

func (c *Controller) Phase() Phase               { return c.phase }
func (c *Controller) Attempt() *Attempt          { return c.attempt }
func (c *Controller) Outgoing() *Attempt         { return c.outgoing }
func (c *Controller) Verdict() Verdict           { return c.verdict }
func (c *Controller) Target() *TransitionTarget  { return c.target }
func (c *Controller) PauseState() *PauseInfo     { return c.pause }
func (c *Controller) HelpTerm() int              { return c.helpTerm }
func (c *Controller) DisambiguationTerm() int    { return c.disambigTerm }

// BindAttempt creates the live Attempt for a newly active problem. Legal
// from loading (reactive rebind) only; transitions land in inputting via
// CompleteTransition instead.
func (c *Controller) BindAttempt(t TransitionTarget, manualSubmit bool) bool {
	if c.phase != PhaseLoading {
		return false
	}
	c.bind(t, manualSubmit)
	c.phase = PhaseInputting
	return true
}

func (c *Controller) bind(t TransitionTarget, manualSubmit bool) {
	c.attempt = &Attempt{
		Problem:      t.Problem,
		SlotID:       t.SlotID,
		PartIndex:    t.PartIndex,
		SlotIndex:    t.SlotIndex,
		Epoch:        t.Epoch,
		StartedAt:    c.now(),
		ManualSubmit: manualSubmit,
	}
	c.outgoing = nil
	c.target = nil
	c.verdict = ""
	c.helpTerm = 0
	c.disambigTerm = 0
	c.moveOnSignal = false
}

// HandleDigit appends a digit to the pending answer. No-op outside the
// input-accepting phases. Returns true when the digit was accepted, so
// the host can forward DIGIT_TYPED to the assistance machine.
func (c *Controller) HandleDigit(d rune) bool {
	if d < '0' || d > '9' {
		return false
	}
	if c.attempt == nil {
		return false
	}
	switch c.phase {
	case PhaseInputting, PhaseAwaitingDisambiguation, PhaseHelpMode:
	default:
		return false
	}

	c.attempt.Answer += string(d)
	if c.phase != PhaseHelpMode {
		c.checkPartialSum()
	}
	return true
}

// HandleBackspace removes the last pending digit.
func (c *Controller) HandleBackspace() bool {
	if c.attempt == nil || c.attempt.Answer == "" {
		return false
	}
	switch c.phase {
	case PhaseInputting, PhaseAwaitingDisambiguation, PhaseHelpMode:
	default:
		return false
	}
	c.attempt.Answer = c.attempt.Answer[:len(c.attempt.Answer)-1]
	if c.phase != PhaseHelpMode {
		c.checkPartialSum()
	}
	return true
}

// checkPartialSum watches for the pending answer matching a running
// intermediate total, which is ambiguous: the learner may be done with a
// step, or may think they are done with the problem. Matching enters
// awaitingDisambiguation; a host timer later auto-enters help.
func (c *Controller) checkPartialSum() {
	n, ok := c.answerNum()
	if !ok {
		c.clearDisambiguation()
		return
	}

	sums := c.attempt.Problem.PrefixSums()
	for i := 0; i < len(sums)-1; i++ {
		if sums[i] == n {
			c.phase = PhaseAwaitingDisambiguation
			c.disambigTerm = i + 1 // the next term is the one to step through
			return
		}
	}
	c.clearDisambiguation()
}

func (c *Controller) clearDisambiguation() {
	if c.phase == PhaseAwaitingDisambiguation {
		c.phase = PhaseInputting
	}
	c.disambigTerm = 0
}

// answerNum parses the pending answer, ignoring leading zeros. ok is
// false for an empty or non-numeric pending answer.
func (c *Controller) answerNum() (int, bool) {
	if c.attempt == nil || c.attempt.Answer == "" {
		return 0, false
	}
	n, err := strconv.Atoi(c.attempt.Answer)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ClearAnswer wipes the pending answer and any disambiguation state
// derived from it, dropping back to inputting if a partial-sum match was
// armed.
func (c *Controller) ClearAnswer() {
	if c.attempt == nil {
		return
	}
	c.attempt.Answer = ""
	c.clearDisambiguation()
}

// AnswerMatches reports whether the pending answer numerically equals the
// problem's answer.
func (c *Controller) AnswerMatches() bool {
	n, ok := c.answerNum()
	return ok && n == c.attempt.Problem.Answer
}

// ShouldAutoSubmit reports whether the auto-submit condition holds: the
// pending answer matches, the attempt doesn't require manual submission,
// and the phase permits submitting.
func (c *Controller) ShouldAutoSubmit() bool {
	if c.attempt == nil || c.attempt.ManualSubmit {
		return false
	}
	if c.phase != PhaseInputting && c.phase != PhaseAwaitingDisambiguation {
		return false
	}
	return c.AnswerMatches()
}

// EnterHelpMode switches to interactive step-through of one term.
func (c *Controller) EnterHelpMode(termIndex int) bool {
	if c.attempt == nil {
		return false
	}
	switch c.phase {
	case PhaseInputting, PhaseAwaitingDisambiguation:
	default:
		return false
	}
	if termIndex < 0 || termIndex >= len(c.attempt.Problem.Terms) {
		return false
	}
	c.phase = PhaseHelpMode
	c.helpTerm = termIndex
	c.disambigTerm = 0
	c.attempt.UsedHelp = true
	return true
}

// AutoEnterHelp enters help at the term detected by partial-sum matching.
// Fired by the host's disambiguation timer.
func (c *Controller) AutoEnterHelp() bool {
	if c.phase != PhaseAwaitingDisambiguation {
		return false
	}
	term := c.disambigTerm
	c.phase = PhaseInputting // EnterHelpMode guards on phase
	return c.EnterHelpMode(term)
}

// CompleteHelpTerm finishes the current help term and moves to the next
// one if any. Returns the completed term index for HELP_TERM_COMPLETED.
func (c *Controller) CompleteHelpTerm() (int, bool) {
	if c.phase != PhaseHelpMode || c.attempt == nil {
		return 0, false
	}
	done := c.helpTerm
	if c.helpTerm+1 < len(c.attempt.Problem.Terms) {
		c.helpTerm++
	}
	return done, true
}

// ExitHelpMode leaves help, clearing the pending answer. moveOn leaves a
// residual signal consumed by MoveOnSignal.
func (c *Controller) ExitHelpMode(moveOn bool) bool {
	if c.phase != PhaseHelpMode || c.attempt == nil {
		return false
	}
	c.phase = PhaseInputting
	c.attempt.Answer = ""
	c.moveOnSignal = moveOn
	return true
}

// MoveOnSignal consumes the residual move-on signal left by help exit.
func (c *Controller) MoveOnSignal() bool {
	s := c.moveOnSignal
	c.moveOnSignal = false
	return s
}

// CompleteSubmit records the verdict and shows feedback. The finished
// attempt is retained as the outgoing attempt for the slide animation.
func (c *Controller) CompleteSubmit(v Verdict) bool {
	if c.phase != PhaseSubmitting {
		return false
	}
	c.phase = PhaseShowingFeedback
	c.verdict = v
	c.outgoing = c.attempt
	return true
}

// StartTransition begins the animated slide toward a known target.
func (c *Controller) StartTransition(t TransitionTarget) bool {
	if c.phase != PhaseShowingFeedback && c.phase != PhaseLoading {
		return false
	}
	c.phase = PhaseTransitioning
	c.target = &t
	return true
}

// CompleteTransition binds the attempt for the transition target and
// returns to inputting.
func (c *Controller) CompleteTransition(manualSubmit bool) bool {
	if c.phase != PhaseTransitioning || c.target == nil {
		return false
	}
	t := *c.target
	c.bind(t, manualSubmit)
	c.phase = PhaseInputting
	return true
}

// ClearToLoading drops back to the loading placeholder. The host's
// reactive binding re-derives the next attempt once plan data changes.
func (c *Controller) ClearToLoading() {
	c.phase = PhaseLoading
	c.attempt = nil
	c.outgoing = nil
	c.target = nil
	c.verdict = ""
	c.disambigTerm = 0
	c.helpTerm = 0
}

// BeginPause freezes the session: input disabled, elapsed-time clock
// stopped. The current phase is restored on resume. Returns false if
// already paused.
func (c *Controller) BeginPause(info PauseInfo) bool {
	if c.phase == PhasePaused {
		return false
	}
	if info.At.IsZero() {
		info.At = c.now()
	}
	c.resumePhase = c.phase
	c.phase = PhasePaused
	c.pause = &info
	return true
}

// Resume restores the pre-pause phase and accounts the paused time
// against the live attempt. Returns the pause duration so the host can
// shift the assistance idle clock by the same amount.
func (c *Controller) Resume() (time.Duration, bool) {
	if c.phase != PhasePaused || c.pause == nil {
		return 0, false
	}
	d := c.now().Sub(c.pause.At)
	if d < 0 {
		d = 0
	}
	if c.attempt != nil {
		c.attempt.PausedMs += d.Milliseconds()
	}
	c.phase = c.resumePhase
	c.pause = nil
	return d, true
}

// ElapsedMs is the attempt's response clock: wall time minus accumulated
// pause time, with a live pause excluded as well.
func (c *Controller) ElapsedMs() int64 {
	if c.attempt == nil {
		return 0
	}
	elapsed := c.now().Sub(c.attempt.StartedAt).Milliseconds() - c.attempt.PausedMs
	if c.phase == PhasePaused && c.pause != nil {
		elapsed -= c.now().Sub(c.pause.At).Milliseconds()
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}
