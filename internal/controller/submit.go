package controller

import (
	"context"
	"time"

	"github.com/abhisek/sumleap/internal/plan"
)

// SubmitMode distinguishes canonical progress from redo work.
type SubmitMode string

const (
	ModePractice SubmitMode = "practice"
	ModeRedo     SubmitMode = "redo"
)

// Intent is the resolved advance outcome.
type Intent string

const (
	// IntentSlideNext animates directly to a known target, avoiding a
	// loading flash.
	IntentSlideNext Intent = "slide-to-next-problem"

	// IntentClearToLoading drops to the loading placeholder and trusts
	// the reactive binding to pick up the authoritative next problem.
	IntentClearToLoading Intent = "clear-to-loading"

	// IntentStateHandoff ends a redo with no return position; the host
	// decides where to land.
	IntentStateHandoff Intent = "state-handoff"
)

// Submission captures everything advance resolution needs, frozen at
// submit time so later plan mutations can't race it.
type Submission struct {
	Mode    SubmitMode
	Verdict Verdict
	Result  plan.SlotResult

	// Await forces the persistence call to settle before resolution.
	// False only on the optimistic path: epoch 0 with a statically-known
	// next slot in the same part.
	Await bool

	// SyncTarget is that statically-known next slot, when present.
	SyncTarget *TransitionTarget

	// Snapshot of the active position at submit time, for polling.
	KeyAtSubmit   string
	PartAtSubmit  int
	EpochAtSubmit int

	// Redo-only fields.
	RedoRecord   *RedoRecord       // nil when nothing should be persisted
	ReturnTarget *TransitionTarget // precomputed return-to-original position
}

// StartSubmit locks the answer and builds the Submission. Returns nil
// when the phase forbids submitting or the pending answer is not numeric
// (silently rejected: no verdict, no phase change).
func (c *Controller) StartSubmit(p *plan.SessionPlan) *Submission {
	switch c.phase {
	case PhaseInputting, PhaseAwaitingDisambiguation:
	default:
		return nil
	}
	n, ok := c.answerNum()
	if !ok {
		return nil
	}

	a := c.attempt
	correct := n == a.Problem.Answer
	verdict := VerdictIncorrect
	if correct {
		verdict = VerdictCorrect
	}

	res := plan.SlotResult{
		SlotID:        a.SlotID,
		PartIndex:     a.PartIndex,
		SlotIndex:     a.SlotIndex,
		Problem:       a.Problem,
		Answer:        n,
		Correct:       correct,
		ResponseMs:    c.ElapsedMs(),
		WrongAttempts: a.WrongAttempts,
		UsedHelp:      a.UsedHelp,
		Epoch:         a.Epoch,
		At:            c.now(),
	}

	sub := &Submission{
		Verdict:       verdict,
		Result:        res,
		KeyAtSubmit:   p.ActiveKey(),
		PartAtSubmit:  a.PartIndex,
		EpochAtSubmit: a.Epoch,
	}

	if c.redo != nil && c.redo.Active {
		c.buildRedoSubmission(p, sub)
	} else {
		c.buildPracticeSubmission(p, sub)
	}

	c.phase = PhaseSubmitting
	return sub
}

// StartMoveOn submits the attempt as incorrect without requiring a
// parseable answer. The move-on path after full help: the slot records a
// miss and progression continues.
func (c *Controller) StartMoveOn(p *plan.SessionPlan) *Submission {
	switch c.phase {
	case PhaseInputting, PhaseAwaitingDisambiguation:
	default:
		return nil
	}

	a := c.attempt
	n, _ := c.answerNum() // zero when unparsable; recorded as given

	res := plan.SlotResult{
		SlotID:        a.SlotID,
		PartIndex:     a.PartIndex,
		SlotIndex:     a.SlotIndex,
		Problem:       a.Problem,
		Answer:        n,
		Correct:       false,
		ResponseMs:    c.ElapsedMs(),
		WrongAttempts: a.WrongAttempts,
		UsedHelp:      a.UsedHelp,
		Epoch:         a.Epoch,
		At:            c.now(),
	}

	sub := &Submission{
		Verdict:       VerdictIncorrect,
		Result:        res,
		KeyAtSubmit:   p.ActiveKey(),
		PartAtSubmit:  a.PartIndex,
		EpochAtSubmit: a.Epoch,
	}

	if c.redo != nil && c.redo.Active {
		c.buildRedoSubmission(p, sub)
	} else {
		c.buildPracticeSubmission(p, sub)
	}

	c.phase = PhaseSubmitting
	return sub
}

func (c *Controller) buildPracticeSubmission(p *plan.SessionPlan, sub *Submission) {
	sub.Mode = ModePractice

	if sub.EpochAtSubmit == 0 {
		if next := p.NextSlotInPart(sub.PartAtSubmit, c.attempt.SlotIndex); next != nil {
			sub.SyncTarget = &TransitionTarget{
				Problem:   next.Problem,
				SlotID:    next.ID,
				PartIndex: sub.PartAtSubmit,
				SlotIndex: c.attempt.SlotIndex + 1,
				Epoch:     0,
			}
			// Optimistic advance: the serializing write queue keeps
			// persistence ordered; nothing ahead depends on its result.
			sub.Await = false
			return
		}
	}
	// Epoch transition or part boundary: the next step may depend on
	// server-computed retry assignment or completion.
	sub.Await = true
}

func (c *Controller) buildRedoSubmission(p *plan.SessionPlan, sub *Submission) {
	sub.Mode = ModeRedo
	sub.Await = true
	sub.ReturnTarget = c.redo.Return

	// Practicing an already-correct slot records nothing; only a redo of
	// a miss earns a new, non-canonical result.
	if c.redo.Original != nil && !c.redo.Original.Correct {
		res := sub.Result
		res.IsRetry = true
		res.Epoch = c.redo.Original.Epoch + 1
		res.OriginalSlot = c.redo.OriginalSlotIndex
		sub.Result = res
		sub.RedoRecord = &RedoRecord{
			PlayerID:     p.PlayerID,
			PlanID:       p.ID,
			Result:       res,
			OriginalPart: c.redo.OriginalPartIndex,
			OriginalSlot: c.redo.OriginalSlotIndex,
			LinearIndex:  c.redo.LinearIndex,
		}
	}
}

// RecordWrongAttempt bumps the live attempt's wrong counter after an
// incorrect verdict so the next submission of this attempt carries it.
func (c *Controller) RecordWrongAttempt() {
	if c.attempt != nil {
		c.attempt.WrongAttempts++
	}
}

// ResolveConfig carries the protocol's timing constants. The polling
// window has no derivation beyond matching observed product latency;
// treat the defaults as a starting point, not precision.
type ResolveConfig struct {
	FeedbackCorrect   time.Duration
	FeedbackIncorrect time.Duration
	PollInterval      time.Duration
	PollBound         time.Duration
}

// DefaultResolveConfig returns the stock protocol timings.
func DefaultResolveConfig() ResolveConfig {
	return ResolveConfig{
		FeedbackCorrect:   500 * time.Millisecond,
		FeedbackIncorrect: 1500 * time.Millisecond,
		PollInterval:      50 * time.Millisecond,
		PollBound:         500 * time.Millisecond,
	}
}

// Resolution is the outcome of advance resolution.
type Resolution struct {
	Mode   SubmitMode
	Intent Intent
	Target *TransitionTarget
}

// Resolver runs the post-verdict half of the submission protocol off the
// host loop: persistence discipline, feedback hold, target resolution.
type Resolver struct {
	Cfg      ResolveConfig
	Cell     *ActiveCell
	Recorder AnswerRecorder

	// OnRedoDone fires after redo resolution regardless of outcome.
	OnRedoDone func(Resolution)
}

// Run executes the protocol for one submission. Designed to run in its
// own goroutine; the returned Resolution is applied on the host loop.
// Persistence failures are swallowed; the bounded polling below times
// out to the safe loading fallback on its own.
func (r *Resolver) Run(ctx context.Context, sub *Submission) Resolution {
	r.persist(ctx, sub)
	r.holdFeedback(ctx, sub)

	var res Resolution
	if sub.Mode == ModeRedo {
		res = r.resolveRedo(sub)
		if r.OnRedoDone != nil {
			r.OnRedoDone(res)
		}
		return res
	}
	return r.resolvePractice(ctx, sub)
}

func (r *Resolver) persist(ctx context.Context, sub *Submission) {
	if sub.Mode == ModeRedo {
		if sub.RedoRecord != nil {
			_, _ = r.Recorder.RecordRedo(ctx, *sub.RedoRecord)
		}
		return
	}
	if sub.Await {
		_ = r.Recorder.RecordResult(ctx, sub.Result)
		return
	}
	r.Recorder.EnqueueResult(sub.Result)
}

func (r *Resolver) holdFeedback(ctx context.Context, sub *Submission) {
	hold := r.Cfg.FeedbackIncorrect
	if sub.Verdict == VerdictCorrect {
		hold = r.Cfg.FeedbackCorrect
	}
	sleep(ctx, hold)
}

// resolveRedo is synchronous: no polling.
func (r *Resolver) resolveRedo(sub *Submission) Resolution {
	if sub.ReturnTarget != nil {
		return Resolution{Mode: ModeRedo, Intent: IntentSlideNext, Target: sub.ReturnTarget}
	}
	return Resolution{Mode: ModeRedo, Intent: IntentStateHandoff}
}

func (r *Resolver) resolvePractice(ctx context.Context, sub *Submission) Resolution {
	// Synchronous first attempt.
	if sub.SyncTarget != nil {
		return Resolution{Mode: ModePractice, Intent: IntentSlideNext, Target: sub.SyncTarget}
	}

	// Bounded polling fallback: watch the active-problem cell for an
	// advance within the same part and epoch as at submit time.
	deadline := time.Now().Add(r.Cfg.PollBound)
	for {
		if t, ok := r.pollCell(sub); ok {
			return Resolution{Mode: ModePractice, Intent: IntentSlideNext, Target: t}
		}
		if time.Now().After(deadline) || ctx.Err() != nil {
			return Resolution{Mode: ModePractice, Intent: IntentClearToLoading}
		}
		sleep(ctx, r.Cfg.PollInterval)
	}
}

func (r *Resolver) pollCell(sub *Submission) (*TransitionTarget, bool) {
	key, t := r.Cell.Load()
	if t == nil || key == sub.KeyAtSubmit {
		return nil, false
	}
	if t.PartIndex != sub.PartAtSubmit || t.Epoch != sub.EpochAtSubmit {
		return nil, false
	}
	return t, true
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
