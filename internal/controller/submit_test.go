package controller

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/sumleap/internal/plan"
)

// onePartPlan builds a plan with a single part whose slots hold the given
// term lists.
func onePartPlan(termLists ...[]int) *plan.SessionPlan {
	slots := make([]plan.Slot, len(termLists))
	for i, terms := range termLists {
		slots[i] = plan.Slot{
			ID:      fmt.Sprintf("p0-s%d", i),
			Problem: plan.NewProblem(terms),
		}
	}
	return &plan.SessionPlan{
		ID:       "plan-1",
		PlayerID: "player-1",
		Parts: []plan.Part{
			{Type: plan.PartAbacus, Format: plan.FormatVertical, Slots: slots},
		},
		MaxRetryEpochs: 2,
	}
}

type fakeRecorder struct {
	mu       sync.Mutex
	recorded []plan.SlotResult
	enqueued []plan.SlotResult
	redos    []RedoRecord
	redoPlan *plan.SessionPlan
	err      error
}

func (f *fakeRecorder) RecordResult(_ context.Context, res plan.SlotResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, res)
	return f.err
}

func (f *fakeRecorder) EnqueueResult(res plan.SlotResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, res)
}

func (f *fakeRecorder) RecordRedo(_ context.Context, rec RedoRecord) (*plan.SessionPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.redos = append(f.redos, rec)
	return f.redoPlan, f.err
}

func (f *fakeRecorder) counts() (recorded, enqueued, redos int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.recorded), len(f.enqueued), len(f.redos)
}

func fastResolveConfig() ResolveConfig {
	return ResolveConfig{
		FeedbackCorrect:   time.Millisecond,
		FeedbackIncorrect: 2 * time.Millisecond,
		PollInterval:      time.Millisecond,
		PollBound:         20 * time.Millisecond,
	}
}

func TestStartSubmitGuards(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5})
	c := boundController(t, clock, []int{3, 5})

	// Empty answer: silent rejection, phase untouched.
	if sub := c.StartSubmit(p); sub != nil {
		t.Fatal("StartSubmit accepted empty answer")
	}
	if c.Phase() != PhaseInputting {
		t.Errorf("phase = %v after rejected submit, want inputting", c.Phase())
	}

	typeDigits(c, "8")
	c.phase = PhaseShowingFeedback
	if sub := c.StartSubmit(p); sub != nil {
		t.Error("StartSubmit accepted during feedback")
	}
}

func TestStartSubmitVerdictAndResult(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5}, []int{1, 1})
	c := boundController(t, clock, []int{3, 5})

	clock.Advance(6 * time.Second)
	c.RecordWrongAttempt()
	typeDigits(c, "8")

	sub := c.StartSubmit(p)
	if sub == nil {
		t.Fatal("StartSubmit returned nil")
	}
	if sub.Verdict != VerdictCorrect {
		t.Errorf("verdict = %v, want correct", sub.Verdict)
	}
	if sub.Result.Answer != 8 || !sub.Result.Correct {
		t.Errorf("result = %+v", sub.Result)
	}
	if sub.Result.ResponseMs != 6000 {
		t.Errorf("response time = %dms, want 6000", sub.Result.ResponseMs)
	}
	if sub.Result.WrongAttempts != 1 {
		t.Errorf("wrong attempts = %d, want 1", sub.Result.WrongAttempts)
	}
}

func TestStartSubmitOptimisticAtEpochZero(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5}, []int{1, 1})
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "8")

	sub := c.StartSubmit(p)
	if sub == nil {
		t.Fatal("StartSubmit returned nil")
	}
	if sub.Await {
		t.Error("epoch-0 mid-part submission should not await persistence")
	}
	if sub.SyncTarget == nil {
		t.Fatal("expected static sync target")
	}
	if sub.SyncTarget.SlotIndex != 1 || sub.SyncTarget.Epoch != 0 {
		t.Errorf("sync target = %+v", sub.SyncTarget)
	}
}

func TestStartSubmitAwaitsAtPartBoundary(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5}) // single slot, no static next
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "8")

	sub := c.StartSubmit(p)
	if sub == nil {
		t.Fatal("StartSubmit returned nil")
	}
	if !sub.Await {
		t.Error("part-boundary submission must await persistence")
	}
	if sub.SyncTarget != nil {
		t.Error("no static target exists at a part boundary")
	}
}

func TestStartSubmitAwaitsDuringRetryEpoch(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5}, []int{1, 1})
	p.Retry = &plan.RetryState{Epoch: 1, Queue: []int{0, 1}}

	c := New(clock.Now)
	c.BindAttempt(TransitionTarget{
		Problem: plan.NewProblem([]int{3, 5}), SlotID: "p0-s0", Epoch: 1,
	}, false)
	typeDigits(c, "8")

	sub := c.StartSubmit(p)
	if sub == nil {
		t.Fatal("StartSubmit returned nil")
	}
	if !sub.Await || sub.SyncTarget != nil {
		t.Error("retry-epoch submissions must await and never slide statically")
	}
}

func TestResolveSyncSlideSkipsPolling(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5}, []int{1, 1})
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "8")
	sub := c.StartSubmit(p)

	rec := &fakeRecorder{}
	cell := &ActiveCell{} // never published; polling would time out
	r := &Resolver{Cfg: fastResolveConfig(), Cell: cell, Recorder: rec}

	res := r.Run(context.Background(), sub)
	if res.Intent != IntentSlideNext {
		t.Fatalf("intent = %v, want slide", res.Intent)
	}
	if res.Target == nil || res.Target.SlotIndex != 1 {
		t.Errorf("target = %+v", res.Target)
	}
	recorded, enqueued, _ := rec.counts()
	if recorded != 0 || enqueued != 1 {
		t.Errorf("persistence = (recorded %d, enqueued %d), want optimistic enqueue", recorded, enqueued)
	}
}

func TestResolvePollsCellAfterAwait(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5}) // single slot forces the awaited path
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "8")
	sub := c.StartSubmit(p)

	rec := &fakeRecorder{}
	cell := &ActiveCell{}
	cell.Publish(sub.KeyAtSubmit, target([]int{3, 5}, 0, 0, 0))
	r := &Resolver{Cfg: fastResolveConfig(), Cell: cell, Recorder: rec}

	// Publish the advance shortly after resolution starts.
	go func() {
		time.Sleep(5 * time.Millisecond)
		cell.Publish("0:1:0", target([]int{1, 1}, 0, 1, 0))
	}()

	res := r.Run(context.Background(), sub)
	if res.Intent != IntentSlideNext {
		t.Fatalf("intent = %v, want slide via polling", res.Intent)
	}
	if res.Target == nil || res.Target.SlotIndex != 1 {
		t.Errorf("target = %+v", res.Target)
	}
	recorded, enqueued, _ := rec.counts()
	if recorded != 1 || enqueued != 0 {
		t.Errorf("persistence = (recorded %d, enqueued %d), want awaited record", recorded, enqueued)
	}
}

func TestResolveTimesOutToLoading(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5})
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "8")
	sub := c.StartSubmit(p)

	cell := &ActiveCell{}
	cell.Publish(sub.KeyAtSubmit, target([]int{3, 5}, 0, 0, 0))
	r := &Resolver{Cfg: fastResolveConfig(), Cell: cell, Recorder: &fakeRecorder{}}

	res := r.Run(context.Background(), sub)
	if res.Intent != IntentClearToLoading {
		t.Fatalf("intent = %v, want clear-to-loading after bound", res.Intent)
	}
}

func TestResolveIgnoresCrossPartAdvance(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5})
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "8")
	sub := c.StartSubmit(p)

	cell := &ActiveCell{}
	// The cell moves, but to a different part: not a pollable advance.
	cell.Publish("1:0:0", target([]int{1, 1}, 1, 0, 0))
	r := &Resolver{Cfg: fastResolveConfig(), Cell: cell, Recorder: &fakeRecorder{}}

	res := r.Run(context.Background(), sub)
	if res.Intent != IntentClearToLoading {
		t.Fatalf("intent = %v, want clear-to-loading for cross-part move", res.Intent)
	}
}

func TestResolveSwallowsPersistenceError(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5})
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "8")
	sub := c.StartSubmit(p)

	rec := &fakeRecorder{err: fmt.Errorf("disk full")}
	cell := &ActiveCell{}
	cell.Publish(sub.KeyAtSubmit, target([]int{3, 5}, 0, 0, 0))
	r := &Resolver{Cfg: fastResolveConfig(), Cell: cell, Recorder: rec}

	res := r.Run(context.Background(), sub)
	if res.Intent != IntentClearToLoading {
		t.Fatalf("intent = %v, want graceful fallback", res.Intent)
	}
}

func TestFeedbackHoldDuration(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5}, []int{1, 1})
	c := boundController(t, clock, []int{3, 5})
	typeDigits(c, "8")
	sub := c.StartSubmit(p)

	cfg := fastResolveConfig()
	cfg.FeedbackCorrect = 30 * time.Millisecond
	r := &Resolver{Cfg: cfg, Cell: &ActiveCell{}, Recorder: &fakeRecorder{}}

	start := time.Now()
	r.Run(context.Background(), sub)
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("resolution returned after %v, before the feedback hold", elapsed)
	}
}
