package controller

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/sumleap/internal/plan"
)

// answeredPlan returns a two-slot plan with slot 0 answered (correctly or
// not) and the cursor on slot 1.
func answeredPlan(correct bool) *plan.SessionPlan {
	p := onePartPlan([]int{3, 5}, []int{1, 1})
	answer := 8
	if !correct {
		answer = 7
	}
	p.Apply(plan.SlotResult{
		SlotID:    "p0-s0",
		PartIndex: 0,
		SlotIndex: 0,
		Problem:   p.Parts[0].Slots[0].Problem,
		Answer:    answer,
		Correct:   correct,
	})
	return p
}

func TestStartRedoRequiresAnsweredSlot(t *testing.T) {
	clock := newFakeClock()
	p := onePartPlan([]int{3, 5}, []int{1, 1})
	c := New(clock.Now)

	if c.StartRedo(p, 0, 0) {
		t.Error("redo accepted for an unanswered slot")
	}
	if c.StartRedo(p, 0, 5) {
		t.Error("redo accepted for an out-of-range slot")
	}
}

func TestStartRedoBindsPastSlot(t *testing.T) {
	clock := newFakeClock()
	p := answeredPlan(false)
	c := New(clock.Now)

	if !c.StartRedo(p, 0, 0) {
		t.Fatal("StartRedo failed")
	}
	if c.Phase() != PhaseInputting {
		t.Fatalf("phase = %v, want inputting", c.Phase())
	}
	a := c.Attempt()
	if a.SlotIndex != 0 || a.Epoch != 1 {
		t.Errorf("attempt bound at (slot %d, epoch %d), want (0, 1)", a.SlotIndex, a.Epoch)
	}
	if !a.ManualSubmit {
		t.Error("redo attempts must require manual submission")
	}

	rs := c.Redo()
	if rs == nil {
		t.Fatal("redo state missing")
	}
	if rs.Return == nil || rs.Return.SlotIndex != 1 {
		t.Errorf("return target = %+v, want cursor slot 1", rs.Return)
	}
	if rs.LinearIndex != 0 {
		t.Errorf("linear index = %d, want 0", rs.LinearIndex)
	}
}

func TestCancelRedo(t *testing.T) {
	clock := newFakeClock()
	p := answeredPlan(false)
	c := New(clock.Now)
	c.StartRedo(p, 0, 0)
	typeDigits(c, "4")

	ret, ok := c.CancelRedo()
	if !ok {
		t.Fatal("CancelRedo failed")
	}
	if ret == nil || ret.SlotIndex != 1 {
		t.Errorf("return target = %+v", ret)
	}
	if c.Phase() != PhaseLoading {
		t.Errorf("phase = %v, want loading", c.Phase())
	}
	if c.Redo() != nil {
		t.Error("redo state survived cancel")
	}
}

func TestRedoOfIncorrectRecordsOnce(t *testing.T) {
	clock := newFakeClock()
	p := answeredPlan(false)
	c := New(clock.Now)
	c.StartRedo(p, 0, 0)
	typeDigits(c, "8")

	sub := c.StartSubmit(p)
	if sub == nil {
		t.Fatal("StartSubmit returned nil")
	}
	if sub.Mode != ModeRedo {
		t.Fatalf("mode = %v, want redo", sub.Mode)
	}
	if sub.RedoRecord == nil {
		t.Fatal("redo of an incorrect slot must persist a record")
	}
	if !sub.RedoRecord.Result.IsRetry {
		t.Error("redo result not marked as retry")
	}
	if got := sub.RedoRecord.Result.Epoch; got != 1 {
		t.Errorf("redo epoch = %d, want original+1", got)
	}

	rec := &fakeRecorder{}
	var done []Resolution
	r := &Resolver{
		Cfg:        fastResolveConfig(),
		Cell:       &ActiveCell{},
		Recorder:   rec,
		OnRedoDone: func(res Resolution) { done = append(done, res) },
	}

	res := r.Run(context.Background(), sub)
	if res.Intent != IntentSlideNext {
		t.Fatalf("intent = %v, want slide back to the return target", res.Intent)
	}
	if res.Target == nil || res.Target.SlotIndex != 1 {
		t.Errorf("target = %+v", res.Target)
	}

	_, _, redos := rec.counts()
	if redos != 1 {
		t.Fatalf("RecordRedo called %d times, want exactly once", redos)
	}
	if len(done) != 1 {
		t.Errorf("OnRedoDone fired %d times, want once", len(done))
	}
}

func TestRedoOfCorrectRecordsNothing(t *testing.T) {
	clock := newFakeClock()
	p := answeredPlan(true)
	c := New(clock.Now)
	c.StartRedo(p, 0, 0)
	typeDigits(c, "8")

	sub := c.StartSubmit(p)
	if sub == nil {
		t.Fatal("StartSubmit returned nil")
	}
	if sub.RedoRecord != nil {
		t.Error("redo of a correct slot must not persist anything")
	}

	rec := &fakeRecorder{}
	fired := 0
	r := &Resolver{
		Cfg:        fastResolveConfig(),
		Cell:       &ActiveCell{},
		Recorder:   rec,
		OnRedoDone: func(Resolution) { fired++ },
	}
	r.Run(context.Background(), sub)

	_, _, redos := rec.counts()
	if redos != 0 {
		t.Errorf("RecordRedo called %d times, want 0", redos)
	}
	if fired != 1 {
		t.Errorf("OnRedoDone fired %d times, want once even without a record", fired)
	}
}

func TestRedoOnCompletedPlanHandsOff(t *testing.T) {
	clock := newFakeClock()
	p := answeredPlan(true)
	p.Completed = true
	c := New(clock.Now)

	if !c.StartRedo(p, 0, 0) {
		t.Fatal("StartRedo failed on completed plan")
	}
	if c.Redo().Return != nil {
		t.Fatal("completed plan should have no return target")
	}
	typeDigits(c, "8")
	sub := c.StartSubmit(p)

	r := &Resolver{Cfg: fastResolveConfig(), Cell: &ActiveCell{}, Recorder: &fakeRecorder{}}
	res := r.Run(context.Background(), sub)
	if res.Intent != IntentStateHandoff {
		t.Fatalf("intent = %v, want state handoff", res.Intent)
	}
}

func TestRedoTimingUsesAttemptClock(t *testing.T) {
	clock := newFakeClock()
	p := answeredPlan(false)
	c := New(clock.Now)
	c.StartRedo(p, 0, 0)

	clock.Advance(3 * time.Second)
	typeDigits(c, "8")
	sub := c.StartSubmit(p)
	if sub.Result.ResponseMs != 3000 {
		t.Errorf("redo response time = %dms, want 3000", sub.Result.ResponseMs)
	}
}
