package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/sumleap/internal/controller"
	"github.com/abhisek/sumleap/internal/plan"
)

type fakeEventRepo struct {
	mu       sync.Mutex
	results  []plan.SlotResult
	sessions []SessionEventData
	assists  []AssistEventData
	err      error
}

func (f *fakeEventRepo) AppendResult(_ context.Context, _, _ string, res plan.SlotResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.results = append(f.results, res)
	return nil
}

func (f *fakeEventRepo) AppendSession(_ context.Context, data SessionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeEventRepo) AppendAssist(_ context.Context, data AssistEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assists = append(f.assists, data)
	return nil
}

func (f *fakeEventRepo) PlanResults(context.Context, string) ([]plan.SlotResult, error) {
	return nil, nil
}

func (f *fakeEventRepo) RecentSessions(context.Context, int) ([]SessionEventData, error) {
	return nil, nil
}

func (f *fakeEventRepo) recorded() []plan.SlotResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]plan.SlotResult, len(f.results))
	copy(out, f.results)
	return out
}

type fakePlanRepo struct {
	mu    sync.Mutex
	saved []*plan.SessionPlan
}

func (f *fakePlanRepo) Save(_ context.Context, p *plan.SessionPlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, p)
	return nil
}

func (f *fakePlanRepo) Latest(context.Context, string) (*plan.SessionPlan, error) {
	return nil, nil
}

func (f *fakePlanRepo) Prune(context.Context, int) error { return nil }

func (f *fakePlanRepo) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

func testPlan(slotCounts ...int) *plan.SessionPlan {
	parts := make([]plan.Part, len(slotCounts))
	for pi, n := range slotCounts {
		slots := make([]plan.Slot, n)
		for si := range slots {
			slots[si] = plan.Slot{
				ID:      fmt.Sprintf("p%d-s%d", pi, si),
				Problem: plan.NewProblem([]int{2, 3}),
			}
		}
		parts[pi] = plan.Part{Type: plan.PartAbacus, Format: plan.FormatVertical, Slots: slots}
	}
	return &plan.SessionPlan{
		ID:             "plan-1",
		PlayerID:       "player-1",
		Parts:          parts,
		MaxRetryEpochs: 2,
	}
}

func resultFor(p *plan.SessionPlan, correct bool) plan.SlotResult {
	slot := p.CurrentSlot()
	return plan.SlotResult{
		SlotID:    slot.ID,
		PartIndex: p.PartIndex,
		SlotIndex: p.SlotIndex,
		Problem:   slot.Problem,
		Answer:    slot.Problem.Answer,
		Correct:   correct,
		Epoch:     p.Epoch(),
		At:        time.Now(),
	}
}

func TestRecorderPreservesSubmissionOrder(t *testing.T) {
	events := &fakeEventRepo{}
	plans := &fakePlanRepo{}
	rec := NewRecorder(events, plans, testPlan(3))
	defer rec.Close()

	// Two optimistic writes followed by an awaited one. The awaited call
	// must not jump the queue.
	rec.EnqueueResult(resultFor(rec.Plan(), true))
	p := rec.Plan()
	// The queue may not have applied yet; build the second result against
	// the static next slot instead.
	second := plan.SlotResult{
		SlotID: "p0-s1", PartIndex: 0, SlotIndex: 1,
		Problem: p.Parts[0].Slots[1].Problem,
		Answer:  p.Parts[0].Slots[1].Problem.Answer,
		Correct: true,
	}
	rec.EnqueueResult(second)
	third := plan.SlotResult{
		SlotID: "p0-s2", PartIndex: 0, SlotIndex: 2,
		Problem: p.Parts[0].Slots[2].Problem,
		Answer:  p.Parts[0].Slots[2].Problem.Answer,
		Correct: true,
	}
	if err := rec.RecordResult(context.Background(), third); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	got := events.recorded()
	if len(got) != 3 {
		t.Fatalf("recorded %d events, want 3", len(got))
	}
	for i, want := range []string{"p0-s0", "p0-s1", "p0-s2"} {
		if got[i].SlotID != want {
			t.Errorf("event %d = %s, want %s", i, got[i].SlotID, want)
		}
	}
}

func TestRecorderAdvancesCursor(t *testing.T) {
	rec := NewRecorder(&fakeEventRepo{}, &fakePlanRepo{}, testPlan(2))
	defer rec.Close()

	if err := rec.RecordResult(context.Background(), resultFor(rec.Plan(), true)); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	p := rec.Plan()
	if p.SlotIndex != 1 {
		t.Errorf("slot index = %d, want 1", p.SlotIndex)
	}
	if rec.ActiveKey() != "0:1:0" {
		t.Errorf("active key = %s, want 0:1:0", rec.ActiveKey())
	}
}

func TestRecorderSnapshotsAtCompletion(t *testing.T) {
	plans := &fakePlanRepo{}
	rec := NewRecorder(&fakeEventRepo{}, plans, testPlan(1))
	defer rec.Close()

	if err := rec.RecordResult(context.Background(), resultFor(rec.Plan(), true)); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if plans.saveCount() != 1 {
		t.Errorf("snapshots saved = %d, want 1 at completion", plans.saveCount())
	}
	if !rec.Plan().Completed {
		t.Error("plan not completed")
	}
}

func TestRecordRedoDoesNotMoveCursor(t *testing.T) {
	events := &fakeEventRepo{}
	rec := NewRecorder(events, &fakePlanRepo{}, testPlan(2))
	defer rec.Close()

	// Answer slot 0 wrong, cursor moves to slot 1.
	if err := rec.RecordResult(context.Background(), resultFor(rec.Plan(), false)); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}

	redoRes := plan.SlotResult{
		SlotID: "p0-s0", PartIndex: 0, SlotIndex: 0,
		Correct: true, IsRetry: true, Epoch: 1,
	}
	updated, err := rec.RecordRedo(context.Background(), controller.RedoRecord{
		PlayerID: "player-1",
		PlanID:   "plan-1",
		Result:   redoRes,
	})
	if err != nil {
		t.Fatalf("RecordRedo: %v", err)
	}

	if updated.SlotIndex != 1 {
		t.Errorf("cursor moved to %d on redo, want 1", updated.SlotIndex)
	}
	if len(updated.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(updated.Results))
	}
	if !updated.Results[1].IsRetry {
		t.Error("redo result not marked retry")
	}
	if got := updated.ResultFor(0, 0); got == nil || got.Correct || got.IsRetry {
		t.Error("canonical record for the slot should stay the original answer")
	}
}

func TestRecorderSurfacesEnqueueFailure(t *testing.T) {
	events := &fakeEventRepo{err: fmt.Errorf("disk full")}
	rec := NewRecorder(events, &fakePlanRepo{}, testPlan(2))

	rec.EnqueueResult(resultFor(rec.Plan(), true))
	rec.Close() // drains the queue

	if rec.LastErr() == nil {
		t.Error("persistence failure not surfaced")
	}
	if rec.LastErr() != nil {
		t.Error("LastErr not cleared on read")
	}
}

func TestLogSessionEndIncludesHealth(t *testing.T) {
	events := &fakeEventRepo{}
	plans := &fakePlanRepo{}
	rec := NewRecorder(events, plans, testPlan(2))
	defer rec.Close()

	if err := rec.RecordResult(context.Background(), resultFor(rec.Plan(), true)); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if err := rec.LogSession(context.Background(), ActionEndEarly, "quit", "", 90); err != nil {
		t.Fatalf("LogSession: %v", err)
	}

	events.mu.Lock()
	defer events.mu.Unlock()
	if len(events.sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(events.sessions))
	}
	s := events.sessions[0]
	if s.Answered != 1 || s.Correct != 1 {
		t.Errorf("tallies = (%d, %d), want (1, 1)", s.Answered, s.Correct)
	}
	if len(s.PartHealth) != 1 || s.PartHealth[0].Answered != 1 {
		t.Errorf("part health = %+v", s.PartHealth)
	}
	if plans.saveCount() != 1 {
		t.Errorf("end event should snapshot the plan")
	}
}

func TestPlanChangedCallback(t *testing.T) {
	rec := NewRecorder(&fakeEventRepo{}, &fakePlanRepo{}, testPlan(2))
	var mu sync.Mutex
	fired := 0
	rec.OnPlanChanged = func() {
		mu.Lock()
		fired++
		mu.Unlock()
	}

	rec.EnqueueResult(resultFor(rec.Plan(), true))
	rec.Close()

	mu.Lock()
	defer mu.Unlock()
	if fired != 1 {
		t.Errorf("OnPlanChanged fired %d times, want 1", fired)
	}
}
