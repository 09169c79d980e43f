package plan

import (
	"testing"
	"time"
)

func twoPartPlan() *SessionPlan {
	return &SessionPlan{
		ID:             "test-plan",
		MaxRetryEpochs: 2,
		Parts: []Part{
			{
				Type: PartAbacus, Format: FormatVertical,
				Slots: []Slot{
					{ID: "a0", Problem: NewProblem([]int{1, 2})},
					{ID: "a1", Problem: NewProblem([]int{3, 4})},
					{ID: "a2", Problem: NewProblem([]int{5, 6})},
				},
			},
			{
				Type: PartLinear, Format: FormatLinear,
				Slots: []Slot{
					{ID: "b0", Problem: NewProblem([]int{7, 8})},
					{ID: "b1", Problem: NewProblem([]int{9, 1})},
				},
			},
		},
	}
}

func resultAt(p *SessionPlan, correct bool) SlotResult {
	slot := p.CurrentSlot()
	return SlotResult{
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

func TestApply_StraightProgression(t *testing.T) {
	p := twoPartPlan()

	for i := 0; i < 3; i++ {
		if p.PartIndex != 0 || p.SlotIndex != i {
			t.Fatalf("cursor = %d:%d, want 0:%d", p.PartIndex, p.SlotIndex, i)
		}
		p.Apply(resultAt(p, true))
	}

	if p.PartIndex != 1 || p.SlotIndex != 0 {
		t.Fatalf("cursor = %d:%d, want 1:0 after first part", p.PartIndex, p.SlotIndex)
	}

	p.Apply(resultAt(p, true))
	p.Apply(resultAt(p, true))

	if !p.Completed {
		t.Error("expected plan completed")
	}
	if len(p.Results) != 5 {
		t.Errorf("results = %d, want 5", len(p.Results))
	}
}

func TestApply_RetryEpochOverMissedSlots(t *testing.T) {
	p := twoPartPlan()

	p.Apply(resultAt(p, false)) // miss a0
	p.Apply(resultAt(p, true))  // a1
	p.Apply(resultAt(p, false)) // miss a2

	if p.Epoch() != 1 {
		t.Fatalf("epoch = %d, want 1 after missed slots", p.Epoch())
	}
	if p.PartIndex != 0 || p.SlotIndex != 0 {
		t.Fatalf("cursor = %d:%d, want retry at 0:0", p.PartIndex, p.SlotIndex)
	}

	p.Apply(resultAt(p, true)) // retry a0 correct
	if p.SlotIndex != 2 {
		t.Fatalf("slot = %d, want 2 (second missed slot)", p.SlotIndex)
	}
	p.Apply(resultAt(p, true)) // retry a2 correct

	if p.Epoch() != 0 {
		t.Errorf("epoch = %d, want 0 in next part", p.Epoch())
	}
	if p.PartIndex != 1 {
		t.Errorf("part = %d, want 1", p.PartIndex)
	}
}

func TestApply_RetryEpochsBounded(t *testing.T) {
	p := twoPartPlan()
	p.MaxRetryEpochs = 1

	// Miss everything in part 0, then miss the whole retry epoch too.
	for i := 0; i < 3; i++ {
		p.Apply(resultAt(p, false))
	}
	if p.Epoch() != 1 {
		t.Fatalf("epoch = %d, want 1", p.Epoch())
	}
	for i := 0; i < 3; i++ {
		p.Apply(resultAt(p, false))
	}

	// Epoch cap reached: move on despite remaining misses.
	if p.PartIndex != 1 {
		t.Errorf("part = %d, want 1 after epoch cap", p.PartIndex)
	}
	if p.Epoch() != 0 {
		t.Errorf("epoch = %d, want 0", p.Epoch())
	}
}

func TestNextSlotInPart(t *testing.T) {
	p := twoPartPlan()

	next := p.NextSlotInPart(0, 0)
	if next == nil || next.ID != "a1" {
		t.Fatalf("next = %v, want a1", next)
	}
	if p.NextSlotInPart(0, 2) != nil {
		t.Error("expected nil at part boundary")
	}
	if p.NextSlotInPart(5, 0) != nil {
		t.Error("expected nil for out-of-range part")
	}
}

func TestActiveKey_ChangesAcrossAdvance(t *testing.T) {
	p := twoPartPlan()
	k1 := p.ActiveKey()
	p.Apply(resultAt(p, true))
	k2 := p.ActiveKey()
	if k1 == k2 {
		t.Errorf("active key unchanged after advance: %s", k1)
	}
}

func TestResultFor(t *testing.T) {
	p := twoPartPlan()
	p.Apply(resultAt(p, false))

	r := p.ResultFor(0, 0)
	if r == nil || r.Correct {
		t.Fatalf("expected incorrect result for 0:0, got %+v", r)
	}
	if p.ResultFor(0, 1) != nil {
		t.Error("expected nil for unanswered slot")
	}
}

func TestResultFor_SkipsRetryRecords(t *testing.T) {
	p := twoPartPlan()
	p.Apply(resultAt(p, false))
	p.Results = append(p.Results, SlotResult{
		SlotID: p.Results[0].SlotID, PartIndex: 0, SlotIndex: 0,
		Correct: true, IsRetry: true, Epoch: 1,
	})

	r := p.ResultFor(0, 0)
	if r == nil {
		t.Fatal("expected a result for 0:0")
	}
	if r.IsRetry {
		t.Error("retry record returned, want the canonical result")
	}
	if r.Correct {
		t.Error("canonical result should still be the original incorrect answer")
	}
}

func TestHealth_ExcludesRetries(t *testing.T) {
	p := twoPartPlan()
	p.Results = []SlotResult{
		{Correct: true, ResponseMs: 1000},
		{Correct: false, ResponseMs: 3000, UsedHelp: true},
		{Correct: true, ResponseMs: 9999, IsRetry: true, Epoch: 1},
	}

	h := p.Health()
	if h.Attempted != 2 {
		t.Errorf("attempted = %d, want 2", h.Attempted)
	}
	if h.Accuracy != 0.5 {
		t.Errorf("accuracy = %f, want 0.5", h.Accuracy)
	}
	if h.AvgResponseMs != 2000 {
		t.Errorf("avg response = %d, want 2000", h.AvgResponseMs)
	}
	if h.HelpRate != 0.5 {
		t.Errorf("help rate = %f, want 0.5", h.HelpRate)
	}
}

func TestProblem_PrefixSums(t *testing.T) {
	p := NewProblem([]int{3, 5, -2, 4})
	sums := p.PrefixSums()
	want := []int{3, 8, 6, 10}
	for i := range want {
		if sums[i] != want[i] {
			t.Fatalf("prefix sums = %v, want %v", sums, want)
		}
	}
	if p.Answer != 10 {
		t.Errorf("answer = %d, want 10", p.Answer)
	}
}

func TestProblem_String(t *testing.T) {
	p := NewProblem([]int{3, 5, -2})
	if got := p.String(); got != "3 + 5 - 2" {
		t.Errorf("String() = %q", got)
	}
}
