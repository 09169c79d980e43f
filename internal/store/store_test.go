package store

import (
	"context"
	"testing"

	"github.com/abhisek/sumleap/internal/plan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPlanSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	// Nothing to resume yet.
	got, err := repo.Latest(ctx, "player-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil plan when none exist")
	}

	p := testPlan(2, 3)
	p.Apply(plan.SlotResult{SlotID: "p0-s0", Correct: true})
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Latest(ctx, "player-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a resumable plan")
	}
	if got.ID != p.ID || got.SlotIndex != 1 || len(got.Results) != 1 {
		t.Errorf("restored plan = %+v", got)
	}

	// Completed plans are not resumable.
	p.Completed = true
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save completed: %v", err)
	}
	got, err = repo.Latest(ctx, "player-1")
	if err != nil {
		t.Fatalf("latest after completion: %v", err)
	}
	if got != nil {
		t.Error("completed plan offered for resume")
	}
}

func TestPlanSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	p := testPlan(2)
	for i := 0; i < 5; i++ {
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	n, err := s.Client().PlanSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}
}

func TestResultEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	res := plan.SlotResult{
		SlotID:    "p0-s0",
		PartIndex: 0,
		SlotIndex: 0,
		Problem:   plan.NewProblem([]int{3, 5, -2}),
		Answer:    6,
		Correct:   true,
		Epoch:     0,
	}
	if err := repo.AppendResult(ctx, "plan-1", "player-1", res); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.PlanResults(ctx, "plan-1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("results = %d, want 1", len(got))
	}
	if got[0].Problem.Answer != 6 || len(got[0].Problem.Terms) != 3 {
		t.Errorf("restored problem = %+v", got[0].Problem)
	}
}

func TestParseProblem(t *testing.T) {
	tests := []struct {
		text  string
		terms []int
	}{
		{"3 + 5 - 2", []int{3, 5, -2}},
		{"7", []int{7}},
		{"10 - 4", []int{10, -4}},
	}
	for _, tt := range tests {
		p := parseProblem(tt.text)
		if len(p.Terms) != len(tt.terms) {
			t.Errorf("parseProblem(%q) terms = %v", tt.text, p.Terms)
			continue
		}
		for i, want := range tt.terms {
			if p.Terms[i] != want {
				t.Errorf("parseProblem(%q)[%d] = %d, want %d", tt.text, i, p.Terms[i], want)
			}
		}
		if p.String() != tt.text {
			t.Errorf("round trip %q -> %q", tt.text, p.String())
		}
	}
}
