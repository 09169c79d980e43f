package problemgen

import (
	"context"
	"testing"
)

func TestGenerate_PrefixSumsNonNegative(t *testing.T) {
	g := New(42)
	spec := Spec{TermCount: 6, MaxAbs: 9, AllowNegative: true}

	for i := 0; i < 50; i++ {
		seq, err := g.Generate(context.Background(), spec)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(seq.Terms) != 6 {
			t.Fatalf("terms = %d, want 6", len(seq.Terms))
		}
		running := 0
		for j, term := range seq.Terms {
			running += term
			if running < 0 {
				t.Fatalf("prefix sum %d negative at term %d: %v", running, j, seq.Terms)
			}
		}
	}
}

func TestGenerate_FirstTermPositive(t *testing.T) {
	g := New(7)
	for i := 0; i < 50; i++ {
		seq, err := g.Generate(context.Background(), Spec{TermCount: 3, MaxAbs: 9, AllowNegative: true})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if seq.Terms[0] <= 0 {
			t.Fatalf("first term = %d, want positive", seq.Terms[0])
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := New(99).Generate(context.Background(), Spec{TermCount: 5, MaxAbs: 9})
	b, _ := New(99).Generate(context.Background(), Spec{TermCount: 5, MaxAbs: 9})
	for i := range a.Terms {
		if a.Terms[i] != b.Terms[i] {
			t.Fatalf("sequences diverge at %d: %v vs %v", i, a.Terms, b.Terms)
		}
	}
}

func TestGenerate_InvalidSpec(t *testing.T) {
	g := New(1)
	if _, err := g.Generate(context.Background(), Spec{TermCount: 1, MaxAbs: 9}); err == nil {
		t.Error("expected error for single-term spec")
	}
	if _, err := g.Generate(context.Background(), Spec{TermCount: 3, MaxAbs: 0}); err == nil {
		t.Error("expected error for zero maxAbs")
	}
}

func TestGenerate_TraceRecorded(t *testing.T) {
	g := New(3)
	seq, err := g.Generate(context.Background(), Spec{TermCount: 4, MaxAbs: 9})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if seq.Trace == nil {
		t.Fatal("expected a generation trace")
	}
	if seq.Trace.Steps < 4 {
		t.Errorf("trace steps = %d, want >= 4", seq.Trace.Steps)
	}
	if seq.Trace.Cost < 4 {
		t.Errorf("trace cost = %d, want >= 4", seq.Trace.Cost)
	}
}
