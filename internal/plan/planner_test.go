package plan

import (
	"context"
	"testing"

	"github.com/abhisek/sumleap/internal/problemgen"
)

func TestBuildPlan_Default(t *testing.T) {
	cfg := DefaultPlanConfig("player-1")
	p, err := BuildPlan(context.Background(), problemgen.New(1), cfg)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}

	if len(p.Parts) != 3 {
		t.Fatalf("parts = %d, want 3", len(p.Parts))
	}
	if p.PlayerID != "player-1" {
		t.Errorf("player = %q", p.PlayerID)
	}
	if p.MaxRetryEpochs != 2 {
		t.Errorf("max retry epochs = %d, want 2", p.MaxRetryEpochs)
	}

	for pi, part := range p.Parts {
		if len(part.Slots) != 5 {
			t.Errorf("part %d slots = %d, want 5", pi, len(part.Slots))
		}
		for si, slot := range part.Slots {
			if slot.ID == "" {
				t.Errorf("part %d slot %d has empty ID", pi, si)
			}
			if len(slot.Problem.Terms) < 2 {
				t.Errorf("part %d slot %d has %d terms", pi, si, len(slot.Problem.Terms))
			}
		}
		// Last slot of every part is the challenge.
		if got := part.Slots[4].Purpose; got != PurposeChallenge {
			t.Errorf("part %d last slot purpose = %s, want challenge", pi, got)
		}
	}
}

func TestBuildPlan_NoParts(t *testing.T) {
	_, err := BuildPlan(context.Background(), problemgen.New(1), PlanConfig{})
	if err == nil {
		t.Error("expected error for empty config")
	}
}
