package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/sumleap/internal/problemgen"
)

// PartConfig describes one part of the session to build.
type PartConfig struct {
	Type      PartType
	Format    Format
	SlotCount int
	Spec      problemgen.Spec
}

// PlanConfig describes the whole session.
type PlanConfig struct {
	PlayerID       string
	Parts          []PartConfig
	MaxRetryEpochs int
}

// DefaultPlanConfig is the standard three-part session: an abacus warmup,
// a visualize block, and a linear block.
func DefaultPlanConfig(playerID string) PlanConfig {
	return PlanConfig{
		PlayerID:       playerID,
		MaxRetryEpochs: 2,
		Parts: []PartConfig{
			{
				Type: PartAbacus, Format: FormatVertical, SlotCount: 5,
				Spec: problemgen.Spec{TermCount: 3, MaxAbs: 9},
			},
			{
				Type: PartVisualize, Format: FormatVertical, SlotCount: 5,
				Spec: problemgen.Spec{TermCount: 4, MaxAbs: 9, AllowNegative: true, Budget: 14},
			},
			{
				Type: PartLinear, Format: FormatLinear, SlotCount: 5,
				Spec: problemgen.Spec{TermCount: 5, MaxAbs: 19, AllowNegative: true, Budget: 20},
			},
		},
	}
}

// BuildPlan generates problems for every slot and assembles the session plan.
func BuildPlan(ctx context.Context, gen problemgen.Generator, cfg PlanConfig) (*SessionPlan, error) {
	if len(cfg.Parts) == 0 {
		return nil, fmt.Errorf("build plan: no parts configured")
	}

	p := &SessionPlan{
		ID:             uuid.New().String(),
		PlayerID:       cfg.PlayerID,
		MaxRetryEpochs: cfg.MaxRetryEpochs,
	}

	for pi, pc := range cfg.Parts {
		part := Part{Type: pc.Type, Format: pc.Format}
		for si := 0; si < pc.SlotCount; si++ {
			seq, err := gen.Generate(ctx, pc.Spec)
			if err != nil {
				return nil, fmt.Errorf("generate part %d slot %d: %w", pi, si, err)
			}
			part.Slots = append(part.Slots, Slot{
				ID:            fmt.Sprintf("%s-p%d-s%d", p.ID[:8], pi, si),
				Problem:       FromSequence(seq),
				Purpose:       purposeFor(pi, si, pc.SlotCount),
				MaxComplexity: pc.Spec.Budget,
			})
		}
		p.Parts = append(p.Parts, part)
	}

	return p, nil
}

// purposeFor assigns slot purposes: each part opens with focus work, keeps
// a review slot in the middle, and closes with a challenge.
func purposeFor(partIndex, slotIndex, slotCount int) Purpose {
	switch {
	case slotIndex == slotCount-1:
		return PurposeChallenge
	case slotIndex == slotCount/2 && partIndex > 0:
		return PurposeReview
	case slotIndex == 0:
		return PurposeFocus
	default:
		return PurposeReinforce
	}
}
