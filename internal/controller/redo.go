package controller

import "github.com/abhisek/sumleap/internal/plan"

// RedoState tracks an in-progress redo of an earlier slot. While active,
// the canonical cursor is untouched; only the on-screen attempt points at
// the past.
type RedoState struct {
	Active bool

	// LinearIndex is the flattened position of the redone slot across all
	// parts, used by history views and the redo record.
	LinearIndex int

	OriginalPartIndex int
	OriginalSlotIndex int

	// Original is the canonical result being redone. Nil means the slot
	// was never answered, which StartRedo rejects.
	Original *plan.SlotResult

	// Return is where to land after the redo: the canonical cursor
	// position captured at redo start. Nil when the plan was already
	// complete, in which case the redo ends with a state handoff.
	Return *TransitionTarget
}

// Redo exposes the current redo state, nil outside a redo.
func (c *Controller) Redo() *RedoState {
	if c.redo == nil || !c.redo.Active {
		return nil
	}
	return c.redo
}

// StartRedo rebinds the live attempt to an already-answered slot. Only
// answered slots can be redone; the canonical cursor is left alone so
// normal progress resumes exactly where it was. Legal from the phases
// where the learner is between problems or idle on one.
func (c *Controller) StartRedo(p *plan.SessionPlan, partIndex, slotIndex int) bool {
	switch c.phase {
	case PhaseInputting, PhaseLoading, PhaseShowingFeedback:
	default:
		return false
	}
	if partIndex < 0 || partIndex >= len(p.Parts) {
		return false
	}
	part := p.Parts[partIndex]
	if slotIndex < 0 || slotIndex >= len(part.Slots) {
		return false
	}
	slot := part.Slots[slotIndex]
	orig := p.ResultFor(partIndex, slotIndex)
	if orig == nil {
		return false
	}

	linear := slotIndex
	for i := 0; i < partIndex; i++ {
		linear += len(p.Parts[i].Slots)
	}

	c.redo = &RedoState{
		Active:            true,
		LinearIndex:       linear,
		OriginalPartIndex: partIndex,
		OriginalSlotIndex: slotIndex,
		Original:          orig,
		Return:            currentTarget(p),
	}

	c.bind(TransitionTarget{
		Problem:   slot.Problem,
		SlotID:    slot.ID,
		PartIndex: partIndex,
		SlotIndex: slotIndex,
		Epoch:     orig.Epoch + 1,
	}, true) // redos always submit manually
	c.phase = PhaseInputting
	return true
}

// CancelRedo abandons the redo and its pending input. The caller rebinds
// to the return target (or clears to loading when there is none).
func (c *Controller) CancelRedo() (*TransitionTarget, bool) {
	if c.redo == nil || !c.redo.Active {
		return nil, false
	}
	ret := c.redo.Return
	c.redo = nil
	c.ClearToLoading()
	return ret, true
}

// FinishRedo tears down redo state after advance resolution delivered its
// outcome. Called from the host loop when the redo resolution arrives.
func (c *Controller) FinishRedo() {
	c.redo = nil
}

// currentTarget derives the canonical cursor as a TransitionTarget, nil
// when the plan is complete.
func currentTarget(p *plan.SessionPlan) *TransitionTarget {
	slot := p.CurrentSlot()
	if slot == nil {
		return nil
	}
	return &TransitionTarget{
		Problem:   slot.Problem,
		SlotID:    slot.ID,
		PartIndex: p.PartIndex,
		SlotIndex: p.SlotIndex,
		Epoch:     p.Epoch(),
	}
}
