package plan

import "fmt"

// Purpose tags why a slot is in the plan.
type Purpose string

const (
	PurposeFocus     Purpose = "focus"
	PurposeReinforce Purpose = "reinforce"
	PurposeReview    Purpose = "review"
	PurposeChallenge Purpose = "challenge"
)

// PartType identifies how a part is worked.
type PartType string

const (
	PartAbacus    PartType = "abacus"
	PartVisualize PartType = "visualize"
	PartLinear    PartType = "linear"
)

// Format is the on-screen arrangement of a part's problems.
type Format string

const (
	FormatVertical Format = "vertical"
	FormatLinear   Format = "linear"
)

// Slot is a problem placed at a fixed position inside a Part. Immutable.
type Slot struct {
	ID            string
	Problem       Problem
	Purpose       Purpose
	MaxComplexity int
}

// Part is an ordered sequence of slots with a display format. Immutable
// once the plan is created.
type Part struct {
	Type   PartType
	Format Format
	Slots  []Slot
}

// RetryState tracks repeat passes over missed slots within the current part.
// Epoch 0 is the original pass.
type RetryState struct {
	Epoch    int
	Missed   []int // slot indices missed during the current epoch
	Queue    []int // slot indices being retried this epoch
	QueuePos int
}

// SessionPlan is the authoritative progression record for one session.
// The interaction controller only reads it; mutations go through Apply,
// which is called by the plan's owner (the store-backed recorder).
type SessionPlan struct {
	ID             string
	PlayerID       string
	Parts          []Part
	PartIndex      int
	SlotIndex      int
	Results        []SlotResult
	Retry          *RetryState
	MaxRetryEpochs int
	Completed      bool
}

// Epoch returns the current retry epoch for the active part.
func (p *SessionPlan) Epoch() int {
	if p.Retry == nil {
		return 0
	}
	return p.Retry.Epoch
}

// CurrentPart returns the active part, or nil if the plan is complete.
func (p *SessionPlan) CurrentPart() *Part {
	if p.Completed || p.PartIndex < 0 || p.PartIndex >= len(p.Parts) {
		return nil
	}
	return &p.Parts[p.PartIndex]
}

// CurrentSlot returns the active slot, or nil if the plan is complete.
func (p *SessionPlan) CurrentSlot() *Slot {
	part := p.CurrentPart()
	if part == nil || p.SlotIndex < 0 || p.SlotIndex >= len(part.Slots) {
		return nil
	}
	return &part.Slots[p.SlotIndex]
}

// NextSlotInPart returns the statically-known next slot after slotIndex in
// the same part, or nil at the part boundary. Only meaningful at epoch 0;
// retry-epoch ordering is not derivable from static plan data.
func (p *SessionPlan) NextSlotInPart(partIndex, slotIndex int) *Slot {
	if partIndex < 0 || partIndex >= len(p.Parts) {
		return nil
	}
	part := &p.Parts[partIndex]
	next := slotIndex + 1
	if next >= len(part.Slots) {
		return nil
	}
	return &part.Slots[next]
}

// ActiveKey identifies the active (part, slot, epoch) position. Advance
// resolution polls for this key changing.
func (p *SessionPlan) ActiveKey() string {
	if p.Completed {
		return "done"
	}
	return fmt.Sprintf("%d:%d:%d", p.PartIndex, p.SlotIndex, p.Epoch())
}

// Apply records a canonical (non-redo) result and advances the cursor,
// starting or extending retry epochs as needed. Results are append-only.
func (p *SessionPlan) Apply(res SlotResult) {
	p.Results = append(p.Results, res)
	if p.Completed {
		return
	}

	if !res.Correct {
		if p.Retry == nil {
			p.Retry = &RetryState{}
		}
		p.Retry.Missed = append(p.Retry.Missed, p.SlotIndex)
	}

	if p.Epoch() == 0 {
		part := p.CurrentPart()
		if part != nil && p.SlotIndex+1 < len(part.Slots) {
			p.SlotIndex++
			return
		}
		p.finishEpoch()
		return
	}

	if p.Retry.QueuePos+1 < len(p.Retry.Queue) {
		p.Retry.QueuePos++
		p.SlotIndex = p.Retry.Queue[p.Retry.QueuePos]
		return
	}
	p.finishEpoch()
}

// finishEpoch decides what follows the last slot of an epoch: another retry
// epoch over the missed slots, the next part, or session completion.
func (p *SessionPlan) finishEpoch() {
	if p.Retry != nil && len(p.Retry.Missed) > 0 && p.Retry.Epoch < p.MaxRetryEpochs {
		p.Retry.Epoch++
		p.Retry.Queue = p.Retry.Missed
		p.Retry.Missed = nil
		p.Retry.QueuePos = 0
		p.SlotIndex = p.Retry.Queue[0]
		return
	}

	p.Retry = nil
	p.PartIndex++
	p.SlotIndex = 0
	if p.PartIndex >= len(p.Parts) {
		p.Completed = true
	}
}

// ResultFor returns the most recent canonical result for a slot position,
// or nil if the slot has not been answered. Retry records are skipped so a
// redo always keys off the original answer rather than a prior redo.
func (p *SessionPlan) ResultFor(partIndex, slotIndex int) *SlotResult {
	for i := len(p.Results) - 1; i >= 0; i-- {
		r := &p.Results[i]
		if r.IsRetry {
			continue
		}
		if r.PartIndex == partIndex && r.SlotIndex == slotIndex {
			return r
		}
	}
	return nil
}
