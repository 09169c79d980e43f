package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAssist(ctx context.Context, data AssistEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssistEvent.Create().
		SetSequence(seqNum).
		SetPlanID(data.PlanID).
		SetSlotID(data.SlotID).
		SetFromState(data.FromState).
		SetToState(data.ToState).
		SetTrigger(data.Trigger).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assist event: %w", err)
	}
	return nil
}
