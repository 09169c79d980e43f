package store

import (
	"context"
	"fmt"

	"github.com/abhisek/sumleap/ent"
	"github.com/abhisek/sumleap/ent/sessionevent"
	entschema "github.com/abhisek/sumleap/ent/schema"
	"github.com/abhisek/sumleap/internal/plan"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var health []entschema.PartHealth
	for _, h := range data.PartHealth {
		health = append(health, entschema.PartHealth{
			Part:     h.Part,
			Answered: h.Answered,
			Correct:  h.Correct,
		})
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetPlanID(data.PlanID).
		SetPlayerID(data.PlayerID).
		SetAction(string(data.Action)).
		SetReason(data.Reason).
		SetMessage(data.Message).
		SetAnswered(data.Answered).
		SetCorrect(data.Correct).
		SetDurationSecs(data.DurationSecs)

	if len(health) > 0 {
		builder = builder.SetPartHealth(health)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionEventData, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.ActionIn(string(ActionEndEarly), string(ActionComplete))).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionEventData, 0, len(events))
	for _, e := range events {
		var health []plan.PartHealth
		for _, h := range e.PartHealth {
			health = append(health, plan.PartHealth{
				Part:     h.Part,
				Answered: h.Answered,
				Correct:  h.Correct,
			})
		}
		out = append(out, SessionEventData{
			PlanID:       e.PlanID,
			PlayerID:     e.PlayerID,
			Action:       SessionAction(e.Action),
			Reason:       e.Reason,
			Message:      e.Message,
			Answered:     e.Answered,
			Correct:      e.Correct,
			DurationSecs: e.DurationSecs,
			PartHealth:   health,
			Timestamp:    e.Timestamp,
		})
	}
	return out, nil
}
