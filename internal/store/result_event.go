package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/sumleap/ent"
	"github.com/abhisek/sumleap/ent/resultevent"
	"github.com/abhisek/sumleap/internal/plan"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendResult(ctx context.Context, planID, playerID string, res plan.SlotResult) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetPlanID(planID).
		SetPlayerID(playerID).
		SetSlotID(res.SlotID).
		SetPartIndex(res.PartIndex).
		SetSlotIndex(res.SlotIndex).
		SetEpoch(res.Epoch).
		SetProblemText(res.Problem.String()).
		SetExpectedAnswer(res.Problem.Answer).
		SetGivenAnswer(res.Answer).
		SetCorrect(res.Correct).
		SetResponseMs(res.ResponseMs).
		SetWrongAttempts(res.WrongAttempts).
		SetUsedHelp(res.UsedHelp).
		SetIsRetry(res.IsRetry).
		SetOriginalSlot(res.OriginalSlot).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) PlanResults(ctx context.Context, planID string) ([]plan.SlotResult, error) {
	events, err := r.client.ResultEvent.Query().
		Where(resultevent.PlanID(planID)).
		Order(ent.Asc(resultevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan results: %w", err)
	}

	results := make([]plan.SlotResult, 0, len(events))
	for _, e := range events {
		results = append(results, plan.SlotResult{
			SlotID:        e.SlotID,
			PartIndex:     e.PartIndex,
			SlotIndex:     e.SlotIndex,
			Problem:       parseProblem(e.ProblemText),
			Answer:        e.GivenAnswer,
			Correct:       e.Correct,
			ResponseMs:    e.ResponseMs,
			WrongAttempts: e.WrongAttempts,
			UsedHelp:      e.UsedHelp,
			IsRetry:       e.IsRetry,
			Epoch:         e.Epoch,
			OriginalSlot:  e.OriginalSlot,
			At:            e.Timestamp,
		})
	}
	return results, nil
}

// parseProblem rebuilds a Problem from its stored linear rendering. The
// inverse of Problem.String.
func parseProblem(text string) plan.Problem {
	fields := strings.Fields(text)
	var terms []int
	sign := 1
	for _, f := range fields {
		switch f {
		case "+":
			sign = 1
		case "-":
			sign = -1
		default:
			var n int
			if _, err := fmt.Sscanf(f, "%d", &n); err != nil {
				continue
			}
			terms = append(terms, sign*n)
			sign = 1
		}
	}
	return plan.NewProblem(terms)
}
