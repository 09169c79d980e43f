package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/sumleap/ent"
	"github.com/abhisek/sumleap/ent/plansnapshot"
	"github.com/abhisek/sumleap/internal/plan"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *planRepo) Save(ctx context.Context, p *plan.SessionPlan) error {
	seqNum, err := r.seq.Current(ctx)
	if err != nil {
		return err
	}

	dataMap, err := planToMap(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	_, err = r.client.PlanSnapshot.Create().
		SetPlanID(p.ID).
		SetSequence(seqNum).
		SetTimestamp(time.Now().UTC()).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan snapshot: %w", err)
	}
	return nil
}

func (r *planRepo) Latest(ctx context.Context, playerID string) (*plan.SessionPlan, error) {
	snaps, err := r.client.PlanSnapshot.Query().
		Order(ent.Desc(plansnapshot.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan snapshots: %w", err)
	}

	seen := make(map[string]bool)
	for _, s := range snaps {
		// Only the newest snapshot per plan counts.
		if seen[s.PlanID] {
			continue
		}
		seen[s.PlanID] = true

		p, err := mapToPlan(s.Data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal plan snapshot: %w", err)
		}
		if p.PlayerID == playerID && !p.Completed {
			return p, nil
		}
	}
	return nil, nil
}

func (r *planRepo) Prune(ctx context.Context, keep int) error {
	snaps, err := r.client.PlanSnapshot.Query().
		Order(ent.Desc(plansnapshot.FieldSequence)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	counts := make(map[string]int)
	var stale []int
	for _, s := range snaps {
		counts[s.PlanID]++
		if counts[s.PlanID] > keep {
			stale = append(stale, s.ID)
		}
	}
	if len(stale) == 0 {
		return nil
	}

	_, err = r.client.PlanSnapshot.Delete().
		Where(plansnapshot.IDIn(stale...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func planToMap(p *plan.SessionPlan) (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func mapToPlan(m map[string]any) (*plan.SessionPlan, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var p plan.SessionPlan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
