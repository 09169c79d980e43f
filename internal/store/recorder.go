package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/abhisek/sumleap/internal/controller"
	"github.com/abhisek/sumleap/internal/plan"
)

const writeQueueDepth = 64

// Recorder owns the authoritative session plan. All mutations funnel
// through a single write queue, so results apply in submission order even
// when the optimistic path fires them without waiting. It implements
// controller.AnswerRecorder.
type Recorder struct {
	events EventRepo
	plans  PlanRepo

	mu      sync.Mutex
	plan    *plan.SessionPlan
	lastErr error

	queue chan func()
	done  chan struct{}

	// OnPlanChanged fires on the queue goroutine after every applied
	// mutation. Hosts must hand off to their own loop before touching UI
	// state.
	OnPlanChanged func()
}

// NewRecorder takes ownership of p and starts the write queue.
func NewRecorder(events EventRepo, plans PlanRepo, p *plan.SessionPlan) *Recorder {
	r := &Recorder{
		events: events,
		plans:  plans,
		plan:   p,
		queue:  make(chan func(), writeQueueDepth),
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Recorder) run() {
	defer close(r.done)
	for job := range r.queue {
		job()
	}
}

// Close drains pending writes and stops the queue.
func (r *Recorder) Close() {
	close(r.queue)
	<-r.done
}

// Plan returns a deep copy of the authoritative plan, safe to read from
// any goroutine.
func (r *Recorder) Plan() *plan.SessionPlan {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clonePlan(r.plan)
}

// ActiveKey returns the authoritative plan's current position key.
func (r *Recorder) ActiveKey() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plan.ActiveKey()
}

// LastErr returns the most recent persistence failure, if any. Cleared on
// read. Persistence failures never block progression; the host surfaces
// them as a warning.
func (r *Recorder) LastErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.lastErr
	r.lastErr = nil
	return err
}

// RecordResult applies a canonical result and settles once it is applied
// and persisted, keeping queue order with earlier enqueued results.
func (r *Recorder) RecordResult(ctx context.Context, res plan.SlotResult) error {
	errc := make(chan error, 1)
	select {
	case r.queue <- func() { errc <- r.apply(res) }:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// EnqueueResult hands a canonical result to the write queue and returns
// immediately. The optimistic advance path.
func (r *Recorder) EnqueueResult(res plan.SlotResult) {
	r.queue <- func() {
		if err := r.apply(res); err != nil {
			r.mu.Lock()
			r.lastErr = err
			r.mu.Unlock()
		}
	}
}

// RecordRedo appends a redo result without moving the cursor and returns
// the updated plan.
func (r *Recorder) RecordRedo(ctx context.Context, rec controller.RedoRecord) (*plan.SessionPlan, error) {
	type out struct {
		p   *plan.SessionPlan
		err error
	}
	outc := make(chan out, 1)
	select {
	case r.queue <- func() {
		p, err := r.applyRedo(rec)
		outc <- out{p, err}
	}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case o := <-outc:
		return o.p, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// apply runs on the queue goroutine only.
func (r *Recorder) apply(res plan.SlotResult) error {
	r.mu.Lock()
	planID := r.plan.ID
	playerID := r.plan.PlayerID
	partBefore := r.plan.PartIndex
	r.plan.Apply(res)
	partAfter := r.plan.PartIndex
	completed := r.plan.Completed
	snap := clonePlan(r.plan)
	r.mu.Unlock()

	if r.OnPlanChanged != nil {
		r.OnPlanChanged()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.events.AppendResult(ctx, planID, playerID, res); err != nil {
		return err
	}
	// Snapshot at part boundaries and completion; per-result snapshots
	// would double every write for no resume benefit.
	if partAfter != partBefore || completed {
		if err := r.plans.Save(ctx, snap); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) applyRedo(rec controller.RedoRecord) (*plan.SessionPlan, error) {
	r.mu.Lock()
	r.plan.Results = append(r.plan.Results, rec.Result)
	snap := clonePlan(r.plan)
	r.mu.Unlock()

	if r.OnPlanChanged != nil {
		r.OnPlanChanged()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.events.AppendResult(ctx, rec.PlanID, rec.PlayerID, rec.Result); err != nil {
		return snap, err
	}
	return snap, nil
}

// LogSession appends a session lifecycle event, filling tallies from the
// authoritative plan for end events.
func (r *Recorder) LogSession(ctx context.Context, action SessionAction, reason, message string, durationSecs int) error {
	r.mu.Lock()
	data := SessionEventData{
		PlanID:       r.plan.ID,
		PlayerID:     r.plan.PlayerID,
		Action:       action,
		Reason:       reason,
		Message:      message,
		DurationSecs: durationSecs,
	}
	if action == ActionEndEarly || action == ActionComplete {
		h := r.plan.Health()
		data.Answered = h.Attempted
		data.Correct = h.Correct
		data.PartHealth = r.plan.PartHealths()
	}
	snap := clonePlan(r.plan)
	r.mu.Unlock()

	if err := r.events.AppendSession(ctx, data); err != nil {
		return err
	}
	if action == ActionEndEarly || action == ActionComplete {
		return r.plans.Save(ctx, snap)
	}
	return nil
}

// LogAssist appends an assistance transition for the durable trail.
func (r *Recorder) LogAssist(ctx context.Context, slotID, fromState, toState, trigger string) error {
	r.mu.Lock()
	planID := r.plan.ID
	r.mu.Unlock()
	return r.events.AppendAssist(ctx, AssistEventData{
		PlanID:    planID,
		SlotID:    slotID,
		FromState: fromState,
		ToState:   toState,
		Trigger:   trigger,
	})
}

// clonePlan deep-copies a plan through its JSON form. Plans are small
// (dozens of slots), so the cost is irrelevant next to a DB write.
func clonePlan(p *plan.SessionPlan) *plan.SessionPlan {
	raw, err := json.Marshal(p)
	if err != nil {
		cp := *p
		return &cp
	}
	var out plan.SessionPlan
	if err := json.Unmarshal(raw, &out); err != nil {
		cp := *p
		return &cp
	}
	return &out
}
