package plan

import "time"

// SlotResult is the immutable record of one answered attempt. Append-only;
// never mutated after creation.
type SlotResult struct {
	SlotID        string
	PartIndex     int
	SlotIndex     int
	Problem       Problem
	Answer        int
	Correct       bool
	ResponseMs    int64 // wall clock minus accumulated pause time
	WrongAttempts int   // incorrect tries before this submission
	UsedHelp      bool
	IsRetry       bool
	Epoch         int
	OriginalSlot  int // slot index of the original attempt, for retries
	At            time.Time
}

// HealthSummary is derived from the recorded results. Display-only.
type HealthSummary struct {
	Attempted     int
	Correct       int
	Accuracy      float64
	AvgResponseMs int64
	HelpRate      float64
}

// PartHealth is the per-part tally of canonical results.
type PartHealth struct {
	Part     int
	Answered int
	Correct  int
}

// PartHealths computes per-part tallies over canonical results.
func (p *SessionPlan) PartHealths() []PartHealth {
	out := make([]PartHealth, len(p.Parts))
	for i := range out {
		out[i].Part = i
	}
	for _, r := range p.Results {
		if r.IsRetry || r.PartIndex < 0 || r.PartIndex >= len(out) {
			continue
		}
		out[r.PartIndex].Answered++
		if r.Correct {
			out[r.PartIndex].Correct++
		}
	}
	return out
}

// Health computes the session-health summary over canonical results.
// Retried attempts are excluded so review passes don't skew accuracy.
func (p *SessionPlan) Health() HealthSummary {
	var h HealthSummary
	var totalMs int64
	helped := 0

	for _, r := range p.Results {
		if r.IsRetry {
			continue
		}
		h.Attempted++
		if r.Correct {
			h.Correct++
		}
		if r.UsedHelp {
			helped++
		}
		totalMs += r.ResponseMs
	}

	if h.Attempted > 0 {
		h.Accuracy = float64(h.Correct) / float64(h.Attempted)
		h.AvgResponseMs = totalMs / int64(h.Attempted)
		h.HelpRate = float64(helped) / float64(h.Attempted)
	}
	return h
}
