// Package pacing derives assistance timing from a learner's recorded
// results. Quick learners get a longer leash before encouragement kicks
// in; learners who are already taking long get earlier check-ins.
package pacing

import (
	"sort"
	"time"

	"github.com/abhisek/sumleap/internal/assist"
	"github.com/abhisek/sumleap/internal/plan"
)

// Baseline thresholds for a learner with no history.
const (
	BaseEncouragementMs = 20_000
	BaseHelpOfferMs     = 40_000
	BaseAutoPauseMs     = 75_000

	// minSample is how many results are needed before scaling kicks in.
	minSample = 3

	// Scaling is clamped so thresholds never drift outside sane bounds.
	minScale = 0.5
	maxScale = 2.0

	// referenceMs is the response time that maps to scale 1.0.
	referenceMs = 8_000
)

// Thresholds computes the escalation thresholds for the given history.
// With fewer than minSample results the baseline applies unchanged.
func Thresholds(results []plan.SlotResult) assist.Thresholds {
	base := assist.Thresholds{
		EncouragementMs: BaseEncouragementMs,
		HelpOfferMs:     BaseHelpOfferMs,
		AutoPauseMs:     BaseAutoPauseMs,
	}

	med := medianResponseMs(results)
	if med == 0 {
		return base
	}

	scale := float64(med) / float64(referenceMs)
	if scale < minScale {
		scale = minScale
	}
	if scale > maxScale {
		scale = maxScale
	}

	return assist.Thresholds{
		EncouragementMs: int64(float64(base.EncouragementMs) * scale),
		HelpOfferMs:     int64(float64(base.HelpOfferMs) * scale),
		AutoPauseMs:     int64(float64(base.AutoPauseMs) * scale),
	}
}

// AutoPauseStats summarizes the session for the auto-pause overlay.
// stuckSince is when the learner last made progress on the current problem.
func AutoPauseStats(results []plan.SlotResult, stuckSince, now time.Time) *assist.AutoPauseStats {
	stats := &assist.AutoPauseStats{
		MedianResponseMs: medianResponseMs(results),
	}
	for _, r := range results {
		stats.Attempted++
		if !r.Correct {
			stats.Wrong++
		}
	}
	if !stuckSince.IsZero() {
		stats.StuckMs = now.Sub(stuckSince).Milliseconds()
	}
	return stats
}

// medianResponseMs returns the median over correct answers, or 0 when the
// sample is too small. Incorrect answers are excluded: their response
// times measure struggle, not pace.
func medianResponseMs(results []plan.SlotResult) int64 {
	var times []int64
	for _, r := range results {
		if r.Correct {
			times = append(times, r.ResponseMs)
		}
	}
	if len(times) < minSample {
		return 0
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	mid := len(times) / 2
	if len(times)%2 == 0 {
		return (times[mid-1] + times[mid]) / 2
	}
	return times[mid]
}
