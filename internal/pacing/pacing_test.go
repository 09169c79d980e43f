package pacing

import (
	"testing"
	"time"

	"github.com/abhisek/sumleap/internal/plan"
)

func results(correctMs ...int64) []plan.SlotResult {
	var rs []plan.SlotResult
	for _, ms := range correctMs {
		rs = append(rs, plan.SlotResult{Correct: true, ResponseMs: ms})
	}
	return rs
}

func TestThresholds_BaselineWithoutHistory(t *testing.T) {
	th := Thresholds(nil)
	if th.EncouragementMs != BaseEncouragementMs ||
		th.HelpOfferMs != BaseHelpOfferMs ||
		th.AutoPauseMs != BaseAutoPauseMs {
		t.Errorf("thresholds = %+v, want baseline", th)
	}

	// Two results is still below the sample floor.
	th = Thresholds(results(1000, 1000))
	if th.EncouragementMs != BaseEncouragementMs {
		t.Errorf("thresholds scaled on %d results", 2)
	}
}

func TestThresholds_ScalesWithMedian(t *testing.T) {
	// Median 16s = 2x reference: thresholds double.
	th := Thresholds(results(16_000, 16_000, 16_000))
	if th.EncouragementMs != 2*BaseEncouragementMs {
		t.Errorf("encouragement = %d, want %d", th.EncouragementMs, 2*BaseEncouragementMs)
	}
	if th.AutoPauseMs != 2*BaseAutoPauseMs {
		t.Errorf("autoPause = %d, want %d", th.AutoPauseMs, 2*BaseAutoPauseMs)
	}
}

func TestThresholds_ScaleClamped(t *testing.T) {
	// Absurdly fast learner: clamp at 0.5x.
	th := Thresholds(results(100, 100, 100))
	if th.EncouragementMs != BaseEncouragementMs/2 {
		t.Errorf("encouragement = %d, want %d", th.EncouragementMs, BaseEncouragementMs/2)
	}

	// Absurdly slow: clamp at 2x.
	th = Thresholds(results(600_000, 600_000, 600_000))
	if th.EncouragementMs != 2*BaseEncouragementMs {
		t.Errorf("encouragement = %d, want %d", th.EncouragementMs, 2*BaseEncouragementMs)
	}
}

func TestThresholds_IgnoresIncorrectResults(t *testing.T) {
	rs := results(8000, 8000, 8000)
	rs = append(rs, plan.SlotResult{Correct: false, ResponseMs: 120_000})
	th := Thresholds(rs)
	if th.EncouragementMs != BaseEncouragementMs {
		t.Errorf("incorrect results should not skew the median: %+v", th)
	}
}

func TestAutoPauseStats(t *testing.T) {
	rs := results(8000, 8000, 8000)
	rs = append(rs, plan.SlotResult{Correct: false, ResponseMs: 30_000})

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	stats := AutoPauseStats(rs, now.Add(-75*time.Second), now)

	if stats.Attempted != 4 {
		t.Errorf("attempted = %d, want 4", stats.Attempted)
	}
	if stats.Wrong != 1 {
		t.Errorf("wrong = %d, want 1", stats.Wrong)
	}
	if stats.MedianResponseMs != 8000 {
		t.Errorf("median = %d, want 8000", stats.MedianResponseMs)
	}
	if stats.StuckMs != 75_000 {
		t.Errorf("stuck = %d, want 75000", stats.StuckMs)
	}
}
