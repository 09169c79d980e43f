package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sumleap/internal/plan"
)

func testScreen(early bool) *SummaryScreen {
	health := plan.HealthSummary{
		Attempted:     14,
		Correct:       11,
		Accuracy:      float64(11) / float64(14),
		AvgResponseMs: 5200,
	}
	parts := []plan.PartHealth{
		{Part: 0, Answered: 6, Correct: 6},
		{Part: 1, Answered: 5, Correct: 3},
		{Part: 2, Answered: 3, Correct: 2},
	}
	return New(health, parts, 15*60, early, nil)
}

func TestSummaryScreen_Title(t *testing.T) {
	s := testScreen(false)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := testScreen(false).View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Session complete!", "15:00", "Part 1", "6/6 correct"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_EarlyEnd(t *testing.T) {
	view := testScreen(true).View(80, 24)
	if !strings.Contains(view, "Session ended early") {
		t.Error("early end not shown")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := testScreen(false)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_CheerLineRendered(t *testing.T) {
	s := testScreen(false)
	s.cheerLine = "Great work today."
	if !strings.Contains(s.View(80, 24), "Great work today.") {
		t.Error("cheer line not rendered")
	}
}
