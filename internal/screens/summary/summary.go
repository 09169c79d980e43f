package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sumleap/internal/cheer"
	"github.com/abhisek/sumleap/internal/plan"
	"github.com/abhisek/sumleap/internal/router"
	"github.com/abhisek/sumleap/internal/screen"
	"github.com/abhisek/sumleap/internal/ui/layout"
	"github.com/abhisek/sumleap/internal/ui/theme"
)

// SummaryScreen displays the end-of-session tally.
type SummaryScreen struct {
	health       plan.HealthSummary
	parts        []plan.PartHealth
	durationSecs int
	early        bool

	cheers    *cheer.Service
	cheerLine string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

type cheerPollMsg struct{}

// New creates a summary screen for a finished or abandoned session.
func New(health plan.HealthSummary, parts []plan.PartHealth, durationSecs int, early bool, cheers *cheer.Service) *SummaryScreen {
	return &SummaryScreen{
		health:       health,
		parts:        parts,
		durationSecs: durationSecs,
		early:        early,
		cheers:       cheers,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.cheers == nil {
		return nil
	}
	return pollCheer()
}

func pollCheer() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return cheerPollMsg{}
	})
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cheerPollMsg:
		if line, ok := s.cheers.Consume(); ok {
			s.cheerLine = line
			return s, nil
		}
		return s, pollCheer()
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	title := "Session complete!"
	titleColor := theme.Primary
	if s.early {
		title = "Session ended early"
		titleColor = theme.TextDim
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(titleColor).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	mins := s.durationSecs / 60
	secs := s.durationSecs % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time practiced: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	h := s.health
	statsLine := fmt.Sprintf("Problems: %d        Correct: %d        Accuracy: %.0f%%",
		h.Attempted, h.Correct, h.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	if h.AvgResponseMs > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Average answer time: %.1fs", float64(h.AvgResponseMs)/1000)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Parts")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, ph := range s.parts {
		line := fmt.Sprintf("  Part %d    %d/%d correct", ph.Part+1, ph.Correct, ph.Answered)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if ph.Answered > 0 && ph.Correct == ph.Answered {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.cheerLine != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.cheerLine))
		b.WriteString("\n")
	}

	return b.String()
}
