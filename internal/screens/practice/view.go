package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sumleap/internal/assist"
	"github.com/abhisek/sumleap/internal/controller"
	"github.com/abhisek/sumleap/internal/plan"
	"github.com/abhisek/sumleap/internal/ui/components"
	"github.com/abhisek/sumleap/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if s.plan == nil {
		return s.renderLoading(width)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}

	switch s.ctrl.Phase() {
	case controller.PhasePaused:
		return s.renderPaused(width)
	case controller.PhaseLoading:
		return s.renderLoading(width)
	case controller.PhaseHelpMode:
		return s.renderHelp(width)
	case controller.PhaseShowingFeedback, controller.PhaseSubmitting:
		return s.renderFeedback(width)
	case controller.PhaseTransitioning:
		return s.renderTransition(width)
	default:
		return s.renderProblem(width)
	}
}

func (s *PracticeScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + s.spin.View() + " Getting your next problem...")
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Stop practicing?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, stop"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

// renderProblem is the main inputting view.
func (s *PracticeScreen) renderProblem(width int) string {
	a := s.ctrl.Attempt()
	if a == nil {
		return s.renderLoading(width)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width, a))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	if s.ctrl.Redo() != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Redo: try this one again"))
		b.WriteString("\n\n")
	}

	format := plan.FormatLinear
	if a.PartIndex < len(s.plan.Parts) {
		format = s.plan.Parts[a.PartIndex].Format
	}
	if format == plan.FormatVertical {
		b.WriteString(renderVertical(width, a.Problem))
	} else {
		b.WriteString(renderLinear(width, a.Problem))
	}
	b.WriteString("\n")

	answer := a.Answer
	if answer == "" {
		answer = "_"
	}
	answerStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	if s.wrongFlash {
		answerStyle = answerStyle.Foreground(theme.Error)
	}
	b.WriteString(answerStyle.Render("Answer: " + answer))
	b.WriteString("\n")

	if s.wrongFlash {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Not quite. Try again!"))
		b.WriteString("\n")
	}
	if s.ctrl.Phase() == controller.PhaseAwaitingDisambiguation {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Still adding? Keep typing, or press Enter."))
		b.WriteString("\n")
	}

	b.WriteString(s.renderAssistBanner(width))
	b.WriteString(s.renderRod(width))
	b.WriteString(s.renderNotices(width))
	return b.String()
}

func (s *PracticeScreen) renderInfoLine(width int, a *controller.Attempt) string {
	partCount := len(s.plan.Parts)
	slotCount := 0
	if a.PartIndex < partCount {
		slotCount = len(s.plan.Parts[a.PartIndex].Slots)
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Part %d of %d", a.PartIndex+1, partCount))
	if a.Epoch > 0 {
		left += lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("  retry round %d", a.Epoch))
	}

	pct := 0.0
	if slotCount > 0 {
		pct = float64(a.SlotIndex) / float64(slotCount)
	}
	bar := components.NewProgressBar("", pct, false, 16).View()
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Problem %d/%d  %s", a.SlotIndex+1, slotCount, bar))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func renderVertical(width int, p plan.Problem) string {
	wide := 0
	for _, t := range p.Terms {
		if n := len(fmt.Sprintf("%d", t)); n > wide {
			wide = n
		}
	}
	var b strings.Builder
	for i, t := range p.Terms {
		sign := " "
		v := t
		if t < 0 {
			sign = "-"
			v = -t
		} else if i > 0 {
			sign = "+"
		}
		b.WriteString(fmt.Sprintf("%s %*d\n", sign, wide, v))
	}
	b.WriteString(strings.Repeat("─", wide+2))
	block := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block) + "\n"
}

func renderLinear(width int, p plan.Problem) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(p.String()+" =") + "\n"
}

func (s *PracticeScreen) renderAssistBanner(width int) string {
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch s.machine.State {
	case assist.StateEncouraging:
		return "\n" + style.Foreground(theme.Secondary).Render("Take your time. You've got this!") + "\n"
	case assist.StateOfferingHelp:
		return "\n" + style.Foreground(theme.Accent).Render("Want a hand? Press H for step-by-step help.") + "\n"
	}
	if assist.ShowWrongAnswerSuggestion(s.machine) {
		return "\n" + style.Foreground(theme.Accent).Render("Tricky one! Press H for help, or X to dismiss.") + "\n"
	}
	return ""
}

// renderRod shows the remote-controlled abacus rod value when a teacher
// has made it visible.
func (s *PracticeScreen) renderRod(width int) string {
	if !s.rodVisible {
		return ""
	}
	return "\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render(fmt.Sprintf("Abacus shows: %d", s.rodValue)) + "\n"
}

func (s *PracticeScreen) renderNotices(width int) string {
	var b strings.Builder
	if s.broadcast != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Teacher: " + s.broadcast))
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

func (s *PracticeScreen) renderFeedback(width int) string {
	a := s.ctrl.Outgoing()
	if a == nil {
		a = s.ctrl.Attempt()
	}

	var b strings.Builder
	b.WriteString("\n\n")
	if s.ctrl.Verdict() == controller.VerdictCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if a != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%s = %d", a.Problem.String(), a.Problem.Answer)))
		}
	}
	b.WriteString("\n")
	b.WriteString(s.renderNotices(width))
	return b.String()
}

func (s *PracticeScreen) renderTransition(width int) string {
	t := s.ctrl.Target()
	if t == nil {
		return s.renderLoading(width)
	}
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Next up..."))
	b.WriteString("\n\n")
	b.WriteString(renderLinear(width, t.Problem))
	return b.String()
}

// renderHelp shows the term-by-term walkthrough with running totals.
func (s *PracticeScreen) renderHelp(width int) string {
	a := s.ctrl.Attempt()
	if a == nil {
		return s.renderLoading(width)
	}
	term := s.ctrl.HelpTerm()
	sums := a.Problem.PrefixSums()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Let's do it together"))
	b.WriteString("\n\n")

	var steps strings.Builder
	for i, t := range a.Problem.Terms {
		var line string
		switch {
		case i < term:
			line = fmt.Sprintf("  %+d    running total: %d", t, sums[i])
			line = lipgloss.NewStyle().Foreground(theme.Success).Render(line)
		case i == term:
			line = fmt.Sprintf("> %+d", t)
			line = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(line)
		default:
			line = fmt.Sprintf("  %+d", t)
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
		}
		steps.WriteString(line)
		steps.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, steps.String()))
	b.WriteString("\n")

	hint := "Move this amount on your abacus, then press Enter."
	if s.machine.Context.MoveOnAvailable {
		hint = "All steps done. Press M to move on, or Esc to try answering."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))
	b.WriteString("\n")
	b.WriteString(s.renderRod(width))
	return b.String()
}

func (s *PracticeScreen) renderPaused(width int) string {
	info := s.ctrl.PauseState()

	var b strings.Builder
	b.WriteString("\n\n")
	title := "Paused"
	if info != nil && info.Reason == controller.PauseTeacher {
		title = "Paused by your teacher"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	if info != nil && info.Message != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("\"" + info.Message + "\""))
		b.WriteString("\n\n")
	}

	if info != nil && info.Reason == controller.PauseAutoTimeout {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("Looks like this one is a tough spot. A short break helps."))
		b.WriteString("\n")
		if st := info.Stats; st != nil {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("So far: %d tried, %d misses, stuck for %ds",
					st.Attempted, st.Wrong, st.StuckMs/1000)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press P when you're ready to continue."))
	return b.String()
}
