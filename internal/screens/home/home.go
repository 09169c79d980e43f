package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sumleap/internal/router"
	"github.com/abhisek/sumleap/internal/screen"
	"github.com/abhisek/sumleap/internal/screens/history"
	"github.com/abhisek/sumleap/internal/screens/practice"
	"github.com/abhisek/sumleap/internal/ui/components"
)

// HomeScreen is the landing screen: mascot, practice stats, menu.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string

	sessions      int
	answered      int
	correct       int
	resumeWaiting bool
	mascot        MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New builds the home screen. deps is handed through to the practice
// screen unchanged.
func New(deps practice.Deps) *HomeScreen {
	h := &HomeScreen{}
	h.loadStats(deps)

	h.mascot = MascotIdle
	if h.resumeWaiting {
		h.mascot = MascotAlert
	} else if h.recentStrongSession(deps) {
		h.mascot = MascotCelebrating
	}

	h.menuLabels = []string{"START PRACTICE", "HISTORY", "EXIT"}
	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(deps)}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) loadStats(deps practice.Deps) {
	if deps.Events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	sessions, err := deps.Events.RecentSessions(ctx, 50)
	if err != nil {
		return
	}
	for _, s := range sessions {
		h.sessions++
		h.answered += s.Answered
		h.correct += s.Correct
	}
	if deps.Plans != nil {
		if p, err := deps.Plans.Latest(ctx, deps.PlayerID); err == nil && p != nil {
			h.resumeWaiting = true
		}
	}
}

// recentStrongSession is true when the newest session finished within a
// day at 80% or better.
func (h *HomeScreen) recentStrongSession(deps practice.Deps) bool {
	if deps.Events == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	sessions, err := deps.Events.RecentSessions(ctx, 1)
	if err != nil || len(sessions) == 0 {
		return false
	}
	s := sessions[0]
	if s.Answered == 0 || time.Since(s.Timestamp) > 24*time.Hour {
		return false
	}
	return float64(s.Correct)/float64(s.Answered) >= 0.8
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.sessions, h.answered, h.correct, cw, compact))
	if h.resumeWaiting {
		sections = append(sections, renderResumeNote(cw))
	}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
