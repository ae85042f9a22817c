// Package results presents a scored session.
package results

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/report"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/session"
	"github.com/abhisek/pathfinder/internal/ui/layout"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// ResultsScreen displays the result in a scrollable viewport.
type ResultsScreen struct {
	state   session.State
	restart func() screen.Screen

	vp     viewport.Model
	width  int
	height int
	done   bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. restart builds the screen shown when the
// respondent starts over.
func New(state session.State, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		state:   state,
		restart: restart,
		vp:      viewport.New(),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) Status() string {
	return fmt.Sprintf("Completed in %s", formatDuration(s.state.Elapsed(s.state.FinishedAt)))
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Retake"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "r", "R":
			return s, s.retake()
		case "q", "Q", "esc":
			return s, tea.Quit
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) retake() tea.Cmd {
	if s.done || s.restart == nil {
		return nil
	}
	s.done = true
	next := s.restart()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	res := s.state.Result
	if res == nil {
		return ""
	}

	cw := min(width-4, 96)
	if cw != s.width || height != s.height {
		s.width, s.height = cw, height
		s.vp.SetWidth(cw)
		s.vp.SetHeight(height)
		s.vp.SetContent(s.content(cw))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.vp.View())
}

func (s *ResultsScreen) content(width int) string {
	var b strings.Builder
	b.WriteString(report.RenderResult(*s.state.Result, width, true))
	b.WriteString("\n")
	b.WriteString(theme.Heading.Render("Time Spent"))
	b.WriteString("\n")
	for _, sec := range catalog.Sections() {
		d, ok := s.state.TimeSpent[sec.ID]
		if !ok {
			continue
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %-26s %s", sec.Title, formatDuration(d))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d questions answered · session %s",
		s.state.AnsweredCount(), catalog.QuestionCount(), s.state.SessionID)))
	b.WriteString("\n")
	return b.String()
}

func formatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
