// Package intro is the landing screen: what the assessment covers and a
// menu to begin.
package intro

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/layout"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

const tagline = "Should I become a quantum computing developer?"

// IntroScreen shows the section overview and starts the assessment.
type IntroScreen struct {
	begin func() screen.Screen
	menu  components.Menu
	began bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen. begin builds the first question screen.
func New(begin func() screen.Screen) *IntroScreen {
	s := &IntroScreen{begin: begin}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Begin assessment", Hint: fmt.Sprintf("%d questions", catalog.QuestionCount()), Action: s.start},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Title() string {
	return "Career Readiness Assessment"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// start emits the transition once; repeated Enter presses are ignored.
func (s *IntroScreen) start() tea.Cmd {
	if s.began {
		return nil
	}
	s.began = true
	next := s.begin()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(RenderBanner(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline))
	b.WriteString("\n\n")

	totalMinutes := 0
	for _, sec := range catalog.Sections() {
		totalMinutes += sec.EstimatedMinutes
		line := fmt.Sprintf("%s  %-26s %2d questions  ~%d min",
			sec.Icon, sec.Title, len(sec.Questions), sec.EstimatedMinutes)
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
		if !layout.IsCompactHeight(height) {
			b.WriteString(theme.Hint.Render("    " + sec.Description))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("About %d minutes across %d sections", totalMinutes, len(catalog.Sections()))))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
