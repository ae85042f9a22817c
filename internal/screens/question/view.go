package question

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

const maxContentWidth = 76

func (s *QuestionScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height, s.state.AnsweredCount())
	}

	q, v, ok := s.state.Current()
	if !ok {
		return ""
	}
	sec := s.state.CurrentSection()
	cw := min(width-4, maxContentWidth)

	var b strings.Builder

	bar := progress.New(progress.WithWidth(cw))
	b.WriteString(bar.ViewAs(s.state.Progress()))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d answered", s.state.AnsweredCount(), catalog.QuestionCount())))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render(fmt.Sprintf("%s  %s", sec.Icon, sec.Title)))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(q.Topic))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(cw).Render(s.choice.View()))
	b.WriteString("\n")

	if v.IsZero() {
		b.WriteString(theme.Hint.Render("Choose an answer to continue"))
	} else if s.state.IsLastQuestion() {
		b.WriteString(theme.Hint.Render("Press → to see your results"))
	}
	b.WriteString("\n\n")
	b.WriteString(s.help.View(s.keys))

	card := theme.Card.Width(cw + 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderQuitConfirm(width, height, answered int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Quit the assessment?") +
		"\n\n" +
		theme.Hint.Render(fmt.Sprintf("Your %d answers will not be saved.", answered)) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("[Y] Quit    [N] Keep going")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(msg))
}
