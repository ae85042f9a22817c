package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// MultiChoice is a single-selection list. Choosing an option does not
// reveal anything about correctness; the selection can be changed until the
// parent moves on.
type MultiChoice struct {
	Prompt  string
	Options []string

	// Cursor is the highlighted option.
	Cursor int

	// Chosen is the selected option, or -1.
	Chosen int

	// Numbered prefixes options with 1-based numbers instead of letters.
	Numbered bool
}

// NewMultiChoice creates a lettered option list with nothing chosen.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// NewLikert creates a numbered agreement scale from 1 to scale.
func NewLikert(prompt string, labels []string) MultiChoice {
	m := NewMultiChoice(prompt, labels)
	m.Numbered = true
	m.Cursor = len(labels) / 2
	return m
}

// WithChosen preselects an option, for revisiting an answered question.
func (m MultiChoice) WithChosen(i int) MultiChoice {
	if i >= 0 && i < len(m.Options) {
		m.Chosen = i
		m.Cursor = i
	}
	return m
}

// HasChoice reports whether an option is selected.
func (m MultiChoice) HasChoice() bool {
	return m.Chosen >= 0
}

// ChosenOption returns the selected option text.
func (m MultiChoice) ChosenOption() (string, bool) {
	if !m.HasChoice() {
		return "", false
	}
	return m.Options[m.Chosen], true
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and selection. Digit keys select directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space":
		if len(m.Options) > 0 {
			m.Chosen = m.Cursor
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Cursor = n - 1
			m.Chosen = n - 1
		}
	}

	return m, nil
}

func (m MultiChoice) marker(i int) string {
	if m.Numbered {
		return strconv.Itoa(i + 1)
	}
	return string(rune('A' + i))
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		check := "○"
		if i == m.Chosen {
			check = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, check, m.marker(i), opt)

		switch {
		case i == m.Chosen:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line))
		case i == m.Cursor:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
