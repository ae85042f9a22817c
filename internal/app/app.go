package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/screens/intro"
	"github.com/abhisek/pathfinder/internal/screens/question"
	"github.com/abhisek/pathfinder/internal/screens/results"
	"github.com/abhisek/pathfinder/internal/session"
	"github.com/abhisek/pathfinder/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	// Now is the clock used for session timing. Defaults to time.Now.
	Now func() time.Time
}

// Outcome is what the interactive run produced.
type Outcome struct {
	// Completed is true when at least one assessment reached the results.
	Completed bool

	// Last is the most recently completed session.
	Last session.State
}

// flow wires the screens together. Screens never import each other; each
// receives a factory for the next one.
type flow struct {
	now     func() time.Time
	outcome *Outcome
}

func (f *flow) intro(state session.State) screen.Screen {
	return intro.New(func() screen.Screen {
		return f.begin(state)
	})
}

func (f *flow) begin(state session.State) screen.Screen {
	started := session.Apply(state, session.NewStart(f.now()))
	return question.New(started, f.now, f.results)
}

func (f *flow) results(state session.State) screen.Screen {
	f.outcome.Completed = true
	f.outcome.Last = state
	return results.New(state, func() screen.Screen {
		return f.intro(session.Apply(state, session.NewRestart(f.now())))
	})
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	outcome *Outcome
	width   int
	height  int
}

// newAppModel creates a new AppModel with the intro screen.
func newAppModel(opts Options) AppModel {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	f := &flow{now: now, outcome: &Outcome{}}
	return AppModel{
		router:  router.New(f.intro(session.New())),
		outcome: f.outcome,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) (Outcome, error) {
	m := newAppModel(opts)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return Outcome{}, fmt.Errorf("run program: %w", err)
	}
	return *m.outcome, nil
}
