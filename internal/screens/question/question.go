// Package question serves catalog questions one at a time and records
// answers through the session reducer.
package question

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/router"
	"github.com/abhisek/pathfinder/internal/scoring"
	"github.com/abhisek/pathfinder/internal/screen"
	"github.com/abhisek/pathfinder/internal/session"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/layout"
)

// QuestionScreen implements screen.Screen for the assessment phase.
type QuestionScreen struct {
	state    session.State
	now      func() time.Time
	finished func(session.State) screen.Screen

	choice      components.MultiChoice
	keys        keyMap
	help        help.Model
	confirmQuit bool
	done        bool
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen over a state already in the assessment
// phase. finished builds the screen shown once the result is computed.
func New(state session.State, now func() time.Time, finished func(session.State) screen.Screen) *QuestionScreen {
	if now == nil {
		now = time.Now
	}
	s := &QuestionScreen{
		state:    state,
		now:      now,
		finished: finished,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	s.syncChoice()
	return s
}

// State returns the current session state.
func (s *QuestionScreen) State() session.State {
	return s.state
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return s.state.CurrentSection().Title
}

func (s *QuestionScreen) Status() string {
	return fmt.Sprintf("Question %d of %d", s.state.QuestionIndex+1, catalog.QuestionCount())
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Choose"}}
	if s.state.CanGoPrevious() {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	if s.state.IsLastQuestion() {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "See results"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.done {
		return s, nil
	}

	if s.confirmQuit {
		switch kmsg.String() {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Quit):
		s.confirmQuit = true
		return s, nil

	case key.Matches(kmsg, s.keys.Previous):
		s.state = session.Apply(s.state, session.Previous{At: s.now()})
		s.syncChoice()
		return s, nil

	case key.Matches(kmsg, s.keys.Next):
		return s.advance()
	}

	before := s.choice.Chosen
	s.choice, _ = s.choice.Update(kmsg)
	if s.choice.Chosen != before {
		s.record()
	}
	return s, nil
}

// advance moves forward once the current question is answered. On the last
// question this computes the result and hands over to the results screen.
func (s *QuestionScreen) advance() (screen.Screen, tea.Cmd) {
	if _, v, ok := s.state.Current(); !ok || v.IsZero() {
		return s, nil
	}

	s.state = session.Apply(s.state, session.Next{At: s.now()})
	if s.state.Phase != session.PhaseResults {
		s.syncChoice()
		return s, nil
	}

	s.done = true
	next := s.finished(s.state)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// record stores the selected option as the answer to the current question.
func (s *QuestionScreen) record() {
	q, _, ok := s.state.Current()
	if !ok || !s.choice.HasChoice() {
		return
	}
	s.state = session.Apply(s.state, session.Answered{
		Answer: scoring.Answer{QuestionID: q.ID, Value: valueFor(q, s.choice.Chosen)},
	})
}

// syncChoice rebuilds the selector for the current question, preselecting
// any earlier answer.
func (s *QuestionScreen) syncChoice() {
	q, v, ok := s.state.Current()
	if !ok {
		s.choice = components.MultiChoice{Chosen: -1}
		return
	}

	switch q.Type {
	case catalog.TypeLikert:
		labels := make([]string, q.ScaleMax())
		for i := range labels {
			labels[i] = catalog.LikertLabel(i + 1)
		}
		s.choice = components.NewLikert(q.Prompt, labels)
	default:
		s.choice = components.NewMultiChoice(q.Prompt, q.Options)
	}
	s.choice = s.choice.WithChosen(indexFor(q, v))
}

// valueFor converts a selected index into the answer value for q.
func valueFor(q catalog.Question, chosen int) catalog.Value {
	if q.Type == catalog.TypeLikert {
		return catalog.Number(float64(chosen + 1))
	}
	return catalog.Text(q.Options[chosen])
}

// indexFor is the inverse of valueFor. Returns -1 when v selects nothing.
func indexFor(q catalog.Question, v catalog.Value) int {
	if v.IsZero() {
		return -1
	}
	if q.Type == catalog.TypeLikert {
		if f, ok := v.Float(); ok {
			return int(f) - 1
		}
		return -1
	}
	for i, opt := range q.Options {
		if v.Equal(catalog.Text(opt)) {
			return i
		}
	}
	return -1
}
