// Package session models a respondent's walk through the catalog as an
// immutable state value advanced by a pure reducer.
package session

import (
	"maps"
	"slices"
	"time"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

// Phase represents the current phase of the assessment.
type Phase int

const (
	PhaseIntro      Phase = iota // Intro screen, nothing answered yet
	PhaseAssessment              // Serving questions
	PhaseResults                 // Result computed and displayed
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseAssessment:
		return "assessment"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// State is a snapshot of one assessment run. Apply returns a new State and
// never modifies the one it was given.
type State struct {
	// SessionID identifies the run. Start and Restart events carry new ids.
	SessionID string

	Phase Phase

	// QuestionIndex is the canonical index of the current question.
	QuestionIndex int

	// SectionIndex is derived from QuestionIndex via the catalog lookup table.
	SectionIndex int

	// Answers holds at most one answer per question id, in first-answered order.
	Answers []scoring.Answer

	// StartedAt is when the assessment phase began.
	StartedAt time.Time

	// FinishedAt is when the result was computed.
	FinishedAt time.Time

	// TimeSpent accumulates time per section id between navigation events.
	TimeSpent map[string]time.Duration

	// Result is set once the phase reaches PhaseResults.
	Result *scoring.Result

	// lastMark is the time of the most recent navigation event.
	lastMark time.Time
}

// New returns the initial intro state.
func New() State {
	return State{Phase: PhaseIntro}
}

// clone copies the mutable parts of s.
func (s State) clone() State {
	s.Answers = slices.Clone(s.Answers)
	s.TimeSpent = maps.Clone(s.TimeSpent)
	return s
}

// Current returns the current question and the answer already recorded for
// it, if any.
func (s State) Current() (catalog.Question, catalog.Value, bool) {
	q, ok := catalog.QuestionAt(s.QuestionIndex)
	if !ok {
		return catalog.Question{}, catalog.Value{}, false
	}
	return q, s.AnswerFor(q.ID), true
}

// CurrentSection returns the section containing the current question.
func (s State) CurrentSection() catalog.Section {
	sec, _ := catalog.SectionAt(s.SectionIndex)
	return sec
}

// AnswerFor returns the recorded value for a question id.
func (s State) AnswerFor(id string) catalog.Value {
	for _, a := range s.Answers {
		if a.QuestionID == id {
			return a.Value
		}
	}
	return catalog.Value{}
}

// AnsweredCount returns the number of distinct questions answered.
func (s State) AnsweredCount() int {
	return len(s.Answers)
}

// Progress returns the fraction of the catalog reached, counting the
// current question.
func (s State) Progress() float64 {
	total := catalog.QuestionCount()
	if total == 0 {
		return 0
	}
	return float64(s.QuestionIndex+1) / float64(total)
}

// CanGoPrevious reports whether Previous would move.
func (s State) CanGoPrevious() bool {
	return s.Phase == PhaseAssessment && s.QuestionIndex > 0
}

// IsLastQuestion reports whether Next would finish the assessment.
func (s State) IsLastQuestion() bool {
	return s.QuestionIndex >= catalog.QuestionCount()-1
}

// Elapsed returns the time between start and finish, or until now while
// the assessment is running.
func (s State) Elapsed(now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	end := now
	if !s.FinishedAt.IsZero() {
		end = s.FinishedAt
	}
	if end.Before(s.StartedAt) {
		return 0
	}
	return end.Sub(s.StartedAt)
}
