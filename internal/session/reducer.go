package session

import (
	"time"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

// Apply returns the state that results from handling e in s. Events that do
// not apply to the current phase leave the state unchanged.
func Apply(s State, e Event) State {
	switch e := e.(type) {
	case Start:
		if s.Phase != PhaseIntro {
			return s
		}
		next := New()
		next.Phase = PhaseAssessment
		next.SessionID = e.SessionID
		if next.SessionID == "" {
			next.SessionID = s.SessionID
		}
		next.StartedAt = e.At
		next.lastMark = e.At
		next.TimeSpent = make(map[string]time.Duration)
		return next

	case Answered:
		if s.Phase != PhaseAssessment {
			return s
		}
		next := s.clone()
		next.Answers = upsert(next.Answers, e.Answer)
		return next

	case Next:
		if s.Phase != PhaseAssessment {
			return s
		}
		if s.IsLastQuestion() {
			return finish(s, e.At)
		}
		return moveTo(s, s.QuestionIndex+1, e.At)

	case Previous:
		if !s.CanGoPrevious() {
			return s
		}
		return moveTo(s, s.QuestionIndex-1, e.At)

	case Finish:
		if s.Phase != PhaseAssessment {
			return s
		}
		return finish(s, e.At)

	case Restart:
		next := New()
		next.SessionID = e.SessionID
		return next
	}
	return s
}

// upsert replaces the answer with the same question id in place, else
// appends. The slice must already be owned by the caller.
func upsert(answers []scoring.Answer, a scoring.Answer) []scoring.Answer {
	for i := range answers {
		if answers[i].QuestionID == a.QuestionID {
			answers[i] = a
			return answers
		}
	}
	return append(answers, a)
}

func moveTo(s State, questionIndex int, at time.Time) State {
	next := s.clone()
	next.accrue(at)
	next.QuestionIndex = questionIndex
	next.SectionIndex = catalog.SectionIndex(questionIndex)
	return next
}

func finish(s State, at time.Time) State {
	next := s.clone()
	next.accrue(at)
	result := scoring.Score(next.Answers)
	next.Result = &result
	next.Phase = PhaseResults
	next.FinishedAt = at
	return next
}

// accrue charges the time since the last navigation event to the current
// section. The receiver must be a clone.
func (s *State) accrue(at time.Time) {
	if s.TimeSpent == nil {
		s.TimeSpent = make(map[string]time.Duration)
	}
	if !s.lastMark.IsZero() && at.After(s.lastMark) {
		s.TimeSpent[s.CurrentSection().ID] += at.Sub(s.lastMark)
	}
	if at.After(s.lastMark) {
		s.lastMark = at
	}
}
