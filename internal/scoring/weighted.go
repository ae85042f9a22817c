package scoring

import (
	"math"

	"github.com/abhisek/pathfinder/internal/catalog"
)

// Mode selects how an answered question contributes to a weighted score.
type Mode int

const (
	// ModeMagnitude adds value*weight against scale*weight.
	ModeMagnitude Mode = iota
	// ModeCorrectness adds weight when the answer matches, against weight.
	ModeCorrectness
)

// Lookup maps question ids to answer values.
type Lookup map[string]catalog.Value

// NewLookup indexes answers by question id. A later answer for the same id
// replaces an earlier one.
func NewLookup(answers []Answer) Lookup {
	l := make(Lookup, len(answers))
	for _, a := range answers {
		l[a.QuestionID] = a.Value
	}
	return l
}

// tally accumulates a weighted numerator and denominator.
type tally struct {
	total float64
	max   float64
}

// addMagnitude records a rating. A non-numeric value scores 0 but still
// counts toward the maximum.
func (t *tally) addMagnitude(q catalog.Question, v catalog.Value) {
	f, _ := v.Float()
	t.total += f * q.Weight
	t.max += float64(q.ScaleMax()) * q.Weight
}

// addCorrectness records a knowledge-check answer.
func (t *tally) addCorrectness(q catalog.Question, v catalog.Value) {
	if v.Equal(q.CorrectAnswer) {
		t.total += q.Weight
	}
	t.max += q.Weight
}

// percent returns the rounded percentage, or 0 when nothing was answered.
func (t tally) percent() int {
	if t.max <= 0 {
		return 0
	}
	pct := t.total / t.max * 100
	switch {
	case math.IsNaN(pct):
		return 0
	case math.IsInf(pct, 1):
		return 100
	case math.IsInf(pct, -1):
		return 0
	}
	return clampPercent(roundHalfUp(pct))
}

// WeightedScore scores the answered subset of questions in one mode.
// Questions without an answer are left out of both numerator and
// denominator.
func WeightedScore(questions []catalog.Question, answers Lookup, mode Mode) int {
	var t tally
	for _, q := range questions {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		switch mode {
		case ModeCorrectness:
			t.addCorrectness(q, v)
		default:
			t.addMagnitude(q, v)
		}
	}
	return t.percent()
}

// ScoreIDs runs WeightedScore over the catalog questions with the given ids,
// in canonical order. Unknown ids are ignored.
func ScoreIDs(ids []string, answers Lookup, mode Mode) int {
	return WeightedScore(catalog.Select(ids), answers, mode)
}

// roundHalfUp rounds to the nearest integer with halves going up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
