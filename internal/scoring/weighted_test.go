package scoring

import (
	"testing"

	"github.com/abhisek/pathfinder/internal/catalog"
)

func TestWeightedScore_MagnitudeIsWeighted(t *testing.T) {
	// psych_2 (weight 1.5) at 5 and psych_5 (weight 1.4) at 1:
	// (7.5 + 1.4) / (7.5 + 7.0) = 61.4%.
	answers := NewLookup([]Answer{num("psych_2", 5), num("psych_5", 1)})
	got := ScoreIDs([]string{"psych_2", "psych_5"}, answers, ModeMagnitude)
	if got != 61 {
		t.Errorf("got %d, want 61", got)
	}
}

func TestWeightedScore_MissingAnswersExcluded(t *testing.T) {
	answers := NewLookup([]Answer{num("psych_2", 4)})
	got := ScoreIDs([]string{"psych_2", "psych_5"}, answers, ModeMagnitude)
	if got != 80 {
		t.Errorf("got %d, want 80 (unanswered psych_5 must not count)", got)
	}
}

func TestWeightedScore_NoAnswersIsZero(t *testing.T) {
	if got := ScoreIDs([]string{"psych_2"}, NewLookup(nil), ModeMagnitude); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := ScoreIDs(nil, NewLookup(fullCredit()), ModeCorrectness); got != 0 {
		t.Errorf("empty id set: got %d, want 0", got)
	}
}

func TestWeightedScore_NonNumericLikertCountsAsZero(t *testing.T) {
	answers := NewLookup([]Answer{num("psych_1", 5), text("psych_7", "5")})
	// psych_1 and psych_7 share weight 1.2, so 6.0 / 12.0.
	got := ScoreIDs([]string{"psych_1", "psych_7"}, answers, ModeMagnitude)
	if got != 50 {
		t.Errorf("got %d, want 50", got)
	}
}

func TestWeightedScore_Correctness(t *testing.T) {
	tests := []struct {
		name    string
		answers []Answer
		want    int
	}{
		{"correct", []Answer{text("apt_1", "8")}, 100},
		{"wrong option", []Answer{text("apt_1", "6")}, 0},
		{"number never matches a string answer", []Answer{num("apt_1", 8)}, 0},
		{"case sensitive", []Answer{text("quantum_6", "qiskit")}, 0},
		// apt_2 (1.2) right, apt_5 (1.3) wrong: 1.2 / 2.5 = 48%.
		{"weighted mix", []Answer{text("apt_2", "A coin that shows heads AND tails simultaneously"), text("apt_5", "0")}, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{"apt_1", "apt_2", "apt_5", "quantum_6"}
			got := ScoreIDs(ids, NewLookup(tt.answers), ModeCorrectness)
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeightedScore_ClampsOutOfScaleRatings(t *testing.T) {
	high := NewLookup([]Answer{num("psych_1", 9)})
	if got := ScoreIDs([]string{"psych_1"}, high, ModeMagnitude); got != 100 {
		t.Errorf("over-scale rating: got %d, want 100", got)
	}
	low := NewLookup([]Answer{num("psych_1", -3)})
	if got := ScoreIDs([]string{"psych_1"}, low, ModeMagnitude); got != 0 {
		t.Errorf("negative rating: got %d, want 0", got)
	}
}

func TestNewLookup_LaterAnswerWins(t *testing.T) {
	l := NewLookup([]Answer{num("psych_1", 1), num("psych_1", 4)})
	f, _ := l["psych_1"].Float()
	if f != 4 {
		t.Errorf("got %v, want 4", f)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 1},
		{1.49, 1},
		{2.5, 3},
		{66.05, 66},
		{-0.5, 0},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWeightedScore_CustomScale(t *testing.T) {
	qs := []catalog.Question{{ID: "x", Type: catalog.TypeLikert, Scale: 10, Weight: 2}}
	got := WeightedScore(qs, Lookup{"x": catalog.Number(7)}, ModeMagnitude)
	if got != 70 {
		t.Errorf("got %d, want 70", got)
	}
}
