package session

import (
	"testing"
	"time"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func started() State {
	return Apply(New(), Start{At: t0, SessionID: "s-1"})
}

func answer(id string, v catalog.Value) Answered {
	return Answered{Answer: scoring.Answer{QuestionID: id, Value: v}}
}

func TestNew_IsIntro(t *testing.T) {
	s := New()
	if s.Phase != PhaseIntro {
		t.Errorf("Phase = %v, want intro", s.Phase)
	}
	if s.QuestionIndex != 0 || s.SectionIndex != 0 {
		t.Errorf("indices = (%d, %d), want (0, 0)", s.QuestionIndex, s.SectionIndex)
	}
	if s.Result != nil {
		t.Error("Result should be nil")
	}
}

func TestStart_EntersAssessment(t *testing.T) {
	s := started()
	if s.Phase != PhaseAssessment {
		t.Fatalf("Phase = %v, want assessment", s.Phase)
	}
	if s.SessionID != "s-1" {
		t.Errorf("SessionID = %q, want s-1", s.SessionID)
	}
	if !s.StartedAt.Equal(t0) {
		t.Errorf("StartedAt = %v, want %v", s.StartedAt, t0)
	}
	q, _, ok := s.Current()
	if !ok || q.ID != "psych_1" {
		t.Errorf("Current = %q, want psych_1", q.ID)
	}
}

func TestStart_IgnoredOutsideIntro(t *testing.T) {
	s := started()
	s = Apply(s, Next{At: t0.Add(time.Second)})
	again := Apply(s, Start{At: t0.Add(time.Hour), SessionID: "s-2"})
	if again.SessionID != "s-1" || again.QuestionIndex != 1 {
		t.Errorf("Start during assessment changed state: id=%q index=%d", again.SessionID, again.QuestionIndex)
	}
}

func TestNewStart_IssuesSessionID(t *testing.T) {
	a := NewStart(t0)
	b := NewStart(t0)
	if a.SessionID == "" || a.SessionID == b.SessionID {
		t.Errorf("session ids = %q, %q; want distinct non-empty", a.SessionID, b.SessionID)
	}
}

func TestAnswered_ReplacesByID(t *testing.T) {
	s := started()
	s = Apply(s, answer("psych_1", catalog.Number(2)))
	s = Apply(s, answer("psych_2", catalog.Number(3)))
	s = Apply(s, answer("psych_1", catalog.Number(5)))

	if s.AnsweredCount() != 2 {
		t.Fatalf("AnsweredCount = %d, want 2", s.AnsweredCount())
	}
	if s.Answers[0].QuestionID != "psych_1" {
		t.Errorf("first answer = %q, want psych_1 kept in place", s.Answers[0].QuestionID)
	}
	if got := s.AnswerFor("psych_1"); !got.Equal(catalog.Number(5)) {
		t.Errorf("psych_1 = %v, want 5", got)
	}
}

func TestAnswered_IgnoredOutsideAssessment(t *testing.T) {
	s := Apply(New(), answer("psych_1", catalog.Number(4)))
	if s.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d, want 0 in intro", s.AnsweredCount())
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	s := started()
	s = Apply(s, answer("psych_1", catalog.Number(2)))
	s = Apply(s, Next{At: t0.Add(5 * time.Second)})

	before := s
	_ = Apply(s, answer("psych_1", catalog.Number(5)))
	_ = Apply(s, Next{At: t0.Add(10 * time.Second)})

	if got := s.AnswerFor("psych_1"); !got.Equal(catalog.Number(2)) {
		t.Errorf("original answer changed to %v", got)
	}
	if s.QuestionIndex != before.QuestionIndex {
		t.Errorf("original index changed to %d", s.QuestionIndex)
	}
	if s.TimeSpent["psychometric"] != 5*time.Second {
		t.Errorf("original time spent changed to %v", s.TimeSpent["psychometric"])
	}
}

func TestNext_AdvancesAndTracksSection(t *testing.T) {
	s := started()
	for i := range 8 {
		s = Apply(s, Next{At: t0.Add(time.Duration(i+1) * time.Second)})
	}
	if s.QuestionIndex != 8 {
		t.Fatalf("QuestionIndex = %d, want 8", s.QuestionIndex)
	}
	if s.SectionIndex != 1 {
		t.Errorf("SectionIndex = %d, want 1", s.SectionIndex)
	}
	if s.CurrentSection().ID != "aptitude" {
		t.Errorf("section = %q, want aptitude", s.CurrentSection().ID)
	}
}

func TestPrevious_NoOpAtFirst(t *testing.T) {
	s := started()
	if s.CanGoPrevious() {
		t.Error("CanGoPrevious should be false at index 0")
	}
	p := Apply(s, Previous{At: t0.Add(time.Second)})
	if p.QuestionIndex != 0 {
		t.Errorf("QuestionIndex = %d, want 0", p.QuestionIndex)
	}
}

func TestPrevious_CrossesSectionBoundary(t *testing.T) {
	s := started()
	for range 8 {
		s = Apply(s, Next{At: t0})
	}
	s = Apply(s, Previous{At: t0})
	if s.QuestionIndex != 7 || s.SectionIndex != 0 {
		t.Errorf("indices = (%d, %d), want (7, 0)", s.QuestionIndex, s.SectionIndex)
	}
}

func TestTimeSpent_AccruesToSectionLeft(t *testing.T) {
	s := started()
	for i := range 8 {
		s = Apply(s, Next{At: t0.Add(time.Duration(i+1) * 10 * time.Second)})
	}
	s = Apply(s, Next{At: t0.Add(100 * time.Second)})

	if got := s.TimeSpent["psychometric"]; got != 80*time.Second {
		t.Errorf("psychometric = %v, want 80s", got)
	}
	if got := s.TimeSpent["aptitude"]; got != 20*time.Second {
		t.Errorf("aptitude = %v, want 20s", got)
	}
}

func TestTimeSpent_IgnoresClockGoingBackwards(t *testing.T) {
	s := started()
	s = Apply(s, Next{At: t0.Add(-time.Minute)})
	if got := s.TimeSpent["psychometric"]; got != 0 {
		t.Errorf("psychometric = %v, want 0", got)
	}
}

func TestNext_OnLastQuestionFinishes(t *testing.T) {
	s := started()
	for range catalog.QuestionCount() - 1 {
		s = Apply(s, Next{At: t0})
	}
	if !s.IsLastQuestion() {
		t.Fatal("expected to be on the last question")
	}
	s = Apply(s, Next{At: t0.Add(time.Minute)})
	if s.Phase != PhaseResults {
		t.Fatalf("Phase = %v, want results", s.Phase)
	}
	if s.Result == nil {
		t.Fatal("Result should be set")
	}
	if s.Elapsed(t0.Add(time.Hour)) != time.Minute {
		t.Errorf("Elapsed = %v, want 1m", s.Elapsed(t0.Add(time.Hour)))
	}
}

func TestFinish_ScoresCollectedAnswers(t *testing.T) {
	s := started()
	var answers []scoring.Answer
	for _, q := range catalog.AllQuestions() {
		var v catalog.Value
		if q.Type == catalog.TypeLikert {
			v = catalog.Number(float64(q.ScaleMax()))
		} else {
			v = q.CorrectAnswer
		}
		s = Apply(s, answer(q.ID, v))
		answers = append(answers, scoring.Answer{QuestionID: q.ID, Value: v})
	}
	s = Apply(s, Finish{At: t0.Add(time.Minute)})

	if s.Result == nil {
		t.Fatal("Result should be set")
	}
	want := scoring.Score(answers)
	if s.Result.OverallConfidence != want.OverallConfidence {
		t.Errorf("OverallConfidence = %d, want %d", s.Result.OverallConfidence, want.OverallConfidence)
	}
	if s.Result.Recommendation != scoring.RecommendYes {
		t.Errorf("Recommendation = %v, want yes", s.Result.Recommendation)
	}
}

func TestFinish_WithNoAnswers(t *testing.T) {
	s := Apply(started(), Finish{At: t0})
	if s.Result == nil || s.Result.OverallConfidence != 0 {
		t.Errorf("Result = %+v, want zero confidence", s.Result)
	}
}

func TestNavigation_IgnoredAfterResults(t *testing.T) {
	s := Apply(started(), Finish{At: t0})
	for _, e := range []Event{Next{At: t0}, Previous{At: t0}, Finish{At: t0}, answer("psych_1", catalog.Number(5))} {
		got := Apply(s, e)
		if got.Phase != PhaseResults || got.AnsweredCount() != 0 {
			t.Errorf("%T changed results state", e)
		}
	}
}

func TestRestart_ReturnsToIntro(t *testing.T) {
	s := started()
	s = Apply(s, answer("psych_1", catalog.Number(4)))
	s = Apply(s, Finish{At: t0})
	s = Apply(s, Restart{At: t0, SessionID: "s-2"})

	if s.Phase != PhaseIntro {
		t.Errorf("Phase = %v, want intro", s.Phase)
	}
	if s.AnsweredCount() != 0 || s.Result != nil {
		t.Errorf("Restart left state behind: %+v", s)
	}
	if s.SessionID != "s-2" {
		t.Errorf("SessionID = %q, want s-2", s.SessionID)
	}

	s = Apply(s, Start{At: t0})
	if s.SessionID != "s-2" {
		t.Errorf("SessionID after Start = %q, want s-2 carried over", s.SessionID)
	}
}

func TestProgress(t *testing.T) {
	s := started()
	want := 1.0 / float64(catalog.QuestionCount())
	if got := s.Progress(); got != want {
		t.Errorf("Progress = %f, want %f", got, want)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIntro, "intro"},
		{PhaseAssessment, "assessment"},
		{PhaseResults, "results"},
		{Phase(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
