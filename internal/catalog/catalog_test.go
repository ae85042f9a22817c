package catalog

import (
	"testing"
)

func TestAllQuestions_Count(t *testing.T) {
	all := AllQuestions()
	if len(all) != 24 {
		t.Errorf("got %d questions, want 24", len(all))
	}
	if QuestionCount() != len(all) {
		t.Errorf("QuestionCount = %d, want %d", QuestionCount(), len(all))
	}
}

func TestAllQuestions_CanonicalOrder(t *testing.T) {
	var want []string
	for _, s := range Sections() {
		for _, q := range s.Questions {
			want = append(want, q.ID)
		}
	}
	all := AllQuestions()
	for i, q := range all {
		if q.ID != want[i] {
			t.Fatalf("question %d: got %q, want %q", i, q.ID, want[i])
		}
	}
	if all[0].ID != "psych_1" || all[len(all)-1].ID != "quantum_6" {
		t.Errorf("unexpected bounds: first %q, last %q", all[0].ID, all[len(all)-1].ID)
	}
}

func TestAllQuestions_ReturnsCopy(t *testing.T) {
	all := AllQuestions()
	all[0].Prompt = "mutated"
	q, _ := Lookup(all[0].ID)
	if q.Prompt == "mutated" {
		t.Error("AllQuestions must not expose catalog storage")
	}
}

func TestQuestionsInSection(t *testing.T) {
	tests := []struct {
		section string
		want    int
	}{
		{"psychometric", 8},
		{"aptitude", 5},
		{"prerequisites", 5},
		{"quantum", 6},
		{"unknown", 0},
	}
	for _, tt := range tests {
		got := QuestionsInSection(tt.section)
		if len(got) != tt.want {
			t.Errorf("QuestionsInSection(%q): got %d, want %d", tt.section, len(got), tt.want)
		}
	}
	if QuestionsInSection("unknown") != nil {
		t.Error("unknown section should return nil")
	}
}

func TestGetQuestion(t *testing.T) {
	q, err := GetQuestion("apt_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != TypeMultipleChoice || q.Category != CategoryAptitude {
		t.Errorf("apt_1: got type %q category %q", q.Type, q.Category)
	}
	if !q.CorrectAnswer.Equal(Text("8")) {
		t.Errorf("apt_1 correct answer = %v, want 8", q.CorrectAnswer)
	}

	if _, err := GetQuestion("nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent question, got nil")
	}
}

func TestSectionIndex(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{7, 0},
		{8, 1},
		{12, 1},
		{13, 2},
		{17, 2},
		{18, 3},
		{23, 3},
		{24, 3},
		{100, 3},
	}
	for _, tt := range tests {
		if got := SectionIndex(tt.index); got != tt.want {
			t.Errorf("SectionIndex(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

// The lookup table must agree with counting questions section by section.
func TestSectionIndex_MatchesCumulativeCount(t *testing.T) {
	sections := Sections()
	cumulative := func(qi int) int {
		count := 0
		for i, s := range sections {
			count += len(s.Questions)
			if qi < count {
				return i
			}
		}
		return len(sections) - 1
	}
	for i := 0; i <= QuestionCount(); i++ {
		if got, want := SectionIndex(i), cumulative(i); got != want {
			t.Errorf("SectionIndex(%d) = %d, cumulative count gives %d", i, got, want)
		}
	}
}

func TestSectionStart(t *testing.T) {
	want := []int{0, 8, 13, 18}
	for si, w := range want {
		if got := SectionStart(si); got != w {
			t.Errorf("SectionStart(%d) = %d, want %d", si, got, w)
		}
	}
	if SectionStart(9) != -1 {
		t.Error("SectionStart out of range should be -1")
	}
}

func TestSelect_CanonicalOrderIgnoresUnknown(t *testing.T) {
	got := Select([]string{"psych_7", "missing", "psych_1"})
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	if got[0].ID != "psych_1" || got[1].ID != "psych_7" {
		t.Errorf("got %q, %q; want canonical order psych_1, psych_7", got[0].ID, got[1].ID)
	}
}

func TestTechnicalQuestions(t *testing.T) {
	tech := TechnicalQuestions()
	if len(tech) != 16 {
		t.Errorf("got %d technical questions, want 16", len(tech))
	}
	for _, q := range tech {
		if q.Category == CategoryPsychometric {
			t.Errorf("psychometric question %q counted as technical", q.ID)
		}
	}
	if n := len(ByCategory(CategoryPsychometric)); n != 8 {
		t.Errorf("ByCategory(psychometric): got %d, want 8", n)
	}
}

func TestScaleMax_Default(t *testing.T) {
	q := Question{Type: TypeLikert}
	if q.ScaleMax() != DefaultScale {
		t.Errorf("ScaleMax = %d, want %d", q.ScaleMax(), DefaultScale)
	}
	q.Scale = 7
	if q.ScaleMax() != 7 {
		t.Errorf("ScaleMax = %d, want 7", q.ScaleMax())
	}
}

func TestDimensionQuestionIDs(t *testing.T) {
	if ids := DimensionQuestionIDs(DimensionSkill); len(ids) != 0 {
		t.Errorf("skill should have no curated questions, got %v", ids)
	}
	ids := DimensionQuestionIDs(DimensionCognitiveReadiness)
	if len(ids) != 5 {
		t.Errorf("cognitive readiness: got %d ids, want 5", len(ids))
	}
	ids[0] = "mutated"
	if DimensionQuestionIDs(DimensionCognitiveReadiness)[0] == "mutated" {
		t.Error("DimensionQuestionIDs must return a copy")
	}
}

func TestLikertLabel(t *testing.T) {
	if LikertLabel(1) != "Strongly Disagree" || LikertLabel(5) != "Strongly Agree" {
		t.Error("unexpected Likert endpoint labels")
	}
	if LikertLabel(0) != "" || LikertLabel(6) != "" {
		t.Error("out-of-range ratings should have no label")
	}
}
