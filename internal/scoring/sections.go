package scoring

import "github.com/abhisek/pathfinder/internal/catalog"

// Interpret returns the qualitative label for a section percentage.
func Interpret(percentage int) string {
	switch {
	case percentage >= 80:
		return "Excellent"
	case percentage >= 70:
		return "Good"
	case percentage >= 60:
		return "Developing"
	case percentage >= 50:
		return "Basic"
	default:
		return "Needs Improvement"
	}
}

// SectionScores scores every catalog section in declaration order.
// Each answered question contributes in its own mode: Likert questions by
// magnitude and multiple-choice questions by correctness, blended into one
// total and maximum per section.
func SectionScores(answers Lookup) []SectionScore {
	sections := catalog.Sections()
	out := make([]SectionScore, 0, len(sections))
	for _, s := range sections {
		out = append(out, scoreSection(s, answers))
	}
	return out
}

func scoreSection(s catalog.Section, answers Lookup) SectionScore {
	var t tally
	for _, q := range s.Questions {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		switch q.Type {
		case catalog.TypeLikert:
			t.addMagnitude(q, v)
		case catalog.TypeMultipleChoice:
			t.addCorrectness(q, v)
		}
	}
	pct := t.percent()
	return SectionScore{
		SectionID:      s.ID,
		Name:           s.Title,
		Score:          t.total,
		MaxScore:       t.max,
		Percentage:     pct,
		Interpretation: Interpret(pct),
	}
}
