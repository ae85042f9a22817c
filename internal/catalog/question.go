package catalog

// QuestionType selects how a question is answered and scored.
type QuestionType string

const (
	TypeLikert         QuestionType = "likert"
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTechnical      QuestionType = "technical" // Reserved; no seeded question uses it
)

// Category groups questions for the top-level scores.
type Category string

const (
	CategoryPsychometric   Category = "psychometric"
	CategoryAptitude       Category = "aptitude"
	CategoryPrerequisites  Category = "prerequisites"
	CategoryDomainSpecific Category = "domain-specific"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryPsychometric,
		CategoryAptitude,
		CategoryPrerequisites,
		CategoryDomainSpecific,
	}
}

// IsTechnical reports whether questions of this category count toward the
// technical score.
func (c Category) IsTechnical() bool {
	switch c {
	case CategoryAptitude, CategoryPrerequisites, CategoryDomainSpecific:
		return true
	default:
		return false
	}
}

// DefaultScale is the Likert upper bound used when a question omits Scale.
const DefaultScale = 5

// Question is a single immutable catalog entry.
type Question struct {
	ID            string
	Type          QuestionType
	Category      Category
	Topic         string // Display-only label within the section, e.g. "Grit"
	Prompt        string
	Options       []string
	Scale         int
	CorrectAnswer Value
	Weight        float64
}

// ScaleMax returns the upper bound of the rating scale.
func (q Question) ScaleMax() int {
	if q.Scale <= 0 {
		return DefaultScale
	}
	return q.Scale
}

// Section is an ordered, titled group of questions.
type Section struct {
	ID               string
	Title            string
	Description      string
	Icon             string
	EstimatedMinutes int
	Questions        []Question
}

// LikertLabel returns the display label for a rating on the default
// five-point scale. Ratings outside 1..5 have no label.
func LikertLabel(rating int) string {
	switch rating {
	case 1:
		return "Strongly Disagree"
	case 2:
		return "Disagree"
	case 3:
		return "Neutral"
	case 4:
		return "Agree"
	case 5:
		return "Strongly Agree"
	default:
		return ""
	}
}
