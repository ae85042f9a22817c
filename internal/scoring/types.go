package scoring

import "github.com/abhisek/pathfinder/internal/catalog"

// Answer pairs a question id with the respondent's value.
type Answer struct {
	QuestionID string        `json:"questionId" yaml:"questionId"`
	Value      catalog.Value `json:"value" yaml:"value"`
}

// Recommendation is the categorical outcome derived from overall confidence.
type Recommendation string

const (
	RecommendYes   Recommendation = "Yes"
	RecommendMaybe Recommendation = "Maybe"
	RecommendNo    Recommendation = "No"
)

// Headline returns the display headline for a recommendation.
func (r Recommendation) Headline() string {
	switch r {
	case RecommendYes:
		return "Highly Recommended"
	case RecommendMaybe:
		return "Proceed with Caution"
	case RecommendNo:
		return "Not Recommended Yet"
	default:
		return string(r)
	}
}

// SectionScore is the blended score for one catalog section.
type SectionScore struct {
	SectionID      string  `json:"sectionId" yaml:"sectionId"`
	Name           string  `json:"name" yaml:"name"`
	Score          float64 `json:"score" yaml:"score"`
	MaxScore       float64 `json:"maxScore" yaml:"maxScore"`
	Percentage     int     `json:"percentage" yaml:"percentage"`
	Interpretation string  `json:"interpretation" yaml:"interpretation"`
}

// WISCARScores holds the six readiness subscores, each in [0, 100].
type WISCARScores struct {
	Will               int `json:"will" yaml:"will"`
	Interest           int `json:"interest" yaml:"interest"`
	Skill              int `json:"skill" yaml:"skill"`
	CognitiveReadiness int `json:"cognitiveReadiness" yaml:"cognitiveReadiness"`
	AbilityToLearn     int `json:"abilityToLearn" yaml:"abilityToLearn"`
	RealWorldAlignment int `json:"realWorldAlignment" yaml:"realWorldAlignment"`
}

// Get returns the subscore for a dimension.
func (w WISCARScores) Get(d catalog.Dimension) int {
	switch d {
	case catalog.DimensionWill:
		return w.Will
	case catalog.DimensionInterest:
		return w.Interest
	case catalog.DimensionSkill:
		return w.Skill
	case catalog.DimensionCognitiveReadiness:
		return w.CognitiveReadiness
	case catalog.DimensionAbilityToLearn:
		return w.AbilityToLearn
	case catalog.DimensionRealWorldAlignment:
		return w.RealWorldAlignment
	default:
		return 0
	}
}

// Average returns the unrounded equal-weight mean of the six subscores.
func (w WISCARScores) Average() float64 {
	sum := 0
	for _, d := range catalog.AllDimensions() {
		sum += w.Get(d)
	}
	return float64(sum) / float64(len(catalog.AllDimensions()))
}

// CareerRole is a candidate role ranked by match.
type CareerRole struct {
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	MatchPercent int    `json:"matchPercent" yaml:"matchPercent"`
}

// LearningPhase is one step of the suggested learning plan.
type LearningPhase struct {
	Phase     string   `json:"phase" yaml:"phase"`
	Topics    []string `json:"topics" yaml:"topics"`
	Timeframe string   `json:"timeframe" yaml:"timeframe"`
}

// Result is the full output of one scoring call. It is rebuilt from the
// answers on every call and never updated in place.
type Result struct {
	PsychFitScore     int             `json:"psychFitScore" yaml:"psychFitScore"`
	TechScore         int             `json:"techScore" yaml:"techScore"`
	WISCAR            WISCARScores    `json:"wiscarScores" yaml:"wiscarScores"`
	OverallConfidence int             `json:"overallConfidence" yaml:"overallConfidence"`
	Recommendation    Recommendation  `json:"recommendation" yaml:"recommendation"`
	Reasoning         string          `json:"reasoning" yaml:"reasoning"`
	NextSteps         []string        `json:"nextSteps" yaml:"nextSteps"`
	SkillGaps         []string        `json:"skillGaps" yaml:"skillGaps"`
	CareerRoles       []CareerRole    `json:"careerRoles" yaml:"careerRoles"`
	LearningPath      []LearningPhase `json:"learningPath" yaml:"learningPath"`
	SectionScores     []SectionScore  `json:"sectionScores" yaml:"sectionScores"`
}
