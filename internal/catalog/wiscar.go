package catalog

// Dimension is one of the six WISCAR readiness dimensions.
type Dimension string

const (
	DimensionWill               Dimension = "will"
	DimensionInterest           Dimension = "interest"
	DimensionSkill              Dimension = "skill"
	DimensionCognitiveReadiness Dimension = "cognitiveReadiness"
	DimensionAbilityToLearn     Dimension = "abilityToLearn"
	DimensionRealWorldAlignment Dimension = "realWorldAlignment"
)

// AllDimensions returns the dimensions in WISCAR order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionWill,
		DimensionInterest,
		DimensionSkill,
		DimensionCognitiveReadiness,
		DimensionAbilityToLearn,
		DimensionRealWorldAlignment,
	}
}

// DisplayName returns a human-readable name for a dimension.
func (d Dimension) DisplayName() string {
	switch d {
	case DimensionWill:
		return "Will"
	case DimensionInterest:
		return "Interest"
	case DimensionSkill:
		return "Skill"
	case DimensionCognitiveReadiness:
		return "Cognitive Readiness"
	case DimensionAbilityToLearn:
		return "Ability to Learn"
	case DimensionRealWorldAlignment:
		return "Real-world Alignment"
	default:
		return string(d)
	}
}

// dimensionQuestions is the hand-curated join table between WISCAR
// dimensions and catalog question ids. It must be re-curated whenever the
// seed changes; Validate checks that every id still exists.
// Skill has no entry: it mirrors the technical score.
var dimensionQuestions = map[Dimension][]string{
	DimensionWill:               {"psych_2", "psych_5"},
	DimensionInterest:           {"psych_1", "psych_7"},
	DimensionCognitiveReadiness: {"apt_1", "apt_2", "apt_3", "apt_4", "apt_5"},
	DimensionAbilityToLearn:     {"psych_6"},
	DimensionRealWorldAlignment: {"psych_8"},
}

// DimensionQuestionIDs returns the question ids mapped to a dimension.
func DimensionQuestionIDs(d Dimension) []string {
	ids := dimensionQuestions[d]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
