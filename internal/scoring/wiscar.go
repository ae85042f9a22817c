package scoring

import "github.com/abhisek/pathfinder/internal/catalog"

// dimensionModes records how each curated dimension is scored. Skill is
// absent: it mirrors the technical score.
var dimensionModes = map[catalog.Dimension]Mode{
	catalog.DimensionWill:               ModeMagnitude,
	catalog.DimensionInterest:           ModeMagnitude,
	catalog.DimensionCognitiveReadiness: ModeCorrectness,
	catalog.DimensionAbilityToLearn:     ModeMagnitude,
	catalog.DimensionRealWorldAlignment: ModeMagnitude,
}

// WISCAR computes the six readiness subscores. techScore is passed in so
// Skill reuses the already computed technical score.
func WISCAR(answers Lookup, techScore int) WISCARScores {
	dim := func(d catalog.Dimension) int {
		return ScoreIDs(catalog.DimensionQuestionIDs(d), answers, dimensionModes[d])
	}
	return WISCARScores{
		Will:               dim(catalog.DimensionWill),
		Interest:           dim(catalog.DimensionInterest),
		Skill:              techScore,
		CognitiveReadiness: dim(catalog.DimensionCognitiveReadiness),
		AbilityToLearn:     dim(catalog.DimensionAbilityToLearn),
		RealWorldAlignment: dim(catalog.DimensionRealWorldAlignment),
	}
}
