// Package scoring turns a list of answers into an assessment result. Every
// function here is pure: it reads only the static catalog and its
// arguments, so callers may score concurrently without coordination.
package scoring

import "github.com/abhisek/pathfinder/internal/catalog"

// Blend weights for overall confidence.
const (
	psychBlend  = 0.3
	techBlend   = 0.4
	wiscarBlend = 0.3
)

// Recommendation thresholds on overall confidence.
const (
	yesThreshold   = 70
	maybeThreshold = 50
)

// Score computes the full result for a possibly partial answer list.
// It never fails: unknown question ids are ignored and empty input scores 0.
func Score(answers []Answer) Result {
	lookup := NewLookup(answers)

	sections := SectionScores(lookup)
	psych := PsychFitScore(lookup)
	tech := TechScore(lookup)
	wiscar := WISCAR(lookup, tech)
	confidence := OverallConfidence(psych, tech, wiscar)
	rec := Recommend(confidence)
	gaps := SkillGaps(sections)

	return Result{
		PsychFitScore:     psych,
		TechScore:         tech,
		WISCAR:            wiscar,
		OverallConfidence: confidence,
		Recommendation:    rec,
		Reasoning:         Reasoning(psych, tech, wiscar, rec),
		NextSteps:         NextSteps(rec, sections),
		SkillGaps:         gaps,
		CareerRoles:       CareerRoles(confidence),
		LearningPath:      LearningPath(tech),
		SectionScores:     sections,
	}
}

// PsychFitScore scores every psychometric question by magnitude.
func PsychFitScore(answers Lookup) int {
	return WeightedScore(catalog.ByCategory(catalog.CategoryPsychometric), answers, ModeMagnitude)
}

// TechScore scores every aptitude, prerequisite and domain question by
// correctness.
func TechScore(answers Lookup) int {
	return WeightedScore(catalog.TechnicalQuestions(), answers, ModeCorrectness)
}

// OverallConfidence blends the already rounded top-level scores with the
// mean of the six WISCAR subscores.
func OverallConfidence(psychFit, tech int, wiscar WISCARScores) int {
	blended := float64(psychFit)*psychBlend + float64(tech)*techBlend + wiscar.Average()*wiscarBlend
	return clampPercent(roundHalfUp(blended))
}

// Recommend classifies a confidence value.
func Recommend(confidence int) Recommendation {
	switch {
	case confidence >= yesThreshold:
		return RecommendYes
	case confidence >= maybeThreshold:
		return RecommendMaybe
	default:
		return RecommendNo
	}
}
