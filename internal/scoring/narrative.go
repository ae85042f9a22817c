package scoring

import "strings"

// Reasoning builds the narrative explaining a recommendation. Strength and
// weakness blocks are omitted entirely when they have no clauses.
func Reasoning(psychFit, tech int, wiscar WISCARScores, rec Recommendation) string {
	var strengths, weaknesses []string

	if psychFit >= 70 {
		strengths = append(strengths, "strong psychological fit")
	} else if psychFit < 50 {
		weaknesses = append(weaknesses, "psychological misalignment")
	}

	if tech >= 70 {
		strengths = append(strengths, "solid technical foundation")
	} else if tech < 50 {
		weaknesses = append(weaknesses, "technical knowledge gaps")
	}

	if wiscar.Will >= 80 {
		strengths = append(strengths, "high motivation and grit")
	}
	if wiscar.Interest >= 80 {
		strengths = append(strengths, "genuine fascination with the field")
	}

	var b strings.Builder
	if len(strengths) > 0 {
		b.WriteString("Strengths: ")
		b.WriteString(strings.Join(strengths, ", "))
		b.WriteString(". ")
	}
	if len(weaknesses) > 0 {
		b.WriteString("Areas for development: ")
		b.WriteString(strings.Join(weaknesses, ", "))
		b.WriteString(". ")
	}
	b.WriteString(explanation(rec))
	return b.String()
}

func explanation(rec Recommendation) string {
	switch rec {
	case RecommendYes:
		return "Your profile shows strong alignment with quantum computing requirements."
	case RecommendMaybe:
		return "You have potential but should address key gaps before committing fully."
	case RecommendNo:
		return "Consider building stronger foundations before pursuing this path."
	default:
		return ""
	}
}

// weakSectionThreshold is the percentage below which a Maybe respondent
// gets a remediation step for the section.
const weakSectionThreshold = 60

// remediations maps section title fragments to canned steps. The first
// matching fragment wins; sections matching none produce no step.
var remediations = []struct {
	fragment string
	step     string
}{
	{"Foundation", "Strengthen mathematics and programming fundamentals"},
	{"Logic", "Practice logical reasoning and problem-solving"},
}

// NextSteps is a lookup table keyed by recommendation. Only the Maybe
// branch consults the section scores.
func NextSteps(rec Recommendation, sections []SectionScore) []string {
	switch rec {
	case RecommendYes:
		return []string{
			"Enroll in a quantum computing course or bootcamp",
			"Start learning Qiskit or Cirq framework",
			"Join quantum computing communities and forums",
		}
	case RecommendMaybe:
		var steps []string
		for _, s := range sections {
			if s.Percentage >= weakSectionThreshold {
				continue
			}
			for _, r := range remediations {
				if strings.Contains(s.Name, r.fragment) {
					steps = append(steps, r.step)
					break
				}
			}
		}
		return append(steps, "Complete introductory quantum physics course")
	default:
		return []string{
			"Build stronger foundation in mathematics and physics",
			"Develop programming skills in Python",
			"Explore related fields like classical AI/ML first",
		}
	}
}

// skillGapThreshold is the percentage below which a section is a gap.
const skillGapThreshold = 70

// SkillGaps lists the titles of sections scoring below 70, in section order.
func SkillGaps(sections []SectionScore) []string {
	gaps := []string{}
	for _, s := range sections {
		if s.Percentage < skillGapThreshold {
			gaps = append(gaps, s.Name)
		}
	}
	return gaps
}
