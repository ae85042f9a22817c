package scoring

import "sort"

// roleTemplate is a career role whose match trails confidence by offset.
type roleTemplate struct {
	title       string
	description string
	offset      int
}

var roleTemplates = []roleTemplate{
	{"Quantum Software Developer", "Build quantum algorithms and applications using frameworks like Qiskit", 10},
	{"Quantum Research Scientist", "Conduct research on quantum algorithms and theoretical aspects", 20},
	{"Quantum Machine Learning Engineer", "Apply quantum computing to machine learning problems", 15},
	{"Quantum Systems Analyst", "Analyze and optimize quantum computing systems and workflows", 5},
}

// CareerRoles ranks the fixed role templates by match, highest first.
// Ties keep template order.
func CareerRoles(confidence int) []CareerRole {
	roles := make([]CareerRole, 0, len(roleTemplates))
	for _, t := range roleTemplates {
		roles = append(roles, CareerRole{
			Title:        t.title,
			Description:  t.description,
			MatchPercent: max(0, confidence-t.offset),
		})
	}
	sort.SliceStable(roles, func(i, j int) bool {
		return roles[i].MatchPercent > roles[j].MatchPercent
	})
	return roles
}

var (
	phaseFoundation = LearningPhase{
		Phase:     "Foundation Building",
		Topics:    []string{"Linear Algebra", "Complex Numbers", "Python Programming", "Probability Theory"},
		Timeframe: "3-6 months",
	}
	phaseFundamentals = LearningPhase{
		Phase:     "Quantum Fundamentals",
		Topics:    []string{"Quantum Mechanics Basics", "Qubits and Superposition", "Quantum Gates", "Quantum Circuits"},
		Timeframe: "2-4 months",
	}
	phasePractical = LearningPhase{
		Phase:     "Practical Development",
		Topics:    []string{"Qiskit Programming", "Quantum Algorithms", "Real Hardware Experiments", "Quantum Error Correction"},
		Timeframe: "4-8 months",
	}
	phaseSpecialization = LearningPhase{
		Phase:     "Specialization",
		Topics:    []string{"Quantum ML", "Quantum Cryptography", "Industry Applications", "Research Contributions"},
		Timeframe: "6-12 months",
	}
)

// LearningPath builds the phased plan. Low technical scores prepend
// foundation and fundamentals phases; both fire below 40.
func LearningPath(techScore int) []LearningPhase {
	var path []LearningPhase
	if techScore < 40 {
		path = append(path, clonePhase(phaseFoundation))
	}
	if techScore < 70 {
		path = append(path, clonePhase(phaseFundamentals))
	}
	return append(path, clonePhase(phasePractical), clonePhase(phaseSpecialization))
}

func clonePhase(p LearningPhase) LearningPhase {
	p.Topics = append([]string(nil), p.Topics...)
	return p
}
