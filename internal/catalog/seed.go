package catalog

// Version identifies the question set. Answer documents record the version
// they were collected against.
const Version = "v1.0.0"

func init() {
	c = buildCatalog(seedSections())
}

func likert(id string, topic, prompt string, weight float64) Question {
	return Question{
		ID:       id,
		Type:     TypeLikert,
		Category: CategoryPsychometric,
		Topic:    topic,
		Prompt:   prompt,
		Scale:    DefaultScale,
		Weight:   weight,
	}
}

func choice(id string, cat Category, topic, prompt string, options []string, correct string, weight float64) Question {
	return Question{
		ID:            id,
		Type:          TypeMultipleChoice,
		Category:      cat,
		Topic:         topic,
		Prompt:        prompt,
		Options:       options,
		CorrectAnswer: Text(correct),
		Weight:        weight,
	}
}

func seedSections() []Section {
	return []Section{
		{
			ID:               "psychometric",
			Title:            "Personality & Motivation",
			Description:      "Discover your psychological fit for quantum computing",
			Icon:             "🧠",
			EstimatedMinutes: 8,
			Questions: []Question{
				likert("psych_1", "Interest",
					"I'm fascinated by quantum mechanics and computing intersections.", 1.2),
				likert("psych_2", "Motivation",
					"I would pursue quantum computing even if it's difficult and takes years to master.", 1.5),
				likert("psych_3", "Personality",
					"I enjoy working with abstract concepts that don't have physical representations.", 1.0),
				likert("psych_4", "Cognitive Style",
					"I prefer precise, mathematical tasks over open-ended creative projects.", 1.1),
				likert("psych_5", "Grit",
					"I keep working at problems even when I fail repeatedly for months.", 1.4),
				likert("psych_6", "Growth Mindset",
					"I believe intelligence and technical skills can be developed through effort.", 1.0),
				likert("psych_7", "Research Orientation",
					"I enjoy reading research papers and staying current with scientific literature.", 1.2),
				likert("psych_8", "Uncertainty Tolerance",
					"I'm comfortable working in fields where the technology is still emerging and uncertain.", 1.3),
			},
		},
		{
			ID:               "aptitude",
			Title:            "Logic & Reasoning",
			Description:      "Test your analytical and problem-solving abilities",
			Icon:             "🧮",
			EstimatedMinutes: 10,
			Questions: []Question{
				choice("apt_1", CategoryAptitude, "Numerical Reasoning",
					"If a quantum circuit has 3 qubits, how many possible states can it represent simultaneously?",
					[]string{"3", "6", "8", "16"}, "8", 1.0),
				choice("apt_2", CategoryAptitude, "Abstract Logic",
					"Which pattern best represents quantum superposition?",
					[]string{
						"A coin that shows heads OR tails",
						"A coin that shows heads AND tails simultaneously",
						"A coin that alternates between heads and tails",
						"A coin that shows neither heads nor tails",
					}, "A coin that shows heads AND tails simultaneously", 1.2),
				choice("apt_3", CategoryAptitude, "Pattern Recognition",
					"In the sequence 2, 4, 16, 256, what is the next number?",
					[]string{"512", "1024", "65536", "131072"}, "65536", 1.0),
				choice("apt_4", CategoryAptitude, "Deductive Reasoning",
					"If all quantum gates are reversible, and NOT gate is a quantum gate, then:",
					[]string{
						"NOT gate is irreversible",
						"NOT gate is reversible",
						"NOT gate may or may not be reversible",
						"The premise is incorrect",
					}, "NOT gate is reversible", 1.1),
				choice("apt_5", CategoryAptitude, "Mathematical Logic",
					"What is the probability of measuring |0⟩ from the state (1/√2)|0⟩ + (1/√2)|1⟩?",
					[]string{"0", "1/2", "1/√2", "1"}, "1/2", 1.3),
			},
		},
		{
			ID:               "prerequisites",
			Title:            "Foundation Knowledge",
			Description:      "Assess your readiness in core prerequisites",
			Icon:             "📚",
			EstimatedMinutes: 8,
			Questions: []Question{
				choice("prereq_1", CategoryPrerequisites, "Linear Algebra",
					"What is the result of multiplying a 2×3 matrix by a 3×2 matrix?",
					[]string{"2×2 matrix", "3×3 matrix", "2×3 matrix", "Cannot multiply"}, "2×2 matrix", 1.2),
				choice("prereq_2", CategoryPrerequisites, "Probability",
					"If you flip a fair coin 3 times, what's the probability of getting exactly 2 heads?",
					[]string{"1/8", "2/8", "3/8", "4/8"}, "3/8", 1.0),
				choice("prereq_3", CategoryPrerequisites, "Python Programming",
					"Which Python data structure would be most appropriate for representing a quantum state vector?",
					[]string{"list", "tuple", "numpy array", "dictionary"}, "numpy array", 1.1),
				choice("prereq_4", CategoryPrerequisites, "Complex Numbers",
					"What is the magnitude of the complex number 3 + 4i?",
					[]string{"3", "4", "5", "7"}, "5", 1.2),
				choice("prereq_5", CategoryPrerequisites, "Boolean Logic",
					"What is the result of XOR(1, 1)?",
					[]string{"0", "1", "True", "False"}, "0", 1.0),
			},
		},
		{
			ID:               "quantum",
			Title:            "Quantum Computing",
			Description:      "Test your understanding of quantum concepts",
			Icon:             "⚛️",
			EstimatedMinutes: 12,
			Questions: []Question{
				choice("quantum_1", CategoryDomainSpecific, "Quantum Basics",
					"What is the fundamental unit of quantum information?",
					[]string{"bit", "byte", "qubit", "quantum"}, "qubit", 1.0),
				choice("quantum_2", CategoryDomainSpecific, "Quantum Gates",
					"Which gate creates an equal superposition of |0⟩ and |1⟩?",
					[]string{"Pauli-X", "Pauli-Z", "Hadamard", "CNOT"}, "Hadamard", 1.2),
				choice("quantum_3", CategoryDomainSpecific, "Quantum Algorithms",
					"Shor's algorithm is primarily used for:",
					[]string{"Database search", "Integer factorization", "Sorting numbers", "Graph traversal"},
					"Integer factorization", 1.3),
				choice("quantum_4", CategoryDomainSpecific, "Quantum Entanglement",
					"When two qubits are entangled, measuring one qubit:",
					[]string{
						"Has no effect on the other",
						"Instantly determines the state of the other",
						"Destroys the other qubit",
						"Creates a new qubit",
					}, "Instantly determines the state of the other", 1.2),
				choice("quantum_5", CategoryDomainSpecific, "Quantum Advantage",
					"Quantum computers are expected to outperform classical computers primarily in:",
					[]string{
						"All computational tasks",
						"Specific problems like cryptography and optimization",
						"Basic arithmetic operations",
						"Data storage capacity",
					}, "Specific problems like cryptography and optimization", 1.1),
				choice("quantum_6", CategoryDomainSpecific, "Quantum Programming",
					"Which is a popular framework for quantum programming?",
					[]string{"TensorFlow", "React", "Qiskit", "Django"}, "Qiskit", 1.0),
			},
		},
	}
}
