package catalog

import (
	"fmt"
	"slices"
)

// catalog holds the static sections with precomputed indices.
type catalog struct {
	sections      []Section
	questions     []Question
	byID          map[string]int // question id -> canonical index
	sectionByID   map[string]int // section id -> section index
	sectionOf     []int          // canonical question index -> section index
	sectionStarts []int          // section index -> first canonical question index
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog flattens the sections into canonical order (section order,
// then within-section order) and builds the lookup tables.
func buildCatalog(sections []Section) *catalog {
	cat := &catalog{
		sections:    sections,
		byID:        make(map[string]int),
		sectionByID: make(map[string]int, len(sections)),
	}
	for si, s := range sections {
		cat.sectionByID[s.ID] = si
		cat.sectionStarts = append(cat.sectionStarts, len(cat.questions))
		for _, q := range s.Questions {
			if _, dup := cat.byID[q.ID]; !dup {
				cat.byID[q.ID] = len(cat.questions)
			}
			cat.questions = append(cat.questions, q)
			cat.sectionOf = append(cat.sectionOf, si)
		}
	}
	return cat
}

// AllQuestions returns every question in canonical order.
func AllQuestions() []Question {
	return slices.Clone(c.questions)
}

// QuestionCount returns the number of questions in the catalog.
func QuestionCount() int {
	return len(c.questions)
}

// Sections returns all sections in declaration order.
func Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		s.Questions = slices.Clone(s.Questions)
		out[i] = s
	}
	return out
}

// SectionAt returns the section at index i.
func SectionAt(i int) (Section, bool) {
	if i < 0 || i >= len(c.sections) {
		return Section{}, false
	}
	s := c.sections[i]
	s.Questions = slices.Clone(s.Questions)
	return s, true
}

// QuestionsInSection returns the questions of a section, or nil when the
// section id is unknown.
func QuestionsInSection(sectionID string) []Question {
	si, ok := c.sectionByID[sectionID]
	if !ok {
		return nil
	}
	return slices.Clone(c.sections[si].Questions)
}

// GetQuestion returns a question by ID, or error if not found.
func GetQuestion(id string) (Question, error) {
	q, ok := Lookup(id)
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return q, nil
}

// Lookup returns a question by ID.
func Lookup(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// QuestionAt returns the question at canonical index i.
func QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= len(c.questions) {
		return Question{}, false
	}
	return c.questions[i], true
}

// IndexOf returns the canonical index of a question id, or -1.
func IndexOf(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// SectionIndex maps a canonical question index to the index of the section
// containing it. Indices past the end map to the last section and negative
// indices to the first.
func SectionIndex(questionIndex int) int {
	if len(c.sectionOf) == 0 {
		return 0
	}
	if questionIndex < 0 {
		return 0
	}
	if questionIndex >= len(c.sectionOf) {
		return len(c.sections) - 1
	}
	return c.sectionOf[questionIndex]
}

// SectionStart returns the canonical index of the first question of section si.
func SectionStart(si int) int {
	if si < 0 || si >= len(c.sectionStarts) {
		return -1
	}
	return c.sectionStarts[si]
}

// Select returns the questions whose ids are in the given set, in canonical
// order. Unknown ids are ignored.
func Select(ids []string) []Question {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Question
	for _, q := range c.questions {
		if want[q.ID] {
			out = append(out, q)
		}
	}
	return out
}

// ByCategory returns the questions belonging to any of the given
// categories, in canonical order.
func ByCategory(cats ...Category) []Question {
	var out []Question
	for _, q := range c.questions {
		if slices.Contains(cats, q.Category) {
			out = append(out, q)
		}
	}
	return out
}

// TechnicalQuestions returns every question that counts toward the
// technical score.
func TechnicalQuestions() []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Category.IsTechnical() {
			out = append(out, q)
		}
	}
	return out
}
