package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks the seeded catalog for structural issues.
func Validate() error {
	return validateSections(c.sections, dimensionQuestions)
}

// validateSections performs all structural checks on the given sections.
// Returns a combined error describing all problems found, or nil if valid.
func validateSections(sections []Section, dims map[Dimension][]string) error {
	var errs []string

	idSet := make(map[string]bool)
	sectionIDs := make(map[string]bool, len(sections))

	for _, s := range sections {
		if sectionIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", s.ID))
		}
		sectionIDs[s.ID] = true
		if len(s.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no questions", s.ID))
		}

		for _, q := range s.Questions {
			if idSet[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
			}
			idSet[q.ID] = true

			prefix := fmt.Sprintf("question %q", q.ID)
			if q.Weight <= 0 {
				errs = append(errs, fmt.Sprintf("%s: weight must be > 0, got %g", prefix, q.Weight))
			}
			if !slices.Contains(AllCategories(), q.Category) {
				errs = append(errs, fmt.Sprintf("%s: unknown category %q", prefix, q.Category))
			}

			switch q.Type {
			case TypeLikert:
				if q.Scale < 0 {
					errs = append(errs, fmt.Sprintf("%s: scale must be > 0, got %d", prefix, q.Scale))
				}
			case TypeMultipleChoice:
				if len(q.Options) == 0 {
					errs = append(errs, fmt.Sprintf("%s: multiple-choice question has no options", prefix))
				}
				if q.CorrectAnswer.IsZero() {
					errs = append(errs, fmt.Sprintf("%s: multiple-choice question has no correct answer", prefix))
				} else if s, ok := q.CorrectAnswer.Str(); ok && !slices.Contains(q.Options, s) {
					errs = append(errs, fmt.Sprintf("%s: correct answer %q is not among the options", prefix, s))
				}
			case TypeTechnical:
			default:
				errs = append(errs, fmt.Sprintf("%s: unknown type %q", prefix, q.Type))
			}
		}
	}

	for _, d := range AllDimensions() {
		for _, id := range dims[d] {
			if !idSet[id] {
				errs = append(errs, fmt.Sprintf("dimension %q references nonexistent question %q", d, id))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
