package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

// MarkdownFormatter formats output as Markdown.
type MarkdownFormatter struct {
	verbose bool
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(verbose bool) *MarkdownFormatter {
	return &MarkdownFormatter{verbose: verbose}
}

// Format writes the report as a Markdown document.
func (f *MarkdownFormatter) Format(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString("# Quantum Career Readiness Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Catalog:** %s\n\n", r.CatalogVersion))

	if len(r.Entries) > 1 {
		b.WriteString("## Summary\n\n")
		b.WriteString("| Respondent | Confidence | Recommendation |\n")
		b.WriteString("|------------|------------|----------------|\n")
		for _, e := range r.Entries {
			b.WriteString(fmt.Sprintf("| %s | %d%% | %s |\n",
				entryName(e), e.Result.OverallConfidence, e.Result.Recommendation.Headline()))
		}
		b.WriteString("\n")
	}

	for _, e := range r.Entries {
		f.writeEntry(&b, e)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *MarkdownFormatter) writeEntry(b *strings.Builder, e Entry) {
	res := e.Result

	b.WriteString(fmt.Sprintf("## %s\n\n", entryName(e)))
	b.WriteString(fmt.Sprintf("**%s** (%s) with %d%% overall confidence.\n\n",
		res.Recommendation.Headline(), res.Recommendation, res.OverallConfidence))
	b.WriteString(res.Reasoning + "\n\n")

	b.WriteString("| Metric | Score |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Psychological Fit | %d%% |\n", res.PsychFitScore))
	b.WriteString(fmt.Sprintf("| Technical Readiness | %d%% |\n", res.TechScore))
	for _, d := range catalog.AllDimensions() {
		b.WriteString(fmt.Sprintf("| %s | %d%% |\n", d.DisplayName(), res.WISCAR.Get(d)))
	}
	b.WriteString("\n")

	if f.verbose {
		b.WriteString("### Sections\n\n")
		b.WriteString("| Section | Score | Rating |\n")
		b.WriteString("|---------|-------|--------|\n")
		for _, s := range res.SectionScores {
			b.WriteString(fmt.Sprintf("| %s | %d%% | %s |\n", s.Name, s.Percentage, s.Interpretation))
		}
		b.WriteString("\n")
	}

	writeList(b, "Skill Gaps", res.SkillGaps)
	writeList(b, "Next Steps", res.NextSteps)

	b.WriteString("### Career Roles\n\n")
	for _, role := range res.CareerRoles {
		b.WriteString(fmt.Sprintf("- **%s** (%d%% match): %s\n", role.Title, role.MatchPercent, role.Description))
	}
	b.WriteString("\n")

	b.WriteString("### Learning Path\n\n")
	for i, p := range res.LearningPath {
		b.WriteString(fmt.Sprintf("%d. **%s** (%s)", i+1, p.Phase, p.Timeframe))
		if f.verbose {
			b.WriteString(": " + strings.Join(p.Topics, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("### %s\n\n", title))
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}

func entryName(e Entry) string {
	switch {
	case e.Respondent != "":
		return e.Respondent
	case e.Source != "":
		return e.Source
	default:
		return e.ID
	}
}

// headline is shared by the text renderers.
func headline(res scoring.Result) string {
	return fmt.Sprintf("%s: %d%% confidence", res.Recommendation.Headline(), res.OverallConfidence)
}
