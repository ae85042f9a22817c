package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
	"github.com/abhisek/pathfinder/internal/ui/components"
	"github.com/abhisek/pathfinder/internal/ui/theme"
)

// DefaultWidth is the console width used when none is configured.
const DefaultWidth = 80

// ConsoleFormatter renders styled text for terminals.
type ConsoleFormatter struct {
	width   int
	verbose bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(width int, verbose bool) *ConsoleFormatter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &ConsoleFormatter{width: width, verbose: verbose}
}

// Format writes every entry, separated by a rule.
func (f *ConsoleFormatter) Format(w io.Writer, r Report) error {
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", f.width))

	var b strings.Builder
	for i, e := range r.Entries {
		if i > 0 {
			b.WriteString("\n" + rule + "\n\n")
		}
		if name := entryName(e); name != e.ID {
			b.WriteString(theme.Heading.Render(name))
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d answered", e.Answered)))
			b.WriteString("\n\n")
		}
		b.WriteString(RenderResult(e.Result, f.width, f.verbose))
	}

	_, err := lipgloss.Fprint(w, b.String())
	return err
}

// RenderResult renders one result as styled text wrapped to width.
func RenderResult(res scoring.Result, width int, verbose bool) string {
	if width <= 0 {
		width = DefaultWidth
	}
	barWidth := min(width, 64)
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder

	b.WriteString(theme.ScoreColor(res.OverallConfidence).Render(headline(res)))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(theme.Body.Render(res.Reasoning)))
	b.WriteString("\n\n")

	section(&b, "Scores")
	b.WriteString(components.ScoreBar(padLabel("Psychological Fit"), res.PsychFitScore, barWidth).View() + "\n")
	b.WriteString(components.ScoreBar(padLabel("Technical Readiness"), res.TechScore, barWidth).View() + "\n")
	b.WriteString(components.ScoreBar(padLabel("Overall Confidence"), res.OverallConfidence, barWidth).View() + "\n\n")

	section(&b, "WISCAR Profile")
	for _, d := range catalog.AllDimensions() {
		b.WriteString(components.ScoreBar(padLabel(d.DisplayName()), res.WISCAR.Get(d), barWidth).View() + "\n")
	}
	b.WriteString("\n")

	if verbose {
		section(&b, "Sections")
		for _, s := range res.SectionScores {
			line := fmt.Sprintf("%-26s %3d%%  ", s.Name, s.Percentage)
			b.WriteString(theme.Body.Render(line))
			b.WriteString(theme.ScoreColor(s.Percentage).Render(s.Interpretation))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(res.SkillGaps) > 0 {
		section(&b, "Skill Gaps")
		bullets(&b, res.SkillGaps, wrap)
	}

	section(&b, "Next Steps")
	bullets(&b, res.NextSteps, wrap)

	section(&b, "Career Roles")
	for _, role := range res.CareerRoles {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %-36s ", role.Title)))
		b.WriteString(theme.ScoreColor(role.MatchPercent).Render(fmt.Sprintf("%3d%% match", role.MatchPercent)))
		b.WriteString("\n")
		if verbose {
			b.WriteString(theme.Hint.Render("    " + role.Description))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	section(&b, "Learning Path")
	for i, p := range res.LearningPath {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, p.Phase)))
		b.WriteString(theme.Hint.Render("  " + p.Timeframe))
		b.WriteString("\n")
		if verbose {
			b.WriteString(theme.Hint.Render("     " + strings.Join(p.Topics, " · ")))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString(theme.Heading.Render(title))
	b.WriteString("\n")
}

func bullets(b *strings.Builder, items []string, wrap lipgloss.Style) {
	for _, item := range items {
		b.WriteString(wrap.Render(theme.Body.Render("  • " + item)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// padLabel aligns bar labels to the widest dimension name.
func padLabel(s string) string {
	return fmt.Sprintf("%-22s", s)
}
