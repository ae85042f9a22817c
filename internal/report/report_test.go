package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

var generated = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strongAnswers() []scoring.Answer {
	var answers []scoring.Answer
	for _, q := range catalog.AllQuestions() {
		v := q.CorrectAnswer
		if q.Type == catalog.TypeLikert {
			v = catalog.Number(float64(q.ScaleMax()))
		}
		answers = append(answers, scoring.Answer{QuestionID: q.ID, Value: v})
	}
	return answers
}

func testReport() Report {
	strong := scoring.Score(strongAnswers())
	empty := scoring.Score(nil)
	return New("v0.1.0", generated,
		NewEntry("ada", "ada.json", 24, strong),
		NewEntry("", "blank.yaml", 0, empty),
	)
}

func render(t *testing.T, format string, opts Options) string {
	t.Helper()
	f, err := NewFormatter(format, opts)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, testReport()))
	return buf.String()
}

func TestNew_StampsHeader(t *testing.T) {
	r := testReport()
	assert.Equal(t, Tool, r.Tool)
	assert.Equal(t, catalog.Version, r.CatalogVersion)
	assert.Len(t, r.Entries, 2)
	assert.NotEqual(t, r.Entries[0].ID, r.Entries[1].ID)
}

func TestNewFormatter_Unsupported(t *testing.T) {
	_, err := NewFormatter("xml", Options{})
	assert.EqualError(t, err, "unsupported format: xml")
}

func TestNewFormatter_AllFormats(t *testing.T) {
	for _, format := range Formats() {
		f, err := NewFormatter(format, Options{})
		require.NoError(t, err, format)
		assert.NotNil(t, f, format)
	}
}

func TestJSONFormatter_UsesResultFieldNames(t *testing.T) {
	out := render(t, FormatJSON, Options{})

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	entries := decoded["entries"].([]any)
	require.Len(t, entries, 2)
	result := entries[0].(map[string]any)["result"].(map[string]any)
	for _, key := range []string{
		"psychFitScore", "techScore", "wiscarScores", "overallConfidence",
		"recommendation", "reasoning", "nextSteps", "skillGaps",
		"careerRoles", "learningPath", "sectionScores",
	} {
		assert.Contains(t, result, key)
	}
	assert.Equal(t, "Yes", result["recommendation"])
	assert.EqualValues(t, 100, result["overallConfidence"])

	blank := entries[1].(map[string]any)["result"].(map[string]any)
	assert.IsType(t, []any{}, blank["skillGaps"], "skill gaps serialize as an array")
}

func TestYAMLFormatter_RoundTrips(t *testing.T) {
	out := render(t, FormatYAML, Options{})

	var decoded Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Entries, 2)
	assert.Equal(t, "ada", decoded.Entries[0].Respondent)
	assert.Equal(t, scoring.RecommendYes, decoded.Entries[0].Result.Recommendation)
	assert.Equal(t, scoring.RecommendNo, decoded.Entries[1].Result.Recommendation)
	assert.True(t, decoded.GeneratedAt.Equal(generated))
}

func TestMarkdownFormatter(t *testing.T) {
	out := render(t, FormatMarkdown, Options{Verbose: true})

	assert.True(t, strings.HasPrefix(out, "# Quantum Career Readiness Report"))
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "| ada | 100% | Highly Recommended |")
	assert.Contains(t, out, "## blank.yaml")
	assert.Contains(t, out, "| Real-world Alignment | 100% |")
	assert.Contains(t, out, "### Sections")
	assert.Contains(t, out, "- **Quantum Software Developer** (90% match)")
	assert.Contains(t, out, "1. **Practical Development** (4-8 months): Qiskit Programming")
}

func TestMarkdownFormatter_SingleEntryHasNoSummary(t *testing.T) {
	r := New("v0.1.0", generated, NewEntry("solo", "", 0, scoring.Score(nil)))
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(false).Format(&buf, r))
	assert.NotContains(t, buf.String(), "## Summary")
	assert.NotContains(t, buf.String(), "### Sections")
	assert.Contains(t, buf.String(), "### Skill Gaps")
}

func TestConsoleFormatter(t *testing.T) {
	out := render(t, FormatConsole, Options{Width: 100, Verbose: true})

	for _, want := range []string{
		"Highly Recommended: 100% confidence",
		"Not Recommended Yet: 0% confidence",
		"WISCAR Profile",
		"Cognitive Readiness",
		"Quantum Research Scientist",
		"Foundation Building",
		"Needs Improvement",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderResult_DefaultWidth(t *testing.T) {
	out := RenderResult(scoring.Score(nil), 0, false)
	assert.Contains(t, out, "Learning Path")
	assert.NotContains(t, out, "Sections")
}
