// Package report renders scoring results for the batch CLI and the results
// screen.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

// Tool is the name stamped into report headers.
const Tool = "pathfinder"

// Entry is one scored respondent.
type Entry struct {
	ID             string         `json:"id" yaml:"id"`
	Respondent     string         `json:"respondent,omitempty" yaml:"respondent,omitempty"`
	Source         string         `json:"source,omitempty" yaml:"source,omitempty"`
	CatalogVersion string         `json:"catalogVersion,omitempty" yaml:"catalogVersion,omitempty"`
	Answered       int            `json:"answered" yaml:"answered"`
	Result         scoring.Result `json:"result" yaml:"result"`
}

// NewEntry wraps a result with a fresh report id.
func NewEntry(respondent, source string, answered int, result scoring.Result) Entry {
	return Entry{
		ID:         uuid.New().String(),
		Respondent: respondent,
		Source:     source,
		Answered:   answered,
		Result:     result,
	}
}

// Report is a batch of scored entries.
type Report struct {
	Tool           string    `json:"tool" yaml:"tool"`
	Version        string    `json:"version" yaml:"version"`
	CatalogVersion string    `json:"catalogVersion" yaml:"catalogVersion"`
	GeneratedAt    time.Time `json:"generatedAt" yaml:"generatedAt"`
	Entries        []Entry   `json:"entries" yaml:"entries"`
}

// New builds a report stamped with the tool and catalog versions.
func New(version string, generatedAt time.Time, entries ...Entry) Report {
	return Report{
		Tool:           Tool,
		Version:        version,
		CatalogVersion: catalog.Version,
		GeneratedAt:    generatedAt,
		Entries:        entries,
	}
}

// Formatter writes a report in one output format.
type Formatter interface {
	Format(w io.Writer, r Report) error
}

// Supported output formats.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{FormatConsole, FormatJSON, FormatYAML, FormatMarkdown}
}

// Options tunes formatter output.
type Options struct {
	// Width is the console wrap width. Zero uses DefaultWidth.
	Width int

	// Verbose adds per-section breakdowns and learning path detail.
	Verbose bool
}

// NewFormatter returns the formatter for a format name.
func NewFormatter(format string, opts Options) (Formatter, error) {
	switch format {
	case FormatConsole:
		return NewConsoleFormatter(opts.Width, opts.Verbose), nil
	case FormatJSON:
		return NewJSONFormatter(true), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	case FormatMarkdown:
		return NewMarkdownFormatter(opts.Verbose), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
