// Package answers loads answer documents for batch scoring.
package answers

import (
	"path/filepath"
	"strings"

	"github.com/abhisek/pathfinder/internal/scoring"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

// Format is the encoding of an answer document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a path's extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is one respondent's answers.
type Document struct {
	CatalogVersion string           `json:"catalogVersion,omitempty" yaml:"catalogVersion,omitempty"`
	Respondent     string           `json:"respondent,omitempty" yaml:"respondent,omitempty"`
	Answers        []scoring.Answer `json:"answers" yaml:"answers"`

	// Path is where the document was read from.
	Path string `json:"-" yaml:"-"`
}

// Name returns the respondent, falling back to the document path.
func (d *Document) Name() string {
	if d.Respondent != "" {
		return d.Respondent
	}
	if d.Path == StdinPath {
		return "stdin"
	}
	return d.Path
}

// Collected returns the answers with duplicate question ids collapsed. A
// later answer replaces an earlier one in place.
func (d *Document) Collected() []scoring.Answer {
	out := make([]scoring.Answer, 0, len(d.Answers))
	pos := make(map[string]int, len(d.Answers))
	for _, a := range d.Answers {
		if i, ok := pos[a.QuestionID]; ok {
			out[i] = a
			continue
		}
		pos[a.QuestionID] = len(out)
		out = append(out, a)
	}
	return out
}
