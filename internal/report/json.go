package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	indent bool
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(indent bool) *JSONFormatter {
	return &JSONFormatter{indent: indent}
}

// Format writes the report as a single JSON document.
func (f *JSONFormatter) Format(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	return nil
}
