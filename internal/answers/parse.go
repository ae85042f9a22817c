package answers

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes and shape-checks a single document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if raw == nil {
			return nil, ErrEmptyDocument
		}
		parsed, err := toJSONTypes(raw)
		if err != nil {
			return nil, err
		}
		if err := validateShape(parsed); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
	case FormatJSON:
		var parsed any
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		if err := validateShape(parsed); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if len(doc.Answers) == 0 {
		return nil, ErrEmptyDocument
	}
	return &doc, nil
}

// toJSONTypes converts a YAML-decoded tree into the types encoding/json
// produces, which is what the schema validator expects.
func toJSONTypes(raw any) (any, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize YAML: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("normalize YAML: %w", err)
	}
	return parsed, nil
}
