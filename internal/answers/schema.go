package answers

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://pathfinder/answers.json"

// documentSchema checks shape only. Unknown question ids and unexpected
// value kinds for a question are left to the scoring engine.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["answers"],
  "properties": {
    "catalogVersion": {"type": "string"},
    "respondent": {"type": "string"},
    "answers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["questionId", "value"],
        "properties": {
          "questionId": {"type": "string", "minLength": 1},
          "value": {"type": ["number", "string", "null"]}
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func documentValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// validateShape checks a decoded document against the schema. The input
// must already be in JSON types.
func validateShape(parsed any) error {
	v, err := documentValidator()
	if err != nil {
		return err
	}
	if err := v.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
