package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is a respondent answer or a designated correct answer. It holds
// either a number (Likert ratings) or a string (selected options).
type Value struct {
	num     float64
	str     string
	numeric bool
	set     bool
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{num: f, numeric: true, set: true}
}

// Text returns a string Value.
func Text(s string) Value {
	return Value{str: s, set: true}
}

// IsZero reports whether the value was never assigned.
func (v Value) IsZero() bool {
	return !v.set
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.numeric
}

// Float returns the numeric payload and whether v is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.numeric
}

// Str returns the string payload and whether v is a string.
func (v Value) Str() (string, bool) {
	return v.str, v.set && !v.numeric
}

// Equal compares two values strictly: a number never equals a string,
// even when they print the same.
func (v Value) Equal(o Value) bool {
	if !v.set || !o.set || v.numeric != o.numeric {
		return false
	}
	if v.numeric {
		return v.num == o.num
	}
	return v.str == o.str
}

func (v Value) String() string {
	switch {
	case !v.set:
		return ""
	case v.numeric:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return v.str
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.numeric:
		return json.Marshal(v.num)
	default:
		return json.Marshal(v.str)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Value{}
	case float64:
		*v = Number(t)
	case string:
		*v = Text(t)
	default:
		return fmt.Errorf("value must be a number or a string, got %T", raw)
	}
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	switch {
	case !v.set:
		return nil, nil
	case v.numeric:
		return v.num, nil
	default:
		return v.str, nil
	}
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a scalar", node.Line)
	}
	switch node.Tag {
	case "!!null":
		*v = Value{}
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: parse number %q: %w", node.Line, node.Value, err)
		}
		*v = Number(f)
	default:
		*v = Text(node.Value)
	}
	return nil
}
