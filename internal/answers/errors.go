package answers

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when a document parses but holds no answers.
var ErrEmptyDocument = errors.New("document contains no answers")

// ErrNoMatches is returned when a glob pattern matches nothing.
var ErrNoMatches = errors.New("pattern matched no files")

// DocumentError ties a load failure to the document it came from.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
