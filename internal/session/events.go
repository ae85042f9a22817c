package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathfinder/internal/scoring"
)

// Event is an input to Apply.
type Event interface {
	event()
}

// Start leaves the intro and shows the first question.
type Start struct {
	At        time.Time
	SessionID string
}

// Answered records an answer, replacing any earlier answer for the same id.
type Answered struct {
	Answer scoring.Answer
}

// Next moves to the following question, or finishes on the last one.
type Next struct {
	At time.Time
}

// Previous moves to the preceding question. No-op on the first.
type Previous struct {
	At time.Time
}

// Finish scores the collected answers and shows the result.
type Finish struct {
	At time.Time
}

// Restart discards everything and returns to the intro under a new
// session id.
type Restart struct {
	At        time.Time
	SessionID string
}

func (Start) event()    {}
func (Answered) event() {}
func (Next) event()     {}
func (Previous) event() {}
func (Finish) event()   {}
func (Restart) event()  {}

// NewStart returns a Start event with a freshly generated session id.
func NewStart(at time.Time) Start {
	return Start{At: at, SessionID: uuid.New().String()}
}

// NewRestart returns a Restart event with a freshly generated session id.
func NewRestart(at time.Time) Restart {
	return Restart{At: at, SessionID: uuid.New().String()}
}
