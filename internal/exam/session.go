package exam

import (
	"time"

	"github.com/prepdrill/prepdrill/internal/pool"
)

// Status is the exam session lifecycle state. Completed and abandoned
// are terminal; every transition is checked by the simulator.
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
	StatusAbandoned  Status = "abandoned"
)

// terminal reports whether no further transitions are possible.
func (s Status) terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// Answer is the learner's stored response for one item. Selected stays
// nil until the first answer call; repeated calls overwrite it (last
// write wins) while time spent accumulates.
type Answer struct {
	Selected     *int
	TimeSpentSec int
	Flagged      bool
}

// Session is one active exam attempt. It is owned by the Simulator and
// becomes a Result on submit; the session itself is then discarded.
type Session struct {
	ID               string
	StartTime        time.Time
	EndTime          *time.Time
	Status           Status
	Items            []pool.Item
	Answers          map[string]*Answer
	CurrentIndex     int
	TimeLimitSec     int
	TimeRemainingSec int
}

// elapsedSec is wall time consumed so far according to the countdown.
func (s *Session) elapsedSec() int {
	e := s.TimeLimitSec - s.TimeRemainingSec
	if e < 0 {
		return 0
	}
	return e
}

// Answered returns how many items have a selection.
func (s *Session) Answered() int {
	n := 0
	for _, a := range s.Answers {
		if a.Selected != nil {
			n++
		}
	}
	return n
}

// Flagged returns the IDs of flagged items in presentation order.
func (s *Session) Flagged() []string {
	var out []string
	for _, it := range s.Items {
		if a := s.Answers[it.ID]; a != nil && a.Flagged {
			out = append(out, it.ID)
		}
	}
	return out
}

// Config sizes an exam. Zero fields fall back to the profile's
// full-length exam shape.
type Config struct {
	Questions    int
	TimeLimitMin int
}
