package exam

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/selector"
)

var (
	// ErrInvalidTransition is returned when an operation is not legal in
	// the session's current status.
	ErrInvalidTransition = errors.New("invalid exam state transition")

	// ErrSessionActive is returned by Start while a session is running.
	ErrSessionActive = errors.New("an exam session is already active")

	// ErrNoSession is returned when an operation needs an active session
	// and none exists.
	ErrNoSession = errors.New("no active exam session")

	// ErrUnknownItem is returned for answers to items not in the session.
	ErrUnknownItem = errors.New("item is not part of this exam session")
)

// maxHistory bounds retained exam results; the oldest are dropped first.
const maxHistory = 20

// Simulator runs timed exam sessions and keeps a bounded history of
// results. At most one session is active at a time.
type Simulator struct {
	profile  profile.Profile
	selector *selector.Selector
	active   *Session
	history  []Result
}

// NewSimulator builds a simulator that samples exam sets with sel.
func NewSimulator(p profile.Profile, sel *selector.Selector) *Simulator {
	return &Simulator{profile: p, selector: sel}
}

// Active returns the running or paused session, or nil.
func (m *Simulator) Active() *Session { return m.active }

// History returns retained results, oldest first.
func (m *Simulator) History() []Result { return m.history }

// Start samples an exam set from items and opens a new session. cfg
// fields left zero fall back to the profile's full-length exam shape.
func (m *Simulator) Start(items []pool.Item, cfg Config, now time.Time) (*Session, error) {
	if m.active != nil && !m.active.Status.terminal() {
		return nil, ErrSessionActive
	}

	questions := cfg.Questions
	if questions <= 0 {
		questions = m.profile.ExamQuestions
	}
	limitMin := cfg.TimeLimitMin
	if limitMin <= 0 {
		limitMin = m.profile.ExamTimeLimitMin
	}

	set, shortfall := m.selector.SampleExamSet(items, questions)
	if len(set) == 0 {
		return nil, fmt.Errorf("start exam: no items available")
	}
	_ = shortfall // a short set is still a valid, smaller exam

	s := &Session{
		ID:               uuid.NewString(),
		StartTime:        now,
		Status:           StatusInProgress,
		Items:            set,
		Answers:          make(map[string]*Answer, len(set)),
		TimeLimitSec:     limitMin * 60,
		TimeRemainingSec: limitMin * 60,
	}
	m.active = s
	return s, nil
}

// Answer records a selection for an item. Re-answering overwrites the
// previous selection while time spent keeps accumulating.
func (m *Simulator) Answer(itemID string, selected int, timeSpentSec int) error {
	s := m.active
	if s == nil {
		return ErrNoSession
	}
	if s.Status != StatusInProgress {
		return fmt.Errorf("answer in status %q: %w", s.Status, ErrInvalidTransition)
	}

	idx := -1
	for i, it := range s.Items {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("answer %q: %w", itemID, ErrUnknownItem)
	}

	a := s.Answers[itemID]
	if a == nil {
		a = &Answer{}
		s.Answers[itemID] = a
	}
	sel := selected
	a.Selected = &sel
	if timeSpentSec > 0 {
		a.TimeSpentSec += timeSpentSec
	}
	if idx+1 > s.CurrentIndex {
		s.CurrentIndex = idx + 1
		if s.CurrentIndex > len(s.Items) {
			s.CurrentIndex = len(s.Items)
		}
	}
	return nil
}

// ToggleFlag flips the review flag on an item.
func (m *Simulator) ToggleFlag(itemID string) error {
	s := m.active
	if s == nil {
		return ErrNoSession
	}
	if s.Status != StatusInProgress {
		return fmt.Errorf("flag in status %q: %w", s.Status, ErrInvalidTransition)
	}
	found := false
	for _, it := range s.Items {
		if it.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("flag %q: %w", itemID, ErrUnknownItem)
	}
	a := s.Answers[itemID]
	if a == nil {
		a = &Answer{}
		s.Answers[itemID] = a
	}
	a.Flagged = !a.Flagged
	return nil
}

// Tick updates the countdown. The clock only moves forward: a value
// above the current remaining time is ignored, a negative value clamps
// to zero, and reaching zero auto-submits the session. The returned
// result is non-nil only on auto-submit.
func (m *Simulator) Tick(remainingSec int, now time.Time) (*Result, error) {
	s := m.active
	if s == nil {
		return nil, ErrNoSession
	}
	if s.Status != StatusInProgress {
		return nil, fmt.Errorf("tick in status %q: %w", s.Status, ErrInvalidTransition)
	}
	if remainingSec < 0 {
		remainingSec = 0
	}
	if remainingSec > s.TimeRemainingSec {
		return nil, nil
	}
	s.TimeRemainingSec = remainingSec
	if remainingSec > 0 {
		return nil, nil
	}
	r, err := m.Submit(now)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Pause suspends the countdown. Only an in-progress session can pause.
func (m *Simulator) Pause() error {
	s := m.active
	if s == nil {
		return ErrNoSession
	}
	if s.Status != StatusInProgress {
		return fmt.Errorf("pause in status %q: %w", s.Status, ErrInvalidTransition)
	}
	s.Status = StatusPaused
	return nil
}

// Resume restarts a paused session.
func (m *Simulator) Resume() error {
	s := m.active
	if s == nil {
		return ErrNoSession
	}
	if s.Status != StatusPaused {
		return fmt.Errorf("resume in status %q: %w", s.Status, ErrInvalidTransition)
	}
	s.Status = StatusInProgress
	return nil
}

// Submit finishes the session and scores it. Unanswered items count as
// incorrect. Only an in-progress session can submit; a second call
// fails because the session is already gone.
func (m *Simulator) Submit(now time.Time) (Result, error) {
	s := m.active
	if s == nil {
		return Result{}, fmt.Errorf("submit: %w", ErrInvalidTransition)
	}
	if s.Status != StatusInProgress {
		return Result{}, fmt.Errorf("submit in status %q: %w", s.Status, ErrInvalidTransition)
	}

	s.Status = StatusCompleted
	end := now
	s.EndTime = &end
	r := score(m.profile, s, now)

	m.active = nil
	m.record(r)
	return r, nil
}

// Abandon discards the session without scoring it. Allowed from
// in-progress or paused.
func (m *Simulator) Abandon() error {
	s := m.active
	if s == nil {
		return ErrNoSession
	}
	if s.Status.terminal() {
		return fmt.Errorf("abandon in status %q: %w", s.Status, ErrInvalidTransition)
	}
	s.Status = StatusAbandoned
	m.active = nil
	return nil
}

func (m *Simulator) record(r Result) {
	m.history = append(m.history, r)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}
