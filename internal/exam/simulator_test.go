package exam

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/selector"
)

func testSimulator() *Simulator {
	p := profile.Default()
	sel := selector.New(p, selector.DefaultConfig(), rand.New(rand.NewSource(1)))
	return NewSimulator(p, sel)
}

func testPool(p profile.Profile, perTopic int) []pool.Item {
	var items []pool.Item
	for _, t := range p.Topics {
		for i := 0; i < perTopic; i++ {
			items = append(items, pool.Item{
				ID:      fmt.Sprintf("%s-%d", t.ID, i),
				TopicID: t.ID,
				Answer:  1,
			})
		}
	}
	return items
}

func start(t *testing.T, m *Simulator, questions int) *Session {
	t.Helper()
	s, err := m.Start(testPool(m.profile, 50), Config{Questions: questions, TimeLimitMin: 60}, time.Now())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStart_InitializesSession(t *testing.T) {
	m := testSimulator()
	s := start(t, m, 20)

	if s.Status != StatusInProgress {
		t.Errorf("Status = %v, want in-progress", s.Status)
	}
	if len(s.Items) != 20 {
		t.Errorf("item count = %d, want 20", len(s.Items))
	}
	if s.TimeRemainingSec != 60*60 {
		t.Errorf("TimeRemainingSec = %d, want 3600", s.TimeRemainingSec)
	}
	if s.Answered() != 0 {
		t.Errorf("new session has %d answers", s.Answered())
	}
	if s.ID == "" {
		t.Error("session ID should be set")
	}
}

func TestStart_RejectsSecondSession(t *testing.T) {
	m := testSimulator()
	start(t, m, 10)

	if _, err := m.Start(testPool(m.profile, 50), Config{Questions: 10, TimeLimitMin: 60}, time.Now()); !errors.Is(err, ErrSessionActive) {
		t.Errorf("second Start error = %v, want ErrSessionActive", err)
	}
}

func TestAnswer_LastWriteWinsTimeAccumulates(t *testing.T) {
	m := testSimulator()
	s := start(t, m, 10)
	id := s.Items[0].ID

	if err := m.Answer(id, 0, 30); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := m.Answer(id, 2, 15); err != nil {
		t.Fatalf("re-Answer: %v", err)
	}

	a := s.Answers[id]
	if a.Selected == nil || *a.Selected != 2 {
		t.Errorf("Selected = %v, want 2 (last write wins)", a.Selected)
	}
	if a.TimeSpentSec != 45 {
		t.Errorf("TimeSpentSec = %d, want 45 (accumulated)", a.TimeSpentSec)
	}
	if s.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", s.Answered())
	}
}

func TestAnswer_UnknownItem(t *testing.T) {
	m := testSimulator()
	start(t, m, 10)

	if err := m.Answer("nope", 0, 5); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("error = %v, want ErrUnknownItem", err)
	}
}

func TestToggleFlag(t *testing.T) {
	m := testSimulator()
	s := start(t, m, 10)
	id := s.Items[3].ID

	if err := m.ToggleFlag(id); err != nil {
		t.Fatalf("ToggleFlag: %v", err)
	}
	if got := s.Flagged(); len(got) != 1 || got[0] != id {
		t.Errorf("Flagged = %v, want [%s]", got, id)
	}
	if err := m.ToggleFlag(id); err != nil {
		t.Fatalf("ToggleFlag again: %v", err)
	}
	if got := s.Flagged(); len(got) != 0 {
		t.Errorf("Flagged = %v, want empty after second toggle", got)
	}
}

func TestPauseResume(t *testing.T) {
	m := testSimulator()
	s := start(t, m, 10)

	if err := m.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if s.Status != StatusPaused {
		t.Errorf("Status = %v, want paused", s.Status)
	}

	// No answering or ticking while paused.
	if err := m.Answer(s.Items[0].ID, 0, 5); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Answer while paused error = %v, want ErrInvalidTransition", err)
	}
	if _, err := m.Tick(100, time.Now()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Tick while paused error = %v, want ErrInvalidTransition", err)
	}
	if err := m.Pause(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double Pause error = %v, want ErrInvalidTransition", err)
	}

	if err := m.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if s.Status != StatusInProgress {
		t.Errorf("Status = %v, want in-progress", s.Status)
	}
	if err := m.Resume(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Resume while running error = %v, want ErrInvalidTransition", err)
	}
}

func TestTick_CountsDownAndClamps(t *testing.T) {
	m := testSimulator()
	s := start(t, m, 10)

	if _, err := m.Tick(3000, time.Now()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.TimeRemainingSec != 3000 {
		t.Errorf("TimeRemainingSec = %d, want 3000", s.TimeRemainingSec)
	}

	// The countdown only moves forward: a larger value is ignored.
	if _, err := m.Tick(3500, time.Now()); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.TimeRemainingSec != 3000 {
		t.Errorf("TimeRemainingSec = %d after bogus tick, want 3000", s.TimeRemainingSec)
	}
}

func TestTick_ZeroAutoSubmits(t *testing.T) {
	m := testSimulator()
	s := start(t, m, 10)
	if err := m.Answer(s.Items[0].ID, 1, 10); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	r, err := m.Tick(0, time.Now())
	if err != nil {
		t.Fatalf("Tick(0): %v", err)
	}
	if r == nil {
		t.Fatal("Tick(0) should auto-submit and return a result")
	}
	if s.Status != StatusCompleted {
		t.Errorf("Status = %v, want completed", s.Status)
	}
	if m.Active() != nil {
		t.Error("session should be discarded after auto-submit")
	}
	if r.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", r.CorrectCount)
	}
}

func TestTick_NegativeClampsToZero(t *testing.T) {
	m := testSimulator()
	start(t, m, 10)

	r, err := m.Tick(-5, time.Now())
	if err != nil {
		t.Fatalf("Tick(-5): %v", err)
	}
	if r == nil {
		t.Fatal("negative tick should clamp to zero and auto-submit")
	}
}

func TestSubmit_ScoresAndClassifiesTopics(t *testing.T) {
	m := testSimulator()
	s := start(t, m, 50)
	now := time.Now()

	// Answer every fundamentals item correctly and every operations item
	// incorrectly; leave the rest blank.
	for _, it := range s.Items {
		switch it.TopicID {
		case "fundamentals":
			if err := m.Answer(it.ID, 1, 1); err != nil {
				t.Fatalf("Answer: %v", err)
			}
		case "operations":
			if err := m.Answer(it.ID, 0, 1); err != nil {
				t.Fatalf("Answer: %v", err)
			}
		}
	}

	r, err := m.Submit(now)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	fund := r.TopicScores["fundamentals"]
	if fund.Percentage != 100 || !fund.Passed {
		t.Errorf("fundamentals score = %+v, want 100%% passed", fund)
	}
	ops := r.TopicScores["operations"]
	if ops.Percentage != 0 || ops.Passed {
		t.Errorf("operations score = %+v, want 0%% failed", ops)
	}

	inWeak := func(id profile.TopicID) bool {
		for _, w := range r.WeakTopics {
			if w == id {
				return true
			}
		}
		return false
	}
	if !inWeak("operations") || inWeak("fundamentals") {
		t.Errorf("WeakTopics = %v", r.WeakTopics)
	}

	hasStrong := false
	for _, st := range r.StrongTopics {
		if st == "fundamentals" {
			hasStrong = true
		}
	}
	if !hasStrong {
		t.Errorf("StrongTopics = %v, want fundamentals present", r.StrongTopics)
	}

	if r.QuestionCount != 50 {
		t.Errorf("QuestionCount = %d, want 50", r.QuestionCount)
	}
	if len(m.History()) != 1 {
		t.Errorf("history length = %d, want 1", len(m.History()))
	}
}

func TestSubmit_TwiceFails(t *testing.T) {
	m := testSimulator()
	start(t, m, 10)

	if _, err := m.Submit(time.Now()); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if _, err := m.Submit(time.Now()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Submit error = %v, want ErrInvalidTransition", err)
	}
}

func TestAbandon(t *testing.T) {
	m := testSimulator()
	s := start(t, m, 10)

	if err := m.Abandon(); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if s.Status != StatusAbandoned {
		t.Errorf("Status = %v, want abandoned", s.Status)
	}
	if m.Active() != nil {
		t.Error("session should be discarded after abandon")
	}
	if len(m.History()) != 0 {
		t.Error("abandoned sessions must not be scored into history")
	}
}

func TestAbandon_FromPaused(t *testing.T) {
	m := testSimulator()
	start(t, m, 10)

	if err := m.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := m.Abandon(); err != nil {
		t.Errorf("Abandon from paused: %v", err)
	}
}

func TestHistoryBounded(t *testing.T) {
	m := testSimulator()

	for i := 0; i < maxHistory+5; i++ {
		start(t, m, 5)
		if _, err := m.Submit(time.Now()); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}
	if got := len(m.History()); got != maxHistory {
		t.Errorf("history length = %d, want %d", got, maxHistory)
	}
}
