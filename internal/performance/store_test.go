package performance

import (
	"math"
	"testing"
	"time"

	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/store"
)

const epsilon = 0.005

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRecordAnswer_TwoOfThreeScenario(t *testing.T) {
	s := NewStore(DefaultConfig())
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	s.RecordAnswer("q1", "fundamentals", true, nil, 2.5, now)
	s.RecordAnswer("q2", "fundamentals", true, nil, 2.5, now.Add(time.Minute))
	s.RecordAnswer("q3", "fundamentals", false, nil, 2.5, now.Add(2*time.Minute))

	tp := s.Topic("fundamentals")
	if !almostEqual(tp.Accuracy(), 0.667) {
		t.Errorf("Accuracy = %f, want 0.67", tp.Accuracy())
	}
	if !almostEqual(tp.RecentAccuracy(), 0.667) {
		t.Errorf("RecentAccuracy = %f, want 0.67", tp.RecentAccuracy())
	}
	if tp.NeedsWork(s.NeedsWorkThreshold()) {
		t.Error("NeedsWork should be false at 67% with a 70% threshold")
	}
	if tp.LastPracticed == nil || !tp.LastPracticed.Equal(now.Add(2*time.Minute)) {
		t.Errorf("LastPracticed = %v, want the third answer's time", tp.LastPracticed)
	}
}

func TestNeedsWork_NoAttempts(t *testing.T) {
	s := NewStore(DefaultConfig())

	if !s.Topic("planning").NeedsWork(s.NeedsWorkThreshold()) {
		t.Error("a topic with no attempts should need work")
	}
}

func TestNeedsWork_MinimumSample(t *testing.T) {
	tests := []struct {
		name      string
		attempted int
		correct   int
		want      bool
	}{
		{"four misses is too small a sample", 4, 0, false},
		{"five at 60% flags", 5, 3, true},
		{"five at 80% does not flag", 5, 4, false},
		{"twenty at 65% flags", 20, 13, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := newTopicPerformance("operations", 10)
			tp.QuestionsAttempted = tt.attempted
			tp.CorrectCount = tt.correct

			if got := tp.NeedsWork(0.70); got != tt.want {
				t.Errorf("NeedsWork at %d/%d = %v, want %v", tt.correct, tt.attempted, got, tt.want)
			}
		})
	}
}

func TestRecordAnswer_ItemHistory(t *testing.T) {
	s := NewStore(DefaultConfig())
	now := time.Now()

	h := s.RecordAnswer("q1", "tooling", true, nil, 2.5, now)
	if h.Attempts != 1 || h.CorrectCount != 1 || !h.LastResult {
		t.Errorf("first attempt: got %+v", h)
	}
	if h.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %f, want default 2.5", h.EaseFactor)
	}

	h2 := s.RecordAnswer("q1", "tooling", false, nil, 2.5, now)
	if h2 != h {
		t.Error("RecordAnswer should mutate the existing history")
	}
	if h.Attempts != 2 || h.CorrectCount != 1 || h.LastResult {
		t.Errorf("second attempt: got %+v", h)
	}
	if !almostEqual(h.Accuracy(), 0.5) {
		t.Errorf("Accuracy = %f, want 0.5", h.Accuracy())
	}
}

func TestConceptSetsStayDisjoint(t *testing.T) {
	s := NewStore(DefaultConfig())
	now := time.Now()

	s.RecordAnswer("q1", "operations", false, []string{"scaling"}, 2.5, now)
	tp := s.Topic("operations")
	if got := tp.StruggleConcepts(); len(got) != 1 || got[0] != "scaling" {
		t.Fatalf("StruggleConcepts = %v, want [scaling]", got)
	}

	s.RecordAnswer("q2", "operations", true, []string{"scaling"}, 2.5, now)
	if got := tp.StruggleConcepts(); len(got) != 0 {
		t.Errorf("StruggleConcepts = %v, want empty after correct answer", got)
	}
	if got := tp.MasteredConcepts(); len(got) != 1 || got[0] != "scaling" {
		t.Errorf("MasteredConcepts = %v, want [scaling]", got)
	}

	s.RecordAnswer("q3", "operations", false, []string{"scaling"}, 2.5, now)
	if got := tp.MasteredConcepts(); len(got) != 0 {
		t.Errorf("MasteredConcepts = %v, want empty after miss", got)
	}
}

func TestRecentResultsWindowBounded(t *testing.T) {
	s := NewStore(Config{RecentWindow: 3, TopicRecentWindow: 3, RecentlySeenWindow: 5, NeedsWorkThreshold: 0.7})
	now := time.Now()

	for i := 0; i < 10; i++ {
		s.RecordAnswer("q", "fundamentals", i%2 == 0, nil, 2.5, now)
	}
	if got := len(s.RecentResults()); got != 3 {
		t.Errorf("RecentResults length = %d, want 3", got)
	}
	if s.TotalAnswered() != 10 {
		t.Errorf("TotalAnswered = %d, want 10", s.TotalAnswered())
	}
}

func TestRecentlySeenWindow(t *testing.T) {
	s := NewStore(Config{RecentWindow: 10, TopicRecentWindow: 10, RecentlySeenWindow: 3, NeedsWorkThreshold: 0.7})

	for _, id := range []string{"a", "b", "c", "d"} {
		s.MarkSeen(id)
	}
	if s.RecentlySeen("a") {
		t.Error("oldest item should have been evicted from the window")
	}
	for _, id := range []string{"b", "c", "d"} {
		if !s.RecentlySeen(id) {
			t.Errorf("item %q should still be in the window", id)
		}
	}

	// Re-seeing an item moves it to the back instead of duplicating it.
	s.MarkSeen("b")
	s.MarkSeen("e")
	if !s.RecentlySeen("b") {
		t.Error("re-seen item should survive the next eviction")
	}
	if s.RecentlySeen("c") {
		t.Error("item c should have been evicted")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	s := NewStore(cfg)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	s.RecordAnswer("q1", "fundamentals", true, []string{"basics"}, 2.5, now)
	s.RecordAnswer("q2", "implementation", false, []string{"deploys"}, 2.5, now)
	s.Item("q1").IntervalDays = 6
	s.Item("q1").NextReviewDate = now.AddDate(0, 0, 6)

	data := &store.SnapshotData{Version: store.SnapshotVersion}
	s.FillSnapshot(data)

	p := profile.Default()
	restored := NewStoreFromSnapshot(cfg, data, p.ValidTopic)

	if restored.TotalAnswered() != 2 {
		t.Errorf("TotalAnswered = %d, want 2", restored.TotalAnswered())
	}
	h := restored.Item("q1")
	if h == nil {
		t.Fatal("item q1 missing after round trip")
	}
	if h.IntervalDays != 6 || !h.NextReviewDate.Equal(now.AddDate(0, 0, 6)) {
		t.Errorf("scheduling fields lost: %+v", h)
	}
	tp := restored.Topic("implementation")
	if got := tp.StruggleConcepts(); len(got) != 1 || got[0] != "deploys" {
		t.Errorf("StruggleConcepts = %v, want [deploys]", got)
	}
}

func TestSnapshotSkipsUnknownTopics(t *testing.T) {
	cfg := DefaultConfig()
	s := NewStore(cfg)
	now := time.Now()
	s.RecordAnswer("q1", "fundamentals", true, nil, 2.5, now)

	data := &store.SnapshotData{Version: store.SnapshotVersion}
	s.FillSnapshot(data)
	data.Topics["retired-topic"] = data.Topics["fundamentals"]

	p := profile.Default()
	restored := NewStoreFromSnapshot(cfg, data, p.ValidTopic)
	if _, ok := restored.Topics()["retired-topic"]; ok {
		t.Error("unknown topic should have been dropped on load")
	}
	if _, ok := restored.Topics()["fundamentals"]; !ok {
		t.Error("known topic should have survived the load")
	}
}
