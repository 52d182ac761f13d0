package exam

import (
	"testing"
	"time"

	"github.com/prepdrill/prepdrill/internal/store"
)

func TestHistorySnapshotRoundTrip(t *testing.T) {
	m := testSimulator()
	s := start(t, m, 10)
	if err := m.Answer(s.Items[0].ID, 1, 20); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := m.Submit(time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	data := &store.SnapshotData{Version: store.SnapshotVersion}
	m.FillSnapshot(data)
	if len(data.ExamHistory) != 1 {
		t.Fatalf("snapshot holds %d results, want 1", len(data.ExamHistory))
	}

	restored := testSimulator()
	restored.LoadHistory(data.ExamHistory)

	if len(restored.History()) != 1 {
		t.Fatalf("restored history length = %d, want 1", len(restored.History()))
	}
	got := restored.History()[0]
	want := m.History()[0]
	if got.SessionID != want.SessionID || got.ScaledScore != want.ScaledScore || got.CorrectCount != want.CorrectCount {
		t.Errorf("restored result %+v, want %+v", got, want)
	}
	if !got.CompletedAt.Equal(want.CompletedAt) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, want.CompletedAt)
	}
	if len(got.TopicScores) != len(want.TopicScores) {
		t.Errorf("TopicScores lost in round trip: %d vs %d", len(got.TopicScores), len(want.TopicScores))
	}
}

func TestLoadHistory_SkipsBadTimestamps(t *testing.T) {
	m := testSimulator()
	m.LoadHistory([]*store.ExamResultData{
		nil,
		{SessionID: "bad", CompletedAt: "not-a-time"},
		{SessionID: "ok", CompletedAt: "2026-03-05T14:00:00Z", QuestionCount: 10},
	})
	if got := len(m.History()); got != 1 {
		t.Fatalf("history length = %d, want 1", got)
	}
	if m.History()[0].SessionID != "ok" {
		t.Errorf("kept %q, want the parseable entry", m.History()[0].SessionID)
	}
}
