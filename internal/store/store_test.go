package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

var dbCounter int64

// openTestStore opens a uniquely named shared in-memory database so each
// test gets isolation without touching disk.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	n := atomic.AddInt64(&dbCounter, 1)
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", n)
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SnapshotRepo()

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest on empty store: %v", err)
	}
	if got != nil {
		t.Fatal("Latest on empty store should return nil")
	}

	first := &Snapshot{
		Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Data: SnapshotData{
			Version:       SnapshotVersion,
			Difficulty:    "medium",
			TotalAnswered: 12,
			RecentResults: []bool{true, false, true},
		},
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := &Snapshot{
		Timestamp: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Data: SnapshotData{
			Version:       SnapshotVersion,
			Difficulty:    "hard",
			TotalAnswered: 40,
		},
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got == nil {
		t.Fatal("Latest returned nil after saves")
	}
	if got.Data.Difficulty != "hard" || got.Data.TotalAnswered != 40 {
		t.Errorf("Latest returned %+v, want the second snapshot", got.Data)
	}
	if len(first.Data.RecentResults) != 3 {
		t.Errorf("first snapshot data mutated: %+v", first.Data)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SnapshotRepo()

	for i := 0; i < 5; i++ {
		snap := &Snapshot{
			Timestamp: time.Now().Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion, TotalAnswered: i},
		}
		if err := repo.Save(ctx, snap); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got.Data.TotalAnswered != 4 {
		t.Errorf("Prune dropped the newest snapshot: %+v", got.Data)
	}
}

func TestSnapshotUnsupportedVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SnapshotRepo()

	snap := &Snapshot{
		Timestamp: time.Now(),
		Data:      SnapshotData{Version: 99, Difficulty: "medium"},
	}
	if err := repo.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := repo.Latest(ctx); err == nil {
		t.Error("Latest should reject a snapshot with an unknown version")
	}
}

func TestAnswerEventsAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	answers := []AnswerEventData{
		{ItemID: "q1", TopicID: "fundamentals", Correct: true, Difficulty: "medium", Source: "practice"},
		{ItemID: "q2", TopicID: "fundamentals", Correct: false, Difficulty: "medium", Source: "practice"},
		{ItemID: "q3", TopicID: "operations", Correct: true, Difficulty: "hard", Source: "exam", ExamSessionID: "s1", TimeSpentSec: 40},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("AppendAnswerEvent: %v", err)
		}
	}

	got, err := repo.QueryAnswerEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryAnswerEvents: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	// Newest first.
	if got[0].ItemID != "q3" || got[2].ItemID != "q1" {
		t.Errorf("wrong order: %v", got)
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("sequences not decreasing: %d then %d", got[0].Sequence, got[1].Sequence)
	}

	limited, err := repo.QueryAnswerEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("QueryAnswerEvents limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ItemID != "q3" {
		t.Errorf("limit query = %v, want just q3", limited)
	}
}

func TestTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i := 0; i < 4; i++ {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			ItemID:     fmt.Sprintf("q%d", i),
			TopicID:    "planning",
			Correct:    i < 3,
			Difficulty: "medium",
			Source:     "practice",
		})
		if err != nil {
			t.Fatalf("AppendAnswerEvent: %v", err)
		}
	}

	acc, count, err := repo.TopicAccuracy(ctx, "planning")
	if err != nil {
		t.Fatalf("TopicAccuracy: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %f, want 0.75", acc)
	}

	acc, count, err = repo.TopicAccuracy(ctx, "untouched")
	if err != nil {
		t.Fatalf("TopicAccuracy empty: %v", err)
	}
	if count != 0 || acc != 0 {
		t.Errorf("untouched topic: acc %f count %d, want zeros", acc, count)
	}
}

func TestExamEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{ItemID: "q1", TopicID: "tooling", Difficulty: "easy", Source: "exam", ExamSessionID: "s1"}); err != nil {
		t.Fatalf("AppendAnswerEvent: %v", err)
	}
	if err := repo.AppendExamEvent(ctx, ExamEventData{SessionID: "s1", Action: "submitted", QuestionCount: 1}); err != nil {
		t.Fatalf("AppendExamEvent: %v", err)
	}

	got, err := repo.QueryAnswerEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryAnswerEvents: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d answer events, want 1", len(got))
	}
	// The exam event consumed the next slot in the shared sequence.
	if got[0].Sequence != 1 {
		t.Errorf("answer sequence = %d, want 1", got[0].Sequence)
	}
}

func TestLatestAnswerTime(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	got, err := repo.LatestAnswerTime(ctx, "tooling")
	if err != nil {
		t.Fatalf("LatestAnswerTime empty: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("LatestAnswerTime = %v, want zero time for no events", got)
	}

	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{ItemID: "q1", TopicID: "tooling", Difficulty: "easy", Source: "practice"}); err != nil {
		t.Fatalf("AppendAnswerEvent: %v", err)
	}
	got, err = repo.LatestAnswerTime(ctx, "tooling")
	if err != nil {
		t.Fatalf("LatestAnswerTime: %v", err)
	}
	if got.IsZero() {
		t.Error("LatestAnswerTime should be set after an append")
	}
}
