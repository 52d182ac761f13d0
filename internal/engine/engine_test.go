package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prepdrill/prepdrill/internal/difficulty"
	"github.com/prepdrill/prepdrill/internal/exam"
	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/selector"
	"github.com/prepdrill/prepdrill/internal/store"
)

var dbCounter int64

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	n := atomic.AddInt64(&dbCounter, 1)
	st, err := store.Open(fmt.Sprintf("file:enginetest%d?mode=memory&cache=shared", n))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newTestEngine(t *testing.T, st *store.Store) *Engine {
	t.Helper()
	clock := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	e, err := New(profile.Default(), st, nil,
		WithClock(func() time.Time { return clock }),
		WithRand(rand.New(rand.NewSource(7))),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// testItems builds n items per topic of the default profile.
func testItems(perTopic int) []pool.Item {
	p := profile.Default()
	var items []pool.Item
	for _, id := range p.TopicIDs() {
		for i := 0; i < perTopic; i++ {
			items = append(items, pool.Item{
				ID:         fmt.Sprintf("%s-%d", id, i),
				TopicID:    id,
				Difficulty: difficulty.Medium,
				Answer:     1,
			})
		}
	}
	return items
}

func TestRecordAnswerUpdatesState(t *testing.T) {
	st := openTestStore(t)
	e := newTestEngine(t, st)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := e.RecordAnswer(ctx, fmt.Sprintf("q%d", i), "fundamentals", true, nil)
		if err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
	}

	perf := e.Performance()
	if perf.TotalAnswered() != 5 {
		t.Errorf("TotalAnswered = %d, want 5", perf.TotalAnswered())
	}
	tp := perf.Topic("fundamentals")
	if tp.CorrectCount != 5 || tp.QuestionsAttempted != 5 {
		t.Errorf("topic stats = %d/%d, want 5/5", tp.CorrectCount, tp.QuestionsAttempted)
	}
	// Five straight correct answers push the difficulty up a level.
	if got := e.Difficulty(); got != difficulty.Hard {
		t.Errorf("Difficulty = %s, want hard", got)
	}
}

func TestRecordAnswerUnknownTopic(t *testing.T) {
	st := openTestStore(t)
	e := newTestEngine(t, st)

	if err := e.RecordAnswer(context.Background(), "q1", "nope", true, nil); err == nil {
		t.Error("RecordAnswer should reject an unknown topic")
	}
}

func TestDueReviewsAfterMiss(t *testing.T) {
	st := openTestStore(t)
	e := newTestEngine(t, st)
	ctx := context.Background()

	if err := e.RecordAnswer(ctx, "q1", "planning", false, nil); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	// A missed item schedules a 1-day review; advance past it.
	e.now = func() time.Time { return time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC) }

	due := e.DueReviews()
	if len(due) != 1 || due[0] != "q1" {
		t.Errorf("DueReviews = %v, want [q1]", due)
	}
}

func TestSelectionMarksSeen(t *testing.T) {
	st := openTestStore(t)
	e := newTestEngine(t, st)

	sel, err := e.Selection(context.Background(), testItems(10), selector.Criteria{Count: 5})
	if err != nil {
		t.Fatalf("Selection: %v", err)
	}
	if len(sel.Items) != 5 {
		t.Fatalf("got %d items, want 5", len(sel.Items))
	}
	perf := e.Performance()
	for _, it := range sel.Items {
		if !perf.RecentlySeen(it.ID) {
			t.Errorf("item %s not marked seen", it.ID)
		}
	}
}

func TestExamLifecycle(t *testing.T) {
	st := openTestStore(t)
	e := newTestEngine(t, st)
	ctx := context.Background()

	s, err := e.StartExam(ctx, testItems(10), exam.Config{Questions: 10, TimeLimitMin: 30})
	if err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	if len(s.Items) != 10 {
		t.Fatalf("session has %d items, want 10", len(s.Items))
	}
	if e.ActiveExam() == nil {
		t.Fatal("ActiveExam should be non-nil after start")
	}

	// Two correct, one wrong.
	if err := e.ExamAnswer(s.Items[0].ID, 1, 30); err != nil {
		t.Fatalf("ExamAnswer: %v", err)
	}
	if err := e.ExamAnswer(s.Items[1].ID, 1, 25); err != nil {
		t.Fatalf("ExamAnswer: %v", err)
	}
	if err := e.ExamAnswer(s.Items[2].ID, 0, 40); err != nil {
		t.Fatalf("ExamAnswer: %v", err)
	}

	r, err := e.ExamSubmit(ctx)
	if err != nil {
		t.Fatalf("ExamSubmit: %v", err)
	}
	if r.CorrectCount != 2 || r.QuestionCount != 10 {
		t.Errorf("result = %d/%d, want 2/10", r.CorrectCount, r.QuestionCount)
	}
	if e.ActiveExam() != nil {
		t.Error("session should be discarded after submit")
	}
	if got := len(e.ExamHistory()); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
	// Exam answers fold into the practice aggregates.
	if got := e.Performance().TotalAnswered(); got != 3 {
		t.Errorf("TotalAnswered = %d, want 3 folded exam answers", got)
	}
}

func TestExamTickAutoSubmits(t *testing.T) {
	st := openTestStore(t)
	e := newTestEngine(t, st)
	ctx := context.Background()

	s, err := e.StartExam(ctx, testItems(10), exam.Config{Questions: 5, TimeLimitMin: 10})
	if err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	if err := e.ExamAnswer(s.Items[0].ID, 1, 20); err != nil {
		t.Fatalf("ExamAnswer: %v", err)
	}

	r, err := e.ExamTick(ctx, 0)
	if err != nil {
		t.Fatalf("ExamTick: %v", err)
	}
	if r == nil {
		t.Fatal("tick to zero should auto-submit and return a result")
	}
	if r.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", r.CorrectCount)
	}
	if e.ActiveExam() != nil {
		t.Error("session should be discarded after auto-submit")
	}
}

func TestExamAbandonDiscards(t *testing.T) {
	st := openTestStore(t)
	e := newTestEngine(t, st)
	ctx := context.Background()

	if _, err := e.StartExam(ctx, testItems(10), exam.Config{Questions: 5, TimeLimitMin: 10}); err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	if err := e.ExamAbandon(ctx); err != nil {
		t.Fatalf("ExamAbandon: %v", err)
	}
	if e.ActiveExam() != nil {
		t.Error("session should be gone after abandon")
	}
	if len(e.ExamHistory()) != 0 {
		t.Error("abandoned sessions must not be scored into history")
	}
	if e.Performance().TotalAnswered() != 0 {
		t.Error("abandoned sessions must not touch practice aggregates")
	}
}

func TestLoadRestoresState(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	e1 := newTestEngine(t, st)
	for i := 0; i < 6; i++ {
		if err := e1.RecordAnswer(ctx, fmt.Sprintf("q%d", i), "operations", true, nil); err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
	}
	s, err := e1.StartExam(ctx, testItems(10), exam.Config{Questions: 5, TimeLimitMin: 10})
	if err != nil {
		t.Fatalf("StartExam: %v", err)
	}
	if err := e1.ExamAnswer(s.Items[0].ID, 1, 15); err != nil {
		t.Fatalf("ExamAnswer: %v", err)
	}
	if _, err := e1.ExamSubmit(ctx); err != nil {
		t.Fatalf("ExamSubmit: %v", err)
	}

	e2 := newTestEngine(t, st)
	if err := e2.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := e2.Performance().TotalAnswered(), e1.Performance().TotalAnswered(); got != want {
		t.Errorf("restored TotalAnswered = %d, want %d", got, want)
	}
	if got := e2.Difficulty(); got != e1.Difficulty() {
		t.Errorf("restored difficulty = %s, want %s", got, e1.Difficulty())
	}
	if got := len(e2.ExamHistory()); got != 1 {
		t.Errorf("restored exam history length = %d, want 1", got)
	}
	if e2.ExamHistory()[0].SessionID != e1.ExamHistory()[0].SessionID {
		t.Error("restored exam result lost its session ID")
	}
}

func TestLoadCorruptSnapshotStartsFresh(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	bad := &store.Snapshot{
		Timestamp: time.Now(),
		Data:      store.SnapshotData{Version: 99, Difficulty: "hard"},
	}
	if err := st.SnapshotRepo().Save(ctx, bad); err != nil {
		t.Fatalf("Save: %v", err)
	}

	e := newTestEngine(t, st)
	if err := e.Load(ctx); err != nil {
		t.Fatalf("Load should not fail over a corrupt snapshot: %v", err)
	}
	if e.Performance().TotalAnswered() != 0 {
		t.Error("corrupt snapshot should yield a fresh state")
	}
	if e.Difficulty() != difficulty.Medium {
		t.Errorf("Difficulty = %s, want the medium default", e.Difficulty())
	}
}

func TestReset(t *testing.T) {
	st := openTestStore(t)
	e := newTestEngine(t, st)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		if err := e.RecordAnswer(ctx, fmt.Sprintf("q%d", i), "tooling", true, nil); err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
	}
	if err := e.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if e.Performance().TotalAnswered() != 0 {
		t.Error("Reset should wipe practice aggregates")
	}
	if e.Difficulty() != difficulty.Medium {
		t.Errorf("Reset difficulty = %s, want medium", e.Difficulty())
	}

	// The wiped state persists: a reload stays empty.
	e2 := newTestEngine(t, st)
	if err := e2.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if e2.Performance().TotalAnswered() != 0 {
		t.Error("reload after Reset should be empty")
	}
}
