package spacedrep

import (
	"math"
	"testing"
	"time"

	"github.com/prepdrill/prepdrill/internal/performance"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestUpdate_CorrectStreakIntervals(t *testing.T) {
	s := NewScheduler(Params{})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := &performance.ItemHistory{ItemID: "q1"}

	// 1, 6, round(6×2.6)=16, round(16×2.7)=43
	want := []struct {
		interval int
		ease     float64
	}{
		{1, 2.5},
		{6, 2.6},
		{16, 2.7},
		{43, 2.8},
	}
	for i, w := range want {
		h.Attempts++
		h.LastResult = true
		s.Update(h, true, now)
		if h.IntervalDays != w.interval {
			t.Errorf("streak step %d: IntervalDays = %d, want %d", i+1, h.IntervalDays, w.interval)
		}
		if !almostEqual(h.EaseFactor, w.ease) {
			t.Errorf("streak step %d: EaseFactor = %f, want %f", i+1, h.EaseFactor, w.ease)
		}
		wantNext := now.AddDate(0, 0, w.interval)
		if !h.NextReviewDate.Equal(wantNext) {
			t.Errorf("streak step %d: NextReviewDate = %v, want %v", i+1, h.NextReviewDate, wantNext)
		}
	}
}

func TestUpdate_IncorrectResetsInterval(t *testing.T) {
	s := NewScheduler(Params{})
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := &performance.ItemHistory{ItemID: "q1", IntervalDays: 16, EaseFactor: 2.7}

	s.Update(h, false, now)

	if h.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", h.IntervalDays)
	}
	if !almostEqual(h.EaseFactor, 2.5) {
		t.Errorf("EaseFactor = %f, want 2.5", h.EaseFactor)
	}
}

func TestUpdate_EaseFloor(t *testing.T) {
	s := NewScheduler(Params{})
	now := time.Now()
	h := &performance.ItemHistory{ItemID: "q1", EaseFactor: 2.5}

	// Enough misses to push ease well below the floor without clamping.
	for i := 0; i < 10; i++ {
		s.Update(h, false, now)
	}
	if !almostEqual(h.EaseFactor, 1.3) {
		t.Errorf("EaseFactor = %f, want floor 1.3", h.EaseFactor)
	}
}

func TestUpdate_NewItemGetsDefaultEase(t *testing.T) {
	s := NewScheduler(Params{})
	h := &performance.ItemHistory{ItemID: "q1"}

	s.Update(h, false, time.Now())

	if !almostEqual(h.EaseFactor, 2.3) {
		t.Errorf("EaseFactor = %f, want 2.3 (default 2.5 minus penalty)", h.EaseFactor)
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	tests := []struct {
		name string
		h    *performance.ItemHistory
		want bool
	}{
		{"nil history", nil, false},
		{"never attempted", &performance.ItemHistory{}, false},
		{"missed and past due", &performance.ItemHistory{Attempts: 1, LastResult: false, NextReviewDate: past}, true},
		{"missed but not yet due", &performance.ItemHistory{Attempts: 1, LastResult: false, NextReviewDate: future}, false},
		{"correct last time lapses passively", &performance.ItemHistory{Attempts: 3, LastResult: true, NextReviewDate: past}, false},
		{"due exactly now", &performance.ItemHistory{Attempts: 1, LastResult: false, NextReviewDate: now}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDue(tt.h, now); got != tt.want {
				t.Errorf("IsDue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDueItems_MostOverdueFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	perf := performance.NewStore(performance.DefaultConfig())

	// Three missed items with different review dates.
	for _, rec := range []struct {
		id      string
		daysAgo int
	}{
		{"a", 1},
		{"b", 5},
		{"c", 3},
	} {
		h := perf.Item(rec.id)
		if h != nil {
			t.Fatalf("item %q should not exist yet", rec.id)
		}
		got := perf.RecordAnswer(rec.id, "fundamentals", false, nil, 2.5, now.AddDate(0, 0, -rec.daysAgo-1))
		got.NextReviewDate = now.AddDate(0, 0, -rec.daysAgo)
	}

	due := DueItems(perf, now)
	want := []string{"b", "c", "a"}
	if len(due) != len(want) {
		t.Fatalf("DueItems returned %d items, want %d", len(due), len(want))
	}
	for i := range want {
		if due[i] != want[i] {
			t.Errorf("DueItems[%d] = %q, want %q", i, due[i], want[i])
		}
	}
}
