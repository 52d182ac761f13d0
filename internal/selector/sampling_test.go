package selector

import (
	"fmt"
	"testing"

	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
)

func TestSampleExamSet_QuotasForFullExam(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	items := buildPool(p, 50)

	set, shortfall := sel.SampleExamSet(items, 150)

	if shortfall != 0 {
		t.Errorf("Shortfall = %d, want 0", shortfall)
	}
	if len(set) != 150 {
		t.Fatalf("set size = %d, want 150", len(set))
	}

	counts := make(map[profile.TopicID]int)
	for _, it := range set {
		counts[it.TopicID]++
	}
	// 18/18/12/26/26 percent of 150, each rounded independently.
	want := map[profile.TopicID]int{
		"fundamentals":   27,
		"planning":       27,
		"tooling":        18,
		"implementation": 39,
		"operations":     39,
	}
	for id, n := range want {
		if counts[id] != n {
			t.Errorf("topic %s: %d items, want %d", id, counts[id], n)
		}
	}
}

func TestSampleExamSet_NoDuplicates(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	items := buildPool(p, 50)

	set, _ := sel.SampleExamSet(items, 150)
	seen := make(map[string]bool, len(set))
	for _, it := range set {
		if seen[it.ID] {
			t.Errorf("duplicate item %q", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestSampleExamSet_GapFilledFromRemainingPool(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())

	// tooling has only 5 items; its quota of 18 cannot be met, so the
	// gap is filled from other topics.
	var items []pool.Item
	for _, t := range p.Topics {
		n := 60
		if t.ID == "tooling" {
			n = 5
		}
		for i := 0; i < n; i++ {
			items = append(items, pool.Item{
				ID:      fmt.Sprintf("%s-%d", t.ID, i),
				TopicID: t.ID,
			})
		}
	}

	set, shortfall := sel.SampleExamSet(items, 150)
	if shortfall != 0 {
		t.Errorf("Shortfall = %d, want 0 (pool is big enough overall)", shortfall)
	}
	if len(set) != 150 {
		t.Errorf("set size = %d, want 150", len(set))
	}
}

func TestSampleExamSet_ShortfallWhenPoolTooSmall(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	items := buildPool(p, 4) // 20 items total

	set, shortfall := sel.SampleExamSet(items, 150)
	if len(set) != 20 {
		t.Errorf("set size = %d, want all 20 available", len(set))
	}
	if shortfall != 130 {
		t.Errorf("Shortfall = %d, want 130", shortfall)
	}
}
