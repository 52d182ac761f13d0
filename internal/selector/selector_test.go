package selector

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/prepdrill/prepdrill/internal/difficulty"
	"github.com/prepdrill/prepdrill/internal/performance"
	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// buildPool makes n items per topic, cycling difficulties.
func buildPool(p profile.Profile, perTopic int) []pool.Item {
	levels := []difficulty.Level{difficulty.Easy, difficulty.Medium, difficulty.Hard}
	var items []pool.Item
	for _, t := range p.Topics {
		for i := 0; i < perTopic; i++ {
			items = append(items, pool.Item{
				ID:         fmt.Sprintf("%s-%d", t.ID, i),
				TopicID:    t.ID,
				Difficulty: levels[i%len(levels)],
				Answer:     0,
			})
		}
	}
	return items
}

func TestSelect_NoDuplicatesAndCountBound(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	perf := performance.NewStore(performance.DefaultConfig())
	items := buildPool(p, 20)
	now := time.Now()

	for _, crit := range []Criteria{
		{Count: 10},
		{Count: 10, PrioritizeWeak: true, IncludeReviewDue: true, ExamWeighted: true},
		{Count: 200, ExamWeighted: true},
		{Count: 7, Topics: []profile.TopicID{"tooling"}},
	} {
		got := sel.Select(items, perf, difficulty.Medium, crit, now)
		if len(got.Items) > crit.Count {
			t.Errorf("criteria %+v: returned %d items, want <= %d", crit, len(got.Items), crit.Count)
		}
		seen := make(map[string]bool)
		for _, it := range got.Items {
			if seen[it.ID] {
				t.Errorf("criteria %+v: duplicate item %q", crit, it.ID)
			}
			seen[it.ID] = true
		}
	}
}

func TestSelect_ShortfallReported(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	perf := performance.NewStore(performance.DefaultConfig())
	items := buildPool(p, 2) // 10 items total
	now := time.Now()

	got := sel.Select(items, perf, difficulty.Medium, Criteria{Count: 25}, now)
	if len(got.Items) != 10 {
		t.Errorf("returned %d items, want all 10 available", len(got.Items))
	}
	if got.Shortfall != 15 {
		t.Errorf("Shortfall = %d, want 15", got.Shortfall)
	}
}

func TestSelect_ExcludeRecent(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	perf := performance.NewStore(performance.DefaultConfig())
	items := buildPool(p, 2)
	now := time.Now()

	perf.MarkSeen("tooling-0")
	perf.MarkSeen("tooling-1")

	got := sel.Select(items, perf, difficulty.Medium, Criteria{
		Count:         10,
		Topics:        []profile.TopicID{"tooling"},
		ExcludeRecent: true,
	}, now)
	if len(got.Items) != 0 {
		t.Errorf("all tooling items were recently seen, got %d items", len(got.Items))
	}
	if got.Shortfall != 10 {
		t.Errorf("Shortfall = %d, want 10", got.Shortfall)
	}
}

func TestSelect_ReviewDueIncluded(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	perf := performance.NewStore(performance.DefaultConfig())
	items := buildPool(p, 10)
	now := time.Now()

	// Miss two items so they become due for review.
	for _, id := range []string{"planning-0", "planning-1"} {
		h := perf.RecordAnswer(id, "planning", false, nil, 2.5, now.AddDate(0, 0, -2))
		h.NextReviewDate = now.AddDate(0, 0, -1)
	}

	got := sel.Select(items, perf, difficulty.Medium, Criteria{
		Count:            10,
		IncludeReviewDue: true,
	}, now)

	due := 0
	for _, it := range got.Items {
		if it.ID == "planning-0" || it.ID == "planning-1" {
			due++
		}
	}
	if due != 2 {
		t.Errorf("expected both due items in the set, got %d", due)
	}
}

func TestSelect_ReviewStageTakesMostOverdueFirst(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	perf := performance.NewStore(performance.DefaultConfig())
	items := buildPool(p, 10)
	now := time.Now()

	// Ten due items, far more than the ceil(10 × 0.2) = 2 review slots;
	// higher index means more overdue.
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("operations-%d", i)
		h := perf.RecordAnswer(id, "operations", false, nil, 2.5, now.AddDate(0, 0, -20))
		h.NextReviewDate = now.AddDate(0, 0, -(i + 1))
	}

	got := sel.Select(items, perf, difficulty.Medium, Criteria{
		Count:            10,
		Topics:           []profile.TopicID{"operations", "planning"},
		IncludeReviewDue: true,
	}, now)

	present := make(map[string]bool, len(got.Items))
	for _, it := range got.Items {
		present[it.ID] = true
	}
	// The two review slots must go to the most overdue items.
	if !present["operations-9"] || !present["operations-8"] {
		t.Errorf("most overdue items missing from selection: %v", present)
	}
}

func TestSelect_FillerFallbackNeverRepicks(t *testing.T) {
	p := profile.Default()
	perf := performance.NewStore(performance.DefaultConfig())
	now := time.Now()

	// Two easy items force the preferred tier short of count, so the
	// fallback tier has to finish the set from the hard items.
	items := []pool.Item{
		{ID: "e1", TopicID: "fundamentals", Difficulty: difficulty.Easy},
		{ID: "e2", TopicID: "planning", Difficulty: difficulty.Easy},
		{ID: "h1", TopicID: "tooling", Difficulty: difficulty.Hard},
		{ID: "h2", TopicID: "implementation", Difficulty: difficulty.Hard},
		{ID: "h3", TopicID: "operations", Difficulty: difficulty.Hard},
	}

	for seed := int64(0); seed < 20; seed++ {
		for _, weighted := range []bool{false, true} {
			sel := New(p, DefaultConfig(), rand.New(rand.NewSource(seed)))
			got := sel.Select(items, perf, difficulty.Easy, Criteria{Count: 4, ExamWeighted: weighted}, now)

			if len(got.Items) != 4 {
				t.Fatalf("seed %d weighted %v: got %d items, want 4", seed, weighted, len(got.Items))
			}
			if got.Shortfall != 0 {
				t.Errorf("seed %d weighted %v: shortfall %d, want 0", seed, weighted, got.Shortfall)
			}
			seen := make(map[string]int)
			for _, it := range got.Items {
				seen[it.ID]++
			}
			for id, n := range seen {
				if n > 1 {
					t.Errorf("seed %d weighted %v: item %q selected %d times", seed, weighted, id, n)
				}
			}
		}
	}
}

func TestSelect_WeakTopicsPrioritized(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	perf := performance.NewStore(performance.DefaultConfig())
	items := buildPool(p, 10)
	now := time.Now()

	// implementation is weak (heavier weight), tooling is strong.
	for i := 0; i < 10; i++ {
		perf.RecordAnswer(fmt.Sprintf("x-impl-%d", i), "implementation", i < 3, nil, 2.5, now)
		perf.RecordAnswer(fmt.Sprintf("x-tool-%d", i), "tooling", true, nil, 2.5, now)
	}

	got := sel.Select(items, perf, difficulty.Medium, Criteria{
		Count:          10,
		Topics:         []profile.TopicID{"implementation", "tooling"},
		PrioritizeWeak: true,
	}, now)

	impl := 0
	for _, it := range got.Items {
		if it.TopicID == "implementation" {
			impl++
		}
	}
	// Weak stage reserves ceil(10 × 0.4) = 4 slots for the weak topic.
	if impl < 4 {
		t.Errorf("weak topic got %d slots, want at least 4", impl)
	}
}

func TestWeakTopicsByPriority_Ordering(t *testing.T) {
	p := profile.Default()
	sel := New(p, DefaultConfig(), testRand())
	perf := performance.NewStore(performance.DefaultConfig())
	now := time.Now()

	// operations (weight 26): accuracy 0.0 → priority 26
	// fundamentals (weight 18): accuracy 0.4 → priority 10.8
	for i := 0; i < 5; i++ {
		perf.RecordAnswer(fmt.Sprintf("op-%d", i), "operations", false, nil, 2.5, now)
		perf.RecordAnswer(fmt.Sprintf("fu-%d", i), "fundamentals", i < 2, nil, 2.5, now)
	}

	got := sel.weakTopicsByPriority(perf)
	if len(got) < 2 {
		t.Fatalf("expected at least 2 weak topics, got %v", got)
	}
	if got[0] != "operations" {
		t.Errorf("first weak topic = %q, want operations", got[0])
	}
}

func TestSelect_DeterministicWithFixedSeed(t *testing.T) {
	p := profile.Default()
	perf := performance.NewStore(performance.DefaultConfig())
	items := buildPool(p, 10)
	now := time.Now()
	crit := Criteria{Count: 10, ExamWeighted: true}

	a := New(p, DefaultConfig(), rand.New(rand.NewSource(7))).Select(items, perf, difficulty.Medium, crit, now)
	b := New(p, DefaultConfig(), rand.New(rand.NewSource(7))).Select(items, perf, difficulty.Medium, crit, now)

	if len(a.Items) != len(b.Items) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Items), len(b.Items))
	}
	for i := range a.Items {
		if a.Items[i].ID != b.Items[i].ID {
			t.Fatalf("selection diverged at %d: %q vs %q", i, a.Items[i].ID, b.Items[i].ID)
		}
	}
}
