package selector

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/prepdrill/prepdrill/internal/difficulty"
	"github.com/prepdrill/prepdrill/internal/performance"
	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/spacedrep"
)

// Criteria describes one selection request.
type Criteria struct {
	// Topics restricts the pool to these topics. Empty means all.
	Topics []profile.TopicID

	// Count is the requested number of items. The result may be smaller;
	// see Selection.Shortfall.
	Count int

	// ExcludeRecent drops items inside the recently-seen window.
	ExcludeRecent bool

	// PrioritizeWeak reserves part of the set for needs-work topics.
	PrioritizeWeak bool

	// IncludeReviewDue reserves part of the set for due-for-review items.
	IncludeReviewDue bool

	// ExamWeighted biases the filler stage by topic exam weight instead
	// of sampling uniformly.
	ExamWeighted bool
}

// Selection is the outcome of a Select call. Shortfall is how many items
// short of Criteria.Count the result is; a shortfall is reported, never
// raised as an error, so callers decide how to handle partial sets.
type Selection struct {
	Items     []pool.Item
	Shortfall int
}

// Config caps how much of a selection each priority stage may claim.
type Config struct {
	ReviewCapRatio float64 // share reserved for review-due items
	WeakCapRatio   float64 // share reserved for weak-topic items
}

// DefaultConfig returns the standard 20%/40% stage caps.
func DefaultConfig() Config {
	return Config{
		ReviewCapRatio: 0.2,
		WeakCapRatio:   0.4,
	}
}

// Selector blends review-due items, weak-topic items, and balanced
// filler into a practice set.
type Selector struct {
	profile profile.Profile
	cfg     Config
	rng     *rand.Rand
}

// New creates a selector. A nil rng falls back to a time-seeded source;
// tests inject a fixed seed for determinism.
func New(p profile.Profile, cfg Config, rng *rand.Rand) *Selector {
	def := DefaultConfig()
	if cfg.ReviewCapRatio == 0 {
		cfg.ReviewCapRatio = def.ReviewCapRatio
	}
	if cfg.WeakCapRatio == 0 {
		cfg.WeakCapRatio = def.WeakCapRatio
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{profile: p, cfg: cfg, rng: rng}
}

// Config returns the selector's effective stage caps.
func (s *Selector) Config() Config {
	return s.cfg
}

// Select builds an ordered practice set from the pool. Stages run in
// priority order, each excluding items already chosen, and the final set
// is permuted so stage ordering never leaks into presentation order.
func (s *Selector) Select(items []pool.Item, perf *performance.Store, level difficulty.Level, crit Criteria, now time.Time) Selection {
	candidates := pool.FilterTopics(items, crit.Topics)
	if crit.ExcludeRecent {
		var kept []pool.Item
		for _, it := range candidates {
			if !perf.RecentlySeen(it.ID) {
				kept = append(kept, it)
			}
		}
		candidates = kept
	}

	chosen := make(map[string]bool, crit.Count)
	var result []pool.Item
	take := func(it pool.Item) {
		chosen[it.ID] = true
		result = append(result, it)
	}

	if crit.IncludeReviewDue {
		reviewCap := int(math.Ceil(float64(crit.Count) * s.cfg.ReviewCapRatio))
		byID := pool.ByID(candidates)
		for _, id := range spacedrep.DueItems(perf, now) {
			if len(result) >= reviewCap {
				break
			}
			it, ok := byID[id]
			if !ok || chosen[it.ID] {
				continue
			}
			take(it)
		}
	}

	if crit.PrioritizeWeak {
		weakCap := len(result) + int(math.Ceil(float64(crit.Count)*s.cfg.WeakCapRatio))
		if weakCap > crit.Count {
			weakCap = crit.Count
		}
		for _, topicID := range s.weakTopicsByPriority(perf) {
			if len(result) >= weakCap {
				break
			}
			topicItems := s.shuffled(itemsForTopic(candidates, topicID, chosen))
			for _, it := range topicItems {
				if len(result) >= weakCap {
					break
				}
				take(it)
			}
		}
	}

	// Filler: exam-weighted or uniform, preferring the controller's
	// current difficulty before falling back to the rest of the pool.
	// Each tier is computed after the previous one has claimed its
	// items, so the fallback never re-offers anything already chosen.
	for _, lvl := range []difficulty.Level{level, ""} {
		if len(result) >= crit.Count {
			break
		}
		tier := remaining(candidates, chosen, lvl)
		if crit.ExamWeighted {
			result = s.fillWeighted(result, tier, chosen, crit.Count)
		} else {
			for _, it := range s.shuffled(tier) {
				if len(result) >= crit.Count {
					break
				}
				if chosen[it.ID] {
					continue
				}
				take(it)
			}
		}
	}

	s.rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	shortfall := crit.Count - len(result)
	if shortfall < 0 {
		shortfall = 0
	}
	return Selection{Items: result, Shortfall: shortfall}
}

// weakTopicsByPriority returns needs-work topics ordered by
// examWeight × (1 − accuracy) descending: heavier, weaker topics first.
func (s *Selector) weakTopicsByPriority(perf *performance.Store) []profile.TopicID {
	type weakTopic struct {
		id       profile.TopicID
		priority float64
	}
	var weak []weakTopic
	threshold := perf.NeedsWorkThreshold()

	for id, tp := range perf.Topics() {
		if !tp.NeedsWork(threshold) {
			continue
		}
		priority := s.profile.Weight(id) * (1 - tp.Accuracy())
		weak = append(weak, weakTopic{id: id, priority: priority})
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].priority != weak[j].priority {
			return weak[i].priority > weak[j].priority
		}
		return weak[i].id < weak[j].id
	})

	ids := make([]profile.TopicID, len(weak))
	for i, w := range weak {
		ids[i] = w.id
	}
	return ids
}

// fillWeighted samples items by topic exam weight without replacement.
// Already-chosen candidates are dropped up front.
func (s *Selector) fillWeighted(result []pool.Item, candidates []pool.Item, chosen map[string]bool, count int) []pool.Item {
	byTopic := make(map[profile.TopicID][]pool.Item)
	for _, it := range candidates {
		if chosen[it.ID] {
			continue
		}
		byTopic[it.TopicID] = append(byTopic[it.TopicID], it)
	}

	for len(result) < count && len(byTopic) > 0 {
		var topics []profile.TopicID
		total := 0.0
		for id := range byTopic {
			topics = append(topics, id)
			total += s.profile.Weight(id)
		}
		sort.Slice(topics, func(i, j int) bool { return topics[i] < topics[j] })

		var picked profile.TopicID
		if total <= 0 {
			picked = topics[s.rng.Intn(len(topics))]
		} else {
			r := s.rng.Float64() * total
			for _, id := range topics {
				r -= s.profile.Weight(id)
				picked = id
				if r <= 0 {
					break
				}
			}
		}

		bucket := byTopic[picked]
		idx := s.rng.Intn(len(bucket))
		it := bucket[idx]
		bucket = append(bucket[:idx], bucket[idx+1:]...)
		if len(bucket) == 0 {
			delete(byTopic, picked)
		} else {
			byTopic[picked] = bucket
		}

		chosen[it.ID] = true
		result = append(result, it)
	}
	return result
}

func (s *Selector) shuffled(items []pool.Item) []pool.Item {
	out := make([]pool.Item, len(items))
	copy(out, items)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func itemsForTopic(items []pool.Item, topicID profile.TopicID, chosen map[string]bool) []pool.Item {
	var out []pool.Item
	for _, it := range items {
		if it.TopicID == topicID && !chosen[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

// remaining returns unchosen candidates, optionally restricted to one
// difficulty level (empty level means any).
func remaining(items []pool.Item, chosen map[string]bool, level difficulty.Level) []pool.Item {
	var out []pool.Item
	for _, it := range items {
		if chosen[it.ID] {
			continue
		}
		if level != "" && it.Difficulty != level {
			continue
		}
		out = append(out, it)
	}
	return out
}
