package selector

import (
	"math"

	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
)

// SampleExamSet draws an exam-shaped item set: each topic's quota is
// total × weight/100, rounded independently. If rounding or a thin pool
// leaves the set short of total, the gap is filled with random items from
// whatever remains. The returned shortfall is how many items could not be
// sourced at all.
func (s *Selector) SampleExamSet(items []pool.Item, total int) ([]pool.Item, int) {
	byTopic := make(map[profile.TopicID][]pool.Item)
	for _, it := range items {
		byTopic[it.TopicID] = append(byTopic[it.TopicID], it)
	}

	chosen := make(map[string]bool, total)
	var result []pool.Item

	for _, t := range s.profile.Topics {
		quota := int(math.Round(float64(total) * t.ExamWeight / 100))
		bucket := s.shuffled(byTopic[t.ID])
		for i := 0; i < quota && i < len(bucket); i++ {
			chosen[bucket[i].ID] = true
			result = append(result, bucket[i])
		}
	}

	if len(result) > total {
		result = result[:total]
	}

	// Independent rounding can leave a gap; fill it from the rest of the
	// pool without regard to topic.
	if len(result) < total {
		for _, it := range s.shuffled(items) {
			if len(result) >= total {
				break
			}
			if chosen[it.ID] {
				continue
			}
			chosen[it.ID] = true
			result = append(result, it)
		}
	}

	s.rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	shortfall := total - len(result)
	if shortfall < 0 {
		shortfall = 0
	}
	return result, shortfall
}
