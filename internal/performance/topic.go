package performance

import (
	"sort"
	"time"

	"github.com/prepdrill/prepdrill/internal/profile"
)

// TopicPerformance aggregates all-time and recent performance for one
// exam domain. The mastered and struggle concept sets stay disjoint: a
// concept answered correctly moves from struggle to mastered, and a
// concept answered incorrectly moves the other way.
type TopicPerformance struct {
	TopicID            profile.TopicID
	QuestionsAttempted int
	CorrectCount       int
	LastPracticed      *time.Time

	// recentResults holds the last N answers for recent accuracy.
	recentResults []bool
	recentWindow  int

	mastered map[string]bool
	struggle map[string]bool
}

func newTopicPerformance(id profile.TopicID, recentWindow int) *TopicPerformance {
	return &TopicPerformance{
		TopicID:      id,
		recentWindow: recentWindow,
		mastered:     make(map[string]bool),
		struggle:     make(map[string]bool),
	}
}

// Accuracy returns the all-time accuracy for this topic.
func (tp *TopicPerformance) Accuracy() float64 {
	if tp.QuestionsAttempted == 0 {
		return 0
	}
	return float64(tp.CorrectCount) / float64(tp.QuestionsAttempted)
}

// RecentAccuracy returns accuracy over the last recentWindow answers.
func (tp *TopicPerformance) RecentAccuracy() float64 {
	if len(tp.recentResults) == 0 {
		return 0
	}
	correct := 0
	for _, r := range tp.recentResults {
		if r {
			correct++
		}
	}
	return float64(correct) / float64(len(tp.recentResults))
}

// minNeedsWorkAttempts is the smallest sample on which accuracy may
// flag a topic. Below it, a single miss would dominate the ratio.
const minNeedsWorkAttempts = 5

// NeedsWork reports whether the topic's all-time accuracy is below the
// needs-work threshold. A topic never attempted needs work; a topic
// with fewer than minNeedsWorkAttempts answers is not judged on
// accuracy yet.
func (tp *TopicPerformance) NeedsWork(threshold float64) bool {
	if tp.QuestionsAttempted == 0 {
		return true
	}
	if tp.QuestionsAttempted < minNeedsWorkAttempts {
		return false
	}
	return tp.Accuracy() < threshold
}

// record applies one answer to the topic aggregates.
func (tp *TopicPerformance) record(correct bool, concepts []string, now time.Time) {
	tp.QuestionsAttempted++
	if correct {
		tp.CorrectCount++
	}
	t := now
	tp.LastPracticed = &t

	tp.recentResults = append(tp.recentResults, correct)
	if len(tp.recentResults) > tp.recentWindow {
		tp.recentResults = tp.recentResults[len(tp.recentResults)-tp.recentWindow:]
	}

	for _, c := range concepts {
		if correct {
			delete(tp.struggle, c)
			tp.mastered[c] = true
		} else {
			delete(tp.mastered, c)
			tp.struggle[c] = true
		}
	}
}

// MasteredConcepts returns the mastered concept tags, sorted.
func (tp *TopicPerformance) MasteredConcepts() []string {
	return sortedKeys(tp.mastered)
}

// StruggleConcepts returns the struggle concept tags, sorted.
func (tp *TopicPerformance) StruggleConcepts() []string {
	return sortedKeys(tp.struggle)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
