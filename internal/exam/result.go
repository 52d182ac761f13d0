package exam

import (
	"sort"
	"time"

	"github.com/prepdrill/prepdrill/internal/profile"
)

// TopicScore is one topic's breakdown within an exam result.
type TopicScore struct {
	Total      int
	Correct    int
	Percentage float64
	Passed     bool
}

// Result is the immutable outcome of a submitted exam.
type Result struct {
	SessionID     string
	CompletedAt   time.Time
	QuestionCount int
	CorrectCount  int
	RawScore      float64 // percent correct, 0-100
	ScaledScore   int
	Passed        bool
	DurationSec   int
	TopicScores   map[profile.TopicID]TopicScore
	WeakTopics    []profile.TopicID // percentage below the topic pass line
	StrongTopics  []profile.TopicID // percentage at or above the strong line
}

// score computes the result for a finished session.
func score(p profile.Profile, s *Session, now time.Time) Result {
	perTopic := make(map[profile.TopicID]*TopicScore)
	correct := 0

	for _, it := range s.Items {
		ts := perTopic[it.TopicID]
		if ts == nil {
			ts = &TopicScore{}
			perTopic[it.TopicID] = ts
		}
		ts.Total++
		a := s.Answers[it.ID]
		if a != nil && a.Selected != nil && *a.Selected == it.Answer {
			ts.Correct++
			correct++
		}
	}

	topicScores := make(map[profile.TopicID]TopicScore, len(perTopic))
	var weak, strong []profile.TopicID
	for id, ts := range perTopic {
		ts.Percentage = float64(ts.Correct) / float64(ts.Total) * 100
		ts.Passed = ts.Percentage >= p.TopicPassPct
		topicScores[id] = *ts

		if ts.Percentage < p.TopicPassPct {
			weak = append(weak, id)
		}
		if ts.Percentage >= p.TopicStrongPct {
			strong = append(strong, id)
		}
	}
	sort.Slice(weak, func(i, j int) bool { return weak[i] < weak[j] })
	sort.Slice(strong, func(i, j int) bool { return strong[i] < strong[j] })

	total := len(s.Items)
	rawAccuracy := 0.0
	if total > 0 {
		rawAccuracy = float64(correct) / float64(total)
	}
	scaled := p.ScaledScore(rawAccuracy)

	return Result{
		SessionID:     s.ID,
		CompletedAt:   now,
		QuestionCount: total,
		CorrectCount:  correct,
		RawScore:      rawAccuracy * 100,
		ScaledScore:   scaled,
		Passed:        scaled >= p.PassingScaledScore,
		DurationSec:   s.elapsedSec(),
		TopicScores:   topicScores,
		WeakTopics:    weak,
		StrongTopics:  strong,
	}
}
