package performance

import (
	"time"

	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/store"
)

// NewStoreFromSnapshot creates a store seeded from persisted state.
// Entries that fail to parse are skipped rather than failing the load;
// a partially restored store beats no store at all.
func NewStoreFromSnapshot(cfg Config, snap *store.SnapshotData, valid func(profile.TopicID) bool) *Store {
	s := NewStore(cfg)
	if snap == nil {
		return s
	}

	s.totalAnswered = snap.TotalAnswered
	s.recentResults = append(s.recentResults, snap.RecentResults...)
	if len(s.recentResults) > s.cfg.RecentWindow {
		s.recentResults = s.recentResults[len(s.recentResults)-s.cfg.RecentWindow:]
	}
	s.recentlySeen = append(s.recentlySeen, snap.RecentlySeen...)
	if len(s.recentlySeen) > s.cfg.RecentlySeenWindow {
		s.recentlySeen = s.recentlySeen[len(s.recentlySeen)-s.cfg.RecentlySeenWindow:]
	}

	for id, td := range snap.Topics {
		topicID := profile.TopicID(id)
		// Unknown topic IDs in stored data are rejected, not cast through.
		if valid != nil && !valid(topicID) {
			continue
		}
		tp := newTopicPerformance(topicID, s.cfg.TopicRecentWindow)
		tp.QuestionsAttempted = td.QuestionsAttempted
		tp.CorrectCount = td.CorrectCount
		tp.recentResults = append(tp.recentResults, td.RecentResults...)
		if td.LastPracticed != nil {
			if t, err := time.Parse(time.RFC3339, *td.LastPracticed); err == nil {
				tp.LastPracticed = &t
			}
		}
		for _, c := range td.MasteredConcepts {
			tp.mastered[c] = true
		}
		for _, c := range td.StruggleConcepts {
			// The disjoint invariant wins over whatever was stored.
			if !tp.mastered[c] {
				tp.struggle[c] = true
			}
		}
		s.topics[topicID] = tp
	}

	for id, hd := range snap.Items {
		topicID := profile.TopicID(hd.TopicID)
		if valid != nil && !valid(topicID) {
			continue
		}
		lastAttempted, err := time.Parse(time.RFC3339, hd.LastAttempted)
		if err != nil {
			continue
		}
		nextReview, err := time.Parse(time.RFC3339, hd.NextReviewDate)
		if err != nil {
			continue
		}
		s.items[id] = &ItemHistory{
			ItemID:         hd.ItemID,
			TopicID:        topicID,
			Attempts:       hd.Attempts,
			CorrectCount:   hd.CorrectCount,
			LastAttempted:  lastAttempted,
			LastResult:     hd.LastResult,
			EaseFactor:     hd.EaseFactor,
			IntervalDays:   hd.IntervalDays,
			NextReviewDate: nextReview,
		}
	}

	return s
}

// FillSnapshot exports the current performance state into snap.
func (s *Store) FillSnapshot(snap *store.SnapshotData) {
	snap.TotalAnswered = s.totalAnswered
	snap.RecentResults = append([]bool(nil), s.recentResults...)
	snap.RecentlySeen = append([]string(nil), s.recentlySeen...)

	snap.Topics = make(map[string]*store.TopicPerformanceData, len(s.topics))
	for id, tp := range s.topics {
		td := &store.TopicPerformanceData{
			TopicID:            string(id),
			QuestionsAttempted: tp.QuestionsAttempted,
			CorrectCount:       tp.CorrectCount,
			RecentResults:      append([]bool(nil), tp.recentResults...),
			MasteredConcepts:   tp.MasteredConcepts(),
			StruggleConcepts:   tp.StruggleConcepts(),
		}
		if tp.LastPracticed != nil {
			ts := tp.LastPracticed.Format(time.RFC3339)
			td.LastPracticed = &ts
		}
		snap.Topics[string(id)] = td
	}

	snap.Items = make(map[string]*store.ItemHistoryData, len(s.items))
	for id, h := range s.items {
		snap.Items[id] = &store.ItemHistoryData{
			ItemID:         h.ItemID,
			TopicID:        string(h.TopicID),
			Attempts:       h.Attempts,
			CorrectCount:   h.CorrectCount,
			LastAttempted:  h.LastAttempted.Format(time.RFC3339),
			LastResult:     h.LastResult,
			EaseFactor:     h.EaseFactor,
			IntervalDays:   h.IntervalDays,
			NextReviewDate: h.NextReviewDate.Format(time.RFC3339),
		}
	}
}
