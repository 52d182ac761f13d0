package performance

import (
	"time"

	"github.com/prepdrill/prepdrill/internal/profile"
)

// Config sizes the rolling windows and the needs-work threshold.
type Config struct {
	RecentWindow       int     // rolling correctness window (difficulty input)
	TopicRecentWindow  int     // per-topic recent accuracy window
	RecentlySeenWindow int     // item dedup window for selection
	NeedsWorkThreshold float64 // all-time accuracy below this flags a topic
}

// DefaultConfig returns the standard window sizes.
func DefaultConfig() Config {
	return Config{
		RecentWindow:       10,
		TopicRecentWindow:  10,
		RecentlySeenWindow: 50,
		NeedsWorkThreshold: 0.70,
	}
}

// Store holds one learner's durable per-topic and per-item history plus
// the rolling windows the selector and difficulty controller read.
type Store struct {
	cfg Config

	topics map[profile.TopicID]*TopicPerformance
	items  map[string]*ItemHistory

	recentResults []bool
	recentlySeen  []string
	totalAnswered int
}

// NewStore creates an empty performance store.
func NewStore(cfg Config) *Store {
	def := DefaultConfig()
	if cfg.RecentWindow == 0 {
		cfg.RecentWindow = def.RecentWindow
	}
	if cfg.TopicRecentWindow == 0 {
		cfg.TopicRecentWindow = def.TopicRecentWindow
	}
	if cfg.RecentlySeenWindow == 0 {
		cfg.RecentlySeenWindow = def.RecentlySeenWindow
	}
	if cfg.NeedsWorkThreshold == 0 {
		cfg.NeedsWorkThreshold = def.NeedsWorkThreshold
	}
	return &Store{
		cfg:    cfg,
		topics: make(map[profile.TopicID]*TopicPerformance),
		items:  make(map[string]*ItemHistory),
	}
}

// Item returns the history for an item, or nil if never attempted.
func (s *Store) Item(itemID string) *ItemHistory {
	return s.items[itemID]
}

// Topic returns the performance record for a topic, creating a default
// record on first access.
func (s *Store) Topic(id profile.TopicID) *TopicPerformance {
	if tp, ok := s.topics[id]; ok {
		return tp
	}
	tp := newTopicPerformance(id, s.cfg.TopicRecentWindow)
	s.topics[id] = tp
	return tp
}

// Topics returns all tracked topic records.
func (s *Store) Topics() map[profile.TopicID]*TopicPerformance {
	result := make(map[profile.TopicID]*TopicPerformance, len(s.topics))
	for id, tp := range s.topics {
		result[id] = tp
	}
	return result
}

// Items returns all tracked item histories.
func (s *Store) Items() map[string]*ItemHistory {
	result := make(map[string]*ItemHistory, len(s.items))
	for id, h := range s.items {
		result[id] = h
	}
	return result
}

// RecentResults returns the rolling correctness window, oldest first.
func (s *Store) RecentResults() []bool {
	out := make([]bool, len(s.recentResults))
	copy(out, s.recentResults)
	return out
}

// TotalAnswered returns the lifetime answer count.
func (s *Store) TotalAnswered() int {
	return s.totalAnswered
}

// RecentlySeen reports whether an item is inside the dedup window.
func (s *Store) RecentlySeen(itemID string) bool {
	for _, id := range s.recentlySeen {
		if id == itemID {
			return true
		}
	}
	return false
}

// NeedsWorkThreshold exposes the configured threshold for callers that
// classify topics.
func (s *Store) NeedsWorkThreshold() float64 {
	return s.cfg.NeedsWorkThreshold
}

// RecordAnswer applies one answer to the item, topic, and window state.
// It returns the item history so the scheduler can update the
// spaced-repetition fields in place. The item is created on first attempt
// with the default ease factor supplied by the caller.
func (s *Store) RecordAnswer(itemID string, topicID profile.TopicID, correct bool, concepts []string, defaultEase float64, now time.Time) *ItemHistory {
	h, ok := s.items[itemID]
	if !ok {
		h = &ItemHistory{
			ItemID:     itemID,
			TopicID:    topicID,
			EaseFactor: defaultEase,
		}
		s.items[itemID] = h
	}
	h.Attempts++
	if correct {
		h.CorrectCount++
	}
	h.LastAttempted = now
	h.LastResult = correct

	s.Topic(topicID).record(correct, concepts, now)

	s.recentResults = append(s.recentResults, correct)
	if len(s.recentResults) > s.cfg.RecentWindow {
		s.recentResults = s.recentResults[len(s.recentResults)-s.cfg.RecentWindow:]
	}

	s.markSeen(itemID)
	s.totalAnswered++

	return h
}

// MarkSeen adds an item to the recently-seen window without recording an
// answer. Used when items are presented but not yet answered.
func (s *Store) MarkSeen(itemID string) {
	s.markSeen(itemID)
}

func (s *Store) markSeen(itemID string) {
	// Drop a prior occurrence so the window holds distinct items.
	for i, id := range s.recentlySeen {
		if id == itemID {
			s.recentlySeen = append(s.recentlySeen[:i], s.recentlySeen[i+1:]...)
			break
		}
	}
	s.recentlySeen = append(s.recentlySeen, itemID)
	if len(s.recentlySeen) > s.cfg.RecentlySeenWindow {
		s.recentlySeen = s.recentlySeen[len(s.recentlySeen)-s.cfg.RecentlySeenWindow:]
	}
}
