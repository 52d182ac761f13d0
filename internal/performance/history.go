package performance

import (
	"time"

	"github.com/prepdrill/prepdrill/internal/profile"
)

// ItemHistory tracks every attempt on a single question item, including
// the spaced-repetition scheduling fields the scheduler maintains.
// Created on the first attempt and never deleted.
type ItemHistory struct {
	ItemID        string
	TopicID       profile.TopicID
	Attempts      int
	CorrectCount  int
	LastAttempted time.Time
	LastResult    bool

	// Spaced-repetition fields, owned by spacedrep.Scheduler.
	EaseFactor     float64 // never below the scheduler's floor
	IntervalDays   int
	NextReviewDate time.Time
}

// Accuracy returns the all-time accuracy for this item.
func (h *ItemHistory) Accuracy() float64 {
	if h.Attempts == 0 {
		return 0
	}
	return float64(h.CorrectCount) / float64(h.Attempts)
}
