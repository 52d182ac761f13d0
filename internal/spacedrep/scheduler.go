package spacedrep

import (
	"math"
	"sort"
	"time"

	"github.com/prepdrill/prepdrill/internal/performance"
)

// Params tunes the two-factor ease/interval model. The constants are
// heuristic; keeping them here rather than hard-coded lets a product
// instance retune without touching the algorithm.
type Params struct {
	DefaultEase    float64 // ease for never-seen items
	MinEase        float64 // floor; intervals never shrink faster than this allows
	EaseBonus      float64 // added on a correct answer
	EasePenalty    float64 // subtracted on an incorrect answer
	FirstInterval  int     // days after the first correct answer
	SecondInterval int     // days after the second correct answer
}

// DefaultParams returns the standard SM-2 family constants.
func DefaultParams() Params {
	return Params{
		DefaultEase:    2.5,
		MinEase:        1.3,
		EaseBonus:      0.1,
		EasePenalty:    0.2,
		FirstInterval:  1,
		SecondInterval: 6,
	}
}

// Scheduler computes next-review intervals for items.
type Scheduler struct {
	params Params
}

// NewScheduler creates a scheduler. Zero param fields fall back to
// defaults.
func NewScheduler(p Params) Scheduler {
	def := DefaultParams()
	if p.DefaultEase == 0 {
		p.DefaultEase = def.DefaultEase
	}
	if p.MinEase == 0 {
		p.MinEase = def.MinEase
	}
	if p.EaseBonus == 0 {
		p.EaseBonus = def.EaseBonus
	}
	if p.EasePenalty == 0 {
		p.EasePenalty = def.EasePenalty
	}
	if p.FirstInterval == 0 {
		p.FirstInterval = def.FirstInterval
	}
	if p.SecondInterval == 0 {
		p.SecondInterval = def.SecondInterval
	}
	return Scheduler{params: p}
}

// DefaultEase returns the ease factor assigned to new items.
func (s Scheduler) DefaultEase() float64 {
	return s.params.DefaultEase
}

// Update recomputes the scheduling fields on h after an answer.
//
// Correct answers walk the expanding ladder: first interval, second
// interval, then round(previous × ease), with ease growing by the bonus.
// Incorrect answers reset the interval to the first step and shrink ease
// by the penalty. Ease is floored but has no ceiling: long-mastered items
// may grow intervals without bound, which is intended.
func (s Scheduler) Update(h *performance.ItemHistory, correct bool, now time.Time) {
	if h.EaseFactor == 0 {
		h.EaseFactor = s.params.DefaultEase
	}

	if correct {
		switch {
		case h.IntervalDays < s.params.FirstInterval:
			// First step of the ladder; ease is untouched so the first
			// multiplied interval uses exactly one bonus increment.
			h.IntervalDays = s.params.FirstInterval
		case h.IntervalDays == s.params.FirstInterval:
			h.IntervalDays = s.params.SecondInterval
			h.EaseFactor = math.Max(s.params.MinEase, h.EaseFactor+s.params.EaseBonus)
		default:
			h.IntervalDays = int(math.Round(float64(h.IntervalDays) * h.EaseFactor))
			h.EaseFactor = math.Max(s.params.MinEase, h.EaseFactor+s.params.EaseBonus)
		}
	} else {
		h.IntervalDays = s.params.FirstInterval
		h.EaseFactor = math.Max(s.params.MinEase, h.EaseFactor-s.params.EasePenalty)
	}

	h.NextReviewDate = now.AddDate(0, 0, h.IntervalDays)
}

// IsDue reports whether an item is due for review. Only missed items are
// actively resurfaced; items answered correctly last time lapse passively.
func IsDue(h *performance.ItemHistory, now time.Time) bool {
	if h == nil || h.Attempts == 0 {
		return false
	}
	return !h.LastResult && !now.Before(h.NextReviewDate)
}

// OverdueDays returns how many days past due the item is, or 0 if not due.
func OverdueDays(h *performance.ItemHistory, now time.Time) float64 {
	if !IsDue(h, now) {
		return 0
	}
	return now.Sub(h.NextReviewDate).Hours() / 24.0
}

// DueItems returns the IDs of all due-for-review items in perf, sorted
// most overdue first with the item ID as tiebreaker.
func DueItems(perf *performance.Store, now time.Time) []string {
	type dueItem struct {
		id      string
		overdue float64
	}
	var due []dueItem

	for id, h := range perf.Items() {
		if IsDue(h, now) {
			due = append(due, dueItem{id: id, overdue: OverdueDays(h, now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})

	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}
