package exam

import (
	"time"

	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/store"
)

// LoadHistory restores retained results from snapshot data. Entries
// with unparseable timestamps are skipped rather than failing the load.
func (m *Simulator) LoadHistory(data []*store.ExamResultData) {
	m.history = m.history[:0]
	for _, d := range data {
		if d == nil {
			continue
		}
		completed, err := time.Parse(time.RFC3339, d.CompletedAt)
		if err != nil {
			continue
		}
		r := Result{
			SessionID:     d.SessionID,
			CompletedAt:   completed,
			QuestionCount: d.QuestionCount,
			CorrectCount:  d.CorrectCount,
			RawScore:      d.RawScore,
			ScaledScore:   d.ScaledScore,
			Passed:        d.Passed,
			DurationSec:   d.DurationSec,
			TopicScores:   make(map[profile.TopicID]TopicScore, len(d.TopicScores)),
		}
		for id, ts := range d.TopicScores {
			if ts == nil {
				continue
			}
			r.TopicScores[profile.TopicID(id)] = TopicScore{
				Total:      ts.Total,
				Correct:    ts.Correct,
				Percentage: ts.Percentage,
				Passed:     ts.Passed,
			}
		}
		for _, id := range d.WeakTopics {
			r.WeakTopics = append(r.WeakTopics, profile.TopicID(id))
		}
		for _, id := range d.StrongTopics {
			r.StrongTopics = append(r.StrongTopics, profile.TopicID(id))
		}
		m.record(r)
	}
}

// FillSnapshot writes retained results into snapshot data, oldest first.
func (m *Simulator) FillSnapshot(snap *store.SnapshotData) {
	snap.ExamHistory = snap.ExamHistory[:0]
	for _, r := range m.history {
		d := &store.ExamResultData{
			SessionID:     r.SessionID,
			CompletedAt:   r.CompletedAt.Format(time.RFC3339),
			QuestionCount: r.QuestionCount,
			CorrectCount:  r.CorrectCount,
			RawScore:      r.RawScore,
			ScaledScore:   r.ScaledScore,
			Passed:        r.Passed,
			DurationSec:   r.DurationSec,
			TopicScores:   make(map[string]*store.TopicScoreData, len(r.TopicScores)),
		}
		for id, ts := range r.TopicScores {
			d.TopicScores[string(id)] = &store.TopicScoreData{
				Total:      ts.Total,
				Correct:    ts.Correct,
				Percentage: ts.Percentage,
				Passed:     ts.Passed,
			}
		}
		for _, id := range r.WeakTopics {
			d.WeakTopics = append(d.WeakTopics, string(id))
		}
		for _, id := range r.StrongTopics {
			d.StrongTopics = append(d.StrongTopics, string(id))
		}
		snap.ExamHistory = append(snap.ExamHistory, d)
	}
}
