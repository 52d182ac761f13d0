package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prepdrill/prepdrill/ent"
	"github.com/prepdrill/prepdrill/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetTopicID(data.TopicID).
		SetCorrect(data.Correct).
		SetDifficulty(data.Difficulty).
		SetSource(data.Source).
		SetTimeSpentSec(data.TimeSpentSec)

	if data.ExamSessionID != "" {
		builder = builder.SetExamSessionID(data.ExamSessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerRecord, error) {
	query := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(answerevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(answerevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(answerevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(answerevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	records := make([]AnswerRecord, len(events))
	for i, e := range events {
		records[i] = AnswerRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ItemID:    e.ItemID,
			TopicID:   e.TopicID,
			Correct:   e.Correct,
			Source:    e.Source,
		}
	}
	return records, nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topicID string) (float64, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.TopicID(topicID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}

func (r *eventRepo) LatestAnswerTime(ctx context.Context, topicID string) (time.Time, error) {
	ae, err := r.client.AnswerEvent.Query().
		Where(answerevent.TopicID(topicID)).
		Order(ent.Desc(answerevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest answer time: %w", err)
	}
	return ae.Timestamp, nil
}
