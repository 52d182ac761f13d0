package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current snapshot schema version. Loaders must
// treat unknown versions as corrupt and fall back to a fresh state.
const SnapshotVersion = 1

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the versioned engine-state schema persisted between
// sessions. All times are RFC3339 strings so the JSON stays portable.
type SnapshotData struct {
	Version       int                              `json:"version"`
	Difficulty    string                           `json:"difficulty"`
	RecentResults []bool                           `json:"recent_results,omitempty"`
	RecentlySeen  []string                         `json:"recently_seen,omitempty"`
	TotalAnswered int                              `json:"total_answered"`
	Topics        map[string]*TopicPerformanceData `json:"topics,omitempty"`
	Items         map[string]*ItemHistoryData      `json:"items,omitempty"`
	ExamHistory   []*ExamResultData                `json:"exam_history,omitempty"`
}

// TopicPerformanceData is the persisted form of one topic's history.
type TopicPerformanceData struct {
	TopicID            string   `json:"topic_id"`
	QuestionsAttempted int      `json:"questions_attempted"`
	CorrectCount       int      `json:"correct_count"`
	RecentResults      []bool   `json:"recent_results,omitempty"`
	LastPracticed      *string  `json:"last_practiced,omitempty"`
	MasteredConcepts   []string `json:"mastered_concepts,omitempty"`
	StruggleConcepts   []string `json:"struggle_concepts,omitempty"`
}

// ItemHistoryData is the persisted form of one item's attempt and
// spaced-repetition history.
type ItemHistoryData struct {
	ItemID         string  `json:"item_id"`
	TopicID        string  `json:"topic_id"`
	Attempts       int     `json:"attempts"`
	CorrectCount   int     `json:"correct_count"`
	LastAttempted  string  `json:"last_attempted"`
	LastResult     bool    `json:"last_result"`
	EaseFactor     float64 `json:"ease_factor"`
	IntervalDays   int     `json:"interval_days"`
	NextReviewDate string  `json:"next_review_date"`
}

// ExamResultData is the persisted form of one completed exam.
type ExamResultData struct {
	SessionID     string                     `json:"session_id"`
	CompletedAt   string                     `json:"completed_at"`
	QuestionCount int                        `json:"question_count"`
	CorrectCount  int                        `json:"correct_count"`
	RawScore      float64                    `json:"raw_score"`
	ScaledScore   int                        `json:"scaled_score"`
	Passed        bool                       `json:"passed"`
	DurationSec   int                        `json:"duration_sec"`
	TopicScores   map[string]*TopicScoreData `json:"topic_scores,omitempty"`
	WeakTopics    []string                   `json:"weak_topics,omitempty"`
	StrongTopics  []string                   `json:"strong_topics,omitempty"`
}

// TopicScoreData is one topic's breakdown within an exam result.
type TopicScoreData struct {
	Total      int     `json:"total"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
	Passed     bool    `json:"passed"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures a single answer for the event log.
type AnswerEventData struct {
	ItemID        string
	TopicID       string
	Correct       bool
	Difficulty    string
	Source        string // "practice" or "exam"
	ExamSessionID string // empty for practice answers
	TimeSpentSec  int
}

// ExamEventData captures an exam session lifecycle action.
type ExamEventData struct {
	SessionID     string
	Action        string // "started", "paused", "resumed", "submitted", "abandoned"
	QuestionCount int
	CorrectCount  int
	RawScore      float64
	ScaledScore   int
	Passed        bool
	DurationSec   int
}

// AnswerRecord is a queried answer event.
type AnswerRecord struct {
	Sequence  int64
	Timestamp time.Time
	ItemID    string
	TopicID   string
	Correct   bool
	Source    string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records a practice or exam answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendExamEvent records an exam lifecycle action.
	AppendExamEvent(ctx context.Context, data ExamEventData) error

	// QueryAnswerEvents returns answer events, newest first.
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerRecord, error)

	// TopicAccuracy returns all-time accuracy and sample count for a topic.
	TopicAccuracy(ctx context.Context, topicID string) (float64, int, error)

	// LatestAnswerTime returns the timestamp of the most recent answer
	// for a topic, or the zero time if none exist.
	LatestAnswerTime(ctx context.Context, topicID string) (time.Time, error)
}
