package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/prepdrill/prepdrill/internal/config"
	"github.com/prepdrill/prepdrill/internal/difficulty"
	"github.com/prepdrill/prepdrill/internal/exam"
	"github.com/prepdrill/prepdrill/internal/performance"
	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/predictor"
	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/schedule"
	"github.com/prepdrill/prepdrill/internal/selector"
	"github.com/prepdrill/prepdrill/internal/spacedrep"
	"github.com/prepdrill/prepdrill/internal/store"
)

// Engine is the single entry point the CLI talks to. It owns the
// learner's state, wires the selection, review, exam, and prediction
// components together, and persists a snapshot after every mutating
// call. One engine serves one learner; a mutex serializes calls.
type Engine struct {
	mu sync.Mutex

	profile profile.Profile
	perf    *performance.Store
	sched   spacedrep.Scheduler
	diff    difficulty.Controller
	level   difficulty.Level
	sel     *selector.Selector
	sim     *exam.Simulator
	pred    *predictor.Predictor
	plan    *schedule.Generator

	st            *store.Store
	snapshotsKept int
	perfCfg       performance.Config
	examCfg       exam.Config

	logger *slog.Logger
	now    func() time.Time
}

// Option adjusts an engine at construction time.
type Option func(*Engine)

// WithClock injects a clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand injects the random source used for selection and sampling.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.sel = selector.New(e.profile, e.sel.Config(), rng)
		e.sim = exam.NewSimulator(e.profile, e.sel)
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New builds an engine from configuration. State starts fresh; call
// Load to restore the latest snapshot.
func New(p profile.Profile, st *store.Store, cfg *config.Config, opts ...Option) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("engine profile: %w", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	perfCfg := performance.Config{
		RecentWindow:       cfg.Selector.RecentWindow,
		TopicRecentWindow:  cfg.Selector.RecentWindow,
		RecentlySeenWindow: cfg.Selector.RecentlySeenWindow,
		NeedsWorkThreshold: cfg.Selector.NeedsWorkThreshold,
	}
	selCfg := selector.Config{
		ReviewCapRatio: cfg.Selector.ReviewCapRatio,
		WeakCapRatio:   cfg.Selector.WeakCapRatio,
	}
	sel := selector.New(p, selCfg, nil)

	e := &Engine{
		profile: p,
		perf:    performance.NewStore(perfCfg),
		sched: spacedrep.NewScheduler(spacedrep.Params{
			DefaultEase: cfg.Review.DefaultEase,
			MinEase:     cfg.Review.MinEase,
		}),
		diff:  difficulty.NewController(difficulty.DefaultConfig()),
		level: difficulty.Medium,
		sel:   sel,
		sim:   exam.NewSimulator(p, sel),
		pred: predictor.New(p, predictor.Params{
			MockBlendWeight: cfg.Predictor.MockBlendWeight,
			MinAnswers:      cfg.Predictor.MinAnswers,
		}),
		plan: schedule.New(p),
		st:   st,
		snapshotsKept: func() int {
			if cfg.Database.SnapshotsKept > 0 {
				return cfg.Database.SnapshotsKept
			}
			return 10
		}(),
		perfCfg: perfCfg,
		examCfg: exam.Config{
			Questions:    cfg.Exam.Questions,
			TimeLimitMin: cfg.Exam.TimeLimitMin,
		},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Load restores the most recent snapshot. Missing or corrupt snapshots
// fall back to a fresh state; load never fails the caller over bad
// data, only over storage errors.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, err := e.st.SnapshotRepo().Latest(ctx)
	if err != nil {
		e.logger.Warn("snapshot unreadable, starting fresh", "error", err)
		return nil
	}
	if snap == nil {
		return nil
	}

	data := &snap.Data
	e.perf = performance.NewStoreFromSnapshot(e.perfCfg, data, e.profile.ValidTopic)
	if lvl := difficulty.Level(data.Difficulty); lvl.Valid() {
		e.level = lvl
	} else {
		e.level = difficulty.Medium
	}
	e.sim.LoadHistory(data.ExamHistory)
	return nil
}

// save persists the complete current state as one snapshot. Callers
// hold the mutex.
func (e *Engine) save(ctx context.Context) error {
	data := store.SnapshotData{
		Version:    store.SnapshotVersion,
		Difficulty: string(e.level),
	}
	e.perf.FillSnapshot(&data)
	e.sim.FillSnapshot(&data)

	snap := &store.Snapshot{Timestamp: e.now(), Data: data}
	if err := e.st.SnapshotRepo().Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := e.st.SnapshotRepo().Prune(ctx, e.snapshotsKept); err != nil {
		e.logger.Warn("snapshot prune failed", "error", err)
	}
	return nil
}

// RecordAnswer applies a practice answer: performance aggregates,
// spaced-repetition scheduling, and difficulty adjustment, then an
// event append and a snapshot save.
func (e *Engine) RecordAnswer(ctx context.Context, itemID string, topicID profile.TopicID, correct bool, concepts []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.profile.ValidTopic(topicID) {
		return fmt.Errorf("record answer: unknown topic %q", topicID)
	}
	e.recordAnswerLocked(ctx, itemID, topicID, correct, concepts, "practice", "", 0)
	return e.save(ctx)
}

func (e *Engine) recordAnswerLocked(ctx context.Context, itemID string, topicID profile.TopicID, correct bool, concepts []string, source, examSessionID string, timeSpentSec int) {
	now := e.now()
	h := e.perf.RecordAnswer(itemID, topicID, correct, concepts, e.sched.DefaultEase(), now)
	e.sched.Update(h, correct, now)
	e.level = e.diff.Adjust(e.level, e.perf.RecentResults())

	err := e.st.EventRepo().AppendAnswerEvent(ctx, store.AnswerEventData{
		ItemID:        itemID,
		TopicID:       string(topicID),
		Correct:       correct,
		Difficulty:    string(e.level),
		Source:        source,
		ExamSessionID: examSessionID,
		TimeSpentSec:  timeSpentSec,
	})
	if err != nil {
		e.logger.Warn("answer event append failed", "item", itemID, "error", err)
	}
}

// Selection picks the next practice set and marks the chosen items as
// recently seen.
func (e *Engine) Selection(ctx context.Context, items []pool.Item, crit selector.Criteria) (selector.Selection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sel := e.sel.Select(items, e.perf, e.level, crit, e.now())
	for _, it := range sel.Items {
		e.perf.MarkSeen(it.ID)
	}
	if err := e.save(ctx); err != nil {
		return selector.Selection{}, err
	}
	return sel, nil
}

// Difficulty returns the current adaptive difficulty level.
func (e *Engine) Difficulty() difficulty.Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.level
}

// Performance exposes read access to the learner's aggregates.
func (e *Engine) Performance() *performance.Store {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.perf
}

// DueReviews returns item IDs due for review, most overdue first.
func (e *Engine) DueReviews() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return spacedrep.DueItems(e.perf, e.now())
}

// Prediction computes the current score forecast.
func (e *Engine) Prediction() predictor.Prediction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pred.Predict(e.perf, e.sim.History())
}

// Schedule builds a study plan toward targetDate.
func (e *Engine) Schedule(targetDate time.Time, avail schedule.Availability) (schedule.Plan, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pred := e.pred.Predict(e.perf, e.sim.History())
	return e.plan.Generate(pred, e.now(), targetDate, avail)
}

// ExamHistory returns retained exam results, oldest first.
func (e *Engine) ExamHistory() []exam.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sim.History()
}

// Reset wipes all learner state and persists the empty snapshot.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.perf = performance.NewStore(e.perfCfg)
	e.level = difficulty.Medium
	e.sim = exam.NewSimulator(e.profile, e.sel)
	return e.save(ctx)
}
