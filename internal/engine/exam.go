package engine

import (
	"context"

	"github.com/prepdrill/prepdrill/internal/exam"
	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/store"
)

// StartExam opens a timed exam session sampled from items. cfg fields
// left zero take the configured full-length exam shape.
func (e *Engine) StartExam(ctx context.Context, items []pool.Item, cfg exam.Config) (*exam.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cfg.Questions <= 0 {
		cfg.Questions = e.examCfg.Questions
	}
	if cfg.TimeLimitMin <= 0 {
		cfg.TimeLimitMin = e.examCfg.TimeLimitMin
	}

	s, err := e.sim.Start(items, cfg, e.now())
	if err != nil {
		return nil, err
	}
	e.appendExamEvent(ctx, store.ExamEventData{
		SessionID:     s.ID,
		Action:        "started",
		QuestionCount: len(s.Items),
	})
	return s, nil
}

// ActiveExam returns the running or paused session, or nil.
func (e *Engine) ActiveExam() *exam.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sim.Active()
}

// ExamAnswer stores a selection for an exam item. Re-answering is
// last-write-wins.
func (e *Engine) ExamAnswer(itemID string, selected, timeSpentSec int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sim.Answer(itemID, selected, timeSpentSec)
}

// ExamFlag toggles the review flag on an exam item.
func (e *Engine) ExamFlag(itemID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sim.ToggleFlag(itemID)
}

// ExamPause suspends the session's countdown.
func (e *Engine) ExamPause(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.sim.Active()
	if err := e.sim.Pause(); err != nil {
		return err
	}
	e.appendExamEvent(ctx, store.ExamEventData{SessionID: s.ID, Action: "paused"})
	return nil
}

// ExamResume restarts a paused session.
func (e *Engine) ExamResume(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.sim.Active()
	if err := e.sim.Resume(); err != nil {
		return err
	}
	e.appendExamEvent(ctx, store.ExamEventData{SessionID: s.ID, Action: "resumed"})
	return nil
}

// ExamTick advances the countdown; reaching zero submits the exam. The
// returned result is non-nil only on auto-submit.
func (e *Engine) ExamTick(ctx context.Context, remainingSec int) (*exam.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sim.Active()
	r, err := e.sim.Tick(remainingSec, e.now())
	if err != nil || r == nil {
		return nil, err
	}
	if err := e.finishExam(ctx, s, *r); err != nil {
		return nil, err
	}
	return r, nil
}

// ExamSubmit scores and closes the session, folding every exam answer
// into the learner's practice aggregates.
func (e *Engine) ExamSubmit(ctx context.Context) (exam.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sim.Active()
	r, err := e.sim.Submit(e.now())
	if err != nil {
		return exam.Result{}, err
	}
	if err := e.finishExam(ctx, s, r); err != nil {
		return exam.Result{}, err
	}
	return r, nil
}

// ExamAbandon discards the session without scoring it.
func (e *Engine) ExamAbandon(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sim.Active()
	if err := e.sim.Abandon(); err != nil {
		return err
	}
	e.appendExamEvent(ctx, store.ExamEventData{SessionID: s.ID, Action: "abandoned"})
	return e.save(ctx)
}

// finishExam records every answered item against the learner's
// performance state, appends the lifecycle event, and saves. Callers
// hold the mutex and pass the session captured before submit, since
// the simulator discards it.
func (e *Engine) finishExam(ctx context.Context, s *exam.Session, r exam.Result) error {
	for _, it := range s.Items {
		a := s.Answers[it.ID]
		if a == nil || a.Selected == nil {
			continue
		}
		correct := *a.Selected == it.Answer
		e.recordAnswerLocked(ctx, it.ID, it.TopicID, correct, it.ConceptTags, "exam", s.ID, a.TimeSpentSec)
	}
	e.appendExamEvent(ctx, store.ExamEventData{
		SessionID:     s.ID,
		Action:        "submitted",
		QuestionCount: r.QuestionCount,
		CorrectCount:  r.CorrectCount,
		RawScore:      r.RawScore,
		ScaledScore:   r.ScaledScore,
		Passed:        r.Passed,
		DurationSec:   r.DurationSec,
	})
	return e.save(ctx)
}

func (e *Engine) appendExamEvent(ctx context.Context, data store.ExamEventData) {
	if err := e.st.EventRepo().AppendExamEvent(ctx, data); err != nil {
		e.logger.Warn("exam event append failed", "session", data.SessionID, "action", data.Action, "error", err)
	}
}
