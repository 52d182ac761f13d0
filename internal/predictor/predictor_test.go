package predictor

import (
	"fmt"
	"testing"
	"time"

	"github.com/prepdrill/prepdrill/internal/exam"
	"github.com/prepdrill/prepdrill/internal/performance"
	"github.com/prepdrill/prepdrill/internal/profile"
)

// seedAnswers records n answers per topic at the given accuracy.
func seedAnswers(perf *performance.Store, p profile.Profile, n int, accuracy float64) {
	now := time.Now()
	for _, t := range p.Topics {
		correct := int(float64(n) * accuracy)
		for i := 0; i < n; i++ {
			perf.RecordAnswer(fmt.Sprintf("%s-%d", t.ID, i), t.ID, i < correct, nil, 2.5, now)
		}
	}
}

func mockResult(score int, raw float64) exam.Result {
	return exam.Result{
		SessionID:   fmt.Sprintf("s%d", score),
		CompletedAt: time.Now(),
		RawScore:    raw,
		ScaledScore: score,
	}
}

func TestPredict_PassProbabilityBounds(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})

	for _, acc := range []float64{0, 0.1, 0.3, 0.5, 0.65, 0.8, 0.95, 1} {
		perf := performance.NewStore(performance.DefaultConfig())
		seedAnswers(perf, p, 60, acc)
		pred := pr.Predict(perf, nil)
		if pred.PassProbability < 1 || pred.PassProbability > 99 {
			t.Errorf("accuracy %.2f: PassProbability = %f, outside [1, 99]", acc, pred.PassProbability)
		}
	}
}

func TestPredict_MonotonicInAccuracy(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})

	prevScore := -1
	prevProb := 0.0
	for _, acc := range []float64{0.2, 0.4, 0.6, 0.8, 1.0} {
		perf := performance.NewStore(performance.DefaultConfig())
		seedAnswers(perf, p, 100, acc)
		pred := pr.Predict(perf, nil)
		if pred.PredictedScore < prevScore {
			t.Errorf("accuracy %.1f: score %d dropped below %d", acc, pred.PredictedScore, prevScore)
		}
		if pred.PassProbability < prevProb {
			t.Errorf("accuracy %.1f: probability %f dropped below %f", acc, pred.PassProbability, prevProb)
		}
		prevScore = pred.PredictedScore
		prevProb = pred.PassProbability
	}
}

func TestPredict_ConfidenceWithinScale(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})
	perf := performance.NewStore(performance.DefaultConfig())
	seedAnswers(perf, p, 10, 1.0)

	pred := pr.Predict(perf, nil)
	if pred.ConfidenceLow < p.ScaleMin || pred.ConfidenceHigh > p.ScaleMax {
		t.Errorf("confidence [%d, %d] outside scale [%d, %d]",
			pred.ConfidenceLow, pred.ConfidenceHigh, p.ScaleMin, p.ScaleMax)
	}
	if pred.ConfidenceLow > pred.PredictedScore || pred.ConfidenceHigh < pred.PredictedScore {
		t.Errorf("score %d outside its own interval [%d, %d]",
			pred.PredictedScore, pred.ConfidenceLow, pred.ConfidenceHigh)
	}
}

func TestPredict_IntervalNarrowsWithSampleSize(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})

	small := performance.NewStore(performance.DefaultConfig())
	seedAnswers(small, p, 10, 0.7) // 50 answers
	large := performance.NewStore(performance.DefaultConfig())
	seedAnswers(large, p, 100, 0.7) // 500 answers

	smallWidth := func(pr Prediction) int { return pr.ConfidenceHigh - pr.ConfidenceLow }
	a := smallWidth(pr.Predict(small, nil))
	b := smallWidth(pr.Predict(large, nil))
	if b >= a {
		t.Errorf("interval did not narrow: %d (50 answers) vs %d (500 answers)", a, b)
	}
}

func TestPredict_ReadinessGatedBySampleSize(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})
	perf := performance.NewStore(performance.DefaultConfig())
	seedAnswers(perf, p, 10, 1.0) // 50 answers, below the 100 minimum

	pred := pr.Predict(perf, nil)
	if pred.Readiness != ReadinessNotReady {
		t.Errorf("Readiness = %v with 50 answers, want forced not-ready", pred.Readiness)
	}
}

func TestPredict_ReadinessBuckets(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})

	weak := performance.NewStore(performance.DefaultConfig())
	seedAnswers(weak, p, 100, 0.2)
	if got := pr.Predict(weak, nil).Readiness; got != ReadinessNotReady {
		t.Errorf("20%% accuracy: Readiness = %v, want not-ready", got)
	}

	strong := performance.NewStore(performance.DefaultConfig())
	seedAnswers(strong, p, 100, 0.95)
	if got := pr.Predict(strong, nil).Readiness; got != ReadinessConfident {
		t.Errorf("95%% accuracy: Readiness = %v, want confident", got)
	}
}

func TestPredict_MockExamsBlendIn(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})

	perf := performance.NewStore(performance.DefaultConfig())
	seedAnswers(perf, p, 100, 0.5)

	withoutMocks := pr.Predict(perf, nil)
	withMocks := pr.Predict(perf, []exam.Result{mockResult(700, 90)})

	if withMocks.PredictedScore <= withoutMocks.PredictedScore {
		t.Errorf("strong mock exams should raise the prediction: %d vs %d",
			withMocks.PredictedScore, withoutMocks.PredictedScore)
	}
}

func TestPredict_TrendNudge(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})
	perf := performance.NewStore(performance.DefaultConfig())
	seedAnswers(perf, p, 100, 0.65)

	flat := []exam.Result{mockResult(500, 65), mockResult(500, 65)}
	rising := []exam.Result{mockResult(500, 65), mockResult(560, 65)}
	falling := []exam.Result{mockResult(560, 65), mockResult(500, 65)}

	base := pr.Predict(perf, flat).PredictedScore
	up := pr.Predict(perf, rising).PredictedScore
	down := pr.Predict(perf, falling).PredictedScore

	if up <= base {
		t.Errorf("rising trend should nudge up: %d vs %d", up, base)
	}
	if down >= base {
		t.Errorf("falling trend should nudge down: %d vs %d", down, base)
	}
}

func TestPredict_UnattemptedTopicsCarryNoSignal(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})
	perf := performance.NewStore(performance.DefaultConfig())

	// Perfect accuracy in a single topic only.
	now := time.Now()
	for i := 0; i < 120; i++ {
		perf.RecordAnswer(fmt.Sprintf("q%d", i), "fundamentals", true, nil, 2.5, now)
	}

	pred := pr.Predict(perf, nil)
	// Weight redistribution means prediction reflects the attempted
	// topic's accuracy, not zeros for untouched topics.
	if pred.PredictedScore < p.PassingScaledScore {
		t.Errorf("PredictedScore = %d, want at least %d with 100%% on attempted work",
			pred.PredictedScore, p.PassingScaledScore)
	}
	attempted := 0
	for _, o := range pred.PerTopic {
		if o.Attempted > 0 {
			attempted++
		}
	}
	if attempted != 1 {
		t.Errorf("per-topic outlook shows %d attempted topics, want 1", attempted)
	}
}

func TestPredict_Recommendations(t *testing.T) {
	p := profile.Default()
	pr := New(p, Params{})
	perf := performance.NewStore(performance.DefaultConfig())
	seedAnswers(perf, p, 5, 0.4)

	pred := pr.Predict(perf, nil)
	if len(pred.Recommendations) == 0 {
		t.Fatal("weak performance should always produce recommendations")
	}
}
