package predictor

import (
	"fmt"
	"math"
	"sort"

	"github.com/prepdrill/prepdrill/internal/exam"
	"github.com/prepdrill/prepdrill/internal/performance"
	"github.com/prepdrill/prepdrill/internal/profile"
)

// Readiness is a coarse verdict derived from the pass probability.
type Readiness string

const (
	ReadinessNotReady   Readiness = "not-ready"
	ReadinessAtRisk     Readiness = "at-risk"
	ReadinessBorderline Readiness = "borderline"
	ReadinessLikely     Readiness = "likely"
	ReadinessConfident  Readiness = "confident"
)

// Params tunes the prediction model. Zero fields fall back to defaults.
type Params struct {
	// MockBlendWeight is the share of the blended accuracy taken from
	// mock exam history when any exists. Mocks are a more realistic
	// signal than untimed practice, so they weigh heavier.
	MockBlendWeight float64

	// TrendNudge is the accuracy adjustment (fraction, not percent)
	// applied when recent mock scores trend clearly up or down.
	TrendNudge float64

	// FullConfidenceAnswers is the answer count at which the confidence
	// interval stops narrowing from sample size alone.
	FullConfidenceAnswers int

	// PenaltyAnswers is the answer count below which the pass
	// probability is discounted; PenaltyFactor is the discount.
	PenaltyAnswers int
	PenaltyFactor  float64

	// MinAnswers gates the readiness verdict: below it the verdict is
	// forced to not-ready regardless of probability.
	MinAnswers int
}

// DefaultParams returns the standard model constants.
func DefaultParams() Params {
	return Params{
		MockBlendWeight:       0.6,
		TrendNudge:            0.03,
		FullConfidenceAnswers: 500,
		PenaltyAnswers:        200,
		PenaltyFactor:         0.8,
		MinAnswers:            100,
	}
}

// TopicOutlook is the per-topic slice of a prediction.
type TopicOutlook struct {
	TopicID    profile.TopicID
	Name       string
	ExamWeight float64
	Accuracy   float64
	Attempted  int
	OnTrack    bool
}

// Prediction is a point-in-time exam score forecast. It is derived,
// never persisted.
type Prediction struct {
	PredictedScore  int
	ConfidenceLow   int
	ConfidenceHigh  int
	PassProbability float64 // percent, clamped to [1, 99]
	Readiness       Readiness
	AnswerCount     int
	ExamCount       int
	PerTopic        []TopicOutlook
	Recommendations []string
}

// Predictor forecasts exam outcomes from practice performance and mock
// exam history.
type Predictor struct {
	profile profile.Profile
	params  Params
}

// New builds a predictor. Zero params fields take defaults.
func New(p profile.Profile, params Params) *Predictor {
	def := DefaultParams()
	if params.MockBlendWeight <= 0 {
		params.MockBlendWeight = def.MockBlendWeight
	}
	if params.TrendNudge <= 0 {
		params.TrendNudge = def.TrendNudge
	}
	if params.FullConfidenceAnswers <= 0 {
		params.FullConfidenceAnswers = def.FullConfidenceAnswers
	}
	if params.PenaltyAnswers <= 0 {
		params.PenaltyAnswers = def.PenaltyAnswers
	}
	if params.PenaltyFactor <= 0 {
		params.PenaltyFactor = def.PenaltyFactor
	}
	if params.MinAnswers <= 0 {
		params.MinAnswers = def.MinAnswers
	}
	return &Predictor{profile: p, params: params}
}

// Predict forecasts the scaled score, its confidence interval, and the
// pass probability from current practice state and mock history.
func (pr *Predictor) Predict(perf *performance.Store, history []exam.Result) Prediction {
	answers := perf.TotalAnswered()

	acc := pr.weightedAccuracy(perf)
	if n := len(history); n > 0 {
		mockAcc := 0.0
		for _, r := range history {
			mockAcc += r.RawScore / 100
		}
		mockAcc /= float64(n)
		w := pr.params.MockBlendWeight
		acc = (1-w)*acc + w*mockAcc
	}
	acc += pr.trendNudge(history)
	acc = math.Min(1, math.Max(0, acc))

	score := pr.profile.ScaledScore(acc)

	margin := pr.margin(answers, perf)
	low := clampInt(score-margin, pr.profile.ScaleMin, pr.profile.ScaleMax)
	high := clampInt(score+margin, pr.profile.ScaleMin, pr.profile.ScaleMax)

	prob := pr.passProbability(score, low, high, answers)

	pred := Prediction{
		PredictedScore:  score,
		ConfidenceLow:   low,
		ConfidenceHigh:  high,
		PassProbability: prob,
		Readiness:       pr.readiness(prob, answers),
		AnswerCount:     answers,
		ExamCount:       len(history),
		PerTopic:        pr.topicOutlook(perf),
	}
	pred.Recommendations = pr.recommend(pred)
	return pred
}

// weightedAccuracy averages topic accuracy weighted by exam weight,
// over attempted topics only. Unattempted topics carry no signal, so
// their weight is redistributed rather than counted as zero accuracy.
func (pr *Predictor) weightedAccuracy(perf *performance.Store) float64 {
	var sum, weight float64
	topics := perf.Topics()
	for _, t := range pr.profile.Topics {
		tp := topics[t.ID]
		if tp == nil || tp.QuestionsAttempted == 0 {
			continue
		}
		sum += tp.Accuracy() * t.ExamWeight
		weight += t.ExamWeight
	}
	if weight == 0 {
		return 0
	}
	return sum / weight
}

// trendNudge compares the most recent mock score against the mean of
// earlier mocks and nudges the blended accuracy a few percentage
// points either way.
func (pr *Predictor) trendNudge(history []exam.Result) float64 {
	if len(history) < 2 {
		return 0
	}
	latest := float64(history[len(history)-1].ScaledScore)
	prior := 0.0
	for _, r := range history[:len(history)-1] {
		prior += float64(r.ScaledScore)
	}
	prior /= float64(len(history) - 1)

	switch {
	case latest > prior:
		return pr.params.TrendNudge
	case latest < prior:
		return -pr.params.TrendNudge
	}
	return 0
}

// margin computes the half-width of the confidence interval in scaled
// points. More answers narrow it; uneven accuracy across topics widens
// it back out, floored so volatility never erases the interval.
func (pr *Predictor) margin(answers int, perf *performance.Store) int {
	sample := math.Min(float64(answers)/float64(pr.params.FullConfidenceAnswers), 1)
	m := 50 * (1 - sample*0.7)
	m *= math.Max(0.5, 1-topicStddevPct(perf)/20)
	return int(math.Round(m))
}

// topicStddevPct is the standard deviation of per-topic accuracy, in
// percentage points, across attempted topics.
func topicStddevPct(perf *performance.Store) float64 {
	var accs []float64
	for _, tp := range perf.Topics() {
		if tp.QuestionsAttempted == 0 {
			continue
		}
		accs = append(accs, tp.Accuracy()*100)
	}
	if len(accs) < 2 {
		return 0
	}
	mean := 0.0
	for _, a := range accs {
		mean += a
	}
	mean /= float64(len(accs))
	variance := 0.0
	for _, a := range accs {
		d := a - mean
		variance += d * d
	}
	variance /= float64(len(accs))
	return math.Sqrt(variance)
}

// passProbability maps the predicted score and its uncertainty to a
// probability via a logistic-shaped curve centered on the passing
// score. The result is clamped to [1, 99]: the model never claims
// certainty in either direction.
func (pr *Predictor) passProbability(score, low, high, answers int) float64 {
	se := float64(high-low) / 4
	if se <= 0 {
		se = 1
	}
	z := 0.5 * float64(score-pr.profile.PassingScaledScore) / se
	prob := 50 * (1 + math.Tanh(z))

	if answers < pr.params.PenaltyAnswers {
		prob *= pr.params.PenaltyFactor
	}
	return math.Min(99, math.Max(1, prob))
}

func (pr *Predictor) readiness(prob float64, answers int) Readiness {
	if answers < pr.params.MinAnswers {
		return ReadinessNotReady
	}
	switch {
	case prob < 30:
		return ReadinessNotReady
	case prob < 50:
		return ReadinessAtRisk
	case prob < 70:
		return ReadinessBorderline
	case prob < 85:
		return ReadinessLikely
	default:
		return ReadinessConfident
	}
}

func (pr *Predictor) topicOutlook(perf *performance.Store) []TopicOutlook {
	threshold := perf.NeedsWorkThreshold()
	out := make([]TopicOutlook, 0, len(pr.profile.Topics))
	topics := perf.Topics()
	for _, t := range pr.profile.Topics {
		o := TopicOutlook{TopicID: t.ID, Name: t.Name, ExamWeight: t.ExamWeight}
		if tp := topics[t.ID]; tp != nil {
			o.Accuracy = tp.Accuracy()
			o.Attempted = tp.QuestionsAttempted
			o.OnTrack = tp.QuestionsAttempted > 0 && tp.Accuracy() >= threshold
		}
		out = append(out, o)
	}
	return out
}

// recommend turns the prediction into a short list of concrete next
// steps, weakest and heaviest topics first.
func (pr *Predictor) recommend(p Prediction) []string {
	var recs []string

	if p.AnswerCount < pr.params.MinAnswers {
		recs = append(recs, fmt.Sprintf("Answer at least %d practice questions for a reliable readiness verdict.", pr.params.MinAnswers))
	}
	if p.ExamCount == 0 {
		recs = append(recs, "Take a full-length mock exam to calibrate the prediction.")
	}

	weak := make([]TopicOutlook, 0, len(p.PerTopic))
	for _, t := range p.PerTopic {
		if !t.OnTrack {
			weak = append(weak, t)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		pi := weak[i].ExamWeight * (1 - weak[i].Accuracy)
		pj := weak[j].ExamWeight * (1 - weak[j].Accuracy)
		if pi != pj {
			return pi > pj
		}
		return weak[i].TopicID < weak[j].TopicID
	})
	for i, t := range weak {
		if i >= 3 {
			break
		}
		if t.Attempted == 0 {
			recs = append(recs, fmt.Sprintf("Start practicing %s (%.0f%% of the exam, untouched).", t.Name, t.ExamWeight))
		} else {
			recs = append(recs, fmt.Sprintf("Focus on %s: %.0f%% accuracy on %.0f%% of the exam.", t.Name, t.Accuracy*100, t.ExamWeight))
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "Keep practicing to hold your accuracy, and mix in timed mock exams.")
	}
	return recs
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
