package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/prepdrill/prepdrill/internal/predictor"
	"github.com/prepdrill/prepdrill/internal/profile"
)

func testPrediction(p profile.Profile, acc map[profile.TopicID]float64) predictor.Prediction {
	pred := predictor.Prediction{}
	for _, t := range p.Topics {
		a := acc[t.ID]
		pred.PerTopic = append(pred.PerTopic, predictor.TopicOutlook{
			TopicID:    t.ID,
			Name:       t.Name,
			ExamWeight: t.ExamWeight,
			Accuracy:   a,
			Attempted:  50,
			OnTrack:    a >= 0.7,
		})
	}
	return pred
}

func TestGenerate_PastDateRejected(t *testing.T) {
	g := New(profile.Default())
	today := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	for _, target := range []time.Time{today, today.AddDate(0, 0, -5)} {
		if _, err := g.Generate(predictor.Prediction{}, today, target, nil); !errors.Is(err, ErrPastTarget) {
			t.Errorf("target %v: error = %v, want ErrPastTarget", target, err)
		}
	}
}

func TestGenerate_PartitionsStudyDays(t *testing.T) {
	p := profile.Default()
	g := New(p)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	target := today.AddDate(0, 0, 60)

	plan, err := g.Generate(testPrediction(p, nil), today, target, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if plan.TotalDays != 60 {
		t.Errorf("TotalDays = %d, want 60", plan.TotalDays)
	}
	if plan.ReviewDays != 7 {
		t.Errorf("ReviewDays = %d, want 7", plan.ReviewDays)
	}
	if plan.StudyDays != 53 {
		t.Errorf("StudyDays = %d, want 53", plan.StudyDays)
	}

	sum := 0
	for _, ph := range plan.Phases {
		sum += ph.Days
	}
	if sum != plan.StudyDays {
		t.Errorf("phase days sum to %d, want %d", sum, plan.StudyDays)
	}

	// Phases are contiguous from today.
	cursor := today
	for _, ph := range plan.Phases {
		if !ph.StartDate.Equal(cursor) {
			t.Errorf("phase %s starts %v, want %v", ph.Name, ph.StartDate, cursor)
		}
		cursor = ph.EndDate.AddDate(0, 0, 1)
	}
}

func TestGenerate_WeakHeavyTopicFirst(t *testing.T) {
	p := profile.Default()
	g := New(p)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// operations (weight 26) is weakest; tooling (12) is strongest.
	pred := testPrediction(p, map[profile.TopicID]float64{
		"fundamentals":   0.8,
		"planning":       0.8,
		"tooling":        0.95,
		"implementation": 0.8,
		"operations":     0.3,
	})

	plan, err := g.Generate(pred, today, today.AddDate(0, 0, 45), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.Phases) == 0 {
		t.Fatal("no phases generated")
	}
	if plan.Phases[0].TopicID != "operations" {
		t.Errorf("first phase = %s, want operations (weakest, heaviest)", plan.Phases[0].TopicID)
	}
	last := plan.Phases[len(plan.Phases)-1]
	if last.TopicID != "tooling" {
		t.Errorf("last phase = %s, want tooling (strongest, lightest)", last.TopicID)
	}
}

func TestGenerate_Milestones(t *testing.T) {
	p := profile.Default()
	g := New(p)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	target := today.AddDate(0, 0, 40)

	plan, err := g.Generate(testPrediction(p, nil), today, target, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	last := plan.Milestones[len(plan.Milestones)-1]
	if !last.Date.Equal(target) || last.Label != "exam day" {
		t.Errorf("final milestone = %+v, want exam day on %v", last, target)
	}

	foundReview := false
	for _, m := range plan.Milestones {
		if m.Label == "final review begins" {
			foundReview = true
		}
	}
	if !foundReview {
		t.Error("review-start milestone missing")
	}
}

func TestGenerate_QuestionTargetsFollowAvailability(t *testing.T) {
	p := profile.Default()
	g := New(p)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	light := Availability{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		light[d] = 1
	}
	heavy := Availability{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		heavy[d] = 4
	}

	a, err := g.Generate(testPrediction(p, nil), today, today.AddDate(0, 0, 30), light)
	if err != nil {
		t.Fatalf("Generate(light): %v", err)
	}
	b, err := g.Generate(testPrediction(p, nil), today, today.AddDate(0, 0, 30), heavy)
	if err != nil {
		t.Fatalf("Generate(heavy): %v", err)
	}

	if b.Phases[0].QuestionTarget != 4*a.Phases[0].QuestionTarget {
		t.Errorf("targets should scale with hours: light %d, heavy %d",
			a.Phases[0].QuestionTarget, b.Phases[0].QuestionTarget)
	}
}

func TestGenerate_ShortRunwayWarns(t *testing.T) {
	p := profile.Default()
	g := New(p)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	plan, err := g.Generate(testPrediction(p, nil), today, today.AddDate(0, 0, 7), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.Warnings) == 0 {
		t.Error("a one-week runway should produce a warning")
	}
	if plan.ReviewDays > 2 {
		t.Errorf("ReviewDays = %d, want the buffer shortened on a tight runway", plan.ReviewDays)
	}
}
