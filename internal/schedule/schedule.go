package schedule

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/prepdrill/prepdrill/internal/predictor"
	"github.com/prepdrill/prepdrill/internal/profile"
)

// ErrPastTarget is returned when the exam date is not after today.
var ErrPastTarget = errors.New("target exam date is not in the future")

// questionsPerHour sizes daily targets from available study hours.
const questionsPerHour = 20

// reviewBufferDays is the final-review window reserved before the exam,
// shortened when the runway is too tight to afford it.
const reviewBufferDays = 7

// Availability is a weekly study-time template in hours per weekday.
type Availability map[time.Weekday]float64

// DefaultAvailability is two weekday hours and four on weekends.
func DefaultAvailability() Availability {
	return Availability{
		time.Monday:    2,
		time.Tuesday:   2,
		time.Wednesday: 2,
		time.Thursday:  2,
		time.Friday:    2,
		time.Saturday:  4,
		time.Sunday:    4,
	}
}

// Phase is a contiguous block of days dedicated to one topic.
type Phase struct {
	TopicID        profile.TopicID
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	Days           int
	QuestionTarget int
	Priority       float64 // exam weight scaled by how weak the topic is
}

// Milestone is a dated marker on the plan.
type Milestone struct {
	Date  time.Time
	Label string
}

// Plan is a calendar-bounded study schedule. It is recomputed on
// demand and never persisted.
type Plan struct {
	GeneratedAt time.Time
	ExamDate    time.Time
	TotalDays   int
	StudyDays   int
	ReviewDays  int
	Phases      []Phase
	Milestones  []Milestone
	Warnings    []string
}

// Generator builds study plans for one profile.
type Generator struct {
	profile profile.Profile
}

// New builds a schedule generator.
func New(p profile.Profile) *Generator {
	return &Generator{profile: p}
}

// Generate partitions the days between today and targetDate across the
// profile's topics, weakest and heaviest topics first, reserving a
// final-review buffer before the exam. The plan is a pure function of
// its inputs.
func (g *Generator) Generate(pred predictor.Prediction, today, targetDate time.Time, avail Availability) (Plan, error) {
	today = startOfDay(today)
	targetDate = startOfDay(targetDate)

	totalDays := int(targetDate.Sub(today).Hours() / 24)
	if totalDays <= 0 {
		return Plan{}, fmt.Errorf("generate plan for %s: %w", targetDate.Format("2006-01-02"), ErrPastTarget)
	}
	if len(avail) == 0 {
		avail = DefaultAvailability()
	}

	review := reviewBufferDays
	if review > totalDays/3 {
		review = totalDays / 3
	}
	studyDays := totalDays - review

	plan := Plan{
		GeneratedAt: today,
		ExamDate:    targetDate,
		TotalDays:   totalDays,
		StudyDays:   studyDays,
		ReviewDays:  review,
	}
	if totalDays < 14 {
		plan.Warnings = append(plan.Warnings, fmt.Sprintf("only %d days until the exam; coverage will be thin", totalDays))
	}

	ordered := g.orderTopics(pred)

	// Weight-proportional day split, remainder handed to the highest
	// priority topics so every topic gets at least one day when the
	// runway allows it.
	days := make([]int, len(ordered))
	assigned := 0
	for i, t := range ordered {
		days[i] = int(math.Floor(float64(studyDays) * g.profile.Weight(t.TopicID) / 100))
		assigned += days[i]
	}
	for i := 0; assigned < studyDays; i = (i + 1) % len(ordered) {
		days[i]++
		assigned++
	}

	cursor := today
	for i, t := range ordered {
		if days[i] == 0 {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf("no dedicated days for %s; fold it into final review", t.Name))
			continue
		}
		end := cursor.AddDate(0, 0, days[i]-1)
		phase := Phase{
			TopicID:        t.TopicID,
			Name:           t.Name,
			StartDate:      cursor,
			EndDate:        end,
			Days:           days[i],
			QuestionTarget: questionTarget(cursor, days[i], avail),
			Priority:       t.Priority,
		}
		plan.Phases = append(plan.Phases, phase)
		plan.Milestones = append(plan.Milestones, Milestone{
			Date:  end,
			Label: fmt.Sprintf("%s complete", t.Name),
		})
		cursor = end.AddDate(0, 0, 1)
	}

	if review > 0 {
		plan.Milestones = append(plan.Milestones, Milestone{
			Date:  cursor,
			Label: "final review begins",
		})
	}
	plan.Milestones = append(plan.Milestones, Milestone{
		Date:  targetDate,
		Label: "exam day",
	})
	return plan, nil
}

type orderedTopic struct {
	TopicID  profile.TopicID
	Name     string
	Priority float64
}

// orderTopics ranks topics by exam weight scaled by weakness, so a
// heavy topic the learner struggles with comes first. Topics with no
// signal rank as fully weak.
func (g *Generator) orderTopics(pred predictor.Prediction) []orderedTopic {
	acc := make(map[profile.TopicID]float64, len(pred.PerTopic))
	attempted := make(map[profile.TopicID]bool, len(pred.PerTopic))
	for _, t := range pred.PerTopic {
		acc[t.TopicID] = t.Accuracy
		attempted[t.TopicID] = t.Attempted > 0
	}

	out := make([]orderedTopic, 0, len(g.profile.Topics))
	for _, t := range g.profile.Topics {
		a := 0.0
		if attempted[t.ID] {
			a = acc[t.ID]
		}
		out = append(out, orderedTopic{
			TopicID:  t.ID,
			Name:     t.Name,
			Priority: t.ExamWeight * (1 - a),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].TopicID < out[j].TopicID
	})
	return out
}

// questionTarget sums the availability hours over a phase's days and
// converts them to a question count.
func questionTarget(start time.Time, days int, avail Availability) int {
	hours := 0.0
	for i := 0; i < days; i++ {
		hours += avail[start.AddDate(0, 0, i).Weekday()]
	}
	return int(math.Round(hours * questionsPerHour))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
