package profile

import (
	"fmt"
	"math"
	"strings"
)

// weightTolerance allows for float drift when summing exam weights.
const weightTolerance = 0.01

// Validate performs all structural checks on the profile.
// Returns a combined error describing all problems found, or nil if valid.
func (p Profile) Validate() error {
	var errs []string

	if len(p.Topics) == 0 {
		errs = append(errs, "profile has no topics")
	}

	idSet := make(map[TopicID]bool, len(p.Topics))
	weightSum := 0.0
	for _, t := range p.Topics {
		if t.ID == "" {
			errs = append(errs, "topic with empty ID")
		}
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		idSet[t.ID] = true

		if t.ExamWeight <= 0 {
			errs = append(errs, fmt.Sprintf("topic %q: ExamWeight must be > 0, got %f", t.ID, t.ExamWeight))
		}
		weightSum += t.ExamWeight
	}

	if len(p.Topics) > 0 && math.Abs(weightSum-100) > weightTolerance {
		errs = append(errs, fmt.Sprintf("exam weights must sum to 100, got %f", weightSum))
	}

	if p.PassingRawThreshold <= 0 || p.PassingRawThreshold >= 1 {
		errs = append(errs, fmt.Sprintf("PassingRawThreshold must be in (0, 1), got %f", p.PassingRawThreshold))
	}
	if p.ScaleMin >= p.ScaleMax {
		errs = append(errs, fmt.Sprintf("ScaleMin %d must be < ScaleMax %d", p.ScaleMin, p.ScaleMax))
	}
	if p.PassingScaledScore <= p.ScaleMin || p.PassingScaledScore >= p.ScaleMax {
		errs = append(errs, fmt.Sprintf("PassingScaledScore %d must be inside (%d, %d)", p.PassingScaledScore, p.ScaleMin, p.ScaleMax))
	}
	if p.ExamQuestions <= 0 {
		errs = append(errs, fmt.Sprintf("ExamQuestions must be > 0, got %d", p.ExamQuestions))
	}
	if p.ExamTimeLimitMin <= 0 {
		errs = append(errs, fmt.Sprintf("ExamTimeLimitMin must be > 0, got %d", p.ExamTimeLimitMin))
	}
	if p.TopicPassPct <= 0 || p.TopicPassPct > 100 {
		errs = append(errs, fmt.Sprintf("TopicPassPct must be in (0, 100], got %f", p.TopicPassPct))
	}
	if p.TopicStrongPct < p.TopicPassPct {
		errs = append(errs, fmt.Sprintf("TopicStrongPct %f must be >= TopicPassPct %f", p.TopicStrongPct, p.TopicPassPct))
	}

	if len(errs) > 0 {
		return fmt.Errorf("profile validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
