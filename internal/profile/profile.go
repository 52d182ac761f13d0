package profile

import "fmt"

// TopicID identifies one exam domain. The set of valid IDs is closed per
// profile; anything loaded from storage or user input must resolve through
// Profile.Topic rather than being used as-is.
type TopicID string

// Topic is a single exam domain with its fixed share of the real exam.
type Topic struct {
	ID         TopicID
	Name       string
	ExamWeight float64 // percent of the exam, all topics sum to 100
}

// Profile fixes the topic set and scoring constants for one product
// instance. Everything the scorer and scheduler need to interpret raw
// performance lives here.
type Profile struct {
	Name   string
	Topics []Topic

	// PassingRawThreshold is the raw accuracy pinned to the passing
	// scaled score by the piecewise mapping.
	PassingRawThreshold float64

	// PassingScaledScore is the scaled score required to pass.
	PassingScaledScore int

	// ScaleMin and ScaleMax bound the scaled-score scale.
	ScaleMin int
	ScaleMax int

	// ExamQuestions and ExamTimeLimitMin describe the full-length exam.
	ExamQuestions    int
	ExamTimeLimitMin int

	// TopicPassPct and TopicStrongPct classify per-topic exam results.
	TopicPassPct   float64
	TopicStrongPct float64
}

// Default returns the built-in five-domain certification profile.
func Default() Profile {
	return Profile{
		Name: "associate-cert",
		Topics: []Topic{
			{ID: "fundamentals", Name: "Fundamentals & Concepts", ExamWeight: 18},
			{ID: "planning", Name: "Planning & Design", ExamWeight: 18},
			{ID: "tooling", Name: "Tools & Environments", ExamWeight: 12},
			{ID: "implementation", Name: "Implementation", ExamWeight: 26},
			{ID: "operations", Name: "Operations & Monitoring", ExamWeight: 26},
		},
		PassingRawThreshold: 0.65,
		PassingScaledScore:  450,
		ScaleMin:            200,
		ScaleMax:            800,
		ExamQuestions:       150,
		ExamTimeLimitMin:    180,
		TopicPassPct:        60,
		TopicStrongPct:      75,
	}
}

// Topic looks up a topic by ID. Unknown IDs are an error, never silently
// accepted.
func (p Profile) Topic(id TopicID) (Topic, error) {
	for _, t := range p.Topics {
		if t.ID == id {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("unknown topic %q in profile %q", id, p.Name)
}

// ValidTopic reports whether id names a topic in this profile.
func (p Profile) ValidTopic(id TopicID) bool {
	_, err := p.Topic(id)
	return err == nil
}

// Weight returns the exam weight for a topic, or 0 for unknown IDs.
func (p Profile) Weight(id TopicID) float64 {
	t, err := p.Topic(id)
	if err != nil {
		return 0
	}
	return t.ExamWeight
}

// TopicIDs returns the profile's topic IDs in declaration order.
func (p Profile) TopicIDs() []TopicID {
	ids := make([]TopicID, len(p.Topics))
	for i, t := range p.Topics {
		ids[i] = t.ID
	}
	return ids
}
