package profile

import "testing"

func TestScaledScore_PassingPointPinned(t *testing.T) {
	p := Default()

	if got := p.ScaledScore(0.65); got != 450 {
		t.Errorf("ScaledScore(0.65) = %d, want 450", got)
	}
}

func TestScaledScore_Endpoints(t *testing.T) {
	p := Default()

	if got := p.ScaledScore(0); got != 200 {
		t.Errorf("ScaledScore(0) = %d, want 200", got)
	}
	if got := p.ScaledScore(1); got != 800 {
		t.Errorf("ScaledScore(1) = %d, want 800", got)
	}
}

func TestScaledScore_Monotonic(t *testing.T) {
	p := Default()

	prev := p.ScaledScore(0)
	for i := 1; i <= 100; i++ {
		got := p.ScaledScore(float64(i) / 100)
		if got < prev {
			t.Fatalf("ScaledScore(%.2f) = %d < ScaledScore(%.2f) = %d", float64(i)/100, got, float64(i-1)/100, prev)
		}
		prev = got
	}
}

func TestScaledScore_ClampsInput(t *testing.T) {
	p := Default()

	if got := p.ScaledScore(-0.5); got != 200 {
		t.Errorf("ScaledScore(-0.5) = %d, want 200", got)
	}
	if got := p.ScaledScore(1.5); got != 800 {
		t.Errorf("ScaledScore(1.5) = %d, want 800", got)
	}
}

func TestValidate_Default(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default profile should validate, got %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"duplicate topic IDs", func(p *Profile) { p.Topics[1].ID = p.Topics[0].ID }},
		{"weights not summing to 100", func(p *Profile) { p.Topics[0].ExamWeight = 50 }},
		{"threshold out of range", func(p *Profile) { p.PassingRawThreshold = 1.5 }},
		{"inverted scale", func(p *Profile) { p.ScaleMin, p.ScaleMax = p.ScaleMax, p.ScaleMin }},
		{"pass score outside scale", func(p *Profile) { p.PassingScaledScore = 900 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("Validate should reject the profile")
			}
		})
	}
}

func TestTopicLookups(t *testing.T) {
	p := Default()

	if !p.ValidTopic("operations") {
		t.Error("operations should be a valid topic")
	}
	if p.ValidTopic("networking") {
		t.Error("networking should be unknown")
	}
	if got := p.Weight("implementation"); got != 26 {
		t.Errorf("Weight(implementation) = %f, want 26", got)
	}
	if got := p.Weight("networking"); got != 0 {
		t.Errorf("Weight(networking) = %f, want 0", got)
	}
	if got := len(p.TopicIDs()); got != 5 {
		t.Errorf("TopicIDs returned %d entries, want 5", got)
	}
}
