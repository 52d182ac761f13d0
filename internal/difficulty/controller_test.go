package difficulty

import "testing"

func results(correct, total int) []bool {
	out := make([]bool, total)
	for i := 0; i < correct; i++ {
		out[i] = true
	}
	return out
}

func TestAdjust_NoOpUnderMinWindow(t *testing.T) {
	c := NewController(DefaultConfig())

	for n := 0; n < 5; n++ {
		if got := c.Adjust(Medium, results(n, n)); got != Medium {
			t.Errorf("Adjust with %d results = %v, want no-op Medium", n, got)
		}
	}
}

func TestAdjust_StepsUpAndDown(t *testing.T) {
	c := NewController(DefaultConfig())

	tests := []struct {
		name    string
		current Level
		correct int
		total   int
		want    Level
	}{
		{"high accuracy steps up", Easy, 9, 10, Medium},
		{"high accuracy from medium", Medium, 9, 10, Hard},
		{"already hard saturates", Hard, 10, 10, Hard},
		{"low accuracy steps down", Hard, 5, 10, Medium},
		{"low accuracy from medium", Medium, 5, 10, Easy},
		{"already easy saturates", Easy, 0, 10, Easy},
		{"dead zone holds", Medium, 7, 10, Medium},
		{"exactly 85 percent steps up", Easy, 17, 20, Medium},
		{"exactly 60 percent steps down", Hard, 6, 10, Medium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Adjust(tt.current, results(tt.correct, tt.total)); got != tt.want {
				t.Errorf("Adjust(%v, %d/%d) = %v, want %v", tt.current, tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestAdjust_NeverSkipsALevel(t *testing.T) {
	c := NewController(DefaultConfig())

	// Perfect window from Easy must land on Medium, never Hard.
	if got := c.Adjust(Easy, results(10, 10)); got != Medium {
		t.Errorf("Adjust(Easy, perfect) = %v, want Medium", got)
	}
	// Zero accuracy from Hard must land on Medium, never Easy.
	if got := c.Adjust(Hard, results(0, 10)); got != Medium {
		t.Errorf("Adjust(Hard, all wrong) = %v, want Medium", got)
	}
}

func TestLevelValid(t *testing.T) {
	for _, l := range []Level{Easy, Medium, Hard} {
		if !l.Valid() {
			t.Errorf("Level %q should be valid", l)
		}
	}
	if Level("expert").Valid() {
		t.Error("Level \"expert\" should be invalid")
	}
}
