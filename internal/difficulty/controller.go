package difficulty

// Level is the current practice difficulty. It moves one step at a time;
// there is no path from Easy directly to Hard.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	switch l {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// stepUp returns the next level up, saturating at Hard.
func (l Level) stepUp() Level {
	switch l {
	case Easy:
		return Medium
	case Medium:
		return Hard
	}
	return l
}

// stepDown returns the next level down, saturating at Easy.
func (l Level) stepDown() Level {
	switch l {
	case Hard:
		return Medium
	case Medium:
		return Easy
	}
	return l
}

// Config tunes the rolling-window step function.
type Config struct {
	// MinWindow is the minimum number of recent results required before
	// any adjustment happens.
	MinWindow int

	// StepUpThreshold and StepDownThreshold bound the dead zone where
	// the level stays put.
	StepUpThreshold   float64
	StepDownThreshold float64
}

// DefaultConfig returns the standard 5-answer window with an 85%/60% band.
func DefaultConfig() Config {
	return Config{
		MinWindow:         5,
		StepUpThreshold:   0.85,
		StepDownThreshold: 0.60,
	}
}

// Controller adjusts the current difficulty from a rolling correctness
// window.
type Controller struct {
	cfg Config
}

// NewController creates a controller. Zero config fields fall back to
// defaults.
func NewController(cfg Config) Controller {
	def := DefaultConfig()
	if cfg.MinWindow == 0 {
		cfg.MinWindow = def.MinWindow
	}
	if cfg.StepUpThreshold == 0 {
		cfg.StepUpThreshold = def.StepUpThreshold
	}
	if cfg.StepDownThreshold == 0 {
		cfg.StepDownThreshold = def.StepDownThreshold
	}
	return Controller{cfg: cfg}
}

// Adjust returns the new level given the rolling window of recent results.
// A window smaller than MinWindow is a no-op. The level moves at most one
// step per call.
func (c Controller) Adjust(current Level, recent []bool) Level {
	if len(recent) < c.cfg.MinWindow {
		return current
	}

	correct := 0
	for _, r := range recent {
		if r {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(recent))

	switch {
	case accuracy >= c.cfg.StepUpThreshold:
		return current.stepUp()
	case accuracy <= c.cfg.StepDownThreshold:
		return current.stepDown()
	}
	return current
}
