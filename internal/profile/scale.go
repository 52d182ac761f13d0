package profile

import "math"

// ScaledScore maps raw accuracy [0,1] onto the profile's scaled-score
// scale. The mapping is piecewise linear and pinned so that exactly the
// passing raw threshold lands on the passing scaled score, which keeps
// it continuous and monotonic across the whole range.
func (p Profile) ScaledScore(rawAccuracy float64) int {
	a := rawAccuracy
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}

	min := float64(p.ScaleMin)
	max := float64(p.ScaleMax)
	pass := float64(p.PassingScaledScore)
	t := p.PassingRawThreshold

	var scaled float64
	if a <= t {
		scaled = min + (a/t)*(pass-min)
	} else {
		scaled = pass + ((a-t)/(1-t))*(max-pass)
	}
	return int(math.Round(scaled))
}
