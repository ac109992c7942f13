package testutil

import "math/rand"

// Ramp generates a linear trace from start to end inclusive.
func Ramp(start, end float64, length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(length-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Step generates a trace holding before until pos, then after.
func Step(before, after float64, length, pos int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < pos {
			out[i] = before
		} else {
			out[i] = after
		}
	}
	return out
}

// Constant generates a constant-valued trace.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NoisyConstant generates a constant trace with seeded uniform jitter of the
// given amplitude, for reproducible filter tests.
func NoisyConstant(seed int64, value, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = value + (rng.Float64()*2-1)*amplitude
	}
	return out
}
