// Package response measures the offline behavior of a configured noise
// filter or response curve: impulse and step responses, settling time, and
// FFT-based magnitude response. These are development and inspection tools;
// nothing here belongs on the per-sample hot path.
package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/HybridChild/pot-head/pot/curve"
	"github.com/HybridChild/pot-head/pot/filter"
)

var (
	// ErrLengthRange is returned when a requested trace length is < 1.
	ErrLengthRange = errors.New("length must be >= 1")

	// ErrNotSettled is returned when a step response does not settle within
	// the sample budget.
	ErrNotSettled = errors.New("step response did not settle")
)

// warmup is the number of zero samples fed before every measurement so the
// filter starts from a settled zero state. MaxWindow covers the longest
// possible moving-average ring; for the EMA one sample already seeds it.
const warmup = filter.MaxWindow

// Impulse returns the filter's response to a unit impulse, measured from a
// settled zero state. For the EMA this is the classic alpha*(1-alpha)^n
// decay truncated to length; for the moving average a 1/window plateau.
func Impulse(cfg filter.Config, length int) ([]float64, error) {
	state, err := settledState(cfg, length)
	if err != nil {
		return nil, err
	}

	out := make([]float64, length)
	out[0] = cfg.Apply(state, 1)
	for i := 1; i < length; i++ {
		out[i] = cfg.Apply(state, 0)
	}

	return out, nil
}

// Step returns the filter's response to a unit step, measured from a
// settled zero state.
func Step(cfg filter.Config, length int) ([]float64, error) {
	state, err := settledState(cfg, length)
	if err != nil {
		return nil, err
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = cfg.Apply(state, 1)
	}

	return out, nil
}

// SettlingTime returns the number of step-response samples until the output
// first reaches and stays within tol of the final value 1, up to maxSamples.
func SettlingTime(cfg filter.Config, tol float64, maxSamples int) (int, error) {
	trace, err := Step(cfg, maxSamples)
	if err != nil {
		return 0, err
	}

	settled := -1
	for i, v := range trace {
		diff := 1 - v
		if diff < 0 {
			diff = -diff
		}

		if diff <= tol {
			if settled < 0 {
				settled = i
			}
		} else {
			settled = -1
		}
	}

	if settled < 0 {
		return 0, fmt.Errorf("response: %w within %d samples (tol %v)", ErrNotSettled, maxSamples, tol)
	}

	return settled + 1, nil
}

// Magnitude returns |H[k]| for k in [0, fftSize/2], computed from the
// filter's impulse response. fftSize is rounded up to a power of two.
// Bin k corresponds to the normalized frequency k/fftSize of the caller's
// sampling cadence.
func Magnitude(cfg filter.Config, fftSize int) ([]float64, error) {
	if fftSize < 2 {
		return nil, fmt.Errorf("response: fft size must be >= 2: %d", fftSize)
	}
	fftSize = nextPowerOf2(fftSize)

	ir, err := Impulse(cfg, fftSize)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)

	return out, nil
}

// CurveTable samples a response curve at steps+1 evenly spaced inputs over
// the unit interval, endpoints included.
func CurveTable(t curve.Type, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, fmt.Errorf("response: steps must be >= 1: %d", steps)
	}

	out := make([]float64, steps+1)
	for i := range out {
		out[i] = t.Apply(float64(i) / float64(steps))
	}

	return out, nil
}

func settledState(cfg filter.Config, length int) (*filter.State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if length < 1 {
		return nil, fmt.Errorf("response: %w: %d", ErrLengthRange, length)
	}

	state := &filter.State{}
	for i := 0; i < warmup; i++ {
		cfg.Apply(state, 0)
	}

	return state, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
