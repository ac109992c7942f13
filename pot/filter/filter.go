// Package filter smooths noisy normalized samples before curve shaping.
// All filtering operates in the unit interval and is allocation-free:
// the moving-average history lives in a fixed-capacity ring inside State.
package filter

import (
	"errors"
	"fmt"
)

const (
	// MinWindow and MaxWindow bound the moving-average window length.
	// MaxWindow fixes the ring capacity, keeping State allocation-free.
	MinWindow = 1
	MaxWindow = 32
)

// Kind selects the noise filter.
type Kind int

const (
	// None applies no filtering.
	None Kind = iota

	// ExponentialMovingAverage applies output = prev + alpha*(input - prev).
	// Lower alpha smooths more; alpha = 1 is pass-through.
	ExponentialMovingAverage

	// MovingAverage emits the arithmetic mean of the last Window samples.
	MovingAverage
)

var (
	// ErrAlphaRange is returned when an EMA alpha is outside (0, 1].
	ErrAlphaRange = errors.New("ema alpha must be in (0, 1]")

	// ErrWindowRange is returned when a moving-average window is outside
	// [MinWindow, MaxWindow].
	ErrWindowRange = errors.New("moving average window out of range")
)

// Config describes one noise filter. Alpha is read only for
// ExponentialMovingAverage, Window only for MovingAverage.
type Config struct {
	Kind   Kind
	Alpha  float64
	Window int
}

// Validate range-checks the configuration once; Apply has no failure path.
func (c Config) Validate() error {
	switch c.Kind {
	case None:
		return nil
	case ExponentialMovingAverage:
		if c.Alpha <= 0 || c.Alpha > 1 {
			return fmt.Errorf("filter: %w: %v", ErrAlphaRange, c.Alpha)
		}
		return nil
	case MovingAverage:
		if c.Window < MinWindow || c.Window > MaxWindow {
			return fmt.Errorf("filter: %w: %d not in [%d, %d]", ErrWindowRange, c.Window, MinWindow, MaxWindow)
		}
		return nil
	default:
		return fmt.Errorf("filter: unknown kind %d", int(c.Kind))
	}
}

// State holds filter memory for one control instance. The zero value is the
// pre-first-sample state; both filters seed themselves on the first call.
type State struct {
	// EMA memory.
	previous    float64
	initialized bool

	// Moving-average ring.
	ring  [MaxWindow]float64
	index int
	count int
}

// Reset returns the state to its pre-first-sample condition.
func (s *State) Reset() {
	*s = State{}
}

// Apply runs one sample through the configured filter, updating state.
// Assumes a validated Config; a Kind outside the known set passes through.
func (c Config) Apply(s *State, input float64) float64 {
	switch c.Kind {
	case ExponentialMovingAverage:
		return s.applyEMA(input, c.Alpha)
	case MovingAverage:
		return s.applyMovingAverage(input, c.Window)
	default:
		return input
	}
}

// applyEMA seeds with the first input so there is no warm-up transient.
func (s *State) applyEMA(input, alpha float64) float64 {
	if !s.initialized {
		s.previous = input
		s.initialized = true
		return input
	}

	out := s.previous + alpha*(input-s.previous)
	s.previous = out
	return out
}

// applyMovingAverage averages the samples seen so far until the ring fills,
// then the last window samples.
func (s *State) applyMovingAverage(input float64, window int) float64 {
	s.ring[s.index] = input
	s.index++
	if s.index >= window {
		s.index = 0
	}

	if s.count < window {
		s.count++
	}

	sum := 0.0
	for i := 0; i < s.count; i++ {
		sum += s.ring[i]
	}

	return sum / float64(s.count)
}
