// Package hysteresis suppresses small or boundary-oscillating changes in a
// normalized control value.
//
// ChangeThreshold ignores movements whose distance from the last emitted
// value does not exceed the threshold. Schmitt is a two-threshold bistable
// latch for on/off style controls; while latched it emits the threshold
// constant of the latched side, so its output is fully deterministic and
// never tracks the input continuously.
package hysteresis

import (
	"errors"
	"fmt"
)

// Kind selects the hysteresis mode.
type Kind int

const (
	// None always emits the current value.
	None Kind = iota

	// ChangeThreshold ignores changes smaller than or equal to Threshold.
	ChangeThreshold

	// Schmitt latches HIGH at or above Rising and LOW at or below Falling.
	Schmitt
)

var (
	// ErrThresholdRange is returned when a change threshold is outside [0, 1].
	ErrThresholdRange = errors.New("change threshold must be in [0, 1]")

	// ErrSchmittOrder is returned when rising <= falling.
	ErrSchmittOrder = errors.New("schmitt rising threshold must exceed falling threshold")
)

// Config describes one hysteresis stage. Threshold is read only for
// ChangeThreshold; Rising and Falling only for Schmitt.
type Config struct {
	Kind      Kind
	Threshold float64
	Rising    float64
	Falling   float64
}

// Validate range-checks the configuration once; Apply has no failure path.
func (c Config) Validate() error {
	switch c.Kind {
	case None:
		return nil
	case ChangeThreshold:
		if c.Threshold < 0 || c.Threshold > 1 {
			return fmt.Errorf("hysteresis: %w: %v", ErrThresholdRange, c.Threshold)
		}
		return nil
	case Schmitt:
		if c.Rising <= c.Falling {
			return fmt.Errorf("hysteresis: %w: rising %v, falling %v", ErrSchmittOrder, c.Rising, c.Falling)
		}
		return nil
	default:
		return fmt.Errorf("hysteresis: unknown kind %d", int(c.Kind))
	}
}

// State holds hysteresis memory for one control instance. The zero value is
// the pre-first-sample state: ChangeThreshold emits and seeds on the first
// call, Schmitt starts on the LOW side.
type State struct {
	lastOutput  float64
	initialized bool
	high        bool
}

// Reset returns the state to its pre-first-sample condition.
func (s *State) Reset() {
	*s = State{}
}

// Latched reports the current Schmitt side; false is LOW. Meaningful only
// when the Schmitt mode is configured.
func (s *State) Latched() bool {
	return s.high
}

// Apply runs one sample through the configured hysteresis, updating state.
// Assumes a validated Config; a Kind outside the known set passes through.
func (c Config) Apply(s *State, input float64) float64 {
	switch c.Kind {
	case ChangeThreshold:
		return s.applyThreshold(input, c.Threshold)
	case Schmitt:
		return s.applySchmitt(input, c.Rising, c.Falling)
	default:
		return input
	}
}

func (s *State) applyThreshold(input, threshold float64) float64 {
	if !s.initialized {
		s.lastOutput = input
		s.initialized = true
		return input
	}

	diff := input - s.lastOutput
	if diff < 0 {
		diff = -diff
	}

	if diff > threshold {
		s.lastOutput = input
	}

	return s.lastOutput
}

func (s *State) applySchmitt(input, rising, falling float64) float64 {
	if input >= rising {
		s.high = true
	} else if input <= falling {
		s.high = false
	}

	if s.high {
		s.lastOutput = rising
	} else {
		s.lastOutput = falling
	}

	return s.lastOutput
}
