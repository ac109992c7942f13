// Package curve shapes a normalized control value through a response curve.
// Curves are stateless monotonic maps on the unit interval with fixed
// endpoints: Apply(0) = 0 and Apply(1) = 1 for every curve type.
package curve

import (
	"errors"
	"fmt"

	"github.com/HybridChild/pot-head/pot/core"
)

// Type selects the response curve.
type Type int

const (
	// Linear is the identity map.
	Linear Type = iota

	// Logarithmic is an audio-taper curve approximating perceived-loudness
	// linearity: fine resolution at low values, coarse at high values.
	Logarithmic
)

// ErrUnknownCurve is returned when a Type is out of range.
var ErrUnknownCurve = errors.New("unknown curve type")

// taperSpan is e^3 - 1, the normalization constant anchoring the audio
// taper so that Apply(1) = 1. The exponent 3 fixes the taper's dynamic
// range (~26 dB) and is deliberately not configurable; keep it identical
// across implementations for bit-comparable output.
const taperSpan = 19.085536923187668

// Validate reports whether t names a known curve.
func (t Type) Validate() error {
	switch t {
	case Linear, Logarithmic:
		return nil
	default:
		return fmt.Errorf("curve: %w: %d", ErrUnknownCurve, int(t))
	}
}

// String returns the curve name for display and spec files.
func (t Type) String() string {
	switch t {
	case Linear:
		return "linear"
	case Logarithmic:
		return "logarithmic"
	default:
		return fmt.Sprintf("curve(%d)", int(t))
	}
}

// Apply transforms a normalized value through the curve. Input outside
// [0, 1] is clamped first; the result is always in [0, 1].
func (t Type) Apply(normalized float64) float64 {
	x := core.Clamp01(normalized)

	switch t {
	case Logarithmic:
		return (expTaper(3*x) - 1) / taperSpan
	default:
		return x
	}
}
