// Package norm maps raw sample values to the canonical unit interval and
// back to the caller's output domain. Both maps are affine; the output map
// supports reversed ranges (OutputMin > OutputMax), which invert the control.
package norm

import (
	"errors"
	"fmt"

	"github.com/HybridChild/pot-head/pot/core"
)

var (
	// ErrInvalidInputRange is returned when InputMin >= InputMax.
	ErrInvalidInputRange = errors.New("input min must be less than input max")

	// ErrInvalidOutputRange is returned when OutputMin == OutputMax.
	ErrInvalidOutputRange = errors.New("output min must not equal output max")
)

// Normalizer converts between the raw input domain, the unit interval, and
// the output domain. The zero value is unusable; construct with New.
type Normalizer struct {
	inputMin  float64
	inputMax  float64
	outputMin float64
	outputMax float64
}

// New validates the ranges and returns a ready Normalizer.
//
// The input range must satisfy InputMin < InputMax. The output range must be
// non-degenerate; a reversed output range (min > max) is legal and flips the
// direction of the control.
func New(inputMin, inputMax, outputMin, outputMax float64) (Normalizer, error) {
	if inputMin >= inputMax {
		return Normalizer{}, fmt.Errorf("norm: %w: [%v, %v]", ErrInvalidInputRange, inputMin, inputMax)
	}

	if outputMin == outputMax {
		return Normalizer{}, fmt.Errorf("norm: %w: [%v, %v]", ErrInvalidOutputRange, outputMin, outputMax)
	}

	return Normalizer{
		inputMin:  inputMin,
		inputMax:  inputMax,
		outputMin: outputMin,
		outputMax: outputMax,
	}, nil
}

// Normalize clamps input to the configured input range and maps it to [0, 1].
// Out-of-range samples (sensor glitches) are clamped silently.
func (n Normalizer) Normalize(input float64) float64 {
	clamped := core.Clamp(input, n.inputMin, n.inputMax)
	return (clamped - n.inputMin) / (n.inputMax - n.inputMin)
}

// Denormalize maps a unit-interval value to the output range. The result is
// clamped to the output bounds so floating error can never leak outside them.
func (n Normalizer) Denormalize(unit float64) float64 {
	out := n.outputMin + unit*(n.outputMax-n.outputMin)
	return core.Clamp(out, n.outputMin, n.outputMax)
}

// InputRange returns the configured raw input bounds.
func (n Normalizer) InputRange() (min, max float64) {
	return n.inputMin, n.inputMax
}

// OutputRange returns the configured output bounds in declaration order,
// which may be reversed.
func (n Normalizer) OutputRange() (min, max float64) {
	return n.outputMin, n.outputMax
}
