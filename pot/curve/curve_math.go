//go:build !fastmath

package curve

import "math"

// expTaper computes e^x using the standard library.
func expTaper(x float64) float64 {
	return math.Exp(x)
}
