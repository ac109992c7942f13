//go:build fastmath

package curve

import "github.com/meko-christian/algo-approx"

// expTaper computes e^x using fast approximation. The taper argument is
// always in [0, 3], well inside FastExp's accurate range.
func expTaper(x float64) float64 {
	return approx.FastExp(x)
}
