//go:build potdebug

package pothead

import "fmt"

// debugCheckInput panics on out-of-range raw samples in development builds.
// Release builds (without the potdebug tag) clamp silently instead.
func debugCheckInput(input, min, max float64) {
	if input < min || input > max {
		panic(fmt.Sprintf("pothead: input %v outside [%v, %v]", input, min, max))
	}
}
