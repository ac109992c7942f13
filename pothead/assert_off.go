//go:build !potdebug

package pothead

// debugCheckInput is a no-op in release builds; out-of-range input is
// clamped by the normalizer.
func debugCheckInput(input, min, max float64) {
	_ = input
	_ = min
	_ = max
}
