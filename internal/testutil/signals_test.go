package testutil

import "testing"

func TestRamp(t *testing.T) {
	got := Ramp(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestRampSingleSample(t *testing.T) {
	got := Ramp(0.3, 0.9, 1)
	if len(got) != 1 || got[0] != 0.3 {
		t.Fatalf("Ramp length 1 = %v, want [0.3]", got)
	}
}

func TestStep(t *testing.T) {
	got := Step(0, 1, 4, 2)
	want := []float64{0, 0, 1, 1}
	RequireSliceNearlyEqual(t, got, want, 0)
}

func TestConstant(t *testing.T) {
	got := Constant(0.7, 3)
	want := []float64{0.7, 0.7, 0.7}
	RequireSliceNearlyEqual(t, got, want, 0)
}

func TestNoisyConstantReproducible(t *testing.T) {
	a := NoisyConstant(42, 0.5, 0.01, 16)
	b := NoisyConstant(42, 0.5, 0.01, 16)
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireFinite(t, a)

	for i, v := range a {
		if v < 0.49 || v > 0.51 {
			t.Fatalf("index %d: %v outside jitter band", i, v)
		}
	}
}
