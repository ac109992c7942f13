package filter

import (
	"errors"
	"testing"

	"github.com/HybridChild/pot-head/pot/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"none", Config{Kind: None}, nil},
		{"ema valid", Config{Kind: ExponentialMovingAverage, Alpha: 0.3}, nil},
		{"ema alpha one", Config{Kind: ExponentialMovingAverage, Alpha: 1}, nil},
		{"ema alpha zero", Config{Kind: ExponentialMovingAverage, Alpha: 0}, ErrAlphaRange},
		{"ema alpha above one", Config{Kind: ExponentialMovingAverage, Alpha: 1.5}, ErrAlphaRange},
		{"ma valid", Config{Kind: MovingAverage, Window: 8}, nil},
		{"ma window min", Config{Kind: MovingAverage, Window: 1}, nil},
		{"ma window max", Config{Kind: MovingAverage, Window: 32}, nil},
		{"ma window zero", Config{Kind: MovingAverage, Window: 0}, ErrWindowRange},
		{"ma window too large", Config{Kind: MovingAverage, Window: 33}, ErrWindowRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNoneIsIdentity(t *testing.T) {
	cfg := Config{Kind: None}
	var s State

	for _, v := range []float64{0, 0.3, 0.999, 1} {
		if got := cfg.Apply(&s, v); got != v {
			t.Errorf("Apply(%v) = %v, want identity", v, got)
		}
	}
}

func TestEMAFirstCallReturnsInput(t *testing.T) {
	cfg := Config{Kind: ExponentialMovingAverage, Alpha: 0.3}
	var s State

	if got := cfg.Apply(&s, 0.5); got != 0.5 {
		t.Errorf("first Apply = %v, want 0.5", got)
	}
}

func TestEMASmoothing(t *testing.T) {
	cfg := Config{Kind: ExponentialMovingAverage, Alpha: 0.3}
	var s State

	cfg.Apply(&s, 0)
	got := cfg.Apply(&s, 1)
	if !core.NearlyEqual(got, 0.3, 1e-12) {
		t.Errorf("step response = %v, want 0.3", got)
	}
}

func TestEMAConvergesMonotonically(t *testing.T) {
	cfg := Config{Kind: ExponentialMovingAverage, Alpha: 0.2}
	var s State

	cfg.Apply(&s, 0)

	prev := 0.0
	for i := 0; i < 200; i++ {
		out := cfg.Apply(&s, 1)
		if out <= prev {
			t.Fatalf("sample %d: output %v not strictly increasing from %v", i, out, prev)
		}
		prev = out
	}

	if !core.NearlyEqual(prev, 1, 1e-9) {
		t.Errorf("after 200 constant samples output = %v, want ~1", prev)
	}
}

func TestMovingAverageExactMean(t *testing.T) {
	cfg := Config{Kind: MovingAverage, Window: 4}
	var s State

	samples := []float64{0.1, 0.2, 0.3, 0.4}
	var got float64
	for _, v := range samples {
		got = cfg.Apply(&s, v)
	}

	if !core.NearlyEqual(got, 0.25, 1e-12) {
		t.Errorf("mean of %v = %v, want 0.25", samples, got)
	}
}

func TestMovingAveragePartialFill(t *testing.T) {
	cfg := Config{Kind: MovingAverage, Window: 8}
	var s State

	if got := cfg.Apply(&s, 0.6); got != 0.6 {
		t.Errorf("first sample mean = %v, want 0.6", got)
	}

	got := cfg.Apply(&s, 0.2)
	if !core.NearlyEqual(got, 0.4, 1e-12) {
		t.Errorf("two-sample mean = %v, want 0.4", got)
	}
}

func TestMovingAverageRingWraps(t *testing.T) {
	cfg := Config{Kind: MovingAverage, Window: 3}
	var s State

	cfg.Apply(&s, 1)
	cfg.Apply(&s, 2)
	cfg.Apply(&s, 3)
	got := cfg.Apply(&s, 4)

	// Ring now holds {4, 2, 3}.
	if !core.NearlyEqual(got, 3, 1e-12) {
		t.Errorf("wrapped mean = %v, want 3", got)
	}
}

func TestReset(t *testing.T) {
	ema := Config{Kind: ExponentialMovingAverage, Alpha: 0.3}
	var s State

	ema.Apply(&s, 0.5)
	ema.Apply(&s, 0.7)
	s.Reset()

	if got := ema.Apply(&s, 1); got != 1 {
		t.Errorf("after Reset first Apply = %v, want 1", got)
	}

	ma := Config{Kind: MovingAverage, Window: 3}
	s.Reset()
	ma.Apply(&s, 5)
	ma.Apply(&s, 5)
	s.Reset()

	if got := ma.Apply(&s, 1); got != 1 {
		t.Errorf("after Reset moving average = %v, want 1", got)
	}
}

func BenchmarkEMA(b *testing.B) {
	cfg := Config{Kind: ExponentialMovingAverage, Alpha: 0.3}
	var s State

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cfg.Apply(&s, float64(i%100)/100)
	}
}

func BenchmarkMovingAverage(b *testing.B) {
	cfg := Config{Kind: MovingAverage, Window: 32}
	var s State

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cfg.Apply(&s, float64(i%100)/100)
	}
}
