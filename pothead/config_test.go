package pothead

import (
	"errors"
	"testing"

	"github.com/HybridChild/pot-head/pot/filter"
	"github.com/HybridChild/pot-head/pot/grab"
	"github.com/HybridChild/pot-head/pot/hysteresis"
	"github.com/HybridChild/pot-head/pot/norm"
	"github.com/HybridChild/pot-head/pot/snap"
)

func validConfig() Config {
	return Config{
		InputMin:  0,
		InputMax:  1023,
		OutputMin: 0,
		OutputMax: 1,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			"valid minimal",
			func(c *Config) {},
			nil,
		},
		{
			"valid reversed output",
			func(c *Config) { c.OutputMin = 100; c.OutputMax = -100 },
			nil,
		},
		{
			"input min equals max",
			func(c *Config) { c.InputMin = 10; c.InputMax = 10 },
			norm.ErrInvalidInputRange,
		},
		{
			"input min above max",
			func(c *Config) { c.InputMin = 20; c.InputMax = 10 },
			norm.ErrInvalidInputRange,
		},
		{
			"degenerate output",
			func(c *Config) { c.OutputMin = 5; c.OutputMax = 5 },
			norm.ErrInvalidOutputRange,
		},
		{
			"bad ema alpha",
			func(c *Config) {
				c.Filter = filter.Config{Kind: filter.ExponentialMovingAverage, Alpha: 2}
			},
			filter.ErrAlphaRange,
		},
		{
			"bad moving average window",
			func(c *Config) {
				c.Filter = filter.Config{Kind: filter.MovingAverage, Window: 64}
			},
			filter.ErrWindowRange,
		},
		{
			"schmitt rising below falling",
			func(c *Config) {
				c.Hysteresis = hysteresis.Config{Kind: hysteresis.Schmitt, Rising: 0.2, Falling: 0.8}
			},
			hysteresis.ErrSchmittOrder,
		},
		{
			"change threshold out of range",
			func(c *Config) {
				c.Hysteresis = hysteresis.Config{Kind: hysteresis.ChangeThreshold, Threshold: 1.5}
			},
			hysteresis.ErrThresholdRange,
		},
		{
			"negative zone threshold",
			func(c *Config) {
				c.SnapZones = []snap.Zone{{Target: 0.5, Threshold: -1, Kind: snap.Snap}}
			},
			snap.ErrThresholdNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
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

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.GrabMode = grab.Mode(42)

	if _, err := New(cfg); err == nil {
		t.Fatal("New with unknown grab mode should fail")
	}
}

func TestNewCopiesSnapZones(t *testing.T) {
	zones := []snap.Zone{{Target: 0.5, Threshold: 0.1, Kind: snap.Snap}}
	cfg := Config{InputMin: 0, InputMax: 1, OutputMin: 0, OutputMax: 1, SnapZones: zones}

	p, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's slice must not reach the pipeline.
	zones[0] = snap.Zone{Target: 0.9, Threshold: 0.0001, Kind: snap.Snap}

	if got := p.Update(0.45); got != 0.5 {
		t.Errorf("Update(0.45) = %v, want 0.5 snapped by the original zone", got)
	}
}
