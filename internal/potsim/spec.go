// Package potsim implements the interactive terminal simulator: a roster of
// differently configured pots driven by one simulated ADC input, rendered as
// live bars so filtering, snapping, and grab behavior can be explored by
// hand.
package potsim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/HybridChild/pot-head/pot/curve"
	"github.com/HybridChild/pot-head/pot/filter"
	"github.com/HybridChild/pot-head/pot/grab"
	"github.com/HybridChild/pot-head/pot/hysteresis"
	"github.com/HybridChild/pot-head/pot/snap"
	"github.com/HybridChild/pot-head/pothead"
)

// SpecFile is the YAML document describing a simulator session: one shared
// raw input range and any number of pot specs.
type SpecFile struct {
	Input InputSpec `yaml:"input"`
	Pots  []PotSpec `yaml:"pots"`
}

// InputSpec describes the simulated raw input shared by every pot.
type InputSpec struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

// PotSpec describes one pot in a spec file.
type PotSpec struct {
	Label      string         `yaml:"label"`
	Output     RangeSpec      `yaml:"output"`
	Curve      string         `yaml:"curve"`
	Filter     FilterSpec     `yaml:"filter"`
	Hysteresis HysteresisSpec `yaml:"hysteresis"`
	SnapZones  []ZoneSpec     `yaml:"snap_zones"`
	Grab       string         `yaml:"grab"`
	Precision  int            `yaml:"precision"`
}

// RangeSpec is a min/max pair.
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// FilterSpec selects a noise filter by name: none, ema, or moving-average.
type FilterSpec struct {
	Kind   string  `yaml:"kind"`
	Alpha  float64 `yaml:"alpha"`
	Window int     `yaml:"window"`
}

// HysteresisSpec selects a hysteresis mode by name: none, threshold, or
// schmitt.
type HysteresisSpec struct {
	Kind      string  `yaml:"kind"`
	Threshold float64 `yaml:"threshold"`
	Rising    float64 `yaml:"rising"`
	Falling   float64 `yaml:"falling"`
}

// ZoneSpec describes one snap or dead zone.
type ZoneSpec struct {
	Kind      string  `yaml:"kind"`
	Target    float64 `yaml:"target"`
	Threshold float64 `yaml:"threshold"`
}

// Pot pairs a built pipeline with its display properties.
type Pot struct {
	Head      *pothead.PotHead
	Label     string
	Precision int
}

// LoadSpecFile parses a YAML session spec from disk.
func LoadSpecFile(path string) (*SpecFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("potsim: read spec: %w", err)
	}

	var sf SpecFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("potsim: parse spec: %w", err)
	}

	return &sf, nil
}

// Build turns every pot spec into a validated pipeline instance.
func (sf *SpecFile) Build() ([]*Pot, error) {
	if sf.Input.Min >= sf.Input.Max {
		return nil, fmt.Errorf("potsim: input range [%v, %v] is invalid", sf.Input.Min, sf.Input.Max)
	}

	if len(sf.Pots) == 0 {
		return nil, fmt.Errorf("potsim: spec contains no pots")
	}

	pots := make([]*Pot, 0, len(sf.Pots))
	for i, ps := range sf.Pots {
		cfg, err := ps.config(sf.Input.Min, sf.Input.Max)
		if err != nil {
			return nil, fmt.Errorf("potsim: pot %d (%s): %w", i, ps.Label, err)
		}

		head, err := pothead.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("potsim: pot %d (%s): %w", i, ps.Label, err)
		}

		precision := ps.Precision
		if precision <= 0 {
			precision = 2
		}

		pots = append(pots, &Pot{Head: head, Label: ps.Label, Precision: precision})
	}

	return pots, nil
}

func (ps PotSpec) config(inputMin, inputMax float64) (pothead.Config, error) {
	cfg := pothead.Config{
		InputMin:  inputMin,
		InputMax:  inputMax,
		OutputMin: ps.Output.Min,
		OutputMax: ps.Output.Max,
	}

	switch ps.Curve {
	case "", "linear":
		cfg.Curve = curve.Linear
	case "logarithmic", "log":
		cfg.Curve = curve.Logarithmic
	default:
		return cfg, fmt.Errorf("unknown curve %q", ps.Curve)
	}

	switch ps.Filter.Kind {
	case "", "none":
		cfg.Filter = filter.Config{Kind: filter.None}
	case "ema":
		cfg.Filter = filter.Config{Kind: filter.ExponentialMovingAverage, Alpha: ps.Filter.Alpha}
	case "moving-average", "ma":
		cfg.Filter = filter.Config{Kind: filter.MovingAverage, Window: ps.Filter.Window}
	default:
		return cfg, fmt.Errorf("unknown filter kind %q", ps.Filter.Kind)
	}

	switch ps.Hysteresis.Kind {
	case "", "none":
		cfg.Hysteresis = hysteresis.Config{Kind: hysteresis.None}
	case "threshold":
		cfg.Hysteresis = hysteresis.Config{Kind: hysteresis.ChangeThreshold, Threshold: ps.Hysteresis.Threshold}
	case "schmitt":
		cfg.Hysteresis = hysteresis.Config{
			Kind:    hysteresis.Schmitt,
			Rising:  ps.Hysteresis.Rising,
			Falling: ps.Hysteresis.Falling,
		}
	default:
		return cfg, fmt.Errorf("unknown hysteresis kind %q", ps.Hysteresis.Kind)
	}

	for _, zs := range ps.SnapZones {
		zone := snap.Zone{Target: zs.Target, Threshold: zs.Threshold}
		switch zs.Kind {
		case "", "snap":
			zone.Kind = snap.Snap
		case "dead":
			zone.Kind = snap.Dead
		default:
			return cfg, fmt.Errorf("unknown snap zone kind %q", zs.Kind)
		}
		cfg.SnapZones = append(cfg.SnapZones, zone)
	}

	switch ps.Grab {
	case "", "none":
		cfg.GrabMode = grab.None
	case "pickup":
		cfg.GrabMode = grab.Pickup
	case "passthrough", "pass-through":
		cfg.GrabMode = grab.PassThrough
	default:
		return cfg, fmt.Errorf("unknown grab mode %q", ps.Grab)
	}

	return cfg, nil
}

// DefaultSpecFile returns the built-in session: a roster demonstrating every
// pipeline stage against a simulated 0-99 ADC.
func DefaultSpecFile() *SpecFile {
	unit := RangeSpec{Min: 0, Max: 1}

	return &SpecFile{
		Input: InputSpec{Min: 0, Max: 99, Step: 1},
		Pots: []PotSpec{
			{Label: "Standard", Output: unit},
			{Label: "Reversed", Output: RangeSpec{Min: 100, Max: -100}, Precision: 1},
			{Label: "Log Taper", Output: unit, Curve: "logarithmic"},
			{Label: "Smoothed", Output: unit, Filter: FilterSpec{Kind: "ema", Alpha: 0.3}},
			{Label: "Snapping", Output: unit, SnapZones: []ZoneSpec{
				{Kind: "dead", Target: 0.5, Threshold: 0.02},
				{Kind: "snap", Target: 1, Threshold: 0.05},
			}},
			{Label: "Pickup", Output: unit, Grab: "pickup"},
			{Label: "PassThrough", Output: unit, Grab: "passthrough"},
		},
	}
}
