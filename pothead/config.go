package pothead

import (
	"fmt"

	"github.com/HybridChild/pot-head/pot/curve"
	"github.com/HybridChild/pot-head/pot/filter"
	"github.com/HybridChild/pot-head/pot/grab"
	"github.com/HybridChild/pot-head/pot/hysteresis"
	"github.com/HybridChild/pot-head/pot/norm"
	"github.com/HybridChild/pot-head/pot/snap"
)

// Config describes one logical control. It is validated once by New and
// never mutated afterwards; every stage reads it as read-only input.
//
// InputMin/InputMax bound the raw sample domain (InputMin < InputMax).
// OutputMin/OutputMax bound the result domain; OutputMin > OutputMax is
// legal and inverts the control. SnapZones are resolved in slice order,
// first match wins.
type Config struct {
	InputMin  float64
	InputMax  float64
	OutputMin float64
	OutputMax float64

	Curve      curve.Type
	Filter     filter.Config
	Hysteresis hysteresis.Config
	SnapZones  []snap.Zone
	GrabMode   grab.Mode
}

// Validate checks every stage parameter. All configuration errors surface
// here, once; no stage has a runtime failure path afterwards.
func (c Config) Validate() error {
	if _, err := norm.New(c.InputMin, c.InputMax, c.OutputMin, c.OutputMax); err != nil {
		return err
	}

	if err := c.Curve.Validate(); err != nil {
		return err
	}

	if err := c.Filter.Validate(); err != nil {
		return err
	}

	if err := c.Hysteresis.Validate(); err != nil {
		return err
	}

	if err := snap.Validate(c.SnapZones); err != nil {
		return fmt.Errorf("pothead: %w", err)
	}

	return c.GrabMode.Validate()
}
