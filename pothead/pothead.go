// Package pothead turns noisy, bounded raw samples into stable
// application-level values, one synchronous transformation per sampling
// tick. The pipeline per sample is
//
//	raw input → normalize → noise filter → response curve → hysteresis
//	          → snap zones → grab gate → denormalize → output
//
// A PotHead owns the runtime state of one logical control and performs no
// I/O: callers acquire the raw sample (ADC, encoder, MIDI) and deliver the
// output themselves, at whatever cadence they choose. Update is
// deterministic, allocation-free, and runs in bounded time; out-of-range
// input is clamped, never rejected.
package pothead

import (
	"github.com/HybridChild/pot-head/pot/core"
	"github.com/HybridChild/pot-head/pot/grab"
	"github.com/HybridChild/pot-head/pot/norm"
	"github.com/HybridChild/pot-head/pot/snap"
)

// PotHead is the processing pipeline for one logical control.
// Not safe for concurrent use; each instance belongs to one goroutine.
type PotHead struct {
	cfg  Config
	norm norm.Normalizer
	st   state
}

// New validates the configuration and returns a ready instance.
// The snap-zone slice is copied so later caller mutations cannot reach the
// pipeline. Construction is the only operation that allocates.
func New(cfg Config) (*PotHead, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n, err := norm.New(cfg.InputMin, cfg.InputMax, cfg.OutputMin, cfg.OutputMax)
	if err != nil {
		return nil, err
	}

	if len(cfg.SnapZones) > 0 {
		cfg.SnapZones = append([]snap.Zone(nil), cfg.SnapZones...)
	}

	p := &PotHead{cfg: cfg, norm: n}
	p.initState()

	return p, nil
}

func (p *PotHead) initState() {
	p.st.reset()

	// Without a grab mode the gate is a degenerate single state.
	if p.cfg.GrabMode == grab.None {
		p.st.grab.Grabbed = true
	}

	p.st.lastOutput = p.norm.Denormalize(p.st.grab.VirtualValue)
}

// Config returns the validated configuration. Treat it as read-only.
func (p *PotHead) Config() Config {
	return p.cfg
}

// Update runs one raw sample through the pipeline and returns the output
// value. This is the only per-sample operation; it mutates the instance
// state exactly once and never allocates.
func (p *PotHead) Update(input float64) float64 {
	debugCheckInput(input, p.cfg.InputMin, p.cfg.InputMax)

	normalized := p.norm.Normalize(input)
	filtered := p.cfg.Filter.Apply(&p.st.filter, normalized)
	curved := p.cfg.Curve.Apply(filtered)
	settled := p.cfg.Hysteresis.Apply(&p.st.hysteresis, curved)

	// Physical position is recorded before snap zones and the grab gate so
	// UI consumers can show the live knob next to a held virtual value.
	p.st.physical = settled

	snapped := settled
	if len(p.cfg.SnapZones) > 0 {
		freeze := settled
		if p.st.snapSeeded {
			freeze = p.st.snapMemory
		}
		snapped = snap.Resolve(p.cfg.SnapZones, settled, freeze)
	}
	p.st.snapMemory = snapped
	p.st.snapSeeded = true

	out := p.cfg.GrabMode.Apply(&p.st.grab, snapped)

	p.st.lastOutput = p.norm.Denormalize(out)
	return p.st.lastOutput
}

// CurrentOutput returns the last emitted output value without touching
// state. Before the first Update it reflects the initial virtual value.
func (p *PotHead) CurrentOutput() float64 {
	return p.st.lastOutput
}

// PhysicalPosition returns the live physical position of the most recent
// sample in output units: post-curve and post-hysteresis, but before snap
// zones and the grab gate. While waiting for a grab it differs from
// CurrentOutput.
func (p *PotHead) PhysicalPosition() float64 {
	return p.norm.Denormalize(p.st.physical)
}

// IsWaitingForGrab reports whether a grab mode is configured and the
// physical position has not yet caught the virtual value.
func (p *PotHead) IsWaitingForGrab() bool {
	return p.cfg.GrabMode != grab.None && !p.st.grab.Grabbed
}

// SetVirtualValue installs a new virtual value in output units, e.g. after
// a preset recall, and re-arms the grab behavior. The value is clamped to
// the output range.
func (p *PotHead) SetVirtualValue(value float64) {
	unit := p.toUnit(value)
	p.st.grab.Arm(unit)
	p.st.lastOutput = p.norm.Denormalize(unit)
}

// Release drops the grab and adopts the current physical position as the
// virtual value. Useful when reassigning a physical pot to another
// parameter: the pot must be moved across the value to re-grab.
func (p *PotHead) Release() {
	p.st.grab.ReleaseTo(p.st.physical)
	p.st.lastOutput = p.norm.Denormalize(p.st.physical)
}

// Reset clears all runtime state back to construction values.
func (p *PotHead) Reset() {
	p.initState()
}

// toUnit maps an output-domain value back to the unit interval, honoring
// reversed output ranges.
func (p *PotHead) toUnit(value float64) float64 {
	min, max := p.norm.OutputRange()
	clamped := core.Clamp(value, min, max)
	return (clamped - min) / (max - min)
}
