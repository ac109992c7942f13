package pothead

import (
	"github.com/HybridChild/pot-head/pot/filter"
	"github.com/HybridChild/pot-head/pot/grab"
	"github.com/HybridChild/pot-head/pot/hysteresis"
)

// state is the per-instance runtime record, mutated exactly once per Update.
// Each stage reads only values committed by the previous call.
type state struct {
	filter     filter.State
	hysteresis hysteresis.State
	grab       grab.State

	// snapMemory is the previous post-snap value, the freeze target of
	// Dead zones. snapSeeded is false only before the first Update.
	snapMemory float64
	snapSeeded bool

	// physical is the post-curve, post-hysteresis, pre-snap value of the
	// most recent sample, kept for UI inspection.
	physical float64

	// lastOutput is the last denormalized emitted value.
	lastOutput float64
}

func (s *state) reset() {
	s.filter.Reset()
	s.hysteresis.Reset()
	s.grab.Reset()
	s.snapMemory = 0
	s.snapSeeded = false
	s.physical = 0
	s.lastOutput = 0
}
