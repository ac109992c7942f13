// Package grab reconciles a physical input position with a previously held
// virtual value after the two have diverged, e.g. when a preset recall moved
// the logical parameter while the physical knob stayed put. While ungrabbed
// the output holds the virtual value; once the physical trace satisfies the
// mode's catch condition the instance grabs and the physical position takes
// over. Grabbed is terminal for the per-sample step: only an external re-arm
// (Arm or ReleaseTo) re-enters the ungrabbed state.
package grab

import "fmt"

// Mode selects the reconciliation behavior.
type Mode int

const (
	// None disables reconciliation; the physical value always wins.
	None Mode = iota

	// Pickup grabs when the physical value crosses the virtual value from
	// below. Industry standard on professional audio hardware.
	Pickup

	// PassThrough grabs when the physical trace crosses the virtual value
	// from either side between two consecutive samples.
	PassThrough
)

// Validate reports whether m names a known mode.
func (m Mode) Validate() error {
	switch m {
	case None, Pickup, PassThrough:
		return nil
	default:
		return fmt.Errorf("grab: unknown mode %d", int(m))
	}
}

// String returns the mode name for display and spec files.
func (m Mode) String() string {
	switch m {
	case Pickup:
		return "pickup"
	case PassThrough:
		return "passthrough"
	default:
		return "none"
	}
}

// State holds the reconciliation state for one control instance.
// Values are normalized. The zero value starts ungrabbed at virtual 0,
// which makes the first Pickup sample grab immediately.
type State struct {
	// Grabbed reports whether the physical position has been reconciled
	// with the virtual value since the last re-arm.
	Grabbed bool

	// VirtualValue is the held logical value while ungrabbed and the
	// authoritative output once grabbed.
	VirtualValue float64

	// LastPhysical is the previous physical sample, used by PassThrough
	// crossing detection.
	LastPhysical float64

	// tracking is false until PassThrough has seen one sample after a
	// re-arm; the first sample only records LastPhysical so a stale
	// position can never fake a crossing.
	tracking bool
}

// Arm installs a new virtual value (e.g. after a preset recall) and forces
// the ungrabbed state, re-enabling the catch behavior.
func (s *State) Arm(virtual float64) {
	s.VirtualValue = virtual
	s.Grabbed = false
	s.tracking = false
}

// ReleaseTo drops the grab and adopts the given physical position as the new
// virtual value. Used when a physical pot is reassigned to another parameter.
func (s *State) ReleaseTo(physical float64) {
	s.VirtualValue = physical
	s.Grabbed = false
	s.tracking = false
}

// Reset returns the state to construction values.
func (s *State) Reset() {
	*s = State{}
}

// Apply runs one post-snap sample through the state machine and returns the
// gated output: the virtual value while ungrabbed, the fresh value once
// grabbed.
func (m Mode) Apply(s *State, value float64) float64 {
	switch m {
	case Pickup:
		return s.applyPickup(value)
	case PassThrough:
		return s.applyPassThrough(value)
	default:
		s.Grabbed = true
		s.VirtualValue = value
		return value
	}
}

func (s *State) applyPickup(value float64) float64 {
	if !s.Grabbed {
		if value < s.VirtualValue {
			return s.VirtualValue
		}
		s.Grabbed = true
	}

	s.VirtualValue = value
	return value
}

func (s *State) applyPassThrough(value float64) float64 {
	if s.Grabbed {
		s.LastPhysical = value
		s.VirtualValue = value
		return value
	}

	if !s.tracking {
		s.LastPhysical = value
		s.tracking = true
		return s.VirtualValue
	}

	crossedFromBelow := value >= s.VirtualValue && s.LastPhysical < s.VirtualValue
	crossedFromAbove := value <= s.VirtualValue && s.LastPhysical > s.VirtualValue

	s.LastPhysical = value

	if crossedFromBelow || crossedFromAbove {
		s.Grabbed = true
		s.VirtualValue = value
		return value
	}

	return s.VirtualValue
}
