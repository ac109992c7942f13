// Package snap resolves configured zones around target values: Snap zones
// clamp the value to their target, Dead zones freeze movement. Zones are
// scanned in configuration order and the first match wins, which makes
// intentional layering possible (e.g. a narrow Dead zone nested inside a
// wider Snap zone). Overlap checking is available as a separate validation
// pass for callers that want disjoint zones; it never runs on the hot path.
package snap

import (
	"errors"
	"fmt"
)

// Kind selects a zone's behavior.
type Kind int

const (
	// Snap clamps values inside the zone to the zone target.
	Snap Kind = iota

	// Dead freezes the resolver output while the value stays inside the zone.
	Dead
)

var (
	// ErrThresholdNegative is returned when a zone half-width is negative.
	ErrThresholdNegative = errors.New("zone threshold must be >= 0")

	// ErrZonesOverlap is returned by ValidateDisjoint when two zones intersect.
	ErrZonesOverlap = errors.New("zones overlap")
)

// Zone is one configured neighborhood [Target-Threshold, Target+Threshold]
// in normalized units.
type Zone struct {
	Target    float64
	Threshold float64
	Kind      Kind
}

// Contains reports whether value falls inside the zone, boundaries included.
func (z Zone) Contains(value float64) bool {
	return value >= z.Target-z.Threshold && value <= z.Target+z.Threshold
}

// Overlaps reports whether the two zone intervals intersect.
func (z Zone) Overlaps(other Zone) bool {
	return z.Target-z.Threshold <= other.Target+other.Threshold &&
		other.Target-other.Threshold <= z.Target+z.Threshold
}

// Validate checks the zone parameters once at configuration time.
func (z Zone) Validate() error {
	if z.Threshold < 0 {
		return fmt.Errorf("snap: %w: %v", ErrThresholdNegative, z.Threshold)
	}

	if z.Kind != Snap && z.Kind != Dead {
		return fmt.Errorf("snap: unknown zone kind %d", int(z.Kind))
	}

	return nil
}

// Validate checks every zone in the list.
func Validate(zones []Zone) error {
	for i, z := range zones {
		if err := z.Validate(); err != nil {
			return fmt.Errorf("zone %d: %w", i, err)
		}
	}

	return nil
}

// ValidateDisjoint additionally rejects overlapping zones. First-match-wins
// layering is legal by default; this pass is for callers that want the
// stronger guarantee.
func ValidateDisjoint(zones []Zone) error {
	if err := Validate(zones); err != nil {
		return err
	}

	for i := 0; i < len(zones); i++ {
		for j := i + 1; j < len(zones); j++ {
			if zones[i].Overlaps(zones[j]) {
				return fmt.Errorf("snap: %w: zone %d and zone %d", ErrZonesOverlap, i, j)
			}
		}
	}

	return nil
}

// Resolve scans zones in order and applies the first one containing value.
// Dead zones return lastOutput, the previous output of this stage; Snap
// zones return their target. Without a match the value passes unchanged.
func Resolve(zones []Zone, value, lastOutput float64) float64 {
	for _, z := range zones {
		if !z.Contains(value) {
			continue
		}

		if z.Kind == Dead {
			return lastOutput
		}

		return z.Target
	}

	return value
}
