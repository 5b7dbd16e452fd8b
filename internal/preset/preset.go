// Package preset holds the immutable catalog of initial charge
// arrangements. A preset is never mutated after construction; simulations
// deep-copy it on every load so repeated resets round-trip exactly.
package preset

import (
	"fmt"

	"github.com/san-kum/coulomb/internal/charge"
)

// Preset is a named initial configuration: a non-empty charge sequence and
// an equal-length color sequence, matched positionally by index.
type Preset struct {
	Name    string
	Charges []charge.Charge
	Colors  []charge.Color
}

// Validate checks the construction-time contract: at least one charge,
// one color per charge, every mass positive. A failure here is a data
// error and should stop the program before any tick runs.
func (p Preset) Validate() error {
	if len(p.Charges) == 0 {
		return fmt.Errorf("preset %q: %w", p.Name, charge.ErrEmptyPreset)
	}
	if len(p.Colors) != len(p.Charges) {
		return fmt.Errorf("preset %q: %d colors for %d charges: %w",
			p.Name, len(p.Colors), len(p.Charges), charge.ErrColorMismatch)
	}
	for i, c := range p.Charges {
		if c.M <= 0 {
			return fmt.Errorf("preset %q: charge %d has mass %g: %w",
				p.Name, i, c.M, charge.ErrNonPositiveMass)
		}
	}
	return nil
}

// ByName returns the catalog preset with the given name, or nil.
func ByName(name string) *Preset {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i]
		}
	}
	return nil
}

// IndexOf returns the catalog index of the named preset, or -1.
func IndexOf(name string) int {
	for i := range catalog {
		if catalog[i].Name == name {
			return i
		}
	}
	return -1
}

// Names lists the catalog preset names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i := range catalog {
		names[i] = catalog[i].Name
	}
	return names
}
