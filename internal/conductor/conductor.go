// Package conductor models solid and stranded line conductors and computes
// their per-unit-length resistance, inductance and capacitance.
package conductor

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
	"github.com/alexiusacademia/gorlc/internal/geometry"
	"github.com/alexiusacademia/gorlc/internal/material"
	"github.com/alexiusacademia/gorlc/internal/packing"
)

// Kind tags the conductor variant.
type Kind int

const (
	Solid Kind = iota
	Stranded
)

func (k Kind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Stranded:
		return "stranded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Conductor is either a single solid wire or a stranded bundle. It holds no
// derived state: every property is computed from these fields on demand.
type Conductor struct {
	Name string
	Kind Kind

	// Solid: wire radius (m) and material
	Radius   float64
	Material material.Properties

	// Stranded: packed strand layout
	Strands []packing.StrandPosition

	// Catalogue outer radius (m), informational. Zero when unknown.
	OuterRadius float64
}

// Construction describes a stranded conductor before packing.
type Construction struct {
	StrandCount  int
	StrandRadius float64 // m
	Material     material.Properties

	CoreCount    int
	CoreRadius   float64 // m
	CoreMaterial *material.Properties
}

// NewSolid creates a solid round conductor of the given radius (m).
func NewSolid(name string, radius float64, props material.Properties) (Conductor, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Conductor{}, calcerr.Configuration("%s: conductor radius must be positive, got %g m", name, radius)
	}
	if err := props.Validate(); err != nil {
		return Conductor{}, fmt.Errorf("%s: %w", name, err)
	}

	return Conductor{
		Name:        name,
		Kind:        Solid,
		Radius:      radius,
		Material:    props,
		OuterRadius: radius,
	}, nil
}

// NewStranded packs the construction into a stranded conductor.
func NewStranded(name string, c Construction) (Conductor, error) {
	if c.StrandCount <= 0 && c.CoreCount <= 0 {
		return Conductor{}, calcerr.Configuration("%s: a stranded conductor needs at least one strand", name)
	}

	strands, err := packing.PackWithCore(c.StrandCount, c.StrandRadius, c.Material, packing.Core{
		Count:    c.CoreCount,
		Radius:   c.CoreRadius,
		Material: c.CoreMaterial,
	})
	if err != nil {
		return Conductor{}, fmt.Errorf("%s: %w", name, err)
	}

	return Conductor{
		Name:        name,
		Kind:        Stranded,
		Strands:     strands,
		OuterRadius: geometry.CircumscribedRadius(strands),
	}, nil
}

// Layout returns the conductor as a strand layout. A solid conductor is a
// single strand at the centre.
func Layout(c Conductor) []packing.StrandPosition {
	if c.Kind == Solid {
		return []packing.StrandPosition{{R: 0, Theta: 0, Radius: c.Radius, Properties: c.Material}}
	}
	return c.Strands
}

// StrandCount returns the number of physical strands.
func StrandCount(c Conductor) int {
	return len(Layout(c))
}

// GMR returns the geometric mean radius (m).
func GMR(c Conductor) float64 {
	if c.Kind == Solid {
		return geometry.SelfGMR(c.Radius)
	}
	return geometry.GMR(c.Strands)
}

// CircumscribedRadius returns the radius of the smallest circle about the
// centre that encloses every strand (m).
func CircumscribedRadius(c Conductor) float64 {
	if c.Kind == Solid {
		return c.Radius
	}
	return geometry.CircumscribedRadius(c.Strands)
}
