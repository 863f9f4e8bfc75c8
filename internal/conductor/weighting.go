package conductor

import (
	"math"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
	"github.com/alexiusacademia/gorlc/internal/material"
	"github.com/alexiusacademia/gorlc/internal/packing"
)

// WeightedProperty is a material group of a bundle with its share of the
// conductive area.
type WeightedProperty struct {
	material.Properties
	WeightPercent float64 `json:"weight_percent"` // 0..100
	SurfaceArea   float64 `json:"surface_area"`   // m²
}

// WeightedProperties groups the conductor's strands by material type, in
// order of first appearance, and weights each group by conductive area. A
// positive frequency replaces each strand's cross-section with its skin-effect
// area. An empty or zero-area bundle yields an empty list.
func WeightedProperties(c Conductor, frequency float64) []WeightedProperty {
	var groups []WeightedProperty
	index := map[string]int{}
	var total float64

	for _, s := range Layout(c) {
		area := StrandArea(s, frequency)
		i, ok := index[s.Properties.Type]
		if !ok {
			i = len(groups)
			index[s.Properties.Type] = i
			groups = append(groups, WeightedProperty{Properties: s.Properties})
		}
		groups[i].SurfaceArea += area
		total += area
	}

	if total == 0 {
		return []WeightedProperty{}
	}

	for i := range groups {
		groups[i].WeightPercent = groups[i].SurfaceArea / total * 100
	}
	return groups
}

// EffectivePermeability returns the area-weighted relative permeability of
// the bundle over the full cross-section.
func EffectivePermeability(c Conductor) (float64, error) {
	groups := WeightedProperties(c, 0)
	if len(groups) == 0 {
		return 0, calcerr.Configuration("%s: no conductive area to weight permeability", c.Name)
	}

	var mu float64
	for _, g := range groups {
		mu += g.PermeabilityRelative * g.WeightPercent / 100
	}
	return mu, nil
}

// SkinDepth returns δ = sqrt(ρ / (π f μr μ0)) in metres. It is +Inf for a
// non-positive frequency.
func SkinDepth(props material.Properties, frequency float64) float64 {
	if frequency <= 0 {
		return math.Inf(1)
	}
	return math.Sqrt(props.Resistivity / (math.Pi * frequency * props.PermeabilityRelative * material.Mu0))
}

// StrandArea returns the conductive cross-section of a strand (m²). With a
// positive frequency and a skin depth smaller than the strand radius only the
// outer annulus of thickness δ conducts.
func StrandArea(s packing.StrandPosition, frequency float64) float64 {
	full := math.Pi * s.Radius * s.Radius
	delta := SkinDepth(s.Properties, frequency)
	if delta >= s.Radius {
		return full
	}
	inner := s.Radius - delta
	return full - math.Pi*inner*inner
}
