// Package packing lays out the strands of a conductor into concentric
// close-packed rings.
package packing

import (
	"math"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
	"github.com/alexiusacademia/gorlc/internal/material"
)

// StrandPosition is one physical strand of a bundle, in polar coordinates
// about the bundle centre.
type StrandPosition struct {
	R          float64             `json:"r"`      // distance from bundle centre (m)
	Theta      float64             `json:"theta"`  // angle (rad)
	Radius     float64             `json:"radius"` // strand radius (m)
	Properties material.Properties `json:"properties"`
}

// Core describes an inner group of strands packed before the outer layers,
// such as the steel core of an ACSR conductor.
type Core struct {
	Count  int
	Radius float64 // m

	// Material of the core strands. Nil means the outer material.
	Material *material.Properties
}

// Pack lays out n strands of the given radius (m) without a core.
// A non-positive n yields an empty layout.
func Pack(n int, radius float64, props material.Properties) ([]StrandPosition, error) {
	return PackWithCore(n, radius, props, Core{})
}

// PackWithCore lays out the core strands first, then n outer strands on rings
// that start clear of the core's bounding circle.
func PackWithCore(n int, radius float64, props material.Properties, core Core) ([]StrandPosition, error) {
	if core.Count <= 0 {
		if n <= 0 {
			return []StrandPosition{}, nil
		}
		if err := validateGroup(radius, props); err != nil {
			return nil, err
		}
		return packBundle(n, radius, props)
	}

	if n < 0 {
		return nil, calcerr.Configuration("strand count must not be negative with a core, got %d", n)
	}

	coreProps := props
	if core.Material != nil {
		coreProps = *core.Material
	}
	if err := validateGroup(core.Radius, coreProps); err != nil {
		return nil, err
	}

	// A core alone is just a bundle of its own.
	arrangement, err := packBundle(core.Count, core.Radius, coreProps)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return arrangement, nil
	}

	if err := validateGroup(radius, props); err != nil {
		return nil, err
	}

	start := core.Radius + radius + maxCentre(arrangement)
	outer, err := fillRings(start, n, radius, props)
	if err != nil {
		return nil, err
	}

	return append(arrangement, outer...), nil
}

// packBundle lays out n equal strands, using the canonical layer table when n
// is a close-packed total and greedy ring filling otherwise.
func packBundle(n int, radius float64, props material.Properties) ([]StrandPosition, error) {
	if _, layers := Layers(n); layers != nil {
		return packLayers(layers, radius, props), nil
	}
	if n <= 4 {
		return closedForm(n, radius, props), nil
	}
	return fillRings(0, n, radius, props)
}

// packLayers places the first layer with its closed form and each further
// layer evenly on the next ring out.
func packLayers(layers []int, radius float64, props material.Properties) []StrandPosition {
	arrangement := closedForm(layers[0], radius, props)
	ringRadius := maxCentre(arrangement)

	for _, count := range layers[1:] {
		ringRadius += 2 * radius
		arrangement = append(arrangement, ring(ringRadius, count, radius, props)...)
	}

	return arrangement
}

// closedForm returns the fixed arrangements for one to four strands.
func closedForm(n int, radius float64, props material.Properties) []StrandPosition {
	switch n {
	case 1:
		return ring(0, 1, radius, props)
	case 2:
		return ring(radius, 2, radius, props)
	case 3:
		return ring(radius/math.Sqrt(3), 3, radius, props)
	case 4:
		// Kept as radius·√8 for compatibility with published layouts.
		return ring(radius*math.Sqrt(8), 4, radius, props)
	default:
		return nil
	}
}

// fillRings greedily fills rings starting at circumRadius until n strands are
// placed. A zero circumRadius starts with a centre strand.
func fillRings(circumRadius float64, n int, radius float64, props material.Properties) ([]StrandPosition, error) {
	var arrangement []StrandPosition
	strandsLeft := n

	if circumRadius == 0 && strandsLeft > 0 {
		arrangement = append(arrangement, ring(0, 1, radius, props)...)
		strandsLeft--
		circumRadius = 2 * radius
	}

	for strandsLeft > 0 {
		strandsThatFit := int(math.Floor(math.Pi * circumRadius * 2 / (2 * radius)))
		if strandsThatFit <= 0 {
			return nil, calcerr.Packing("ring at r=%g m cannot hold a strand of radius %g m (%d strands left)",
				circumRadius, radius, strandsLeft)
		}

		count := min(strandsThatFit, strandsLeft)
		arrangement = append(arrangement, ring(circumRadius, count, radius, props)...)
		strandsLeft -= count
		circumRadius += 2 * radius
	}

	return arrangement, nil
}

// ring spaces count strands evenly by angle at distance r, starting at θ=0.
func ring(r float64, count int, radius float64, props material.Properties) []StrandPosition {
	strands := make([]StrandPosition, count)
	angleIncrement := 2 * math.Pi / float64(count)
	for i := range strands {
		strands[i] = StrandPosition{
			R:          r,
			Theta:      float64(i) * angleIncrement,
			Radius:     radius,
			Properties: props,
		}
	}
	return strands
}

func maxCentre(strands []StrandPosition) float64 {
	var m float64
	for _, s := range strands {
		m = math.Max(m, s.R)
	}
	return m
}

func validateGroup(radius float64, props material.Properties) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return calcerr.Configuration("strand radius must be positive, got %g m", radius)
	}
	return props.Validate()
}
