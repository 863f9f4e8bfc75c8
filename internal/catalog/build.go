package catalog

import (
	"fmt"

	"github.com/alexiusacademia/gorlc/internal/conductor"
	"github.com/alexiusacademia/gorlc/internal/material"
)

// mmToRadius converts a diameter in millimetres to a radius in metres.
func mmToRadius(dia float64) float64 {
	return dia / 1000 / 2
}

// Build constructs a conductor from a record, resolving material names in
// the given table. A single strand with no core becomes a solid conductor.
// Without a core material the core uses the outer material.
func Build(r Record, materials []material.Properties) (conductor.Conductor, error) {
	if err := r.Validate(); err != nil {
		return conductor.Conductor{}, err
	}

	props, err := material.Lookup(materials, r.Material)
	if err != nil {
		return conductor.Conductor{}, fmt.Errorf("%s: %w", r.Name, err)
	}

	var c conductor.Conductor
	if r.Solid() {
		c, err = conductor.NewSolid(r.Name, mmToRadius(r.StrandDia), props)
	} else {
		core := props
		if r.CoreMaterial != "" {
			core, err = material.Lookup(materials, r.CoreMaterial)
			if err != nil {
				return conductor.Conductor{}, fmt.Errorf("%s: core: %w", r.Name, err)
			}
		}
		c, err = conductor.NewStranded(r.Name, conductor.Construction{
			StrandCount:  r.StrandCount,
			StrandRadius: mmToRadius(r.StrandDia),
			Material:     props,
			CoreCount:    r.CoreStrandCount,
			CoreRadius:   mmToRadius(r.CoreStrandDia),
			CoreMaterial: &core,
		})
	}
	if err != nil {
		return conductor.Conductor{}, err
	}

	if r.OuterDia > 0 {
		c.OuterRadius = mmToRadius(r.OuterDia)
	}
	return c, nil
}

// Conductor finds a record by name and builds it against the catalog's
// materials.
func (c *Catalog) Conductor(name string) (conductor.Conductor, error) {
	r, err := c.Find(name)
	if err != nil {
		return conductor.Conductor{}, err
	}
	return Build(r, c.Materials)
}
