package conductor

import (
	"math"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
	"github.com/alexiusacademia/gorlc/internal/material"
)

// Inductance returns L = μr·μ0/(2π)·ln(GMD/GMR) in H/m for a system GMD in
// metres.
func Inductance(c Conductor, gmd float64) (float64, error) {
	gmr := GMR(c)
	if !(gmd > gmr) || math.IsInf(gmd, 0) {
		return 0, calcerr.Domain("%s: line spacing too close to conductor radius (GMD %g m, GMR %g m)", c.Name, gmd, gmr)
	}

	mu, err := EffectivePermeability(c)
	if err != nil {
		return 0, err
	}

	return mu * material.Mu0 / (2 * math.Pi) * math.Log(gmd/gmr), nil
}

// Capacitance returns C = 2π·ε0/ln(GMD/r) in F/m, with r the circumscribed
// radius and relative permittivity 1.
func Capacitance(c Conductor, gmd float64) (float64, error) {
	rc := CircumscribedRadius(c)
	if !(gmd > rc) || math.IsInf(gmd, 0) {
		return 0, calcerr.Domain("%s: line spacing too close to conductor radius (GMD %g m, radius %g m)", c.Name, gmd, rc)
	}
	return 2 * math.Pi * material.Epsilon0 / math.Log(gmd/rc), nil
}

// SelfCapacitance returns C = 2π·ε0/ln(GMR/r), the value used for a single
// isolated conductor with no spacing. GMR is below r for any real bundle, so
// the result is negative.
func SelfCapacitance(c Conductor) (float64, error) {
	gmr := GMR(c)
	rc := CircumscribedRadius(c)
	if !(gmr > 0) || !(rc > 0) || gmr == rc {
		return 0, calcerr.Domain("%s: self capacitance undefined (GMR %g m, radius %g m)", c.Name, gmr, rc)
	}
	return 2 * math.Pi * material.Epsilon0 / math.Log(gmr/rc), nil
}
