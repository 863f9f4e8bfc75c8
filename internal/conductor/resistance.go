package conductor

import (
	"math"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
)

// ResistanceFn returns R(T) in Ω/m for the conductor at the given frequency
// (Hz). Frequency 0 means DC: no skin-effect correction. Material groups act
// as parallel paths.
func ResistanceFn(c Conductor, frequency float64) (func(temperature float64) float64, error) {
	groups := WeightedProperties(c, frequency)
	if len(groups) == 0 {
		return nil, calcerr.Configuration("%s: conductor has no conductive area", c.Name)
	}
	for _, g := range groups {
		if !(g.SurfaceArea > 0) || math.IsInf(g.SurfaceArea, 0) {
			return nil, calcerr.Configuration("%s: %s group has zero conductive area", c.Name, g.Type)
		}
	}

	if len(groups) == 1 {
		g := groups[0]
		return func(temperature float64) float64 {
			return g.Resistivity / g.SurfaceArea * g.TemperatureFactor(temperature)
		}, nil
	}

	return func(temperature float64) float64 {
		var conductance float64
		for _, g := range groups {
			conductance += 1 / (g.Resistivity / g.SurfaceArea * g.TemperatureFactor(temperature))
		}
		return 1 / conductance
	}, nil
}

// Resistance returns the resistance per unit length (Ω/m) at the given
// temperature (°C) and frequency (Hz).
func Resistance(c Conductor, temperature, frequency float64) (float64, error) {
	fn, err := ResistanceFn(c, frequency)
	if err != nil {
		return 0, err
	}
	return fn(temperature), nil
}

// GroupResistances returns the resistance of each material group on its own,
// in the order of WeightedProperties.
func GroupResistances(c Conductor, temperature, frequency float64) ([]float64, error) {
	groups := WeightedProperties(c, frequency)
	if len(groups) == 0 {
		return nil, calcerr.Configuration("%s: conductor has no conductive area", c.Name)
	}

	out := make([]float64, len(groups))
	for i, g := range groups {
		if !(g.SurfaceArea > 0) {
			return nil, calcerr.Configuration("%s: %s group has zero conductive area", c.Name, g.Type)
		}
		out[i] = g.Resistivity / g.SurfaceArea * g.TemperatureFactor(temperature)
	}
	return out, nil
}
