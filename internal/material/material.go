// Package material holds conductor material properties and the
// temperature-dependent resistivity model.
package material

import (
	"math"
	"strings"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
)

// Properties describes a conductor material. Values are immutable catalog
// data looked up by Type.
type Properties struct {
	Type                  string  `json:"type" yaml:"type"`
	Resistivity           float64 `json:"resistivity" yaml:"resistivity"`                           // Ω·m
	TempReference         float64 `json:"temp_reference" yaml:"temp_reference"`                     // °C
	TempCoefOfResistivity float64 `json:"temp_coef_of_resistivity" yaml:"temp_coef_of_resistivity"` // 1/°C
	PermeabilityRelative  float64 `json:"permeability_relative" yaml:"permeability_relative"`
	Conductivity          float64 `json:"conductivity" yaml:"conductivity"` // S/m (catalog scale)
}

// Validate checks that the properties can drive the resistance and
// inductance formulas.
func (p Properties) Validate() error {
	if strings.TrimSpace(p.Type) == "" {
		return calcerr.Configuration("material type is missing")
	}
	if !(p.Resistivity > 0) || math.IsInf(p.Resistivity, 0) {
		return calcerr.Configuration("material %q: resistivity must be positive, got %g", p.Type, p.Resistivity)
	}
	if !(p.PermeabilityRelative > 0) || math.IsInf(p.PermeabilityRelative, 0) {
		return calcerr.Configuration("material %q: relative permeability must be positive, got %g", p.Type, p.PermeabilityRelative)
	}
	if math.IsNaN(p.TempReference) || math.IsNaN(p.TempCoefOfResistivity) {
		return calcerr.Configuration("material %q: temperature data is not a number", p.Type)
	}
	return nil
}

// TemperatureFactor returns 1 + α(T - Tref).
func (p Properties) TemperatureFactor(temperature float64) float64 {
	return 1 + p.TempCoefOfResistivity*(temperature-p.TempReference)
}

// ResistivityAt returns the resistivity corrected to the given temperature (Ω·m).
func (p Properties) ResistivityAt(temperature float64) float64 {
	return p.Resistivity * p.TemperatureFactor(temperature)
}

// Lookup finds a material by type name, ignoring case.
func Lookup(table []Properties, name string) (Properties, error) {
	for _, p := range table {
		if strings.EqualFold(p.Type, name) {
			return p, nil
		}
	}
	return Properties{}, calcerr.Configuration("unknown material %q", name)
}
