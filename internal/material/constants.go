package material

import "math"

// Physical constants (SI)
const (
	// Permeability of free space μ0 (H/m)
	Mu0 = 4 * math.Pi * 1e-7

	// Permittivity of free space ε0 (F/m)
	Epsilon0 = 8.854e-12

	// Reference temperature for the built-in material table (°C)
	StandardReferenceTemp = 20.0
)

// Built-in conductor materials, referenced to 20 °C
var (
	Copper = Properties{
		Type:                  "Copper",
		Resistivity:           1.68e-8,
		TempReference:         StandardReferenceTemp,
		TempCoefOfResistivity: 0.00393,
		PermeabilityRelative:  0.999994,
		Conductivity:          58.0,
	}

	Aluminum = Properties{
		Type:                  "Aluminum",
		Resistivity:           2.82e-8,
		TempReference:         StandardReferenceTemp,
		TempCoefOfResistivity: 0.0039,
		PermeabilityRelative:  1.000022,
		Conductivity:          35.0,
	}

	// Galvanized steel core wire
	Steel = Properties{
		Type:                  "Steel",
		Resistivity:           1.92e-7,
		TempReference:         StandardReferenceTemp,
		TempCoefOfResistivity: 0.0045,
		PermeabilityRelative:  100,
		Conductivity:          5.2,
	}
)

// Defaults returns the built-in material table.
func Defaults() []Properties {
	return []Properties{Copper, Aluminum, Steel}
}
