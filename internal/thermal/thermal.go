// Package thermal estimates the steady-state temperature of an energised
// conductor from a per-metre heat balance.
package thermal

import (
	"math"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
)

// DefaultAbsorptivity is the solar absorptivity of weathered conductor
// surfaces.
const DefaultAbsorptivity = 0.5

// Input describes the conductor and its surroundings.
type Input struct {
	Resistance     float64 // Ω/m
	Voltage        float64 // V, peak for AC
	Convection     float64 // W/m²K
	Diameter       float64 // m
	Ambient        float64 // °C
	SolarIntensity float64 // W/m²
	Absorptivity   float64 // 0..1
	AC             bool
}

// Result is the heat balance per metre of conductor.
type Result struct {
	JouleHeating float64 // W/m
	SolarHeating float64 // W/m
	CoolingPerK  float64 // W/m/K
	Rise         float64 // K
	Temperature  float64 // °C
}

// Validate checks the input for physically meaningful values.
func (in Input) Validate() error {
	if !(in.Resistance > 0) || math.IsInf(in.Resistance, 0) {
		return calcerr.Configuration("resistance must be positive, got %g Ω/m", in.Resistance)
	}
	if !(in.Diameter > 0) || math.IsInf(in.Diameter, 0) {
		return calcerr.Configuration("diameter must be positive, got %g m", in.Diameter)
	}
	if math.IsNaN(in.Voltage) || math.IsInf(in.Voltage, 0) {
		return calcerr.Configuration("voltage must be finite, got %g V", in.Voltage)
	}
	if math.IsNaN(in.Ambient) || math.IsInf(in.Ambient, 0) {
		return calcerr.Configuration("ambient temperature must be finite, got %g °C", in.Ambient)
	}
	if math.IsNaN(in.Convection) || in.Convection < 0 {
		return calcerr.Configuration("convection coefficient must not be negative, got %g W/m²K", in.Convection)
	}
	if math.IsNaN(in.SolarIntensity) || in.SolarIntensity < 0 {
		return calcerr.Configuration("solar intensity must not be negative, got %g W/m²", in.SolarIntensity)
	}
	if math.IsNaN(in.Absorptivity) || in.Absorptivity < 0 || in.Absorptivity > 1 {
		return calcerr.Configuration("absorptivity must be between 0 and 1, got %g", in.Absorptivity)
	}
	return nil
}

// SteadyState balances Joule and solar heating against convective cooling.
// The sun heats half the surface. With no convection the rise is reported as
// zero.
func SteadyState(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	surface := math.Pi * in.Diameter

	v := in.Voltage
	if in.AC {
		v /= math.Sqrt2
	}

	res := Result{
		JouleHeating: v * v / in.Resistance,
		SolarHeating: in.SolarIntensity * in.Absorptivity * surface / 2,
		CoolingPerK:  in.Convection * surface,
	}
	if res.CoolingPerK > 0 {
		res.Rise = (res.JouleHeating + res.SolarHeating) / res.CoolingPerK
	}
	res.Temperature = in.Ambient + res.Rise
	return res, nil
}
