package rlc

import (
	"math"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
	"github.com/alexiusacademia/gorlc/internal/conductor"
)

// Per-kilometre display factor for per-metre quantities.
const metresPerKilometre = 1000.0

// PerKilometre rescales Ω/m, H/m and F/m values to per-kilometre units for
// display.
func PerKilometre(v Values) Values {
	return Values{R: v.R * metresPerKilometre, L: v.L * metresPerKilometre, C: v.C * metresPerKilometre}
}

// Upper bound on the number of points in one sweep.
const maxSweepPoints = 100000

// SweepPoint is the resistance of a conductor at one temperature.
type SweepPoint struct {
	Temperature float64 // °C
	R           float64 // Ω/m
}

// SweepTemperature evaluates R(T) from `from` to `to` inclusive in steps of
// `step` (°C) at the given frequency.
func SweepTemperature(c conductor.Conductor, from, to, step, frequency float64) ([]SweepPoint, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, calcerr.Configuration("sweep step must be positive, got %g", step)
	}
	if math.IsNaN(from) || math.IsInf(from, 0) || math.IsNaN(to) || math.IsInf(to, 0) {
		return nil, calcerr.Configuration("sweep bounds must be finite, got %g to %g", from, to)
	}
	if to < from {
		return nil, calcerr.Configuration("sweep range is empty: %g to %g", from, to)
	}
	count := math.Floor((to-from)/step+1e-9) + 1
	if count > maxSweepPoints {
		return nil, calcerr.Configuration("sweep of %g to %g in steps of %g exceeds %d points", from, to, step, maxSweepPoints)
	}

	fn, err := conductor.ResistanceFn(c, frequency)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, int(count))
	for i := range points {
		t := from + float64(i)*step
		points[i] = SweepPoint{Temperature: t, R: fn(t)}
	}
	return points, nil
}
