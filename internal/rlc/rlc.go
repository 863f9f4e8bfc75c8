// Package rlc combines conductor models into line parameters for a circuit
// of phase conductors and an optional neutral.
package rlc

import (
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
	"github.com/alexiusacademia/gorlc/internal/conductor"
	"github.com/alexiusacademia/gorlc/internal/logging"
)

// Mode is the request shape selected for a calculation.
type Mode int

const (
	// ModeNormal computes R, L and C at the given spacing.
	ModeNormal Mode = iota
	// ModeDC is selected by a zero frequency: L and C are zero.
	ModeDC
	// ModeSelfCapacitance is selected by a zero GMD with a single conductor
	// and no neutral.
	ModeSelfCapacitance
)

func (m Mode) String() string {
	switch m {
	case ModeDC:
		return "dc"
	case ModeSelfCapacitance:
		return "self-capacitance"
	default:
		return "normal"
	}
}

// Request holds the operating point and the conductors of one circuit.
type Request struct {
	Frequency   float64 // Hz
	Temperature float64 // °C

	// System geometric mean distance between conductors (mm).
	GMD float64

	Conductors []conductor.Conductor
	Neutral    *conductor.Conductor

	// Apply skin-effect area reduction to AC resistance.
	SkinEffect bool
}

// Values is the R, L, C of one conductor at one operating point.
type Values struct {
	R float64 `json:"R"` // Ω/m
	L float64 `json:"L"` // H/m
	C float64 `json:"C"` // F/m
}

// Result holds per-conductor values and the system reactances.
type Result struct {
	Mode         Mode
	PerConductor []Values

	// ω·max(L) (Ω/m) and 1/(ω·max(C)) (Ω·m)
	TotalXl float64
	TotalXc float64

	// Neutral resistance (Ω/m); zero without a neutral.
	NeutralResistance float64
}

// Calculator evaluates requests and logs the chosen mode and per-conductor
// values at debug level.
type Calculator struct {
	Logger *slog.Logger
}

// NewCalculator creates a calculator. A nil logger discards output.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Calculator{Logger: logger}
}

// Calculate evaluates a request with a silent calculator.
func Calculate(req Request) (*Result, error) {
	return NewCalculator(nil).Calculate(req)
}

// SelectMode picks the request shape: DC first, then self-capacitance, then
// normal.
func SelectMode(req Request) Mode {
	if req.Frequency == 0 {
		return ModeDC
	}
	if req.GMD == 0 && len(req.Conductors) == 1 && req.Neutral == nil {
		return ModeSelfCapacitance
	}
	return ModeNormal
}

// Calculate evaluates the request.
func (c *Calculator) Calculate(req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	mode := SelectMode(req)
	c.Logger.Debug("rlc request",
		"mode", mode.String(),
		"conductors", len(req.Conductors),
		"neutral", req.Neutral != nil,
		"frequency_hz", req.Frequency,
		"temperature_c", req.Temperature,
		"gmd_mm", req.GMD,
	)

	var (
		result *Result
		err    error
	)
	switch mode {
	case ModeDC:
		result, err = c.dc(req)
	case ModeSelfCapacitance:
		result, err = c.selfCapacitance(req)
	default:
		result, err = c.normal(req)
	}
	if err != nil {
		return nil, err
	}

	result.Mode = mode
	return result, nil
}

func (c *Calculator) dc(req Request) (*Result, error) {
	values := make([]Values, len(req.Conductors))
	err := forEach(req.Conductors, func(i int, cond conductor.Conductor) error {
		r, err := conductor.Resistance(cond, req.Temperature, 0)
		if err != nil {
			return err
		}
		values[i] = Values{R: r}
		return nil
	})
	if err != nil {
		return nil, err
	}

	neutral, err := neutralResistance(req, 0)
	if err != nil {
		return nil, err
	}

	return &Result{PerConductor: values, NeutralResistance: neutral}, nil
}

func (c *Calculator) selfCapacitance(req Request) (*Result, error) {
	cond := req.Conductors[0]

	r, err := conductor.Resistance(cond, req.Temperature, req.resistanceFrequency())
	if err != nil {
		return nil, err
	}
	capacitance, err := conductor.SelfCapacitance(cond)
	if err != nil {
		return nil, err
	}

	omega := 2 * math.Pi * req.Frequency
	c.Logger.Debug("self capacitance", "conductor", cond.Name, "R", r, "C", capacitance)

	return &Result{
		PerConductor: []Values{{R: r, L: 0, C: capacitance}},
		TotalXc:      1 / (omega * capacitance),
	}, nil
}

func (c *Calculator) normal(req Request) (*Result, error) {
	gmd := req.GMD / 1000
	values := make([]Values, len(req.Conductors))

	err := forEach(req.Conductors, func(i int, cond conductor.Conductor) error {
		r, err := conductor.Resistance(cond, req.Temperature, req.resistanceFrequency())
		if err != nil {
			return err
		}
		l, err := conductor.Inductance(cond, gmd)
		if err != nil {
			return err
		}
		capacitance, err := conductor.Capacitance(cond, gmd)
		if err != nil {
			return err
		}
		values[i] = Values{R: r, L: l, C: capacitance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ls := make([]float64, len(values))
	cs := make([]float64, len(values))
	for i, v := range values {
		ls[i], cs[i] = v.L, v.C
		c.Logger.Debug("conductor values", "index", i, "conductor", req.Conductors[i].Name, "R", v.R, "L", v.L, "C", v.C)
	}

	omega := 2 * math.Pi * req.Frequency
	neutral, err := neutralResistance(req, req.resistanceFrequency())
	if err != nil {
		return nil, err
	}

	return &Result{
		PerConductor:      values,
		TotalXl:           omega * floats.Max(ls),
		TotalXc:           1 / (omega * floats.Max(cs)),
		NeutralResistance: neutral,
	}, nil
}

// resistanceFrequency is the frequency handed to the resistance model: zero
// unless skin effect is requested.
func (req Request) resistanceFrequency() float64 {
	if req.SkinEffect {
		return req.Frequency
	}
	return 0
}

func neutralResistance(req Request, frequency float64) (float64, error) {
	if req.Neutral == nil {
		return 0, nil
	}
	r, err := conductor.Resistance(*req.Neutral, req.Temperature, frequency)
	if err != nil {
		return 0, fmt.Errorf("neutral: %w", err)
	}
	return r, nil
}

// forEach runs fn for every conductor concurrently. Each call writes only its
// own index, so results keep input order.
func forEach(conductors []conductor.Conductor, fn func(int, conductor.Conductor) error) error {
	var g errgroup.Group
	for i, cond := range conductors {
		i, cond := i, cond
		g.Go(func() error {
			return fn(i, cond)
		})
	}
	return g.Wait()
}

func validate(req Request) error {
	if math.IsNaN(req.Frequency) || math.IsInf(req.Frequency, 0) || req.Frequency < 0 {
		return calcerr.Configuration("frequency must be a non-negative number, got %g Hz", req.Frequency)
	}
	if math.IsNaN(req.Temperature) || math.IsInf(req.Temperature, 0) {
		return calcerr.Configuration("temperature must be finite, got %g °C", req.Temperature)
	}
	if math.IsNaN(req.GMD) || req.GMD < 0 {
		return calcerr.Configuration("GMD must be a non-negative number, got %g mm", req.GMD)
	}
	if len(req.Conductors) == 0 {
		return calcerr.Configuration("at least one phase conductor is required")
	}
	return nil
}
