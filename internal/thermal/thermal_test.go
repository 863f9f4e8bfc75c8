package thermal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
)

func base() Input {
	return Input{
		Resistance:     100,
		Voltage:        10,
		Convection:     10,
		Diameter:       0.02,
		Ambient:        30,
		SolarIntensity: 1000,
		Absorptivity:   DefaultAbsorptivity,
	}
}

func TestSteadyStateDC(t *testing.T) {
	res, err := SteadyState(base())
	require.NoError(t, err)

	surface := math.Pi * 0.02
	assert.InDelta(t, 1.0, res.JouleHeating, 1e-12)
	assert.InDelta(t, 1000*0.5*surface/2, res.SolarHeating, 1e-12)
	assert.InDelta(t, 10*surface, res.CoolingPerK, 1e-12)
	assert.InDelta(t, (res.JouleHeating+res.SolarHeating)/res.CoolingPerK, res.Rise, 1e-12)
	assert.InDelta(t, 30+res.Rise, res.Temperature, 1e-12)
}

func TestSteadyStateAC(t *testing.T) {
	in := base()
	in.AC = true
	res, err := SteadyState(in)
	require.NoError(t, err)

	// RMS of a 10 V peak: 50 V² over 100 Ω/m
	assert.InDelta(t, 0.5, res.JouleHeating, 1e-12)
}

func TestSteadyStateNoConvection(t *testing.T) {
	in := base()
	in.Convection = 0
	res, err := SteadyState(in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Rise)
	assert.Equal(t, in.Ambient, res.Temperature)
}

func TestSteadyStateNoSun(t *testing.T) {
	in := base()
	in.SolarIntensity = 0
	res, err := SteadyState(in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.SolarHeating)
	assert.Greater(t, res.Temperature, in.Ambient)
}

func TestSteadyStateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
	}{
		{"zero resistance", func(in *Input) { in.Resistance = 0 }},
		{"negative diameter", func(in *Input) { in.Diameter = -0.01 }},
		{"nan voltage", func(in *Input) { in.Voltage = math.NaN() }},
		{"negative convection", func(in *Input) { in.Convection = -1 }},
		{"negative sun", func(in *Input) { in.SolarIntensity = -1 }},
		{"absorptivity above one", func(in *Input) { in.Absorptivity = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.modify(&in)
			_, err := SteadyState(in)
			require.Error(t, err)
			assert.True(t, calcerr.IsConfiguration(err))
		})
	}
}
