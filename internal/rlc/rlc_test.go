package rlc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
	"github.com/alexiusacademia/gorlc/internal/conductor"
	"github.com/alexiusacademia/gorlc/internal/material"
)

func solid(t *testing.T, name string, radius float64) conductor.Conductor {
	t.Helper()
	c, err := conductor.NewSolid(name, radius, material.Copper)
	require.NoError(t, err)
	return c
}

func acsr(t *testing.T) conductor.Conductor {
	t.Helper()
	steel := material.Steel
	c, err := conductor.NewStranded("Penguin 6/1", conductor.Construction{
		StrandCount:  6,
		StrandRadius: 0.00477 / 2,
		Material:     material.Aluminum,
		CoreCount:    1,
		CoreRadius:   0.00477 / 2,
		CoreMaterial: &steel,
	})
	require.NoError(t, err)
	return c
}

func TestSelectMode(t *testing.T) {
	one := []conductor.Conductor{{}}
	two := []conductor.Conductor{{}, {}}
	neutral := &conductor.Conductor{}

	tests := []struct {
		name string
		req  Request
		want Mode
	}{
		{"dc wins over zero gmd", Request{Frequency: 0, GMD: 0, Conductors: one}, ModeDC},
		{"dc with spacing", Request{Frequency: 0, GMD: 1000, Conductors: two}, ModeDC},
		{"self capacitance", Request{Frequency: 60, GMD: 0, Conductors: one}, ModeSelfCapacitance},
		{"neutral forces normal", Request{Frequency: 60, GMD: 0, Conductors: one, Neutral: neutral}, ModeNormal},
		{"two conductors force normal", Request{Frequency: 60, GMD: 0, Conductors: two}, ModeNormal},
		{"normal", Request{Frequency: 50, GMD: 1200, Conductors: one}, ModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectMode(tt.req))
		})
	}
}

func TestCalculateCopperScenario(t *testing.T) {
	res, err := Calculate(Request{
		Frequency:   60,
		Temperature: 20,
		GMD:         1000,
		Conductors:  []conductor.Conductor{solid(t, "cu", 0.01)},
	})
	require.NoError(t, err)
	require.Len(t, res.PerConductor, 1)

	v := res.PerConductor[0]
	assert.Equal(t, ModeNormal, res.Mode)
	assert.InEpsilon(t, 5.35e-5, v.R, 2e-3)
	assert.InEpsilon(t, 9.68e-7, v.L, 5e-3)
	assert.InEpsilon(t, 2*math.Pi*material.Epsilon0/math.Log(100), v.C, 1e-12)

	omega := 2 * math.Pi * 60
	assert.InEpsilon(t, omega*v.L, res.TotalXl, 1e-12)
	assert.InEpsilon(t, 1/(omega*v.C), res.TotalXc, 1e-12)
	assert.Equal(t, 0.0, res.NeutralResistance)
}

func TestCalculateDC(t *testing.T) {
	for _, gmd := range []float64{0, 5, 1000} {
		res, err := Calculate(Request{
			Frequency:   0,
			Temperature: 50,
			GMD:         gmd,
			Conductors:  []conductor.Conductor{solid(t, "a", 0.01), acsr(t)},
		})
		require.NoError(t, err)
		assert.Equal(t, ModeDC, res.Mode)
		for _, v := range res.PerConductor {
			assert.Greater(t, v.R, 0.0)
			assert.Equal(t, 0.0, v.L)
			assert.Equal(t, 0.0, v.C)
		}
		assert.Equal(t, 0.0, res.TotalXl)
		assert.Equal(t, 0.0, res.TotalXc)
	}
}

func TestCalculateDCIgnoresSkinEffect(t *testing.T) {
	c := solid(t, "thick", 0.02)
	res, err := Calculate(Request{Frequency: 0, Temperature: 20, Conductors: []conductor.Conductor{c}, SkinEffect: true})
	require.NoError(t, err)

	want, err := conductor.Resistance(c, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, want, res.PerConductor[0].R)
}

func TestCalculateSelfCapacitance(t *testing.T) {
	c := solid(t, "cu", 0.01)
	res, err := Calculate(Request{Frequency: 60, Temperature: 20, GMD: 0, Conductors: []conductor.Conductor{c}})
	require.NoError(t, err)

	assert.Equal(t, ModeSelfCapacitance, res.Mode)
	v := res.PerConductor[0]
	assert.Equal(t, 0.0, v.L)
	assert.InEpsilon(t, 2*math.Pi*material.Epsilon0/math.Log(conductor.GMR(c)/0.01), v.C, 1e-12)
	assert.Equal(t, 0.0, res.TotalXl)
	assert.InEpsilon(t, 1/(2*math.Pi*60*v.C), res.TotalXc, 1e-12)
}

func TestCalculateUsesMaximum(t *testing.T) {
	small := solid(t, "small", 0.004)
	large := solid(t, "large", 0.012)

	res, err := Calculate(Request{
		Frequency:   50,
		Temperature: 25,
		GMD:         1500,
		Conductors:  []conductor.Conductor{small, large, small},
	})
	require.NoError(t, err)
	require.Len(t, res.PerConductor, 3)

	// order follows the input
	assert.Equal(t, res.PerConductor[0], res.PerConductor[2])
	assert.Greater(t, res.PerConductor[0].L, res.PerConductor[1].L)
	assert.Less(t, res.PerConductor[0].C, res.PerConductor[1].C)

	omega := 2 * math.Pi * 50
	assert.InEpsilon(t, omega*res.PerConductor[0].L, res.TotalXl, 1e-12)
	assert.InEpsilon(t, 1/(omega*res.PerConductor[1].C), res.TotalXc, 1e-12)
}

func TestCalculateNeutral(t *testing.T) {
	phase := acsr(t)
	neutral := solid(t, "neutral", 0.004)

	res, err := Calculate(Request{
		Frequency:   60,
		Temperature: 75,
		GMD:         1200,
		Conductors:  []conductor.Conductor{phase, phase, phase},
		Neutral:     &neutral,
	})
	require.NoError(t, err)

	want, err := conductor.Resistance(neutral, 75, 0)
	require.NoError(t, err)
	assert.Equal(t, want, res.NeutralResistance)
	assert.Len(t, res.PerConductor, 3)
}

func TestCalculateSkinEffect(t *testing.T) {
	c := solid(t, "thick", 0.01)
	base := Request{Frequency: 60, Temperature: 20, GMD: 1000, Conductors: []conductor.Conductor{c}}

	plain, err := Calculate(base)
	require.NoError(t, err)

	base.SkinEffect = true
	skin, err := Calculate(base)
	require.NoError(t, err)

	assert.Greater(t, skin.PerConductor[0].R, plain.PerConductor[0].R)
	assert.Equal(t, plain.PerConductor[0].L, skin.PerConductor[0].L)
}

func TestCalculateErrors(t *testing.T) {
	c := solid(t, "cu", 0.01)

	t.Run("spacing inside conductor", func(t *testing.T) {
		_, err := Calculate(Request{Frequency: 60, Temperature: 20, GMD: 5, Conductors: []conductor.Conductor{c, c}})
		require.Error(t, err)
		assert.True(t, calcerr.IsDomain(err))
	})

	t.Run("no conductors", func(t *testing.T) {
		_, err := Calculate(Request{Frequency: 60, GMD: 1000})
		assert.True(t, calcerr.IsConfiguration(err))
	})

	t.Run("negative frequency", func(t *testing.T) {
		_, err := Calculate(Request{Frequency: -1, GMD: 1000, Conductors: []conductor.Conductor{c}})
		assert.True(t, calcerr.IsConfiguration(err))
	})

	t.Run("empty neutral", func(t *testing.T) {
		empty := conductor.Conductor{Name: "empty", Kind: conductor.Stranded}
		_, err := Calculate(Request{Frequency: 60, GMD: 1000, Conductors: []conductor.Conductor{c}, Neutral: &empty})
		assert.True(t, calcerr.IsConfiguration(err))
	})
}

func TestSweepTemperature(t *testing.T) {
	c := acsr(t)

	points, err := SweepTemperature(c, 0, 100, 25, 0)
	require.NoError(t, err)
	require.Len(t, points, 5)
	assert.Equal(t, 0.0, points[0].Temperature)
	assert.Equal(t, 100.0, points[4].Temperature)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].R, points[i-1].R)
	}

	tests := []struct {
		name           string
		from, to, step float64
	}{
		{"zero step", 0, 100, 0},
		{"negative step", 0, 100, -5},
		{"reversed range", 100, 0, 10},
		{"nan upper bound", 0, math.NaN(), 1},
		{"nan lower bound", math.NaN(), 100, 1},
		{"infinite upper bound", 0, math.Inf(1), 1},
		{"too many points", 0, 1e18, 1e-6},
		{"just over the limit", 0, maxSweepPoints, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := SweepTemperature(c, tt.from, tt.to, tt.step, 0)
			require.Error(t, err)
			assert.True(t, calcerr.IsConfiguration(err))
			assert.Nil(t, points)
		})
	}

	t.Run("at the limit", func(t *testing.T) {
		points, err := SweepTemperature(c, 0, maxSweepPoints-1, 1, 0)
		require.NoError(t, err)
		assert.Len(t, points, maxSweepPoints)
	})
}

func TestPerKilometre(t *testing.T) {
	v := PerKilometre(Values{R: 5e-5, L: 1e-6, C: 1e-11})
	assert.InDelta(t, 0.05, v.R, 1e-15)
	assert.InDelta(t, 1e-3, v.L, 1e-18)
	assert.InDelta(t, 1e-8, v.C, 1e-21)
}
