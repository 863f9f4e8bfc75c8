// Package geometry derives the geometric mean radius and circumscribed
// radius of a strand layout.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gorlc/internal/packing"
)

// selfFactor is e^(-1/4), the internal-flux correction of a solid round wire.
var selfFactor = math.Exp(-0.25)

// SelfGMR returns the GMR of a single solid round conductor of the given radius.
func SelfGMR(radius float64) float64 {
	return radius * selfFactor
}

// DistanceMatrix builds the N×N matrix of strand separations (m). The
// diagonal holds each strand's self GMR. It returns nil for an empty layout.
func DistanceMatrix(strands []packing.StrandPosition) *mat.Dense {
	n := len(strands)
	if n == 0 {
		return nil
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, s := range strands {
		xs[i] = s.R * math.Cos(s.Theta)
		ys[i] = s.R * math.Sin(s.Theta)
	}

	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, SelfGMR(strands[i].Radius))
		for j := i + 1; j < n; j++ {
			dist := math.Hypot(xs[j]-xs[i], ys[j]-ys[i])
			d.Set(i, j, dist)
			d.Set(j, i, dist)
		}
	}

	return d
}

// GMR returns the geometric mean radius of the layout: the geometric mean of
// every entry of the distance matrix, diagonal included. A single strand
// reduces to SelfGMR and an empty layout yields 0.
func GMR(strands []packing.StrandPosition) float64 {
	switch len(strands) {
	case 0:
		return 0
	case 1:
		return SelfGMR(strands[0].Radius)
	}

	d := DistanceMatrix(strands)
	n, _ := d.Dims()

	logs := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for _, v := range d.RawRowView(i) {
			logs = append(logs, math.Log(v))
		}
	}

	return math.Exp(floats.Sum(logs) / float64(len(logs)))
}

// CircumscribedRadius returns max(r + radius) over the layout (m).
func CircumscribedRadius(strands []packing.StrandPosition) float64 {
	var rc float64
	for _, s := range strands {
		rc = math.Max(rc, s.R+s.Radius)
	}
	return rc
}
