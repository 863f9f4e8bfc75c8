// Package spacing computes the geometric mean distance between the
// conductors of a circuit from their pairwise separations.
package spacing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
)

// GMD returns the geometric mean of the unique pairwise separations (mm).
// Every separation must be positive and finite.
func GMD(distances []float64) (float64, error) {
	if len(distances) == 0 {
		return 0, calcerr.Configuration("at least one conductor separation is required")
	}

	var sum float64
	for i, d := range distances {
		if !(d > 0) || math.IsInf(d, 0) {
			return 0, calcerr.Configuration("separation %d must be positive, got %g mm", i+1, d)
		}
		sum += math.Log(d)
	}
	return math.Exp(sum / float64(len(distances))), nil
}

// Pairs returns the upper triangle of a square separation matrix in row
// order: D12, D13, ..., D23, ...
func Pairs(m mat.Matrix) ([]float64, error) {
	r, c := m.Dims()
	if r != c {
		return nil, calcerr.Configuration("separation matrix must be square, got %dx%d", r, c)
	}
	if r < 2 {
		return nil, calcerr.Configuration("at least two conductors are required, got %d", r)
	}

	pairs := make([]float64, 0, r*(r-1)/2)
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			pairs = append(pairs, m.At(i, j))
		}
	}
	return pairs, nil
}

// FromMatrix returns the GMD of the upper triangle of a separation matrix.
// The diagonal and lower triangle are ignored.
func FromMatrix(m mat.Matrix) (float64, error) {
	pairs, err := Pairs(m)
	if err != nil {
		return 0, err
	}
	return GMD(pairs)
}

// Labels names the unique pairs of n conductors in the order Pairs returns
// them. Phases are lettered A, B, C...; the neutral, when present, is the
// last conductor and is labelled N.
func Labels(n int, neutral bool) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	if neutral && n > 0 {
		names[n-1] = "N"
	}

	var labels []string
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			labels = append(labels, "D"+names[i]+names[j])
		}
	}
	return labels
}
