// Package diagram draws resistance-temperature charts for the terminal and
// for image files.
package diagram

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gorlc/internal/rlc"
)

// Series is one conductor's resistance sweep.
type Series struct {
	Name   string
	Points []rlc.SweepPoint
}

// Chart size for the terminal, in characters.
const (
	asciiHeight = 15
	asciiWidth  = 60
)

// Resistances are plotted in Ω/km.
const perKilometre = 1000.0

var errNoData = errors.New("diagram: no sweep data")

// checkSeries requires at least one series and the same temperature axis in
// all of them.
func checkSeries(series []Series) error {
	if len(series) == 0 || len(series[0].Points) == 0 {
		return errNoData
	}
	axis := series[0].Points
	for _, s := range series[1:] {
		if len(s.Points) != len(axis) {
			return fmt.Errorf("diagram: series %q has %d points, want %d", s.Name, len(s.Points), len(axis))
		}
		for i, p := range s.Points {
			if p.Temperature != axis[i].Temperature {
				return fmt.Errorf("diagram: series %q point %d is at %g °C, want %g °C",
					s.Name, i, p.Temperature, axis[i].Temperature)
			}
		}
	}
	return nil
}

// DrawASCIISweep renders R(T) curves as an ASCII chart with a legend.
func DrawASCIISweep(series []Series) (string, error) {
	if err := checkSeries(series); err != nil {
		return "", err
	}

	data := make([][]float64, len(series))
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
		data[i] = make([]float64, len(s.Points))
		for j, p := range s.Points {
			data[i][j] = p.R * perKilometre
		}
	}

	first := series[0].Points
	from, to := first[0].Temperature, first[len(first)-1].Temperature

	opts := []asciigraph.Option{
		asciigraph.Height(asciiHeight),
		asciigraph.Width(asciiWidth),
		asciigraph.Precision(4),
		asciigraph.Caption(fmt.Sprintf("R (Ω/km) from %g °C to %g °C", from, to)),
	}
	if len(series) > 1 {
		opts = append(opts,
			asciigraph.SeriesLegends(names...),
			asciigraph.SeriesColors(palette(len(series))...),
		)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  RESISTANCE vs TEMPERATURE\n")
	sb.WriteString("  ─────────────────────────\n\n")
	sb.WriteString(asciigraph.PlotMany(data, opts...))
	sb.WriteString("\n")
	return sb.String(), nil
}

func palette(n int) []asciigraph.AnsiColor {
	colors := []asciigraph.AnsiColor{
		asciigraph.Blue,
		asciigraph.Red,
		asciigraph.Green,
		asciigraph.Goldenrod,
		asciigraph.Magenta,
		asciigraph.Cyan,
	}
	out := make([]asciigraph.AnsiColor, n)
	for i := range out {
		out[i] = colors[i%len(colors)]
	}
	return out
}
