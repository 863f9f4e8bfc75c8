package diagram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// sweepPlot builds the R(T) line chart shared by the image exporters.
func sweepPlot(series []Series) (*plot.Plot, error) {
	if err := checkSeries(series); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Resistance vs Temperature"
	p.X.Label.Text = "Temperature (°C)"
	p.Y.Label.Text = "Resistance (Ω/km)"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	lines := make([]any, 0, 2*len(series))
	for _, s := range series {
		pts := make(plotter.XYs, len(s.Points))
		for i, pt := range s.Points {
			pts[i].X = pt.Temperature
			pts[i].Y = pt.R * perKilometre
		}
		lines = append(lines, s.Name, pts)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return nil, err
	}
	return p, nil
}

// ExportSweepChart writes the sweep chart to an image file. The format
// follows the extension (.png, .svg or .pdf); anything else gets .png
// appended.
func ExportSweepChart(series []Series, filename string) (string, error) {
	p, err := sweepPlot(series)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	width := 8 * vg.Inch
	height := 5 * vg.Inch
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
