// Package report exports calculation results as XLSX workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorlc/internal/conductor"
	"github.com/alexiusacademia/gorlc/internal/rlc"
)

const (
	rlcSheet   = "RLC"
	sweepSheet = "Sweep"

	// Built-in number format 11 is scientific notation, 0.00E+00.
	scientificFormat = 11
)

// RLC is one aggregator run: the request it answered and its result.
type RLC struct {
	Request rlc.Request
	Result  *rlc.Result
}

// Workbook lays out the operating point, system reactances and a
// per-conductor table in per-kilometre units.
func (r RLC) Workbook() (*excelize.File, error) {
	if r.Result == nil {
		return nil, fmt.Errorf("report: no result")
	}
	if len(r.Result.PerConductor) != len(r.Request.Conductors) {
		return nil, fmt.Errorf("report: %d results for %d conductors",
			len(r.Result.PerConductor), len(r.Request.Conductors))
	}

	f := excelize.NewFile()
	if err := r.fill(f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (r RLC) fill(f *excelize.File) error {
	if err := f.SetSheetName("Sheet1", rlcSheet); err != nil {
		return err
	}
	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	summary := [][]any{
		{"Mode", r.Result.Mode.String()},
		{"Frequency (Hz)", r.Request.Frequency},
		{"Temperature (°C)", r.Request.Temperature},
		{"GMD (mm)", r.Request.GMD},
		{"Skin effect", r.Request.SkinEffect},
		{"Total XL (Ω/km)", r.Result.TotalXl * 1000},
		{"Total XC (MΩ·km)", r.Result.TotalXc / 1000 / 1e6},
	}
	if r.Request.Neutral != nil {
		summary = append(summary, []any{"Neutral R (Ω/km)", r.Result.NeutralResistance * 1000})
	}

	row := 1
	for _, s := range summary {
		if err := setRow(f, rlcSheet, row, s); err != nil {
			return err
		}
		if err := f.SetCellStyle(rlcSheet, cell(1, row), cell(1, row), styles.label); err != nil {
			return err
		}
		row++
	}

	row++
	header := []any{"#", "Conductor", "Kind", "Strands", "R (Ω/km)", "L (H/km)", "C (F/km)"}
	if err := setRow(f, rlcSheet, row, header); err != nil {
		return err
	}
	if err := f.SetCellStyle(rlcSheet, cell(1, row), cell(len(header), row), styles.header); err != nil {
		return err
	}
	headerRow := row
	row++

	for i, v := range r.Result.PerConductor {
		c := r.Request.Conductors[i]
		km := rlc.PerKilometre(v)
		values := []any{i + 1, c.Name, c.Kind.String(), conductor.StrandCount(c), km.R, km.L, km.C}
		if err := setRow(f, rlcSheet, row, values); err != nil {
			return err
		}
		row++
	}
	if row > headerRow+1 {
		if err := f.SetCellStyle(rlcSheet, cell(5, headerRow+1), cell(7, row-1), styles.scientific); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(rlcSheet, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(rlcSheet, "B", "G", 14); err != nil {
		return err
	}
	return nil
}

// Write writes the workbook to w.
func (r RLC) Write(w io.Writer) error {
	f, err := r.Workbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// Save writes the workbook to path.
func (r RLC) Save(path string) error {
	f, err := r.Workbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// Sweep is a set of R(T) curves sharing one temperature axis.
type Sweep struct {
	Names  []string
	Points [][]rlc.SweepPoint
}

// Workbook writes one row per temperature and one column per conductor.
func (s Sweep) Workbook() (*excelize.File, error) {
	if len(s.Points) == 0 || len(s.Names) != len(s.Points) {
		return nil, fmt.Errorf("report: %d names for %d sweeps", len(s.Names), len(s.Points))
	}
	n := len(s.Points[0])
	for i, pts := range s.Points {
		if len(pts) != n {
			return nil, fmt.Errorf("report: sweep %q has %d points, want %d", s.Names[i], len(pts), n)
		}
	}

	f := excelize.NewFile()
	if err := s.fill(f, n); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (s Sweep) fill(f *excelize.File, n int) error {
	if err := f.SetSheetName("Sheet1", sweepSheet); err != nil {
		return err
	}
	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	header := []any{"Temperature (°C)"}
	for _, name := range s.Names {
		header = append(header, name+" R (Ω/km)")
	}
	if err := setRow(f, sweepSheet, 1, header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sweepSheet, cell(1, 1), cell(len(header), 1), styles.header); err != nil {
		return err
	}

	for j := 0; j < n; j++ {
		values := []any{s.Points[0][j].Temperature}
		for i := range s.Points {
			values = append(values, s.Points[i][j].R*1000)
		}
		if err := setRow(f, sweepSheet, j+2, values); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sweepSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	if err := f.SetColWidth(sweepSheet, "A", columnName(len(header)), 18); err != nil {
		return err
	}
	return nil
}

// Save writes the sweep workbook to path.
func (s Sweep) Save(path string) error {
	f, err := s.Workbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

type styleSet struct {
	header     int
	label      int
	scientific int
}

func newStyles(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return s, err
	}
	s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return s, err
	}
	s.scientific, err = f.NewStyle(&excelize.Style{NumFmt: scientificFormat})
	return s, err
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	return f.SetSheetRow(sheet, cell(1, row), &values)
}

// cell panics on out-of-range coordinates, which only a programming error
// can produce here.
func cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		panic(err)
	}
	return name
}

func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		panic(err)
	}
	return name
}
