package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorlc/internal/diagram"
	"github.com/alexiusacademia/gorlc/internal/report"
	"github.com/alexiusacademia/gorlc/internal/rlc"
)

var (
	sweepConductors []string
	sweepFrom       float64
	sweepTo         float64
	sweepStep       float64
	sweepChart      bool
	sweepOutput     string
	sweepPoint      operatingPoint
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Resistance over a temperature range",
	Long: `Evaluate the resistance of one or more catalog conductors over a
temperature range and tabulate or chart the result.

The output file format follows its extension: .png, .svg or .pdf for a
chart, .xlsx for a spreadsheet.

Examples:
  # Linnet from -20 °C to 100 °C in 10 °C steps with an ASCII chart
  gorlc sweep --conductor Linnet --from -20 --to 100 --step 10 --chart

  # Compare two conductors and save the chart
  gorlc sweep -c Drake,Dove --to 120 -o sweep.png

  # AC resistance with skin effect, to a spreadsheet
  gorlc sweep -c "4/0 AWG" -f 60 --skin-effect -o sweep.xlsx`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringSliceVarP(&sweepConductors, "conductor", "c", nil, "Conductor names from the catalog [required]")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "Start temperature (°C)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 100, "End temperature (°C)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 10, "Temperature step (°C)")
	sweepCmd.Flags().BoolVar(&sweepChart, "chart", false, "Show an ASCII chart")
	sweepCmd.Flags().StringVarP(&sweepOutput, "output", "o", "", "Export to a chart image (png, svg, pdf) or spreadsheet (xlsx)")
	sweepCmd.Flags().Float64VarP(&sweepPoint.frequency, "frequency", "f", 60, "Frequency (Hz), used with --skin-effect")
	sweepCmd.Flags().BoolVar(&sweepPoint.skinEffect, "skin-effect", false, "Apply skin effect at the given frequency")

	sweepCmd.MarkFlagRequired("conductor")
	sweepCmd.RegisterFlagCompletionFunc("conductor", completeConductor)
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweepPoint.resolve(cmd)

	cat, err := openCatalog()
	if err != nil {
		return err
	}

	frequency := 0.0
	if sweepPoint.skinEffect {
		frequency = sweepPoint.frequency
	}

	series := make([]diagram.Series, 0, len(sweepConductors))
	for _, name := range sweepConductors {
		c, err := cat.Conductor(name)
		if err != nil {
			return err
		}
		points, err := rlc.SweepTemperature(c, sweepFrom, sweepTo, sweepStep, frequency)
		if err != nil {
			return err
		}
		logger.Debug("sweep", "conductor", c.Name, "points", len(points))
		series = append(series, diagram.Series{Name: c.Name, Points: points})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     RESISTANCE vs TEMPERATURE")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "  T (°C)\t")
	for _, s := range series {
		fmt.Fprintf(w, "%s (Ω/km)\t", s.Name)
	}
	fmt.Fprintln(w)
	for j, p := range series[0].Points {
		fmt.Fprintf(w, "  %.1f\t", p.Temperature)
		for _, s := range series {
			fmt.Fprintf(w, "%.6f\t", s.Points[j].R*1000)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(out)

	if sweepChart {
		chart, err := diagram.DrawASCIISweep(series)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, chart)
	}

	if sweepOutput == "" {
		return nil
	}

	if strings.EqualFold(filepath.Ext(sweepOutput), ".xlsx") {
		sheet := report.Sweep{}
		for _, s := range series {
			sheet.Names = append(sheet.Names, s.Name)
			sheet.Points = append(sheet.Points, s.Points)
		}
		if err := sheet.Save(sweepOutput); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Sweep exported to: %s\n\n", sweepOutput)
		return nil
	}

	path, err := diagram.ExportSweepChart(series, sweepOutput)
	if err != nil {
		return fmt.Errorf("exporting chart: %w", err)
	}
	fmt.Fprintf(out, "  Chart exported to: %s\n\n", path)
	return nil
}
