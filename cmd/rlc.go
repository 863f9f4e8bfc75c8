package cmd

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorlc/internal/conductor"
	"github.com/alexiusacademia/gorlc/internal/report"
	"github.com/alexiusacademia/gorlc/internal/rlc"
	"github.com/alexiusacademia/gorlc/internal/spacing"
)

var (
	rlcConductors []string
	rlcPhases     int
	rlcNeutral    string
	rlcGMD        float64
	rlcSpacing    []float64
	rlcPerKm      bool
	rlcOutput     string
	rlcPoint      operatingPoint
)

var rlcCmd = &cobra.Command{
	Use:   "rlc",
	Short: "Resistance, inductance and capacitance of a circuit",
	Long: `Calculate R, L and C per unit length for every phase conductor of a
circuit, and the system reactances XL = ω·max(L) and XC = 1/(ω·max(C)).

The request shape picks the calculation:
  - Frequency 0: DC, only resistance (L = C = 0)
  - GMD 0 with one conductor and no neutral: isolated conductor,
    self-capacitance from the conductor's own GMR
  - Otherwise: normal calculation at the given GMD

The GMD is given directly (--gmd) or derived from the pairwise
separations (--spacing DAB,DAC,DBC...).

Examples:
  # Three-phase Linnet line, equilateral 1.2 m spacing
  gorlc rlc --conductor Linnet --phases 3 --gmd 1200

  # Mixed phases with a neutral, GMD from separations, 75 °C
  gorlc rlc -c Drake,Drake,Dove --neutral Raven --spacing 1000,2000,1000 -t 75

  # DC resistance only
  gorlc rlc -c "4/0 AWG" -f 0

  # Export to a spreadsheet
  gorlc rlc -c Penguin --phases 3 --gmd 900 --per-km -o penguin.xlsx`,
	RunE: runRLC,
}

func init() {
	rootCmd.AddCommand(rlcCmd)

	rlcCmd.Flags().StringSliceVarP(&rlcConductors, "conductor", "c", nil, "Phase conductor names from the catalog [required]")
	rlcCmd.Flags().IntVarP(&rlcPhases, "phases", "p", 0, "Repeat a single conductor for this many phases")
	rlcCmd.Flags().StringVar(&rlcNeutral, "neutral", "", "Neutral conductor name from the catalog")
	rlcCmd.Flags().Float64VarP(&rlcGMD, "gmd", "g", 0, "System geometric mean distance (mm)")
	rlcCmd.Flags().Float64SliceVarP(&rlcSpacing, "spacing", "s", nil, "Pairwise separations (mm) to derive the GMD from")
	rlcCmd.Flags().BoolVar(&rlcPerKm, "per-km", false, "Show values per kilometre instead of per metre")
	rlcCmd.Flags().StringVarP(&rlcOutput, "output", "o", "", "Export results to an XLSX file")
	rlcPoint.register(rlcCmd, true)

	rlcCmd.MarkFlagRequired("conductor")
	rlcCmd.RegisterFlagCompletionFunc("conductor", completeConductor)
	rlcCmd.RegisterFlagCompletionFunc("neutral", completeConductor)
	rlcCmd.MarkFlagsMutuallyExclusive("gmd", "spacing")
}

func runRLC(cmd *cobra.Command, args []string) error {
	rlcPoint.resolve(cmd)

	cat, err := openCatalog()
	if err != nil {
		return err
	}

	req := rlc.Request{
		Frequency:   rlcPoint.frequency,
		Temperature: rlcPoint.temperature,
		GMD:         rlcGMD,
		SkinEffect:  rlcPoint.skinEffect,
	}

	names := slices.Clone(rlcConductors)
	if len(names) == 1 && rlcPhases > 1 {
		for len(names) < rlcPhases {
			names = append(names, names[0])
		}
	}
	for _, name := range names {
		c, err := cat.Conductor(name)
		if err != nil {
			return err
		}
		req.Conductors = append(req.Conductors, c)
	}
	if rlcNeutral != "" {
		n, err := cat.Conductor(rlcNeutral)
		if err != nil {
			return fmt.Errorf("neutral: %w", err)
		}
		req.Neutral = &n
	}
	if len(rlcSpacing) > 0 {
		req.GMD, err = spacing.GMD(rlcSpacing)
		if err != nil {
			return err
		}
	}

	result, err := rlc.NewCalculator(logger).Calculate(req)
	if err != nil {
		return err
	}

	printRLC(cmd, req, result)

	if rlcOutput != "" {
		if err := (report.RLC{Request: req, Result: result}).Save(rlcOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Results exported to: %s\n\n", rlcOutput)
	}
	return nil
}

func printRLC(cmd *cobra.Command, req rlc.Request, result *rlc.Result) {
	out := cmd.OutOrStdout()

	scale, unit := 1.0, "m"
	if rlcPerKm {
		scale, unit = 1000, "km"
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     CONDUCTOR RLC PARAMETERS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mode:\t%s\n", result.Mode)
	fmt.Fprintf(w, "  Frequency:\t%.1f Hz\n", req.Frequency)
	fmt.Fprintf(w, "  Temperature:\t%.1f °C\n", req.Temperature)
	fmt.Fprintf(w, "  GMD:\t%.4f mm\n", req.GMD)
	fmt.Fprintf(w, "  Skin effect:\t%t\n", req.SkinEffect)
	fmt.Fprintf(w, "  Phase conductors:\t%d\n", len(req.Conductors))
	if req.Neutral != nil {
		fmt.Fprintf(w, "  Neutral:\t%s\n", req.Neutral.Name)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "PER CONDUCTOR:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  #\tconductor\tGMR (mm)\tR (Ω/%s)\tL (H/%s)\tC (F/%s)\t\n", unit, unit, unit)
	for i, v := range result.PerConductor {
		c := req.Conductors[i]
		fmt.Fprintf(w, "  %d\t%s\t%.4f\t%.6e\t%.6e\t%.6e\t\n",
			i+1, c.Name, conductor.GMR(c)*1000, v.R*scale, v.L*scale, v.C*scale)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SYSTEM:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  XL = ω·max(L):\t%.6e Ω/%s\n", result.TotalXl*scale, unit)
	// XC is an impedance times length, so it scales the other way.
	fmt.Fprintf(w, "  XC = 1/(ω·max(C)):\t%.6e Ω·%s\n", result.TotalXc/scale, unit)
	if req.Neutral != nil {
		fmt.Fprintf(w, "  Neutral R:\t%.6e Ω/%s\n", result.NeutralResistance*scale, unit)
	}
	w.Flush()
	fmt.Fprintln(out)
}
