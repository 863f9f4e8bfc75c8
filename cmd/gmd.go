package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gorlc/internal/spacing"
)

var (
	gmdSpacing []float64
	gmdNeutral bool
)

const mmPerInch = 25.4

var gmdCmd = &cobra.Command{
	Use:   "gmd",
	Short: "Geometric mean distance from conductor separations",
	Long: `Calculate the system geometric mean distance (GMD) as the geometric
mean of the unique pairwise separations between conductors.

Separations are given in the upper-triangle order of the separation
matrix: DAB, DAC, DBC for three conductors, DAB, DAC, DAN, DBC, DBN,
DCN for three phases and a neutral.

Examples:
  # Flat three-phase arrangement, 1 m phase spacing
  gorlc gmd --spacing 1000,2000,1000

  # Three phases and a neutral
  gorlc gmd -s 100,127,150,100,200,210 --neutral`,
	RunE: runGMD,
}

func init() {
	rootCmd.AddCommand(gmdCmd)

	gmdCmd.Flags().Float64SliceVarP(&gmdSpacing, "spacing", "s", nil, "Pairwise separations (mm) [required]")
	gmdCmd.Flags().BoolVar(&gmdNeutral, "neutral", false, "Label the last conductor as the neutral")
	gmdCmd.MarkFlagRequired("spacing")
}

func runGMD(cmd *cobra.Command, args []string) error {
	n := conductorsForPairs(len(gmdSpacing))
	if n == 0 {
		return fmt.Errorf("%d separations do not form a full separation matrix (want 1, 3, 6, 10...)", len(gmdSpacing))
	}

	m := mat.NewSymDense(n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, gmdSpacing[k])
			k++
		}
	}

	gmd, err := spacing.FromMatrix(m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     GEOMETRIC MEAN DISTANCE")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SEPARATIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, label := range spacing.Labels(n, gmdNeutral) {
		fmt.Fprintf(w, "  %s:\t%.2f mm\n", label, gmdSpacing[i])
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "MATRIX (mm):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "%v\n\n", mat.Formatted(m, mat.Prefix("  "), mat.Squeeze()))

	fmt.Fprintf(out, "  GMD = %.4f mm (%.4f in)\n\n", gmd, gmd/mmPerInch)
	return nil
}

// conductorsForPairs returns n where n(n-1)/2 == pairs, or 0.
func conductorsForPairs(pairs int) int {
	if pairs <= 0 {
		return 0
	}
	n := int(math.Round((1 + math.Sqrt(1+8*float64(pairs))) / 2))
	if n*(n-1)/2 != pairs {
		return 0
	}
	return n
}
