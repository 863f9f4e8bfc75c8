package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorlc/internal/conductor"
)

var (
	gmrConductor conductorFlags
	gmrPoint     operatingPoint
)

var gmrCmd = &cobra.Command{
	Use:   "gmr",
	Short: "Geometric mean radius and material weighting of a conductor",
	Long: `Calculate the geometric mean radius (GMR) of a conductor, the
area-weighted share of each material and the resistance of each
material group at the given temperature.

Examples:
  # ACSR Drake at 75 °C
  gorlc gmr --conductor Drake --temperature 75

  # 37-strand aluminium with skin effect at 50 Hz
  gorlc gmr -n 37 -d 3.0 -m Aluminum -f 50 --skin-effect`,
	RunE: runGMR,
}

func init() {
	rootCmd.AddCommand(gmrCmd)
	gmrConductor.register(gmrCmd)
	gmrPoint.register(gmrCmd, true)
}

func runGMR(cmd *cobra.Command, args []string) error {
	gmrPoint.resolve(cmd)

	cat, err := openCatalog()
	if err != nil {
		return err
	}
	c, err := gmrConductor.build(cat)
	if err != nil {
		return err
	}

	frequency := 0.0
	if gmrPoint.skinEffect {
		frequency = gmrPoint.frequency
	}

	groups := conductor.WeightedProperties(c, frequency)
	groupR, err := conductor.GroupResistances(c, gmrPoint.temperature, frequency)
	if err != nil {
		return err
	}
	r, err := conductor.Resistance(c, gmrPoint.temperature, frequency)
	if err != nil {
		return err
	}
	mu, err := conductor.EffectivePermeability(c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     GEOMETRIC MEAN RADIUS - %s\n", c.Name)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "GEOMETRY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Strands:\t%d\n", conductor.StrandCount(c))
	fmt.Fprintf(w, "  Circumscribed radius:\t%.4f mm\n", conductor.CircumscribedRadius(c)*1000)
	fmt.Fprintf(w, "  GMR:\t%.4f mm\n", conductor.GMR(c)*1000)
	fmt.Fprintf(w, "  GMR / radius:\t%.4f\n", conductor.GMR(c)/conductor.CircumscribedRadius(c))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "MATERIAL WEIGHTING:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  material\tarea (mm²)\tweight (%)\tμr\tR (Ω/km)\t")
	for i, g := range groups {
		fmt.Fprintf(w, "  %s\t%.4f\t%.2f\t%g\t%.6f\t\n", g.Type, g.SurfaceArea*1e6, g.WeightPercent, g.PermeabilityRelative, groupR[i]*1000)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Temperature:\t%.1f °C\n", gmrPoint.temperature)
	if gmrPoint.skinEffect {
		fmt.Fprintf(w, "  Frequency (skin effect):\t%.1f Hz\n", gmrPoint.frequency)
	}
	fmt.Fprintf(w, "  Effective μr:\t%.6f\n", mu)
	fmt.Fprintf(w, "  Resistance:\t%.6f Ω/km\n", r*1000)
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
