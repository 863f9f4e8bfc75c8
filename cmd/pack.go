package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorlc/internal/conductor"
	"github.com/alexiusacademia/gorlc/internal/packing"
)

var packConductor conductorFlags

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Lay out the strands of a conductor",
	Long: `Pack the strands of a solid, stranded or cored conductor into
concentric rings and list the polar position of every strand.

Close-packed totals (1, 7, 19, 37... around one strand, 3, 12, 27...
around three, 4, 14, 30... around four) use the canonical layers.
Other counts fill rings greedily from the centre. Core strands are
packed first and the outer strands start clear of the core.

Examples:
  # 19-strand copper, 2.5 mm strands
  gorlc pack --strands 19 --diameter 2.5

  # 26/7 ACSR from explicit data
  gorlc pack -n 26 -d 2.89 -m Aluminum --core-strands 7 --core-diameter 2.25 --core-material Steel

  # From the catalog
  gorlc pack --conductor Linnet`,
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)
	packConductor.register(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	rec, err := packConductor.record(cat)
	if err != nil {
		return err
	}
	c, err := construct(rec, cat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	strands := conductor.Layout(c)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     STRAND LAYOUT - %s\n", c.Name)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "CONSTRUCTION:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Kind:\t%s\n", c.Kind)
	fmt.Fprintf(w, "  Strands:\t%d\n", len(strands))
	// Cored bundles fill their outer rings greedily.
	if rec.CoreStrandCount == 0 {
		if family, layers := packing.Layers(len(strands)); layers != nil {
			fmt.Fprintf(w, "  Pattern:\t%s %v\n", family, layers)
		}
	}
	fmt.Fprintf(w, "  Circumscribed radius:\t%.4f mm\n", conductor.CircumscribedRadius(c)*1000)
	if c.OuterRadius > 0 {
		fmt.Fprintf(w, "  Catalog outer diameter:\t%.4f mm\n", c.OuterRadius*2000)
	}
	fmt.Fprintf(w, "  GMR:\t%.4f mm\n", conductor.GMR(c)*1000)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STRANDS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  #\tr (mm)\tθ (deg)\tradius (mm)\tmaterial\t")
	for i, s := range strands {
		fmt.Fprintf(w, "  %d\t%.4f\t%.2f\t%.4f\t%s\t\n", i+1, s.R*1000, s.Theta*180/math.Pi, s.Radius*1000, s.Properties.Type)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
