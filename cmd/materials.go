package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the materials and conductors in the catalog",
	Long: `List the built-in materials and conductors, merged with the files
named by materials_file and conductors_file in the configuration.

Catalog files are JSON or YAML with "materials" and/or "conductors"
lists. Entries with an existing name replace the built-in entry.

Examples:
  gorlc materials
  GORLC_CONDUCTORS_FILE=site.yaml gorlc materials`,
	RunE: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "MATERIALS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  type\tρ (Ω·m)\tα (1/°C)\tT ref (°C)\tμr")
	for _, m := range cat.Materials {
		fmt.Fprintf(w, "  %s\t%.3e\t%.5f\t%.1f\t%g\n", m.Type, m.Resistivity, m.TempCoefOfResistivity, m.TempReference, m.PermeabilityRelative)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "CONDUCTORS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  name\tstrands\tstrand dia (mm)\tcore\tcore dia (mm)\touter dia (mm)\tmaterial")
	for _, r := range cat.Conductors {
		core, coreDia := "-", "-"
		if r.CoreStrandCount > 0 {
			core = fmt.Sprintf("%d", r.CoreStrandCount)
			coreDia = fmt.Sprintf("%.3f", r.CoreStrandDia)
		}
		mat := r.Material
		if r.CoreMaterial != "" {
			mat += "/" + r.CoreMaterial
		}
		fmt.Fprintf(w, "  %s\t%d\t%.3f\t%s\t%s\t%.3f\t%s\n", r.Name, r.StrandCount, r.StrandDia, core, coreDia, r.OuterDia, mat)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
