package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorlc/internal/conductor"
	"github.com/alexiusacademia/gorlc/internal/thermal"
)

var (
	thermalConductor    string
	thermalResistance   float64
	thermalDiameter     float64
	thermalVoltage      float64
	thermalAC           bool
	thermalConvection   float64
	thermalAmbient      float64
	thermalSolar        float64
	thermalAbsorptivity float64
)

var thermalCmd = &cobra.Command{
	Use:   "thermal",
	Short: "Steady-state conductor temperature",
	Long: `Estimate the steady-state temperature of an energised conductor from
a per-metre heat balance: Joule heating V²/R plus solar heating on half
the surface, against convective cooling over the full surface.

For AC the RMS voltage V/√2 is used. With a catalog conductor the
resistance is evaluated at the ambient temperature and the diameter is
the catalog outer diameter, unless given explicitly.

Examples:
  # Catalog conductor in sun
  gorlc thermal --conductor Linnet --voltage 0.5 --convection 10 --ambient 35 --solar 1000

  # Explicit resistance and diameter, DC
  gorlc thermal --resistance 1.6e-4 --diameter 18.3 --voltage 0.2 --ac=false`,
	RunE: runThermal,
}

func init() {
	rootCmd.AddCommand(thermalCmd)

	thermalCmd.Flags().StringVarP(&thermalConductor, "conductor", "c", "", "Conductor name from the catalog")
	thermalCmd.Flags().Float64VarP(&thermalResistance, "resistance", "r", 0, "Resistance per metre (Ω/m)")
	thermalCmd.Flags().Float64VarP(&thermalDiameter, "diameter", "d", 0, "Conductor outer diameter (mm)")
	thermalCmd.Flags().Float64Var(&thermalVoltage, "voltage", 0, "Applied voltage (V), peak for AC [required]")
	thermalCmd.Flags().BoolVar(&thermalAC, "ac", true, "AC supply (uses RMS voltage)")
	thermalCmd.Flags().Float64Var(&thermalConvection, "convection", 10, "Convective heat transfer coefficient (W/m²K)")
	thermalCmd.Flags().Float64Var(&thermalAmbient, "ambient", 25, "Ambient temperature (°C)")
	thermalCmd.Flags().Float64Var(&thermalSolar, "solar", 0, "Solar intensity (W/m²)")
	thermalCmd.Flags().Float64Var(&thermalAbsorptivity, "absorptivity", thermal.DefaultAbsorptivity, "Surface solar absorptivity (0-1)")

	thermalCmd.MarkFlagRequired("voltage")
	thermalCmd.MarkFlagsOneRequired("conductor", "resistance")
	thermalCmd.MarkFlagsMutuallyExclusive("conductor", "resistance")
	thermalCmd.RegisterFlagCompletionFunc("conductor", completeConductor)
}

func runThermal(cmd *cobra.Command, args []string) error {
	in := thermal.Input{
		Resistance:     thermalResistance,
		Voltage:        thermalVoltage,
		Convection:     thermalConvection,
		Diameter:       thermalDiameter / 1000,
		Ambient:        thermalAmbient,
		SolarIntensity: thermalSolar,
		Absorptivity:   thermalAbsorptivity,
		AC:             thermalAC,
	}

	name := "custom"
	if thermalConductor != "" {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		c, err := cat.Conductor(thermalConductor)
		if err != nil {
			return err
		}
		name = c.Name
		in.Resistance, err = conductor.Resistance(c, thermalAmbient, 0)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("diameter") {
			in.Diameter = 2 * c.OuterRadius
		}
	}

	res, err := thermal.SteadyState(in)
	if err != nil {
		return err
	}
	logger.Debug("heat balance", "joule_w_per_m", res.JouleHeating, "solar_w_per_m", res.SolarHeating, "rise_k", res.Rise)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     STEADY-STATE TEMPERATURE - %s\n", name)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Resistance:\t%.6e Ω/m\n", in.Resistance)
	fmt.Fprintf(w, "  Diameter:\t%.3f mm\n", in.Diameter*1000)
	supply := "DC"
	if in.AC {
		supply = "AC"
	}
	fmt.Fprintf(w, "  Voltage:\t%.3f V (%s)\n", in.Voltage, supply)
	fmt.Fprintf(w, "  Convection (h):\t%.2f W/m²K\n", in.Convection)
	fmt.Fprintf(w, "  Solar intensity:\t%.1f W/m² (absorptivity %.2f)\n", in.SolarIntensity, in.Absorptivity)
	fmt.Fprintf(w, "  Ambient:\t%.1f °C\n", in.Ambient)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "HEAT BALANCE (per metre):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joule heating:\t%.4f W/m\n", res.JouleHeating)
	fmt.Fprintf(w, "  Solar heating:\t%.4f W/m\n", res.SolarHeating)
	fmt.Fprintf(w, "  Convective cooling:\t%.4f W/m/K\n", res.CoolingPerK)
	fmt.Fprintf(w, "  Temperature rise:\t%.2f K\n", res.Rise)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  ╔═════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  CONDUCTOR TEMPERATURE = %.2f °C\n", res.Temperature)
	fmt.Fprintf(out, "  ╚═════════════════════════════════════════╝\n")
	fmt.Fprintln(out)
	return nil
}
