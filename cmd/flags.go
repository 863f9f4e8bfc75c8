package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorlc/internal/catalog"
	"github.com/alexiusacademia/gorlc/internal/conductor"
	"github.com/alexiusacademia/gorlc/internal/material"
)

// conductorFlags selects one conductor either from the catalog or from an
// explicit construction given in millimetres.
type conductorFlags struct {
	name         string
	strands      int
	strandDia    float64 // mm
	material     string
	coreStrands  int
	coreDia      float64 // mm
	coreMaterial string
}

func (f *conductorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "conductor", "c", "", "Catalog conductor name (see 'gorlc materials')")
	cmd.Flags().IntVarP(&f.strands, "strands", "n", 0, "Number of outer strands (1 = solid wire)")
	cmd.Flags().Float64VarP(&f.strandDia, "diameter", "d", 0, "Strand diameter (mm)")
	cmd.Flags().StringVarP(&f.material, "material", "m", "Copper", "Strand material")
	cmd.Flags().IntVar(&f.coreStrands, "core-strands", 0, "Number of core strands")
	cmd.Flags().Float64Var(&f.coreDia, "core-diameter", 0, "Core strand diameter (mm)")
	cmd.Flags().StringVar(&f.coreMaterial, "core-material", "", "Core strand material (default: strand material)")
	cmd.RegisterFlagCompletionFunc("conductor", completeConductor)
	cmd.MarkFlagsMutuallyExclusive("conductor", "strands")
	cmd.MarkFlagsOneRequired("conductor", "strands")
}

// record turns the flags into a catalog record.
func (f *conductorFlags) record(cat *catalog.Catalog) (catalog.Record, error) {
	if f.name != "" {
		return cat.Find(f.name)
	}
	return catalog.Record{
		Name:            "custom",
		StrandCount:     f.strands,
		StrandDia:       f.strandDia,
		CoreStrandCount: f.coreStrands,
		CoreStrandDia:   f.coreDia,
		Material:        f.material,
		CoreMaterial:    f.coreMaterial,
	}, nil
}

// build resolves and constructs the selected conductor.
func (f *conductorFlags) build(cat *catalog.Catalog) (conductor.Conductor, error) {
	rec, err := f.record(cat)
	if err != nil {
		return conductor.Conductor{}, err
	}
	return construct(rec, cat)
}

// construct builds the conductor described by rec.
func construct(rec catalog.Record, cat *catalog.Catalog) (conductor.Conductor, error) {
	c, err := catalog.Build(rec, cat.Materials)
	if err != nil {
		return conductor.Conductor{}, err
	}
	logger.Debug("conductor built", "name", c.Name, "kind", c.Kind.String(), "strands", conductor.StrandCount(c))
	return c, nil
}

// operatingPoint holds the frequency and temperature flags, falling back to
// the configuration when a flag is not given.
type operatingPoint struct {
	frequency   float64
	temperature float64
	skinEffect  bool
}

func (o *operatingPoint) register(cmd *cobra.Command, withFrequency bool) {
	if withFrequency {
		cmd.Flags().Float64VarP(&o.frequency, "frequency", "f", 60, "System frequency (Hz), 0 for DC")
		cmd.Flags().BoolVar(&o.skinEffect, "skin-effect", false, "Apply skin effect to AC resistance")
	}
	cmd.Flags().Float64VarP(&o.temperature, "temperature", "t", material.StandardReferenceTemp, "Conductor temperature (°C)")
}

func (o *operatingPoint) resolve(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("frequency"); f != nil && !f.Changed {
		o.frequency = appConfig.Frequency
	}
	if f := cmd.Flags().Lookup("skin-effect"); f != nil && !f.Changed {
		o.skinEffect = appConfig.SkinEffect
	}
	if !cmd.Flags().Changed("temperature") {
		o.temperature = appConfig.Temperature
	}
}

// completeConductor offers catalog conductor names for shell completion.
func completeConductor(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, err := openCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, len(cat.Conductors))
	for i, r := range cat.Conductors {
		names[i] = r.Name
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
