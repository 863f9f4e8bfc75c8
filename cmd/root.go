package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorlc/internal/catalog"
	"github.com/alexiusacademia/gorlc/internal/config"
	"github.com/alexiusacademia/gorlc/internal/logging"
	"github.com/alexiusacademia/gorlc/internal/version"
)

var (
	// Global flags
	configFile string
	verbosity  int
	quiet      bool

	// Set up by the root pre-run hook
	appConfig = config.Default()
	logger    = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "gorlc",
	Short: "Conductor RLC Calculator",
	Long: `gorlc - Go Conductor RLC Calculator

A CLI tool for the per-unit-length electrical parameters of
overhead and cable conductors.

This tool helps power engineers perform:
  - Strand packing of solid, stranded and cored (ACSR) conductors
  - Geometric mean radius (GMR) of strand bundles
  - Temperature and skin-effect aware resistance
  - Inductance and capacitance for a given line spacing (GMD)
  - Multi-conductor circuits with an optional neutral
  - Resistance-temperature sweeps and steady-state temperature

Defaults are read from gorlc.yaml (or .json/.toml) in the working
directory or ~/.config/gorlc, and from GORLC_* environment variables.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gorlc v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Conductor RLC Calculator                             ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Strand packing and GMR of stranded conductors")
		fmt.Fprintln(out, "    • Area-weighted resistance of mixed-material bundles")
		fmt.Fprintln(out, "    • Inductance and capacitance per unit length")
		fmt.Fprintln(out, "    • DC, isolated-conductor and multi-phase circuits")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gorlc --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: gorlc.yaml in . or ~/.config/gorlc)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
}

// setup loads the configuration and builds the logger. Verbosity flags
// override the configured level.
func setup(cmd *cobra.Command) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg

	level := logging.LevelFromString(cfg.Log.Level)
	if verbosity > 0 || quiet {
		level = logging.LevelFromVerbosity(verbosity, quiet)
	}
	logger = logging.New(cmd.ErrOrStderr(), level, logging.Format(cfg.Log.Format))
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		"temperature_c", cfg.Temperature,
		"frequency_hz", cfg.Frequency,
		"skin_effect", cfg.SkinEffect,
		"materials_file", cfg.MaterialsFile,
		"conductors_file", cfg.ConductorsFile,
	)
	return nil
}

// openCatalog returns the built-in catalog merged with the configured files.
func openCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Open(appConfig.MaterialsFile, appConfig.ConductorsFile)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog opened", "materials", len(cat.Materials), "conductors", len(cat.Conductors))
	return cat, nil
}
