package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorlc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorlc",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Conductor RLC Calculator")
		fmt.Fprintln(out, "Per-unit-length R, L and C of solid and stranded conductors")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
