package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in an empty directory with every flag reset
// to its default, since flag variables live at package level.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gorlc v")
}

func TestGMDCommand(t *testing.T) {
	out, err := execute(t, "gmd", "--spacing", "100,200,300")
	require.NoError(t, err)
	assert.Contains(t, out, "DAB:")
	assert.Contains(t, out, "GMD = 181.7121 mm")

	_, err = execute(t, "gmd", "--spacing", "100,200")
	assert.Error(t, err)

	_, err = execute(t, "gmd", "--spacing", "100,-200,300")
	assert.Error(t, err)
}

func TestPackCommand(t *testing.T) {
	out, err := execute(t, "pack", "--strands", "19", "--diameter", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "hexagonal [1 6 12]")
	assert.Contains(t, out, "Copper")

	out, err = execute(t, "pack", "--conductor", "Turkey")
	require.NoError(t, err)
	assert.Contains(t, out, "Steel")
	assert.Contains(t, out, "Aluminum")

	out, err = execute(t, "pack", "-n", "9", "-d", "2", "--core-strands", "3", "--core-diameter", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "Pattern:")
	assert.Regexp(t, `Strands:\s+12`, out)

	_, err = execute(t, "pack")
	assert.Error(t, err)
}

func TestGMRCommand(t *testing.T) {
	out, err := execute(t, "gmr", "--conductor", "Linnet", "--temperature", "75")
	require.NoError(t, err)
	assert.Contains(t, out, "MATERIAL WEIGHTING")
	assert.Contains(t, out, "75.0 °C")
}

func TestRLCCommand(t *testing.T) {
	out, err := execute(t, "rlc", "--conductor", "Linnet", "--phases", "3", "--gmd", "1200")
	require.NoError(t, err)
	assert.Contains(t, out, "normal")
	assert.Regexp(t, `Phase conductors:\s+3`, out)

	out, err = execute(t, "rlc", "-c", "1 AWG", "-f", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "dc")

	out, err = execute(t, "rlc", "-c", "1 AWG")
	require.NoError(t, err)
	assert.Contains(t, out, "self-capacitance")

	path := filepath.Join(t.TempDir(), "rlc.xlsx")
	out, err = execute(t, "rlc", "-c", "Drake,Drake,Dove", "--neutral", "Raven", "--spacing", "1000,2000,1000", "--per-km", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Neutral R")
	assert.FileExists(t, path)

	_, err = execute(t, "rlc", "-c", "Linnet", "--phases", "2", "--gmd", "5")
	assert.Error(t, err)

	_, err = execute(t, "rlc", "-c", "Nope", "--gmd", "1000")
	assert.Error(t, err)
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "-c", "Linnet,Drake", "--from", "0", "--to", "50", "--step", "25", "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "Linnet (Ω/km)")
	assert.Contains(t, out, "RESISTANCE vs TEMPERATURE")

	path := filepath.Join(t.TempDir(), "sweep.xlsx")
	_, err = execute(t, "sweep", "-c", "Turkey", "-o", path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = execute(t, "sweep", "-c", "Turkey", "--step", "0")
	assert.Error(t, err)

	_, err = execute(t, "sweep", "-c", "Drake", "--to", "NaN")
	assert.Error(t, err)

	_, err = execute(t, "sweep", "-c", "Drake", "--to", "1e18", "--step", "1e-6")
	assert.Error(t, err)
}

func TestThermalCommand(t *testing.T) {
	out, err := execute(t, "thermal", "--resistance", "100", "--diameter", "20", "--voltage", "10",
		"--ac=false", "--convection", "10", "--ambient", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "CONDUCTOR TEMPERATURE = 31.59 °C")

	out, err = execute(t, "thermal", "--conductor", "Linnet", "--voltage", "0.5", "--solar", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Linnet")
}

func TestMaterialsCommand(t *testing.T) {
	out, err := execute(t, "materials")
	require.NoError(t, err)
	assert.Contains(t, out, "Copper")
	assert.Contains(t, out, "Drake")
	assert.Contains(t, out, "Aluminum/Steel")
}

// chdir changes the working directory for the rest of the test and restores
// the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
