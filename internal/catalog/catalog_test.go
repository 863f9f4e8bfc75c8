package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
	"github.com/alexiusacademia/gorlc/internal/conductor"
	"github.com/alexiusacademia/gorlc/internal/material"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Materials, 3)
	assert.NotEmpty(t, c.Conductors)

	turkey, err := c.Find("turkey")
	require.NoError(t, err)
	assert.Equal(t, 6, turkey.StrandCount)
	assert.Equal(t, 1, turkey.CoreStrandCount)
	assert.Equal(t, "Steel", turkey.CoreMaterial)

	byAlt, err := c.Find("ACSR 336.4 kcmil 26/7")
	require.NoError(t, err)
	assert.Equal(t, "Linnet", byAlt.Name)

	_, err = c.Find("Unobtainium")
	assert.True(t, calcerr.IsConfiguration(err))
}

func TestDefaultConductorsBuild(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, r := range c.Conductors {
		t.Run(r.Name, func(t *testing.T) {
			cond, err := Build(r, c.Materials)
			require.NoError(t, err)
			assert.Equal(t, r.StrandCount+r.CoreStrandCount, conductor.StrandCount(cond))
			assert.Greater(t, conductor.GMR(cond), 0.0)
		})
	}
}

func TestBuildSolid(t *testing.T) {
	cond, err := Build(Record{Name: "rod", StrandCount: 1, StrandDia: 20, Material: "copper"}, material.Defaults())
	require.NoError(t, err)

	assert.Equal(t, conductor.Solid, cond.Kind)
	assert.InDelta(t, 0.01, cond.Radius, 1e-15)
	assert.Equal(t, "Copper", cond.Material.Type)
}

func TestBuildStranded(t *testing.T) {
	cond, err := Build(Record{
		Name:            "Linnet",
		StrandCount:     26,
		StrandDia:       2.89,
		OuterDia:        18.31,
		CoreStrandCount: 7,
		CoreStrandDia:   2.25,
		Material:        "Aluminum",
		CoreMaterial:    "Steel",
	}, material.Defaults())
	require.NoError(t, err)

	assert.Equal(t, conductor.Stranded, cond.Kind)
	require.Len(t, cond.Strands, 33)
	assert.InDelta(t, 0.00225/2, cond.Strands[0].Radius, 1e-15)
	assert.Equal(t, "Steel", cond.Strands[0].Properties.Type)
	assert.InDelta(t, 0.00289/2, cond.Strands[32].Radius, 1e-15)
	assert.Equal(t, "Aluminum", cond.Strands[32].Properties.Type)
	assert.InDelta(t, 0.01831/2, cond.OuterRadius, 1e-15)
}

func TestBuildCoreFallsBackToOuterMaterial(t *testing.T) {
	cond, err := Build(Record{
		Name:            "cored",
		StrandCount:     6,
		StrandDia:       2,
		CoreStrandCount: 1,
		CoreStrandDia:   2,
		Material:        "Copper",
	}, material.Defaults())
	require.NoError(t, err)

	for _, s := range cond.Strands {
		assert.Equal(t, "Copper", s.Properties.Type)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"no name", Record{StrandCount: 1, StrandDia: 2, Material: "Copper"}},
		{"no strands", Record{Name: "x", Material: "Copper"}},
		{"zero diameter", Record{Name: "x", StrandCount: 7, Material: "Copper"}},
		{"zero core diameter", Record{Name: "x", StrandCount: 6, StrandDia: 2, CoreStrandCount: 1, Material: "Copper"}},
		{"unknown material", Record{Name: "x", StrandCount: 7, StrandDia: 2, Material: "Gold"}},
		{"unknown core material", Record{Name: "x", StrandCount: 6, StrandDia: 2, CoreStrandCount: 1, CoreStrandDia: 2, Material: "Copper", CoreMaterial: "Gold"}},
		{"missing material", Record{Name: "x", StrandCount: 7, StrandDia: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.rec, material.Defaults())
			require.Error(t, err)
			assert.True(t, calcerr.IsConfiguration(err))
		})
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
materials:
  - type: Silver
    resistivity: 1.59e-8
    temp_coef_of_resistivity: 0.0038
    permeability_relative: 0.99998
conductors:
  - name: Silver 7
    strand_count: 7
    strand_dia: 1.5
    material: Silver
`)

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, c.Materials, 1)
	assert.Equal(t, material.StandardReferenceTemp, c.Materials[0].TempReference)
	require.Len(t, c.Conductors, 1)
	assert.Equal(t, "Silver 7", c.Conductors[0].Name)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeFile(t, "catalog.json", `{
  "materials": [{"type": "Copper", "resistivity": 1.72e-8, "temp_reference": 0,
    "temp_coef_of_resistivity": 0.0043, "permeability_relative": 1}],
  "conductors": [{"name": "CondCored", "strand_count": 37, "strand_dia": 0.5, "outer_dia": 6.0,
    "core_strand_count": 2, "core_strand_dia": 2.9235, "material": "Copper"}]
}`)

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Materials[0].TempReference)
	assert.Equal(t, 2, c.Conductors[0].CoreStrandCount)
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "catalog.csv", "name\n"))
		assert.True(t, calcerr.IsConfiguration(err))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "catalog.json", "{"))
		assert.Error(t, err)
	})

	t.Run("invalid material", func(t *testing.T) {
		_, err := LoadFromFile(writeFile(t, "m.yaml", "materials:\n  - type: Lead\n    resistivity: -1\n    permeability_relative: 1\n"))
		assert.True(t, calcerr.IsConfiguration(err))
	})
}

func TestOpenMerges(t *testing.T) {
	path := writeFile(t, "extra.yaml", `
materials:
  - type: copper
    resistivity: 1.72e-8
    temp_reference: 20
    temp_coef_of_resistivity: 0.00393
    permeability_relative: 1
conductors:
  - {name: turkey, strand_count: 6, strand_dia: 1.7, core_strand_count: 1, core_strand_dia: 1.7, material: Aluminum}
  - {name: Custom, strand_count: 19, strand_dia: 2, material: Copper}
`)

	base, err := Default()
	require.NoError(t, err)

	c, err := Open("", path)
	require.NoError(t, err)

	assert.Len(t, c.Materials, len(base.Materials))
	cu, err := c.Material("Copper")
	require.NoError(t, err)
	assert.Equal(t, 1.72e-8, cu.Resistivity)

	assert.Len(t, c.Conductors, len(base.Conductors)+1)
	turkey, err := c.Find("Turkey")
	require.NoError(t, err)
	assert.Equal(t, 1.7, turkey.StrandDia)

	custom, err := c.Conductor("custom")
	require.NoError(t, err)
	assert.Len(t, custom.Strands, 19)
}
