// Package catalog loads conductor and material tables and turns catalog
// records into conductors.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gorlc/internal/calcerr"
	"github.com/alexiusacademia/gorlc/internal/material"
)

//go:embed data/default.yaml
var defaultData []byte

// Record is a conductor as published in manufacturer tables. Diameters are
// in millimetres.
type Record struct {
	Name            string  `json:"name" yaml:"name"`
	NameAlt         string  `json:"name_alt,omitempty" yaml:"name_alt,omitempty"`
	StrandCount     int     `json:"strand_count" yaml:"strand_count"`
	StrandDia       float64 `json:"strand_dia" yaml:"strand_dia"`
	OuterDia        float64 `json:"outer_dia,omitempty" yaml:"outer_dia,omitempty"`
	CoreStrandCount int     `json:"core_strand_count,omitempty" yaml:"core_strand_count,omitempty"`
	CoreStrandDia   float64 `json:"core_strand_dia,omitempty" yaml:"core_strand_dia,omitempty"`
	Material        string  `json:"material" yaml:"material"`
	CoreMaterial    string  `json:"core_material,omitempty" yaml:"core_material,omitempty"`
}

// Validate checks the record before any geometry is built.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return calcerr.Configuration("conductor name is missing")
	}
	if r.StrandCount < 0 || r.CoreStrandCount < 0 {
		return calcerr.Configuration("%s: strand counts must not be negative", r.Name)
	}
	if r.StrandCount == 0 && r.CoreStrandCount == 0 {
		return calcerr.Configuration("%s: at least one strand is required", r.Name)
	}
	if r.StrandCount > 0 && !positive(r.StrandDia) {
		return calcerr.Configuration("%s: strand diameter must be positive, got %g mm", r.Name, r.StrandDia)
	}
	if r.CoreStrandCount > 0 && !positive(r.CoreStrandDia) {
		return calcerr.Configuration("%s: core strand diameter must be positive, got %g mm", r.Name, r.CoreStrandDia)
	}
	if math.IsNaN(r.OuterDia) || r.OuterDia < 0 {
		return calcerr.Configuration("%s: outer diameter must not be negative, got %g mm", r.Name, r.OuterDia)
	}
	if strings.TrimSpace(r.Material) == "" {
		return calcerr.Configuration("%s: material is missing", r.Name)
	}
	return nil
}

// Solid reports whether the record describes a single solid wire.
func (r Record) Solid() bool {
	return r.StrandCount == 1 && r.CoreStrandCount == 0
}

// Catalog is a material table plus the conductors that refer to it.
type Catalog struct {
	Materials  []material.Properties `json:"materials,omitempty" yaml:"materials,omitempty"`
	Conductors []Record              `json:"conductors,omitempty" yaml:"conductors,omitempty"`
}

// Default returns the built-in materials and conductors.
func Default() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(defaultData, &c); err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	c.Materials = material.Defaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return &c, nil
}

// Open starts from the built-in catalog and merges the given files into it.
// Empty paths are skipped.
func Open(paths ...string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		f, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		c.Merge(f)
	}
	return c, nil
}

// LoadFromFile loads a catalog from a JSON or YAML file, chosen by
// extension. Materials without a reference temperature are referenced to
// 20 °C.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, calcerr.Configuration("%s: unsupported catalog format %q (want .json, .yaml or .yml)", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c := raw.catalog()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks every material and record.
func (c *Catalog) Validate() error {
	for _, m := range c.Materials {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, r := range c.Conductors {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Merge adds the other catalog's entries. Entries with a matching material
// type or conductor name replace the existing ones in place.
func (c *Catalog) Merge(other *Catalog) {
	for _, m := range other.Materials {
		if i := c.materialIndex(m.Type); i >= 0 {
			c.Materials[i] = m
			continue
		}
		c.Materials = append(c.Materials, m)
	}
	for _, r := range other.Conductors {
		if i := c.recordIndex(r.Name); i >= 0 {
			c.Conductors[i] = r
			continue
		}
		c.Conductors = append(c.Conductors, r)
	}
}

// Material looks up a material by type, ignoring case.
func (c *Catalog) Material(name string) (material.Properties, error) {
	return material.Lookup(c.Materials, name)
}

// Find looks up a conductor by name or alternate name, ignoring case.
func (c *Catalog) Find(name string) (Record, error) {
	if i := c.recordIndex(name); i >= 0 {
		return c.Conductors[i], nil
	}
	for _, r := range c.Conductors {
		if r.NameAlt != "" && strings.EqualFold(r.NameAlt, name) {
			return r, nil
		}
	}
	return Record{}, calcerr.Configuration("unknown conductor %q", name)
}

func (c *Catalog) materialIndex(name string) int {
	for i, m := range c.Materials {
		if strings.EqualFold(m.Type, name) {
			return i
		}
	}
	return -1
}

func (c *Catalog) recordIndex(name string) int {
	for i, r := range c.Conductors {
		if strings.EqualFold(r.Name, name) {
			return i
		}
	}
	return -1
}

// file is the on-disk shape. The reference temperature is a pointer so an
// omitted value can be told apart from 0 °C.
type file struct {
	Materials []struct {
		Type                  string   `json:"type" yaml:"type"`
		Resistivity           float64  `json:"resistivity" yaml:"resistivity"`
		TempReference         *float64 `json:"temp_reference" yaml:"temp_reference"`
		TempCoefOfResistivity float64  `json:"temp_coef_of_resistivity" yaml:"temp_coef_of_resistivity"`
		PermeabilityRelative  float64  `json:"permeability_relative" yaml:"permeability_relative"`
		Conductivity          float64  `json:"conductivity" yaml:"conductivity"`
	} `json:"materials" yaml:"materials"`
	Conductors []Record `json:"conductors" yaml:"conductors"`
}

func (f file) catalog() *Catalog {
	c := &Catalog{Conductors: f.Conductors}
	for _, m := range f.Materials {
		ref := material.StandardReferenceTemp
		if m.TempReference != nil {
			ref = *m.TempReference
		}
		c.Materials = append(c.Materials, material.Properties{
			Type:                  m.Type,
			Resistivity:           m.Resistivity,
			TempReference:         ref,
			TempCoefOfResistivity: m.TempCoefOfResistivity,
			PermeabilityRelative:  m.PermeabilityRelative,
			Conductivity:          m.Conductivity,
		})
	}
	return c
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
