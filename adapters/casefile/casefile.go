// Package casefile loads sizing cases from disk. Cases may be written
// as HCL (a single `case` block with `process` and `valve` blocks) or
// as a JSON mirror of the case record.
package casefile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"valve-sizing/core/types"
	"valve-sizing/internal/errors"
)

// hclFile is the top-level HCL schema
type hclFile struct {
	Case hclCase `hcl:"case,block"`
}

type hclCase struct {
	UnitSystem   string     `hcl:"unit_system"`
	FailPosition string     `hcl:"fail_position,optional"`
	Process      hclProcess `hcl:"process,block"`
	Valve        hclValve   `hcl:"valve,block"`
}

type hclProcess struct {
	FluidType   string  `hcl:"fluid_type"`
	FluidName   string  `hcl:"fluid_name,optional"`
	FluidNature string  `hcl:"fluid_nature,optional"`
	P1          float64 `hcl:"p1"`
	P2          float64 `hcl:"p2"`
	T1          float64 `hcl:"t1"`
	FlowRate    float64 `hcl:"flow_rate"`
	Rho         float64 `hcl:"rho,optional"`
	Pv          float64 `hcl:"pv,optional"`
	Pc          float64 `hcl:"pc,optional"`
	Viscosity   float64 `hcl:"viscosity,optional"`
	MW          float64 `hcl:"mw,optional"`
	Z           float64 `hcl:"z,optional"`
	K           float64 `hcl:"k,optional"`
}

type hclValve struct {
	Type           string  `hcl:"type"`
	Style          string  `hcl:"style"`
	NominalSize    int     `hcl:"size"`
	Characteristic string  `hcl:"characteristic,optional"`
	FL             float64 `hcl:"fl,optional"`
	Kc             float64 `hcl:"kc,optional"`
}

// Load reads a case file, choosing the decoder by file extension
// (.hcl or .json).
func Load(path string) (*types.Case, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read case file", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return ParseHCL(src, path)
	case ".json":
		return ParseJSON(src)
	default:
		return nil, errors.NotSupported("case file extension " + filepath.Ext(path))
	}
}

// ParseHCL decodes an HCL case definition
func ParseHCL(src []byte, filename string) (*types.Case, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid case file syntax", diags)
	}

	var decoded hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, errors.Parsing("invalid case definition", diags)
	}

	hc := decoded.Case
	c := &types.Case{
		Process: types.ProcessInput{
			FluidType:   types.FluidType(hc.Process.FluidType),
			FluidName:   hc.Process.FluidName,
			FluidNature: types.FluidNature(hc.Process.FluidNature),
			P1:          hc.Process.P1,
			P2:          hc.Process.P2,
			T1:          hc.Process.T1,
			FlowRate:    hc.Process.FlowRate,
			UnitSystem:  types.UnitSystem(hc.UnitSystem),
			Rho:         hc.Process.Rho,
			Pv:          hc.Process.Pv,
			Pc:          hc.Process.Pc,
			Viscosity:   hc.Process.Viscosity,
			MW:          hc.Process.MW,
			Z:           hc.Process.Z,
			K:           hc.Process.K,
		},
		Valve: types.ValveSelection{
			Type:           types.ValveType(hc.Valve.Type),
			Style:          hc.Valve.Style,
			NominalSize:    hc.Valve.NominalSize,
			Characteristic: types.ValveCharacteristic(hc.Valve.Characteristic),
			FL:             hc.Valve.FL,
			Kc:             hc.Valve.Kc,
		},
		FailPosition: types.FailPosition(hc.FailPosition),
	}
	applyDefaults(c)
	return c, nil
}

// ParseJSON decodes a JSON case record
func ParseJSON(src []byte) (*types.Case, error) {
	var c types.Case
	if err := json.Unmarshal(src, &c); err != nil {
		return nil, errors.Parsing("invalid case JSON", err)
	}
	applyDefaults(&c)
	return &c, nil
}

// applyDefaults fills optional fields the way the interactive flow does
func applyDefaults(c *types.Case) {
	if c.Process.FluidNature == "" {
		c.Process.FluidNature = types.NatureClean
	}
	if c.FailPosition == "" {
		c.FailPosition = types.FailClose
	}
}
