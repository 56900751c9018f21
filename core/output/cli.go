// Package output - Terminal report formatter
package output

import (
	"fmt"
	"io"

	"valve-sizing/core/types"
	"valve-sizing/core/units"
)

// CLIFormatter renders a human-readable terminal report
type CLIFormatter struct {
	// ShowDetails includes the full analysis breakdown
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report
func (f *CLIFormatter) Render(w io.Writer, report *types.Report) error {
	c := report.Case
	display := units.ForSystem(c.Process.UnitSystem)

	fmt.Fprintf(w, "Control Valve Sizing Report\n")
	fmt.Fprintf(w, "===========================\n\n")
	fmt.Fprintf(w, "Fluid:       %s (%s, %s)\n", c.Process.FluidName, c.Process.FluidType, c.Process.FluidNature)
	fmt.Fprintf(w, "Valve:       %d\" %s, %s\n", c.Valve.NominalSize, c.Valve.Type, c.Valve.Style)
	fmt.Fprintf(w, "Conditions:  P1=%s %s  P2=%s %s  T1=%s %s  Q=%s\n\n",
		round(c.Process.P1, 2), display.Pressure,
		round(c.Process.P2, 2), display.Pressure,
		round(c.Process.T1, 1), display.Temperature,
		flowWithUnit(c.Process, display))

	fmt.Fprintf(w, "Required Cv: %s\n", round(report.Sizing.Cv, 2))
	fmt.Fprintf(w, "Selection:   %s\n", report.Rangeability.Status)
	fmt.Fprintf(w, "Noise:       %s dBA at 1 m\n", round(report.Noise.TotalNoiseDBA, 1))

	if report.Actuator.RequiredForce > 0 {
		fmt.Fprintf(w, "Actuator:    %s %s thrust\n", round(report.Actuator.RequiredForce, 2), report.Actuator.Unit)
	} else {
		fmt.Fprintf(w, "Actuator:    %s %s torque\n", round(report.Actuator.RequiredTorque, 2), report.Actuator.Unit)
	}

	if !f.ShowDetails {
		return nil
	}

	if report.Sizing.Liquid != nil {
		la := report.Sizing.Liquid
		fmt.Fprintf(w, "\nFlashing and Cavitation\n")
		fmt.Fprintf(w, "  Sigma:     %s\n", round(la.CavitationIndex, 2))
		fmt.Fprintf(w, "  Flashing:  %v\n", la.IsFlashing)
		fmt.Fprintf(w, "  Status:    %s\n", la.CavitationStatus)
		fmt.Fprintf(w, "  Trim:      %s\n", la.TrimRecommendation)
	}
	if report.Sizing.Gas != nil {
		ga := report.Sizing.Gas
		fmt.Fprintf(w, "\nChoked Flow\n")
		fmt.Fprintf(w, "  Choked:    %v\n", ga.IsChoked)
		fmt.Fprintf(w, "  Y:         %s\n", round(ga.ExpansionFactorY, 3))
		fmt.Fprintf(w, "  x:         %s\n", round(ga.PressureDropRatioX, 3))
		fmt.Fprintf(w, "  x choked:  %s\n", round(ga.ChokedPressureDropRatio, 3))
	}

	fmt.Fprintf(w, "\nRangeability\n")
	fmt.Fprintf(w, "  Inherent:  %s:1\n", round(report.Rangeability.InherentRangeability, 0))
	fmt.Fprintf(w, "  Rated Cv:  %s\n", round(report.Rangeability.RatedCv, 0))
	fmt.Fprintf(w, "  Min Cv:    %s\n", round(report.Rangeability.MinControllableCv, 2))

	fmt.Fprintf(w, "\nMaterials\n")
	fmt.Fprintf(w, "  Body:      %s\n", report.Materials.BodyMaterial)
	fmt.Fprintf(w, "  Trim:      %s\n", report.Materials.TrimMaterial)
	fmt.Fprintf(w, "  Bolting:   %s\n", report.Materials.Bolting)
	fmt.Fprintf(w, "  Gasket:    %s\n", report.Materials.Gasket)

	fmt.Fprintf(w, "\nRecommended characteristic: %s\n", report.RecommendedCharacteristic)
	fmt.Fprintf(w, "Noise: %s\n", report.Noise.Recommendation)
	fmt.Fprintf(w, "Actuator: %s\n", report.Actuator.Recommendation)
	fmt.Fprintf(w, "Compliance: %s\n", report.Materials.ComplianceCheck)

	return nil
}

func flowWithUnit(p types.ProcessInput, display units.DisplayUnits) string {
	unit := display.FlowLiquid
	if p.FluidType == types.Gas {
		unit = display.FlowGas
	}
	return round(p.FlowRate, 2) + " " + unit
}
