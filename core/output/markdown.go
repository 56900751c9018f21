// Package output - Markdown report formatter
package output

import (
	"fmt"
	"io"

	"valve-sizing/core/types"
	"valve-sizing/core/units"
)

// MarkdownFormatter renders the report as a markdown document
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, report *types.Report) error {
	c := report.Case
	display := units.ForSystem(c.Process.UnitSystem)

	fmt.Fprintf(w, "# Control Valve Sizing Report\n\n")
	fmt.Fprintf(w, "## Case\n\n")
	fmt.Fprintf(w, "| Item | Value |\n|---|---|\n")
	fmt.Fprintf(w, "| Fluid | %s (%s, %s) |\n", c.Process.FluidName, c.Process.FluidType, c.Process.FluidNature)
	fmt.Fprintf(w, "| Valve | %d\" %s, %s |\n", c.Valve.NominalSize, c.Valve.Type, c.Valve.Style)
	fmt.Fprintf(w, "| P1 | %s %s |\n", round(c.Process.P1, 2), display.Pressure)
	fmt.Fprintf(w, "| P2 | %s %s |\n", round(c.Process.P2, 2), display.Pressure)
	fmt.Fprintf(w, "| T1 | %s %s |\n", round(c.Process.T1, 1), display.Temperature)
	fmt.Fprintf(w, "| Flow | %s |\n\n", flowWithUnit(c.Process, display))

	fmt.Fprintf(w, "## Results\n\n")
	fmt.Fprintf(w, "| Result | Value |\n|---|---|\n")
	fmt.Fprintf(w, "| Required Cv | %s |\n", round(report.Sizing.Cv, 2))
	fmt.Fprintf(w, "| Selection | %s |\n", report.Rangeability.Status)
	fmt.Fprintf(w, "| Predicted noise | %s dBA |\n", round(report.Noise.TotalNoiseDBA, 1))
	if report.Actuator.RequiredForce > 0 {
		fmt.Fprintf(w, "| Actuator thrust | %s %s |\n", round(report.Actuator.RequiredForce, 2), report.Actuator.Unit)
	} else {
		fmt.Fprintf(w, "| Actuator torque | %s %s |\n", round(report.Actuator.RequiredTorque, 2), report.Actuator.Unit)
	}
	fmt.Fprintf(w, "| Body material | %s |\n", report.Materials.BodyMaterial)
	fmt.Fprintf(w, "| Trim material | %s |\n", report.Materials.TrimMaterial)
	fmt.Fprintf(w, "| Recommended characteristic | %s |\n\n", report.RecommendedCharacteristic)

	if report.Sizing.Liquid != nil {
		fmt.Fprintf(w, "Cavitation status: **%s** (sigma %s)\n\n",
			report.Sizing.Liquid.CavitationStatus, round(report.Sizing.Liquid.CavitationIndex, 2))
	}
	if report.Sizing.Gas != nil {
		fmt.Fprintf(w, "Choked flow: **%v** (x %s, x choked %s)\n\n",
			report.Sizing.Gas.IsChoked,
			round(report.Sizing.Gas.PressureDropRatioX, 3),
			round(report.Sizing.Gas.ChokedPressureDropRatio, 3))
	}

	fmt.Fprintf(w, "## Recommendations\n\n")
	fmt.Fprintf(w, "- %s\n", report.Noise.Recommendation)
	fmt.Fprintf(w, "- %s\n", report.Actuator.Recommendation)
	fmt.Fprintf(w, "- %s\n", report.Materials.ComplianceCheck)

	return nil
}
