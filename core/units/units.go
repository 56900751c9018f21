// Package units converts scalar quantities between the Metric and
// Imperial unit systems.
//
// Calculators always convert into one fixed working system (Imperial
// engineering units: psi, degrees Rankine, gpm, scfh, lbf, ft-lbf) before
// applying the standard formulas, then convert results back for display.
// A value whose source system already matches the requested target unit
// passes through unchanged, and an unrecognized source system is an
// explicit identity fallback rather than an error.
package units

import (
	"valve-sizing/core/types"
)

// Conversion constants
const (
	// BarToPSI converts bar to psi
	BarToPSI = 14.5038

	// M3HrToGPM converts m3/hr to US gpm
	M3HrToGPM = 4.40287

	// Nm3HrToSCFH converts normal m3/hr to standard ft3/hr.
	// Approximate, per standard engineering practice.
	Nm3HrToSCFH = 37.324

	// LbfToNewton converts pound-force to newton
	LbfToNewton = 4.44822

	// FtLbfToNm converts foot-pound to newton-metre
	FtLbfToNm = 1.35582
)

// Target unit identifiers
const (
	PSI        = "psi"
	PSIA       = "psia"
	Bar        = "bar"
	GPM        = "gpm"
	M3Hr       = "m³/hr"
	SCFH       = "scfh"
	Nm3Hr      = "Nm³/hr"
	Celsius    = "°C"
	Fahrenheit = "°F"
	Rankine    = "R"
	SG         = "SG"
	KgM3       = "kg/m³"
	Lbf        = "lbf"
	Newton     = "N"
	FtLbf      = "ft-lbf"
	NewtonM    = "Nm"
)

// Pressure converts a pressure value from the given unit system to the
// target unit. Metric pressures are bar, Imperial pressures are psi.
// "psi" and "psia" are treated alike since inputs are absolute-reference.
func Pressure(value float64, from types.UnitSystem, to string) float64 {
	if from == types.Metric && (to == PSI || to == PSIA) {
		return value * BarToPSI
	}
	if from == types.Imperial && to == Bar {
		return value / BarToPSI
	}
	return value
}

// Temperature converts a temperature value from the given unit system to
// the target unit. Metric temperatures are degrees C, Imperial degrees F.
// Rankine is the absolute working unit for gas sizing.
func Temperature(value float64, from types.UnitSystem, to string) float64 {
	switch {
	case from == types.Metric && to == Fahrenheit:
		return value*9/5 + 32
	case from == types.Metric && to == Rankine:
		return value*9/5 + 491.67
	case from == types.Imperial && to == Celsius:
		return (value - 32) * 5 / 9
	case from == types.Imperial && to == Rankine:
		return value + 459.67
	}
	return value
}

// LiquidFlow converts a liquid flow rate. Metric flows are m3/hr,
// Imperial flows are gpm.
func LiquidFlow(value float64, from types.UnitSystem, to string) float64 {
	if from == types.Metric && to == GPM {
		return value * M3HrToGPM
	}
	if from == types.Imperial && to == M3Hr {
		return value / M3HrToGPM
	}
	return value
}

// GasFlow converts a gas flow rate. Metric flows are Nm3/hr, Imperial
// flows are scfh.
func GasFlow(value float64, from types.UnitSystem, to string) float64 {
	if from == types.Metric && to == SCFH {
		return value * Nm3HrToSCFH
	}
	if from == types.Imperial && to == Nm3Hr {
		return value / Nm3HrToSCFH
	}
	return value
}

// Density converts between density (kg/m3, Metric) and specific gravity
// (water = 1, Imperial).
func Density(value float64, from types.UnitSystem, to string) float64 {
	if from == types.Metric && to == SG {
		return value / 1000.0
	}
	if from == types.Imperial && to == KgM3 {
		return value * 1000.0
	}
	return value
}

// Force converts an actuator thrust from working lbf to the display unit.
func Force(value float64, to string) float64 {
	if to == Newton {
		return value * LbfToNewton
	}
	return value
}

// Torque converts an actuator torque from working ft-lbf to the display
// unit.
func Torque(value float64, to string) float64 {
	if to == NewtonM {
		return value * FtLbfToNm
	}
	return value
}

// DisplayUnits names the display units of each quantity for one system
type DisplayUnits struct {
	Pressure    string
	Temperature string
	FlowLiquid  string
	FlowGas     string
	Density     string
	Viscosity   string
	Force       string
	Torque      string
}

var metricUnits = DisplayUnits{
	Pressure:    Bar,
	Temperature: Celsius,
	FlowLiquid:  M3Hr,
	FlowGas:     Nm3Hr,
	Density:     KgM3,
	Viscosity:   "cP",
	Force:       Newton,
	Torque:      NewtonM,
}

var imperialUnits = DisplayUnits{
	Pressure:    PSI,
	Temperature: Fahrenheit,
	FlowLiquid:  GPM,
	FlowGas:     SCFH,
	Density:     SG,
	Viscosity:   "cP",
	Force:       Lbf,
	Torque:      FtLbf,
}

// ForSystem returns the display units for a unit system. Unrecognized
// systems fall back to Metric.
func ForSystem(s types.UnitSystem) DisplayUnits {
	if s == types.Imperial {
		return imperialUnits
	}
	return metricUnits
}
