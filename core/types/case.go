// Package types - Sizing case input records
package types

import (
	"valve-sizing/internal/errors"
)

// ProcessInput describes the process conditions at the valve.
// Pressures are absolute-reference values in the active unit system
// (bar for Metric, psi for Imperial).
type ProcessInput struct {
	// FluidType selects the liquid or gas sizing path
	FluidType FluidType `json:"fluid_type"`

	// FluidName is the common name of the fluid (free text)
	FluidName string `json:"fluid_name"`

	// FluidNature characterizes the fluid for material selection
	FluidNature FluidNature `json:"fluid_nature"`

	// P1 is the inlet pressure
	P1 float64 `json:"p1"`

	// P2 is the outlet pressure (must be below P1)
	P2 float64 `json:"p2"`

	// T1 is the inlet temperature (degrees C or F per unit system)
	T1 float64 `json:"t1"`

	// FlowRate is the required flow (m3/hr or gpm for liquid,
	// Nm3/hr or scfh for gas)
	FlowRate float64 `json:"flow_rate"`

	// UnitSystem is the unit system all values above are expressed in
	UnitSystem UnitSystem `json:"unit_system"`

	// Rho is density in kg/m3 (Metric) or specific gravity (Imperial).
	// Liquid service only.
	Rho float64 `json:"rho,omitempty"`

	// Pv is the absolute vapor pressure at T1. Liquid service only.
	Pv float64 `json:"pv,omitempty"`

	// Pc is the absolute thermodynamic critical pressure. Liquid only.
	Pc float64 `json:"pc,omitempty"`

	// Viscosity is the liquid viscosity in cP. Liquid service only.
	Viscosity float64 `json:"viscosity,omitempty"`

	// MW is the gas molecular weight. Gas service only.
	MW float64 `json:"mw,omitempty"`

	// Z is the gas compressibility factor at inlet conditions (0.2-2.0)
	Z float64 `json:"z,omitempty"`

	// K is the ratio of specific heats Cp/Cv (1.0-2.0). Gas service only.
	K float64 `json:"k,omitempty"`
}

// DP returns the differential pressure in the input unit system
func (p ProcessInput) DP() float64 {
	return p.P1 - p.P2
}

// Validate checks the process conditions for caller-correctable problems.
// The liquid sizing dP guard remains the authoritative check against
// physically invalid pressure combinations.
func (p ProcessInput) Validate() error {
	if p.FluidType != Liquid && p.FluidType != Gas {
		return errors.Validationf("unknown fluid type: %q", p.FluidType)
	}
	if p.P1 <= 0 || p.P2 <= 0 {
		return errors.Validation("inlet and outlet pressures must be positive")
	}
	if p.P1 <= p.P2 {
		return errors.Validation("inlet pressure (P1) must be greater than outlet pressure (P2)")
	}
	if p.FlowRate <= 0 {
		return errors.Validation("flow rate must be positive")
	}

	switch p.FluidType {
	case Liquid:
		if p.Rho <= 0 {
			return errors.Validation("liquid density / specific gravity must be positive")
		}
		if p.Pv < 0 {
			return errors.Validation("vapor pressure must not be negative")
		}
		if p.Pc <= 0 {
			return errors.Validation("critical pressure must be positive")
		}
	case Gas:
		if p.MW < 1 {
			return errors.Validation("molecular weight must be at least 1")
		}
		if p.Z < 0.2 || p.Z > 2.0 {
			return errors.Validation("compressibility factor (Z) must be between 0.2 and 2.0")
		}
		if p.K < 1.0 || p.K > 2.0 {
			return errors.Validation("specific heat ratio (k) must be between 1.0 and 2.0")
		}
	}

	return nil
}

// ValveSelection describes the chosen valve.
type ValveSelection struct {
	// Type is the mechanical valve type
	Type ValveType `json:"type"`

	// Style is the trim/style name within the valve type
	Style string `json:"style"`

	// NominalSize is the nominal pipe size in inches
	NominalSize int `json:"nominal_size"`

	// Characteristic is the inherent flow characteristic
	Characteristic ValveCharacteristic `json:"characteristic"`

	// FL overrides the liquid pressure recovery factor.
	// Zero means "take the reference value for the selected style".
	FL float64 `json:"fl,omitempty"`

	// Kc overrides the cavitation index factor. Zero means the
	// reference value is used.
	Kc float64 `json:"kc,omitempty"`
}

// Case is the single normalized input record the engine consumes:
// process conditions plus the chosen valve and fail-safe position.
type Case struct {
	Process ProcessInput `json:"process"`

	Valve ValveSelection `json:"valve"`

	// FailPosition is the fail-safe position. It names the actuator
	// action but does not change sizing magnitudes.
	FailPosition FailPosition `json:"fail_position,omitempty"`
}
