// Package sizing computes the required flow coefficient (Cv) for liquid
// and gas service following the ISA S75.01 / IEC 60534-2-1 standards.
package sizing

import (
	"math"

	"valve-sizing/core/types"
	"valve-sizing/core/units"
	"valve-sizing/internal/errors"
)

// Liquid calculates the required Cv for liquid service.
//
// fl is the liquid pressure recovery factor and kc the cavitation index
// factor for the selected valve style. The sizing pressure drop is the
// smaller of the actual drop and the choked-flow allowable drop; a
// non-positive sizing drop is the validation guard against physically
// invalid inputs (p2 >= p1, or ultra-high vapor pressure).
func Liquid(in types.ProcessInput, fl, kc float64) (*types.SizingResult, error) {
	// Work in Imperial engineering units
	p1 := units.Pressure(in.P1, in.UnitSystem, units.PSI)
	p2 := units.Pressure(in.P2, in.UnitSystem, units.PSI)
	pv := units.Pressure(in.Pv, in.UnitSystem, units.PSI)
	pc := units.Pressure(in.Pc, in.UnitSystem, units.PSI)
	flow := units.LiquidFlow(in.FlowRate, in.UnitSystem, units.GPM)
	gf := units.Density(in.Rho, in.UnitSystem, units.SG)

	dp := p1 - p2

	// Liquid critical pressure ratio factor
	ff := 0.96 - 0.28*math.Sqrt(pv/pc)

	// Choked flow limit (delta P allowable)
	dpAllowable := fl * fl * (p1 - ff*pv)

	dpSizing := math.Min(dp, dpAllowable)
	if dpSizing <= 0 {
		return nil, errors.Validation("sizing pressure drop (dP) must be positive; check inlet/outlet pressures")
	}

	cv := flow * math.Sqrt(gf/dpSizing)

	// Flashing and cavitation analysis
	isFlashing := p2 < pv
	sigma := (p1 - pv) / (p1 - p2)

	var status types.CavitationStatus
	var trim string
	switch {
	case isFlashing:
		status = types.FlashingOccurs
		trim = "Flashing service requires hardened trim materials (e.g., Stellite) and potentially an expanded outlet."
	case sigma < 1/kc:
		status = types.CavitationLikely
		trim = "High cavitation risk. Recommend using anti-cavitation trim or a multi-stage valve design."
	default:
		status = types.NoSignificantCavitation
		trim = "Standard trim is likely acceptable, but monitor for high pressure drop scenarios."
	}

	return &types.SizingResult{
		Cv: cv,
		Liquid: &types.LiquidAnalysis{
			IsFlashing:         isFlashing,
			CavitationIndex:    sigma,
			CavitationStatus:   status,
			TrimRecommendation: trim,
			DPSizing:           dpSizing,
		},
	}, nil
}
