// Package materials recommends valve construction materials from the
// fluid nature and inlet temperature, cross-checked against common
// industry standards. A simple decision table, documented for
// completeness.
package materials

import (
	"valve-sizing/core/types"
	"valve-sizing/core/units"
)

// Temperature thresholds in degrees C
const (
	// highTempC is roughly 800F; above it the body needs Chrome-Moly
	highTempC = 427.0

	// lowTempC is roughly -20F; below it the body needs CF8M
	lowTempC = -29.0
)

// Select recommends body/trim materials plus fixed bolting and gasket
// specs for the given process conditions.
func Select(in types.ProcessInput) *types.MaterialResult {
	body := "Carbon Steel (ASTM A216 WCB)"
	trim := "Stainless Steel (316 SS)"

	switch in.FluidNature {
	case types.NatureCorrosive:
		body = "Stainless Steel (ASTM A351 CF8M)"
		trim = "Alloy 20 or Hastelloy C"
	case types.NatureAbrasive:
		trim = "Stellite Hard Facing or Ceramic"
	case types.NatureFlashingCavitating:
		trim = "Stellite Hard Facing on 316 SS Base"
	}

	// Temperature overrides the nature-based body choice
	tempC := units.Temperature(in.T1, in.UnitSystem, units.Celsius)
	if tempC > highTempC {
		body = "Chrome-Moly (ASTM A217 C5/C12)"
	} else if tempC < lowTempC {
		body = "Stainless Steel (ASTM A351 CF8M)"
	}

	compliance := "Materials selected are generally compliant with NACE MR0175 and ASME B16.34 for standard service. Final verification against specific service conditions is required."
	if in.FluidNature == types.NatureCorrosive {
		compliance += " Sour service (NACE) compliance for selected alloys must be verified."
	}

	return &types.MaterialResult{
		BodyMaterial:    body,
		TrimMaterial:    trim,
		Bolting:         "ASTM A193 B7 / A194 2H",
		Gasket:          "Spiral Wound 316SS/Graphite",
		ComplianceCheck: compliance,
	}
}
