// Package sizing - Gas/vapor Cv calculation
package sizing

import (
	"math"

	"valve-sizing/core/types"
	"valve-sizing/core/units"
	"valve-sizing/internal/errors"
)

// Gas calculates the required Cv for gas or vapor service.
//
// xt is the terminal pressure drop ratio factor for the selected valve
// style. At exactly x == Xt*Fk the flow is treated as choked, so the
// sizing ratio never exceeds the choked threshold.
func Gas(in types.ProcessInput, xt float64) (*types.SizingResult, error) {
	p1 := units.Pressure(in.P1, in.UnitSystem, units.PSIA)
	p2 := units.Pressure(in.P2, in.UnitSystem, units.PSIA)
	t1 := units.Temperature(in.T1, in.UnitSystem, units.Rankine)
	flow := units.GasFlow(in.FlowRate, in.UnitSystem, units.SCFH)

	// Ratio of specific heats factor
	fk := in.K / 1.40

	// Pressure drop ratio and choked threshold
	x := (p1 - p2) / p1
	xChoked := xt * fk

	isChoked := x >= xChoked
	xSizing := x
	if isChoked {
		xSizing = xChoked
	}

	// Expansion factor
	y := 1 - xSizing/(3*fk*xt)

	// Cv = Q / (1360 * Y * P1 * sqrt(x / (MW * T1 * Z)))
	denominator := 1360 * y * p1 * math.Sqrt(xSizing/(in.MW*t1*in.Z))
	if denominator == 0 {
		return nil, errors.Calculation("gas sizing denominator is zero; check inputs")
	}

	cv := flow / denominator

	return &types.SizingResult{
		Cv: cv,
		Gas: &types.GasAnalysis{
			IsChoked:                isChoked,
			ExpansionFactorY:        y,
			PressureDropRatioX:      x,
			ChokedPressureDropRatio: xChoked,
		},
	}, nil
}
