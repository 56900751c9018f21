// Package noise estimates the sound pressure level produced by a valve.
//
// The model is a simplified, representative form of IEC 60534-8-3 for
// liquid (cavitation/flashing driven) and aerodynamic (gas) noise. It is
// not a substitute for vendor-specific prediction software.
package noise

import (
	"math"

	"valve-sizing/core/types"
	"valve-sizing/internal/errors"
)

// Predicted levels are clamped to this range (dBA at 1 m)
const (
	MinDBA = 50.0
	MaxDBA = 120.0
)

// Fixed pipe wall correction, assuming standard schedule 40 pipe
const pipeCorrection = -5.0

// Predict estimates the total noise level at 1 m for a sized valve.
// Pressures enter in the input unit system; the dp terms are used as
// given, matching the relative nature of the empirical model.
func Predict(in types.ProcessInput, valveType types.ValveType, sizing *types.SizingResult) (*types.NoiseResult, error) {
	dp := in.DP()
	cv := sizing.Cv

	var base float64
	if in.FluidType == types.Liquid {
		// Liquid noise is primarily from cavitation/flashing
		arg := dp * cv
		if arg <= 0 {
			return nil, errors.Domain("noise model requires dP*Cv > 0 for liquid service")
		}
		switch {
		case sizing.Liquid != nil && sizing.Liquid.CavitationStatus == types.CavitationLikely:
			base = 80 + 10*math.Log10(arg)
		case sizing.Liquid != nil && sizing.Liquid.IsFlashing:
			base = 85 + 10*math.Log10(arg)
		default:
			base = 60 + 10*math.Log10(arg)
		}
	} else {
		// Gas noise is primarily aerodynamic; mach proxy from the
		// pressure drop ratio
		mach := 0.1 + 0.8*(dp/in.P1)
		if mach <= 0 || cv <= 0 {
			return nil, errors.Domain("noise model requires a positive mach proxy and Cv for gas service")
		}
		base = 70 + 20*math.Log10(mach*1000) + 10*math.Log10(cv)
	}

	total := base + transmissionLoss(valveType) + pipeCorrection
	total = math.Max(MinDBA, math.Min(MaxDBA, total))

	var recommendation string
	switch {
	case total > 110:
		recommendation = "Extreme noise level. A specialized low-noise, multi-stage valve and path treatment (insulation, heavy-wall pipe) are essential."
	case total > 85:
		recommendation = "High noise level. Consider a low-noise trim package. Source treatment (thicker pipe) or path treatment (acoustic insulation) may be required."
	default:
		recommendation = "Standard trim is acceptable from a noise perspective."
	}

	return &types.NoiseResult{
		TotalNoiseDBA:  total,
		Recommendation: recommendation,
	}, nil
}

// transmissionLoss adjusts for the valve body style
func transmissionLoss(valveType types.ValveType) float64 {
	switch valveType {
	case types.Globe:
		return -5
	case types.BallSegmented:
		return -10
	case types.Butterfly:
		return -15
	default:
		return 0
	}
}
