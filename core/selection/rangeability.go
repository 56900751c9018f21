// Package selection evaluates a valve selection against the calculated
// Cv: combining the rated Cv for the nominal size with the inherent
// rangeability of the style classifies the selection as oversized,
// undersized or acceptable.
package selection

import (
	"fmt"

	"valve-sizing/core/types"
	"valve-sizing/core/valvedata"
)

// Status classification text
const (
	StatusOversized  = "Valve Oversized"
	StatusUndersized = "Valve Undersized"
)

// Evaluate classifies a selection. Boundary values are acceptable:
// cv equal to the rated Cv reports 100% open, cv equal to the minimum
// controllable Cv is still controllable.
func Evaluate(cv float64, nominalSize int, valveType types.ValveType, valveStyle string) *types.RangeabilityResult {
	coeff := valvedata.Coefficients(valveType, valveStyle)
	ratedCv := valvedata.RatedCv(nominalSize)
	minCv := ratedCv / coeff.Rangeability

	result := &types.RangeabilityResult{
		InherentRangeability: coeff.Rangeability,
		RatedCv:              ratedCv,
		MinControllableCv:    minCv,
	}

	switch {
	case cv < minCv:
		result.Status = StatusOversized
	case cv > ratedCv:
		result.Status = StatusUndersized
	default:
		opening := cv / ratedCv * 100
		result.OpeningPercent = opening
		result.Status = fmt.Sprintf("Acceptable (%.1f%% open)", opening)
	}

	return result
}
