// Package characteristic provides the inherent and estimated installed
// valve characteristic curves as data series. Plot rendering belongs to
// external consumers; this package only computes the points.
package characteristic

import (
	"math"

	"valve-sizing/core/types"
)

// installedLossFactor approximates system pressure losses when deriving
// the installed curve from the inherent one.
const installedLossFactor = 0.85

// Recommend suggests a flow characteristic from the process conditions.
// When the valve takes a large share of the system pressure drop the
// remaining system is closer to linear and an equal-percentage valve
// compensates better.
func Recommend(in types.ProcessInput) types.ValveCharacteristic {
	if in.P1 <= 0 {
		return types.Linear
	}
	if in.DP()/in.P1 > 0.35 {
		return types.EqualPercentage
	}
	return types.Linear
}

// CurvePoint is one sample of the characteristic curves
type CurvePoint struct {
	// Travel is percent open, 0-100
	Travel float64 `json:"travel"`

	// InherentCv assumes constant pressure drop across the valve
	InherentCv float64 `json:"inherent_cv"`

	// InstalledCv is the estimated Cv under system pressure losses
	InstalledCv float64 `json:"installed_cv"`
}

// Curve samples the inherent and estimated installed characteristic at
// each whole percent of travel (101 points).
func Curve(char types.ValveCharacteristic, ratedCv, rangeability float64) []CurvePoint {
	points := make([]CurvePoint, 101)
	for i := range points {
		travel := float64(i)
		h := travel / 100

		var inherent float64
		switch char {
		case types.Linear:
			inherent = h * ratedCv
		case types.QuickOpening:
			inherent = math.Sqrt(h) * ratedCv
		default: // Equal Percentage
			inherent = ratedCv * math.Pow(rangeability, h-1)
		}

		inherent = math.Max(0, math.Min(inherent, ratedCv))

		points[i] = CurvePoint{
			Travel:      travel,
			InherentCv:  inherent,
			InstalledCv: inherent * installedLossFactor,
		}
	}
	return points
}

// OperatingPoint returns the percent travel at which the valve passes
// the calculated Cv, and whether that point lies on the curve.
func OperatingPoint(calculatedCv, ratedCv float64) (float64, bool) {
	if ratedCv <= 0 {
		return 0, false
	}
	travel := calculatedCv / ratedCv * 100
	return travel, travel >= 0 && travel <= 100
}
