// Package engine orchestrates the calculators into a complete sizing
// report. The engine is pure: every call works only on its explicit
// case record, so concurrent callers need no coordination.
package engine

import (
	"go.uber.org/zap"

	"valve-sizing/core/actuator"
	"valve-sizing/core/characteristic"
	"valve-sizing/core/materials"
	"valve-sizing/core/noise"
	"valve-sizing/core/selection"
	"valve-sizing/core/sizing"
	"valve-sizing/core/types"
	"valve-sizing/core/valvedata"
	"valve-sizing/internal/errors"
	"valve-sizing/internal/logging"
)

// Run validates a case and produces the full sizing report: Cv sizing,
// rangeability, noise, actuator and material results plus the
// recommended flow characteristic. Any step error is returned typed and
// no partial report is kept.
func Run(c types.Case) (*types.Report, error) {
	if err := c.Process.Validate(); err != nil {
		return nil, err
	}

	coeff := valvedata.Coefficients(c.Valve.Type, c.Valve.Style)

	// Style coefficients are defaults; explicit vendor data on the
	// selection wins
	fl := c.Valve.FL
	if fl == 0 {
		fl = coeff.FL
	}
	kc := c.Valve.Kc
	if kc == 0 {
		kc = coeff.Kc
	}

	logging.Debug("running sizing case",
		zap.String("fluid_type", string(c.Process.FluidType)),
		zap.String("valve_type", string(c.Valve.Type)),
		zap.String("valve_style", c.Valve.Style))

	var sized *types.SizingResult
	var err error
	switch c.Process.FluidType {
	case types.Liquid:
		sized, err = sizing.Liquid(c.Process, fl, kc)
	case types.Gas:
		sized, err = sizing.Gas(c.Process, coeff.Xt)
	default:
		err = errors.Validationf("unknown fluid type: %q", c.Process.FluidType)
	}
	if err != nil {
		return nil, err
	}

	rangeability := selection.Evaluate(sized.Cv, c.Valve.NominalSize, c.Valve.Type, c.Valve.Style)

	noiseResult, err := noise.Predict(c.Process, c.Valve.Type, sized)
	if err != nil {
		return nil, err
	}

	actuatorResult := actuator.Size(c.Process, c.Valve, c.FailPosition)
	materialResult := materials.Select(c.Process)

	return &types.Report{
		Case:                      c,
		Sizing:                    *sized,
		Rangeability:              *rangeability,
		Noise:                     *noiseResult,
		Actuator:                  *actuatorResult,
		Materials:                 *materialResult,
		RecommendedCharacteristic: characteristic.Recommend(c.Process),
	}, nil
}

// CurveInputs returns everything an external plot consumer needs to draw
// the inherent vs installed characteristic for a finished report.
func CurveInputs(r *types.Report) ([]characteristic.CurvePoint, float64, bool) {
	char := r.Case.Valve.Characteristic
	if char == "" {
		char = r.RecommendedCharacteristic
	}
	points := characteristic.Curve(char, r.Rangeability.RatedCv, r.Rangeability.InherentRangeability)
	travel, onCurve := characteristic.OperatingPoint(r.Sizing.Cv, r.Rangeability.RatedCv)
	return points, travel, onCurve
}
