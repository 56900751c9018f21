package sizing

import (
	"math"
	"testing"

	"valve-sizing/core/types"
	"valve-sizing/internal/errors"
)

func waterCase() types.ProcessInput {
	return types.ProcessInput{
		FluidType:  types.Liquid,
		FluidName:  "Water",
		P1:         10,
		P2:         5,
		T1:         25,
		FlowRate:   100,
		UnitSystem: types.Metric,
		Rho:        1000,
		Pv:         0.03,
		Pc:         221,
	}
}

func TestLiquidWaterExample(t *testing.T) {
	// p1=10 bar, p2=5 bar, 100 m3/hr of water: Gf=1.0, dP=72.519 psi,
	// Cv = 440.287 / sqrt(72.519) = 51.70
	result, err := Liquid(waterCase(), 0.9, 0.7)
	if err != nil {
		t.Fatalf("Liquid() error: %v", err)
	}

	if math.Abs(result.Cv-51.70) > 0.05 {
		t.Errorf("Cv = %.3f, want 51.70", result.Cv)
	}
	if result.Liquid == nil {
		t.Fatal("liquid analysis missing")
	}
	if result.Liquid.IsFlashing {
		t.Error("water case reported flashing")
	}
	if result.Liquid.CavitationStatus != types.NoSignificantCavitation {
		t.Errorf("cavitation status = %q, want %q", result.Liquid.CavitationStatus, types.NoSignificantCavitation)
	}
	if math.Abs(result.Liquid.DPSizing-72.519) > 0.001 {
		t.Errorf("dP sizing = %.3f psi, want 72.519", result.Liquid.DPSizing)
	}
	// sigma = (145.038 - 0.435) / 72.519
	if math.Abs(result.Liquid.CavitationIndex-1.994) > 0.001 {
		t.Errorf("sigma = %.4f, want 1.994", result.Liquid.CavitationIndex)
	}
	if result.Gas != nil {
		t.Error("gas analysis present on liquid result")
	}
}

func TestLiquidCvMonotonicInFlow(t *testing.T) {
	in := waterCase()
	var prev float64
	for _, flow := range []float64{10, 50, 100, 200, 500} {
		in.FlowRate = flow
		result, err := Liquid(in, 0.9, 0.7)
		if err != nil {
			t.Fatalf("Liquid(flow=%v) error: %v", flow, err)
		}
		if result.Cv <= prev {
			t.Errorf("Cv not increasing: flow %v gave %.3f after %.3f", flow, result.Cv, prev)
		}
		prev = result.Cv
	}
}

func TestLiquidInvalidPressuresFailValidation(t *testing.T) {
	tests := []struct {
		name string
		p1   float64
		p2   float64
		pv   float64
	}{
		{"outlet above inlet", 5, 10, 0.03},
		{"equal pressures", 5, 5, 0.03},
		{"vapor pressure above inlet", 10, 5, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := waterCase()
			in.P1, in.P2, in.Pv = tt.p1, tt.p2, tt.pv
			_, err := Liquid(in, 0.9, 0.7)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.IsType(err, errors.TypeValidation) {
				t.Errorf("error type = %v, want validation", err)
			}
		})
	}
}

func TestLiquidFlashing(t *testing.T) {
	in := waterCase()
	in.P2 = 1
	in.Pv = 2 // outlet below vapor pressure

	result, err := Liquid(in, 0.9, 0.7)
	if err != nil {
		t.Fatalf("Liquid() error: %v", err)
	}
	if !result.Liquid.IsFlashing {
		t.Error("expected flashing")
	}
	if result.Liquid.CavitationStatus != types.FlashingOccurs {
		t.Errorf("status = %q, want %q", result.Liquid.CavitationStatus, types.FlashingOccurs)
	}
	if result.Liquid.TrimRecommendation == "" {
		t.Error("flashing case has no trim recommendation")
	}
}

func TestLiquidCavitationLikely(t *testing.T) {
	// sigma = (145.04 - 29.01) / (145.04 - 43.51) = 1.143 < 1/0.7
	in := waterCase()
	in.P2 = 3
	in.Pv = 2

	result, err := Liquid(in, 0.9, 0.7)
	if err != nil {
		t.Fatalf("Liquid() error: %v", err)
	}
	if result.Liquid.IsFlashing {
		t.Error("unexpected flashing")
	}
	if result.Liquid.CavitationStatus != types.CavitationLikely {
		t.Errorf("status = %q, want %q (sigma=%.3f)",
			result.Liquid.CavitationStatus, types.CavitationLikely, result.Liquid.CavitationIndex)
	}
}

func TestLiquidChokedDropLimitsSizing(t *testing.T) {
	// High vapor pressure pulls dP allowable below the actual drop
	in := waterCase()
	in.P2 = 3
	in.Pv = 2

	result, err := Liquid(in, 0.9, 0.7)
	if err != nil {
		t.Fatalf("Liquid() error: %v", err)
	}

	actualDrop := (in.P1 - in.P2) * 14.5038
	if result.Liquid.DPSizing >= actualDrop {
		t.Errorf("dP sizing %.3f not limited below actual drop %.3f", result.Liquid.DPSizing, actualDrop)
	}
}

func TestLiquidImperialInputs(t *testing.T) {
	// Imperial inputs are already in working units
	in := types.ProcessInput{
		FluidType:  types.Liquid,
		P1:         145.038,
		P2:         72.519,
		T1:         77,
		FlowRate:   440.287,
		UnitSystem: types.Imperial,
		Rho:        1.0, // specific gravity
		Pv:         0.435,
		Pc:         3205,
	}

	result, err := Liquid(in, 0.9, 0.7)
	if err != nil {
		t.Fatalf("Liquid() error: %v", err)
	}
	if math.Abs(result.Cv-51.70) > 0.05 {
		t.Errorf("Cv = %.3f, want 51.70", result.Cv)
	}
}
