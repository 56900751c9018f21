package actuator

import (
	"math"
	"strings"
	"testing"

	"valve-sizing/core/types"
)

func TestGlobeThrustImperial(t *testing.T) {
	in := types.ProcessInput{
		FluidType:  types.Liquid,
		P1:         250,
		P2:         150,
		UnitSystem: types.Imperial,
	}
	valve := types.ValveSelection{Type: types.Globe, NominalSize: 4}

	result := Size(in, valve, types.FailClose)

	// seat area = pi * 2^2 = 12.566 in2, force = area * 100 psi * 1.3
	want := math.Pi * 4 * 100 * 1.3
	if math.Abs(result.RequiredForce-want) > 0.01 {
		t.Errorf("force = %.2f, want %.2f", result.RequiredForce, want)
	}
	if result.RequiredTorque != 0 {
		t.Errorf("globe valve reported torque %.2f", result.RequiredTorque)
	}
	if result.Unit != "lbf" {
		t.Errorf("unit = %q, want lbf", result.Unit)
	}
	if !strings.Contains(result.Recommendation, "thrust") {
		t.Errorf("unexpected recommendation: %q", result.Recommendation)
	}
}

func TestGlobeThrustMetricDisplay(t *testing.T) {
	in := types.ProcessInput{
		FluidType:  types.Liquid,
		P1:         10,
		P2:         5,
		UnitSystem: types.Metric,
	}
	valve := types.ValveSelection{Type: types.Globe, NominalSize: 2}

	result := Size(in, valve, types.FailClose)

	// dp = 72.519 psi, area = pi in2, force = pi*72.519*1.3 lbf -> N
	want := math.Pi * 72.519 * 1.3 * 4.44822
	if math.Abs(result.RequiredForce-want) > 0.05 {
		t.Errorf("force = %.2f N, want %.2f", result.RequiredForce, want)
	}
	if result.Unit != "N" {
		t.Errorf("unit = %q, want N", result.Unit)
	}
}

func TestButterflyTorqueImperial(t *testing.T) {
	in := types.ProcessInput{
		FluidType:  types.Gas,
		P1:         100,
		P2:         50,
		UnitSystem: types.Imperial,
	}
	valve := types.ValveSelection{Type: types.Butterfly, NominalSize: 6}

	result := Size(in, valve, types.FailOpen)

	// torque factor = 0.5*6 = 3 ft-lbf/psi, torque = 3 * 50 * 1.5
	if math.Abs(result.RequiredTorque-225) > 1e-9 {
		t.Errorf("torque = %.2f, want 225", result.RequiredTorque)
	}
	if result.RequiredForce != 0 {
		t.Errorf("rotary valve reported thrust %.2f", result.RequiredForce)
	}
	if result.Unit != "ft-lbf" {
		t.Errorf("unit = %q, want ft-lbf", result.Unit)
	}
	if !strings.Contains(result.Recommendation, "torque") {
		t.Errorf("unexpected recommendation: %q", result.Recommendation)
	}
}

func TestBallTorqueFactorHigherThanButterfly(t *testing.T) {
	in := types.ProcessInput{
		FluidType:  types.Liquid,
		P1:         100,
		P2:         50,
		UnitSystem: types.Imperial,
	}
	butterfly := Size(in, types.ValveSelection{Type: types.Butterfly, NominalSize: 6}, types.FailClose)
	ball := Size(in, types.ValveSelection{Type: types.BallSegmented, NominalSize: 6}, types.FailClose)

	// 0.7 vs 0.5 torque factor at equal size and dP
	want := butterfly.RequiredTorque * 0.7 / 0.5
	if math.Abs(ball.RequiredTorque-want) > 1e-9 {
		t.Errorf("ball torque = %.2f, want %.2f", ball.RequiredTorque, want)
	}
}

func TestRotaryTorqueMetricDisplay(t *testing.T) {
	in := types.ProcessInput{
		FluidType:  types.Liquid,
		P1:         10,
		P2:         5,
		UnitSystem: types.Metric,
	}
	valve := types.ValveSelection{Type: types.Butterfly, NominalSize: 4}

	result := Size(in, valve, types.FailClose)

	// 2 ft-lbf/psi * 72.519 psi * 1.5 -> Nm
	want := 2 * 72.519 * 1.5 * 1.35582
	if math.Abs(result.RequiredTorque-want) > 0.05 {
		t.Errorf("torque = %.2f Nm, want %.2f", result.RequiredTorque, want)
	}
	if result.Unit != "Nm" {
		t.Errorf("unit = %q, want Nm", result.Unit)
	}
}
