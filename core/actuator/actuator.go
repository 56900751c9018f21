// Package actuator estimates the required actuator thrust or torque.
//
// Simplified estimation for preliminary selection; vendor software is
// required for final actuator sizing.
package actuator

import (
	"fmt"
	"math"

	"valve-sizing/core/types"
	"valve-sizing/core/units"
)

// Safety factors applied over the raw unbalanced load
const (
	thrustSafetyFactor = 1.3
	torqueSafetyFactor = 1.5
)

// Size estimates the actuator requirement for the selected valve.
// Globe valves produce a linear thrust figure, rotary types a torque
// figure. The fail-safe position names the actuator action but does not
// change the magnitude.
func Size(in types.ProcessInput, valve types.ValveSelection, failPosition types.FailPosition) *types.ActuatorResult {
	dp := units.Pressure(in.DP(), in.UnitSystem, units.PSI)
	size := float64(valve.NominalSize)
	display := units.ForSystem(in.UnitSystem)

	if !valve.Type.IsRotary() {
		// Linear thrust: seat area times pressure drop dominates the
		// unbalanced load
		seatArea := math.Pi * (size / 2) * (size / 2)
		force := seatArea * dp * thrustSafetyFactor
		force = units.Force(force, display.Force)

		return &types.ActuatorResult{
			RequiredForce: force,
			Unit:          display.Force,
			Recommendation: fmt.Sprintf(
				"A pneumatic spring-diaphragm or piston actuator capable of providing at least %.2f %s of thrust is recommended.",
				force, display.Force),
		}
	}

	// Rotary torque from an empirical torque factor in ft-lbf per psi
	// of dP; hydrodynamic and bearing friction terms are folded in
	torqueFactor := 0.7 * size
	if valve.Type == types.Butterfly {
		torqueFactor = 0.5 * size
	}
	torque := torqueFactor * dp * torqueSafetyFactor
	torque = units.Torque(torque, display.Torque)

	return &types.ActuatorResult{
		RequiredTorque: torque,
		Unit:           display.Torque,
		Recommendation: fmt.Sprintf(
			"A pneumatic or electric rotary actuator (e.g., rack-and-pinion) capable of providing at least %.2f %s of torque is recommended.",
			torque, display.Torque),
	}
}
