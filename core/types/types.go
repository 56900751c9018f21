// Package types defines the input and result records for the sizing engine.
// All records are plain values constructed fresh per calculation; the engine
// keeps no state between calls.
package types

// UnitSystem identifies a measurement unit system
type UnitSystem string

const (
	Metric   UnitSystem = "Metric"
	Imperial UnitSystem = "Imperial"
)

// String returns the string representation
func (s UnitSystem) String() string {
	return string(s)
}

// FluidType identifies the process medium phase
type FluidType string

const (
	Liquid FluidType = "Liquid"
	Gas    FluidType = "Gas"
)

// FluidNature characterizes the fluid for material selection
type FluidNature string

const (
	NatureClean              FluidNature = "Clean"
	NatureCorrosive          FluidNature = "Corrosive"
	NatureAbrasive           FluidNature = "Abrasive"
	NatureFlashingCavitating FluidNature = "Flashing/Cavitating"
)

// ValveType identifies the mechanical valve type
type ValveType string

const (
	Globe         ValveType = "Globe"
	BallSegmented ValveType = "Ball (Segmented)"
	Butterfly     ValveType = "Butterfly"
)

// IsRotary reports whether the valve type is torque-operated
func (t ValveType) IsRotary() bool {
	return t == BallSegmented || t == Butterfly
}

// ValveCharacteristic identifies the inherent flow characteristic
type ValveCharacteristic string

const (
	EqualPercentage ValveCharacteristic = "Equal Percentage"
	Linear          ValveCharacteristic = "Linear"
	QuickOpening    ValveCharacteristic = "Quick Opening"
)

// FailPosition identifies the valve position on loss of power/air
type FailPosition string

const (
	FailClose FailPosition = "Fail Close (FC)"
	FailOpen  FailPosition = "Fail Open (FO)"
)

// CavitationStatus classifies the liquid-service damage risk
type CavitationStatus string

const (
	NoSignificantCavitation CavitationStatus = "No Significant Cavitation"
	CavitationLikely        CavitationStatus = "Cavitation Likely"
	FlashingOccurs          CavitationStatus = "Flashing Occurs"
)
