// Package types - Calculation result records
package types

// LiquidAnalysis holds the liquid-service flashing and cavitation results
type LiquidAnalysis struct {
	// IsFlashing reports whether outlet pressure is below vapor pressure
	IsFlashing bool `json:"is_flashing"`

	// CavitationIndex is sigma = (P1 - Pv) / (P1 - P2)
	CavitationIndex float64 `json:"cavitation_index"`

	// CavitationStatus classifies the damage risk
	CavitationStatus CavitationStatus `json:"cavitation_status"`

	// TrimRecommendation is advisory text for trim selection
	TrimRecommendation string `json:"trim_recommendation"`

	// DPSizing is the pressure drop used for sizing, in psi
	DPSizing float64 `json:"dp_sizing"`
}

// GasAnalysis holds the gas-service choked flow results
type GasAnalysis struct {
	// IsChoked reports whether flow is choked (critical)
	IsChoked bool `json:"is_choked"`

	// ExpansionFactorY is the gas expansion factor
	ExpansionFactorY float64 `json:"expansion_factor_y"`

	// PressureDropRatioX is x = (P1 - P2) / P1
	PressureDropRatioX float64 `json:"pressure_drop_ratio_x"`

	// ChokedPressureDropRatio is the choked threshold Xt * Fk
	ChokedPressureDropRatio float64 `json:"choked_pressure_drop_ratio"`
}

// SizingResult is the output of the liquid or gas Cv calculation.
// Exactly one of Liquid/Gas is populated, chosen by the fluid type.
type SizingResult struct {
	// Cv is the required flow coefficient
	Cv float64 `json:"cv"`

	// Liquid holds liquid-service analysis, nil for gas service
	Liquid *LiquidAnalysis `json:"liquid,omitempty"`

	// Gas holds gas-service analysis, nil for liquid service
	Gas *GasAnalysis `json:"gas,omitempty"`
}

// NoiseResult is the output of the noise predictor
type NoiseResult struct {
	// TotalNoiseDBA is the predicted level at 1 m, clamped to [50, 120]
	TotalNoiseDBA float64 `json:"total_noise_dba"`

	// Recommendation is advisory text for noise treatment
	Recommendation string `json:"noise_recommendation"`
}

// ActuatorResult is the output of the actuator sizing calculation.
// Globe valves report thrust; rotary types report torque.
type ActuatorResult struct {
	// RequiredForce is the thrust for linear (Globe) valves, in the
	// display unit system (lbf or N). Zero for rotary types.
	RequiredForce float64 `json:"required_force"`

	// RequiredTorque is the torque for rotary valves, in the display
	// unit system (ft-lbf or Nm). Zero for Globe.
	RequiredTorque float64 `json:"required_torque"`

	// Unit is the display unit of the reported magnitude
	Unit string `json:"unit"`

	// Recommendation is advisory text naming an actuator type
	Recommendation string `json:"actuator_recommendation"`
}

// MaterialResult is the output of the material selector
type MaterialResult struct {
	BodyMaterial string `json:"body_material"`
	TrimMaterial string `json:"trim_material"`
	Bolting      string `json:"bolting"`
	Gasket       string `json:"gasket"`

	// ComplianceCheck is the standards-compliance disclaimer text
	ComplianceCheck string `json:"compliance_check"`
}

// RangeabilityResult classifies the valve selection against the
// calculated Cv
type RangeabilityResult struct {
	// InherentRangeability is the max/min controllable Cv ratio for
	// the selected style
	InherentRangeability float64 `json:"inherent_rangeability"`

	// RatedCv is the typical maximum Cv for the selected size
	RatedCv float64 `json:"rated_cv"`

	// MinControllableCv is RatedCv / InherentRangeability
	MinControllableCv float64 `json:"min_controllable_cv"`

	// Status is the classification text, e.g. "Valve Oversized" or
	// "Acceptable (62.4% open)"
	Status string `json:"rangeability_status"`

	// OpeningPercent is the operating opening when Status is
	// acceptable, zero otherwise
	OpeningPercent float64 `json:"opening_percent,omitempty"`
}

// Report aggregates everything the engine produces for one case
type Report struct {
	// Case echoes the input the report was produced from
	Case Case `json:"case"`

	Sizing       SizingResult       `json:"sizing"`
	Rangeability RangeabilityResult `json:"rangeability"`
	Noise        NoiseResult        `json:"noise"`
	Actuator     ActuatorResult     `json:"actuator"`
	Materials    MaterialResult     `json:"materials"`

	// RecommendedCharacteristic is the characteristic suggested from
	// the process conditions
	RecommendedCharacteristic ValveCharacteristic `json:"recommended_characteristic"`
}
