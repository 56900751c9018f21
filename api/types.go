// Package api - Request/response types
package api

import (
	"time"

	"valve-sizing/core/characteristic"
	"valve-sizing/core/types"
)

// SizeRequest is the body of POST /size
type SizeRequest struct {
	// Case is the sizing case to run
	Case types.Case `json:"case"`

	// IncludeCurve adds the characteristic curve series for plot
	// consumers
	IncludeCurve bool `json:"include_curve,omitempty"`
}

// SizeResponse is the body of a successful POST /size
type SizeResponse struct {
	// RequestID identifies this calculation
	RequestID string `json:"request_id"`

	// Timestamp is when the calculation ran
	Timestamp time.Time `json:"timestamp"`

	// Report is the full sizing report
	Report *types.Report `json:"report"`

	// Curve is the characteristic curve, when requested
	Curve []characteristic.CurvePoint `json:"curve,omitempty"`

	// OperatingTravel is the operating point travel percent, when the
	// curve was requested and the point lies on the curve
	OperatingTravel *float64 `json:"operating_travel,omitempty"`

	// Metadata describes how the result was produced
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata describes the calculation provenance
type ResponseMetadata struct {
	// InputHash is a deterministic hash of the request
	InputHash string `json:"input_hash"`

	// EngineVersion is the engine version that produced the result
	EngineVersion string `json:"engine_version"`

	// DurationMs is the calculation wall time
	DurationMs int64 `json:"duration_ms"`
}

// StylesResponse is the body of GET /catalog/styles
type StylesResponse struct {
	ValveType types.ValveType `json:"valve_type"`
	Styles    []string        `json:"styles"`
}

// RatedCvResponse is the body of GET /catalog/rated-cv
type RatedCvResponse struct {
	NominalSize int     `json:"nominal_size"`
	RatedCv     float64 `json:"rated_cv"`
}
