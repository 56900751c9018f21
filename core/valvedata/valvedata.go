// Package valvedata holds the static valve characteristics reference
// tables: characteristic coefficients keyed by (valve type, valve style)
// and typical rated Cv by nominal size.
//
// Values are representative for general engineering purposes; a
// production selection would come from manufacturer catalogs. Unknown
// keys never fail, they resolve to documented defaults so partial data
// stays forward compatible.
package valvedata

import (
	"valve-sizing/core/types"
)

// Coefficient is one characteristic coefficient entry
type Coefficient struct {
	// FL is the liquid pressure recovery factor
	FL float64 `json:"fl"`

	// Kc is the cavitation index factor
	Kc float64 `json:"kc"`

	// Xt is the terminal pressure drop ratio factor
	Xt float64 `json:"xt"`

	// Rangeability is the inherent max/min controllable Cv ratio
	Rangeability float64 `json:"rangeability"`

	// Style describes the trim design
	Style string `json:"style"`
}

// Default is the entry returned for unknown (type, style) pairs
var Default = Coefficient{
	FL:           0.90,
	Kc:           0.70,
	Xt:           0.75,
	Rangeability: 30,
	Style:        "Default general purpose values.",
}

// DefaultRatedCv is the rated Cv returned for unknown nominal sizes
const DefaultRatedCv = 50.0

// DefaultStyleName is the placeholder style for unknown valve types
const DefaultStyleName = "Default Style"

var coefficients = map[types.ValveType]map[string]Coefficient{
	types.Globe: {
		"Standard, Cage-Guided": {
			FL: 0.90, Kc: 0.70, Xt: 0.75, Rangeability: 50,
			Style: "General purpose, excellent throttling, moderate capacity.",
		},
		"Low-Noise, Multi-Path": {
			FL: 0.95, Kc: 0.80, Xt: 0.80, Rangeability: 40,
			Style: "Designed to attenuate aerodynamic noise in gas service.",
		},
		"Anti-Cavitation, Multi-Stage": {
			FL: 0.98, Kc: 0.85, Xt: 0.85, Rangeability: 30,
			Style: "Reduces pressure in multiple steps to prevent cavitation damage.",
		},
		"Port-Guided, Quick Opening": {
			FL: 0.85, Kc: 0.65, Xt: 0.70, Rangeability: 20,
			Style: "Best for on/off service, poor throttling.",
		},
	},
	types.BallSegmented: {
		"Standard V-Notch": {
			FL: 0.80, Kc: 0.60, Xt: 0.40, Rangeability: 100,
			Style: "Good rangeability and throttling, suitable for slurries.",
		},
		"High-Performance": {
			FL: 0.75, Kc: 0.55, Xt: 0.35, Rangeability: 80,
			Style: "Higher capacity, but less pressure recovery.",
		},
	},
	types.Butterfly: {
		"Standard, Centric Disc": {
			FL: 0.70, Kc: 0.50, Xt: 0.30, Rangeability: 20,
			Style: "Low cost, high capacity, limited throttling range (typically 60-degree opening).",
		},
		"High-Performance, Double Offset": {
			FL: 0.85, Kc: 0.65, Xt: 0.55, Rangeability: 50,
			Style: "Better shutoff and control than standard butterfly valves.",
		},
	},
}

// styleOrder preserves catalog declaration order; Go maps do not.
var styleOrder = map[types.ValveType][]string{
	types.Globe: {
		"Standard, Cage-Guided",
		"Low-Noise, Multi-Path",
		"Anti-Cavitation, Multi-Stage",
		"Port-Guided, Quick Opening",
	},
	types.BallSegmented: {
		"Standard V-Notch",
		"High-Performance",
	},
	types.Butterfly: {
		"Standard, Centric Disc",
		"High-Performance, Double Offset",
	},
}

// ratedCvs maps nominal size (inches) to the typical rated Cv for a
// high-capacity valve of that size.
var ratedCvs = map[int]float64{
	1:  12,
	2:  50,
	3:  110,
	4:  170,
	6:  400,
	8:  700,
	10: 1080,
	12: 1750,
	14: 2400,
	16: 3200,
	18: 4100,
	20: 5000,
	24: 7200,
	30: 11000,
	36: 16000,
	42: 22000,
	48: 28000,
	54: 36000,
	60: 45000,
	66: 54000,
	72: 65000,
}

// globeSizes lists the nominal sizes available for Globe valves; rotary
// types extend the range upward.
var globeSizes = []int{1, 2, 3, 4, 6, 8, 10, 12, 14, 16, 18, 20, 24}

var largeSizes = append(append([]int{}, globeSizes...), 30, 36, 42, 48, 54, 60, 66, 72)

// Coefficients returns the characteristic coefficients for a valve type
// and style. Unknown pairs resolve to Default.
func Coefficients(valveType types.ValveType, style string) Coefficient {
	if styles, ok := coefficients[valveType]; ok {
		if c, ok := styles[style]; ok {
			return c
		}
	}
	return Default
}

// Styles returns the available styles for a valve type in catalog order.
// Unknown types resolve to a single placeholder style.
func Styles(valveType types.ValveType) []string {
	if order, ok := styleOrder[valveType]; ok {
		out := make([]string, len(order))
		copy(out, order)
		return out
	}
	return []string{DefaultStyleName}
}

// RatedCv returns the typical rated Cv for a nominal size in inches.
// Unknown sizes resolve to DefaultRatedCv.
func RatedCv(nominalSize int) float64 {
	if cv, ok := ratedCvs[nominalSize]; ok {
		return cv
	}
	return DefaultRatedCv
}

// SizesFor returns the nominal sizes (inches) offered for a valve type.
func SizesFor(valveType types.ValveType) []int {
	src := largeSizes
	if valveType == types.Globe {
		src = globeSizes
	}
	out := make([]int, len(src))
	copy(out, src)
	return out
}
