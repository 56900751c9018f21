package valvedata

import (
	"sort"
	"testing"

	"valve-sizing/core/types"
)

func TestCoefficientsKnownEntry(t *testing.T) {
	c := Coefficients(types.Globe, "Standard, Cage-Guided")
	if c.FL != 0.90 || c.Kc != 0.70 || c.Xt != 0.75 || c.Rangeability != 50 {
		t.Errorf("unexpected coefficients: %+v", c)
	}

	c = Coefficients(types.Butterfly, "High-Performance, Double Offset")
	if c.FL != 0.85 || c.Xt != 0.55 || c.Rangeability != 50 {
		t.Errorf("unexpected coefficients: %+v", c)
	}
}

func TestCoefficientsUnknownFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name      string
		valveType types.ValveType
		style     string
	}{
		{"unknown style", types.Globe, "Triple Offset"},
		{"unknown type", types.ValveType("Gate"), "Standard"},
		{"empty key", types.ValveType(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Coefficients(tt.valveType, tt.style)
			if c != Default {
				t.Errorf("Coefficients(%q, %q) = %+v, want default entry", tt.valveType, tt.style, c)
			}
		})
	}
}

func TestStylesOrdered(t *testing.T) {
	styles := Styles(types.Globe)
	want := []string{
		"Standard, Cage-Guided",
		"Low-Noise, Multi-Path",
		"Anti-Cavitation, Multi-Stage",
		"Port-Guided, Quick Opening",
	}
	if len(styles) != len(want) {
		t.Fatalf("got %d styles, want %d", len(styles), len(want))
	}
	for i := range want {
		if styles[i] != want[i] {
			t.Errorf("styles[%d] = %q, want %q", i, styles[i], want[i])
		}
	}

	// Every listed style must resolve to a real entry
	for _, vt := range []types.ValveType{types.Globe, types.BallSegmented, types.Butterfly} {
		for _, style := range Styles(vt) {
			if Coefficients(vt, style) == Default {
				t.Errorf("listed style %s/%q resolves to the default entry", vt, style)
			}
		}
	}
}

func TestStylesUnknownType(t *testing.T) {
	styles := Styles(types.ValveType("Gate"))
	if len(styles) != 1 || styles[0] != DefaultStyleName {
		t.Errorf("Styles(unknown) = %v, want single placeholder", styles)
	}
}

func TestRatedCv(t *testing.T) {
	if got := RatedCv(2); got != 50 {
		t.Errorf("RatedCv(2) = %v, want 50", got)
	}
	if got := RatedCv(72); got != 65000 {
		t.Errorf("RatedCv(72) = %v, want 65000", got)
	}
	// Unrecognized sizes resolve to the documented default
	if got := RatedCv(5); got != DefaultRatedCv {
		t.Errorf("RatedCv(5) = %v, want default %v", got, DefaultRatedCv)
	}
	if got := RatedCv(-1); got != DefaultRatedCv {
		t.Errorf("RatedCv(-1) = %v, want default %v", got, DefaultRatedCv)
	}
}

func TestRatedCvMonotonic(t *testing.T) {
	sizes := make([]int, 0, len(ratedCvs))
	for size := range ratedCvs {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	for i := 1; i < len(sizes); i++ {
		if ratedCvs[sizes[i]] <= ratedCvs[sizes[i-1]] {
			t.Errorf("rated Cv not increasing from %d\" to %d\"", sizes[i-1], sizes[i])
		}
	}
}

func TestSizesFor(t *testing.T) {
	globe := SizesFor(types.Globe)
	if globe[0] != 1 || globe[len(globe)-1] != 24 {
		t.Errorf("globe sizes = %v, want 1..24", globe)
	}

	rotary := SizesFor(types.Butterfly)
	if rotary[len(rotary)-1] != 72 {
		t.Errorf("rotary sizes end at %d, want 72", rotary[len(rotary)-1])
	}
	if len(rotary) != len(globe)+8 {
		t.Errorf("rotary size count = %d, want %d", len(rotary), len(globe)+8)
	}

	// Every size must have a rated Cv entry
	for _, size := range rotary {
		if _, ok := ratedCvs[size]; !ok {
			t.Errorf("size %d\" has no rated Cv entry", size)
		}
	}
}
