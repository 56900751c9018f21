package selection

import (
	"math"
	"strings"
	"testing"

	"valve-sizing/core/types"
)

// Globe "Standard, Cage-Guided" on a 2" body: rated Cv 50,
// rangeability 50:1, minimum controllable Cv 1.0
const (
	testStyle = "Standard, Cage-Guided"
	testSize  = 2
)

func TestEvaluateClassification(t *testing.T) {
	tests := []struct {
		name       string
		cv         float64
		wantStatus string
	}{
		{"well below minimum", 0.5, StatusOversized},
		{"above rated", 60, StatusUndersized},
		{"mid range", 25, "Acceptable (50.0% open)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.cv, testSize, types.Globe, testStyle)
			if result.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", result.Status, tt.wantStatus)
			}
		})
	}
}

func TestEvaluateBoundariesAreAcceptable(t *testing.T) {
	// cv equal to rated Cv is 100% open, not undersized
	atRated := Evaluate(50, testSize, types.Globe, testStyle)
	if !strings.HasPrefix(atRated.Status, "Acceptable") {
		t.Errorf("cv == rated Cv status = %q, want acceptable", atRated.Status)
	}
	if math.Abs(atRated.OpeningPercent-100) > 1e-9 {
		t.Errorf("opening = %v%%, want 100", atRated.OpeningPercent)
	}

	// cv equal to the minimum controllable Cv is still controllable
	atMin := Evaluate(1.0, testSize, types.Globe, testStyle)
	if !strings.HasPrefix(atMin.Status, "Acceptable") {
		t.Errorf("cv == min controllable status = %q, want acceptable", atMin.Status)
	}
}

func TestEvaluateReportsReferenceValues(t *testing.T) {
	result := Evaluate(25, testSize, types.Globe, testStyle)

	if result.RatedCv != 50 {
		t.Errorf("rated Cv = %v, want 50", result.RatedCv)
	}
	if result.InherentRangeability != 50 {
		t.Errorf("rangeability = %v, want 50", result.InherentRangeability)
	}
	if math.Abs(result.MinControllableCv-1.0) > 1e-9 {
		t.Errorf("min controllable Cv = %v, want 1.0", result.MinControllableCv)
	}
}

func TestEvaluateUnknownKeysUseDefaults(t *testing.T) {
	// Unknown style falls back to rangeability 30, unknown size to
	// rated Cv 50
	result := Evaluate(10, 5, types.ValveType("Gate"), "Unknown")

	if result.RatedCv != 50 {
		t.Errorf("rated Cv = %v, want default 50", result.RatedCv)
	}
	if result.InherentRangeability != 30 {
		t.Errorf("rangeability = %v, want default 30", result.InherentRangeability)
	}
	if !strings.HasPrefix(result.Status, "Acceptable") {
		t.Errorf("status = %q, want acceptable", result.Status)
	}
}
