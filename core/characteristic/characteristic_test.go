package characteristic

import (
	"math"
	"testing"

	"valve-sizing/core/types"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name string
		p1   float64
		p2   float64
		want types.ValveCharacteristic
	}{
		{"high drop share", 10, 5, types.EqualPercentage},
		{"low drop share", 10, 8, types.Linear},
		{"boundary share stays linear", 10, 6.5, types.Linear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := types.ProcessInput{P1: tt.p1, P2: tt.p2, UnitSystem: types.Metric}
			if got := Recommend(in); got != tt.want {
				t.Errorf("Recommend() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCurveLinear(t *testing.T) {
	points := Curve(types.Linear, 100, 50)
	if len(points) != 101 {
		t.Fatalf("got %d points, want 101", len(points))
	}
	if points[0].InherentCv != 0 {
		t.Errorf("travel 0 inherent Cv = %v, want 0", points[0].InherentCv)
	}
	if points[100].InherentCv != 100 {
		t.Errorf("travel 100 inherent Cv = %v, want 100", points[100].InherentCv)
	}
	if math.Abs(points[50].InherentCv-50) > 1e-9 {
		t.Errorf("travel 50 inherent Cv = %v, want 50", points[50].InherentCv)
	}
}

func TestCurveEqualPercentage(t *testing.T) {
	points := Curve(types.EqualPercentage, 100, 50)

	// At zero travel the equal-percentage curve sits at ratedCv/R
	if math.Abs(points[0].InherentCv-2) > 1e-9 {
		t.Errorf("travel 0 inherent Cv = %v, want 2", points[0].InherentCv)
	}
	if math.Abs(points[100].InherentCv-100) > 1e-9 {
		t.Errorf("travel 100 inherent Cv = %v, want 100", points[100].InherentCv)
	}

	// Strictly increasing
	for i := 1; i < len(points); i++ {
		if points[i].InherentCv <= points[i-1].InherentCv {
			t.Fatalf("curve not increasing at travel %v", points[i].Travel)
		}
	}
}

func TestCurveQuickOpening(t *testing.T) {
	points := Curve(types.QuickOpening, 100, 50)
	// sqrt characteristic: 25% travel passes 50% of rated Cv
	if math.Abs(points[25].InherentCv-50) > 1e-9 {
		t.Errorf("travel 25 inherent Cv = %v, want 50", points[25].InherentCv)
	}
}

func TestCurveInstalledSeries(t *testing.T) {
	points := Curve(types.Linear, 100, 50)
	for _, p := range points {
		want := p.InherentCv * 0.85
		if math.Abs(p.InstalledCv-want) > 1e-9 {
			t.Fatalf("installed Cv at travel %v = %v, want %v", p.Travel, p.InstalledCv, want)
		}
	}
}

func TestCurveClippedToRatedCv(t *testing.T) {
	for _, char := range []types.ValveCharacteristic{types.Linear, types.QuickOpening, types.EqualPercentage} {
		for _, p := range Curve(char, 100, 50) {
			if p.InherentCv < 0 || p.InherentCv > 100 {
				t.Fatalf("%s inherent Cv %v out of [0, rated]", char, p.InherentCv)
			}
		}
	}
}

func TestOperatingPoint(t *testing.T) {
	travel, ok := OperatingPoint(25, 50)
	if !ok || math.Abs(travel-50) > 1e-9 {
		t.Errorf("OperatingPoint(25, 50) = %v, %v; want 50, true", travel, ok)
	}

	// Beyond the rated Cv the point falls off the curve
	if _, ok := OperatingPoint(60, 50); ok {
		t.Error("operating point above rated Cv should not be on the curve")
	}

	if _, ok := OperatingPoint(10, 0); ok {
		t.Error("zero rated Cv cannot carry an operating point")
	}
}
