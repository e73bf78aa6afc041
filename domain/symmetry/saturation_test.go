package symmetry

import (
	"fmt"
	"math"
	"testing"
)

// TestSaturationOrdering verifies every variant yields an ordered,
// two-decimal boundary pair for both float widths.
func TestSaturationOrdering(t *testing.T) {
	for _, lim := range []Limits{Float64Limits, Float32Limits} {
		for i, m := range metricsUnderTest() {
			m := m
			t.Run(fmt.Sprintf("%s_%d_max%g", m.Kind(), i, lim.MaxFinite), func(t *testing.T) {
				lo, hi := Saturation(m, lim)
				if !(lo <= hi) {
					t.Fatalf("Saturation returned unordered pair (%v, %v)", lo, hi)
				}
				for _, v := range []float64{lo, hi} {
					// Two-decimal idempotence is only exact where *100 is;
					// huge saturated magnitudes carry no decimals anyway.
					if math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) > 1e6 {
						continue
					}
					if r := math.Round(v*100) / 100; r != v {
						t.Errorf("boundary %v not rounded to 2 decimals", v)
					}
				}
			})
		}
	}
}

func TestSaturationKnownBoundaries(t *testing.T) {
	// The difference-percent index pins to +-200 at the extremes: the
	// smaller magnitude vanishes against the pair mean.
	lo, hi := Saturation(DifferencePercent{}, Float64Limits)
	if lo != -200 || hi != 200 {
		t.Errorf("DifferencePercent saturation = (%v, %v), want (-200, 200)", lo, hi)
	}

	// Max-normalized pins to +-100.
	lo, hi = Saturation(MaxNormalizedPercent{}, Float64Limits)
	if lo != -100 || hi != 100 {
		t.Errorf("MaxNormalizedPercent saturation = (%v, %v), want (-100, 100)", lo, hi)
	}

	// The ratio overflows to +Inf in one direction and underflows toward
	// zero in the other.
	lo, hi = Saturation(Ratio{}, Float64Limits)
	if !math.IsInf(hi, 1) {
		t.Errorf("Ratio saturation hi = %v, want +Inf", hi)
	}
	if lo != 0 {
		t.Errorf("Ratio saturation lo = %v, want 0", lo)
	}

	// The symmetry angle pins to its branch ends, +-50.
	lo, hi = Saturation(SymmetryAngle{}, Float64Limits)
	if lo != -50 || hi != 50 {
		t.Errorf("SymmetryAngle saturation = (%v, %v), want (-50, 50)", lo, hi)
	}
}
