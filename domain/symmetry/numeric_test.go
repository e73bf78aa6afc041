package symmetry

import (
	"math"
	"testing"
)

// TestApplyAsPromotesMixedTypes verifies mixed integer/float invocations
// promote to float64 before dispatch.
func TestApplyAsPromotesMixedTypes(t *testing.T) {
	got, err := ApplyAs(KindRatio, 2, 3.0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1.5 {
		t.Errorf("ApplyAs(ratio, 2, 3.0) = %v, want 1.5", got)
	}

	got, err = ApplyAs(KindPlainDifference, uint8(4), int64(10))
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("ApplyAs(plain_difference, 4, 10) = %v, want 6", got)
	}

	got, err = ApplyAs(KindDifferencePercent, float32(2), 2.2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-9.52380952380952) > 1e-6 {
		t.Errorf("ApplyAs(difference_percent, 2, 2.2) = %v", got)
	}
}

// TestApplyAsTrailingParams verifies trailing arguments reach the
// parameterized variant.
func TestApplyAsTrailingParams(t *testing.T) {
	sigma := 0.3
	got, err := ApplyAs(KindWeightedEuclideanNormalized, 1, 2, sigma)
	if err != nil {
		t.Fatal(err)
	}
	want := WeightedEuclideanNormalized{Sigma: sigma}.Apply(1, 2)
	if got != want {
		t.Errorf("ApplyAs with sigma = %v, want %v", got, want)
	}

	if _, err := ApplyAs(KindRatio, 1, 2, sigma); err == nil {
		t.Error("expected parameter error for non-parameterized kind")
	}
}
