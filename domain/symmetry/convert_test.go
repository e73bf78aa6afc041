package symmetry

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

// TestConvertIdentity verifies convert(M, M) is the identity on reachable
// scores for every variant.
func TestConvertIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i, m := range metricsUnderTest() {
		m := m
		t.Run(fmt.Sprintf("%s_%d", m.Kind(), i), func(t *testing.T) {
			conv := Convert(m, m)
			for trial := 0; trial < 200; trial++ {
				x := 0.2 + 5*rng.Float64()
				y := 0.2 + 5*rng.Float64()
				if _, isLog := m.(LogRatio); isLog && y < x {
					x, y = y, x
				}
				score := m.Apply(x, y)
				got, err := conv(score)
				if err != nil {
					t.Fatalf("convert(%v): %v", score, err)
				}
				if !approxEqual(got, score, roundTripTol) {
					t.Fatalf("identity conversion drifted: got %v, want %v", got, score)
				}
			}
		})
	}
}

// directionSensitive lists the variants whose inverse recovers the original
// pair for any reachable score, i.e. everything except the log-ratio family.
func directionSensitive() []Metric {
	return []Metric{
		Ratio{},
		DifferencePercent{},
		MaxNormalizedPercent{},
		SymmetryAngle{},
		PlainDifference{},
		NormalizedDifference{},
		EuclideanNormalized{},
		WeightedEuclideanNormalized{Sigma: 0.1},
	}
}

// TestCrossConversion verifies convert(T, U)(U(x, y)) == T(x, y) for every
// direction-sensitive pair, inverting against the known baseline x.
func TestCrossConversion(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, target := range directionSensitive() {
		for _, source := range directionSensitive() {
			target, source := target, source
			t.Run(fmt.Sprintf("%s_from_%s", target.Kind(), source.Kind()), func(t *testing.T) {
				for trial := 0; trial < 100; trial++ {
					x := 0.2 + 5*rng.Float64()
					y := 0.2 + 5*rng.Float64()
					conv := ConvertWithBaseline(target, source, x)
					got, err := conv(source.Apply(x, y))
					if err != nil {
						t.Fatalf("convert failed for x=%v y=%v: %v", x, y, err)
					}
					want := target.Apply(x, y)
					if !approxEqual(got, want, 1e-8) {
						t.Fatalf("cross-conversion drifted for x=%v y=%v: got %v, want %v", x, y, got, want)
					}
				}
			})
		}
	}
}

// TestLogRatioSourceMagnitudeOnly verifies the documented asymmetry: a
// log-ratio score carries no direction, so conversions out of it preserve
// magnitude but not sign for odd-symmetric targets.
func TestLogRatioSourceMagnitudeOnly(t *testing.T) {
	source := NewLogRatio(true)
	targets := []Metric{
		DifferencePercent{},
		MaxNormalizedPercent{},
		SymmetryAngle{},
		NormalizedDifference{},
		EuclideanNormalized{},
		NewLogRatio(true),
	}
	rng := rand.New(rand.NewSource(9))
	for _, target := range targets {
		target := target
		t.Run(string(target.Kind()), func(t *testing.T) {
			for trial := 0; trial < 100; trial++ {
				// y below x: the direct score is negative, the reported
				// magnitude loses the direction.
				x := 1 + 4*rng.Float64()
				y := x * (0.2 + 0.7*rng.Float64())
				score := source.Absolute(x, y)
				conv := ConvertWithBaseline(target, source, x)
				got, err := conv(score)
				if err != nil {
					t.Fatalf("convert failed: %v", err)
				}
				want := math.Abs(target.Apply(x, y))
				if !approxEqual(math.Abs(got), want, 1e-8) {
					t.Fatalf("magnitude drifted for x=%v y=%v: |got|=%v, want %v", x, y, math.Abs(got), want)
				}
			}
		})
	}
}

// TestConvertPropagatesDomainErrors verifies a source inversion failure
// surfaces through the conversion closure.
func TestConvertPropagatesDomainErrors(t *testing.T) {
	conv := Convert(Ratio{}, NewLogRatio(true))
	if _, err := conv(-10); err == nil {
		t.Fatal("expected domain error converting a negative log-ratio score")
	}
}
