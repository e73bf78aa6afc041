package symmetry

import (
	"math"

	"gaitsym/domain/core"
)

// EuclideanNormalized normalizes the difference by the Euclidean norm of
// the pair: (y-x)/sqrt(2*(x^2+y^2)). Scores lie strictly inside
// (-1/sqrt2, 1/sqrt2) for finite pairs.
type EuclideanNormalized struct{}

func (EuclideanNormalized) Kind() Kind { return KindEuclideanNormalized }

// Apply computes (y-x)/sqrt(2*(x^2+y^2)). Defined unless x and y are both
// zero.
func (EuclideanNormalized) Apply(x, y float64) float64 {
	return (y - x) / math.Sqrt(2*(x*x+y*y))
}

// Invert solves score = (y-b)/sqrt(2*(b^2+y^2)) for y. Squaring gives a
// quadratic whose round-tripping root has the closed form
// y = b*(1 + 2s*sqrt(1-s^2))/(1-2s^2).
func (EuclideanNormalized) Invert(score, baseline float64) (float64, float64, error) {
	if score*score >= 0.5 {
		return 0, 0, core.NewDomainError("EuclideanNormalized.Invert", score, "score outside reachable range (-1/sqrt2, 1/sqrt2)")
	}
	den := 1 - 2*score*score
	y := baseline * (1 + 2*score*math.Sqrt(1-score*score)) / den
	return baseline, y, nil
}

// WeightedEuclideanNormalized is EuclideanNormalized damped by a
// noise-scale weight: score * (1 - sqrt2*sigma/sqrt(2*sigma^2+x^2+y^2)).
// Sigma is a fixed per-instance parameter; with sigma zero the variant
// coincides with EuclideanNormalized.
type WeightedEuclideanNormalized struct {
	// Sigma is the noise scale the weight discounts for.
	Sigma float64
}

func (WeightedEuclideanNormalized) Kind() Kind { return KindWeightedEuclideanNormalized }

// Apply computes the damped normalized difference.
func (m WeightedEuclideanNormalized) Apply(x, y float64) float64 {
	base := (y - x) / math.Sqrt(2*(x*x+y*y))
	w := 1 - math.Sqrt2*m.Sigma/math.Sqrt(2*m.Sigma*m.Sigma+x*x+y*y)
	return base * w
}

// Invert solves Apply(baseline, y) = score for y >= 0. The weight couples
// x and y into a quartic with no usable closed form, so the solve brackets
// the monotone score curve and bisects to round-trip tolerance.
func (m WeightedEuclideanNormalized) Invert(score, baseline float64) (float64, float64, error) {
	at := func(y float64) float64 { return m.Apply(baseline, y) }

	if at(0) > score {
		return 0, 0, core.NewDomainError("WeightedEuclideanNormalized.Invert", score, "score below reachable range")
	}
	lo, hi := 0.0, math.Max(baseline, 1)
	for at(hi) < score {
		hi *= 2
		if math.IsInf(hi, 0) {
			return 0, 0, core.NewDomainError("WeightedEuclideanNormalized.Invert", score, "score above reachable range")
		}
	}
	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		if at(mid) < score {
			lo = mid
		} else {
			hi = mid
		}
	}
	return baseline, 0.5 * (lo + hi), nil
}
