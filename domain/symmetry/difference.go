package symmetry

import (
	"math"

	"gaitsym/domain/core"
)

// PlainDifference is the raw difference y - x.
type PlainDifference struct{}

func (PlainDifference) Kind() Kind { return KindPlainDifference }

func (PlainDifference) Apply(x, y float64) float64 {
	return y - x
}

func (PlainDifference) Invert(score, baseline float64) (float64, float64, error) {
	return baseline, baseline + score, nil
}

// DifferencePercent is the symmetry index: the difference expressed as a
// percentage of the pair mean, (y-x) / (0.5*(x+y)) * 100.
type DifferencePercent struct{}

func (DifferencePercent) Kind() Kind { return KindDifferencePercent }

// Apply computes (y-x)/(0.5*(x+y))*100. Defined for x+y != 0.
func (DifferencePercent) Apply(x, y float64) float64 {
	return (y - x) / (0.5 * (x + y)) * 100
}

// Invert solves score = (y-b)/(0.5*(b+y))*100 for y, giving
// y = b*(200+score)/(200-score). A score of exactly 200 has no finite
// solution.
func (DifferencePercent) Invert(score, baseline float64) (float64, float64, error) {
	if score == 200 {
		return 0, 0, core.NewDomainError("DifferencePercent.Invert", score, "no finite solution at score 200")
	}
	return baseline, baseline * (200 + score) / (200 - score), nil
}

// MaxNormalizedPercent normalizes the difference by the larger input,
// (y-x)/max(x,y)*100.
type MaxNormalizedPercent struct{}

func (MaxNormalizedPercent) Kind() Kind { return KindMaxNormalizedPercent }

// Apply computes (y-x)/max(x,y)*100. Defined for max(x,y) != 0.
func (MaxNormalizedPercent) Apply(x, y float64) float64 {
	return (y - x) / math.Max(x, y) * 100
}

// Invert solves score = (y-b)/max(b,y)*100 for y. Two algebraic roots exist
// depending on which input is the larger; the root that round-trips through
// Apply is selected. Neither root round-tripping is unreachable for scores
// produced by valid pairs and is reported as a domain error.
func (m MaxNormalizedPercent) Invert(score, baseline float64) (float64, float64, error) {
	candidates := []float64{baseline * (1 + score/100)}
	if score != 100 {
		candidates = append(candidates, baseline*100/(100-score))
	}
	for _, y := range candidates {
		if approxEqual(m.Apply(baseline, y), score, 1e-9) {
			return baseline, y, nil
		}
	}
	return 0, 0, core.NewDomainError("MaxNormalizedPercent.Invert", score, "no root round-trips")
}

// NormalizedDifference normalizes the signed difference by the spread of
// {0, x, y}: (x-y)/(max(0,x,y)-min(0,x,y)).
type NormalizedDifference struct{}

func (NormalizedDifference) Kind() Kind { return KindNormalizedDifference }

// Apply computes (x-y)/(max(0,x,y)-min(0,x,y)). Defined when the
// denominator is nonzero, i.e. x and y are not both zero.
func (NormalizedDifference) Apply(x, y float64) float64 {
	hi := math.Max(0, math.Max(x, y))
	lo := math.Min(0, math.Min(x, y))
	return (x - y) / (hi - lo)
}

// Invert solves for y against a positive baseline. Non-negative scores pin
// max(b,y)=b so y = b*(1-score); negative scores pin max(b,y)=y so
// y = b/(1+score). Score -1 is the zero-denominator case, and |score| > 1
// is unreachable from non-negative pairs.
func (NormalizedDifference) Invert(score, baseline float64) (float64, float64, error) {
	if score == -1 {
		return 0, 0, core.NewDomainError("NormalizedDifference.Invert", score, "zero denominator")
	}
	if score > 1 || score < -1 {
		return 0, 0, core.NewDomainError("NormalizedDifference.Invert", score, "score outside reachable range [-1, 1]")
	}
	if score >= 0 {
		return baseline, baseline * (1 - score), nil
	}
	return baseline, baseline / (1 + score), nil
}
