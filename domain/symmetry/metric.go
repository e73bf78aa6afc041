// Package symmetry implements directional gait-symmetry indices between
// paired biomechanical measurements (typically left/right limb values).
//
// The family is closed: nine fixed variants, each a small value type
// implementing Metric. Every variant is invertible — given a score and one
// of the two original inputs (the baseline) the other input is recovered
// exactly — which is what makes cross-metric conversion possible.
package symmetry

import (
	"fmt"
	"math"

	"gaitsym/domain/core"
)

// Kind tags one of the nine fixed metric variants.
type Kind string

const (
	KindRatio                       Kind = "ratio"
	KindDifferencePercent           Kind = "difference_percent"
	KindMaxNormalizedPercent        Kind = "max_normalized_percent"
	KindLogRatio                    Kind = "log_ratio"
	KindSymmetryAngle               Kind = "symmetry_angle"
	KindPlainDifference             Kind = "plain_difference"
	KindNormalizedDifference        Kind = "normalized_difference"
	KindEuclideanNormalized         Kind = "euclidean_normalized"
	KindWeightedEuclideanNormalized Kind = "weighted_euclidean_normalized"
)

// Kinds returns every variant tag in stable order.
func Kinds() []Kind {
	return []Kind{
		KindRatio,
		KindDifferencePercent,
		KindMaxNormalizedPercent,
		KindLogRatio,
		KindSymmetryAngle,
		KindPlainDifference,
		KindNormalizedDifference,
		KindEuclideanNormalized,
		KindWeightedEuclideanNormalized,
	}
}

// Metric quantifies asymmetry between two paired measurements.
type Metric interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Apply maps the pair (x, y) to a symmetry score. Apply is total on the
	// variant's documented domain; out-of-domain inputs follow IEEE
	// semantics (Inf/NaN) rather than panicking.
	Apply(x, y float64) float64

	// Invert solves the variant's formula for y given x = baseline,
	// returning the (baseline, y) pair whose score is the given one.
	// Scores outside the variant's reachable range yield a domain error.
	Invert(score, baseline float64) (x, y float64, err error)
}

// AbsoluteScorer is implemented by the variants conventionally reported as
// magnitudes; Absolute(x, y) equals abs(Apply(x, y)).
type AbsoluteScorer interface {
	Absolute(x, y float64) float64
}

// New constructs a metric by kind. KindWeightedEuclideanNormalized requires
// exactly one trailing parameter (the noise scale sigma); all other kinds
// reject trailing parameters.
func New(kind Kind, params ...float64) (Metric, error) {
	if kind == KindWeightedEuclideanNormalized {
		if len(params) != 1 {
			return nil, fmt.Errorf("%w: %s requires one sigma parameter, got %d", core.ErrBadParameter, kind, len(params))
		}
		return WeightedEuclideanNormalized{Sigma: params[0]}, nil
	}
	if len(params) != 0 {
		return nil, fmt.Errorf("%w: %s takes no parameters, got %d", core.ErrBadParameter, kind, len(params))
	}
	switch kind {
	case KindRatio:
		return Ratio{}, nil
	case KindDifferencePercent:
		return DifferencePercent{}, nil
	case KindMaxNormalizedPercent:
		return MaxNormalizedPercent{}, nil
	case KindLogRatio:
		return LogRatio{Scaled: true}, nil
	case KindSymmetryAngle:
		return SymmetryAngle{}, nil
	case KindPlainDifference:
		return PlainDifference{}, nil
	case KindNormalizedDifference:
		return NormalizedDifference{}, nil
	case KindEuclideanNormalized:
		return EuclideanNormalized{}, nil
	}
	return nil, fmt.Errorf("%w: %q", core.ErrUnknownMetric, kind)
}

// ParseKind parses a string into a Kind
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownMetric, s)
}

// approxEqual reports agreement within tol, relative for large magnitudes
// with an absolute floor near zero.
func approxEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	d := math.Abs(a - b)
	if d <= tol {
		return true
	}
	return d <= tol*math.Max(math.Abs(a), math.Abs(b))
}
