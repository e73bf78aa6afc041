package symmetry

import (
	"math"

	"gaitsym/domain/core"
)

// LogRatio is the gait-asymmetry index ln(y/x), scaled by 100 when Scaled
// is set (the default under New). The index is direction-insensitive in its
// conventional magnitude use: reports quote |ln(y/x)|, so swapping the limbs
// changes only the sign, never the reported asymmetry.
type LogRatio struct {
	// Scaled multiplies the log ratio by 100.
	Scaled bool
}

// NewLogRatio builds a log-ratio metric with explicit scaling.
func NewLogRatio(scaled bool) LogRatio { return LogRatio{Scaled: scaled} }

func (m LogRatio) Kind() Kind { return KindLogRatio }

// Apply computes ln(y/x), times 100 when scaled. Defined for x, y > 0.
func (m LogRatio) Apply(x, y float64) float64 {
	v := math.Log(y / x)
	if m.Scaled {
		v *= 100
	}
	return v
}

// Absolute returns the magnitude form |ln(y/x)| (times 100 when scaled),
// the figure conventionally reported for gait asymmetry.
func (m LogRatio) Absolute(x, y float64) float64 {
	return math.Abs(m.Apply(x, y))
}

// Invert solves score = ln(y/b) (descaling first) for y. Negative scores
// are rejected: the index is documented as producing non-negative
// magnitudes in normal use, and a negative score has no interpretation
// under that contract even though the formula alone would admit one.
func (m LogRatio) Invert(score, baseline float64) (float64, float64, error) {
	if score < 0 {
		return 0, 0, core.NewDomainError("LogRatio.Invert", score, "negative score")
	}
	s := score
	if m.Scaled {
		s /= 100
	}
	return baseline, baseline * math.Exp(s), nil
}
