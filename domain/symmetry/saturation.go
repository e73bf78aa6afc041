package symmetry

import "math"

// Limits describes a floating type's extreme representable magnitudes,
// expressed in float64 working precision.
type Limits struct {
	SmallestNormal float64
	MaxFinite      float64
}

var (
	Float64Limits = Limits{SmallestNormal: 0x1p-1022, MaxFinite: math.MaxFloat64}
	Float32Limits = Limits{SmallestNormal: 0x1p-126, MaxFinite: math.MaxFloat32}
)

// Saturation characterizes how a metric saturates at machine-precision
// extremes: it combines the type's smallest-normal and largest-finite
// magnitudes through Apply in both orders, rounds each boundary score to
// two decimal digits, and returns them ordered (lo, hi).
func Saturation(m Metric, lim Limits) (lo, hi float64) {
	a := round2(m.Apply(lim.SmallestNormal, lim.MaxFinite))
	b := round2(m.Apply(lim.MaxFinite, lim.SmallestNormal))
	if a > b {
		a, b = b, a
	}
	return a, b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
