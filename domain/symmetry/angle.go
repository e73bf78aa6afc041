package symmetry

import (
	"math"

	"gaitsym/domain/core"
)

// SymmetryAngle scores the pair by the angle the vector (y, x) makes with
// the y axis: perfect symmetry (x == y) sits at 45 degrees and scores zero.
// The raw atan2 angle lies in (-180, 180]; angles strictly above 90 are
// wrapped down by 180 so the score stays on a single branch. The score is
// the distance from 45 degrees rescaled so that the 90-degree branch spans
// 100 units: (45 - angle) * 100 / 90.
type SymmetryAngle struct{}

func (SymmetryAngle) Kind() Kind { return KindSymmetryAngle }

// Apply computes the symmetry angle score. Defined for any signs of x and y
// except x == y == 0.
func (SymmetryAngle) Apply(x, y float64) float64 {
	rad := math.Atan2(x, y)
	if rad > math.Pi/2 {
		// Branch correction: exactly 90 degrees stays uncorrected. The
		// comparison happens in radians so the tie-break is exact.
		rad -= math.Pi
	}
	return (45 - rad*180/math.Pi) * 100 / 90
}

// Absolute returns the magnitude form |Apply(x, y)|.
func (m SymmetryAngle) Absolute(x, y float64) float64 {
	return math.Abs(m.Apply(x, y))
}

// Invert solves for y on the corrected branch, where the angle
// theta = 45 - score*90/100 satisfies tan(theta) = baseline/y. Reachable
// scores span [-50, 150); score 50 (theta zero) has no finite solution.
func (SymmetryAngle) Invert(score, baseline float64) (float64, float64, error) {
	if score < -50 || score >= 150 {
		return 0, 0, core.NewDomainError("SymmetryAngle.Invert", score, "score outside reachable range [-50, 150)")
	}
	theta := (45 - score*90/100) * math.Pi / 180
	t := math.Tan(theta)
	if t == 0 {
		return 0, 0, core.NewDomainError("SymmetryAngle.Invert", score, "no finite solution at score 50")
	}
	return baseline, baseline / t, nil
}
