package symmetry

import (
	"math"
	"testing"
)

// TestSymmetryAngleBranchBoundary pins the branch-correction tie-break:
// a raw angle of exactly 90 degrees (x > 0, y == 0) is NOT wrapped, while
// anything strictly above 90 (y < 0) is.
func TestSymmetryAngleBranchBoundary(t *testing.T) {
	m := SymmetryAngle{}

	// atan2(1, 0) is exactly 90 degrees: stays on the uncorrected branch.
	if got := m.Apply(1, 0); math.Abs(got-(-50)) > 1e-12 {
		t.Errorf("Apply(1, 0) = %v, want -50 (no correction at exactly 90)", got)
	}

	// atan2(1, -1) is 135 degrees: corrected to -45, score 100.
	if got := m.Apply(1, -1); math.Abs(got-100) > 1e-12 {
		t.Errorf("Apply(1, -1) = %v, want 100 (corrected branch)", got)
	}

	// Just under 90 degrees from the positive-y side: no correction, the
	// score approaches -50 from above.
	if got := m.Apply(1, 1e-9); got < -50 || got > -49.9 {
		t.Errorf("Apply(1, 1e-9) = %v, want just above -50", got)
	}
}

func TestSymmetryAngleNegativeInputs(t *testing.T) {
	m := SymmetryAngle{}
	// Negating y reflects the raw angle about 90 degrees; after the branch
	// correction the score lands at 100 minus the positive-pair score.
	plus := m.Apply(1, 1.1)
	minus := m.Apply(1, -1.1)
	if math.Abs(minus-(100-plus)) > 1e-9 {
		t.Errorf("Apply(1, -1.1) = %v, want %v", minus, 100-plus)
	}
}

func TestSymmetryAngleInvertDomain(t *testing.T) {
	m := SymmetryAngle{}

	if _, _, err := m.Invert(50, 1); err == nil {
		t.Error("expected domain error at score 50 (no finite solution)")
	}
	if _, _, err := m.Invert(150, 1); err == nil {
		t.Error("expected domain error at score 150 (outside reachable range)")
	}
	if _, _, err := m.Invert(-50.0000001, 1); err == nil {
		t.Error("expected domain error below -50")
	}

	// Score 100 corresponds to y == -baseline on the corrected branch.
	_, y, err := m.Invert(100, 2)
	if err != nil {
		t.Fatalf("Invert(100, 2): %v", err)
	}
	if math.Abs(y-(-2)) > 1e-9 {
		t.Errorf("Invert(100, 2) y = %v, want -2", y)
	}
}
