package symmetry

import (
	"math"
	"testing"

	"gaitsym/domain/core"
)

func TestLogRatioInvertKnownScore(t *testing.T) {
	m := NewLogRatio(false)
	x, y, err := m.Invert(0.6931471805599453, 1)
	if err != nil {
		t.Fatalf("Invert(ln 2, 1): %v", err)
	}
	if x != 1 || math.Abs(y-2) > 1e-12 {
		t.Errorf("Invert(ln 2, 1) = (%v, %v), want (1, 2)", x, y)
	}

	scaled := NewLogRatio(true)
	_, y, err = scaled.Invert(100*math.Log(2), 1)
	if err != nil {
		t.Fatalf("scaled Invert: %v", err)
	}
	if math.Abs(y-2) > 1e-12 {
		t.Errorf("scaled Invert y = %v, want 2", y)
	}
}

func TestLogRatioInvertRejectsNegative(t *testing.T) {
	for _, m := range []LogRatio{NewLogRatio(false), NewLogRatio(true)} {
		_, _, err := m.Invert(-10, 1)
		if !core.IsDomainError(err) {
			t.Errorf("scaled=%v: expected domain error for negative score, got %v", m.Scaled, err)
		}
	}
}
