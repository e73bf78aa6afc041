package sweep

import (
	"testing"

	"gaitsym/domain/symmetry"
)

func TestResultTensorIndexing(t *testing.T) {
	tensor := NewResultTensor(
		[]int{10, 25},
		[]symmetry.Kind{symmetry.KindRatio, symmetry.KindLogRatio, symmetry.KindSymmetryAngle},
		[]float64{1.0, 1.1},
		[]float64{0.05, 0.1},
	)

	g, m, r, n := tensor.Dims()
	if g != 2 || m != 3 || r != 2 || n != 2 {
		t.Fatalf("Dims = (%d, %d, %d, %d), want (2, 3, 2, 2)", g, m, r, n)
	}

	// Write a distinct value into every cell, then read each back.
	v := 0.0
	for gi := 0; gi < g; gi++ {
		for mi := 0; mi < m; mi++ {
			for ri := 0; ri < r; ri++ {
				for ni := 0; ni < n; ni++ {
					tensor.Set(gi, mi, ri, ni, v)
					v++
				}
			}
		}
	}
	v = 0.0
	for gi := 0; gi < g; gi++ {
		for mi := 0; mi < m; mi++ {
			for ri := 0; ri < r; ri++ {
				for ni := 0; ni < n; ni++ {
					if got := tensor.At(gi, mi, ri, ni); got != v {
						t.Fatalf("At(%d, %d, %d, %d) = %v, want %v", gi, mi, ri, ni, got, v)
					}
					v++
				}
			}
		}
	}

	cells := tensor.Cells()
	if len(cells) != g*m*r*n {
		t.Errorf("Cells length = %d, want %d", len(cells), g*m*r*n)
	}
	// Cells is a copy: mutating it must not touch the tensor.
	cells[0] = -1
	if tensor.At(0, 0, 0, 0) == -1 {
		t.Error("Cells must return a copy")
	}
}
