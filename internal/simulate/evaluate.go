package simulate

import (
	"gonum.org/v1/gonum/mat"

	"gaitsym/domain/core"
	"gaitsym/domain/symmetry"
)

// EvaluateScores applies the metric pairwise across the first n rows of the
// sample buffer, writing one score per virtual trial into out:
//
//	out[i] = m(x[i], x[i+1]) - m(x[i], y[i])
//
// The self-to-next-self term carries only noise, the self-to-paired-other
// term carries noise plus any real asymmetry, so the contrast isolates the
// detectable signal. The final element wraps around, pairing x[n-1] with
// x[0] and y[n-1].
func EvaluateScores(m symmetry.Metric, buf *mat.Dense, n int, out []float64) error {
	rows, cols := buf.Dims()
	if cols != 2 {
		return core.NewDimensionError("simulate.EvaluateScores", cols, 2)
	}
	if n > rows {
		return core.NewDimensionError("simulate.EvaluateScores", n, rows)
	}
	if len(out) < n {
		return core.NewDimensionError("simulate.EvaluateScores", len(out), n)
	}
	rm := buf.RawMatrix()
	data, stride := rm.Data, rm.Stride
	for i := 0; i < n-1; i++ {
		x := data[i*stride]
		out[i] = m.Apply(x, data[(i+1)*stride]) - m.Apply(x, data[i*stride+1])
	}
	if n > 0 {
		x := data[(n-1)*stride]
		out[n-1] = m.Apply(x, data[0]) - m.Apply(x, data[(n-1)*stride+1])
	}
	return nil
}
