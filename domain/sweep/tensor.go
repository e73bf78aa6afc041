// Package sweep holds the result shapes of the Monte Carlo power sweep.
package sweep

import (
	"fmt"

	"gaitsym/domain/symmetry"
)

// ResultTensor is the 4-D detection-count tensor indexed by
// (group size, metric, mean ratio, noise level). Cells hold the raw
// significant-group counts the power estimator reports.
//
// Each cell is written exactly once: a (noise, ratio) pair owns its full
// 2-D slice for the metric x group-size sub-loop, so parallel tasks never
// write overlapping cells.
type ResultTensor struct {
	GroupSizes  []int
	Metrics     []symmetry.Kind
	MeanRatios  []float64
	NoiseLevels []float64

	cells []float64
}

// NewResultTensor preallocates the tensor for the given axes.
func NewResultTensor(groupSizes []int, metrics []symmetry.Kind, meanRatios, noiseLevels []float64) *ResultTensor {
	t := &ResultTensor{
		GroupSizes:  append([]int(nil), groupSizes...),
		MeanRatios:  append([]float64(nil), meanRatios...),
		NoiseLevels: append([]float64(nil), noiseLevels...),
		Metrics:     append([]symmetry.Kind(nil), metrics...),
	}
	t.cells = make([]float64, len(t.GroupSizes)*len(t.Metrics)*len(t.MeanRatios)*len(t.NoiseLevels))
	return t
}

func (t *ResultTensor) index(gi, mi, ri, ni int) int {
	return ((gi*len(t.Metrics)+mi)*len(t.MeanRatios)+ri)*len(t.NoiseLevels) + ni
}

// At returns the detection count at (group size, metric, ratio, noise).
func (t *ResultTensor) At(gi, mi, ri, ni int) float64 {
	return t.cells[t.index(gi, mi, ri, ni)]
}

// Set writes the detection count at (group size, metric, ratio, noise).
func (t *ResultTensor) Set(gi, mi, ri, ni int, count float64) {
	t.cells[t.index(gi, mi, ri, ni)] = count
}

// Dims returns the axis lengths in index order.
func (t *ResultTensor) Dims() (groupSizes, metrics, meanRatios, noiseLevels int) {
	return len(t.GroupSizes), len(t.Metrics), len(t.MeanRatios), len(t.NoiseLevels)
}

// Cells returns a copy of the flat cell storage, innermost axis last.
func (t *ResultTensor) Cells() []float64 {
	return append([]float64(nil), t.cells...)
}

// String summarizes the tensor shape.
func (t *ResultTensor) String() string {
	g, m, r, n := t.Dims()
	return fmt.Sprintf("ResultTensor[%dx%dx%dx%d]", g, m, r, n)
}
