// Package simulate contains the numeric kernels of the power sweep: paired
// sample generation, symmetry-score evaluation, the grouped power
// estimator, and the bounded buffer pools the parallel driver draws from.
package simulate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"gaitsym/domain/core"
)

// Dist configures one normal measurement distribution.
type Dist struct {
	Mean   float64
	StdDev float64
}

// Precision selects the working numeric precision of generated samples.
type Precision int

const (
	// Float64 keeps draws at full double precision.
	Float64 Precision = iota
	// Float32 rounds each draw through single precision, reproducing the
	// quantization a float32 pipeline would see.
	Float32
)

// Generate draws n paired samples into a fresh n x 2 matrix: column 0 holds
// x draws, column 1 holds y draws.
func Generate(rng *rand.Rand, xDist, yDist Dist, n int, prec Precision) *mat.Dense {
	buf := mat.NewDense(n, 2, nil)
	// Shape is correct by construction, the error is unreachable.
	_ = Fill(rng, xDist, yDist, buf, prec)
	return buf
}

// Fill refills a caller-supplied n x 2 buffer in place for pooled reuse.
// Every draw is replaced by its absolute value: gait magnitudes are
// non-negative, so draws keep only their magnitude.
func Fill(rng *rand.Rand, xDist, yDist Dist, buf *mat.Dense, prec Precision) error {
	rows, cols := buf.Dims()
	if cols != 2 {
		return core.NewDimensionError("simulate.Fill", cols, 2)
	}
	rm := buf.RawMatrix()
	data, stride := rm.Data, rm.Stride
	if prec == Float32 {
		for i := 0; i < rows; i++ {
			data[i*stride] = float64(float32(math.Abs(xDist.Mean + xDist.StdDev*rng.NormFloat64())))
			data[i*stride+1] = float64(float32(math.Abs(yDist.Mean + yDist.StdDev*rng.NormFloat64())))
		}
		return nil
	}
	for i := 0; i < rows; i++ {
		data[i*stride] = math.Abs(xDist.Mean + xDist.StdDev*rng.NormFloat64())
		data[i*stride+1] = math.Abs(yDist.Mean + yDist.StdDev*rng.NormFloat64())
	}
	return nil
}
