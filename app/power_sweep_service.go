package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"gaitsym/domain/core"
	"gaitsym/domain/sweep"
	"gaitsym/domain/symmetry"
	"gaitsym/internal/simulate"
	"gaitsym/ports"
)

const sweepStage = "power_sweep"

// PowerSweepService runs the Monte Carlo detection-power sweep across the
// full {metric x mean-ratio x noise x group-size} grid. One parallel task
// per (noise, ratio) pair; every task owns a disjoint 2-D slice of the
// result tensor, so output writes never race.
type PowerSweepService struct {
	rngPort  ports.RNGPort
	progress ports.ProgressPort
	workers  int
}

// PowerSweepRequest defines the inputs for one sweep batch.
type PowerSweepRequest struct {
	Metrics     []symmetry.Kind
	MeanRatios  []float64
	NoiseLevels []float64
	GroupSizes  []int
	GroupCount  int

	// Precision selects the working precision of generated samples.
	Precision simulate.Precision

	// Null forces the paired distribution identical to the source
	// distribution, measuring the false-positive rate instead of power.
	Null bool

	Seed    int64
	BatchID core.BatchID // optional, generated if empty
}

// NewPowerSweepService creates a sweep service. workers bounds the number
// of concurrently running (noise, ratio) tasks.
func NewPowerSweepService(rngPort ports.RNGPort, progress ports.ProgressPort, workers int) *PowerSweepService {
	if workers < 1 {
		workers = 1
	}
	return &PowerSweepService{
		rngPort:  rngPort,
		progress: progress,
		workers:  workers,
	}
}

// Run executes the sweep and returns the 4-D detection-count tensor.
// The first failing task aborts the whole sweep; there is no
// partial-results contract, callers needing resilience wrap the sweep.
func (s *PowerSweepService) Run(ctx context.Context, req PowerSweepRequest) (*sweep.ResultTensor, error) {
	if err := validateSweepRequest(req); err != nil {
		return nil, err
	}

	batchID := req.BatchID
	if batchID == "" {
		batchID = core.BatchID(core.NewID())
	}

	maxRows := 0
	for _, gs := range req.GroupSizes {
		if rows := gs * req.GroupCount; rows > maxRows {
			maxRows = rows
		}
	}

	tensor := sweep.NewResultTensor(req.GroupSizes, req.Metrics, req.MeanRatios, req.NoiseLevels)

	// Pools sized one past the worker count so a task finishing while its
	// successor is already scheduled never stalls on checkout.
	samplePool := simulate.NewBufferPool(maxRows, s.workers+1)
	scorePool := simulate.NewScorePool(maxRows, s.workers+1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for ni, noise := range req.NoiseLevels {
		for ri, ratio := range req.MeanRatios {
			ni, noise, ri, ratio := ni, noise, ri, ratio
			g.Go(func() error {
				return s.runPair(ctx, req, batchID, tensor, samplePool, scorePool, maxRows, ni, noise, ri, ratio)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tensor, nil
}

// runPair executes the full metric x group-size sub-loop for one
// (noise, ratio) pair, writing into the tensor columns it owns.
func (s *PowerSweepService) runPair(
	ctx context.Context,
	req PowerSweepRequest,
	batchID core.BatchID,
	tensor *sweep.ResultTensor,
	samplePool *simulate.BufferPool,
	scorePool *simulate.ScorePool,
	maxRows int,
	ni int, noise float64,
	ri int, ratio float64,
) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	taskKey := fmt.Sprintf("noise=%g,ratio=%g", noise, ratio)
	rng, err := s.rngPort.Stream(ctx, batchID.String(), sweepStage, taskKey, req.Seed)
	if err != nil {
		return fmt.Errorf("rng stream for %s: %w", taskKey, err)
	}

	xDist := simulate.Dist{Mean: 1, StdDev: noise}
	yDist := simulate.Dist{Mean: ratio, StdDev: ratio * noise}
	if req.Null {
		yDist = xDist
	}

	buf := samplePool.Acquire()
	defer samplePool.Release(buf)
	if err := simulate.Fill(rng, xDist, yDist, buf, req.Precision); err != nil {
		return err
	}

	scores := scorePool.Acquire()
	defer scorePool.Release(scores)

	for mi, kind := range req.Metrics {
		metric, err := metricFor(kind, noise)
		if err != nil {
			return err
		}
		if err := simulate.EvaluateScores(metric, buf, maxRows, scores); err != nil {
			return err
		}
		for gi, groupSize := range req.GroupSizes {
			count, err := simulate.EstimatePower(scores[:groupSize*req.GroupCount], groupSize, req.GroupCount)
			if err != nil {
				return err
			}
			tensor.Set(gi, mi, ri, ni, float64(count))
		}
		if s.progress != nil {
			s.progress.Step(int64(maxRows))
		}
	}
	return nil
}

// metricFor instantiates the kind, binding the parameterized variant to the
// task's current noise level.
func metricFor(kind symmetry.Kind, noise float64) (symmetry.Metric, error) {
	if kind == symmetry.KindWeightedEuclideanNormalized {
		return symmetry.New(kind, noise)
	}
	return symmetry.New(kind)
}

func validateSweepRequest(req PowerSweepRequest) error {
	if len(req.Metrics) == 0 {
		return fmt.Errorf("%w: sweep needs at least one metric", core.ErrBadParameter)
	}
	if len(req.MeanRatios) == 0 || len(req.NoiseLevels) == 0 {
		return fmt.Errorf("%w: sweep needs non-empty mean-ratio and noise grids", core.ErrBadParameter)
	}
	if len(req.GroupSizes) == 0 {
		return fmt.Errorf("%w: sweep needs at least one group size", core.ErrBadParameter)
	}
	if req.GroupCount < 1 {
		return fmt.Errorf("%w: group count must be positive, got %d", core.ErrBadParameter, req.GroupCount)
	}
	for _, gs := range req.GroupSizes {
		if gs < 2 {
			return fmt.Errorf("%w: group sizes must be at least 2, got %d", core.ErrBadParameter, gs)
		}
	}
	for _, k := range req.Metrics {
		if _, err := metricFor(k, 0); err != nil {
			return err
		}
	}
	return nil
}

// TotalSampleUnits returns the number of sample-units a sweep will report
// through its progress sink, for sizing progress displays.
func TotalSampleUnits(req PowerSweepRequest) int64 {
	maxRows := 0
	for _, gs := range req.GroupSizes {
		if rows := gs * req.GroupCount; rows > maxRows {
			maxRows = rows
		}
	}
	return int64(maxRows) * int64(len(req.Metrics)) * int64(len(req.MeanRatios)) * int64(len(req.NoiseLevels))
}
