package simulate

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"gaitsym/domain/core"
)

// SignificanceLevel is the two-sided p-value threshold a group must beat to
// count as a detection.
const SignificanceLevel = 0.05

// EstimatePower partitions the first groupSize*groupCount scores into
// contiguous non-overlapping groups of groupSize, runs a one-sample t-test
// of each group mean against zero, and returns the number of groups whose
// two-sided p-value is at or below SignificanceLevel.
//
// The return value is the raw significant-group count, not a fraction;
// downstream consumers normalize themselves and depend on the count form.
func EstimatePower(scores []float64, groupSize, groupCount int) (int, error) {
	if groupSize < 2 {
		return 0, core.NewDomainError("simulate.EstimatePower", float64(groupSize), "group size must be at least 2")
	}
	need := groupSize * groupCount
	if len(scores) < need {
		return 0, core.NewDimensionError("simulate.EstimatePower", len(scores), need)
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(groupSize - 1)}
	sqrtN := math.Sqrt(float64(groupSize))

	significant := 0
	for g := 0; g < groupCount; g++ {
		group := scores[g*groupSize : (g+1)*groupSize]
		mean, err := stats.Mean(group)
		if err != nil {
			return 0, err
		}
		sd, err := stats.StandardDeviationSample(group)
		if err != nil {
			return 0, err
		}
		t := mean / (sd / sqrtN)
		p := 2 * (1 - tDist.CDF(math.Abs(t)))
		if p <= SignificanceLevel {
			significant++
		}
	}
	return significant, nil
}
