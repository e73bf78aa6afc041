package symmetry

import "fmt"

// Convert returns the transform taking a score under source to the score
// target would assign the same underlying pair, recovered against a
// baseline of 1.
//
// For target == source the transform is the identity on every reachable
// score. For a direction-insensitive source (the log-ratio family) only the
// magnitude of the converted score matches the direct computation; the sign
// is lost by design, not by defect.
func Convert(target, source Metric) func(score float64) (float64, error) {
	return ConvertWithBaseline(target, source, 1)
}

// ConvertWithBaseline is Convert against an explicit known baseline.
func ConvertWithBaseline(target, source Metric, baseline float64) func(score float64) (float64, error) {
	return func(score float64) (float64, error) {
		x, y, err := source.Invert(score, baseline)
		if err != nil {
			return 0, fmt.Errorf("convert %s to %s: %w", source.Kind(), target.Kind(), err)
		}
		return target.Apply(x, y), nil
	}
}
