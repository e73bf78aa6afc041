package symmetry

// Ratio is the plain symmetry ratio y/x.
type Ratio struct{}

// Kind returns the variant tag.
func (Ratio) Kind() Kind { return KindRatio }

// Apply computes y/x. Defined for x != 0.
func (Ratio) Apply(x, y float64) float64 {
	return y / x
}

// Invert solves score = y/baseline for y.
func (Ratio) Invert(score, baseline float64) (float64, float64, error) {
	return baseline, score * baseline, nil
}
