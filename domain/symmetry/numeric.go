package symmetry

// Real constrains the scalar argument types a metric invocation promotes.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ApplyAs applies the metric for kind to two possibly differently typed
// numeric arguments, promoting both to float64 before dispatch. Trailing
// params feed the parameterized variant, e.g.
// ApplyAs(KindWeightedEuclideanNormalized, 3, 4.5, sigma).
func ApplyAs[X Real, Y Real](kind Kind, x X, y Y, params ...float64) (float64, error) {
	m, err := New(kind, params...)
	if err != nil {
		return 0, err
	}
	return m.Apply(float64(x), float64(y)), nil
}
