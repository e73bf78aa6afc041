package ports

// ProgressPort consumes discrete steps-completed notifications from
// long-running sweeps. Implementations must be safe for concurrent use;
// the sweep driver reports from every worker.
type ProgressPort interface {
	// Step records n completed sample-units.
	Step(n int64)
}
