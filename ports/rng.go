package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic simulation
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// Stream creates a deterministic RNG stream for a specific sweep task.
	// The same (batch, stage, task, seed) tuple always yields an identical
	// stream, so a rerun of a sweep reproduces its tensor exactly.
	Stream(ctx context.Context, batchID, stageName, taskKey string, baseSeed int64) (*rand.Rand, error)
}
