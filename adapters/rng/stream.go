// Package rng provides the deterministic RNGPort adapter used by sweeps.
package rng

import (
	"context"
	"math/rand"
)

// Adapter derives deterministic *rand.Rand streams from string keys and a
// base seed.
type Adapter struct{}

// New creates an RNG adapter
func New() *Adapter {
	return &Adapter{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (a *Adapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(seed)), nil
}

// Stream creates a deterministic RNG stream for a specific sweep task.
// The seed is derived by hashing batchID + stageName + taskKey onto the base
// seed, so identical tasks of identical batches replay identically.
func (a *Adapter) Stream(ctx context.Context, batchID, stageName, taskKey string, baseSeed int64) (*rand.Rand, error) {
	seed := baseSeed
	if batchID != "" {
		seed += int64(hashString(batchID))
	}
	if stageName != "" {
		seed += int64(hashString(stageName))
	}
	if taskKey != "" {
		seed += int64(hashString(taskKey))
	}
	return rand.New(rand.NewSource(seed)), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = hash*33 + uint32(c)
	}
	return hash
}
