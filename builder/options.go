// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors validate eagerly and panic on programmer error
// (nil RNG). Constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption mutates the builder configuration.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBidirectional makes every constructor emit v→u next to each u→v.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}

// WithSelfLoops lets RandomSparse draw self-loops.
func WithSelfLoops() BuilderOption {
	return func(c *builderConfig) {
		c.selfLoops = true
	}
}
