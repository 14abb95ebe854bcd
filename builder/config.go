// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng           = nil   (pure/deterministic unless seeded)
//   - bidirectional = false (every edge is emitted once, u→v)
//   - selfLoops     = false (RandomSparse skips i→i)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// bidirectional mirrors each emitted edge.
	bidirectional bool
	// selfLoops lets RandomSparse draw i→i.
	selfLoops bool
}

// newBuilderConfig applies options in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
