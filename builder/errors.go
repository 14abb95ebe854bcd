// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w: "Cycle: n=2 < min=3: <sentinel>".
//   - Validation panics are confined to option constructors (WithRand(nil)).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrVertexRange indicates Link referenced a vertex that does not exist yet.
var ErrVertexRange = errors.New("builder: vertex out of range")

// ErrConstructFailed indicates the builder could not realize the requested
// topology (nil constructor, exhausted retries).
var ErrConstructFailed = errors.New("builder: construction failed")
