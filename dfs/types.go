// Package dfs defines options and result types for simple-path enumeration.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/hcpath/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates an endpoint outside the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrBadHopBound indicates a hop bound below 1.
	ErrBadHopBound = errors.New("dfs: hop bound must be positive")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dfs: option violation")
)

// Option configures SimplePaths.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnPath, if non-nil, receives every complete path as edge ids in
	// walk order. The slice is reused; copy it to retain it.
	OnPath func(path []core.EdgeID) error

	// MaxPaths, if positive, stops the walk after that many paths.
	MaxPaths int

	err error
}

// DefaultOptions returns Background context, no hook and no path limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath installs fn as the per-path hook.
func WithOnPath(fn func(path []core.EdgeID) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithMaxPaths limits the number of enumerated paths; n must be >= 0
// (0 means no limit).
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxPaths = n
	}
}

// PathsResult captures the outcome of SimplePaths.
type PathsResult struct {
	// Paths is the number of simple paths found.
	Paths int

	// Edges is the sorted union of edge ids over all found paths.
	Edges []core.EdgeID

	// Truncated reports that MaxPaths stopped the walk early.
	Truncated bool
}
