package query

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hcpath/bfs"
	"github.com/katalvlaran/hcpath/core"
)

// ErrGenerateExhausted indicates Generate gave up before filling every bucket.
var ErrGenerateExhausted = errors.New("query: generation budget exhausted")

const (
	// DefaultSeed seeds the source sampler.
	DefaultSeed int64 = 2022

	// MinHops is the smallest bucket Generate fills.
	MinHops = 3

	// attemptsPerQuery bounds the number of sources drawn per requested query.
	attemptsPerQuery = 64
)

// GenerateOptions configures Generate.
type GenerateOptions struct {
	Ctx  context.Context
	Seed int64
	// OnProgress, if set, receives the number of productive sources so far.
	OnProgress func(done, total int)
}

// GenerateOption mutates GenerateOptions.
type GenerateOption func(*GenerateOptions)

// WithSeed replaces DefaultSeed.
func WithSeed(seed int64) GenerateOption {
	return func(o *GenerateOptions) { o.Seed = seed }
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) GenerateOption {
	return func(o *GenerateOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn func(done, total int)) GenerateOption {
	return func(o *GenerateOptions) { o.OnProgress = fn }
}

// Generate returns, for every k in [MinHops, maxHops], count queries whose
// target is reachable from the source within k hops.
//
// Each draw picks a uniform random source and runs a BFS bounded by
// maxHops. A source that reaches at least one other vertex contributes one
// query to every bucket: its target for bucket k is drawn uniformly from
// the vertices discovered within k hops.
func Generate(g *core.Graph, maxHops, count int, opts ...GenerateOption) (map[int][]Query, error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	if maxHops < MinHops || count < 1 {
		return nil, fmt.Errorf("query: generate maxHops=%d count=%d: %w", maxHops, count, ErrNoQueries)
	}
	o := GenerateOptions{Ctx: context.Background(), Seed: DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}

	rng := rand.New(rand.NewSource(o.Seed))
	vn := g.NumVertices()
	out := make(map[int][]Query, maxHops-MinHops+1)
	for k := MinHops; k <= maxHops; k++ {
		out[k] = make([]Query, 0, count)
	}

	done := 0
	for attempt := 0; done < count; attempt++ {
		if attempt >= attemptsPerQuery*count {
			return out, fmt.Errorf("%w: %d of %d queries after %d sources", ErrGenerateExhausted, done, count, attempt)
		}
		s := core.VertexID(rng.Intn(vn))
		res, err := bfs.BFS(g, s, bfs.WithContext(o.Ctx), bfs.WithMaxDepth(maxHops))
		if err != nil {
			return out, err
		}
		// Order is sorted by depth; Order[1:reach[k]] holds depths 1..k.
		if len(res.Order) < 2 {
			continue
		}
		reach := 1
		for k := 1; k <= maxHops; k++ {
			for reach < len(res.Order) && int(res.Depth[res.Order[reach]]) <= k {
				reach++
			}
			if k >= MinHops {
				t := res.Order[1+rng.Intn(reach-1)]
				out[k] = append(out[k], Query{Source: s, Target: t})
			}
		}
		done++
		if o.OnProgress != nil {
			o.OnProgress(done, count)
		}
	}
	return out, nil
}
