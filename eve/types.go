// Package eve declares engine options, results and sentinel errors.
package eve

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/hcpath/core"
)

// Sentinel errors returned by New and Answer.
var (
	// ErrNilGraph indicates New was called with a nil graph.
	ErrNilGraph = errors.New("eve: graph is nil")

	// ErrEmptyGraph indicates a graph with zero vertices.
	ErrEmptyGraph = errors.New("eve: graph has no vertices")

	// ErrHopBound indicates a hop bound below MinHops.
	ErrHopBound = errors.New("eve: hop bound must be at least 3")

	// ErrInvalidQuery indicates a query endpoint outside 0..VN-1.
	ErrInvalidQuery = errors.New("eve: invalid query")

	// ErrClosed indicates the engine was used after Close.
	ErrClosed = errors.New("eve: engine is closed")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("eve: option violation")
)

const (
	// MinHops is the smallest supported hop bound.
	MinHops = 3

	// DefaultOrderingThreshold is the number of undetermined edges above
	// which the verifier re-orders pruned neighbor lists before searching.
	DefaultOrderingThreshold = 1024
)

// Mode selects how much of the pipeline runs per query.
type Mode int

const (
	// Exact verifies undetermined edges and returns the exact edge set.
	Exact Mode = iota
	// UpperBound skips verification and returns every edge that is
	// included or undetermined after labeling.
	UpperBound
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case UpperBound:
		return "upperbound"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts "exact" or "upperbound" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "":
		return Exact, nil
	case "upperbound", "upper-bound", "upper_bound":
		return UpperBound, nil
	}
	return Exact, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
}

// Label is the outcome of classifying one candidate edge.
type Label uint8

const (
	// Excluded edges lie on no qualifying simple path.
	Excluded Label = iota
	// Undetermined edges need exact verification.
	Undetermined
	// Included edges lie on at least one qualifying simple path.
	Included
)

func (l Label) String() string {
	switch l {
	case Excluded:
		return "excluded"
	case Undetermined:
		return "undetermined"
	case Included:
		return "included"
	}
	return fmt.Sprintf("label(%d)", uint8(l))
}

// Options configures an Engine.
type Options struct {
	// Logger receives debug events. Default discards everything.
	Logger *slog.Logger

	// Observer receives per-query statistics. Default is NoopObserver.
	Observer Observer

	// Mode selects Exact (default) or UpperBound answers.
	Mode Mode

	// OrderingThreshold is the undetermined-edge count above which search
	// ordering runs (only for hop bounds above 6).
	OrderingThreshold int

	// EpochCeiling is the largest stamp value the engine may write before
	// it performs a full clear. Lower values force more frequent resets.
	EpochCeiling int32

	// err records the first option violation.
	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer:          NoopObserver{},
		Mode:              Exact,
		OrderingThreshold: DefaultOrderingThreshold,
		EpochCeiling:      math.MaxInt32,
	}
}

// WithLogger sets the debug logger. A nil logger is a violation.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.fail("nil logger")
			return
		}
		o.Logger = l
	}
}

// WithObserver sets the statistics observer; nil restores NoopObserver.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = NoopObserver{}
		}
		o.Observer = obs
	}
}

// WithMode selects Exact or UpperBound answers.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Exact && m != UpperBound {
			o.fail(fmt.Sprintf("unknown mode %d", int(m)))
			return
		}
		o.Mode = m
	}
}

// WithOrderingThreshold sets the search-ordering activation threshold.
// Zero makes ordering run whenever the hop bound allows it.
func WithOrderingThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Sprintf("ordering threshold %d < 0", n))
			return
		}
		o.OrderingThreshold = n
	}
}

// WithEpochCeiling caps stamp values. New rejects ceilings smaller than
// twice the per-query stamp span (hop bound + 1).
func WithEpochCeiling(c int32) Option {
	return func(o *Options) {
		if c <= 0 {
			o.fail(fmt.Sprintf("epoch ceiling %d <= 0", c))
			return
		}
		o.EpochCeiling = c
	}
}

func (o *Options) fail(msg string) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, msg)
	}
}

// Result is the answer to one query.
type Result struct {
	Source core.VertexID
	Target core.VertexID

	// Edges holds the ids of all edges on at least one simple path of at
	// most k hops from Source to Target, sorted ascending.
	Edges []core.EdgeID

	Stats QueryStats
}

// Contains reports whether id is in the result.
func (r *Result) Contains(id core.EdgeID) bool {
	_, ok := slices.BinarySearch(r.Edges, id)
	return ok
}

// Bitmap returns the result edges as a roaring bitmap.
func (r *Result) Bitmap() *roaring.Bitmap {
	return roaring.BitmapOf(r.Edges...)
}

// QueryStats summarizes the work done for one query.
type QueryStats struct {
	Source, Target core.VertexID
	HopBound       int

	// ForwardFirst reports which propagation ran first.
	ForwardFirst bool

	// Candidates is the number of candidate edges labeled.
	Candidates int
	// UpperBound counts edges labeled included or undetermined plus
	// direct source→target edges.
	UpperBound int
	// Undetermined counts edges sent to the verifier.
	Undetermined int
	// Verified counts edges added by the verifier.
	Verified int
	// Answers is the size of the result.
	Answers int

	Departures, Arrivals int
	// AdjacencyOverflow counts InD/OutA entries beyond capacity.
	AdjacencyOverflow int
	// Ordered reports whether search ordering ran.
	Ordered bool

	// MaxFrontier is the largest frontier seen during the query.
	MaxFrontier int
	// SpaceBytes estimates the scratch memory touched by the query.
	SpaceBytes int64

	// EpochReset reports whether this query triggered a full clear.
	EpochReset bool

	Duration time.Duration
}
