package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/hcpath/core"
	"github.com/katalvlaran/hcpath/eve"
	"github.com/katalvlaran/hcpath/logging"
	"github.com/katalvlaran/hcpath/query"
)

// ErrNoGraph indicates a Runner without a graph.
var ErrNoGraph = errors.New("batch: runner has no graph")

const (
	tracerName = "github.com/katalvlaran/hcpath/batch"

	// DefaultProgressInterval spaces progress log lines.
	DefaultProgressInterval = 5 * time.Second
)

// Runner answers batches of queries for one graph and hop bound.
type Runner struct {
	Graph   *core.Graph
	MaxHops int
	// Workers is the number of engines run in parallel; values below 2
	// answer sequentially on one engine.
	Workers int
	// Options are passed to every engine.
	Options []eve.Option
	// Observer, if set, is attached to every engine. It must be safe for
	// concurrent use when Workers > 1.
	Observer eve.Observer
	Logger   *logging.Logger
	// Tracer defaults to the global otel tracer provider.
	Tracer trace.Tracer
	// ProgressInterval defaults to DefaultProgressInterval.
	ProgressInterval time.Duration
}

// Run answers qs in order.
func (r *Runner) Run(ctx context.Context, qs []query.Query) (*Report, error) {
	if r.Graph == nil {
		return nil, ErrNoGraph
	}
	log := r.Logger
	if log == nil {
		log = logging.NoopLogger()
	}
	tracer := r.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	interval := r.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	rep := &Report{
		RunID:    uuid.NewString(),
		HopBound: r.MaxHops,
		Outcomes: make([]Outcome, len(qs)),
		Coverage: roaring.New(),
	}
	log = log.WithRun(rep.RunID).WithHops(r.MaxHops)

	ctx, span := tracer.Start(ctx, "batch.Run", trace.WithAttributes(
		attribute.String("run.id", rep.RunID),
		attribute.Int("k", r.MaxHops),
		attribute.Int("queries", len(qs)),
		attribute.Int("graph.vertices", r.Graph.NumVertices()),
		attribute.Int("graph.edges", r.Graph.NumEdges()),
	))
	defer span.End()

	workers := max(1, min(r.Workers, len(qs)))
	log.Info("batch started", "queries", len(qs), "workers", workers)
	start := time.Now()

	opts := append([]eve.Option{eve.WithLogger(log.Logger)}, r.Options...)
	if r.Observer != nil {
		opts = append(opts, eve.WithObserver(r.Observer))
	}

	p := &progress{every: rate.Sometimes{Interval: interval}, total: len(qs), log: log}
	shards := make([]*roaring.Bitmap, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*len(qs)/workers, (w+1)*len(qs)/workers
		shards[w] = roaring.New()
		g.Go(func() error {
			return r.shard(gctx, tracer, w, opts, qs[lo:hi], rep.Outcomes[lo:hi], shards[w], p, log)
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("batch aborted", "error", err)
		return nil, err
	}

	for _, b := range shards {
		rep.Coverage.Or(b)
	}
	rep.Elapsed = time.Since(start)
	rep.tally()

	span.SetAttributes(
		attribute.Int("answered", rep.Answered),
		attribute.Int("invalid", rep.Invalid),
		attribute.Int64("coverage", int64(rep.Coverage.GetCardinality())),
	)
	log.Info("batch finished",
		"answered", rep.Answered,
		"invalid", rep.Invalid,
		"answer_edges", rep.AnswerEdges,
		"distinct_edges", rep.Coverage.GetCardinality(),
		"elapsed", rep.Elapsed)
	return rep, nil
}

// shard answers one contiguous slice of queries on its own engine.
func (r *Runner) shard(ctx context.Context, tracer trace.Tracer, id int, opts []eve.Option,
	qs []query.Query, out []Outcome, cover *roaring.Bitmap, p *progress, log *logging.Logger) error {
	ctx, span := tracer.Start(ctx, "batch.shard", trace.WithAttributes(
		attribute.Int("shard", id),
		attribute.Int("queries", len(qs)),
	))
	defer span.End()

	e, err := eve.New(r.Graph, r.MaxHops, opts...)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("batch: shard %d: %w", id, err)
	}
	defer e.Close()

	for i, q := range qs {
		if err := ctx.Err(); err != nil {
			return err
		}
		out[i].Query = q
		res, err := e.Answer(q.Source, q.Target)
		if err != nil {
			if !errors.Is(err, eve.ErrInvalidQuery) {
				return err
			}
			out[i].Err = err
			log.Warn("invalid query", "query", q.String(), "error", err)
		} else {
			out[i].Edges = res.Edges
			out[i].Stats = res.Stats
			cover.AddMany(res.Edges)
		}
		p.tick()
	}
	return nil
}

// progress logs at most once per interval across all shards.
type progress struct {
	every rate.Sometimes
	done  atomic.Int64
	total int
	log   *logging.Logger
}

func (p *progress) tick() {
	n := p.done.Add(1)
	p.every.Do(func() {
		p.log.Info("batch progress", "done", n, "total", p.total)
	})
}
