// Package metrics exports engine statistics to Prometheus.
//
// Observer implements eve.Observer and is safe for concurrent use, so one
// instance can be shared by every worker engine of a batch run. Serve
// exposes a registry over HTTP for the lifetime of a context.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/hcpath/eve"
)

const namespace = "hcpath"

// Observer records per-query engine statistics.
type Observer struct {
	queries      *prometheus.CounterVec
	answerEdges  prometheus.Histogram
	candidates   prometheus.Histogram
	latency      prometheus.Histogram
	confirmed    prometheus.Counter
	undetermined prometheus.Counter
	overflow     prometheus.Counter
	epochResets  prometheus.Counter
}

var _ eve.Observer = (*Observer)(nil)

// NewObserver creates an Observer and registers its collectors with reg.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	edgeBuckets := prometheus.ExponentialBuckets(1, 4, 10)
	o := &Observer{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Queries answered, by whether search ordering ran.",
		}, []string{"ordered"}),
		answerEdges: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_answer_edges",
			Help:      "Edges in each query answer.",
			Buckets:   edgeBuckets,
		}),
		candidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_candidate_edges",
			Help:      "Candidate edges labeled per query.",
			Buckets:   edgeBuckets,
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Wall time per query.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		confirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifier_confirmed_total",
			Help:      "Edges added to answers by the verifier.",
		}),
		undetermined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifier_undetermined_total",
			Help:      "Edges handed to the verifier.",
		}),
		overflow: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adjacency_overflow_total",
			Help:      "Departure/arrival entries dropped at capacity.",
		}),
		epochResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "epoch_resets_total",
			Help:      "Full scratch clears performed by engines.",
		}),
	}
	for _, c := range []prometheus.Collector{
		o.queries, o.answerEdges, o.candidates, o.latency,
		o.confirmed, o.undetermined, o.overflow, o.epochResets,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ObserveQuery implements eve.Observer.
func (o *Observer) ObserveQuery(s eve.QueryStats) {
	ordered := "false"
	if s.Ordered {
		ordered = "true"
	}
	o.queries.WithLabelValues(ordered).Inc()
	o.answerEdges.Observe(float64(s.Answers))
	o.candidates.Observe(float64(s.Candidates))
	o.latency.Observe(s.Duration.Seconds())
	o.confirmed.Add(float64(s.Verified))
	o.undetermined.Add(float64(s.Undetermined))
	o.overflow.Add(float64(s.AdjacencyOverflow))
}

// ObserveEpochReset implements eve.Observer.
func (o *Observer) ObserveEpochReset() {
	o.epochResets.Inc()
}

// Serve exposes g at addr under /metrics until ctx is done. It returns
// the bound address once listening, and a channel that yields the server
// error (nil after a clean shutdown).
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) (string, <-chan error, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	done := make(chan error, 1)
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()
	return ln.Addr().String(), done, nil
}
