package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hcpath/batch"
	"github.com/katalvlaran/hcpath/core"
	"github.com/katalvlaran/hcpath/eve"
	"github.com/katalvlaran/hcpath/metrics"
	"github.com/katalvlaran/hcpath/query"
)

func (a *app) newRunCmd() *cobra.Command {
	var f struct {
		queries                      []string
		answers, stats, runlog, mode string
		method                       string
		workers, threshold           int
	}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Answer query files under each hop bound",
		Long: `Answer every query file under every hop bound.

For a query file Q and bound k, answers go to <answers>/Q-k.<method>.answer
and statistics to <stats>/Q-k.csv. One timing line per (Q, k) is appended
to the run log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run := &a.cfg.Run
			flags := cmd.Flags()
			if flags.Changed("queries") {
				run.Queries = f.queries
			}
			if flags.Changed("answers") {
				run.Answers = f.answers
			}
			if flags.Changed("stats") {
				run.Stats = f.stats
			}
			if flags.Changed("runlog") {
				run.RunLog = f.runlog
			}
			if flags.Changed("method") {
				run.Method = f.method
			}
			if flags.Changed("workers") {
				run.Workers = f.workers
			}
			if flags.Changed("mode") {
				run.Mode = f.mode
			}
			if flags.Changed("ordering-threshold") {
				run.OrderingThreshold = f.threshold
			}
			if err := a.cfg.ValidateRun(); err != nil {
				return err
			}
			return a.run(cmd.Context())
		},
	}
	fl := cmd.Flags()
	fl.StringSliceVar(&f.queries, "queries", nil, "query files, comma separated")
	fl.StringVar(&f.answers, "answers", "", "directory for answer files")
	fl.StringVar(&f.stats, "stats", "", "directory for statistics files")
	fl.StringVar(&f.runlog, "runlog", "", "CSV file receiving one timing line per query file and bound")
	fl.StringVar(&f.method, "method", "", "method label used in file names and the run log")
	fl.IntVar(&f.workers, "workers", 0, "engines answering in parallel")
	fl.StringVar(&f.mode, "mode", "", "exact or upperbound")
	fl.IntVar(&f.threshold, "ordering-threshold", 0, "undetermined edges above which search ordering runs")
	return cmd
}

func (a *app) run(ctx context.Context) error {
	cfg := a.cfg
	mode, err := eve.ParseMode(cfg.Run.Mode)
	if err != nil {
		return err
	}

	tracer, stopTracing, err := a.tracing()
	if err != nil {
		return err
	}
	defer stopTracing()

	var observer eve.Observer
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		obs, err := metrics.NewObserver(reg)
		if err != nil {
			return err
		}
		srvCtx, cancel := context.WithCancel(ctx)
		addr, done, err := metrics.Serve(srvCtx, cfg.MetricsAddr, reg)
		if err != nil {
			cancel()
			return fmt.Errorf("metrics: %w", err)
		}
		defer func() {
			cancel()
			if err := <-done; err != nil {
				a.log.Warn("metrics server", "error", err)
			}
		}()
		a.log.Info("serving metrics", "addr", addr)
		observer = obs
	}

	log := a.log.WithGraph(cfg.Graph)
	start := time.Now()
	g, err := core.Load(cfg.Graph)
	if err != nil {
		return err
	}
	loaded := time.Since(start)
	log.Info("graph loaded", "vertices", g.NumVertices(), "edges", g.NumEdges(), "elapsed", loaded)

	opts := []eve.Option{eve.WithMode(mode), eve.WithOrderingThreshold(cfg.Run.OrderingThreshold)}
	for _, qpath := range cfg.Run.Queries {
		qs, err := query.ReadFile(qpath)
		if err != nil {
			return err
		}
		for _, k := range cfg.Hops {
			r := &batch.Runner{
				Graph:    g,
				MaxHops:  k,
				Workers:  cfg.Run.Workers,
				Options:  opts,
				Observer: observer,
				Logger:   log,
				Tracer:   tracer,
			}
			rep, err := r.Run(ctx, qs)
			if err != nil {
				return err
			}
			if err := a.record(g, qpath, k, loaded, rep); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s k=%d queries=%d answered=%d invalid=%d answer_edges=%d distinct_edges=%d elapsed=%s\n",
				qpath, k, len(qs), rep.Answered, rep.Invalid, rep.AnswerEdges,
				rep.Coverage.GetCardinality(), rep.Elapsed.Round(time.Microsecond))
		}
	}
	return nil
}

// record writes the configured output files for one report.
func (a *app) record(g *core.Graph, qpath string, k int, loaded time.Duration, rep *batch.Report) error {
	run := a.cfg.Run
	if run.Answers != "" {
		name := batch.AnswerFileName(qpath, k, run.Method)
		if err := batch.WriteFile(run.Answers, name, rep, batch.WriteAnswers); err != nil {
			return err
		}
	}
	if run.Stats != "" {
		name := batch.StatisticsFileName(qpath, k)
		if err := batch.WriteFile(run.Stats, name, rep, batch.WriteStatistics); err != nil {
			return err
		}
	}
	if run.RunLog == "" {
		return nil
	}
	return batch.AppendRunLog(run.RunLog, batch.RunRecord{
		Method:    run.Method,
		Time:      time.Now(),
		Graph:     a.cfg.Graph,
		QueryFile: qpath,
		HopBound:  k,
		Vertices:  g.NumVertices(),
		Edges:     g.NumEdges(),
		Load:      loaded,
		Queries:   len(rep.Outcomes),
		Total:     rep.Elapsed,
	})
}
