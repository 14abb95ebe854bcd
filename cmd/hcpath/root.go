package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/hcpath/config"
	"github.com/katalvlaran/hcpath/logging"
)

const tracerName = "github.com/katalvlaran/hcpath/cmd/hcpath"

// app carries state shared by all subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	cfgPath string
	cfg     config.Config
	log     *logging.Logger

	// flag values; applied over the config file only when set
	graph       string
	hops        []int
	logLevel    string
	logFormat   string
	trace       bool
	metricsAddr string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "hcpath",
		Short: "Hop-constrained simple path edge queries",
		Long: `hcpath finds every edge that lies on some simple path of at most k hops
between a source and a target vertex.

Settings come from an optional YAML file (--config) and are overridden by
flags given on the command line.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.graph, "graph", "", "edge-list file (.zst, .gz and .lz4 are decompressed)")
	pf.IntSliceVar(&a.hops, "hops", nil, "hop bounds, comma separated")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "auto, text or json")
	pf.BoolVar(&a.trace, "trace", false, "print OpenTelemetry spans to stderr")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on host:port during a run")

	root.AddCommand(a.newRunCmd(), a.newGenQueriesCmd(), a.newInspectCmd())
	return root
}

// setup loads the configuration, applies persistent flag overrides and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("graph") {
		cfg.Graph = a.graph
	}
	if flags.Changed("hops") {
		cfg.Hops = a.hops
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("trace") {
		cfg.Trace = a.trace
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = a.metricsAddr
	}
	a.cfg = cfg

	a.log, err = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: a.stderr,
	})
	return err
}

// tracing installs a stdout span exporter when tracing is enabled. The
// returned stop function flushes pending spans.
func (a *app) tracing() (trace.Tracer, func(), error) {
	if !a.cfg.Trace {
		return otel.Tracer(tracerName), func() {}, nil
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(a.stderr), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("create exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes("",
			attribute.String("service.name", "hcpath"),
		)),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			a.log.Warn("trace shutdown", "error", err)
		}
	}
	return tp.Tracer(tracerName), stop, nil
}
