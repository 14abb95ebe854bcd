package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hcpath/core"
	"github.com/katalvlaran/hcpath/query"
)

func (a *app) newGenQueriesCmd() *cobra.Command {
	var f struct {
		count int
		seed  int64
		out   string
	}
	cmd := &cobra.Command{
		Use:   "genqueries",
		Short: "Generate random reachable query pairs",
		Long: `Generate random source-target pairs for every hop bound from 3 up to the
largest --hops value. The target of each pair is reachable from its source
within the bound. Bucket k is written to <out>/<graph>_k.query.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := &a.cfg.Generate
			flags := cmd.Flags()
			if flags.Changed("count") {
				gen.Count = f.count
			}
			if flags.Changed("seed") {
				gen.Seed = f.seed
			}
			if flags.Changed("out") {
				gen.Out = f.out
			}
			if err := a.cfg.ValidateGenerate(); err != nil {
				return err
			}
			return a.genQueries(cmd)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.count, "count", 0, "queries per hop bound")
	fl.Int64Var(&f.seed, "seed", 0, "random seed")
	fl.StringVar(&f.out, "out", "", "output directory")
	return cmd
}

func (a *app) genQueries(cmd *cobra.Command) error {
	cfg := a.cfg
	log := a.log.WithGraph(cfg.Graph)
	g, err := core.Load(cfg.Graph)
	if err != nil {
		return err
	}

	maxHops := cfg.MaxHops()
	step := max(1, cfg.Generate.Count/10)
	buckets, err := query.Generate(g, maxHops, cfg.Generate.Count,
		query.WithContext(cmd.Context()),
		query.WithSeed(cfg.Generate.Seed),
		query.WithProgress(func(done, total int) {
			if done%step == 0 {
				log.Debug("generating queries", "done", done, "total", total)
			}
		}),
	)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Generate.Out, 0o755); err != nil {
		return err
	}
	for k := query.MinHops; k <= maxHops; k++ {
		path := filepath.Join(cfg.Generate.Out, query.FileName(cfg.Graph, k))
		if err := writeQueries(path, buckets[k]); err != nil {
			return err
		}
		log.Info("queries written", "k", k, "count", len(buckets[k]), "file", path)
		fmt.Fprintln(a.stdout, path)
	}
	return nil
}

func writeQueries(path string, qs []query.Query) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	return query.Write(f, qs)
}
