package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hcpath/core"
)

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print graph size and degree figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Graph == "" {
				return fmt.Errorf("inspect: --graph is required")
			}
			start := time.Now()
			g, err := core.Load(a.cfg.Graph)
			if err != nil {
				return err
			}
			loaded := time.Since(start)
			maxOut, maxIn := g.MaxDegrees()

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "graph\t%s\n", a.cfg.Graph)
			fmt.Fprintf(tw, "vertices\t%d\n", g.NumVertices())
			fmt.Fprintf(tw, "edges\t%d\n", g.NumEdges())
			fmt.Fprintf(tw, "max out-degree\t%d\n", maxOut)
			fmt.Fprintf(tw, "max in-degree\t%d\n", maxIn)
			fmt.Fprintf(tw, "csr bytes\t%d\n", g.SizeBytes())
			fmt.Fprintf(tw, "load\t%s\n", loaded.Round(time.Microsecond))
			return tw.Flush()
		},
	}
}
