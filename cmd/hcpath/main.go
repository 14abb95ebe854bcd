// Command hcpath answers hop-constrained s-t simple path edge queries over
// large directed graphs.
//
//	hcpath genqueries --graph web.txt.zst --hops 8 --count 1000 --out queries
//	hcpath run --graph web.txt.zst --hops 4,6,8 --queries queries/web_8.query --answers out
//	hcpath inspect --graph web.txt.zst
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
