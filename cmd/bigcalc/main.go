// bigcalc is a command-line calculator for arbitrary-precision integers
// and decimals.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/govalues/bignum/cmd/bigcalc/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Main().ExecuteContext(ctx); err != nil {
		slog.Error("bigcalc failed", "err", err)
		stop()
		os.Exit(1)
	}
}
