// Command nanite fits indentation models to AFM force curves.
//
// Usage:
//
//	nanite models
//	nanite eval curve.csv
//	nanite fit --config fit.yaml curve.csv
//	nanite pack curve.csv curve.nan
//	nanite unpack curve.nan > curve.csv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
