// Command ecarith is a calculator for affine elliptic curve arithmetic
// over prime fields.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if newRootCmd().ExecuteContext(ctx) != nil {
		stop()
		os.Exit(1)
	}
}
