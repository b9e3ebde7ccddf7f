// Command passhtml produces and reads self-decrypting HTML documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(defaultTerminal())
	if err := cmd.ExecuteContext(ctx); err != nil {
		code := exitFailure
		if !errors.Is(err, context.Canceled) {
			var msg string
			msg, code = describeError(err)
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}
		stop()
		os.Exit(code)
	}
}
