// Package main implements the fixture command, which seeds and removes the
// registered end-to-end test user so a test runner can call it before and
// after a scenario.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/thunderdome-fixtures/internal/redact"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fixture: %s\n", redact.Error(err))
		stop()
		os.Exit(1)
	}
}
