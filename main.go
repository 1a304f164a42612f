package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Termination signals cancel the pending dialog or authentication.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}
