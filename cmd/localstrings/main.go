package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"localstrings/internal/adapters/console"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := console.Run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
