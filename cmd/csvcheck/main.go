package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/csvcheck/cmd/csvcheck/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, cmd.ErrInvalidData):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "csvcheck: %v\n", err)
		os.Exit(2)
	}
}
