package main

import (
	"context"
	"os"
	"os/signal"

	"go.llib.dev/frameless/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Main(ctx, Command{})
}
