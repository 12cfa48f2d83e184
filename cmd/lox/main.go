package main

import (
	"context"
	"os"
	"os/signal"

	"go.followtheprocess.codes/lox/internal/cmd"
	"go.followtheprocess.codes/lox/internal/lox"
)

func main() {
	if err := run(); err != nil {
		lox.Report(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cli, err := cmd.Build()
	if err != nil {
		return err
	}

	return cli.Execute(ctx)
}
