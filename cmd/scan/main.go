package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dhi-workshop/internal/cli"
	"dhi-workshop/internal/config"
	"dhi-workshop/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// stdout carries the scan table
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cli.DefaultDeps(cfg)).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
