package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/coursehub/internal/buildinfo"
	"github.com/dmitrijs2005/coursehub/internal/client/cli"
	"github.com/dmitrijs2005/coursehub/internal/client/config"
	"github.com/dmitrijs2005/coursehub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewJSONLogger(os.Stderr, "warn")

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		logger.Error(ctx, "config error", "error", err.Error())
		os.Exit(1)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err.Error())
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "cli failed", "error", err.Error())
		os.Exit(1)
	}
}
