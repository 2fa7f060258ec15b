package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"

	"go.uber.org/zap"

	"github.com/lukaszgryglicki/kernel3d/internal/log"
	"github.com/lukaszgryglicki/kernel3d/internal/query"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs before exit.
func realMain(args []string) int {
	level := "info"
	if os.Getenv("DEBUG") != "" {
		level = "debug"
	}
	logger, err := log.New(level)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if os.Getenv("PROFILE") != "" {
		f, err := os.Create("cpu.out")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	path := "queries/example.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := run(path, os.Getenv("FORMAT"), logger); err != nil {
		logger.Error("run failed", zap.String("config", path), zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}

func run(path, format string, logger *zap.Logger) error {
	cfg, err := query.LoadConfig(path)
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.Format
	}
	logger.Debug("loaded config",
		zap.String("path", path),
		zap.Int("shapes", len(cfg.Shapes)),
		zap.Int("queries", len(cfg.Queries)),
		zap.Int("workers", cfg.Workers),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rep, err := query.Run(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	return query.WriteReport(w, rep, format)
}
