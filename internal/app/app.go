// Package app is helper for simple cli apps.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options of Run.
type Options struct {
	// Level of logger, zapcore.InfoLevel by default.
	Level zapcore.Level
}

// Run calls run with development logger and context that is cancelled on
// interrupt, exiting with code 2 on error.
func Run(opt Options, run func(ctx context.Context, lg *zap.Logger) error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(opt.Level)
	lg, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg); err != nil {
		cancel()
		_ = lg.Sync()
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
