package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"contraption/internal/config"
	"contraption/internal/logging"
	"contraption/pkg/beam"
	"contraption/pkg/grid"
)

// exitError carries a specific process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

// run traces the configured start and sweeps every edge entry, printing both
// counts to stdout. Logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Parse("beam", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &exitError{code: 2, err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &exitError{code: 2, err: err}
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)
	ctx = logging.WithLogger(ctx, logger)

	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := grid.Read(f)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	logger.Debug("Layout loaded.", "path", cfg.Input, "rows", g.Rows(), "cols", g.Cols())

	dir, _ := cfg.Direction()
	one, err := beam.EnergizedFrom(g, cfg.Row, cfg.Col, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Part 1: %d\n", one)

	res, err := beam.Sweep(ctx, g, cfg.Workers)
	if err != nil {
		return err
	}
	logger.Info("Edge sweep complete.", slog.Int("runs", res.Runs), slog.String("best_start", res.Start.String()))
	fmt.Fprintf(stdout, "Part 2: %d\n", res.Best)
	return nil
}
