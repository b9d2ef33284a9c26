package beam

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"contraption/internal/logging"
	"contraption/pkg/grid"
)

// SweepResult is the outcome of tracing every boundary entry.
type SweepResult struct {
	// Best is the highest energized count over all entries.
	Best int
	// Start is the first entry, in Edges order, that reached Best.
	Start State
	// Runs is the number of traces performed.
	Runs int
}

// MaxEnergized traces every boundary entry of g one after another and
// returns the highest energized count.
func MaxEnergized(g *grid.Grid) (int, error) {
	best := 0
	for _, start := range Edges(g.Rows(), g.Cols()) {
		v, err := Trace(g, start)
		if err != nil {
			return 0, fmt.Errorf("trace from %v: %w", start, err)
		}
		if n := EnergizedCount(v); n > best {
			best = n
		}
	}
	return best, nil
}

// Sweep traces every boundary entry of g on up to workers goroutines and
// reduces the counts to the maximum. workers <= 0 means runtime.NumCPU().
// Each trace owns its frontier and visited set; g is shared read-only.
func Sweep(ctx context.Context, g *grid.Grid, workers int) (SweepResult, error) {
	logger := logging.FromContext(ctx)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	starts := Edges(g.Rows(), g.Cols())
	if len(starts) == 0 {
		return SweepResult{}, grid.ErrEmpty
	}
	counts := make([]int, len(starts))

	logger.Debug("Sweep starting.", "entries", len(starts), "workers", workers, "rows", g.Rows(), "cols", g.Cols())
	began := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, start := range starts {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			v, err := Trace(g, start)
			if err != nil {
				return fmt.Errorf("trace from %v: %w", start, err)
			}
			counts[i] = EnergizedCount(v)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return SweepResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return SweepResult{}, err
	}

	res := SweepResult{Runs: len(starts)}
	for i, n := range counts {
		if n > res.Best {
			res.Best = n
			res.Start = starts[i]
		}
	}

	logger.Debug("Sweep finished.", "best", res.Best, "start", res.Start.String(), "elapsed", time.Since(began))
	return res, nil
}
