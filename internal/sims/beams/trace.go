// Package beams animates beam traces for the viewer.
package beams

import (
	"fmt"

	"contraption/pkg/beam"
	"contraption/pkg/core"
	"contraption/pkg/grid"
)

// Trace animates a single beam.Tracer, expanding a few fronts per tick.
type Trace struct {
	g     *grid.Grid
	cfg   Config
	tr    *beam.Tracer
	cells []uint8
}

// NewTrace builds a Trace sim. It fails if the start lies outside g. A
// non-positive PerTick is raised to one.
func NewTrace(g *grid.Grid, cfg Config) (*Trace, error) {
	cfg.PerTick = max(cfg.PerTick, 1)
	t := &Trace{g: g, cfg: cfg, cells: make([]uint8, g.Area())}
	if err := t.reset(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Trace) reset() error {
	tr, err := beam.NewTracer(t.g, t.cfg.Start)
	if err != nil {
		return err
	}
	t.tr = tr
	t.paint()
	return nil
}

// Name returns the simulation identifier.
func (t *Trace) Name() string { return "trace" }

// Size returns the grid dimensions.
func (t *Trace) Size() core.Size { return core.Size{W: t.g.Cols(), H: t.g.Rows()} }

// Cells exposes the display buffer.
func (t *Trace) Cells() []uint8 { return t.cells }

// Reset restarts the trace from the configured start.
func (t *Trace) Reset() {
	if err := t.reset(); err != nil {
		panic(fmt.Sprintf("beams: start %v was accepted by NewTrace: %v", t.cfg.Start, err))
	}
}

// Step expands up to PerTick fronts.
func (t *Trace) Step() bool {
	progressed := false
	for i := 0; i < t.cfg.PerTick && t.tr.Step(); i++ {
		progressed = true
	}
	t.paint()
	return progressed
}

// Energized returns the number of cells lit so far.
func (t *Trace) Energized() int { return beam.EnergizedCount(t.tr.Visited()) }

// Status summarises progress.
func (t *Trace) Status() string {
	state := "running"
	if t.tr.Done() {
		state = "done"
	}
	return fmt.Sprintf("from %v: %d energized, %d pending (%s)", t.cfg.Start, t.Energized(), t.tr.Pending(), state)
}

func (t *Trace) paint() {
	for row := 0; row < t.g.Rows(); row++ {
		for col := 0; col < t.g.Cols(); col++ {
			t.cells[t.g.Index(row, col)] = darkCell(t.g.At(row, col))
		}
	}
	for s := range t.tr.Visited() {
		t.cells[t.g.Index(s.Row, s.Col)] = litCell(t.g.At(s.Row, s.Col))
	}
	if !t.tr.Done() {
		for _, p := range t.tr.Frontier() {
			t.cells[t.g.Index(p.Row, p.Col)] = cellFront
		}
	}
}

func init() {
	core.Register("trace", func(g *grid.Grid, cfg map[string]string) (core.Sim, error) {
		return NewTrace(g, FromMap(cfg))
	})
}
