package beams

import (
	"fmt"

	"contraption/pkg/beam"
	"contraption/pkg/core"
	"contraption/pkg/grid"
)

// Coverage traces PerTick boundary entries each tick and shades every cell
// by how many entries have energized it so far.
type Coverage struct {
	g      *grid.Grid
	cfg    Config
	starts []beam.State
	next   int
	trace  func(*grid.Grid, beam.State) (beam.Visited, error)
	err    error

	hits  []int
	best  int
	bestS beam.State
	cells []uint8
}

// NewCoverage builds a Coverage sim over g. A non-positive PerTick is
// raised to one.
func NewCoverage(g *grid.Grid, cfg Config) *Coverage {
	cfg.PerTick = max(cfg.PerTick, 1)
	c := &Coverage{
		g:      g,
		cfg:    cfg,
		starts: beam.Edges(g.Rows(), g.Cols()),
		trace:  beam.Trace,
		hits:   make([]int, g.Area()),
		cells:  make([]uint8, g.Area()),
	}
	c.Reset()
	return c
}

// Name returns the simulation identifier.
func (c *Coverage) Name() string { return "coverage" }

// Size returns the grid dimensions.
func (c *Coverage) Size() core.Size { return core.Size{W: c.g.Cols(), H: c.g.Rows()} }

// Cells exposes the display buffer.
func (c *Coverage) Cells() []uint8 { return c.cells }

// Reset clears all accumulated hits.
func (c *Coverage) Reset() {
	c.next = 0
	c.err = nil
	c.best = 0
	c.bestS = beam.State{}
	for i := range c.hits {
		c.hits[i] = 0
	}
	c.paint()
}

// Step traces up to PerTick further entries. A failed trace stops the sim;
// see Err.
func (c *Coverage) Step() bool {
	if c.err != nil || c.next >= len(c.starts) {
		return false
	}
	for i := 0; i < c.cfg.PerTick && c.next < len(c.starts); i++ {
		start := c.starts[c.next]
		c.next++
		v, err := c.trace(c.g, start)
		if err != nil {
			c.err = fmt.Errorf("trace from %v: %w", start, err)
			break
		}
		cells := v.Energized()
		for _, p := range cells {
			c.hits[c.g.Index(p.Row, p.Col)]++
		}
		if len(cells) > c.best {
			c.best = len(cells)
			c.bestS = start
		}
	}
	c.paint()
	return true
}

// Best returns the highest energized count seen so far and its entry.
func (c *Coverage) Best() (int, beam.State) { return c.best, c.bestS }

// Err returns the error that stopped the sim, if any.
func (c *Coverage) Err() error { return c.err }

// Status summarises progress.
func (c *Coverage) Status() string {
	if c.err != nil {
		return fmt.Sprintf("%d/%d entries, stopped: %v", c.next, len(c.starts), c.err)
	}
	return fmt.Sprintf("%d/%d entries, best %d from %v", c.next, len(c.starts), c.best, c.bestS)
}

func (c *Coverage) paint() {
	for i, n := range c.hits {
		if n == 0 || c.next == 0 {
			c.cells[i] = darkCell(c.g.At(i/c.g.Cols(), i%c.g.Cols()))
			continue
		}
		level := (n*heatLevels - 1) / c.next
		if level >= heatLevels {
			level = heatLevels - 1
		}
		c.cells[i] = cellHeat + uint8(level)
	}
}

func init() {
	core.Register("coverage", func(g *grid.Grid, cfg map[string]string) (core.Sim, error) {
		return NewCoverage(g, FromMap(cfg)), nil
	})
}
