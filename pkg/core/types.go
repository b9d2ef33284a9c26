// Package core defines the contract between animated beam simulations and
// the viewer that draws them.
package core

import (
	"fmt"
	"sort"

	"contraption/pkg/grid"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is a simulation the viewer can step and draw.
type Sim interface {
	Name() string
	Size() Size
	// Reset restarts the simulation from its initial state.
	Reset()
	// Step advances one tick. It reports false once nothing is left to do.
	Step() bool
	// Cells returns one palette index per cell in row-major order.
	Cells() []uint8
	// Status is a one-line summary for the window title.
	Status() string
}

// Factory constructs a Sim over a layout using optional key/value settings.
type Factory func(g *grid.Grid, cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// New builds the simulation registered under name.
func New(name string, g *grid.Grid, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %v)", name, Names())
	}
	return f(g, cfg)
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
