package beam

import (
	"errors"

	"contraption/pkg/grid"
)

// ErrExpansionLimit is returned if a trace expands more states than the grid
// can hold. A correct visited set makes this unreachable.
var ErrExpansionLimit = errors.New("beam: expansion limit exceeded")

// Visited is the set of beam fronts seen during one trace.
type Visited map[State]struct{}

// Contains reports whether s was visited.
func (v Visited) Contains(s State) bool {
	_, ok := v[s]
	return ok
}

// Energized projects the visited fronts onto distinct positions. Order is
// unspecified.
func (v Visited) Energized() []Pos {
	seen := make(map[Pos]struct{}, len(v))
	out := make([]Pos, 0, len(v))
	for s := range v {
		if _, ok := seen[s.Pos]; ok {
			continue
		}
		seen[s.Pos] = struct{}{}
		out = append(out, s.Pos)
	}
	return out
}

// EnergizedCount returns how many distinct cells appear in v, ignoring
// direction.
func EnergizedCount(v Visited) int {
	cells := make(map[Pos]struct{}, len(v))
	for s := range v {
		cells[s.Pos] = struct{}{}
	}
	return len(cells)
}

// Tracer follows every beam front spawned from a single start until no new
// fronts remain. The frontier and visited set belong to the Tracer alone; the
// grid is only read.
type Tracer struct {
	g        *grid.Grid
	frontier []State
	visited  Visited

	expansions int
	limit      int
	err        error
}

// NewTracer prepares a trace of g beginning at start.
func NewTracer(g *grid.Grid, start State) (*Tracer, error) {
	if err := checkStart(g, start); err != nil {
		return nil, err
	}
	t := &Tracer{
		g:        g,
		frontier: make([]State, 0, 16),
		visited:  make(Visited, g.Area()),
		limit:    g.Area() * int(directionCount),
	}
	t.visited[start] = struct{}{}
	t.frontier = append(t.frontier, start)
	return t, nil
}

// Step expands one front. It returns false once the frontier is exhausted
// or the trace has failed.
func (t *Tracer) Step() bool {
	if t.err != nil || len(t.frontier) == 0 {
		return false
	}
	t.expansions++
	if t.expansions > t.limit {
		t.err = ErrExpansionLimit
		t.frontier = t.frontier[:0]
		return false
	}

	last := len(t.frontier) - 1
	s := t.frontier[last]
	t.frontier = t.frontier[:last]

	for _, d := range Interact(t.g.At(s.Row, s.Col), s.Dir) {
		next, ok := s.Next(t.g, d)
		if !ok {
			continue
		}
		if _, seen := t.visited[next]; seen {
			// loop closed
			continue
		}
		t.visited[next] = struct{}{}
		t.frontier = append(t.frontier, next)
	}
	return true
}

// Run steps until the trace finishes and returns the visited set.
func (t *Tracer) Run() (Visited, error) {
	for t.Step() {
	}
	return t.visited, t.err
}

// Done reports whether nothing is left to expand.
func (t *Tracer) Done() bool { return t.err != nil || len(t.frontier) == 0 }

// Err returns the error that stopped the trace, if any.
func (t *Tracer) Err() error { return t.err }

// Pending returns the number of fronts waiting to be expanded.
func (t *Tracer) Pending() int { return len(t.frontier) }

// Frontier returns the fronts waiting to be expanded. The slice is only
// valid until the next Step.
func (t *Tracer) Frontier() []State { return t.frontier }

// Expansions returns how many fronts have been expanded so far.
func (t *Tracer) Expansions() int { return t.expansions }

// Visited exposes the fronts seen so far. The map keeps growing while the
// trace runs.
func (t *Tracer) Visited() Visited { return t.visited }

// Trace follows start through g to completion.
func Trace(g *grid.Grid, start State) (Visited, error) {
	t, err := NewTracer(g, start)
	if err != nil {
		return nil, err
	}
	return t.Run()
}

// EnergizedFrom traces a beam entering at (row, col) heading dir and returns
// the number of energized cells.
func EnergizedFrom(g *grid.Grid, row, col int, dir Direction) (int, error) {
	v, err := Trace(g, At(row, col, dir))
	if err != nil {
		return 0, err
	}
	return EnergizedCount(v), nil
}
