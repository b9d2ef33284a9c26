package beam

import (
	"fmt"

	"contraption/pkg/grid"
)

// Pos is a grid coordinate.
type Pos struct {
	Row, Col int
}

// State is a beam front: where it is and which way it travels. States
// compare equal field by field, which makes them usable as map keys.
type State struct {
	Pos
	Dir Direction
}

// At is shorthand for building a State.
func At(row, col int, dir Direction) State {
	return State{Pos: Pos{Row: row, Col: col}, Dir: dir}
}

// Next steps one cell in direction d from s. ok is false when the step
// leaves g.
func (s State) Next(g *grid.Grid, d Direction) (State, bool) {
	dr, dc := d.Delta()
	row, col := s.Row+dr, s.Col+dc
	if !g.InBounds(row, col) {
		return State{}, false
	}
	return At(row, col, d), true
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d %v)", s.Row, s.Col, s.Dir)
}

// BoundsError reports a start state outside the grid.
type BoundsError struct {
	Start      State
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("beam: start %v outside %dx%d grid", e.Start, e.Rows, e.Cols)
}

func checkStart(g *grid.Grid, s State) error {
	if !g.InBounds(s.Row, s.Col) || !s.Dir.Valid() {
		return &BoundsError{Start: s, Rows: g.Rows(), Cols: g.Cols()}
	}
	return nil
}
