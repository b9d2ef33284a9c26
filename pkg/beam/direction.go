// Package beam traces light through a grid.Grid and counts the cells it
// energizes.
package beam

import "fmt"

// Direction is the heading of a beam front.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left

	directionCount
)

// Row/column deltas indexed by Direction.
var dirVectors = [directionCount][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool { return d < directionCount }

// Delta returns the row and column offset of one step in direction d.
func (d Direction) Delta() (int, int) {
	v := dirVectors[d]
	return v[0], v[1]
}

// Vertical reports whether d runs along a column.
func (d Direction) Vertical() bool { return d == Up || d == Down }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection accepts a direction name ("up", "right", ...) or one of the
// arrow glyphs ^ > v <.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up", "Up", "UP", "^", "u":
		return Up, nil
	case "right", "Right", "RIGHT", ">", "r":
		return Right, nil
	case "down", "Down", "DOWN", "v", "d":
		return Down, nil
	case "left", "Left", "LEFT", "<", "l":
		return Left, nil
	}
	return 0, fmt.Errorf("beam: unknown direction %q", s)
}
