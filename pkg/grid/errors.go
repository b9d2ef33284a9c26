package grid

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a layout has no rows or no columns.
var ErrEmpty = errors.New("grid: layout has zero area")

// ShapeError reports a row whose length differs from the first row.
type ShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("grid: row %d has length %d, want %d", e.Row, e.Got, e.Want)
}

// ParseError reports a character that is not a known tile symbol.
type ParseError struct {
	Char rune
	Row  int
	Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: unrecognised tile %q at row %d, col %d", e.Char, e.Row, e.Col)
}
