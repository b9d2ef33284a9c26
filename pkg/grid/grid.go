// Package grid holds the immutable tile layout a beam is traced through.
package grid

import (
	"fmt"
	"io"
	"strings"
)

// Grid stores tile kinds in row-major order. It is never mutated after
// construction, so one Grid may be shared by any number of concurrent traces.
type Grid struct {
	rows, cols int
	tiles      []TileKind
}

// Parse builds a Grid from a text layout, one line per row.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if allEmpty(lines) {
		return nil, ErrEmpty
	}

	var (
		cols  = -1
		tiles []TileKind
	)
	for row, line := range lines {
		runes := []rune(line)
		if cols < 0 {
			cols = len(runes)
			tiles = make([]TileKind, 0, cols*len(lines))
		}
		if len(runes) != cols {
			return nil, &ShapeError{Row: row, Want: cols, Got: len(runes)}
		}
		for col, r := range runes {
			if r > 0x7f {
				return nil, &ParseError{Char: r, Row: row, Col: col}
			}
			kind, ok := TileFor(byte(r))
			if !ok {
				return nil, &ParseError{Char: r, Row: row, Col: col}
			}
			tiles = append(tiles, kind)
		}
	}
	return &Grid{rows: len(lines), cols: cols, tiles: tiles}, nil
}

func allEmpty(lines []string) bool {
	for _, line := range lines {
		if line != "" {
			return false
		}
	}
	return true
}

// Read consumes r fully and parses it as a layout.
func Read(r io.Reader) (*Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read layout: %w", err)
	}
	return Parse(string(raw))
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Area returns rows*cols.
func (g *Grid) Area() int { return g.rows * g.cols }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the tile at (row, col). Callers must check InBounds first.
func (g *Grid) At(row, col int) TileKind { return g.tiles[g.Index(row, col)] }

// String renders the grid back into its text layout.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			b.WriteByte(g.At(row, col).Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
