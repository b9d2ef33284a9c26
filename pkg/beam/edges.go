package beam

// Edges lists every boundary entry of a rows x cols grid, each aimed inward.
// There are 2*(rows+cols) of them, in this order:
//   - left edge heading Right, row 0 to rows-1
//   - right edge heading Left, row 0 to rows-1
//   - top edge heading Down, col 0 to cols-1
//   - bottom edge heading Up, col 0 to cols-1
func Edges(rows, cols int) []State {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	out := make([]State, 0, 2*(rows+cols))
	for row := 0; row < rows; row++ {
		out = append(out, At(row, 0, Right))
	}
	for row := 0; row < rows; row++ {
		out = append(out, At(row, cols-1, Left))
	}
	for col := 0; col < cols; col++ {
		out = append(out, At(0, col, Down))
	}
	for col := 0; col < cols; col++ {
		out = append(out, At(rows-1, col, Up))
	}
	return out
}
