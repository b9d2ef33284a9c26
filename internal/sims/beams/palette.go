package beams

import (
	"image/color"

	"contraption/pkg/grid"
)

// Cell values written into the display buffer.
const (
	// cellDark + tile kind: a tile no beam has touched.
	cellDark uint8 = 0
	// cellLit + tile kind: an energized tile.
	cellLit uint8 = 5
	// cellFront marks a cell holding a front that is still to be expanded.
	cellFront uint8 = 10
	// cellHeat + level (0..heatLevels-1): coverage intensity.
	cellHeat   uint8 = 11
	heatLevels       = 8
)

func darkCell(t grid.TileKind) uint8 { return cellDark + uint8(t) }
func litCell(t grid.TileKind) uint8  { return cellLit + uint8(t) }

// Palette maps display buffer values to colours.
func Palette() []color.RGBA {
	return []color.RGBA{
		// dark tiles: empty, '/', '\', '|', '-'
		{R: 16, G: 16, B: 24, A: 255},
		{R: 70, G: 70, B: 90, A: 255},
		{R: 70, G: 70, B: 90, A: 255},
		{R: 60, G: 90, B: 110, A: 255},
		{R: 60, G: 90, B: 110, A: 255},
		// lit tiles
		{R: 150, G: 120, B: 20, A: 255},
		{R: 255, G: 210, B: 60, A: 255},
		{R: 255, G: 210, B: 60, A: 255},
		{R: 255, G: 240, B: 140, A: 255},
		{R: 255, G: 240, B: 140, A: 255},
		// front
		{R: 255, G: 255, B: 255, A: 255},
		// heat, cold to hot
		{R: 20, G: 30, B: 120, A: 255},
		{R: 30, G: 70, B: 170, A: 255},
		{R: 30, G: 130, B: 190, A: 255},
		{R: 40, G: 170, B: 140, A: 255},
		{R: 120, G: 200, B: 60, A: 255},
		{R: 220, G: 200, B: 40, A: 255},
		{R: 240, G: 130, B: 30, A: 255},
		{R: 230, G: 40, B: 30, A: 255},
	}
}
