package render

import "image/color"

// fillPaletteRGBA writes one RGBA pixel per cell into buf, looking each cell
// value up in palette. Values past the end of the palette use its last
// colour; an empty palette clears buf to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}
