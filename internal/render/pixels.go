package render

import "image/color"

// fillCells writes one RGBA pixel per cell into buf: on for live cells, off
// for dead ones.
func fillCells(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		col := off
		if c != 0 {
			col = on
		}
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}
