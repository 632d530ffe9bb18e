package render

import (
	"image/color"

	"cavegen/pkg/grid"
)

// fillStateRGBA converts grid cells into RGBA pixels in buf.
func fillStateRGBA(buf []byte, cells []grid.State, solid, empty color.Color) {
	rOn, gOn, bOn, aOn := solid.RGBA()
	rOff, gOff, bOff, aOff := empty.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == grid.Solid {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillLabelRGBA colours region labels. Label 0 uses palette[0]; other labels
// cycle through the rest of the palette. An empty palette clears the buffer to
// transparent black.
func fillLabelRGBA(buf []byte, labels []int, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range labels {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	for i, l := range labels {
		idx := 0
		if l > 0 && len(palette) > 1 {
			idx = 1 + (l-1)%(len(palette)-1)
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// RegionLabels numbers the 8-connected regions of state s from 1 in
// row-major order of their first cell. Other cells get 0.
func RegionLabels(g *grid.Grid, s grid.State) []int {
	labels := make([]int, g.W*g.H)
	for i, region := range g.Regions(s) {
		for _, idx := range region {
			labels[idx] = i + 1
		}
	}
	return labels
}
