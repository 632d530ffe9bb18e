package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"cavegen/pkg/grid"
)

// Default colours shared by the raster, SVG and on-screen renderers.
var (
	Background = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	Fill       = color.RGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff}
	Stroke     = color.RGBA{R: 0x0f, G: 0x76, B: 0x6e, A: 0xff}
)

// RegionPalette colours region labels: index 0 is the background.
var RegionPalette = []color.RGBA{
	{R: 0x11, G: 0x18, B: 0x27, A: 0xff},
	{R: 0x4a, G: 0xde, B: 0x80, A: 0xff},
	{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
	{R: 0xef, G: 0x44, B: 0x44, A: 0xff},
	{R: 0xa8, G: 0x55, B: 0xf7, A: 0xff},
	{R: 0x06, G: 0xb6, B: 0xd4, A: 0xff},
	{R: 0xec, G: 0x48, B: 0x99, A: 0xff},
}

// GridImage renders one pixel per cell and scales the result by scale with
// nearest-neighbour sampling so cell edges stay sharp.
func GridImage(g *grid.Grid, scale int, solid, empty color.Color) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillStateRGBA(src.Pix, g.Cells(), solid, empty)
	return upscale(src, scale)
}

// RegionImage renders each solid region in its own palette colour.
func RegionImage(g *grid.Grid, scale int, palette []color.RGBA) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	fillLabelRGBA(src.Pix, RegionLabels(g, grid.Solid), palette)
	return upscale(src, scale)
}

func upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
