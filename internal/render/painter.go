//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"cavegen/pkg/grid"
)

// GridPainter uploads grid cells into a single RGBA image, one pixel per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads g into the painter image and draws it scaled onto dst. Grids
// of a different size are ignored; allocate a new painter for them.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *grid.Grid, solid, empty color.Color, scale int) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	fillStateRGBA(gp.buf, g.Cells(), solid, empty)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
