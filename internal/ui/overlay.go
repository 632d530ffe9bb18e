//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"cavegen/pkg/contour"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the traced outline on top of the cell view. Keys 1 and 2
// toggle the fill and the outline.
type Overlay struct {
	scale      int
	showFill   bool
	showStroke bool

	fill   color.RGBA
	stroke color.RGBA

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewOverlay constructs an overlay for a view scaled by scale pixels per cell.
func NewOverlay(scale int, fill, stroke color.RGBA) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Overlay{
		scale:      scale,
		showFill:   true,
		showStroke: true,
		fill:       color.RGBA{R: fill.R, G: fill.G, B: fill.B, A: 204},
		stroke:     stroke,
		white:      img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFill = !o.showFill
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStroke = !o.showStroke
	}
}

// Draw renders every polygon of cs. Contour coordinates address samples,
// which sit at cell centres on screen.
func (o *Overlay) Draw(screen *ebiten.Image, cs []contour.Contour) {
	if !o.showFill && !o.showStroke {
		return
	}
	for _, c := range cs {
		for _, poly := range c.Polygons() {
			path := o.path(poly)
			if o.showFill {
				o.vertices, o.indices = path.AppendVerticesAndIndicesForFilling(o.vertices[:0], o.indices[:0])
				o.drawTriangles(screen, o.fill, ebiten.EvenOdd)
			}
			if o.showStroke {
				o.vertices, o.indices = path.AppendVerticesAndIndicesForStroke(o.vertices[:0], o.indices[:0], &vector.StrokeOptions{
					Width:    2,
					LineJoin: vector.LineJoinRound,
				})
				o.drawTriangles(screen, o.stroke, ebiten.FillAll)
			}
		}
	}
}

func (o *Overlay) path(poly contour.Polygon) *vector.Path {
	var path vector.Path
	s := float32(o.scale)
	for _, r := range poly {
		for i, p := range r {
			x, y := (float32(p.X)+0.5)*s, (float32(p.Y)+0.5)*s
			if i == 0 {
				path.MoveTo(x, y)
				continue
			}
			path.LineTo(x, y)
		}
		path.Close()
	}
	return &path
}

func (o *Overlay) drawTriangles(screen *ebiten.Image, col color.RGBA, rule ebiten.FillRule) {
	r, g, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	for i := range o.vertices {
		v := &o.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: rule, AntiAlias: true}
	screen.DrawTriangles(o.vertices, o.indices, o.white, op)
}
