package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"cavegen/pkg/contour"
)

// SVGOptions configures WriteSVG.
type SVGOptions struct {
	Width, Height float64
	// GridW and GridH, when set, fix the view to the whole sample lattice
	// instead of stretching the outline's bounding box across the canvas.
	GridW, GridH int
}

// DefaultSVGOptions returns a 600×600 canvas fitted to the outline.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 600, Height: 600}
}

// WriteSVG draws every polygon of cs as one even-odd path, so holes stay
// transparent, over a plain background.
func WriteSVG(w io.Writer, cs []contour.Contour, opts SVGOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultSVGOptions().Width, DefaultSVGOptions().Height
	}
	bw := bufio.NewWriter(w)
	width, height := num(opts.Width), num(opts.Height)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		width, height, width, height)
	fmt.Fprintf(bw, `<rect width="%s" height="%s" fill="%s"/>`+"\n", width, height, hex(Background))

	var (
		vp Viewport
		ok bool
	)
	if opts.GridW > 1 && opts.GridH > 1 {
		vp, ok = FitGrid(opts.GridW, opts.GridH, opts.Width, opts.Height), true
	} else {
		vp, ok = FitContours(cs, opts.Width, opts.Height)
	}
	if ok {
		for _, c := range cs {
			for _, poly := range c.Polygons() {
				fmt.Fprintf(bw, `<path d="%s" fill="%s" fill-opacity="0.8" fill-rule="evenodd" stroke="%s" stroke-width="2"/>`+"\n",
					pathData(poly, vp), hex(Fill), hex(Stroke))
			}
		}
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func pathData(poly contour.Polygon, vp Viewport) string {
	var sb strings.Builder
	for _, r := range poly {
		for i, p := range r {
			x, y := vp.Apply(p)
			if i == 0 {
				sb.WriteString("M")
			} else {
				sb.WriteString(" L")
			}
			sb.WriteString(num(x))
			sb.WriteByte(' ')
			sb.WriteString(num(y))
		}
		sb.WriteString(" Z ")
	}
	return strings.TrimSpace(sb.String())
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
