// Command cavegen generates one cave and writes it as SVG, GeoJSON-style
// JSON, ASCII art or PNG.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	"cavegen/internal/app"
	"cavegen/internal/render"
	"cavegen/pkg/cave"
	"cavegen/pkg/contour"
)

type options struct {
	format     string
	out        string
	size       float64
	fitGrid    bool
	regions    bool
	strict     bool
	cpuProfile string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	var o options
	fs.StringVar(&o.format, "format", "svg", "output format: svg, json, ascii or png")
	fs.StringVar(&o.out, "o", "", "output file (default stdout)")
	fs.Float64Var(&o.size, "size", 600, "SVG canvas size in pixels")
	fs.BoolVar(&o.fitGrid, "fit-grid", false, "SVG: map the whole grid instead of the outline bounds")
	fs.BoolVar(&o.regions, "regions", false, "PNG: colour each solid region separately")
	fs.BoolVar(&o.strict, "strict", false, "drop outlines that run into the map edge")
	fs.StringVar(&o.cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if o.cpuProfile != "" {
		stop, err := startCPUProfile(o.cpuProfile)
		if err != nil {
			return fmt.Errorf("cpuprofile: %w", err)
		}
		defer stop()
	}

	params, opts, err := cfg.Resolve(fs)
	if err != nil {
		return err
	}
	if o.strict {
		opts = append(opts, cave.WithContourOptions(contour.WithBorderClosing(false)))
	}
	res, err := cave.Run(params, opts...)
	if err != nil {
		return err
	}
	log.Printf("seed %d: %d ring(s), %d hole(s)", res.Seed, res.Contours[0].Len(), res.Contours[0].Holes())

	if o.out == "" {
		return write(stdout, res, cfg.Scale, o)
	}
	f, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := write(f, res, cfg.Scale, o); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func write(w io.Writer, res *cave.Result, scale int, o options) error {
	switch o.format {
	case "svg":
		opts := render.SVGOptions{Width: o.size, Height: o.size}
		if o.fitGrid {
			opts.GridW, opts.GridH = res.Grid.W, res.Grid.H
			opts.Height = o.size * float64(res.Grid.H-1) / float64(res.Grid.W-1)
		}
		return render.WriteSVG(w, res.Contours, opts)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Seed     int64             `json:"seed"`
			Params   cave.Params       `json:"params"`
			Contours []contour.Contour `json:"contours"`
		}{res.Seed, res.Params, res.Contours})
	case "ascii":
		_, err := io.WriteString(w, res.Grid.String())
		return err
	case "png":
		if o.regions {
			return png.Encode(w, render.RegionImage(res.Grid, scale, render.RegionPalette))
		}
		return png.Encode(w, render.GridImage(res.Grid, scale, render.Fill, render.Background))
	}
	return fmt.Errorf("unknown format %q", o.format)
}
