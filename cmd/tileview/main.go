// Command tileview expands a built-in tiling over a viewport and writes the
// visible tiles as SVG and/or PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"honnef.co/go/escher"
	"honnef.co/go/escher/curve"
	"honnef.co/go/escher/presets"
	"honnef.co/go/escher/render"
)

func main() {
	var (
		preset   = flag.String("preset", "fish", "tiling to draw, one of "+strings.Join(presets.Names(), ", "))
		viewport = flag.String("viewport", "-4,-3,4,3", "visible area as x0,y0,x1,y1")
		svgOut   = flag.String("svg", "", "write an SVG document to this file")
		pngOut   = flag.String("png", "", "write a PNG image to this file")
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		verbose  = flag.Bool("v", false, "log expansion statistics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	escher.SetLogger(logger)
	gg.SetLogger(logger)

	if *svgOut == "" && *pngOut == "" {
		*svgOut = *preset + ".svg"
	}
	bounds, err := parseViewport(*viewport)
	if err != nil {
		log.Fatalf("invalid -viewport: %v", err)
	}
	v, err := expand(*preset, bounds)
	if err != nil {
		log.Fatal(err)
	}

	if *svgOut != "" {
		err := writeFile(*svgOut, func(w io.Writer) error {
			return writeSVG(w, v, *width, *height)
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	if *pngOut != "" {
		err := writeFile(*pngOut, func(w io.Writer) error {
			return writePNG(w, v, *width, *height)
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	escher.Logger().Info("drew tiling", "preset", *preset, "tiles", v.Len(), "svg", *svgOut, "png", *pngOut)
}

// expand builds the named preset with the default palette and expands it
// over bounds.
func expand(preset string, bounds curve.Rect) (*escher.View, error) {
	p, err := presets.Lookup(preset)
	if err != nil {
		return nil, err
	}
	tiling, err := p.New(&escher.Options{Styler: presets.DefaultPalette()})
	if err != nil {
		return nil, err
	}
	v, err := escher.NewDisplay(tiling).Update(bounds)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", p.Name, err)
	}
	return v, nil
}

func writeSVG(w io.Writer, v *escher.View, width, height int) error {
	return render.WriteSVG(w, v, render.SVGOptions{
		Width:  float64(width),
		Height: float64(height),
	})
}

func writePNG(w io.Writer, v *escher.View, width, height int) error {
	return render.WritePNG(w, v, render.RasterOptions{
		Width:      width,
		Height:     height,
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
	})
}

func parseViewport(s string) (curve.Rect, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return curve.Rect{}, fmt.Errorf("want 4 comma-separated numbers, got %q", s)
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return curve.Rect{}, err
		}
		v[i] = n
	}
	r := curve.Rect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}.Abs()
	if !(r.Area() > 0) {
		return curve.Rect{}, fmt.Errorf("viewport %s is empty", r)
	}
	return r, nil
}

func writeFile(name string, write func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
