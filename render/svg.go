package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"honnef.co/go/escher"
	"honnef.co/go/escher/curve"
)

// SVGOptions configures [WriteSVG].
type SVGOptions struct {
	// Width and height of the document in user units. Zero values use the
	// size of the view's bounds.
	Width, Height float64
	// Precision is the maximum number of decimals of coordinates. Zero
	// means 4.
	Precision int
	// Tolerance of the arc approximation in world units. Zero means
	// DefaultTolerance pixels.
	Tolerance float64
	// Background fills the document if its alpha isn't zero.
	Background color.RGBA
}

// WriteSVG writes the tiles of v as a standalone SVG document whose view box
// is the view's bounds.
func WriteSVG(w io.Writer, v *escher.View, opts SVGOptions) error {
	if v == nil {
		return errNilView
	}
	b := v.Bounds
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = b.Width()
	}
	if height <= 0 {
		height = b.Height()
	}
	prec := opts.Precision
	if prec <= 0 {
		prec = 4
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance * b.Width() / width
	}
	num := func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	bw := bufio.NewWriter(w)
	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(bw, format, args...)
	}

	printf(`<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	printf(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		num(width), num(height), num(b.X0), num(b.Y0), num(b.Width()), num(b.Height()))
	if opts.Background.A != 0 {
		printf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(b.X0), num(b.Y0), num(b.Width()), num(b.Height()), hexColor(opts.Background))
	}
	var p curve.BezPath
	for _, t := range v.Tiles {
		if err != nil {
			break
		}
		p = p[:0]
		t.PopulatePath(&p, tol)
		printf(`<path d="`)
		if err == nil {
			err = p.WriteSVG(bw, curve.SVGOptions{MaxPrecision: prec})
		}
		printf(`"%s/>`+"\n", styleAttrs(styleOf(t)))
	}
	printf("</svg>\n")
	if err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	escher.Logger().Debug("wrote SVG", "tiles", v.Len())
	return nil
}

func styleAttrs(s *escher.Style) string {
	attrs := " fill=" + paint(s.Fill)
	if s.Fill.A != 0 && s.Fill.A != 0xff {
		attrs += fmt.Sprintf(` fill-opacity="%.3g"`, float64(s.Fill.A)/0xff)
	}
	if s.Stroke.A == 0 || s.StrokeWidth <= 0 {
		return attrs + ` stroke="none"`
	}
	attrs += " stroke=" + paint(s.Stroke)
	if s.Stroke.A != 0xff {
		attrs += fmt.Sprintf(` stroke-opacity="%.3g"`, float64(s.Stroke.A)/0xff)
	}
	attrs += fmt.Sprintf(` stroke-width="%s" stroke-linejoin="round"`, strconv.FormatFloat(s.StrokeWidth, 'f', -1, 64))
	return attrs
}

func paint(c color.RGBA) string {
	if c.A == 0 {
		return `"none"`
	}
	return `"` + hexColor(c) + `"`
}

// hexColor formats the color channels of c, undoing the alpha
// premultiplication of color.RGBA.
func hexColor(c color.RGBA) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
