package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/gogpu/gg"

	"honnef.co/go/escher"
	"honnef.co/go/escher/curve"
)

var errNilView = errors.New("no view to render")

// RasterOptions configures [Rasterize].
type RasterOptions struct {
	Width, Height int
	// Background fills the image before drawing tiles.
	Background color.RGBA
	// Tolerance of the arc approximation in pixels. Zero means
	// DefaultTolerance.
	Tolerance float64
}

// Rasterize draws the tiles of v into a new image, mapping the view's
// bounds onto the whole image. Tiles are filled and then outlined with their
// style's stroke, in view order.
func Rasterize(v *escher.View, opts RasterOptions) (*image.RGBA, error) {
	dc, err := paint(v, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	img := dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst, nil
}

// WritePNG rasterizes v and encodes the image as PNG.
func WritePNG(w io.Writer, v *escher.View, opts RasterOptions) error {
	dc, err := paint(v, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// paint draws v into a new context. The caller closes the context.
func paint(v *escher.View, opts RasterOptions) (*gg.Context, error) {
	if v == nil {
		return nil, errNilView
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}
	if !(v.Bounds.Area() > 0) {
		return nil, fmt.Errorf("view bounds %s are empty", v.Bounds)
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	if opts.Background.A != 0 {
		dc.ClearWithColor(gg.FromColor(opts.Background))
	}
	dc.SetFillRule(gg.FillRuleNonZero)
	dc.SetLineJoin(gg.LineJoinRound)

	aff := viewTransform(v.Bounds, opts.Width, opts.Height)
	// Tolerances and stroke widths are given in world units, the path is
	// scaled by the view transform.
	scale := float64(opts.Width) / v.Bounds.Width()
	var p curve.BezPath
	for i, t := range v.Tiles {
		s := styleOf(t)
		p = p[:0]
		t.PopulatePath(&p, tol/scale)
		p = p.Transform(aff)
		appendPath(dc, p)
		stroke := s.Stroke.A != 0 && s.StrokeWidth > 0
		if s.Fill.A != 0 {
			dc.SetColor(s.Fill)
			fill := dc.Fill
			if stroke {
				fill = dc.FillPreserve
			}
			if err := fill(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("filling tile %d: %w", i, err)
			}
		}
		if !stroke {
			dc.ClearPath()
			continue
		}
		dc.SetColor(s.Stroke)
		dc.SetLineWidth(s.StrokeWidth * scale)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("stroking tile %d: %w", i, err)
		}
	}
	escher.Logger().Debug("rasterized view", "tiles", v.Len(), "width", opts.Width, "height", opts.Height)
	return dc, nil
}

// appendPath replays p into the context's current path.
func appendPath(dc *gg.Context, p curve.BezPath) {
	for el := range p.Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			dc.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			dc.ClosePath()
		}
	}
}
