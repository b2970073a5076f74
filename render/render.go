// Package render draws the tiles of an [escher.View] as SVG documents and
// raster images.
//
// Rendering only reads tiles. Views may be rendered while other goroutines
// read them too.
package render

import (
	"image/color"

	"honnef.co/go/escher"
	"honnef.co/go/escher/curve"
)

// DefaultStyle is used for tiles without a style.
var DefaultStyle = escher.Style{
	Stroke:      color.RGBA{0, 0, 0, 0xff},
	StrokeWidth: 0.02,
}

// DefaultTolerance is the accuracy, in pixels, with which arcs are
// approximated.
const DefaultTolerance = 0.25

func styleOf(t *escher.Tile) *escher.Style {
	if t.Style == nil {
		return &DefaultStyle
	}
	return t.Style
}

// viewTransform maps bounds onto a width×height image.
func viewTransform(bounds curve.Rect, width, height int) curve.Affine {
	sx := float64(width) / bounds.Width()
	sy := float64(height) / bounds.Height()
	return curve.Scale(sx, sy).Mul(curve.Translate(curve.Vec(-bounds.X0, -bounds.Y0)))
}
