package presets

import (
	"image/color"
	"math"

	"honnef.co/go/escher"
)

// Palette styles tiles with a fixed set of fill colors. Tiles are colored by
// their label and by the position of their placement, so that neighboring
// tiles of the simple lattices get different colors.
type Palette struct {
	styles []*escher.Style
}

var _ escher.Styler = (*Palette)(nil)

// NewPalette returns a palette using the fill colors, all stroked with the
// same color and width. It panics if fills is empty.
func NewPalette(stroke color.RGBA, width float64, fills ...color.RGBA) *Palette {
	if len(fills) == 0 {
		panic("NewPalette called without fill colors")
	}
	p := &Palette{styles: make([]*escher.Style, len(fills))}
	for i, fill := range fills {
		p.styles[i] = &escher.Style{Fill: fill, Stroke: stroke, StrokeWidth: width}
	}
	return p
}

// DefaultPalette returns a palette with four muted fills and thin dark
// outlines.
func DefaultPalette() *Palette {
	return NewPalette(color.RGBA{0x22, 0x22, 0x22, 0xff}, 0.02,
		color.RGBA{0xe0, 0x7a, 0x5f, 0xff},
		color.RGBA{0x3d, 0x40, 0x5b, 0xff},
		color.RGBA{0x81, 0xb2, 0x9a, 0xff},
		color.RGBA{0xf2, 0xcc, 0x8f, 0xff},
	)
}

// Len returns the number of fill colors.
func (p *Palette) Len() int { return len(p.styles) }

// Style implements [escher.Styler]. The returned styles are shared between
// tiles.
func (p *Palette) Style(t *escher.Tile) *escher.Style {
	v := t.Transform.Translation()
	i := t.Proto.Index() + int(math.Round(v.X)) + 2*int(math.Round(v.Y))
	n := len(p.styles)
	return p.styles[((i%n)+n)%n]
}
