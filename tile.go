package escher

import (
	"image/color"

	"honnef.co/go/escher/curve"
)

// PartShape binds an edge part to the edge it lies on and to its curve.
type PartShape struct {
	Part EdgePart
	Edge *Edge
	// Offset is the fraction of the edge that precedes the part.
	Offset float64
	Curve  *PartCurve
}

// LineTransform maps the part curve's normalized space into the shape's
// space. A clockwise part maps (0, 0) to the part's start on its edge and
// (1, 0) to its end; a counter-clockwise part is additionally rotated by a
// half turn about its midpoint.
func (ps *PartShape) LineTransform() curve.Affine {
	return ps.Edge.Transform().Mul(ps.subTransform())
}

// subTransform places the part along the baseline of its edge's normalized
// space.
func (ps *PartShape) subTransform() curve.Affine {
	a := ps.Part.Amount
	if ps.Part.Clockwise {
		return curve.Affine{N0: a, N3: a, N4: ps.Offset}
	}
	return curve.Affine{N0: -a, N3: -a, N4: ps.Offset + a}
}

// Position returns the part's position in a tile placed by aff.
func (ps *PartShape) Position(aff curve.Affine) EdgePartPosition {
	return partPosition(ps.Edge, ps.Offset, ps.Part, aff)
}

// Prototype is the canonical geometry of the tiles with one label. All tiles
// with that label share it.
type Prototype struct {
	Label string
	Shape *Shape
	// Transform places the prototype in the tiling's definition.
	Transform curve.Affine
	// Parts lists the parts of all edges, in edge order.
	Parts []*PartShape

	index int
}

// Index returns the position of the prototype in its tiling.
func (p *Prototype) Index() int { return p.index }

// Part returns the index of the part with the given ID, or -1.
func (p *Prototype) Part(id int) int {
	for i, ps := range p.Parts {
		if ps.Part.ID == id {
			return i
		}
	}
	return -1
}

// Style is the appearance assigned to a tile.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
}

// Styler assigns styles to newly created tiles. Style may return nil to
// leave a tile unstyled; it must not modify the tile.
type Styler interface {
	Style(t *Tile) *Style
}

// StylerFunc adapts a function to the [Styler] interface.
type StylerFunc func(t *Tile) *Style

func (fn StylerFunc) Style(t *Tile) *Style { return fn(t) }

// Tile is a placed copy of a prototype. Tiles returned in a [View] must not
// be modified.
type Tile struct {
	Proto     *Prototype
	Transform curve.Affine
	// Style is nil for unstyled tiles.
	Style *Style
}

func (t *Tile) Label() string { return t.Proto.Label }

// IsCanonical reports whether the tile is placed exactly like its prototype.
func (t *Tile) IsCanonical() bool { return t.Transform == t.Proto.Transform }

// PartPosition returns the world position of the tile's i-th part.
func (t *Tile) PartPosition(i int) EdgePartPosition {
	return t.Proto.Parts[i].Position(t.Transform)
}

// partTransform returns the transform from the normalized space of part i
// to world space.
func (t *Tile) partTransform(i int) curve.Affine {
	return t.Transform.Mul(t.Proto.Parts[i].LineTransform())
}

// Bounds returns a rectangle containing the tile.
func (t *Tile) Bounds() curve.Rect {
	var bbox curve.Rect
	for i, ps := range t.Proto.Parts {
		b := ps.Curve.Bounds(t.partTransform(i))
		if i == 0 {
			bbox = b
		} else {
			bbox = bbox.Union(b)
		}
	}
	return bbox
}

// isClockwise reports whether the tile's edges run clockwise in world
// space. Reflections invert the shape's winding.
func (t *Tile) isClockwise() bool {
	return t.Proto.Shape.IsClockwise() != (t.Transform.Determinant() < 0)
}

// PopulatePath adds the outline of the tile to p as a single closed
// contour. The contour always runs clockwise, whatever the winding of the
// shape and the orientation of the individual parts. Arcs are approximated
// to within tolerance.
func (t *Tile) PopulatePath(p *curve.BezPath, tolerance float64) {
	parts := t.Proto.Parts
	forward := t.isClockwise()
	var edge *Edge
	var edgeAff curve.Affine
	for k := range parts {
		i := k
		if !forward {
			i = len(parts) - 1 - k
		}
		ps := parts[i]
		if ps.Edge != edge {
			edge = ps.Edge
			edgeAff = t.Transform.Mul(edge.Transform())
		}
		aff := edgeAff.Mul(ps.subTransform())
		ps.Curve.AppendTo(p, aff, ps.Part.Clockwise != forward, tolerance)
	}
	p.ClosePath()
}

// Path returns the outline of the tile. See [Tile.PopulatePath].
func (t *Tile) Path(tolerance float64) curve.BezPath {
	var p curve.BezPath
	t.PopulatePath(&p, tolerance)
	return p
}

// containsTolerance is the accuracy with which arcs are approximated when
// testing containment.
const containsTolerance = 1e-6

// Contains reports whether pt lies inside the tile's outline.
func (t *Tile) Contains(pt curve.Point) bool {
	if !t.Bounds().Touches(curve.NewRectFromPoints(pt, pt)) {
		return false
	}
	return t.Path(containsTolerance).Winding(pt) != 0
}
