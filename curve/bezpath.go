package curve

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind:
		return el.P0, true
	case LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path, represented as a slice of path elements.
type BezPath []PathElement

// Transform returns a new path with an affine transformation applied to it.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// CurrentPoint returns the end point of the last element, or false if the
// path is empty or its last subpath has been closed.
func (p BezPath) CurrentPoint() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1].EndPoint()
}

// ControlBox returns a rectangle that conservatively encloses the path,
// using control points directly rather than computing tight bounds for curve
// elements.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for i := range p {
		el := p[i]
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}

	return cbox
}

// SVG converts the path to an SVG path string representation.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

// Winding returns the winding number of pt with respect to the path. Open
// subpaths are treated as closed. The sign of the result depends on the
// direction of the path; a point is inside a path with the non-zero fill
// rule if the winding number isn't zero.
//
// Curves are subdivided until they are flat or can no longer cross the
// horizontal ray through pt.
func (p BezPath) Winding(pt Point) int {
	var w int
	var start, cur Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			w += windingLine(cur, start, pt)
			start, cur = el.P0, el.P0
		case LineToKind:
			w += windingLine(cur, el.P0, pt)
			cur = el.P0
		case QuadToKind:
			w += windingCubic(QuadBez{cur, el.P0, el.P1}.Raise(), pt, 0)
			cur = el.P1
		case CubicToKind:
			w += windingCubic(CubicBez{cur, el.P0, el.P1, el.P2}, pt, 0)
			cur = el.P2
		case ClosePathKind:
			w += windingLine(cur, start, pt)
			cur = start
		}
	}
	return w + windingLine(cur, start, pt)
}

// windingLine returns the signed number of times the line from p0 to p1
// crosses the ray from pt towards positive x.
func windingLine(p0, p1, pt Point) int {
	side := p1.Sub(p0).Cross(pt.Sub(p0))
	if p0.Y <= pt.Y {
		if p1.Y > pt.Y && side > 0 {
			return 1
		}
	} else if p1.Y <= pt.Y && side < 0 {
		return -1
	}
	return 0
}

const (
	maxWindingDepth = 24
	flatEpsilon     = 1e-9
)

func windingCubic(c CubicBez, pt Point, depth int) int {
	cbox := c.ControlBox()
	if pt.Y < cbox.Y0 || pt.Y > cbox.Y1 || pt.X > cbox.X1 {
		return 0
	}
	chord := c.P0.Distance(c.P3)
	if pt.X < cbox.X0 || depth >= maxWindingDepth || c.ControlLength()-chord <= flatEpsilon {
		// The curve and its chord enclose an area that doesn't contain pt,
		// so they cross the ray equally often.
		return windingLine(c.P0, c.P3, pt)
	}
	a, b := c.Split(0.5)
	return windingCubic(a, pt, depth+1) + windingCubic(b, pt, depth+1)
}
