package curve

import (
	"fmt"
	"math"
)

type SegmentKind int

const (
	// A straight line from P0 to P1.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier from P0 to P2 with control point P1.
	QuadKind
	// A cubic Bézier from P0 to P3 with control points P1 and P2.
	CubicKind
	// An elliptical arc from P0 to P1, described by Radii, XRotation,
	// LargeArc and Clockwise.
	ArcKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quadratic"
	case CubicKind:
		return "cubic"
	case ArcKind:
		return "arc"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// NumPoints returns the number of points a segment of this kind is
// described by, endpoints included.
func (k SegmentKind) NumPoints() int {
	switch k {
	case LineKind, ArcKind:
		return 2
	case QuadKind:
		return 3
	case CubicKind:
		return 4
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(k)))
	}
}

// Segment is one piece of an edge: a line, a quadratic or cubic Bézier, or an
// elliptical arc.
//
// Which fields are meaningful depends on Kind. The zero value is not a valid
// segment.
type Segment struct {
	Kind           SegmentKind
	P0, P1, P2, P3 Point

	// Only used by ArcKind.
	Radii     Vec2
	XRotation float64
	LargeArc  bool
	// Clockwise is the SVG sweep flag: the arc runs in the direction of
	// positive angles, which is clockwise in y-down coordinates.
	Clockwise bool
}

func (l Line) Seg() Segment     { return Segment{Kind: LineKind, P0: l.P0, P1: l.P1} }
func (q QuadBez) Seg() Segment   { return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2} }
func (c CubicBez) Seg() Segment  { return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3} }
func (a SVGArc) Seg() Segment {
	return Segment{
		Kind:      ArcKind,
		P0:        a.From,
		P1:        a.To,
		Radii:     a.Radii,
		XRotation: a.XRotation,
		LargeArc:  a.LargeArc,
		Clockwise: a.Sweep,
	}
}

func (seg Segment) Line() Line      { return Line{seg.P0, seg.P1} }
func (seg Segment) Quad() QuadBez    { return QuadBez{seg.P0, seg.P1, seg.P2} }
func (seg Segment) Cubic() CubicBez  { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }
func (seg Segment) SVGArc() SVGArc {
	return SVGArc{
		From:      seg.P0,
		To:        seg.P1,
		Radii:     seg.Radii,
		XRotation: seg.XRotation,
		LargeArc:  seg.LargeArc,
		Sweep:     seg.Clockwise,
	}
}

// arc returns the center parametrization of an arc segment, or false if the
// arc degenerates to a straight line.
func (seg Segment) arc() (Arc, bool) {
	return seg.SVGArc().Arc()
}

// Points returns the segment's defining points in order, endpoints included.
func (seg Segment) Points() []Point {
	pts := [4]Point{seg.P0, seg.P1, seg.P2, seg.P3}
	return pts[:seg.Kind.NumPoints()]
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind, ArcKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(seg.Kind)))
	}
}

// Eval evaluates the segment at t ∈ [0, 1].
func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	case ArcKind:
		if a, ok := seg.arc(); ok {
			return a.Eval(t)
		}
		return seg.Line().Eval(t)
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(seg.Kind)))
	}
}

// Transform applies aff to the segment.
//
// Béziers and lines transform exactly. An arc's radii are scaled by the
// lengths of its transformed radius vectors and its rotation follows the
// transformed x radius; under shear this only approximates the true image
// of the arc, which is an ellipse with different axes.
func (seg Segment) Transform(aff Affine) Segment {
	out := seg
	out.P0 = seg.P0.Transform(aff)
	out.P1 = seg.P1.Transform(aff)
	switch seg.Kind {
	case LineKind:
	case QuadKind:
		out.P2 = seg.P2.Transform(aff)
	case CubicKind:
		out.P2 = seg.P2.Transform(aff)
		out.P3 = seg.P3.Transform(aff)
	case ArcKind:
		rx := VecFromAngle(seg.XRotation).Mul(seg.Radii.X).Transform(aff)
		ry := VecFromAngle(seg.XRotation + math.Pi/2).Mul(seg.Radii.Y).Transform(aff)
		out.Radii = Vec(rx.Hypot(), ry.Hypot())
		out.XRotation = rx.Angle()
		if aff.Determinant() < 0 {
			out.Clockwise = !seg.Clockwise
		}
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(seg.Kind)))
	}
	return out
}

// Reverse returns the same segment traversed from end to start.
func (seg Segment) Reverse() Segment {
	out := seg
	switch seg.Kind {
	case LineKind:
		out.P0, out.P1 = seg.P1, seg.P0
	case QuadKind:
		out.P0, out.P2 = seg.P2, seg.P0
	case CubicKind:
		out.P0, out.P1, out.P2, out.P3 = seg.P3, seg.P2, seg.P1, seg.P0
	case ArcKind:
		out.P0, out.P1 = seg.P1, seg.P0
		out.Clockwise = !seg.Clockwise
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(seg.Kind)))
	}
	return out
}

// ApproximateBounds returns an axis-aligned rectangle that contains the
// segment after transforming it by aff.
//
// Lines are bounded exactly. Béziers are bounded by their transformed control
// points, which contain the curve by the convex hull property. Arcs are
// bounded exactly, even under shear.
func (seg Segment) ApproximateBounds(aff Affine) Rect {
	switch seg.Kind {
	case LineKind:
		return NewRectFromPoints(seg.P0.Transform(aff), seg.P1.Transform(aff))
	case QuadKind:
		return seg.Quad().Transform(aff).ControlBox()
	case CubicKind:
		return seg.Cubic().Transform(aff).ControlBox()
	case ArcKind:
		if a, ok := seg.arc(); ok {
			return a.BoundingBox(aff)
		}
		return NewRectFromPoints(seg.P0.Transform(aff), seg.P1.Transform(aff))
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(seg.Kind)))
	}
}

// approxLength returns an upper bound of the arc length of the segment after
// transforming it by aff.
func (seg Segment) approxLength(aff Affine) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Transform(aff).Length()
	case QuadKind:
		return seg.Quad().Transform(aff).ControlLength()
	case CubicKind:
		return seg.Cubic().Transform(aff).ControlLength()
	case ArcKind:
		a, ok := seg.arc()
		if !ok {
			return seg.Line().Transform(aff).Length()
		}
		// The Frobenius norm bounds the largest singular value, and thus the
		// largest radius of the transformed ellipse.
		m := aff.Mul(a.unitMap())
		r := math.Sqrt(m.N0*m.N0 + m.N1*m.N1 + m.N2*m.N2 + m.N3*m.N3)
		return math.Abs(a.SweepAngle) * r
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(seg.Kind)))
	}
}

// Hit is the result of a successful hit test.
type Hit struct {
	// The point on the segment closest to the probe.
	Point Point
	// The segment parameter of Point.
	T float64
	// The squared distance between the probe and Point.
	DistSq float64
}

const (
	// Bounds on the parameter step of the linear scan in HitTest.
	minHitStep = 1e-5
	maxHitStep = 1.0 / 32
)

// HitStep returns the parameter step HitTest uses when scanning a curve for
// the given tolerance. Lines are solved exactly and report 0.
func (seg Segment) HitStep(tolerance float64, aff Affine) float64 {
	if seg.Kind == LineKind {
		return 0
	}
	step := tolerance / seg.approxLength(aff)
	if !(step < maxHitStep) {
		// Also catches NaN from a zero length segment.
		step = maxHitStep
	}
	return max(step, minHitStep)
}

// HitTest finds the point of the segment, transformed by aff, that is closest
// to pt. It reports false if that point is further away than tolerance.
//
// Lines are solved by projection. Curves are rejected early if pt lies
// outside their bounds inflated by tolerance, and are otherwise scanned at
// parameter steps of roughly tolerance divided by the curve's length.
//
// Tolerance must be positive; an infinite tolerance always hits.
func (seg Segment) HitTest(pt Point, tolerance float64, aff Affine) (Hit, bool) {
	if !(tolerance > 0) {
		panic(fmt.Sprintf("hit test tolerance must be positive, got %g", tolerance))
	}
	tol2 := tolerance * tolerance

	if seg.Kind == LineKind {
		l := seg.Line().Transform(aff)
		distSq, t := l.Nearest(pt)
		if distSq > tol2 {
			return Hit{}, false
		}
		return Hit{Point: l.Eval(t), T: t, DistSq: distSq}, true
	}

	if !seg.ApproximateBounds(aff).Inflate(tolerance, tolerance).Touches(NewRectFromPoints(pt, pt)) {
		return Hit{}, false
	}

	step := seg.HitStep(tolerance, aff)
	best := Hit{DistSq: math.Inf(1)}
	probe := func(t float64) {
		p := seg.Eval(t).Transform(aff)
		if d := p.DistanceSquared(pt); d < best.DistSq {
			best = Hit{Point: p, T: t, DistSq: d}
		}
	}
	n := int(math.Ceil(1 / step))
	for i := range n {
		probe(float64(i) / float64(n))
	}
	probe(1)
	if best.DistSq > tol2 {
		return Hit{}, false
	}
	return best, true
}

// Split splits the segment at t into two segments of the same kind whose
// concatenation is the original segment. t must lie in the open interval
// (0, 1).
//
// Béziers are split with de Casteljau's algorithm, arcs are split by angle.
func (seg Segment) Split(t float64) (Segment, Segment) {
	if !(t > 0 && t < 1) {
		panic(fmt.Sprintf("split parameter %g outside of (0, 1)", t))
	}
	switch seg.Kind {
	case LineKind:
		a, b := seg.Line().Split(t)
		return a.Seg(), b.Seg()
	case QuadKind:
		a, b := seg.Quad().Split(t)
		return a.Seg(), b.Seg()
	case CubicKind:
		a, b := seg.Cubic().Split(t)
		return a.Seg(), b.Seg()
	case ArcKind:
		arc, ok := seg.arc()
		if !ok {
			pm := seg.Line().Eval(t)
			a, b := seg, seg
			a.P1 = pm
			b.P0 = pm
			return a, b
		}
		a0, a1 := arc.Split(t)
		mid := a0.End()
		half := func(a Arc, p0, p1 Point) Segment {
			return Segment{
				Kind:      ArcKind,
				P0:        p0,
				P1:        p1,
				Radii:     a.Radii,
				XRotation: a.XRotation,
				LargeArc:  math.Abs(a.SweepAngle) > math.Pi,
				Clockwise: seg.Clockwise,
			}
		}
		return half(a0, seg.P0, mid), half(a1, mid, seg.P1)
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(seg.Kind)))
	}
}

// Tangent returns the derivative of the segment at t ∈ [0, 1], transformed by
// the linear part of aff.
func (seg Segment) Tangent(t float64, aff Affine) Vec2 {
	if !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("tangent parameter %g outside of [0, 1]", t))
	}
	var d Vec2
	switch seg.Kind {
	case LineKind:
		d = seg.Line().Deriv()
	case QuadKind:
		d = Vec2(seg.Quad().Differentiate().Eval(t))
	case CubicKind:
		d = Vec2(seg.Cubic().Differentiate().Eval(t))
	case ArcKind:
		if a, ok := seg.arc(); ok {
			d = a.Deriv(t)
		} else {
			d = seg.Line().Deriv()
		}
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(seg.Kind)))
	}
	return d.Transform(aff)
}

// AppendTo adds the segment, transformed by aff, to the path. If reverse is
// true the segment is added from its end to its start.
//
// The segment continues the path's open subpath, if there is one, so that
// consecutive segments form a single contour even when their joints differ
// by rounding errors. Otherwise a "move to" is emitted first. Arcs are
// approximated by cubic Béziers to within tolerance, measured after
// transformation.
func (seg Segment) AppendTo(p *BezPath, aff Affine, reverse bool, tolerance float64) {
	if reverse {
		seg = seg.Reverse()
	}
	if _, ok := p.CurrentPoint(); !ok {
		p.MoveTo(seg.P0.Transform(aff))
	}
	switch seg.Kind {
	case LineKind:
		p.LineTo(seg.P1.Transform(aff))
	case QuadKind:
		p.QuadTo(seg.P1.Transform(aff), seg.P2.Transform(aff))
	case CubicKind:
		p.CubicTo(seg.P1.Transform(aff), seg.P2.Transform(aff), seg.P3.Transform(aff))
	case ArcKind:
		a, ok := seg.arc()
		if !ok {
			p.LineTo(seg.P1.Transform(aff))
			return
		}
		if s := math.Sqrt(math.Abs(aff.Determinant())); s > 0 {
			tolerance /= s
		}
		first := true
		for el := range a.PathElements(tolerance) {
			if first {
				first = false
				continue
			}
			p.Push(el.Transform(aff))
		}
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(seg.Kind)))
	}
}
