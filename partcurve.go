package escher

import (
	"fmt"
	"iter"
	"slices"

	"honnef.co/go/escher/curve"
)

// PartLine is one line of a [PartCurve]. It refers to its points by vector
// ID; the end of line i is the same vector as the start of line i+1.
type PartLine struct {
	Kind curve.SegmentKind
	// The line's vectors in order, endpoints included. Only the first
	// Kind.NumPoints() entries are used.
	IDs [4]VectorID

	// Only used by curve.ArcKind.
	Radii     curve.Vec2
	XRotation float64
	LargeArc  bool
	Clockwise bool
}

func (l PartLine) Start() VectorID { return l.IDs[0] }
func (l PartLine) End() VectorID   { return l.IDs[l.Kind.NumPoints()-1] }

// PartCurve is the geometry of an edge part: a chain of lines running from
// (0, 0) to (1, 0) in the part's normalized space. Both endpoints are fixed.
//
// Parts that are glued together share a single PartCurve, so that editing one
// side of a seam edits the other.
//
// Vectors are never removed from the curve's arena. Converting or splitting
// a line may leave its old control points unreferenced, but all vector IDs
// stay valid.
type PartCurve struct {
	arena VectorArena
	lines []PartLine
}

// NewPartCurve returns a part curve consisting of a single straight line.
func NewPartCurve() *PartCurve {
	pc := &PartCurve{}
	start := pc.arena.Add(curve.Pt(0, 0), true)
	end := pc.arena.Add(curve.Pt(1, 0), true)
	pc.lines = []PartLine{{Kind: curve.LineKind, IDs: [4]VectorID{start, end}}}
	return pc
}

// Len returns the number of lines.
func (pc *PartCurve) Len() int { return len(pc.lines) }

// Line returns the i-th line.
func (pc *PartCurve) Line(i int) PartLine { return pc.lines[i] }

// Vector returns the vector with the given ID.
func (pc *PartCurve) Vector(id VectorID) LineVector { return pc.arena.At(id) }

// Move moves a free vector. Because lines share their joints, moving a joint
// moves the end of one line and the start of the next.
func (pc *PartCurve) Move(id VectorID, pt curve.Point) error {
	return pc.arena.Move(id, pt)
}

// Segment returns the i-th line as a segment in normalized space.
func (pc *PartCurve) Segment(i int) curve.Segment {
	l := pc.lines[i]
	seg := curve.Segment{
		Kind:      l.Kind,
		Radii:     l.Radii,
		XRotation: l.XRotation,
		LargeArc:  l.LargeArc,
		Clockwise: l.Clockwise,
	}
	pts := [4]*curve.Point{&seg.P0, &seg.P1, &seg.P2, &seg.P3}
	for j := range l.Kind.NumPoints() {
		*pts[j] = pc.arena.At(l.IDs[j]).Point
	}
	return seg
}

// Segments returns an iterator over the lines as segments.
func (pc *PartCurve) Segments() iter.Seq2[int, curve.Segment] {
	return func(yield func(int, curve.Segment) bool) {
		for i := range pc.lines {
			if !yield(i, pc.Segment(i)) {
				return
			}
		}
	}
}

// lineFrom creates a line with the shape of seg between two existing
// vectors. Interior points of seg become new free vectors.
func (pc *PartCurve) lineFrom(seg curve.Segment, start, end VectorID) PartLine {
	l := PartLine{
		Kind:      seg.Kind,
		Radii:     seg.Radii,
		XRotation: seg.XRotation,
		LargeArc:  seg.LargeArc,
		Clockwise: seg.Clockwise,
	}
	pts := seg.Points()
	l.IDs[0] = start
	for j := 1; j < len(pts)-1; j++ {
		l.IDs[j] = pc.arena.Add(pts[j], false)
	}
	l.IDs[len(pts)-1] = end
	return l
}

// Split splits line i at t ∈ (0, 1) into two lines of the same kind. The new
// joint is a free vector shared by both halves; its ID is returned.
func (pc *PartCurve) Split(i int, t float64) VectorID {
	a, b := pc.Segment(i).Split(t)
	l := pc.lines[i]
	joint := pc.arena.Add(a.End(), false)
	first := pc.lineFrom(a, l.Start(), joint)
	second := pc.lineFrom(b, joint, l.End())
	pc.lines[i] = first
	pc.lines = slices.Insert(pc.lines, i+1, second)
	return joint
}

// Convert changes the kind of line i, keeping its endpoints. New control
// points are placed on the chord, except when raising a quadratic to a
// cubic, which keeps the curve's shape. Arcs are created with both radii
// equal to the chord length.
func (pc *PartCurve) Convert(i int, kind curve.SegmentKind) {
	seg := pc.Segment(i)
	if seg.Kind == kind {
		return
	}
	p0, p1 := seg.Start(), seg.End()
	var out curve.Segment
	switch kind {
	case curve.LineKind:
		out = curve.Line{P0: p0, P1: p1}.Seg()
	case curve.QuadKind:
		out = curve.QuadBez{P0: p0, P1: p0.Midpoint(p1), P2: p1}.Seg()
	case curve.CubicKind:
		if seg.Kind == curve.QuadKind {
			out = seg.Quad().Raise().Seg()
		} else {
			out = curve.CubicBez{P0: p0, P1: p0.Lerp(p1, 1.0/3), P2: p0.Lerp(p1, 2.0/3), P3: p1}.Seg()
		}
	case curve.ArcKind:
		r := p0.Distance(p1)
		out = curve.SVGArc{From: p0, To: p1, Radii: curve.Vec(r, r), Sweep: true}.Seg()
	default:
		panic(fmt.Sprintf("invalid segment kind %d", int(kind)))
	}
	l := pc.lines[i]
	pc.lines[i] = pc.lineFrom(out, l.Start(), l.End())
}

// SetArc sets the shape of arc line i. It panics if the line isn't an arc.
func (pc *PartCurve) SetArc(i int, radii curve.Vec2, xRotation float64, largeArc, clockwise bool) {
	l := &pc.lines[i]
	if l.Kind != curve.ArcKind {
		panic(fmt.Sprintf("line %d is a %s, not an arc", i, l.Kind))
	}
	l.Radii = radii
	l.XRotation = xRotation
	l.LargeArc = largeArc
	l.Clockwise = clockwise
}

// Bounds returns a rectangle containing the curve transformed by aff.
func (pc *PartCurve) Bounds(aff curve.Affine) curve.Rect {
	var bbox curve.Rect
	for i, seg := range pc.Segments() {
		if b := seg.ApproximateBounds(aff); i == 0 {
			bbox = b
		} else {
			bbox = bbox.Union(b)
		}
	}
	return bbox
}

// AppendTo adds the curve, transformed by aff, to the path. If reverse is
// true the lines are added from the last to the first, each of them
// reversed.
func (pc *PartCurve) AppendTo(p *curve.BezPath, aff curve.Affine, reverse bool, tolerance float64) {
	if reverse {
		for i := len(pc.lines) - 1; i >= 0; i-- {
			pc.Segment(i).AppendTo(p, aff, true, tolerance)
		}
	} else {
		for _, seg := range pc.Segments() {
			seg.AppendTo(p, aff, false, tolerance)
		}
	}
}

// LineHit is a hit on one of a part curve's lines.
type LineHit struct {
	Line int
	curve.Hit
}

// HitTest finds the line closest to pt after transforming the curve by aff.
//
// A hit at the very end of a line coincides with the start of the next line.
// If the next line is hit as well, the end hit is discarded in its favor.
func (pc *PartCurve) HitTest(pt curve.Point, tolerance float64, aff curve.Affine) (LineHit, bool) {
	var hits []LineHit
	for i, seg := range pc.Segments() {
		if h, ok := seg.HitTest(pt, tolerance, aff); ok {
			hits = append(hits, LineHit{Line: i, Hit: h})
		}
	}
	var best LineHit
	found := false
	for j, h := range hits {
		if h.T >= 1 && j+1 < len(hits) && hits[j+1].Line == h.Line+1 {
			continue
		}
		if !found || h.DistSq < best.DistSq {
			best, found = h, true
		}
	}
	return best, found
}
