package curve

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Split subdivides the curve at t using de Casteljau's algorithm.
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	pm := p01.Lerp(p12, t)
	return QuadBez{q.P0, p01, pm}, QuadBez{pm, p12, q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Differentiate returns the derivative of the curve, which is a line.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

// ControlBox returns the bounding box of the control points. By the convex
// hull property it contains the curve.
func (q QuadBez) ControlBox() Rect {
	return BoundingPoints(q.P0, q.P1, q.P2)
}

// ControlLength returns the length of the control polygon, an upper bound of
// the curve's arc length.
func (q QuadBez) ControlLength() float64 {
	return q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
}
