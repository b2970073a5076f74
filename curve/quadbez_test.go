package curve

import (
	"testing"
)

func TestQuadBezSubsegment(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	t0 := 0.1
	t1 := 0.8
	qs := q.Subsegment(t0, t1)
	epsilon := 1e-12
	n := 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertNear(t, q.Eval(ts), qs.Eval(tt), epsilon)
	}
}

func TestQuadBezSplit(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	const split = 0.3
	a, b := q.Split(split)
	const epsilon = 1e-12
	assertNear(t, a.End(), b.Start(), epsilon)
	for i := range 11 {
		tt := float64(i) / 10
		assertNear(t, a.Eval(tt), q.Eval(tt*split), epsilon)
		assertNear(t, b.Eval(tt), q.Eval(split+tt*(1-split)), epsilon)
	}
}

func TestQuadBezDifferentiate(t *testing.T) {
	q := QuadBez{
		Pt(0.0, 0.0),
		Pt(0.0, 0.5),
		Pt(1.0, 1.0),
	}
	deriv := q.Differentiate()
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		const delta = 1e-6
		p := q.Eval(ts)
		p1 := q.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if error := d.Sub(dApprox).Hypot(); error > delta*2 {
			t.Errorf("got difference of %g, want at most %g", error, delta*2)
		}
	}
}

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Raise()
	qd := q.Differentiate()
	cd := c.Differentiate()
	const epsilon = 1e-12
	const n = 10

	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, q.Eval(ts), c.Eval(ts), epsilon)
		assertNear(t, qd.Eval(ts), cd.Eval(ts), epsilon)
	}
}
