package curve

import (
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezSplit(t *testing.T) {
	c := CubicBez{
		Pt(0, 0),
		Pt(0.3, 1),
		Pt(0.7, -1),
		Pt(1, 0),
	}
	const epsilon = 1e-12
	for _, split := range []float64{0.1, 0.5, 0.9} {
		a, b := c.Split(split)
		diff(t, c.Start(), a.Start())
		diff(t, c.End(), b.End())
		assertNear(t, a.End(), c.Eval(split), epsilon)
		assertNear(t, b.Start(), c.Eval(split), epsilon)
		for i := range 11 {
			tt := float64(i) / 10
			assertNear(t, a.Eval(tt), c.Eval(tt*split), epsilon)
			assertNear(t, b.Eval(tt), c.Eval(split+tt*(1-split)), epsilon)
		}
	}
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(9.7, 9.3)}
	t0 := 0.2
	t1 := 0.7
	cs := c.Subsegment(t0, t1)
	for i := range 11 {
		tt := float64(i) / 10
		assertNear(t, c.Eval(t0+tt*(t1-t0)), cs.Eval(tt), 1e-12)
	}
}

func TestControlLength(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	if got := c.ControlLength(); got != 3 {
		t.Errorf("got control length %g, want 3", got)
	}
	diff(t, Rect{0, 0, 1, 1}, c.ControlBox())
}
