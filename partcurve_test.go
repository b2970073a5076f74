package escher

import (
	"errors"
	"math"
	"testing"

	"honnef.co/go/escher/curve"
)

func TestPartCurveNew(t *testing.T) {
	pc := NewPartCurve()
	diff(t, 1, pc.Len())
	l := pc.Line(0)
	diff(t, curve.LineKind, l.Kind)
	diff(t, LineVector{curve.Pt(0, 0), true}, pc.Vector(l.Start()))
	diff(t, LineVector{curve.Pt(1, 0), true}, pc.Vector(l.End()))
	if err := pc.Move(l.Start(), curve.Pt(3, 3)); !errors.Is(err, ErrFixedVector) {
		t.Errorf("got error %v, want %v", err, ErrFixedVector)
	}
}

func TestPartCurveSplitSharesJoint(t *testing.T) {
	pc := NewPartCurve()
	joint := pc.Split(0, 0.25)
	diff(t, 2, pc.Len())
	if pc.Line(0).End() != joint || pc.Line(1).Start() != joint {
		t.Fatalf("lines don't share the joint %d: %+v, %+v", joint, pc.Line(0), pc.Line(1))
	}
	diff(t, LineVector{curve.Pt(0.25, 0), false}, pc.Vector(joint))

	if err := pc.Move(joint, curve.Pt(0.5, 0.5)); err != nil {
		t.Fatal(err)
	}
	diff(t, curve.Pt(0.5, 0.5), pc.Segment(0).End())
	diff(t, curve.Pt(0.5, 0.5), pc.Segment(1).Start())
	diff(t, curve.Pt(0, 0), pc.Segment(0).Start())
	diff(t, curve.Pt(1, 0), pc.Segment(1).End())
}

func TestPartCurveSplitCurves(t *testing.T) {
	for _, kind := range []curve.SegmentKind{curve.QuadKind, curve.CubicKind, curve.ArcKind} {
		pc := NewPartCurve()
		pc.Convert(0, kind)
		if kind != curve.ArcKind {
			// Bend the curve so that splitting is not trivial.
			if err := pc.Move(pc.Line(0).IDs[1], curve.Pt(0.3, 0.4)); err != nil {
				t.Fatal(err)
			}
		}
		orig := pc.Segment(0)
		pc.Split(0, 0.4)
		a, b := pc.Segment(0), pc.Segment(1)
		if a.Kind != kind || b.Kind != kind {
			t.Fatalf("splitting a %v yielded %v and %v", kind, a.Kind, b.Kind)
		}
		for i := range 11 {
			tt := float64(i) / 10
			assertNear(t, a.Eval(tt), orig.Eval(tt*0.4), 1e-9)
			assertNear(t, b.Eval(tt), orig.Eval(0.4+tt*0.6), 1e-9)
		}
	}
}

func TestPartCurveConvert(t *testing.T) {
	pc := NewPartCurve()
	pc.Convert(0, curve.QuadKind)
	l := pc.Line(0)
	diff(t, curve.QuadKind, l.Kind)
	diff(t, LineVector{curve.Pt(0.5, 0), false}, pc.Vector(l.IDs[1]))
	if err := pc.Move(l.IDs[1], curve.Pt(0.5, 1)); err != nil {
		t.Fatal(err)
	}
	quad := pc.Segment(0)

	pc.Convert(0, curve.CubicKind)
	cubic := pc.Segment(0)
	for i := range 11 {
		tt := float64(i) / 10
		assertNear(t, cubic.Eval(tt), quad.Eval(tt), 1e-12)
	}
	if got := pc.Line(0); got.Start() != l.Start() || got.End() != l.End() {
		t.Error("converting should keep the line's endpoints")
	}

	pc.Convert(0, curve.ArcKind)
	arc := pc.Segment(0)
	diff(t, curve.Vec(1, 1), arc.Radii)
	pc.SetArc(0, curve.Vec(0.5, 0.5), 0, false, true)
	assertNear(t, pc.Segment(0).Eval(0.5), curve.Pt(0.5, -0.5), 1e-9)

	pc.Convert(0, curve.LineKind)
	diff(t, curve.Line{P0: curve.Pt(0, 0), P1: curve.Pt(1, 0)}.Seg(), pc.Segment(0))
}

func TestPartCurveHitTestJoint(t *testing.T) {
	pc := NewPartCurve()
	pc.Split(0, 0.5)
	h, ok := pc.HitTest(curve.Pt(0.5, 0), 0.01, curve.Identity)
	if !ok {
		t.Fatal("expected a hit")
	}
	if h.Line != 1 || h.T != 0 {
		t.Errorf("hit at the joint should resolve to the start of the next line, got line %d at %g", h.Line, h.T)
	}

	h, ok = pc.HitTest(curve.Pt(20, 0.05), 0.1, curve.Scale(20, 20))
	if !ok || h.Line != 1 || h.T != 1 {
		t.Errorf("got %+v, %t, want the end of the last line", h, ok)
	}
	if _, ok := pc.HitTest(curve.Pt(10, 5), 0.1, curve.Scale(20, 20)); ok {
		t.Error("unexpected hit")
	}
}

func TestPartCurveBounds(t *testing.T) {
	pc := NewPartCurve()
	pc.Convert(0, curve.ArcKind)
	pc.SetArc(0, curve.Vec(0.5, 0.5), 0, false, true)
	got := pc.Bounds(curve.Scale(2, 2))
	want := curve.Rect{X0: 0, Y0: -1, X1: 2, Y1: 0}
	if d := math.Abs(got.X0-want.X0) + math.Abs(got.Y0-want.Y0) + math.Abs(got.X1-want.X1) + math.Abs(got.Y1-want.Y1); d > 1e-9 {
		t.Errorf("got bounds %v, want %v", got, want)
	}
}

func TestPartCurveAppendTo(t *testing.T) {
	pc := NewPartCurve()
	joint := pc.Split(0, 0.5)
	if err := pc.Move(joint, curve.Pt(0.5, 0.5)); err != nil {
		t.Fatal(err)
	}
	var p curve.BezPath
	pc.AppendTo(&p, curve.Identity, true, 0.1)
	want := curve.BezPath{
		curve.MoveTo(curve.Pt(1, 0)),
		curve.LineTo(curve.Pt(0.5, 0.5)),
		curve.LineTo(curve.Pt(0, 0)),
	}
	diff(t, want, p)
}
