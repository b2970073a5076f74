package curve

import (
	"math"
	"testing"
)

var testSegments = []Segment{
	Line{Pt(0, 0), Pt(1, 0)}.Seg(),
	QuadBez{Pt(0, 0), Pt(0.5, 0.5), Pt(1, 0)}.Seg(),
	CubicBez{Pt(0, 0), Pt(0.3, 0.4), Pt(0.7, -0.4), Pt(1, 0)}.Seg(),
	SVGArc{From: Pt(0, 0), To: Pt(1, 0), Radii: Vec(0.5, 0.5), Sweep: true}.Seg(),
	SVGArc{From: Pt(0, 0), To: Pt(1, 0), Radii: Vec(0.8, 0.4), XRotation: 0.3, LargeArc: true}.Seg(),
}

var testTransforms = []Affine{
	Identity,
	MapSegment(Pt(0, 0), Pt(1, 0), Pt(2, 3), Pt(2, 5)),
	Scale(3, -2).Mul(Rotate(0.4)),
}

func TestSegmentEndpoints(t *testing.T) {
	for _, seg := range testSegments {
		assertNear(t, seg.Eval(0), seg.Start(), 1e-9)
		assertNear(t, seg.Eval(1), seg.End(), 1e-9)
		rev := seg.Reverse()
		diff(t, seg.Start(), rev.End())
		diff(t, seg.End(), rev.Start())
		for i := range 11 {
			tt := float64(i) / 10
			assertNear(t, rev.Eval(1-tt), seg.Eval(tt), 1e-9)
		}
	}
}

func TestSegmentSplit(t *testing.T) {
	for _, seg := range testSegments {
		for _, split := range []float64{0.25, 0.5, 0.9} {
			a, b := seg.Split(split)
			if a.Kind != seg.Kind || b.Kind != seg.Kind {
				t.Fatalf("splitting %v yielded %v and %v", seg.Kind, a.Kind, b.Kind)
			}
			diff(t, seg.Start(), a.Start())
			diff(t, seg.End(), b.End())
			assertNear(t, a.End(), b.Start(), 1e-12)
			assertNear(t, a.End(), seg.Eval(split), 1e-9)
			for i := range 11 {
				tt := float64(i) / 10
				assertNear(t, a.Eval(tt), seg.Eval(tt*split), 1e-9)
				assertNear(t, b.Eval(tt), seg.Eval(split+tt*(1-split)), 1e-9)
			}
		}
	}
}

func TestSegmentSplitPanics(t *testing.T) {
	seg := testSegments[2]
	for _, split := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		assertPanics(t, "Split", func() { seg.Split(split) })
	}
}

func TestSegmentApproximateBounds(t *testing.T) {
	for _, seg := range testSegments {
		for _, aff := range testTransforms {
			bbox := seg.ApproximateBounds(aff).Inflate(1e-9, 1e-9)
			for i := range 201 {
				p := seg.Eval(float64(i) / 200).Transform(aff)
				if !bbox.ContainsRect(NewRectFromPoints(p, p)) {
					t.Fatalf("%v under %v: %v outside of %v", seg.Kind, aff, p, bbox)
				}
			}
		}
	}
}

func TestSegmentHitTest(t *testing.T) {
	const tolerance = 0.01
	for _, seg := range testSegments {
		for _, aff := range testTransforms {
			step := seg.HitStep(tolerance, aff)
			for i := range 21 {
				tt := float64(i) / 20
				p := seg.Eval(tt).Transform(aff)
				hit, ok := seg.HitTest(p, tolerance, aff)
				if !ok {
					t.Fatalf("%v under %v: no hit at t=%g", seg.Kind, aff, tt)
				}
				if math.Abs(hit.T-tt) > step+1e-9 {
					t.Errorf("%v under %v: hit at t=%g, want within %g of %g", seg.Kind, aff, hit.T, step, tt)
				}
				if want := seg.Eval(hit.T).Transform(aff); want.Distance(hit.Point) > 1e-9 {
					t.Errorf("%v: hit point %v does not lie at t=%g", seg.Kind, hit.Point, hit.T)
				}
			}
		}
	}
}

func TestSegmentHitTestMiss(t *testing.T) {
	for _, seg := range testSegments {
		if hit, ok := seg.HitTest(Pt(0.5, 5), 0.1, Identity); ok {
			t.Errorf("%v: unexpected hit %v", seg.Kind, hit)
		}
		if _, ok := seg.HitTest(Pt(0.5, 5), math.Inf(1), Identity); !ok {
			t.Errorf("%v: an infinite tolerance must always hit", seg.Kind)
		}
	}
	assertPanics(t, "HitTest", func() { testSegments[0].HitTest(Pt(0, 0), 0, Identity) })
	assertPanics(t, "HitTest", func() { testSegments[1].HitTest(Pt(0, 0), math.NaN(), Identity) })
}

func TestSegmentHitStepClamped(t *testing.T) {
	seg := testSegments[2]
	if got := seg.HitStep(1e-12, Scale(1e6, 1e6)); got != minHitStep {
		t.Errorf("got step %g, want %g", got, minHitStep)
	}
	if got := seg.HitStep(100, Identity); got != maxHitStep {
		t.Errorf("got step %g, want %g", got, maxHitStep)
	}
	if got := testSegments[0].HitStep(0.1, Identity); got != 0 {
		t.Errorf("got step %g for a line, want 0", got)
	}
}

func TestSegmentTangent(t *testing.T) {
	const delta = 1e-6
	for _, seg := range testSegments {
		for _, aff := range testTransforms {
			for i := range 9 {
				tt := 0.1 + float64(i)/10
				d := seg.Tangent(tt, aff)
				approx := seg.Eval(tt + delta).Transform(aff).Sub(seg.Eval(tt).Transform(aff)).Mul(1 / delta)
				if e := d.Sub(approx).Hypot(); e > 1e-4*max(1, d.Hypot()) {
					t.Errorf("%v under %v at t=%g: got tangent %v, want about %v", seg.Kind, aff, tt, d, approx)
				}
			}
		}
	}
	assertPanics(t, "Tangent", func() { testSegments[0].Tangent(1.5, Identity) })
}

func TestSegmentAppendTo(t *testing.T) {
	var p BezPath
	for _, seg := range testSegments[:3] {
		seg.AppendTo(&p, Identity, false, 0.01)
		seg.Reverse().AppendTo(&p, Identity, true, 0.01)
	}
	if got := p[0].Kind; got != MoveToKind {
		t.Fatalf("path starts with %v, want a move", p[0])
	}
	for _, el := range p[1:] {
		if el.Kind == MoveToKind {
			t.Fatalf("segments should continue the open subpath: %v", p)
		}
	}
	end, _ := p.CurrentPoint()
	diff(t, Pt(1, 0), end)

	p.ClosePath()
	testSegments[0].AppendTo(&p, Translate(Vec(0, 1)), false, 0.01)
	diff(t, MoveTo(Pt(0, 1)), p[len(p)-2])

	var arc BezPath
	seg := testSegments[3]
	aff := Scale(100, 100)
	seg.AppendTo(&arc, aff, true, 0.1)
	diff(t, MoveTo(Pt(100, 0)), arc[0])
	end, _ = arc.CurrentPoint()
	assertNear(t, end, Pt(0, 0), 1e-9)
	for _, el := range arc[1:] {
		if el.Kind != CubicToKind {
			t.Fatalf("got %v, want cubics only", el)
		}
		if r := el.P2.Distance(Pt(50, 0)); math.Abs(r-50) > 1e-6 {
			t.Errorf("arc approximation strays from the circle: %v", el)
		}
	}
}

func TestSegmentTransformArc(t *testing.T) {
	seg := testSegments[4]
	for _, aff := range []Affine{Identity, Rotate(0.7).Mul(Scale(2, 2)), FlipY, Translate(Vec(1, 1))} {
		got := seg.Transform(aff)
		for i := range 11 {
			tt := float64(i) / 10
			assertNear(t, got.Eval(tt), seg.Eval(tt).Transform(aff), 1e-9)
		}
	}
}
