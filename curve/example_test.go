package curve_test

import (
	"fmt"

	"honnef.co/go/escher/curve"
)

func ExampleSegment_HitTest() {
	// A quarter of a circle from (0, 0) to (1, 1), stretched to twice its
	// size.
	seg := curve.SVGArc{
		From:  curve.Pt(0, 0),
		To:    curve.Pt(1, 1),
		Radii: curve.Vec(1, 1),
		Sweep: true,
	}.Seg()
	aff := curve.Scale(2, 2)

	if hit, ok := seg.HitTest(curve.Pt(2, 2.05), 0.1, aff); ok {
		fmt.Printf("hit near t=%.1f\n", hit.T)
	}
	if _, ok := seg.HitTest(curve.Pt(0, 2), 0.1, aff); !ok {
		fmt.Println("missed the center")
	}
	// Output:
	// hit near t=1.0
	// missed the center
}

func ExampleSegment_AppendTo() {
	var p curve.BezPath
	for _, seg := range []curve.Segment{
		curve.Line{P0: curve.Pt(0, 0), P1: curve.Pt(1, 0)}.Seg(),
		curve.QuadBez{P0: curve.Pt(1, 0), P1: curve.Pt(1, 1), P2: curve.Pt(0, 1)}.Seg(),
	} {
		seg.AppendTo(&p, curve.Translate(curve.Vec(10, 0)), false, 0.1)
	}
	p.ClosePath()
	fmt.Println(p.SVG(curve.SVGOptions{}))
	// Output:
	// M10,0 L11,0 Q11,1 10,1 Z
}
