package curve

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parametrization.
//
// The arc starts at StartAngle and sweeps SweepAngle radians; positive sweeps
// go from the positive x axis towards the positive y axis, which is clockwise
// in a y-down coordinate system. Radii are measured along the ellipse's own
// axes, which are rotated by XRotation.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// Eval evaluates the arc at t ∈ [0, 1].
func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+t*a.SweepAngle))
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

// Deriv returns the derivative of the arc with respect to t.
func (a Arc) Deriv(t float64) Vec2 {
	sin, cos := math.Sincos(a.StartAngle + t*a.SweepAngle)
	d := rotatePt(Vec2{-a.Radii.X * sin, a.Radii.Y * cos}, a.XRotation)
	return d.Mul(a.SweepAngle)
}

func (a Arc) Subsegment(t0, t1 float64) Arc {
	a.StartAngle, a.SweepAngle = a.StartAngle+t0*a.SweepAngle, (t1-t0)*a.SweepAngle
	return a
}

// Split splits the arc at t into two arcs of the same ellipse.
func (a Arc) Split(t float64) (Arc, Arc) {
	return a.Subsegment(0, t), a.Subsegment(t, 1)
}

// unitMap returns the transform that maps the unit circle onto the arc's
// ellipse.
func (a Arc) unitMap() Affine {
	return Translate(Vec2(a.Center)).
		Mul(Rotate(a.XRotation)).
		Mul(Scale(a.Radii.X, a.Radii.Y))
}

// inSweep reports whether the angle th lies on the arc.
func (a Arc) inSweep(th float64) bool {
	d := th - a.StartAngle
	sweep := a.SweepAngle
	if sweep < 0 {
		d, sweep = -d, -sweep
	}
	d = math.Mod(d, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= sweep
}

// BoundingBox returns the exact bounding box of the arc after transforming
// it by aff.
//
// An affinely transformed ellipse is still an ellipse, c + M·(cos θ, sin θ),
// so the extrema along each axis are found in closed form.
func (a Arc) BoundingBox(aff Affine) Rect {
	m := aff.Mul(a.unitMap())
	at := func(th float64) Point {
		sin, cos := math.Sincos(th)
		return Pt(m.N0*cos+m.N2*sin+m.N4, m.N1*cos+m.N3*sin+m.N5)
	}
	bbox := NewRectFromPoints(at(a.StartAngle), at(a.StartAngle+a.SweepAngle))
	thx := math.Atan2(m.N2, m.N0)
	thy := math.Atan2(m.N3, m.N1)
	for _, th := range [...]float64{thx, thx + math.Pi, thy, thy + math.Pi} {
		if a.inSweep(th) {
			bbox = bbox.UnionPoint(at(th))
		}
	}
	return bbox
}

// PathElements approximates the arc with cubic Béziers.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := sampleEllipse(a.Radii, a.XRotation, a.StartAngle)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}

		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := max(math.Ceil(nError*math.Abs(a.SweepAngle)*(1.0/(2.0*math.Pi))), 1)
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

// sampleEllipse takes the ellipse radii, how the radii are rotated, and the
// angle, and returns a point on the ellipse relative to its center.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// SVGArc is an elliptical arc in endpoint parametrization, as used by SVG
// path data and GDI+.
type SVGArc struct {
	From      Point
	To        Point
	Radii     Vec2
	XRotation float64
	LargeArc  bool
	// Sweep selects the arc that goes in the direction of positive angles,
	// which is clockwise in a y-down coordinate system.
	Sweep bool
}

// IsStraightLine reports whether the arc degenerates to a straight line,
// either because a radius is (nearly) zero or because its endpoints
// coincide.
func (a SVGArc) IsStraightLine() bool {
	return math.Abs(a.Radii.X) <= 1e-5 || math.Abs(a.Radii.Y) <= 1e-5 || a.From == a.To
}

// Arc converts the arc to center parametrization. It returns false if the arc
// is a straight line.
//
// Radii that are too small to connect the endpoints are scaled up uniformly,
// as described in the SVG 1.1 implementation notes, F.6.6.
func (a SVGArc) Arc() (Arc, bool) {
	if a.IsStraightLine() {
		return Arc{}, false
	}
	rx := math.Abs(a.Radii.X)
	ry := math.Abs(a.Radii.Y)
	xr := math.Mod(a.XRotation, 2*math.Pi)
	sinPhi, cosPhi := math.Sincos(xr)
	hdX := (a.From.X - a.To.X) * 0.5
	hdY := (a.From.Y - a.To.Y) * 0.5
	hsX := (a.From.X + a.To.X) * 0.5
	hsY := (a.From.Y + a.To.Y) * 0.5

	// F.6.5.1
	p := Vec2{
		X: cosPhi*hdX + sinPhi*hdY,
		Y: -sinPhi*hdX + cosPhi*hdY,
	}

	// F.6.6.2
	if rf := p.X*p.X/(rx*rx) + p.Y*p.Y/(ry*ry); rf > 1.0 {
		s := math.Sqrt(rf)
		rx *= s
		ry *= s
	}

	rxry := rx * ry
	rxpy := rx * p.Y
	rypx := ry * p.X
	sumOfSq := rxpy*rxpy + rypx*rypx

	// F.6.5.2
	signCoe := 1.0
	if a.LargeArc == a.Sweep {
		signCoe = -1.0
	}
	coe := signCoe * math.Sqrt(math.Abs((rxry*rxry-sumOfSq)/sumOfSq))
	tcx := coe * rxpy / ry
	tcy := -coe * rypx / rx

	// F.6.5.3
	center := Point{
		X: cosPhi*tcx - sinPhi*tcy + hsX,
		Y: sinPhi*tcx + cosPhi*tcy + hsY,
	}
	startV := Vec2{(p.X - tcx) / rx, (p.Y - tcy) / ry}
	endV := Vec2{(-p.X - tcx) / rx, (-p.Y - tcy) / ry}
	startAngle := startV.Angle()
	sweepAngle := math.Mod(endV.Angle()-startAngle, 2*math.Pi)
	if a.Sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	} else if !a.Sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		XRotation:  a.XRotation,
	}, true
}
