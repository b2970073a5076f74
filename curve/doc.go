// Package curve provides the 2D geometry that tile edges are built from:
// points, vectors, affine transformations, rectangles, and the four kinds of
// edge segments (lines, quadratic and cubic Béziers, and elliptical arcs).
//
// Much of this package is derived from honnef.co/go/curve, itself a port of
// the [kurbo] Rust crate.
//
// # Segments
//
// [Segment] is a closed union over [LineKind], [QuadKind], [CubicKind] and
// [ArcKind]. Every segment supports the same set of operations, each of which
// dispatches on the kind:
//
//   - [Segment.ApproximateBounds] returns a rectangle that is guaranteed to
//     contain the segment after an affine transformation.
//   - [Segment.HitTest] finds the closest point of the transformed segment
//     within a tolerance.
//   - [Segment.Split] subdivides the segment into two segments of the same
//     kind.
//   - [Segment.Tangent] returns the transformed derivative.
//   - [Segment.AppendTo] adds the segment to a [BezPath], optionally
//     reversed.
//
// The individual curve types ([Line], [QuadBez], [CubicBez], [Arc]) can be
// used on their own, and convert to and from segments.
//
// # Arcs
//
// Arcs are stored in the endpoint parametrization used by SVG ([SVGArc]) and
// converted to the center parametrization ([Arc]) for evaluation. Under
// affine transformations an arc's bounds are computed exactly, but
// [Segment.Transform] only approximates the transformed arc when the
// transformation contains shear.
//
// # Preconditions
//
// Functions in this package panic when called with arguments that violate
// their documented preconditions, such as split parameters outside of (0, 1)
// or non-positive hit test tolerances. Callers are expected to validate user
// input before passing it on.
//
// [kurbo]: https://github.com/linebender/kurbo
package curve
