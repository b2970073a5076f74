package escher

import (
	"fmt"

	"honnef.co/go/escher/curve"
)

// EdgePartPosition is the placement of an edge part in world space. Start and
// End follow the walking direction of the tile's edges, regardless of the
// part's orientation.
type EdgePartPosition struct {
	Part       EdgePart
	Start, End curve.Point
}

// NewEdgePartPosition locates part within the edges of s, scanning the
// pattern in edge and part order, and returns its position under aff.
func NewEdgePartPosition(part EdgePart, s *Shape, pat EdgePattern, aff curve.Affine) (EdgePartPosition, error) {
	for _, e := range s.Edges {
		var offset float64
		for _, p := range pat[e.Name] {
			if p == part {
				return partPosition(e, offset, part, aff), nil
			}
			offset += p.Amount
		}
	}
	return EdgePartPosition{}, fmt.Errorf("locating %s: %w", part, ErrUnknownPart)
}

func partPosition(e *Edge, offset float64, part EdgePart, aff curve.Affine) EdgePartPosition {
	p0, p1 := e.start.Position, e.end.Position
	return EdgePartPosition{
		Part:  part,
		Start: p0.Lerp(p1, offset).Transform(aff),
		End:   p0.Lerp(p1, offset+part.Amount).Transform(aff),
	}
}

// GetTransformTo returns the transform that glues this part onto other: it
// maps this part's start onto other's end, and this part's end onto other's
// start.
func (pos EdgePartPosition) GetTransformTo(other EdgePartPosition) curve.Affine {
	return curve.MapSegment(pos.Start, pos.End, other.End, other.Start)
}

// Key returns the lookup key of the position.
func (pos EdgePartPosition) Key() PositionKey {
	return newPositionKey(pos.Start, pos.End)
}

// keyDecimals is the precision positions are rounded to before comparison.
const keyDecimals = 3

// PositionKey identifies the world position of an edge part independently
// of its direction: both endpoints are rounded to three decimal places and
// ordered, smaller point first.
type PositionKey struct {
	P0, P1 curve.Point
}

func newPositionKey(p, q curve.Point) PositionKey {
	p, q = p.RoundTo(keyDecimals), q.RoundTo(keyDecimals)
	if q.Less(p) {
		p, q = q, p
	}
	return PositionKey{p, q}
}

func (k PositionKey) String() string {
	return fmt.Sprintf("%s-%s", k.P0, k.P1)
}
