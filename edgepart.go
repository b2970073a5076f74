package escher

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
)

// EdgePart is a labeled subdivision of an edge. Amount is the fraction of
// the edge the part occupies. Clockwise parts run in the direction of their
// edge; the curve of a counter-clockwise part is laid out from the part's
// end to its start.
//
// Two glued parts with opposite orientations share their curve unchanged,
// as in a translation. Glued parts with equal orientations see the curve
// rotated by a half turn, so the curve should be point symmetric.
type EdgePart struct {
	ID        int
	Amount    float64
	Clockwise bool
}

func (p EdgePart) String() string {
	dir := "cw"
	if !p.Clockwise {
		dir = "ccw"
	}
	return fmt.Sprintf("part %d (%g, %s)", p.ID, p.Amount, dir)
}

// EdgePattern maps edge names to the ordered parts that subdivide the edge.
type EdgePattern map[string][]EdgePart

// amountEpsilon is the tolerance for a pattern's amounts to sum up to one.
const amountEpsilon = 1e-9

// validate checks that the pattern partitions every edge of s, and that part
// IDs are unique.
func (pat EdgePattern) validate(s *Shape) error {
	for _, name := range slices.Sorted(maps.Keys(pat)) {
		if _, ok := s.Edge(name); !ok {
			return fmt.Errorf("%w: pattern for unknown edge %q", ErrInvalidPattern, name)
		}
	}
	ids := make(map[int]string)
	for _, e := range s.Edges {
		parts := pat[e.Name]
		if len(parts) == 0 {
			return fmt.Errorf("%w: edge %q has no parts", ErrInvalidPattern, e.Name)
		}
		var sum float64
		for _, p := range parts {
			if !(p.Amount > 0 && p.Amount <= 1) {
				return fmt.Errorf("%w: %s of edge %q has amount outside of (0, 1]", ErrInvalidPattern, p, e.Name)
			}
			if other, ok := ids[p.ID]; ok {
				return fmt.Errorf("%w: part ID %d used by edges %q and %q", ErrInvalidPattern, p.ID, other, e.Name)
			}
			ids[p.ID] = e.Name
			sum += p.Amount
		}
		if math.Abs(sum-1) > amountEpsilon {
			return fmt.Errorf("%w: parts of edge %q add up to %g", ErrInvalidPattern, e.Name, sum)
		}
	}
	return nil
}

// LabeledPart is an edge part of the tile with the given label.
type LabeledPart struct {
	Label string
	Part  EdgePart
}

func (lp LabeledPart) String() string {
	return fmt.Sprintf("%s/%s", lp.Label, lp.Part)
}

// Adjacency declares that two labeled parts are glued together. A part may
// be glued to itself, which places the neighbor rotated by a half turn about
// the part's midpoint.
type Adjacency struct {
	A, B LabeledPart
}

// EdgePartAdjacencies is an undirected pairing of labeled parts. Every
// labeled part has at most one partner.
type EdgePartAdjacencies struct {
	pairs   []Adjacency
	partner map[LabeledPart]LabeledPart
}

// NewEdgePartAdjacencies indexes a list of adjacencies.
func NewEdgePartAdjacencies(pairs []Adjacency) (*EdgePartAdjacencies, error) {
	if len(pairs) == 0 {
		return nil, ErrNoAdjacencies
	}
	adj := &EdgePartAdjacencies{
		pairs:   slices.Clone(pairs),
		partner: make(map[LabeledPart]LabeledPart, 2*len(pairs)),
	}
	for _, pair := range pairs {
		if _, ok := adj.partner[pair.A]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAdjacency, pair.A)
		}
		adj.partner[pair.A] = pair.B
		if pair.A == pair.B {
			continue
		}
		if _, ok := adj.partner[pair.B]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAdjacency, pair.B)
		}
		adj.partner[pair.B] = pair.A
	}
	return adj, nil
}

// TryGetAdjacent returns the partner of a labeled part, or false if the part
// has no declared partner.
func (adj *EdgePartAdjacencies) TryGetAdjacent(lp LabeledPart) (LabeledPart, bool) {
	other, ok := adj.partner[lp]
	return other, ok
}

// Len returns the number of adjacencies.
func (adj *EdgePartAdjacencies) Len() int { return len(adj.pairs) }

// All returns an iterator over the adjacencies in declaration order.
func (adj *EdgePartAdjacencies) All() iter.Seq[Adjacency] {
	return slices.Values(adj.pairs)
}
