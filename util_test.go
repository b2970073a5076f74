package escher

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/escher/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 curve.Point, p1 curve.Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

var (
	topPart    = EdgePart{ID: 1, Amount: 1, Clockwise: true}
	rightPart  = EdgePart{ID: 2, Amount: 1, Clockwise: true}
	bottomPart = EdgePart{ID: 3, Amount: 1}
	leftPart   = EdgePart{ID: 4, Amount: 1}
)

func squareTemplate() ShapeTemplate {
	return ShapeTemplate{
		EdgeNames:   []string{"top", "right", "bottom", "left"},
		VertexNames: []string{"tl", "tr", "br", "bl"},
		Positions:   []curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(1, 1), curve.Pt(0, 1)},
	}
}

// squareGrid describes the unit square tiling by translations.
func squareGrid() Definition {
	return Definition{
		Template: squareTemplate(),
		Pattern: EdgePattern{
			"top":    {topPart},
			"right":  {rightPart},
			"bottom": {bottomPart},
			"left":   {leftPart},
		},
		Prototypes: []PrototypeDef{{Label: "A", Transform: curve.Identity}},
		Adjacencies: []Adjacency{
			{LabeledPart{"A", topPart}, LabeledPart{"A", bottomPart}},
			{LabeledPart{"A", rightPart}, LabeledPart{"A", leftPart}},
		},
	}
}

func mustTiling(t *testing.T, def Definition, opts *Options) *Tiling {
	t.Helper()
	tiling, err := NewTiling(def, opts)
	if err != nil {
		t.Fatal(err)
	}
	return tiling
}

// translations returns the translations of the view's tiles, sorted.
func translations(v *View) []curve.Vec2 {
	out := make([]curve.Vec2, 0, v.Len())
	for _, t := range v.Tiles {
		out = append(out, t.Transform.Translation())
	}
	key := func(v curve.Vec2) curve.Point {
		return curve.Pt(math.Round(v.X*1e6), math.Round(v.Y*1e6))
	}
	slices.SortFunc(out, func(a, b curve.Vec2) int {
		ka, kb := key(a), key(b)
		switch {
		case ka.Less(kb):
			return -1
		case kb.Less(ka):
			return 1
		default:
			return 0
		}
	})
	return out
}
