// Package presets provides built-in tiling definitions.
//
// Some presets deform the shared part curves after loading the definition,
// which is why presets are turned into tilings with [Preset.New] rather than
// by passing [Preset.Definition] to [escher.NewTiling] directly.
package presets

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"honnef.co/go/escher"
	"honnef.co/go/escher/curve"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named tiling definition.
type Preset struct {
	Name        string
	Description string

	def  func() escher.Definition
	edit func(t *escher.Tiling) error
}

// Definition returns a fresh copy of the preset's definition.
func (p Preset) Definition() escher.Definition { return p.def() }

// New loads the preset and applies its curve edits.
func (p Preset) New(opts *escher.Options) (*escher.Tiling, error) {
	t, err := escher.NewTiling(p.def(), opts)
	if err != nil {
		return nil, fmt.Errorf("loading preset %q: %w", p.Name, err)
	}
	if p.edit != nil {
		if err := p.edit(t); err != nil {
			return nil, fmt.Errorf("editing preset %q: %w", p.Name, err)
		}
	}
	return t, nil
}

var presets = []Preset{
	{Name: "square", Description: "unit squares glued by translation", def: square},
	{Name: "checker", Description: "squares with two alternating labels", def: checker},
	{Name: "hex", Description: "regular hexagons glued by translation", def: hex},
	{Name: "brick", Description: "running bond of 2x1 bricks", def: brick},
	{Name: "triangle", Description: "triangles rotated by half turns about their edge midpoints", def: triangle},
	{Name: "fish", Description: "squares with curved seams", def: square, edit: fish},
}

// All returns all presets, sorted by name.
func All() []Preset {
	out := slices.Clone(presets)
	slices.SortFunc(out, func(a, b Preset) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Names returns the names of all presets, sorted.
func Names() []string {
	var names []string
	for _, p := range All() {
		names = append(names, p.Name)
	}
	return names
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q, have %s", ErrUnknownPreset, name, strings.Join(Names(), ", "))
}

func lp(label string, part escher.EdgePart) escher.LabeledPart {
	return escher.LabeledPart{Label: label, Part: part}
}

// Parts shared by the square presets. Each edge is a single part; the
// second edge of each glued pair runs counter-clockwise, so that a seam
// looks the same from both tiles.
var (
	sqTop    = escher.EdgePart{ID: 1, Amount: 1, Clockwise: true}
	sqRight  = escher.EdgePart{ID: 2, Amount: 1, Clockwise: true}
	sqBottom = escher.EdgePart{ID: 3, Amount: 1}
	sqLeft   = escher.EdgePart{ID: 4, Amount: 1}
)

func squareTemplate() escher.ShapeTemplate {
	return escher.ShapeTemplate{
		EdgeNames:   []string{"top", "right", "bottom", "left"},
		VertexNames: []string{"tl", "tr", "br", "bl"},
		Positions:   []curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(1, 1), curve.Pt(0, 1)},
	}
}

func squarePattern() escher.EdgePattern {
	return escher.EdgePattern{
		"top":    {sqTop},
		"right":  {sqRight},
		"bottom": {sqBottom},
		"left":   {sqLeft},
	}
}

func square() escher.Definition {
	return escher.Definition{
		Template:   squareTemplate(),
		Pattern:    squarePattern(),
		Prototypes: []escher.PrototypeDef{{Label: "A", Transform: curve.Identity}},
		Adjacencies: []escher.Adjacency{
			{A: lp("A", sqTop), B: lp("A", sqBottom)},
			{A: lp("A", sqRight), B: lp("A", sqLeft)},
		},
	}
}

func checker() escher.Definition {
	return escher.Definition{
		Template: squareTemplate(),
		Pattern:  squarePattern(),
		Prototypes: []escher.PrototypeDef{
			{Label: "A", Transform: curve.Identity},
			{Label: "B", Transform: curve.Translate(curve.Vec(1, 0))},
		},
		Adjacencies: []escher.Adjacency{
			{A: lp("A", sqTop), B: lp("B", sqBottom)},
			{A: lp("B", sqTop), B: lp("A", sqBottom)},
			{A: lp("A", sqRight), B: lp("B", sqLeft)},
			{A: lp("B", sqRight), B: lp("A", sqLeft)},
		},
	}
}

func hex() escher.Definition {
	def := escher.Definition{
		Template: escher.ShapeTemplate{
			EdgeNames:   make([]string, 6),
			VertexNames: make([]string, 6),
			Positions:   make([]curve.Point, 6),
		},
		Pattern:    escher.EdgePattern{},
		Prototypes: []escher.PrototypeDef{{Label: "A", Transform: curve.Identity}},
	}
	var parts [6]escher.EdgePart
	for i := range 6 {
		def.Template.EdgeNames[i] = fmt.Sprintf("e%d", i)
		def.Template.VertexNames[i] = fmt.Sprintf("v%d", i)
		def.Template.Positions[i] = curve.Point(curve.VecFromAngle(float64(i) * math.Pi / 3))
		parts[i] = escher.EdgePart{ID: i + 1, Amount: 1, Clockwise: i < 3}
		def.Pattern[def.Template.EdgeNames[i]] = []escher.EdgePart{parts[i]}
	}
	// Opposite edges are glued.
	for i := range 3 {
		def.Adjacencies = append(def.Adjacencies, escher.Adjacency{A: lp("A", parts[i]), B: lp("A", parts[i+3])})
	}
	return def
}

func brick() escher.Definition {
	var (
		topL    = escher.EdgePart{ID: 1, Amount: 0.5, Clockwise: true}
		topR    = escher.EdgePart{ID: 2, Amount: 0.5, Clockwise: true}
		right   = escher.EdgePart{ID: 3, Amount: 1, Clockwise: true}
		bottomR = escher.EdgePart{ID: 4, Amount: 0.5}
		bottomL = escher.EdgePart{ID: 5, Amount: 0.5}
		left    = escher.EdgePart{ID: 6, Amount: 1}
	)
	return escher.Definition{
		Template: escher.ShapeTemplate{
			EdgeNames:   []string{"top", "right", "bottom", "left"},
			VertexNames: []string{"tl", "tr", "br", "bl"},
			Positions:   []curve.Point{curve.Pt(0, 0), curve.Pt(2, 0), curve.Pt(2, 1), curve.Pt(0, 1)},
		},
		Pattern: escher.EdgePattern{
			"top":    {topL, topR},
			"right":  {right},
			"bottom": {bottomR, bottomL},
			"left":   {left},
		},
		Prototypes: []escher.PrototypeDef{{Label: "A", Transform: curve.Identity}},
		Adjacencies: []escher.Adjacency{
			// The left half of the top is glued to the right half of the
			// bottom, offsetting each row by half a brick.
			{A: lp("A", topL), B: lp("A", bottomR)},
			{A: lp("A", topR), B: lp("A", bottomL)},
			{A: lp("A", right), B: lp("A", left)},
		},
	}
}

func triangle() escher.Definition {
	var (
		a = escher.EdgePart{ID: 1, Amount: 1, Clockwise: true}
		b = escher.EdgePart{ID: 2, Amount: 1, Clockwise: true}
		c = escher.EdgePart{ID: 3, Amount: 1, Clockwise: true}
	)
	return escher.Definition{
		Template: escher.ShapeTemplate{
			EdgeNames:   []string{"a", "b", "c"},
			VertexNames: []string{"p", "q", "r"},
			Positions:   []curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(0.5, math.Sqrt(3)/2)},
		},
		Pattern: escher.EdgePattern{
			"a": {a},
			"b": {b},
			"c": {c},
		},
		Prototypes: []escher.PrototypeDef{{Label: "A", Transform: curve.Identity}},
		Adjacencies: []escher.Adjacency{
			{A: lp("A", a), B: lp("A", a)},
			{A: lp("A", b), B: lp("A", b)},
			{A: lp("A", c), B: lp("A", c)},
		},
	}
}

// fish bends the seams of the square grid: the horizontal seam becomes an
// S-shaped cubic, the vertical seam gets a kink and a curved tail.
func fish(t *escher.Tiling) error {
	top, err := t.Curve(lp("A", sqTop))
	if err != nil {
		return err
	}
	top.Convert(0, curve.CubicKind)
	l := top.Line(0)
	if err := top.Move(l.IDs[1], curve.Pt(0.35, -0.3)); err != nil {
		return err
	}
	if err := top.Move(l.IDs[2], curve.Pt(0.65, 0.3)); err != nil {
		return err
	}

	right, err := t.Curve(lp("A", sqRight))
	if err != nil {
		return err
	}
	joint := right.Split(0, 0.5)
	if err := right.Move(joint, curve.Pt(0.5, 0.15)); err != nil {
		return err
	}
	right.Convert(1, curve.QuadKind)
	return right.Move(right.Line(1).IDs[1], curve.Pt(0.8, -0.15))
}
