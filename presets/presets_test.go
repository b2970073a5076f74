package presets

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/escher"
	"honnef.co/go/escher/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestPresets(t *testing.T) {
	neighbors := map[string]int{
		"square":   4,
		"checker":  4,
		"hex":      6,
		"brick":    6,
		"triangle": 3,
		"fish":     4,
	}
	diff(t, []string{"brick", "checker", "fish", "hex", "square", "triangle"}, Names())
	bounds := curve.Rect{X0: -4, Y0: -4, X1: 4, Y1: 4}
	for _, p := range All() {
		tiling, err := p.New(&escher.Options{Styler: DefaultPalette()})
		if err != nil {
			t.Errorf("%s: %v", p.Name, err)
			continue
		}
		v, err := tiling.GetTiles(bounds, nil)
		if err != nil {
			t.Errorf("%s: %v", p.Name, err)
			continue
		}
		if v.Len() < 10 {
			t.Errorf("%s: got only %d tiles", p.Name, v.Len())
		}
		// The seed lies well within the viewport, so all of its neighbors
		// are part of the view.
		n := 0
		for range v.Neighbors(0) {
			n++
		}
		if want := neighbors[p.Name]; n != want {
			t.Errorf("%s: seed has %d neighbors, want %d", p.Name, n, want)
		}
		for i, tile := range v.Tiles {
			if tile.Style == nil {
				t.Errorf("%s: tile %d is unstyled", p.Name, i)
			}
			for j, l := range v.Links[i] {
				if !l.IsOpen() && v.Links[l.Tile][l.Part] != (escher.Link{Tile: i, Part: j}) {
					t.Errorf("%s: link %d/%d is not symmetric", p.Name, i, j)
				}
			}
		}
	}
}

func TestFishSeamsAreCurved(t *testing.T) {
	p, err := Lookup("fish")
	if err != nil {
		t.Fatal(err)
	}
	tiling, err := p.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	top, err := tiling.Curve(escher.LabeledPart{Label: "A", Part: sqTop})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, curve.CubicKind, top.Segment(0).Kind)
	right, err := tiling.Curve(escher.LabeledPart{Label: "A", Part: sqLeft})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 2, right.Len())
	diff(t, curve.QuadKind, right.Segment(1).Kind)

	proto := tiling.Prototypes()[0]
	tile := &escher.Tile{Proto: proto, Transform: proto.Transform}
	b := tile.Bounds()
	if b.Y0 >= 0 || b.Y1 <= 1 {
		t.Errorf("bounds %v don't include the curved seams", b)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("penrose"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("got error %v, want %v", err, ErrUnknownPreset)
	}
}

func TestPalette(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	p := NewPalette(color.RGBA{}, 1, red, blue)
	diff(t, 2, p.Len())

	sq, err := Lookup("square")
	if err != nil {
		t.Fatal(err)
	}
	tl, err := sq.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	proto := tl.Prototypes()[0]
	at := func(x, y float64) *escher.Tile {
		return &escher.Tile{Proto: proto, Transform: curve.Translate(curve.Vec(x, y))}
	}
	diff(t, red, p.Style(at(0, 0)).Fill)
	diff(t, blue, p.Style(at(1, 0)).Fill)
	diff(t, blue, p.Style(at(-1, 0)).Fill)
	diff(t, red, p.Style(at(0, -1)).Fill)
	if p.Style(at(0, 0)) != p.Style(at(2, 0)) {
		t.Error("styles of equally colored tiles should be shared")
	}

	defer func() {
		if recover() == nil {
			t.Error("NewPalette without colors didn't panic")
		}
	}()
	NewPalette(color.RGBA{}, 1)
}
