package main

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/escher/curve"
	"honnef.co/go/escher/presets"
)

func TestParseViewport(t *testing.T) {
	r, err := parseViewport("2, 3,-1,0.5")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(curve.Rect{X0: -1, Y0: 0.5, X1: 2, Y1: 3}, r); d != "" {
		t.Error(d)
	}
	for _, s := range []string{"", "1,2,3", "a,b,c,d", "0,0,0,1"} {
		if _, err := parseViewport(s); err == nil {
			t.Errorf("parsing %q succeeded", s)
		}
	}
}

func TestDrawPresets(t *testing.T) {
	bounds, err := parseViewport("-2,-1.5,2,1.5")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range presets.Names() {
		v, err := expand(name, bounds)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if v.Len() == 0 {
			t.Errorf("%s: no tiles", name)
		}

		var buf bytes.Buffer
		if err := writeSVG(&buf, v, 80, 60); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if d := cmp.Diff(v.Len(), strings.Count(buf.String(), "<path ")); d != "" {
			t.Errorf("%s: paths in SVG output (-tiles +paths):\n%s", name, d)
		}

		buf.Reset()
		if err := writePNG(&buf, v, 80, 60); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if d := cmp.Diff(curve.Pt(80, 60), curve.Pt(float64(img.Bounds().Dx()), float64(img.Bounds().Dy()))); d != "" {
			t.Errorf("%s: image size (-want +got):\n%s", name, d)
		}
	}

	if _, err := expand("nope", bounds); err == nil {
		t.Error("expanding an unknown preset should fail")
	}
}
