package escher

import (
	"iter"

	"honnef.co/go/escher/curve"
)

// View is the result of expanding a tiling over a viewport: the tiles that
// overlap it and the links between their parts. Views are immutable and may
// be shared between goroutines.
type View struct {
	Bounds curve.Rect
	Tiles  []*Tile
	// Links[i][j] is the link of part j of tile i.
	Links [][]Link

	tiling *Tiling
	rev    uint64
}

// Len returns the number of tiles. It is safe to call on a nil view.
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Tiles)
}

// Tiling returns the tiling the view was created from.
func (v *View) Tiling() *Tiling { return v.tiling }

// Neighbors returns an iterator over the indices of the tiles linked to tile
// i, in part order.
func (v *View) Neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, l := range v.Links[i] {
			if l.IsOpen() {
				continue
			}
			if !yield(l.Tile) {
				return
			}
		}
	}
}

// Find returns the index of the first tile containing pt.
func (v *View) Find(pt curve.Point) (int, bool) {
	if v == nil {
		return -1, false
	}
	for i, t := range v.Tiles {
		if t.Contains(pt) {
			return i, true
		}
	}
	return -1, false
}

// HitTest finds the line of a tile in the view that is closest to pt within
// tolerance.
func (v *View) HitTest(pt curve.Point, tolerance float64) (TileHit, bool) {
	var best TileHit
	found := false
	if v == nil {
		return best, false
	}
	for i, t := range v.Tiles {
		h, ok := hitTile(t, pt, tolerance)
		if ok && (!found || h.DistSq < best.DistSq) {
			best, found = h, true
			best.Tile = i
		}
	}
	return best, found
}
