package escher

import (
	"fmt"

	"honnef.co/go/escher/curve"
)

// GetTiles expands the tiling over bounds and returns the tiles that overlap
// it, together with the links between them.
//
// Tiles of prev that still overlap bounds are carried over unchanged,
// keeping their identity and style; prev may be nil. A prev created before
// the last [Tiling.MoveVertex] is ignored. If no tile is carried
// over, expansion starts from the first prototype, moved to the center of
// bounds if it doesn't overlap bounds where the definition places it.
// Expansion proceeds breadth first across open parts. Neighbors that don't
// overlap bounds take part in linking but are neither expanded nor returned.
//
// Overlapping means sharing an area of positive size: tiles that only touch
// the boundary of bounds are not part of the result. Newly created tiles are
// styled by Options.Styler.
func (t *Tiling) GetTiles(bounds curve.Rect, prev *View) (*View, error) {
	bounds = bounds.Abs()
	view := &View{Bounds: bounds, tiling: t, rev: t.rev}
	if !(bounds.Area() > 0) {
		return view, nil
	}

	set := NewTileSet()
	var kept, dropped int
	if prev != nil && prev.tiling == t && prev.rev == t.rev {
		for _, tile := range prev.Tiles {
			if tile.Bounds().Overlaps(bounds) {
				set.Add(tile)
				kept++
			} else {
				dropped++
			}
		}
	}
	carried := set.Len()

	var queue []int
	for i := range set.Len() {
		if set.HasOpenParts(i) {
			queue = append(queue, i)
		}
	}
	if set.Len() == 0 {
		proto := t.prototypes[0]
		seed := &Tile{Proto: proto, Transform: proto.Transform}
		if tb := seed.Bounds(); !tb.Overlaps(bounds) {
			seed.Transform = curve.Translate(bounds.Center().Sub(tb.Center())).Mul(seed.Transform)
		}
		idx, _ := set.Add(seed)
		queue = append(queue, idx)
	}

	iterations := 0
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		iterations++
		tile := set.Tile(i)
		for j, ps := range tile.Proto.Parts {
			if !set.Link(i, j).IsOpen() {
				continue
			}
			lp := LabeledPart{tile.Label(), ps.Part}
			partner, ok := t.adj.TryGetAdjacent(lp)
			if !ok {
				if t.opts.AllowOpenParts {
					continue
				}
				return nil, fmt.Errorf("%w: %s has no partner", ErrUnresolvedAdjacency, lp)
			}
			nt, err := t.neighbor(tile.PartPosition(j), partner)
			if err != nil {
				return nil, err
			}
			idx, added := set.Add(nt)
			if set.Link(i, j).IsOpen() {
				return nil, fmt.Errorf("%w: %s does not meet %s at %s",
					ErrUnresolvedAdjacency, lp, partner, tile.PartPosition(j).Key())
			}
			if set.Len() > t.opts.MaxTiles {
				return nil, fmt.Errorf("%w: more than %d", ErrTooManyTiles, t.opts.MaxTiles)
			}
			if added && nt.Bounds().Overlaps(bounds) {
				queue = append(queue, idx)
			}
		}
	}

	// Only tiles overlapping bounds are returned. Links to other tiles are
	// dropped.
	remap := make([]int, set.Len())
	for i := range set.Len() {
		tile := set.Tile(i)
		if i >= carried && !tile.Bounds().Overlaps(bounds) {
			remap[i] = -1
			continue
		}
		remap[i] = len(view.Tiles)
		if i >= carried && t.opts.Styler != nil {
			tile.Style = t.opts.Styler.Style(tile)
		}
		view.Tiles = append(view.Tiles, tile)
	}
	view.Links = make([][]Link, len(view.Tiles))
	for i := range set.Len() {
		if remap[i] < 0 {
			continue
		}
		links := make([]Link, len(set.Tile(i).Proto.Parts))
		for j := range links {
			l := set.Link(i, j)
			if l.IsOpen() || remap[l.Tile] < 0 {
				links[j] = openLink
			} else {
				links[j] = Link{Tile: remap[l.Tile], Part: l.Part}
			}
		}
		view.Links[remap[i]] = links
	}

	Logger().Debug("expanded tiling",
		"bounds", bounds.String(),
		"kept", kept,
		"dropped", dropped,
		"created", set.Len()-carried,
		"returned", len(view.Tiles),
		"iterations", iterations)
	return view, nil
}

// neighbor creates the tile whose part lp is glued onto the part at pos.
func (t *Tiling) neighbor(pos EdgePartPosition, lp LabeledPart) (*Tile, error) {
	ps, err := t.partShape(lp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnresolvedAdjacency, err)
	}
	proto := t.byLabel[lp.Label]
	g := ps.Position(proto.Transform).GetTransformTo(pos)
	return &Tile{Proto: proto, Transform: g.Mul(proto.Transform)}, nil
}
