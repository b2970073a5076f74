package escher

import (
	"fmt"

	"honnef.co/go/escher/curve"
)

// PrototypeDef places the prototype tile with the given label.
type PrototypeDef struct {
	Label     string
	Transform curve.Affine
}

// Definition is a declarative description of a tiling: a shape, the parts
// its edges are divided into, the labeled copies of the shape and the way
// their parts are glued together.
type Definition struct {
	Template    ShapeTemplate
	Pattern     EdgePattern
	Prototypes  []PrototypeDef
	Adjacencies []Adjacency
}

// DefaultMaxTiles is the default value of Options.MaxTiles.
const DefaultMaxTiles = 100_000

// Options configures a [Tiling]. The zero value is usable.
type Options struct {
	// Styler assigns styles to newly created tiles. Tiles stay unstyled if
	// it is nil.
	Styler Styler
	// AllowOpenParts permits parts without a declared partner. Such parts
	// are boundaries of the tiling and are never expanded.
	AllowOpenParts bool
	// MaxTiles limits the number of tiles a single expansion may create,
	// including those outside the viewport. Zero means DefaultMaxTiles.
	MaxTiles int
}

// Tiling is a loaded tiling definition. It owns the shape and the part
// curves shared by all of its tiles.
//
// Editing operations (MoveVertex, and the part curves' own methods) modify
// geometry that previously returned views refer to. They must not run
// concurrently with GetTiles or with readers of those views.
type Tiling struct {
	shape      *Shape
	pattern    EdgePattern
	adj        *EdgePartAdjacencies
	prototypes []*Prototype
	byLabel    map[string]*Prototype
	opts       Options
	// rev counts shape edits; views of an older revision hold stale
	// transforms.
	rev uint64
}

// NewTiling validates a definition and builds the prototype tiles. Glued
// parts share a single [PartCurve], which starts out as a straight line.
func NewTiling(def Definition, opts *Options) (*Tiling, error) {
	t := &Tiling{byLabel: make(map[string]*Prototype)}
	if opts != nil {
		t.opts = *opts
	}
	if t.opts.MaxTiles <= 0 {
		t.opts.MaxTiles = DefaultMaxTiles
	}

	shape, err := NewShape(def.Template)
	if err != nil {
		return nil, err
	}
	if err := def.Pattern.validate(shape); err != nil {
		return nil, err
	}
	if len(def.Prototypes) == 0 {
		return nil, fmt.Errorf("%w: no prototype tiles", ErrInvalidTemplate)
	}
	adj, err := NewEdgePartAdjacencies(def.Adjacencies)
	if err != nil {
		return nil, err
	}
	t.shape = shape
	t.pattern = def.Pattern
	t.adj = adj

	for i, pd := range def.Prototypes {
		if _, ok := t.byLabel[pd.Label]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, pd.Label)
		}
		p := &Prototype{
			Label:     pd.Label,
			Shape:     shape,
			Transform: pd.Transform,
			index:     i,
		}
		for _, e := range shape.Edges {
			var offset float64
			for _, part := range def.Pattern[e.Name] {
				p.Parts = append(p.Parts, &PartShape{Part: part, Edge: e, Offset: offset})
				offset += part.Amount
			}
		}
		t.prototypes = append(t.prototypes, p)
		t.byLabel[p.Label] = p
	}

	for pair := range adj.All() {
		for _, lp := range [...]LabeledPart{pair.A, pair.B} {
			if _, err := t.partShape(lp); err != nil {
				return nil, fmt.Errorf("adjacency %s ~ %s: %w", pair.A, pair.B, err)
			}
		}
		c := NewPartCurve()
		a, _ := t.partShape(pair.A)
		b, _ := t.partShape(pair.B)
		a.Curve = c
		b.Curve = c
	}

	for _, p := range t.prototypes {
		for _, ps := range p.Parts {
			if ps.Curve != nil {
				continue
			}
			lp := LabeledPart{p.Label, ps.Part}
			if !t.opts.AllowOpenParts {
				return nil, fmt.Errorf("%w: %s", ErrMissingAdjacency, lp)
			}
			Logger().Warn("open part in tiling definition", "part", lp.String())
			ps.Curve = NewPartCurve()
		}
	}
	return t, nil
}

// partShape returns the part shape of a labeled part.
func (t *Tiling) partShape(lp LabeledPart) (*PartShape, error) {
	p, ok := t.byLabel[lp.Label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, lp.Label)
	}
	for _, ps := range p.Parts {
		if ps.Part == lp.Part {
			return ps, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPart, lp)
}

// Shape returns the shape shared by all tiles.
func (t *Tiling) Shape() *Shape { return t.shape }

// Pattern returns the edge pattern.
func (t *Tiling) Pattern() EdgePattern { return t.pattern }

// Adjacencies returns the declared adjacencies.
func (t *Tiling) Adjacencies() *EdgePartAdjacencies { return t.adj }

// Prototypes returns the prototype tiles in definition order. The first
// prototype seeds expansion.
func (t *Tiling) Prototypes() []*Prototype { return t.prototypes }

// Prototype returns the prototype with the given label.
func (t *Tiling) Prototype(label string) (*Prototype, bool) {
	p, ok := t.byLabel[label]
	return p, ok
}

// Curve returns the curve of a labeled part. Glued parts return the same
// curve.
func (t *Tiling) Curve(lp LabeledPart) (*PartCurve, error) {
	ps, err := t.partShape(lp)
	if err != nil {
		return nil, err
	}
	return ps.Curve, nil
}

// MoveVertex moves a vertex of the shared shape, deforming every tile.
// Views returned before the move are not reused by [Tiling.GetTiles].
func (t *Tiling) MoveVertex(name string, pt curve.Point) error {
	if err := t.shape.MoveVertex(name, pt); err != nil {
		return err
	}
	t.rev++
	return nil
}

// TileHit is a hit on a line of a tile's part.
type TileHit struct {
	// Index of the tile, or of the prototype for [Tiling.HitTest].
	Tile int
	Part int
	LineHit
}

// HitTest finds the line of a prototype tile, as placed by the definition,
// that is closest to pt within tolerance.
func (t *Tiling) HitTest(pt curve.Point, tolerance float64) (TileHit, bool) {
	var best TileHit
	found := false
	for i, p := range t.prototypes {
		h, ok := hitTile(&Tile{Proto: p, Transform: p.Transform}, pt, tolerance)
		if ok && (!found || h.DistSq < best.DistSq) {
			best, found = h, true
			best.Tile = i
		}
	}
	return best, found
}

// hitTile hit tests the parts of a tile. Tile is left zero in the result.
func hitTile(t *Tile, pt curve.Point, tolerance float64) (TileHit, bool) {
	if !t.Bounds().Inflate(tolerance, tolerance).Touches(curve.NewRectFromPoints(pt, pt)) {
		return TileHit{}, false
	}
	var best TileHit
	found := false
	for i, ps := range t.Proto.Parts {
		h, ok := ps.Curve.HitTest(pt, tolerance, t.partTransform(i))
		if ok && (!found || h.DistSq < best.DistSq) {
			best = TileHit{Part: i, LineHit: h}
			found = true
		}
	}
	return best, found
}
