package escher

// Link connects a part of one tile to the part of another tile it is glued
// to. Open parts have a negative Tile.
type Link struct {
	Tile int
	Part int
}

var openLink = Link{Tile: -1, Part: -1}

// IsOpen reports whether the link doesn't point at a tile.
func (l Link) IsOpen() bool { return l.Tile < 0 }

// tileKey identifies a placed tile by its first two parts. A single part
// is not enough: a half turn about a part maps it onto itself.
type tileKey struct {
	label  string
	p0, p1 PositionKey
}

// TileSet collects the tiles of one expansion. It deduplicates tiles by
// position and links parts of different tiles whose rounded world positions
// coincide.
type TileSet struct {
	tiles []*Tile
	links [][]Link
	ids   map[tileKey]int
	// open indexes the parts that haven't been linked yet.
	open map[PositionKey]Link
}

func NewTileSet() *TileSet {
	return &TileSet{
		ids:  make(map[tileKey]int),
		open: make(map[PositionKey]Link),
	}
}

// Add adds a tile to the set and links its parts to matching open parts of
// tiles already in the set, in both directions. If a tile with the same
// label and position is already present, Add returns that tile's index and
// false.
func (s *TileSet) Add(t *Tile) (int, bool) {
	key := tileKey{t.Label(), t.PartPosition(0).Key(), t.PartPosition(1).Key()}
	if idx, ok := s.ids[key]; ok {
		return idx, false
	}
	idx := len(s.tiles)
	s.ids[key] = idx
	s.tiles = append(s.tiles, t)
	links := make([]Link, len(t.Proto.Parts))
	s.links = append(s.links, links)
	for i := range t.Proto.Parts {
		links[i] = openLink
		pk := t.PartPosition(i).Key()
		other, ok := s.open[pk]
		if !ok {
			s.open[pk] = Link{Tile: idx, Part: i}
			continue
		}
		delete(s.open, pk)
		links[i] = other
		s.links[other.Tile][other.Part] = Link{Tile: idx, Part: i}
	}
	return idx, true
}

// Len returns the number of tiles in the set.
func (s *TileSet) Len() int { return len(s.tiles) }

// Tile returns the i-th tile.
func (s *TileSet) Tile(i int) *Tile { return s.tiles[i] }

// Link returns the link of part j of tile i.
func (s *TileSet) Link(i, j int) Link { return s.links[i][j] }

// HasOpenParts reports whether tile i has at least one unlinked part.
func (s *TileSet) HasOpenParts(i int) bool {
	for _, l := range s.links[i] {
		if l.IsOpen() {
			return true
		}
	}
	return false
}
