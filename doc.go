// Package escher expands Escher-style edge-to-edge tilings over a viewport.
//
// A tiling is described by a [Definition]: a polygon ([ShapeTemplate]) whose
// edges are divided into parts ([EdgePattern]), one or more labeled copies
// of the polygon ([PrototypeDef]), and pairs of labeled parts that are glued
// together ([Adjacency]). [NewTiling] validates the definition and gives
// every pair of glued parts a shared [PartCurve], so that deforming one side
// of a seam deforms the other.
//
// [Tiling.GetTiles] grows the set of visible tiles breadth first. Starting
// from the tiles of the previous [View] that are still visible, or from the
// first prototype, it places a neighbor across every open part, using the
// adjacency declared for the part to compute the neighbor's transform. Tiles
// are deduplicated by the rounded world position of their parts, which is
// also how the links between tiles are discovered.
//
// Views are immutable snapshots. [Display] publishes them to concurrent
// readers with a single atomic pointer swap.
//
// Geometry lives in the curve sub-package.
package escher
