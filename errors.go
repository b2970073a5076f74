package escher

import "errors"

var (
	// ErrInvalidTemplate is returned for shape templates that cannot form a
	// closed polygon.
	ErrInvalidTemplate = errors.New("invalid shape template")
	// ErrInvalidPattern is returned for edge patterns that don't partition
	// their edges.
	ErrInvalidPattern = errors.New("invalid edge pattern")
	// ErrDuplicateAdjacency is returned when a labeled part takes part in
	// more than one adjacency.
	ErrDuplicateAdjacency = errors.New("duplicate adjacency")
	// ErrMissingAdjacency is returned when a labeled part has no declared
	// partner and open parts aren't allowed.
	ErrMissingAdjacency = errors.New("missing adjacency")
	// ErrNoAdjacencies is returned for tiling definitions without any
	// adjacency.
	ErrNoAdjacencies  = errors.New("no adjacencies")
	ErrUnknownLabel   = errors.New("unknown tile label")
	ErrDuplicateLabel = errors.New("duplicate tile label")
	ErrUnknownPart    = errors.New("unknown edge part")
	ErrUnknownVertex  = errors.New("unknown vertex")
	// ErrFixedVector is returned when moving a vector that is part of the
	// template.
	ErrFixedVector = errors.New("vector is fixed")
	// ErrUnresolvedAdjacency is returned by GetTiles when an open part of a
	// tile could not be glued to a neighbor. It indicates a malformed tiling
	// definition, such as adjacent parts of different lengths.
	ErrUnresolvedAdjacency = errors.New("unresolved adjacency")
	// ErrTooManyTiles is returned by GetTiles when expansion exceeds
	// Options.MaxTiles.
	ErrTooManyTiles = errors.New("too many tiles")
)
