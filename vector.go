package escher

import (
	"fmt"

	"honnef.co/go/escher/curve"
)

// VectorID addresses a vector in a [VectorArena].
type VectorID int

// LineVector is an end or control point of a line. Fixed vectors are defined
// by the shape template and cannot be moved.
type LineVector struct {
	curve.Point
	Fixed bool
}

// VectorArena stores the vectors of a [PartCurve]. Lines refer to their
// vectors by ID, and neighboring lines share the ID of their joint, so that
// moving a joint moves the ends of both lines.
type VectorArena struct {
	vectors []LineVector
}

// Add appends a vector to the arena and returns its ID.
func (a *VectorArena) Add(pt curve.Point, fixed bool) VectorID {
	a.vectors = append(a.vectors, LineVector{Point: pt, Fixed: fixed})
	return VectorID(len(a.vectors) - 1)
}

// At returns the vector with the given ID. It panics if the ID is out of
// range.
func (a *VectorArena) At(id VectorID) LineVector {
	return a.vectors[id]
}

// Move sets the position of a free vector.
func (a *VectorArena) Move(id VectorID, pt curve.Point) error {
	if id < 0 || int(id) >= len(a.vectors) {
		panic(fmt.Sprintf("vector %d out of range [0, %d)", id, len(a.vectors)))
	}
	if a.vectors[id].Fixed {
		return fmt.Errorf("moving vector %d: %w", id, ErrFixedVector)
	}
	a.vectors[id].Point = pt
	return nil
}

// Len returns the number of vectors in the arena.
func (a *VectorArena) Len() int {
	return len(a.vectors)
}
