package escher

import (
	"fmt"

	"honnef.co/go/escher/curve"
)

// ShapeTemplate describes a polygon by parallel lists of edge names, vertex
// names and initial vertex positions. Edge i runs from vertex i to vertex
// i+1, and the last edge closes the polygon.
type ShapeTemplate struct {
	EdgeNames   []string
	VertexNames []string
	Positions   []curve.Point
}

// Vertex is a corner of a [Shape].
type Vertex struct {
	Name     string
	Position curve.Point

	in, out *Edge
}

// Incoming returns the edge that ends at v.
func (v *Vertex) Incoming() *Edge { return v.in }

// Outgoing returns the edge that starts at v.
func (v *Vertex) Outgoing() *Edge { return v.out }

// Edge is a side of a [Shape]. Its start and end vertices are assigned once,
// when the shape is built.
type Edge struct {
	Name  string
	Index int

	start, end *Vertex
}

func (e *Edge) Start() *Vertex { return e.start }
func (e *Edge) End() *Vertex   { return e.end }

// Next returns the edge following e in the shape's ring.
func (e *Edge) Next() *Edge { return e.end.out }

func (e *Edge) setStart(v *Vertex) {
	if e.start != nil {
		panic(fmt.Sprintf("start of edge %q assigned twice", e.Name))
	}
	e.start = v
	v.out = e
}

func (e *Edge) setEnd(v *Vertex) {
	if e.end != nil {
		panic(fmt.Sprintf("end of edge %q assigned twice", e.Name))
	}
	e.end = v
	v.in = e
}

// Transform returns the similarity transform that maps the edge's
// normalized space onto the edge: (0, 0) onto the start vertex and (1, 0)
// onto the end vertex. A zero length edge collapses everything onto its
// start.
func (e *Edge) Transform() curve.Affine {
	return curve.MapSegment(curve.Pt(0, 0), curve.Pt(1, 0), e.start.Position, e.end.Position)
}

// Shape is a closed polygon built from a [ShapeTemplate]: a ring of edges,
// each joining two shared vertices. The topology of a shape never changes
// after construction; only vertex positions do.
type Shape struct {
	Edges    []*Edge
	Vertices []*Vertex

	clockwise bool
}

// NewShape builds the edge and vertex ring described by a template.
func NewShape(t ShapeTemplate) (*Shape, error) {
	n := len(t.EdgeNames)
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 edges, got %d", ErrInvalidTemplate, n)
	}
	if len(t.VertexNames) != n || len(t.Positions) != n {
		return nil, fmt.Errorf("%w: got %d edges, %d vertex names and %d positions",
			ErrInvalidTemplate, n, len(t.VertexNames), len(t.Positions))
	}
	if err := checkNames("edge", t.EdgeNames); err != nil {
		return nil, err
	}
	if err := checkNames("vertex", t.VertexNames); err != nil {
		return nil, err
	}

	s := &Shape{
		Edges:    make([]*Edge, n),
		Vertices: make([]*Vertex, n),
	}
	for i := range n {
		s.Vertices[i] = &Vertex{Name: t.VertexNames[i], Position: t.Positions[i]}
		s.Edges[i] = &Edge{Name: t.EdgeNames[i], Index: i}
	}
	for i, e := range s.Edges {
		e.setStart(s.Vertices[i])
		e.setEnd(s.Vertices[(i+1)%n])
	}
	s.clockwise = s.signedArea() > 0
	return s, nil
}

func checkNames(kind string, names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("%w: empty %s name", ErrInvalidTemplate, kind)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate %s name %q", ErrInvalidTemplate, kind, name)
		}
		seen[name] = true
	}
	return nil
}

// signedArea returns twice the signed area of the polygon, computed with the
// shoelace formula. It is positive for polygons that are clockwise in y-down
// coordinates.
func (s *Shape) signedArea() float64 {
	var sum float64
	for _, e := range s.Edges {
		p, q := e.start.Position, e.end.Position
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// IsClockwise reports whether the shape's vertices, as placed by the
// template, run clockwise in y-down coordinates. It is determined once, at
// construction, and governs the winding of tile paths.
func (s *Shape) IsClockwise() bool { return s.clockwise }

// Edge returns the edge with the given name.
func (s *Shape) Edge(name string) (*Edge, bool) {
	for _, e := range s.Edges {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Vertex returns the vertex with the given name.
func (s *Shape) Vertex(name string) (*Vertex, bool) {
	for _, v := range s.Vertices {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// MoveVertex moves the named vertex, deforming both edges that meet in it.
func (s *Shape) MoveVertex(name string, pt curve.Point) error {
	v, ok := s.Vertex(name)
	if !ok {
		return fmt.Errorf("moving vertex %q: %w", name, ErrUnknownVertex)
	}
	v.Position = pt
	return nil
}
