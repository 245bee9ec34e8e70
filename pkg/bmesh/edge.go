package bmesh

import "github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"

// Edge connects V1 and V2. Next1/Prev1 thread the disk cycle of V1;
// Next2/Prev2 thread the disk cycle of V2. Because either endpoint might
// be stored as V1 or V2 depending on which edge is asking, every
// navigation method takes the vertex whose side is wanted and dispatches
// internally rather than exposing the raw fields to callers.
type Edge struct {
	V1, V2 *Vertex

	Next1, Prev1 *Edge
	Next2, Prev2 *Edge

	// Loop is one loop in the radial cycle of this edge, or nil if the
	// edge bounds no face.
	Loop *Loop

	// ID is scratch space used by operators to index a parallel array
	// (Subdivide's edge-midpoint lookup). Not meaningful between calls.
	ID int
}

// ContainsVertex reports whether v is one of this edge's endpoints.
func (e *Edge) ContainsVertex(v *Vertex) bool {
	return e.V1 == v || e.V2 == v
}

// OtherVertex returns the endpoint that is not v. Panics if v is not an
// endpoint of e — a caller-side bug, not a mesh corruption.
func (e *Edge) OtherVertex(v *Vertex) *Vertex {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	default:
		panic("bmesh: OtherVertex called with a vertex not on this edge")
	}
}

// Next returns the next edge in v's disk cycle.
func (e *Edge) Next(v *Vertex) *Edge {
	switch v {
	case e.V1:
		return e.Next1
	case e.V2:
		return e.Next2
	default:
		panic("bmesh: Next called with a vertex not on this edge")
	}
}

// Prev returns the previous edge in v's disk cycle.
func (e *Edge) Prev(v *Vertex) *Edge {
	switch v {
	case e.V1:
		return e.Prev1
	case e.V2:
		return e.Prev2
	default:
		panic("bmesh: Prev called with a vertex not on this edge")
	}
}

// SetNext rewires the next-pointer of v's side of e.
func (e *Edge) SetNext(v *Vertex, other *Edge) {
	switch v {
	case e.V1:
		e.Next1 = other
	case e.V2:
		e.Next2 = other
	default:
		panic("bmesh: SetNext called with a vertex not on this edge")
	}
}

// SetPrev rewires the previous-pointer of v's side of e.
func (e *Edge) SetPrev(v *Vertex, other *Edge) {
	switch v {
	case e.V1:
		e.Prev1 = other
	case e.V2:
		e.Prev2 = other
	default:
		panic("bmesh: SetPrev called with a vertex not on this edge")
	}
}

// Center returns the midpoint of the edge's two endpoints.
func (e *Edge) Center() vecmath.Vec3 {
	return e.V1.Position.Lerp(e.V2.Position, 0.5)
}

// NeighborFaces returns every face incident to this edge, walking its
// radial cycle. An edge with Loop == nil borders no face.
func (e *Edge) NeighborFaces() []*Face {
	if e.Loop == nil {
		return nil
	}
	var faces []*Face
	start := e.Loop
	cur := start
	for {
		if cur.Face != nil {
			faces = append(faces, cur.Face)
		}
		cur = cur.RadialNext
		if cur == start {
			break
		}
	}
	return faces
}
