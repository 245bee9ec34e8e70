package bmesh

import "github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"

// Face is a polygon: VertCount loops threaded in traversal order starting
// at FirstLoop.
type Face struct {
	FirstLoop *Loop
	VertCount int

	// ID is scratch space, same convention as Vertex.ID and Edge.ID.
	ID int

	Attrs map[string]any
}

func newFace() *Face {
	return &Face{Attrs: make(map[string]any)}
}

// NeighborVertices returns the face's vertices in loop order.
func (f *Face) NeighborVertices() []*Vertex {
	verts := make([]*Vertex, 0, f.VertCount)
	if f.FirstLoop == nil {
		return verts
	}
	start := f.FirstLoop
	cur := start
	for {
		verts = append(verts, cur.Vert)
		cur = cur.Next
		if cur == start {
			break
		}
	}
	return verts
}

// NeighborEdges returns the face's edges in loop order.
func (f *Face) NeighborEdges() []*Edge {
	edges := make([]*Edge, 0, f.VertCount)
	if f.FirstLoop == nil {
		return edges
	}
	start := f.FirstLoop
	cur := start
	for {
		edges = append(edges, cur.Edge)
		cur = cur.Next
		if cur == start {
			break
		}
	}
	return edges
}

// Loops returns the face's loops in traversal order, starting at
// FirstLoop. Unlike NeighborVertices/NeighborEdges this exposes the
// loops themselves, which operators need in order to reach l.Edge and
// l.Prev.Edge while building new topology.
func (f *Face) Loops() []*Loop {
	loops := make([]*Loop, 0, f.VertCount)
	if f.FirstLoop == nil {
		return loops
	}
	start := f.FirstLoop
	cur := start
	for {
		loops = append(loops, cur)
		cur = cur.Next
		if cur == start {
			break
		}
	}
	return loops
}

// FindLoop returns the loop of f whose vertex is v, or nil.
func (f *Face) FindLoop(v *Vertex) *Loop {
	if f.FirstLoop == nil {
		return nil
	}
	start := f.FirstLoop
	cur := start
	for {
		if cur.Vert == v {
			return cur
		}
		cur = cur.Next
		if cur == start {
			return nil
		}
	}
}

// Center returns the arithmetic mean of the face's vertex positions.
func (f *Face) Center() vecmath.Vec3 {
	var sum vecmath.Vec3
	n := 0
	if f.FirstLoop != nil {
		start := f.FirstLoop
		cur := start
		for {
			sum = sum.Add(cur.Vert.Position)
			n++
			cur = cur.Next
			if cur == start {
				break
			}
		}
	}
	if n == 0 {
		return vecmath.Vec3{}
	}
	return sum.Scale(1.0 / float64(n))
}
