// Package bmesh implements a non-manifold boundary representation of a
// polygonal mesh: vertices, edges, loops and faces linked through three
// cyclic doubly-linked lists (the disk cycle around a vertex, the radial
// cycle around an edge, the face cycle of a face) with mutation
// primitives that keep all three consistent.
package bmesh

import (
	"go.uber.org/zap"

	"github.com/daniel-amthauer/BMeshUnreal/internal/logger"
	"github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"
)

// Mesh owns every vertex, edge, loop and face created through it. No
// entity may be shared between two meshes.
type Mesh struct {
	schema MeshSchema

	vertices []*Vertex
	edges    []*Edge
	loops    []*Loop
	faces    []*Face
}

// NewMesh creates an empty mesh using the given attribute schema.
func NewMesh(schema MeshSchema) *Mesh {
	return &Mesh{schema: schema}
}

// Schema returns the mesh's attribute schema.
func (m *Mesh) Schema() MeshSchema { return m.schema }

// Vertices returns every vertex currently owned by the mesh, in
// insertion order among the survivors.
func (m *Mesh) Vertices() []*Vertex { return m.vertices }

// Edges returns every edge currently owned by the mesh.
func (m *Mesh) Edges() []*Edge { return m.edges }

// Loops returns every loop currently owned by the mesh.
func (m *Mesh) Loops() []*Loop { return m.loops }

// Faces returns every face currently owned by the mesh.
func (m *Mesh) Faces() []*Face { return m.faces }

// AddVertex creates an isolated vertex at the given position.
func (m *Mesh) AddVertex(position vecmath.Vec3) *Vertex {
	v := newVertex(position)
	m.vertices = append(m.vertices, v)
	return v
}

// FindEdge returns the edge between a and b, or nil if none exists (or
// either argument is nil, or a == b). Walks both vertices' disk cycles
// in lockstep so the cost is bounded by the smaller of the two disks.
func (m *Mesh) FindEdge(a, b *Vertex) *Edge {
	if a == nil || b == nil || a == b {
		return nil
	}
	if a.Edge == nil || b.Edge == nil {
		return nil
	}
	start1, start2 := a.Edge, b.Edge
	e1, e2 := start1, start2
	for {
		if e1.ContainsVertex(b) {
			return e1
		}
		if e2.ContainsVertex(a) {
			return e2
		}
		e1 = e1.Next(a)
		e2 = e2.Next(b)
		if e1 == start1 && e2 == start2 {
			return nil
		}
	}
}

// AddEdge returns the edge between a and b, creating it if it doesn't
// already exist. Returns nil (and logs) if a or b is nil, or a == b.
func (m *Mesh) AddEdge(a, b *Vertex) *Edge {
	if a == nil || b == nil {
		logger.Warn("bmesh: AddEdge called with a nil vertex")
		return nil
	}
	if a == b {
		logger.Warn("bmesh: AddEdge called with equal endpoints, self-edges are not allowed")
		return nil
	}
	if e := m.FindEdge(a, b); e != nil {
		return e
	}
	e := &Edge{V1: a, V2: b}
	insertIntoDisk(e, a)
	insertIntoDisk(e, b)
	m.edges = append(m.edges, e)
	return e
}

// insertIntoDisk splices e into v's disk cycle, immediately after
// v.Edge, without advancing v.Edge. If v had no incident edge yet, e
// becomes a self-linked one-element cycle.
func insertIntoDisk(e *Edge, v *Vertex) {
	if v.Edge == nil {
		v.Edge = e
		e.SetNext(v, e)
		e.SetPrev(v, e)
		return
	}
	h := v.Edge
	n := h.Next(v)
	e.SetNext(v, n)
	e.SetPrev(v, h)
	n.SetPrev(v, e)
	h.SetNext(v, e)
}

// AddFace builds a face over verts, in order, creating any missing
// edges. Requires at least 3 distinct vertices; returns nil (and logs)
// otherwise. Use AddFaceUnchecked to bypass the minimum, matching the
// permissive behavior of the reference implementation this port is
// based on (see the Open Question in the design notes).
func (m *Mesh) AddFace(verts []*Vertex) *Face {
	if len(verts) < 3 {
		logger.Warn("bmesh: AddFace requires at least 3 vertices", zap.Int("count", len(verts)))
		return nil
	}
	return m.addFaceUnchecked(verts)
}

// AddFaceUnchecked builds a face over verts without enforcing the
// minimum vertex count, permitting degenerate 1- or 2-sided faces.
func (m *Mesh) AddFaceUnchecked(verts []*Vertex) *Face {
	if len(verts) < 1 {
		logger.Warn("bmesh: AddFaceUnchecked requires at least 1 vertex")
		return nil
	}
	return m.addFaceUnchecked(verts)
}

func (m *Mesh) addFaceUnchecked(verts []*Vertex) *Face {
	for _, v := range verts {
		if v == nil {
			logger.Warn("bmesh: AddFace called with a nil vertex")
			return nil
		}
	}
	n := len(verts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if verts[i] == verts[j] {
				logger.Warn("bmesh: AddFace called with a duplicate vertex")
				return nil
			}
		}
	}
	edges := make([]*Edge, n)
	for i, v := range verts {
		next := verts[(i+1)%n]
		e := m.AddEdge(v, next)
		if e == nil {
			return nil
		}
		edges[i] = e
	}

	f := newFace()
	f.VertCount = n
	m.faces = append(m.faces, f)

	for i, v := range verts {
		l := &Loop{Vert: v, Edge: edges[i], Face: f}
		insertLoopIntoFace(l, f)
		insertLoopIntoRadial(l, edges[i])
		m.loops = append(m.loops, l)
	}
	return f
}

func insertLoopIntoFace(l *Loop, f *Face) {
	if f.FirstLoop == nil {
		f.FirstLoop = l
		l.Next = l
		l.Prev = l
		return
	}
	h := f.FirstLoop
	n := h.Next
	l.Next = n
	l.Prev = h
	n.Prev = l
	h.Next = l
}

func insertLoopIntoRadial(l *Loop, e *Edge) {
	if e.Loop == nil {
		e.Loop = l
		l.RadialNext = l
		l.RadialPrev = l
		return
	}
	h := e.Loop
	n := h.RadialNext
	l.RadialNext = n
	l.RadialPrev = h
	n.RadialPrev = l
	h.RadialNext = l
}

// RemoveFace removes f and every one of its loops. A no-op if f is nil.
func (m *Mesh) RemoveFace(f *Face) {
	if f == nil {
		return
	}
	loops := f.Loops()
	for _, l := range loops {
		l.Face = nil
		m.removeLoop(l)
	}
	m.faces = removeElem(m.faces, f)
}

// removeLoop unsplices l from whatever cycles it participates in. If l
// still belongs to a face, ownership of the removal is handed to
// RemoveFace (the single-owner policy: only RemoveFace tears down a
// face's loops).
func (m *Mesh) removeLoop(l *Loop) {
	if l.Face != nil {
		m.RemoveFace(l.Face)
		return
	}
	if l.RadialNext == l {
		l.Edge.Loop = nil
	} else {
		l.RadialPrev.RadialNext = l.RadialNext
		l.RadialNext.RadialPrev = l.RadialPrev
		if l.Edge.Loop == l {
			l.Edge.Loop = l.RadialNext
		}
	}
	l.Next = nil
	l.Prev = nil
	m.loops = removeElem(m.loops, l)
}

// RemoveEdge removes e, first removing every face incident to it. A
// no-op if e is nil.
func (m *Mesh) RemoveEdge(e *Edge) {
	if e == nil {
		return
	}
	for e.Loop != nil {
		m.removeLoop(e.Loop)
	}
	unspliceFromDisk(e, e.V1)
	unspliceFromDisk(e, e.V2)
	m.edges = removeElem(m.edges, e)
}

func unspliceFromDisk(e *Edge, v *Vertex) {
	if e.Next(v) == e {
		v.Edge = nil
		return
	}
	e.Prev(v).SetNext(v, e.Next(v))
	e.Next(v).SetPrev(v, e.Prev(v))
	if v.Edge == e {
		v.Edge = e.Next(v)
	}
}

// RemoveVertex removes v, first removing every edge incident to it (and,
// transitively, every loop and face that depended on those edges). A
// no-op if v is nil.
func (m *Mesh) RemoveVertex(v *Vertex) {
	if v == nil {
		return
	}
	for v.Edge != nil {
		m.RemoveEdge(v.Edge)
	}
	m.vertices = removeElem(m.vertices, v)
}

func removeElem[T comparable](s []T, x T) []T {
	for i, e := range s {
		if e == x {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
