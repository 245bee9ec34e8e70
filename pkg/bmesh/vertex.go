package bmesh

import "github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"

// Vertex is a point in space plus one arbitrary incident edge, the entry
// point into its disk cycle. A vertex with Edge == nil is isolated.
type Vertex struct {
	Position vecmath.Vec3
	Edge     *Edge

	// ID is scratch space used by operators that need a dense integer
	// index into a parallel array (SquarifyQuads' per-vertex accumulators).
	// It is not meaningful between operator calls.
	ID int

	// Attrs holds user-declared attributes, keyed by the names in the
	// mesh's vertex schema. Never read or written by the topology store
	// itself; only AttributeLerp and the caller touch it.
	Attrs map[string]any
}

func newVertex(pos vecmath.Vec3) *Vertex {
	return &Vertex{Position: pos, Attrs: make(map[string]any)}
}

// NeighborEdges returns every edge incident to v, walking its disk cycle.
func (v *Vertex) NeighborEdges() []*Edge {
	if v.Edge == nil {
		return nil
	}
	var edges []*Edge
	start := v.Edge
	cur := start
	for {
		edges = append(edges, cur)
		cur = cur.Next(v)
		if cur == start {
			break
		}
	}
	return edges
}

// NeighborFaces returns every distinct face incident to v.
func (v *Vertex) NeighborFaces() []*Face {
	var faces []*Face
	seen := make(map[*Face]bool)
	for _, e := range v.NeighborEdges() {
		for _, f := range e.NeighborFaces() {
			if !seen[f] {
				seen[f] = true
				faces = append(faces, f)
			}
		}
	}
	return faces
}
