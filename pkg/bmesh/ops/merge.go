package ops

import "github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh"

// MergeFaces removes e and replaces the two faces it separated with a
// single face spanning both, in the winding order the pair's shared
// edge implies. Returns false, leaving the mesh untouched, unless e
// borders exactly two faces.
func MergeFaces(mesh *bmesh.Mesh, e *bmesh.Edge) bool {
	if e == nil {
		return false
	}
	if len(e.NeighborFaces()) != 2 {
		return false
	}

	l := e.Loop
	lr := l.RadialNext

	var verts []*bmesh.Vertex
	for cur := l.Next; cur != l; cur = cur.Next {
		verts = append(verts, cur.Vert)
	}
	for cur := lr.Next; cur != lr; cur = cur.Next {
		verts = append(verts, cur.Vert)
	}

	f := mesh.AddFace(verts)
	if f == nil {
		return false
	}
	mesh.RemoveEdge(e)
	return true
}
