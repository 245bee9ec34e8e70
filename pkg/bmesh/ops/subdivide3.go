package ops

import "github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh"

// Subdivide3 replaces every triangle with 4 triangles: one central
// triangle of the three edge midpoints, and three corner triangles.
// Returns false, leaving the mesh untouched, if any face is not a
// triangle.
func Subdivide3(mesh *bmesh.Mesh) bool {
	for _, f := range mesh.Faces() {
		if f.VertCount != 3 {
			return false
		}
	}

	edges := append([]*bmesh.Edge(nil), mesh.Edges()...)
	midpoints := make([]*bmesh.Vertex, len(edges))
	for i, e := range edges {
		e.ID = i
		mp := mesh.AddVertex(e.Center())
		bmesh.AttributeLerp(mesh, mp, e.V1, e.V2, 0.5)
		midpoints[i] = mp
	}

	faces := append([]*bmesh.Face(nil), mesh.Faces()...)
	for _, f := range faces {
		loops := f.Loops()
		first := loops[0]
		mesh.AddFace([]*bmesh.Vertex{
			midpoints[first.Edge.ID],
			midpoints[first.Next.Edge.ID],
			midpoints[first.Prev.Edge.ID],
		})
		for _, l := range loops {
			mesh.AddFace([]*bmesh.Vertex{
				l.Vert,
				midpoints[l.Edge.ID],
				midpoints[l.Prev.Edge.ID],
			})
		}
		mesh.RemoveFace(f)
	}

	for _, e := range edges {
		mesh.RemoveEdge(e)
	}
	return true
}
