// Package ops implements topological and geometric operators built
// entirely on top of bmesh's public primitives and queries: no operator
// in this package touches a link field directly.
package ops

import "github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh"

// Subdivide replaces every face of the mesh with one quad per corner,
// meeting at a new center vertex, and every original edge with two
// half-edges meeting at a new midpoint vertex. Vertex attributes on the
// new vertices are populated by linear interpolation (edge midpoints)
// and running mean (face centers) of the vertices they replace.
func Subdivide(mesh *bmesh.Mesh) {
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
		center := mesh.AddVertex(f.Center())
		w := 0.0
		for _, l := range loops {
			w++
			bmesh.AttributeLerp(mesh, center, center, l.Vert, 1/w)
		}
		for _, l := range loops {
			mesh.AddFace([]*bmesh.Vertex{
				l.Vert,
				midpoints[l.Edge.ID],
				center,
				midpoints[l.Prev.Edge.ID],
			})
		}
		mesh.RemoveFace(f)
	}

	for _, e := range edges {
		mesh.RemoveEdge(e)
	}
}
