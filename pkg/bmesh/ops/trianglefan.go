package ops

import "github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh"

// SubdivideTriangleFan replaces each of faces with a fan of triangles
// meeting at a new center vertex, one triangle per edge of the original
// face. Unlike Subdivide, the center vertex gets no attribute
// interpolation — it is a fresh vertex with only its position set.
// Faces not present in mesh, or given more than once, are ignored.
func SubdivideTriangleFan(mesh *bmesh.Mesh, faces []*bmesh.Face) {
	seen := make(map[*bmesh.Face]bool, len(faces))
	for _, f := range faces {
		if f == nil || seen[f] {
			continue
		}
		seen[f] = true

		center := mesh.AddVertex(f.Center())
		for _, l := range f.Loops() {
			mesh.AddFace([]*bmesh.Vertex{center, l.Vert, l.Next.Vert})
		}
		mesh.RemoveFace(f)
	}
}

// SubdivideTriangleFanAllFaces fans every face currently in the mesh.
func SubdivideTriangleFanAllFaces(mesh *bmesh.Mesh) {
	SubdivideTriangleFan(mesh, append([]*bmesh.Face(nil), mesh.Faces()...))
}

// SubdivideTriangleFanSingle fans a single face.
func SubdivideTriangleFanSingle(mesh *bmesh.Mesh, face *bmesh.Face) {
	if face == nil {
		return
	}
	SubdivideTriangleFan(mesh, []*bmesh.Face{face})
}
