package ops

import (
	"math"
	"math/rand"
	"testing"

	"github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh"
	"github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"
)

func triangleMesh() *bmesh.Mesh {
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	v0 := m.AddVertex(vecmath.Vec3{X: -0.5, Z: -math.Sqrt(3) / 6})
	v1 := m.AddVertex(vecmath.Vec3{X: 0.5, Z: -math.Sqrt(3) / 6})
	v2 := m.AddVertex(vecmath.Vec3{Z: math.Sqrt(3) / 3})
	m.AddFace([]*bmesh.Vertex{v0, v1, v2})
	return m
}

func TestSubdivideTriangle(t *testing.T) {
	m := triangleMesh()
	Subdivide(m)

	if got, want := len(m.Vertices()), 7; got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
	if got, want := len(m.Faces()), 3; got != want {
		t.Errorf("face count = %d, want %d", got, want)
	}
	for _, f := range m.Faces() {
		if f.VertCount != 4 {
			t.Errorf("face has %d sides, want 4", f.VertCount)
		}
	}
}

func TestSubdivideVertexEdgeFaceCounts(t *testing.T) {
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	verts := make([]*bmesh.Vertex, 6)
	for i := range verts {
		angle := float64(i) * math.Pi / 3
		verts[i] = m.AddVertex(vecmath.Vec3{X: math.Cos(angle), Z: math.Sin(angle)})
	}
	m.AddFace(verts)

	origV, origE, origF := len(m.Vertices()), len(m.Edges()), len(m.Faces())
	Subdivide(m)

	wantV := origV + origE + origF
	if got := len(m.Vertices()); got != wantV {
		t.Errorf("vertex count = %d, want %d", got, wantV)
	}
	if got, want := len(m.Faces()), 6; got != want { // one quad per original corner
		t.Errorf("face count = %d, want %d", got, want)
	}
}

func TestSubdivide3RequiresTriangles(t *testing.T) {
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	v0 := m.AddVertex(vecmath.Vec3{X: -1, Z: -1})
	v1 := m.AddVertex(vecmath.Vec3{X: 1, Z: -1})
	v2 := m.AddVertex(vecmath.Vec3{X: 1, Z: 1})
	v3 := m.AddVertex(vecmath.Vec3{X: -1, Z: 1})
	m.AddFace([]*bmesh.Vertex{v0, v1, v2, v3})

	if ok := Subdivide3(m); ok {
		t.Error("Subdivide3 on a quad mesh should return false")
	}
	if len(m.Faces()) != 1 {
		t.Error("Subdivide3 should not mutate the mesh on failure")
	}
}

func TestSubdivide3Triangle(t *testing.T) {
	m := triangleMesh()
	if ok := Subdivide3(m); !ok {
		t.Fatal("Subdivide3 on an all-triangle mesh should return true")
	}
	if got, want := len(m.Faces()), 4; got != want {
		t.Errorf("face count = %d, want %d", got, want)
	}
	for _, f := range m.Faces() {
		if f.VertCount != 3 {
			t.Errorf("face has %d sides, want 3", f.VertCount)
		}
	}
}

func TestSubdivideTriangleFan(t *testing.T) {
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	verts := make([]*bmesh.Vertex, 5)
	for i := range verts {
		angle := float64(i) * 2 * math.Pi / 5
		verts[i] = m.AddVertex(vecmath.Vec3{X: math.Cos(angle), Z: math.Sin(angle)})
	}
	m.AddFace(verts)

	SubdivideTriangleFanAllFaces(m)

	if got, want := len(m.Faces()), 5; got != want {
		t.Errorf("face count = %d, want %d", got, want)
	}
	for _, f := range m.Faces() {
		if f.VertCount != 3 {
			t.Errorf("face has %d sides, want 3", f.VertCount)
		}
	}
}

func TestSubdivideTriangleFanSubset(t *testing.T) {
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	v0 := m.AddVertex(vecmath.Vec3{X: -1, Z: -1})
	v1 := m.AddVertex(vecmath.Vec3{X: 1, Z: -1})
	v2 := m.AddVertex(vecmath.Vec3{X: 1, Z: 1})
	v3 := m.AddVertex(vecmath.Vec3{X: -1, Z: 1})
	f0 := m.AddFace([]*bmesh.Vertex{v0, v1, v2})
	f1 := m.AddFace([]*bmesh.Vertex{v0, v2, v3})

	SubdivideTriangleFanSingle(m, f0)

	if got, want := len(m.Faces()), 3+1; got != want { // f0 -> 3 fanned triangles, f1 untouched
		t.Errorf("face count = %d, want %d", got, want)
	}
	found := false
	for _, f := range m.Faces() {
		if f == f1 {
			found = true
		}
	}
	if !found {
		t.Error("SubdivideTriangleFanSingle removed a face outside its input set")
	}
}

func TestMergeFacesRequiresTwoNeighborFaces(t *testing.T) {
	m := triangleMesh()
	e := m.Edges()[0]
	if ok := MergeFaces(m, e); ok {
		t.Error("MergeFaces on a boundary edge should return false")
	}
}

func TestMergeTwoTrianglesIntoQuad(t *testing.T) {
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	v0 := m.AddVertex(vecmath.Vec3{X: -1, Z: -1})
	v1 := m.AddVertex(vecmath.Vec3{X: 1, Z: -1})
	v2 := m.AddVertex(vecmath.Vec3{X: 1, Z: 1})
	v3 := m.AddVertex(vecmath.Vec3{X: -1, Z: 1})
	m.AddFace([]*bmesh.Vertex{v0, v1, v2})
	m.AddFace([]*bmesh.Vertex{v2, v1, v3})

	shared := m.FindEdge(v1, v2)
	if !MergeFaces(m, shared) {
		t.Fatal("MergeFaces on the shared edge should succeed")
	}
	if got, want := len(m.Faces()), 1; got != want {
		t.Fatalf("face count = %d, want %d", got, want)
	}
	f := m.Faces()[0]
	if f.VertCount != 4 {
		t.Errorf("merged face has %d sides, want 4", f.VertCount)
	}
	verts := f.NeighborVertices()
	seen := map[*bmesh.Vertex]bool{}
	for _, v := range verts {
		seen[v] = true
	}
	for _, v := range []*bmesh.Vertex{v0, v1, v2, v3} {
		if !seen[v] {
			t.Errorf("merged face is missing a vertex: %v", v.Position)
		}
	}
}

func quadGrid(m *bmesh.Mesh, n int) [][]*bmesh.Vertex {
	verts := make([][]*bmesh.Vertex, n+1)
	for i := 0; i <= n; i++ {
		verts[i] = make([]*bmesh.Vertex, n+1)
		for j := 0; j <= n; j++ {
			verts[i][j] = m.AddVertex(vecmath.Vec3{X: float64(i), Z: float64(j)})
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.AddFace([]*bmesh.Vertex{verts[i][j], verts[i+1][j], verts[i+1][j+1], verts[i][j+1]})
		}
	}
	return verts
}

func TestSquarifyFixedPointOnUnitGrid(t *testing.T) {
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	quadGrid(m, 3)

	before := make([]vecmath.Vec3, len(m.Vertices()))
	for i, v := range m.Vertices() {
		before[i] = v.Position
	}

	SquarifyQuads(m, 1.0, false)

	for i, v := range m.Vertices() {
		if v.Position.Distance(before[i]) > 1e-6 {
			t.Errorf("vertex %d moved from %v to %v on an already-square grid", i, before[i], v.Position)
		}
	}
}

func TestSquarifyPullsSkewedQuadTowardSquare(t *testing.T) {
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	v0 := m.AddVertex(vecmath.Vec3{X: 0, Z: 0})
	v1 := m.AddVertex(vecmath.Vec3{X: 2, Z: 0})
	v2 := m.AddVertex(vecmath.Vec3{X: 3, Z: 2})
	v3 := m.AddVertex(vecmath.Vec3{X: -1, Z: 2})
	m.AddFace([]*bmesh.Vertex{v0, v1, v2, v3})

	for i := 0; i < 50; i++ {
		SquarifyQuads(m, 0.5, false)
	}

	f := m.Faces()[0]
	corners := f.NeighborVertices()
	side := make([]float64, 4)
	for i := range corners {
		side[i] = corners[i].Position.Distance(corners[(i+1)%4].Position)
	}
	for i := 1; i < 4; i++ {
		if math.Abs(side[i]-side[0]) > 0.2 {
			t.Errorf("side lengths did not converge: %v", side)
		}
	}
}

func TestSquarifyRestPosPin(t *testing.T) {
	m := bmesh.NewMesh(bmesh.NewSchemaDescriptor(
		bmesh.AttributeSpec{Name: RestPosAttr, Kind: bmesh.KindVec3},
		bmesh.AttributeSpec{Name: WeightAttr, Kind: bmesh.KindFloat64},
	))
	v0 := m.AddVertex(vecmath.Vec3{X: 0, Z: 0})
	v1 := m.AddVertex(vecmath.Vec3{X: 2, Z: 0})
	v2 := m.AddVertex(vecmath.Vec3{X: 3, Z: 2})
	v3 := m.AddVertex(vecmath.Vec3{X: -1, Z: 2})
	m.AddFace([]*bmesh.Vertex{v0, v1, v2, v3})

	pinned := vecmath.Vec3{X: 0, Z: 0}
	v0.Attrs[RestPosAttr] = pinned
	v0.Attrs[WeightAttr] = 1.0

	for i := 0; i < 10; i++ {
		SquarifyQuads(m, 1.0, false)
	}

	if v0.Position != pinned {
		t.Errorf("pinned vertex moved to %v, want %v", v0.Position, pinned)
	}
}

// TestFuzzInvariantsAcrossOperators runs a bounded random sequence of
// mutation primitives interleaved with every operator in this package
// and asserts bmesh's structural invariants hold after each step. The
// seed is fixed so a failure reproduces.
func TestFuzzInvariantsAcrossOperators(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	var verts []*bmesh.Vertex

	randPos := func() vecmath.Vec3 {
		return vecmath.Vec3{X: rng.Float64()*4 - 2, Y: rng.Float64()*4 - 2, Z: rng.Float64()*4 - 2}
	}
	distinctVerts := func(n int) []*bmesh.Vertex {
		chosen := make([]*bmesh.Vertex, 0, n)
		seen := map[*bmesh.Vertex]bool{}
		for len(chosen) < n && len(seen) < len(verts) {
			v := verts[rng.Intn(len(verts))]
			if !seen[v] {
				seen[v] = true
				chosen = append(chosen, v)
			}
		}
		return chosen
	}

	// Subdivide*/TriangleFan multiply the face count several times over
	// on every call; cap how large the mesh is allowed to grow so a run
	// of bad luck on the random draws can't blow the test up to an
	// unbounded size.
	const maxFaces = 60

	for i := 0; i < 200; i++ {
		switch rng.Intn(9) {
		case 0:
			verts = append(verts, m.AddVertex(randPos()))

		case 1:
			if len(verts) >= 2 {
				a, b := verts[rng.Intn(len(verts))], verts[rng.Intn(len(verts))]
				m.AddEdge(a, b)
			}

		case 2:
			if chosen := distinctVerts(3 + rng.Intn(2)); len(chosen) >= 3 {
				m.AddFace(chosen)
			}

		case 3:
			if len(m.Edges()) > 0 {
				m.RemoveEdge(m.Edges()[rng.Intn(len(m.Edges()))])
			}

		case 4:
			if len(verts) > 0 {
				idx := rng.Intn(len(verts))
				m.RemoveVertex(verts[idx])
				verts = append(verts[:idx], verts[idx+1:]...)
			}

		case 5:
			if len(m.Faces()) < maxFaces {
				Subdivide(m)
				verts = m.Vertices()
			}

		case 6:
			if len(m.Faces()) < maxFaces {
				Subdivide3(m)
				verts = m.Vertices()
			}

		case 7:
			if faces := m.Faces(); len(faces) > 0 && len(faces) < maxFaces {
				SubdivideTriangleFanSingle(m, faces[rng.Intn(len(faces))])
				verts = m.Vertices()
			}

		case 8:
			if len(m.Edges()) > 0 {
				MergeFaces(m, m.Edges()[rng.Intn(len(m.Edges()))])
			}
			SquarifyQuads(m, 0.3, false)
		}

		if err := bmesh.Validate(m); err != nil {
			t.Fatalf("step %d: invariant violated: %v", i, err)
		}
	}
}
