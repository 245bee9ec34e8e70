// Package demo builds small named meshes shared by bmeshtool and bmeshview
// so both tools exercise the library against the same fixtures.
package demo

import (
	"fmt"
	"math"

	"github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh"
	"github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"
)

// Names lists the built-in shapes accepted by the demo/subdivide/squarify
// subcommands and the viewer's -shape flag.
var Names = []string{"triangle", "quad", "two-tri", "hexagon", "grid"}

// Build constructs the named shape on a fresh mesh with the default schema.
// Returns an error for an unrecognized name.
func Build(name string) (*bmesh.Mesh, error) {
	m := bmesh.NewMesh(bmesh.DefaultMeshSchema())
	switch name {
	case "triangle":
		buildTriangle(m)
	case "quad":
		buildQuad(m)
	case "two-tri":
		buildTwoTriangles(m)
	case "hexagon":
		buildHexagon(m)
	case "grid":
		buildGrid(m, 4)
	default:
		return nil, fmt.Errorf("unknown shape %q (want one of %v)", name, Names)
	}
	return m, nil
}

func buildTriangle(m *bmesh.Mesh) {
	v0 := m.AddVertex(vecmath.Vec3{X: -0.5, Z: -math.Sqrt(3) / 6})
	v1 := m.AddVertex(vecmath.Vec3{X: 0.5, Z: -math.Sqrt(3) / 6})
	v2 := m.AddVertex(vecmath.Vec3{Z: math.Sqrt(3) / 3})
	m.AddFace([]*bmesh.Vertex{v0, v1, v2})
}

func buildQuad(m *bmesh.Mesh) {
	v0 := m.AddVertex(vecmath.Vec3{X: -1, Z: -1})
	v1 := m.AddVertex(vecmath.Vec3{X: 1, Z: -1})
	v2 := m.AddVertex(vecmath.Vec3{X: 1, Z: 1})
	v3 := m.AddVertex(vecmath.Vec3{X: -1, Z: 1})
	m.AddFace([]*bmesh.Vertex{v0, v1, v2, v3})
}

func buildTwoTriangles(m *bmesh.Mesh) {
	v0 := m.AddVertex(vecmath.Vec3{X: -1, Z: -1})
	v1 := m.AddVertex(vecmath.Vec3{X: 1, Z: -1})
	v2 := m.AddVertex(vecmath.Vec3{X: 1, Z: 1})
	v3 := m.AddVertex(vecmath.Vec3{X: -1, Z: 1})
	m.AddFace([]*bmesh.Vertex{v0, v1, v2})
	m.AddFace([]*bmesh.Vertex{v2, v1, v3})
}

func buildHexagon(m *bmesh.Mesh) {
	verts := make([]*bmesh.Vertex, 6)
	for i := range verts {
		angle := float64(i) * math.Pi / 3
		verts[i] = m.AddVertex(vecmath.Vec3{X: math.Cos(angle), Z: math.Sin(angle)})
	}
	m.AddFace(verts)
}

// buildGrid builds an n x n unit-quad grid, useful as a squarify fixture.
func buildGrid(m *bmesh.Mesh, n int) {
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
}
