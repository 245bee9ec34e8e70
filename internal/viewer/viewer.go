package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/daniel-amthauer/BMeshUnreal/internal/logger"
	"github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh"
	"github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"
)

// Run opens a window and displays mesh as a wireframe until the user quits.
// The mesh is re-drawn every frame from the current *bmesh.Mesh contents, so
// callers may keep mutating it (e.g. running an operator each keypress)
// between frames if they extend this loop.
func Run(cfg WindowConfig, mesh *bmesh.Mesh) error {
	win, err := NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Close()

	renderer, err := NewLineRenderer()
	if err != nil {
		return err
	}
	defer renderer.Close()

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.08, 0.08, 0.1, 1.0)

	cam := NewOrbitCamera(meshCentroid(mesh), meshRadius(mesh)*2.5)

	for {
		state := Poll(cam)
		if state.Quit {
			return nil
		}

		width, height := win.Size()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		renderer.Reset()
		bmesh.Draw(mesh, renderer.Line)
		renderer.Upload()

		aspect := float64(width) / float64(height)
		proj := vecmath.Perspective(0.9, aspect, 0.05, 500.0)
		mvp := proj.Mul(cam.View())
		renderer.Draw(mvp)

		win.SwapBuffers()
	}
}

func meshCentroid(mesh *bmesh.Mesh) vecmath.Vec3 {
	verts := mesh.Vertices()
	if len(verts) == 0 {
		return vecmath.Vec3{}
	}
	sum := vecmath.Vec3{}
	for _, v := range verts {
		sum = sum.Add(v.Position)
	}
	return sum.Scale(1.0 / float64(len(verts)))
}

func meshRadius(mesh *bmesh.Mesh) float64 {
	center := meshCentroid(mesh)
	radius := 1.0
	for _, v := range mesh.Vertices() {
		if d := v.Position.Distance(center); d > radius {
			radius = d
		}
	}
	logger.Debug("viewer camera framed mesh")
	return radius
}
