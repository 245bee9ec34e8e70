package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"
)

const floatsPerVertex = 7 // position (3) + color (4)

// LineRenderer draws a batch of colored line segments, refreshed once per
// frame from a bmesh.LineSink callback.
type LineRenderer struct {
	program  uint32
	vao, vbo uint32
	mvpLoc   int32
	vertices []float32
}

// NewLineRenderer compiles the line shader and allocates GPU buffers.
func NewLineRenderer() (*LineRenderer, error) {
	program, err := compileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, err
	}

	r := &LineRenderer{
		program: program,
		mvpLoc:  gl.GetUniformLocation(program, gl.Str("uMVP\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return r, nil
}

// Reset clears the batch. Call once before re-collecting a mesh's edges.
func (r *LineRenderer) Reset() {
	r.vertices = r.vertices[:0]
}

// Line appends one segment to the batch. Matches the bmesh.LineSink signature.
func (r *LineRenderer) Line(p0, p1 vecmath.Vec3, color vecmath.Color) {
	r.vertices = append(r.vertices,
		float32(p0.X), float32(p0.Y), float32(p0.Z),
		float32(color.R), float32(color.G), float32(color.B), float32(color.A),
		float32(p1.X), float32(p1.Y), float32(p1.Z),
		float32(color.R), float32(color.G), float32(color.B), float32(color.A),
	)
}

// Upload sends the current batch to the GPU.
func (r *LineRenderer) Upload() {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(r.vertices) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*4, gl.Ptr(r.vertices), gl.DYNAMIC_DRAW)
}

// Draw issues the GL_LINES draw call for the uploaded batch.
func (r *LineRenderer) Draw(mvp vecmath.Mat4) {
	if len(r.vertices) == 0 {
		return
	}
	gl.UseProgram(r.program)
	m := mvp.Float32()
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &m[0])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(r.vertices)/floatsPerVertex))
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (r *LineRenderer) Close() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}
