package bmesh

import "github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"

// LineSink receives one debug line segment at a time. Draw is the only
// rendering coupling the core has; nothing else in this package calls
// into it, and a caller that never invokes Draw pays nothing for it.
type LineSink func(p0, p1 vecmath.Vec3, color vecmath.Color)

const arrowScale = 0.1
const faceArrowScale = 0.2

// Draw emits, into sink: one yellow segment per edge; two short red
// arrows per loop tracing its edge and the turn into the next loop's
// edge; and one green arrow per face from its center toward its first
// two vertices. Purely advisory — a visualization aid for inspecting
// topology, not a rendering pipeline.
func Draw(mesh *Mesh, sink LineSink) {
	if sink == nil {
		return
	}
	for _, e := range mesh.edges {
		sink(e.V1.Position, e.V2.Position, vecmath.Yellow)
	}
	for _, l := range mesh.loops {
		drawLoopArrows(l, sink)
	}
	for _, f := range mesh.faces {
		drawFaceArrow(f, sink)
	}
}

func drawLoopArrows(l *Loop, sink LineSink) {
	v0 := l.Vert
	other1 := l.Edge.OtherVertex(v0)
	p1 := v0.Position.Lerp(other1.Position, arrowScale)
	sink(v0.Position, p1, vecmath.Red)

	nextEdge := l.Next.Edge
	var other2 *Vertex
	switch {
	case nextEdge.ContainsVertex(other1):
		other2 = nextEdge.OtherVertex(other1)
	case nextEdge.ContainsVertex(v0):
		other2 = nextEdge.OtherVertex(v0)
	default:
		other2 = l.Next.Vert
	}
	p2 := p1.Add(other2.Position.Sub(p1).Scale(arrowScale))
	sink(p1, p2, vecmath.Red)
}

func drawFaceArrow(f *Face, sink LineSink) {
	if f.FirstLoop == nil {
		return
	}
	c := f.Center()
	first := f.FirstLoop
	sink(c, first.Vert.Position, vecmath.Green)
	p := c.Add(first.Next.Vert.Position.Sub(c).Scale(faceArrowScale))
	sink(c, p, vecmath.Green)
}
