package bmesh

// Loop is a single face corner: it pairs one vertex with one edge of the
// face it belongs to. Next/Prev thread the face cycle (the loops of one
// face, in order); RadialNext/RadialPrev thread the radial cycle (every
// loop, across all faces, that shares Edge).
type Loop struct {
	Vert *Vertex
	Edge *Edge
	Face *Face

	Next, Prev             *Loop
	RadialNext, RadialPrev *Loop
}
