package bmesh

import "fmt"

// Validate walks every owned entity and checks the structural invariants
// of §3: disk-cycle, face-cycle and radial-cycle consistency, and face
// loop-count agreement. It returns the first violation found, or nil if
// the mesh is internally consistent. Intended for tooling and tests, not
// the mutation hot path.
func Validate(m *Mesh) error {
	for _, e := range m.edges {
		if err := checkDisk(e, e.V1); err != nil {
			return err
		}
		if err := checkDisk(e, e.V2); err != nil {
			return err
		}
	}
	for _, l := range m.loops {
		if l.Next.Prev != l {
			return fmt.Errorf("face cycle broken at loop of vertex %d", l.Vert.ID)
		}
		if l.RadialNext.RadialPrev != l {
			return fmt.Errorf("radial cycle broken at loop of vertex %d", l.Vert.ID)
		}
		if l.Edge.V1 != l.Vert && l.Edge.V2 != l.Vert {
			return fmt.Errorf("loop vertex %d not on its own edge", l.Vert.ID)
		}
	}
	for _, f := range m.faces {
		n := 0
		start := f.FirstLoop
		cur := start
		for {
			n++
			cur = cur.Next
			if cur == start {
				break
			}
			if n > f.VertCount {
				return fmt.Errorf("face cycle exceeds VertCount %d", f.VertCount)
			}
		}
		if n != f.VertCount {
			return fmt.Errorf("face cycle length %d != VertCount %d", n, f.VertCount)
		}
	}
	return nil
}

func checkDisk(e *Edge, v *Vertex) error {
	if e.Next(v).Prev(v) != e {
		return fmt.Errorf("disk cycle broken: edge.Next(v).Prev(v) != edge at vertex %d", v.ID)
	}
	if e.Prev(v).Next(v) != e {
		return fmt.Errorf("disk cycle broken: edge.Prev(v).Next(v) != edge at vertex %d", v.ID)
	}
	return nil
}
