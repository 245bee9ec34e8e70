package ops

import (
	"github.com/daniel-amthauer/BMeshUnreal/pkg/bmesh"
	"github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"
)

// RestPosAttr and WeightAttr are the vertex attribute names SquarifyQuads
// looks for to bias vertices toward a rest position. A vertex with only
// RestPos is pulled with weight 1; one with neither is free to relax;
// one with weight exactly 1.0 (and a float64 Weight) is hard-pinned to
// RestPos after each iteration.
const (
	RestPosAttr = "RestPos"
	WeightAttr  = "Weight"
)

// SquarifyQuads runs one Jacobi relaxation pass that nudges every quad
// face toward a square, non-quad faces are ignored. rate scales the
// per-iteration step (values around 0.1-1.0 are typical; 1.0 applies the
// full computed correction). If uniformLength, every quad is relaxed
// toward the mesh's average quad "radius" instead of its own scale,
// producing equal-sized squares.
func SquarifyQuads(mesh *bmesh.Mesh, rate float64, uniformLength bool) {
	verts := mesh.Vertices()
	update := make([]vecmath.Vec3, len(verts))
	weight := make([]float64, len(verts))

	for i, v := range verts {
		v.ID = i
		rest, hasRest := v.Attrs[RestPosAttr].(vecmath.Vec3)
		if !hasRest {
			continue
		}
		w := 1.0
		if wv, ok := numericAttr(v.Attrs[WeightAttr]); ok {
			w = wv
		}
		update[i] = rest.Sub(v.Position).Scale(w)
		weight[i] = w
	}

	quads := quadFaces(mesh)

	var avgRadius float64
	if uniformLength && len(quads) > 0 {
		var sum float64
		for _, f := range quads {
			_, frame := computeQuadFrame(f)
			sum += frame.avg.Length()
		}
		avgRadius = sum / float64(len(quads))
	}

	for _, f := range quads {
		corners, frame := computeQuadFrame(f)
		avg := frame.avg
		if uniformLength && avg.Length() > 1e-12 {
			avg = avg.Normalize().Scale(avgRadius)
		}
		lt := [4]vecmath.Vec3{
			avg,
			{X: -avg.Y, Y: avg.X, Z: avg.Z},
			{X: -avg.X, Y: -avg.Y, Z: avg.Z},
			{X: avg.Y, Y: -avg.X, Z: avg.Z},
		}
		if frame.swapped {
			lt[1], lt[3] = lt[3], lt[1]
		}
		for i, v := range corners {
			target := frame.basis.MulVec3Dir(lt[i])
			update[v.ID] = update[v.ID].Add(target.Sub(frame.r[i]))
			weight[v.ID]++
		}
	}

	for i, v := range verts {
		if weight[i] > 0 {
			v.Position = v.Position.Add(update[i].Scale(rate / weight[i]))
		}
	}

	for _, v := range verts {
		rest, hasRest := v.Attrs[RestPosAttr].(vecmath.Vec3)
		w, hasWeight := v.Attrs[WeightAttr].(float64)
		if hasRest && hasWeight && w == 1.0 {
			v.Position = rest
		}
	}
}

func numericAttr(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}

func quadFaces(mesh *bmesh.Mesh) []*bmesh.Face {
	var quads []*bmesh.Face
	for _, f := range mesh.Faces() {
		if f.VertCount == 4 {
			quads = append(quads, f)
		}
	}
	return quads
}

// quadFrame holds the per-quad local orthonormal frame and the
// intermediate vectors squarify computes from it. Splitting this out
// lets the uniform-length pass (which only needs frame.avg's length) and
// the update pass share one implementation.
type quadFrame struct {
	basis   vecmath.Mat4 // local-to-global rotation
	r       [4]vecmath.Vec3
	avg     vecmath.Vec3
	swapped bool
}

// computeQuadFrame builds the local frame for a quad face's four
// corners, in loop order, and the average "canonical" corner vector
// used to derive a squarer target shape. See the squarify design notes
// for the exact rotation formulas.
func computeQuadFrame(f *bmesh.Face) ([]*bmesh.Vertex, quadFrame) {
	corners := f.NeighborVertices()
	c := f.Center()

	var r [4]vecmath.Vec3
	for i, v := range corners {
		r[i] = v.Position.Sub(c)
	}

	basis := localAxis(r)
	toLocal := basis.Transpose()
	var l [4]vecmath.Vec3
	for i := range r {
		l[i] = toLocal.MulVec3Dir(r[i])
	}

	swapped := false
	if l[1].Normalize().Y < l[3].Normalize().Y {
		l[1], l[3] = l[3], l[1]
		swapped = true
	}

	rl := [4]vecmath.Vec3{
		l[0],
		{X: l[1].Y, Y: -l[1].X, Z: l[1].Z},
		{X: -l[2].X, Y: -l[2].Y, Z: l[2].Z},
		{X: -l[3].Y, Y: l[3].X, Z: l[3].Z},
	}
	avg := rl[0].Add(rl[1]).Add(rl[2]).Add(rl[3]).Scale(0.25)

	return corners, quadFrame{basis: basis, r: r, avg: avg, swapped: swapped}
}

// localAxis builds the per-quad orthonormal basis: Z is the mean of the
// four corner-to-corner cross products (the face's best-fit normal), X
// follows the first corner vector, Y completes the right-handed frame.
func localAxis(r [4]vecmath.Vec3) vecmath.Mat4 {
	z := r[0].Cross(r[1]).Normalize().
		Add(r[1].Cross(r[2]).Normalize()).
		Add(r[2].Cross(r[3]).Normalize()).
		Add(r[3].Cross(r[0]).Normalize()).
		Normalize()
	x := r[0].Normalize()
	y := z.Cross(x)
	return vecmath.FromColumns(x, y, z)
}
