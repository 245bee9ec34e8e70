package bmesh

import (
	"sync"

	"github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"
)

// LerpFunc blends a and b at parameter t (0 returns a, 1 returns b) for
// one attribute kind.
type LerpFunc func(a, b any, t float64) any

var registry = struct {
	mu    sync.RWMutex
	kinds map[AttributeKind]LerpFunc
}{kinds: make(map[AttributeKind]LerpFunc)}

func init() {
	RegisterDefaultKinds()
}

// RegisterKind installs fn as the interpolation strategy for kind,
// overwriting any previous registration. Safe to call concurrently with
// lookups (AttributeLerp), but registration itself should happen before
// meshes carrying that kind are shared across goroutines.
func RegisterKind(kind AttributeKind, fn LerpFunc) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.kinds[kind] = fn
}

func lookupKind(kind AttributeKind) (LerpFunc, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	fn, ok := registry.kinds[kind]
	return fn, ok
}

// Numeric is the set of scalar attribute types the registry can blend
// with straight linear interpolation.
type Numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// RegisterNumericKind installs a linear interpolation strategy for a
// scalar Go type T under kind.
func RegisterNumericKind[T Numeric](kind AttributeKind) {
	RegisterKind(kind, func(a, b any, t float64) any {
		af, bf := float64(a.(T)), float64(b.(T))
		return T(af + (bf-af)*t)
	})
}

// StructLerpFunc is a lerp strategy for a componentwise attribute kind
// (vectors, colors), expressed in terms of the concrete Go type rather
// than generically since each has its own Lerp method shape.
type StructLerpFunc = LerpFunc

// RegisterStructKind installs a componentwise interpolation strategy
// for a structured type under kind.
func RegisterStructKind(kind AttributeKind, lerp StructLerpFunc) {
	RegisterKind(kind, lerp)
}

// RegisterDefaultKinds installs the interpolation strategies for the
// kinds every mesh can use out of the box: integers, single- and
// double-precision floats, 2/3/4-vectors, and linear color. Called once
// automatically at package init; exported so a caller that has
// overridden a kind can restore the defaults.
func RegisterDefaultKinds() {
	RegisterNumericKind[int](KindInt)
	RegisterNumericKind[float32](KindFloat32)
	RegisterNumericKind[float64](KindFloat64)
	RegisterStructKind(KindVec2, func(a, b any, t float64) any {
		return a.(vecmath.Vec2).Lerp(b.(vecmath.Vec2), t)
	})
	RegisterStructKind(KindVec3, func(a, b any, t float64) any {
		return a.(vecmath.Vec3).Lerp(b.(vecmath.Vec3), t)
	})
	RegisterStructKind(KindVec4, func(a, b any, t float64) any {
		return a.(vecmath.Vec4).Lerp(b.(vecmath.Vec4), t)
	})
	RegisterStructKind(KindColor, func(a, b any, t float64) any {
		return a.(vecmath.Color).Lerp(b.(vecmath.Color), t)
	})
}

// AttributeLerp blends every schema-declared vertex attribute of a and b
// into dest at parameter t. Attributes missing from a or b, or declared
// with a kind that has no registered strategy, are left untouched on
// dest (silently skipped, per the registry's unknown-kind policy).
func AttributeLerp(mesh *Mesh, dest, a, b *Vertex, t float64) {
	for _, spec := range mesh.schema.VertexAttrs {
		av, aok := a.Attrs[spec.Name]
		bv, bok := b.Attrs[spec.Name]
		if !aok || !bok {
			continue
		}
		fn, ok := lookupKind(spec.Kind)
		if !ok {
			continue
		}
		if dest.Attrs == nil {
			dest.Attrs = make(map[string]any)
		}
		dest.Attrs[spec.Name] = fn(av, bv, t)
	}
}
