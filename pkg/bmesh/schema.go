package bmesh

// AttributeKind tags the type of a declared vertex attribute so the
// interpolation registry knows how to blend two values of it. Kinds are
// enumerated at schema-definition time rather than discovered through
// reflection.
type AttributeKind int

const (
	KindInt AttributeKind = iota
	KindFloat32
	KindFloat64
	KindVec2
	KindVec3
	KindVec4
	KindColor
)

func (k AttributeKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindColor:
		return "color"
	default:
		return "unknown"
	}
}

// AttributeSpec names one declared attribute and its kind.
type AttributeSpec struct {
	Name string
	Kind AttributeKind
}

// MeshSchema declares the extra, non-intrinsic attributes carried by
// each entity kind. Only vertex attributes participate in AttributeLerp
// (matching the operators, which only ever interpolate vertex data).
type MeshSchema struct {
	VertexAttrs []AttributeSpec
}

// DefaultMeshSchema returns a schema with no extra attributes: just the
// base Position/Edge/ID fields every vertex already has.
func DefaultMeshSchema() MeshSchema {
	return MeshSchema{}
}

// NewSchemaDescriptor builds a schema declaring the given vertex
// attributes, in order. Order determines the iteration order
// AttributeLerp uses, which matters only for logging/debugging.
func NewSchemaDescriptor(vertexAttrs ...AttributeSpec) MeshSchema {
	return MeshSchema{VertexAttrs: vertexAttrs}
}

// AttrNamed returns the spec for name, or false if the schema doesn't
// declare it.
func (s MeshSchema) AttrNamed(name string) (AttributeSpec, bool) {
	for _, spec := range s.VertexAttrs {
		if spec.Name == name {
			return spec, true
		}
	}
	return AttributeSpec{}, false
}
