package hemesh

// Entities reference each other through indices into the mesh arenas.
// An index is never invalidated because the arenas never shrink.
type (
	VertexIndex int
	FaceIndex   int
	EdgeIndex   int
)

const (
	NoVertex = VertexIndex(-1)
	NoFace   = FaceIndex(-1)
	NoEdge   = EdgeIndex(-1)
)

func (v VertexIndex) Valid() bool { return v >= 0 }

func (f FaceIndex) Valid() bool { return f >= 0 }

func (e EdgeIndex) Valid() bool { return e >= 0 }
