package hemesh

// Vertex holds a position, a normal and one of the half-edges leaving it.
type Vertex[T Float] struct {
	Position Vector3[T]
	Normal   Vector3[T]

	// edge is any one of the outgoing half-edges. Which one is decided by
	// the builder (first registered wins) and is not canonical.
	edge EdgeIndex
}

func newVertex[T Float](position, normal Vector3[T]) Vertex[T] {
	return Vertex[T]{
		Position: position,
		Normal:   normal,
		edge:     NoEdge,
	}
}

// OutgoingEdge returns a half-edge whose origin is this vertex. ok is false
// for an isolated vertex that no triangle references.
func (v Vertex[T]) OutgoingEdge() (EdgeIndex, bool) {
	return v.edge, v.edge.Valid()
}
