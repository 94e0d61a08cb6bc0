package hemesh

// Face is a triangle of the mesh, known only through one of the three
// half-edges on its boundary.
type Face struct {
	edge EdgeIndex
}

// BoundaryEdge returns the half-edge the face was created with.
func (f Face) BoundaryEdge() (EdgeIndex, bool) {
	return f.edge, f.edge.Valid()
}
