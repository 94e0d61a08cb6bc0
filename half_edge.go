package hemesh

// HalfEdge is one directed side of a triangle. The destination is not
// stored; it is the origin of next.
//
// http://www.flipcode.com/archives/The_Half-Edge_Data_Structure.shtml
type HalfEdge struct {
	origin VertexIndex
	pair   EdgeIndex
	face   FaceIndex
	next   EdgeIndex
}

func newHalfEdge(origin VertexIndex) HalfEdge {
	return HalfEdge{
		origin: origin,
		pair:   NoEdge,
		face:   NoFace,
		next:   NoEdge,
	}
}

func (e HalfEdge) Origin() VertexIndex {
	return e.origin
}

// Pair returns the oppositely directed half-edge of the neighbouring
// triangle. ok is false on a boundary edge.
func (e HalfEdge) Pair() (EdgeIndex, bool) {
	return e.pair, e.pair.Valid()
}

func (e HalfEdge) Face() (FaceIndex, bool) {
	return e.face, e.face.Valid()
}

func (e HalfEdge) Next() (EdgeIndex, bool) {
	return e.next, e.next.Valid()
}

// IsBoundary reports whether no triangle lies on the other side of the edge.
func (e HalfEdge) IsBoundary() bool {
	return !e.pair.Valid()
}
