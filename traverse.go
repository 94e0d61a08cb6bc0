package hemesh

import "iter"

// WalkResult tells how a walk around a vertex ended.
type WalkResult int

const (
	// WalkClosed means the walk came back to the edge it started from.
	WalkClosed WalkResult = iota
	// WalkBoundary means a half-edge without a pair was reached, so the
	// vertex lies on the mesh boundary and the fan was only partly visited.
	WalkBoundary
	// WalkIsolated means the vertex has no outgoing half-edge.
	WalkIsolated
	// WalkStopped means the caller ended the walk early.
	WalkStopped
)

func (r WalkResult) String() string {
	switch r {
	case WalkClosed:
		return "closed"
	case WalkBoundary:
		return "boundary"
	case WalkIsolated:
		return "isolated"
	case WalkStopped:
		return "stopped"
	}
	return "unknown"
}

// VisitFace calls visit for each half-edge around f, starting at its
// boundary edge and following next until the start comes round again.
// It returns the number of half-edges visited, 3 for any face of a built
// mesh.
func (m *Mesh[T]) VisitFace(f FaceIndex, visit func(EdgeIndex)) int {
	return m.walkFace(f, func(e EdgeIndex) bool {
		visit(e)
		return true
	})
}

// FaceEdges yields the same half-edges as VisitFace, in the same order.
func (m *Mesh[T]) FaceEdges(f FaceIndex) iter.Seq[EdgeIndex] {
	return func(yield func(EdgeIndex) bool) {
		m.walkFace(f, yield)
	}
}

// VisitVertex calls visit for each half-edge leaving v, starting at its
// outgoing edge and stepping to pair then next. The walk stops when it
// returns to the start, or cleanly at the first half-edge with no pair.
func (m *Mesh[T]) VisitVertex(v VertexIndex, visit func(EdgeIndex)) WalkResult {
	return m.walkVertex(v, func(e EdgeIndex) bool {
		visit(e)
		return true
	})
}

// VertexEdges yields the same half-edges as VisitVertex, in the same order.
func (m *Mesh[T]) VertexEdges(v VertexIndex) iter.Seq[EdgeIndex] {
	return func(yield func(EdgeIndex) bool) {
		m.walkVertex(v, yield)
	}
}

// The step limit in both walks is never reached on a mesh made by Build;
// it only keeps a damaged arena from looping forever.

func (m *Mesh[T]) walkFace(f FaceIndex, yield func(EdgeIndex) bool) int {
	start, ok := m.faces[f].BoundaryEdge()
	if !ok {
		return 0
	}

	visited := 0
	for e := start; visited < len(m.edges); {
		visited++
		if !yield(e) {
			break
		}
		next, ok := m.edges[e].Next()
		if !ok || next == start {
			break
		}
		e = next
	}
	return visited
}

func (m *Mesh[T]) walkVertex(v VertexIndex, yield func(EdgeIndex) bool) WalkResult {
	start, ok := m.vertices[v].OutgoingEdge()
	if !ok {
		return WalkIsolated
	}
	return m.walkSpokes(start, yield)
}

// walkSpokes steps from start to the next outgoing half-edge of the same
// origin through pair then next.
func (m *Mesh[T]) walkSpokes(start EdgeIndex, yield func(EdgeIndex) bool) WalkResult {
	e := start
	for range len(m.edges) {
		if !yield(e) {
			return WalkStopped
		}
		pair, ok := m.edges[e].Pair()
		if !ok {
			return WalkBoundary
		}
		next, ok := m.edges[pair].Next()
		if !ok {
			return WalkBoundary
		}
		if next == start {
			return WalkClosed
		}
		e = next
	}
	return WalkBoundary
}
