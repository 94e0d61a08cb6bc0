package hemesh

import (
	"log/slog"
)

// OneRing returns every half-edge leaving v in rotational order. Unlike
// VisitVertex it also covers the whole fan of a boundary vertex: it first
// turns backwards to the boundary and then walks forward from there.
// Only the fan containing the vertex's outgoing edge is returned; a vertex
// where two fans touch at a single point shows one of them.
func (m *Mesh[T]) OneRing(v VertexIndex) []EdgeIndex {
	start, ok := m.vertices[v].OutgoingEdge()
	if !ok {
		return nil
	}
	return m.fan(start)
}

// fan returns the outgoing half-edges of the fan holding start. A closed
// fan begins at start, an open one at its first spoke.
func (m *Mesh[T]) fan(start EdgeIndex) []EdgeIndex {
	var ring []EdgeIndex
	if m.walkSpokes(start, func(e EdgeIndex) bool {
		ring = append(ring, e)
		return true
	}) != WalkBoundary {
		return ring
	}

	first := start
	for range len(m.edges) {
		back, ok := m.edges[m.Prev(first)].Pair()
		if !ok {
			break
		}
		first = back
	}

	ring = ring[:0]
	for e := first; len(ring) < len(m.edges); {
		ring = append(ring, e)
		pair, ok := m.edges[e].Pair()
		if !ok {
			break
		}
		e = m.edges[pair].next
	}
	return ring
}

// fans returns the fans meeting at v, the one holding its outgoing edge
// first. Fans other than the first are found by scanning every half-edge.
func (m *Mesh[T]) fans(v VertexIndex) [][]EdgeIndex {
	first := m.OneRing(v)
	if first == nil {
		return nil
	}

	fans := [][]EdgeIndex{first}
	seen := make(map[EdgeIndex]bool, len(first))
	for _, e := range first {
		seen[e] = true
	}
	for i, he := range m.edges {
		e := EdgeIndex(i)
		if he.origin != v || seen[e] {
			continue
		}
		ring := m.fan(e)
		for _, r := range ring {
			seen[r] = true
		}
		fans = append(fans, ring)
	}
	return fans
}

// Neighbors returns the vertices sharing an edge with v, fan by fan, each
// fan in rotational order. It covers every fan meeting at v.
func (m *Mesh[T]) Neighbors(v VertexIndex) []VertexIndex {
	fans := m.fans(v)
	if fans == nil {
		return nil
	}

	var neighbors []VertexIndex
	seen := make(map[VertexIndex]bool)
	add := func(n VertexIndex) {
		if !seen[n] {
			seen[n] = true
			neighbors = append(neighbors, n)
		}
	}
	for _, ring := range fans {
		for _, e := range ring {
			add(m.Destination(e))
		}
		// The edge coming into the first spoke of an open fan has no pair,
		// so its origin is not the destination of any outgoing edge.
		if incoming := m.Prev(ring[0]); m.edges[incoming].IsBoundary() {
			add(m.edges[incoming].origin)
		}
	}
	return neighbors
}

func (m *Mesh[T]) Valence(v VertexIndex) int {
	return len(m.Neighbors(v))
}

// IsBoundaryVertex reports whether the walk around v reaches the boundary.
func (m *Mesh[T]) IsBoundaryVertex(v VertexIndex) bool {
	return m.walkVertex(v, func(EdgeIndex) bool { return true }) == WalkBoundary
}

// FindEdge returns the half-edge going from origin to destination. The fan
// of origin's outgoing edge is searched first, then every half-edge.
func (m *Mesh[T]) FindEdge(origin, destination VertexIndex) (EdgeIndex, bool) {
	for _, e := range m.OneRing(origin) {
		if m.Destination(e) == destination {
			return e, true
		}
	}
	for i, he := range m.edges {
		if he.origin == origin && m.Destination(EdgeIndex(i)) == destination {
			return EdgeIndex(i), true
		}
	}
	return NoEdge, false
}

// BoundaryEdges returns the half-edges that have no pair.
func (m *Mesh[T]) BoundaryEdges() []EdgeIndex {
	var boundary []EdgeIndex
	for i, e := range m.edges {
		if e.IsBoundary() {
			boundary = append(boundary, EdgeIndex(i))
		}
	}
	return boundary
}

// IsClosed reports whether every half-edge has a pair.
func (m *Mesh[T]) IsClosed() bool {
	for _, e := range m.edges {
		if e.IsBoundary() {
			return false
		}
	}
	return true
}

// FaceVertices returns the corners of f in winding order. Corners the face
// walk does not reach are NoVertex.
func (m *Mesh[T]) FaceVertices(f FaceIndex) [3]VertexIndex {
	corners := [3]VertexIndex{NoVertex, NoVertex, NoVertex}
	i := 0
	m.VisitFace(f, func(e EdgeIndex) {
		if i < len(corners) {
			corners[i] = m.edges[e].origin
		}
		i++
	})
	return corners
}

// FaceNormal is the unit normal of the plane of f, following its winding.
// A degenerate triangle has a zero normal.
func (m *Mesh[T]) FaceNormal(f FaceIndex) Vector3[T] {
	corners := m.FaceVertices(f)
	p1 := m.vertices[corners[0]].Position.Vec3()
	p2 := m.vertices[corners[1]].Position.Vec3()
	p3 := m.vertices[corners[2]].Position.Vec3()

	n := p2.Sub(p1).Cross(p3.Sub(p2))
	if n.Len() == 0 {
		return Vector3[T]{}
	}
	return Vector3From[T](n.Normalize())
}

// Bounds returns the corners of the axis aligned box around all vertices.
// Both are zero for a mesh without vertices.
func (m *Mesh[T]) Bounds() (lo, hi Vector3[T]) {
	if len(m.vertices) == 0 {
		return lo, hi
	}

	lo, hi = m.vertices[0].Position, m.vertices[0].Position
	for _, v := range m.vertices[1:] {
		p := v.Position
		lo = Vector3[T]{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = Vector3[T]{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return lo, hi
}

// Stats summarises the topology of a mesh.
type Stats struct {
	Vertices  int
	Faces     int
	HalfEdges int
	// Paired counts half-edges that have a pair, so it is always even.
	Paired   int
	Boundary int
	Isolated int
}

func (m *Mesh[T]) Stats() Stats {
	s := Stats{
		Vertices:  len(m.vertices),
		Faces:     len(m.faces),
		HalfEdges: len(m.edges),
	}
	for _, e := range m.edges {
		if e.IsBoundary() {
			s.Boundary++
		} else {
			s.Paired++
		}
	}
	for _, v := range m.vertices {
		if !v.edge.Valid() {
			s.Isolated++
		}
	}
	return s
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("vertices", s.Vertices),
		slog.Int("faces", s.Faces),
		slog.Int("halfEdges", s.HalfEdges),
		slog.Int("paired", s.Paired),
		slog.Int("boundary", s.Boundary),
		slog.Int("isolated", s.Isolated),
	)
}
