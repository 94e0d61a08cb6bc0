package hemesh

import "log/slog"

// Mesh is a triangle mesh in half-edge form. It owns every vertex, face
// and half-edge; all cross references are indices into these three slices.
// A Mesh is only produced by Build and is read-only afterwards, so it may
// be shared between goroutines without locking.
type Mesh[T Float] struct {
	vertices []Vertex[T]
	faces    []Face
	edges    []HalfEdge
}

// Build converts a flat triangle soup into a half-edge mesh. positions holds
// consecutive x, y, z triples and indices holds consecutive triangle vertex
// numbers. Every vertex gets the placeholder normal (1, 0, 0).
//
// Malformed arrays fail with ErrInvalidGeometry before anything is
// allocated. A directed edge used by two triangles fails with a
// *NonManifoldError. On error the returned mesh is always nil.
func Build[T Float](positions []T, indices []uint32) (*Mesh[T], error) {
	g := Geometry[T]{Positions: positions, Indices: indices}
	return g.Build()
}

func placeholderNormal[T Float]() Vector3[T] {
	return Vector3[T]{X: 1}
}

// builder runs the two passes: triangles and their directed edges first,
// pairs once every triangle exists.
type builder[T Float] struct {
	mesh  *Mesh[T]
	index *edgeIndex
}

func newBuilder[T Float](numVertices, numTriangles int) *builder[T] {
	return &builder[T]{
		mesh: &Mesh[T]{
			vertices: make([]Vertex[T], 0, numVertices),
			faces:    make([]Face, 0, numTriangles),
			edges:    make([]HalfEdge, 0, 3*numTriangles),
		},
		index: newEdgeIndex(3 * numTriangles),
	}
}

func (b *builder[T]) addVertex(position, normal Vector3[T]) {
	b.mesh.vertices = append(b.mesh.vertices, newVertex(position, normal))
}

// addHalfEdge appends a half-edge leaving origin. The first half-edge
// leaving a vertex becomes its representative outgoing edge and is never
// replaced. Callers must not depend on which one that is.
func (b *builder[T]) addHalfEdge(origin VertexIndex) EdgeIndex {
	e := EdgeIndex(len(b.mesh.edges))
	b.mesh.edges = append(b.mesh.edges, newHalfEdge(origin))
	if v := &b.mesh.vertices[origin]; !v.edge.Valid() {
		v.edge = e
	}
	return e
}

// addTriangle creates the 3-cycle i0->i1->i2->i0 and its face, and registers
// the three directed edges.
func (b *builder[T]) addTriangle(i0, i1, i2 VertexIndex) error {
	m := b.mesh
	f := FaceIndex(len(m.faces))

	e01 := b.addHalfEdge(i0)
	e12 := b.addHalfEdge(i1)
	e20 := b.addHalfEdge(i2)

	m.edges[e01].next, m.edges[e12].next, m.edges[e20].next = e12, e20, e01
	m.edges[e01].face, m.edges[e12].face, m.edges[e20].face = f, f, f
	m.faces = append(m.faces, Face{edge: e01})

	for _, d := range [...]struct {
		origin, destination VertexIndex
		edge                EdgeIndex
	}{
		{i0, i1, e01},
		{i1, i2, e12},
		{i2, i0, e20},
	} {
		if err := b.index.insert(d.origin, d.destination, d.edge); err != nil {
			err.Face = f
			return err
		}
	}
	return nil
}

// finish resolves pairs and hands the mesh over. The builder must not be
// used afterwards.
func (b *builder[T]) finish() *Mesh[T] {
	m := b.mesh
	linked := b.index.resolvePairs(m.edges)
	slog.Debug("built half-edge mesh",
		"vertices", len(m.vertices),
		"faces", len(m.faces),
		"halfEdges", len(m.edges),
		"directedEdges", b.index.len(),
		"pairs", linked,
	)
	b.mesh, b.index = nil, nil
	return m
}

func (m *Mesh[T]) NumVertices() int { return len(m.vertices) }

func (m *Mesh[T]) NumFaces() int { return len(m.faces) }

func (m *Mesh[T]) NumHalfEdges() int { return len(m.edges) }

// Vertex returns a copy of the vertex record. Like every accessor taking an
// index it panics if the index is out of range.
func (m *Mesh[T]) Vertex(v VertexIndex) Vertex[T] {
	return m.vertices[v]
}

func (m *Mesh[T]) Position(v VertexIndex) Vector3[T] {
	return m.vertices[v].Position
}

func (m *Mesh[T]) Normal(v VertexIndex) Vector3[T] {
	return m.vertices[v].Normal
}

func (m *Mesh[T]) Face(f FaceIndex) Face {
	return m.faces[f]
}

func (m *Mesh[T]) HalfEdge(e EdgeIndex) HalfEdge {
	return m.edges[e]
}

// Destination is the origin of the next half-edge around the face.
func (m *Mesh[T]) Destination(e EdgeIndex) VertexIndex {
	return m.edges[m.edges[e].next].origin
}

// Prev returns the half-edge ending where e starts. Faces are triangles, so
// that is next applied twice.
func (m *Mesh[T]) Prev(e EdgeIndex) EdgeIndex {
	return m.edges[m.edges[e].next].next
}
