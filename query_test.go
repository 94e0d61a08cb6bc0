package hemesh

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneRing(t *testing.T) {
	testCases := []struct {
		name      string
		indices   []uint32
		vertex    VertexIndex
		ring      []EdgeIndex
		neighbors []VertexIndex
		boundary  bool
	}{
		{
			name:      "Interior vertex",
			indices:   closedFanIndices,
			vertex:    4,
			ring:      []EdgeIndex{2, 11, 8, 5},
			neighbors: []VertexIndex{0, 3, 2, 1},
		},
		{
			// The walk from 4->0 hits the boundary at once, the ring still
			// covers all three spokes.
			name:      "Boundary vertex of an open fan",
			indices:   openFanIndices,
			vertex:    4,
			ring:      []EdgeIndex{8, 5, 2},
			neighbors: []VertexIndex{2, 1, 0, 3},
			boundary:  true,
		},
		{
			name:      "Corner of the square",
			indices:   closedFanIndices,
			vertex:    1,
			ring:      []EdgeIndex{1, 3},
			neighbors: []VertexIndex{4, 2, 0},
			boundary:  true,
		},
		{
			// Two triangles touching only at vertex 0 form two open fans.
			name:      "Vertex shared by two fans",
			indices:   []uint32{0, 1, 2, 0, 3, 4},
			vertex:    0,
			ring:      []EdgeIndex{0},
			neighbors: []VertexIndex{1, 2, 3, 4},
			boundary:  true,
		},
		{
			name:    "Unused vertex",
			indices: []uint32{0, 1, 2},
			vertex:  4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustBuild(t, fanPositions, tc.indices)

			assert.Equal(t, tc.ring, m.OneRing(tc.vertex))
			assert.Equal(t, tc.neighbors, m.Neighbors(tc.vertex))
			assert.Equal(t, len(tc.neighbors), m.Valence(tc.vertex))
			assert.Equal(t, tc.boundary, m.IsBoundaryVertex(tc.vertex))
		})
	}
}

func TestClosedMeshValence(t *testing.T) {
	m := mustBuild(t, tetraPositions, tetraIndices)

	assert.True(t, m.IsClosed())
	assert.Empty(t, m.BoundaryEdges())
	for v := range m.NumVertices() {
		assert.Equal(t, 3, m.Valence(VertexIndex(v)))
		assert.False(t, m.IsBoundaryVertex(VertexIndex(v)))
	}
}

func TestBoundaryEdges(t *testing.T) {
	m := mustBuild(t, quadPositions, quadIndices)

	assert.False(t, m.IsClosed())
	assert.Equal(t, []EdgeIndex{1, 2, 4, 5}, m.BoundaryEdges())
}

func TestFindEdge(t *testing.T) {
	m := mustBuild(t, fanPositions, openFanIndices)

	testCases := []struct {
		name   string
		origin VertexIndex
		dest   VertexIndex
		edge   EdgeIndex
		found  bool
	}{
		{"Spoke out of the centre", 4, 2, 8, true},
		{"Boundary spoke into the centre", 3, 4, 7, true},
		{"Missing triangle", 4, 3, NoEdge, false},
		{"Not adjacent", 0, 2, NoEdge, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, found := m.FindEdge(tc.origin, tc.dest)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.edge, e)
		})
	}
}

func TestFindEdgeAcrossFans(t *testing.T) {
	m := mustBuild(t, fanPositions, []uint32{0, 1, 2, 0, 3, 4})

	testCases := []struct {
		name   string
		origin VertexIndex
		dest   VertexIndex
		edge   EdgeIndex
		found  bool
	}{
		{"First fan", 0, 1, 0, true},
		{"Second fan", 0, 3, 3, true},
		{"Into the shared vertex", 4, 0, 5, true},
		{"Reverse of a boundary edge", 3, 0, NoEdge, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, found := m.FindEdge(tc.origin, tc.dest)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.edge, e)
		})
	}
}

func TestFaceVerticesWithoutBoundaryEdge(t *testing.T) {
	m := mustBuild(t, singlePositions, singleIndices)
	m.faces[0].edge = NoEdge

	assert.Equal(t, [3]VertexIndex{NoVertex, NoVertex, NoVertex}, m.FaceVertices(0))
}

func TestFaceVerticesAndNormal(t *testing.T) {
	m := mustBuild(t, fanPositions, closedFanIndices)

	assert.Equal(t, [3]VertexIndex{1, 2, 4}, m.FaceVertices(1))
	for f := range m.NumFaces() {
		n := m.FaceNormal(FaceIndex(f))
		assert.InDelta(t, 0, n.X, 1e-9)
		assert.InDelta(t, 0, n.Y, 1e-9)
		assert.InDelta(t, 1, n.Z, 1e-9)
	}

	flat := mustBuild(t, []float64{0, 0, 0, 1, 0, 0, 2, 0, 0}, []uint32{0, 1, 2})
	assert.Equal(t, Vector3[float64]{}, flat.FaceNormal(0))
}

func TestBounds(t *testing.T) {
	m := mustBuild(t, fanPositions, openFanIndices)
	lo, hi := m.Bounds()
	assert.Equal(t, NewVector3(0.0, 0.0, 0.0), lo)
	assert.Equal(t, NewVector3(1.0, 1.0, 0.0), hi)

	empty := mustBuild[float32](t, nil, nil)
	lo32, hi32 := empty.Bounds()
	assert.Equal(t, Vector3[float32]{}, lo32)
	assert.Equal(t, Vector3[float32]{}, hi32)
}

func TestStats(t *testing.T) {
	m := mustBuild(t, fanPositions, openFanIndices)

	s := m.Stats()
	assert.Equal(t, Stats{Vertices: 5, Faces: 3, HalfEdges: 9, Paired: 4, Boundary: 5}, s)

	v := s.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())
	assert.Len(t, v.Group(), 6)

	unused := mustBuild(t, fanPositions, []uint32{0, 1, 2})
	assert.Equal(t, 2, unused.Stats().Isolated)
}
