package hemesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPointWelds(t *testing.T) {
	g := NewGeometry[float64]()

	a := g.AddPoint(NewVector3(0.0, 0.0, 0.0))
	b := g.AddPoint(NewVector3(1.0, 0.0, 0.0))
	again := g.AddPoint(NewVector3(0.0, 0.0, 0.0))

	assert.Equal(t, uint32(0), a)
	assert.Equal(t, uint32(1), b)
	assert.Equal(t, a, again)
	assert.Equal(t, 2, g.NumVertices())
}

func TestAddPointSeedsFromExistingPositions(t *testing.T) {
	g := &Geometry[float32]{Positions: []float32{1, 2, 3, 4, 5, 6}}

	assert.Equal(t, uint32(1), g.AddPoint(NewVector3[float32](4, 5, 6)))
	assert.Equal(t, uint32(2), g.AddPoint(NewVector3[float32](7, 8, 9)))
	assert.Equal(t, NewVector3[float32](7, 8, 9), g.Position(2))
}

func TestAddPointSeesDirectAppends(t *testing.T) {
	g := NewGeometry[float64]()
	assert.Equal(t, uint32(0), g.AddPoint(NewVector3(0.0, 0.0, 0.0)))

	g.Positions = append(g.Positions, 1, 0, 0, 1, 0, 0)
	assert.Equal(t, uint32(1), g.AddPoint(NewVector3(1.0, 0.0, 0.0)), "the lowest of equal vertices wins")
	assert.Equal(t, uint32(0), g.AddPoint(NewVector3(0.0, 0.0, 0.0)))

	g.Positions = g.Positions[:3]
	assert.Equal(t, uint32(1), g.AddPoint(NewVector3(1.0, 0.0, 0.0)), "truncated vertices are forgotten")
	assert.Equal(t, 2, g.NumVertices())
}

func TestAddFace(t *testing.T) {
	testCases := []struct {
		name      string
		corners   []uint32
		triangles int
		indices   []uint32
	}{
		{"Triangle", []uint32{0, 1, 2}, 1, []uint32{0, 1, 2}},
		{"Quad", []uint32{0, 1, 2, 3}, 2, []uint32{0, 1, 2, 0, 2, 3}},
		{"Pentagon", []uint32{0, 1, 2, 3, 4}, 3, []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}},
		{"Quad with repeated last corner", []uint32{0, 1, 2, 2}, 1, []uint32{0, 1, 2}},
		{"Closing corner repeated", []uint32{0, 1, 2, 0}, 1, []uint32{0, 1, 2}},
		{"Collapsed to an edge", []uint32{0, 1, 1, 0}, 0, nil},
		{"Too few corners", []uint32{0, 1}, 0, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := &Geometry[float64]{}
			assert.Equal(t, tc.triangles, g.AddFace(tc.corners...))
			assert.Equal(t, tc.indices, g.Indices)
		})
	}
}

func TestAddTriangleBuildsSharedVertices(t *testing.T) {
	g := NewGeometry[float64]()
	g.AddTriangle(NewVector3(0.0, 0.0, 0.0), NewVector3(1.0, 0.0, 0.0), NewVector3(0.0, 1.0, 0.0))
	g.AddTriangle(NewVector3(1.0, 0.0, 0.0), NewVector3(0.0, 0.0, 0.0), NewVector3(1.0, -1.0, 0.0))

	require.Equal(t, 4, g.NumVertices())
	assert.Equal(t, [3]uint32{1, 0, 3}, g.Triangle(1))

	m, err := g.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Stats().Paired)
}

func TestGeometryValidate(t *testing.T) {
	g := NewGeometry[float64]()
	g.AddTriangle(NewVector3(0.0, 0.0, 0.0), NewVector3(1.0, 0.0, 0.0), NewVector3(0.0, 1.0, 0.0))
	assert.NoError(t, g.Validate())

	g.Indices = append(g.Indices, 0, 1, 7)
	err := g.Validate()
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	assert.Contains(t, err.Error(), "triangle 1")
}
