package hemesh

import (
	"fmt"
	"math"
)

// Geometry is an indexed triangle soup: the flat arrays a model loader
// produces and Build consumes.
type Geometry[T Float] struct {
	// Positions holds x, y, z triples, one per vertex.
	Positions []T
	// Normals is optional. When set it must have the same length as
	// Positions.
	Normals []T
	// Indices holds three vertex numbers per triangle.
	Indices []uint32

	pointIndex map[[3]T]uint32
	// indexed counts the leading vertices already in pointIndex.
	indexed int
}

func NewGeometry[T Float]() *Geometry[T] {
	return &Geometry[T]{
		Positions:  make([]T, 0, 300),
		Indices:    make([]uint32, 0, 300),
		pointIndex: make(map[[3]T]uint32),
	}
}

func (g *Geometry[T]) NumVertices() int { return len(g.Positions) / 3 }

func (g *Geometry[T]) NumTriangles() int { return len(g.Indices) / 3 }

func (g *Geometry[T]) Position(i int) Vector3[T] {
	return Vector3[T]{X: g.Positions[3*i], Y: g.Positions[3*i+1], Z: g.Positions[3*i+2]}
}

func (g *Geometry[T]) Triangle(i int) [3]uint32 {
	return [3]uint32{g.Indices[3*i], g.Indices[3*i+1], g.Indices[3*i+2]}
}

// AddPoint returns the vertex number of p, appending it only if no vertex
// with exactly the same coordinates exists yet. Vertices appended to
// Positions directly are taken into account; among equal ones the lowest
// number wins.
func (g *Geometry[T]) AddPoint(p Vector3[T]) uint32 {
	if g.pointIndex == nil || g.indexed > g.NumVertices() {
		g.pointIndex = make(map[[3]T]uint32, g.NumVertices())
		g.indexed = 0
	}
	for ; g.indexed < g.NumVertices(); g.indexed++ {
		key := g.Position(g.indexed).key()
		if _, found := g.pointIndex[key]; !found {
			g.pointIndex[key] = uint32(g.indexed)
		}
	}

	key := p.key()
	if index, found := g.pointIndex[key]; found {
		return index
	}

	index := uint32(g.NumVertices())
	g.Positions = append(g.Positions, p.X, p.Y, p.Z)
	g.pointIndex[key] = index
	g.indexed++
	return index
}

// AddTriangle welds the three corners into the vertex list and adds the
// triangle a->b->c.
func (g *Geometry[T]) AddTriangle(a, b, c Vector3[T]) {
	g.AddFace(g.AddPoint(a), g.AddPoint(b), g.AddPoint(c))
}

// AddFace adds a polygon given by vertex numbers in winding order.
// Repeated consecutive corners are dropped, and what is left is split into
// a fan of triangles around the first corner. Polygons that collapse to
// fewer than three corners add nothing. It returns the number of triangles
// added.
func (g *Geometry[T]) AddFace(corners ...uint32) int {
	poly := make([]uint32, 0, len(corners))
	for _, c := range corners {
		if len(poly) > 0 && poly[len(poly)-1] == c {
			continue
		}
		poly = append(poly, c)
	}
	for len(poly) > 1 && poly[len(poly)-1] == poly[0] {
		poly = poly[:len(poly)-1]
	}
	if len(poly) < 3 {
		return 0
	}

	for i := 2; i < len(poly); i++ {
		g.Indices = append(g.Indices, poly[0], poly[i-1], poly[i])
	}
	return len(poly) - 2
}

// Validate checks the shape of the arrays: lengths in whole triples, a
// normal per vertex if normals are given, indices in range and no triangle
// using a vertex twice.
func (g *Geometry[T]) Validate() error {
	if len(g.Positions)%3 != 0 {
		return fmt.Errorf("%w: %d position coordinates is not a multiple of 3", ErrInvalidGeometry, len(g.Positions))
	}
	if len(g.Normals) != 0 && len(g.Normals) != len(g.Positions) {
		return fmt.Errorf("%w: %d normal coordinates for %d position coordinates", ErrInvalidGeometry, len(g.Normals), len(g.Positions))
	}
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrInvalidGeometry, len(g.Indices))
	}
	if g.NumVertices() > math.MaxInt32 {
		return fmt.Errorf("%w: %d vertices exceeds the index range", ErrInvalidGeometry, g.NumVertices())
	}

	numVertices := uint32(g.NumVertices())
	for t := range g.NumTriangles() {
		tri := g.Triangle(t)
		for _, i := range tri {
			if i >= numVertices {
				return fmt.Errorf("%w: triangle %d references vertex %d, only %d vertices", ErrInvalidGeometry, t, i, numVertices)
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return fmt.Errorf("%w: triangle %d uses a vertex twice %v", ErrInvalidGeometry, t, tri)
		}
	}
	return nil
}

// Build validates the geometry and converts it into a half-edge mesh.
// See the package level Build for the error contract.
func (g *Geometry[T]) Build() (*Mesh[T], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	b := newBuilder[T](g.NumVertices(), g.NumTriangles())
	for i := range g.NumVertices() {
		normal := placeholderNormal[T]()
		if len(g.Normals) != 0 {
			normal = Vector3[T]{X: g.Normals[3*i], Y: g.Normals[3*i+1], Z: g.Normals[3*i+2]}
		}
		b.addVertex(g.Position(i), normal)
	}

	for t := range g.NumTriangles() {
		tri := g.Triangle(t)
		if err := b.addTriangle(VertexIndex(tri[0]), VertexIndex(tri[1]), VertexIndex(tri[2])); err != nil {
			return nil, err
		}
	}
	return b.finish(), nil
}
