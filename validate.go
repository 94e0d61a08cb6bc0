package hemesh

import (
	"errors"
	"fmt"
)

// ErrCorruptMesh is returned by Mesh.Validate. A mesh made by Build never
// fails validation.
var ErrCorruptMesh = errors.New("corrupt half-edge mesh")

// Validate checks the cross references of the whole mesh: every face is a
// closed 3-cycle whose half-edges point back at it, pairs are symmetric and
// run in opposite directions, no directed edge occurs twice, and every
// vertex's outgoing edge leaves that vertex.
func (m *Mesh[T]) Validate() error {
	for i, e := range m.edges {
		if int(e.origin) < 0 || int(e.origin) >= len(m.vertices) {
			return fmt.Errorf("%w: half-edge %d has origin %d", ErrCorruptMesh, i, e.origin)
		}
		if int(e.next) < 0 || int(e.next) >= len(m.edges) {
			return fmt.Errorf("%w: half-edge %d has next %d", ErrCorruptMesh, i, e.next)
		}
		if int(e.face) < 0 || int(e.face) >= len(m.faces) {
			return fmt.Errorf("%w: half-edge %d has face %d", ErrCorruptMesh, i, e.face)
		}
	}

	for f, face := range m.faces {
		start, ok := face.BoundaryEdge()
		if !ok || int(start) >= len(m.edges) {
			return fmt.Errorf("%w: face %d has no boundary edge", ErrCorruptMesh, f)
		}
		e := start
		for step := range 3 {
			if m.edges[e].face != FaceIndex(f) {
				return fmt.Errorf("%w: half-edge %d of face %d belongs to face %d", ErrCorruptMesh, e, f, m.edges[e].face)
			}
			e = m.edges[e].next
			if (e == start) != (step == 2) {
				return fmt.Errorf("%w: face %d is not a 3-cycle", ErrCorruptMesh, f)
			}
		}
	}

	seen := make(map[directedEdge]EdgeIndex, len(m.edges))
	for i, e := range m.edges {
		key := directedEdge{e.origin, m.Destination(EdgeIndex(i))}
		if other, found := seen[key]; found {
			return fmt.Errorf("%w: half-edges %d and %d both run %d->%d", ErrCorruptMesh, other, i, key[0], key[1])
		}
		seen[key] = EdgeIndex(i)

		pair, ok := e.Pair()
		if !ok {
			continue
		}
		if int(pair) >= len(m.edges) || pair == EdgeIndex(i) {
			return fmt.Errorf("%w: half-edge %d has pair %d", ErrCorruptMesh, i, pair)
		}
		if m.edges[pair].pair != EdgeIndex(i) {
			return fmt.Errorf("%w: half-edge %d pairs with %d but not the reverse", ErrCorruptMesh, i, pair)
		}
		if m.edges[pair].origin != key[1] {
			return fmt.Errorf("%w: pair %d of half-edge %d does not start at %d", ErrCorruptMesh, pair, i, key[1])
		}
	}

	for v, vertex := range m.vertices {
		e, ok := vertex.OutgoingEdge()
		if !ok {
			continue
		}
		if int(e) >= len(m.edges) || m.edges[e].origin != VertexIndex(v) {
			return fmt.Errorf("%w: outgoing edge %d of vertex %d does not leave it", ErrCorruptMesh, e, v)
		}
	}
	return nil
}
