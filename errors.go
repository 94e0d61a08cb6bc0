package hemesh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is returned when the flat input arrays are
	// malformed. Nothing is allocated in that case.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrNonManifold is returned when two half-edges share the same
	// origin and destination.
	ErrNonManifold = errors.New("non-manifold geometry")
)

// NonManifoldError names the directed edge that was seen twice.
type NonManifoldError struct {
	Origin      VertexIndex
	Destination VertexIndex
	// Face is the triangle that tried to register the edge a second time.
	Face FaceIndex
	// Existing is the half-edge already registered for the direction.
	Existing EdgeIndex
}

func (e *NonManifoldError) Error() string {
	return fmt.Sprintf("%v: directed edge %d->%d of face %d already used by half-edge %d",
		ErrNonManifold, e.Origin, e.Destination, e.Face, e.Existing)
}

func (e *NonManifoldError) Unwrap() error {
	return ErrNonManifold
}
