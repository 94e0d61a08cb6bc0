package hemesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
)

// Float is the coordinate type a mesh is built over.
type Float interface {
	constraints.Float
}

// Vector3 is a plain 3 component value. It is copied freely and never
// shared by reference.
type Vector3[T Float] struct {
	X T
	Y T
	Z T
}

func NewVector3[T Float](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Vec3 widens the vector to float64 for use with mgl64.
func (v Vector3[T]) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vector3From narrows an mgl64 vector back to the coordinate type.
func Vector3From[T Float](v mgl64.Vec3) Vector3[T] {
	return Vector3[T]{X: T(v[0]), Y: T(v[1]), Z: T(v[2])}
}

// key returns a comparable form used to weld identical coordinates.
func (v Vector3[T]) key() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}
