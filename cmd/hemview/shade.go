package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// The minimum brightness for any face.
	ambientLight = 0.65
	diffuseLight = 1.0 - ambientLight
	// Colour levels removed at zero brightness, and the darkest level left.
	maxDarken  = 240
	minChannel = 7
)

// vertexColor is a colour scaled to the 0-1 range ebiten vertices use.
type vertexColor struct {
	r, g, b, a float32
}

// shade darkens base by how far normal turns away from toEye, a headlight
// with an ambient floor. Both vectors must be unit length.
func shade(base color.RGBA, normal, toEye mgl64.Vec3) vertexColor {
	diffuse := mgl64.Clamp(normal.Dot(toEye), 0, 1)
	darken := (1 - ambientLight - diffuse*diffuseLight) * maxDarken

	channel := func(level uint8) float32 {
		return float32(max(float64(level)-darken, minChannel) / 255)
	}
	return vertexColor{
		r: channel(base.R),
		g: channel(base.G),
		b: channel(base.B),
		a: float32(base.A) / 255,
	}
}
