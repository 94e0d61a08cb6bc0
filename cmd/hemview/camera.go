package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	minDistance = 1.1
	maxDistance = 50.0
	maxPitch    = math.Pi/2 - 0.01
)

// orbitCamera circles the centre of the model's bounding box.
type orbitCamera struct {
	center mgl64.Vec3
	radius float64

	yaw, pitch float64
	distance   float64
	fov        float64
	aspect     float64
}

func newOrbitCamera(lo, hi mgl64.Vec3, cfg Config) *orbitCamera {
	radius := hi.Sub(lo).Len() / 2
	if radius == 0 {
		radius = 1
	}
	return &orbitCamera{
		center:   lo.Add(hi).Mul(0.5),
		radius:   radius,
		distance: cfg.Distance,
		fov:      mgl64.DegToRad(cfg.FieldOfView),
		aspect:   float64(cfg.Width) / float64(cfg.Height),
	}
}

func (c *orbitCamera) rotate(dyaw, dpitch float64) {
	c.yaw += dyaw
	c.pitch = mgl64.Clamp(c.pitch+dpitch, -maxPitch, maxPitch)
}

// zoom moves the camera closer for positive steps.
func (c *orbitCamera) zoom(steps float64) {
	c.distance = mgl64.Clamp(c.distance*math.Pow(0.9, steps), minDistance, maxDistance)
}

func (c *orbitCamera) eye() mgl64.Vec3 {
	d := c.distance * c.radius
	offset := mgl64.Vec3{
		d * math.Cos(c.pitch) * math.Sin(c.yaw),
		d * math.Sin(c.pitch),
		d * math.Cos(c.pitch) * math.Cos(c.yaw),
	}
	return c.center.Add(offset)
}

func (c *orbitCamera) view() mgl64.Mat4 {
	return mgl64.LookAtV(c.eye(), c.center, mgl64.Vec3{0, 1, 0})
}

func (c *orbitCamera) projection() mgl64.Mat4 {
	d := c.distance * c.radius
	near := max(d-c.radius, d*0.01)
	far := d + c.radius
	return mgl64.Perspective(c.fov, c.aspect, near, far)
}

// viewport maps clip space onto a width x height screen.
type viewport struct {
	matrix        mgl64.Mat4
	width, height float64
}

func (c *orbitCamera) viewport(width, height int) viewport {
	return viewport{
		matrix: c.projection().Mul4(c.view()),
		width:  float64(width),
		height: float64(height),
	}
}

// project returns the screen position and depth of p. ok is false for
// points on or behind the eye plane.
func (v viewport) project(p mgl64.Vec3) (x, y float32, depth float64, ok bool) {
	clip := v.matrix.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = float32((ndc.X() + 1) / 2 * v.width)
	y = float32((1 - ndc.Y()) / 2 * v.height)
	return x, y, ndc.Z(), true
}
