package main

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() *orbitCamera {
	return newOrbitCamera(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1}, DefaultConfig())
}

func TestOrbitCameraStartsOnZAxis(t *testing.T) {
	c := testCamera()
	assert.Equal(t, mgl64.Vec3{}, c.center)
	assert.InDelta(t, math.Sqrt(3), c.radius, 1e-12)

	eye := c.eye()
	assert.InDelta(t, 0, eye.X(), 1e-12)
	assert.InDelta(t, 0, eye.Y(), 1e-12)
	assert.InDelta(t, 3*math.Sqrt(3), eye.Z(), 1e-12)
}

func TestOrbitCameraDegenerateBounds(t *testing.T) {
	c := newOrbitCamera(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{2, 2, 2}, DefaultConfig())
	assert.Equal(t, 1.0, c.radius)
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, c.center)
}

func TestOrbitCameraRotateClampsPitch(t *testing.T) {
	c := testCamera()
	c.rotate(0.5, 10)
	assert.Equal(t, 0.5, c.yaw)
	assert.Equal(t, maxPitch, c.pitch)

	c.rotate(0, -20)
	assert.Equal(t, -maxPitch, c.pitch)
}

func TestOrbitCameraZoom(t *testing.T) {
	c := testCamera()
	c.zoom(1)
	assert.InDelta(t, 2.7, c.distance, 1e-12)

	c.zoom(100)
	assert.Equal(t, minDistance, c.distance)

	c.zoom(-1000)
	assert.Equal(t, maxDistance, c.distance)
}

func TestViewportProject(t *testing.T) {
	c := testCamera()
	vp := c.viewport(640, 480)

	x, y, _, ok := vp.project(mgl64.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 320, x, 1e-3)
	assert.InDelta(t, 240, y, 1e-3)

	// Up on screen is towards smaller y, right towards larger x.
	x, y, _, ok = vp.project(mgl64.Vec3{0.5, 0.5, 0})
	require.True(t, ok)
	assert.Greater(t, x, float32(320))
	assert.Less(t, y, float32(240))

	_, _, near, ok := vp.project(mgl64.Vec3{0, 0, 1})
	require.True(t, ok)
	_, _, far, ok := vp.project(mgl64.Vec3{0, 0, -1})
	require.True(t, ok)
	assert.Less(t, near, far)

	_, _, _, ok = vp.project(mgl64.Vec3{0, 0, 10})
	assert.False(t, ok, "points behind the eye are not projected")
}
