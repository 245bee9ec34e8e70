package viewer

import (
	"math"

	"github.com/daniel-amthauer/BMeshUnreal/pkg/vecmath"
)

// OrbitCamera is a spherical camera that orbits a fixed target, driven by
// mouse drag (yaw/pitch) and scroll (zoom).
type OrbitCamera struct {
	Target   vecmath.Vec3
	Distance float64
	Yaw      float64 // radians, around Y
	Pitch    float64 // radians, clamped away from the poles
}

// NewOrbitCamera returns a camera looking at target from a reasonable
// default distance and angle.
func NewOrbitCamera(target vecmath.Vec3, distance float64) *OrbitCamera {
	return &OrbitCamera{
		Target:   target,
		Distance: distance,
		Yaw:      math.Pi / 4,
		Pitch:    math.Pi / 6,
	}
}

const pitchLimit = math.Pi/2 - 0.01

// Rotate applies a mouse-drag delta, in pixels, to yaw and pitch.
func (c *OrbitCamera) Rotate(dx, dy float64) {
	const sensitivity = 0.005
	c.Yaw += dx * sensitivity
	c.Pitch -= dy * sensitivity
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
}

// Zoom scales the orbit distance by a scroll delta.
func (c *OrbitCamera) Zoom(delta float64) {
	c.Distance *= math.Pow(1.1, -delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
}

// Eye returns the camera's world-space position.
func (c *OrbitCamera) Eye() vecmath.Vec3 {
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)
	return c.Target.Add(vecmath.Vec3{X: x, Y: y, Z: z})
}

// View returns the camera's view matrix.
func (c *OrbitCamera) View() vecmath.Mat4 {
	return vecmath.LookAt(c.Eye(), c.Target, vecmath.Vec3{Y: 1})
}
