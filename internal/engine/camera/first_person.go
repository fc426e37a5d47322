package camera

import "github.com/Faultbox/starforge/pkg/math"

// FirstPersonCamera looks from a position along facing and pitch.
type FirstPersonCamera struct {
	lens

	position math.Vec3
	Facing   float32
	Pitch    float32
}

// NewFirstPersonCamera creates a first-person camera.
func NewFirstPersonCamera(fov, aspect float32) *FirstPersonCamera {
	return &FirstPersonCamera{lens: newLens(fov, aspect)}
}

func (c *FirstPersonCamera) Update(dt float32) {}

func (c *FirstPersonCamera) Position() math.Vec3 { return c.position }

// SetPosition moves the camera eye.
func (c *FirstPersonCamera) SetPosition(p math.Vec3) { c.position = p }

// View returns the view matrix for this camera.
func (c *FirstPersonCamera) View() math.Mat4 {
	dir := lookDirection(c.Facing, c.Pitch)
	return math.LookAt(c.position, c.position.Add(dir), math.Up)
}
