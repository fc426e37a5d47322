package camera

import "github.com/Faultbox/starforge/pkg/math"

// StaticCamera is bound to a placed camera object by its camera id.
type StaticCamera struct {
	lens

	cameraID int
	position math.Vec3
	facing   float32
	pitch    float32
}

// NewStaticCamera creates an unbound static camera.
func NewStaticCamera(aspect float32) *StaticCamera {
	return &StaticCamera{lens: newLens(DefaultFOV, aspect), cameraID: -1}
}

// Bind places the camera at a camera object's pose.
func (c *StaticCamera) Bind(cameraID int, position math.Vec3, facing, pitch, fov float32) {
	c.cameraID = cameraID
	c.position = position
	c.facing = facing
	c.pitch = pitch
	c.SetFieldOfView(fov)
}

// CameraID returns the bound camera id, or -1.
func (c *StaticCamera) CameraID() int { return c.cameraID }

func (c *StaticCamera) Update(dt float32) {}

func (c *StaticCamera) Position() math.Vec3 { return c.position }

func (c *StaticCamera) View() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(lookDirection(c.facing, c.pitch)), math.Up)
}
