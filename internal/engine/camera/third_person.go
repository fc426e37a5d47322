package camera

import "github.com/Faultbox/starforge/pkg/math"

// Style holds orbit parameters of the third-person camera.
type Style struct {
	Distance  float32
	Pitch     float32 // Radians above the horizon
	Height    float32 // Look-at height above the target
	ViewAngle float32 // Field of view, degrees
}

// Built-in styles for exploration and combat.
var (
	DefaultStyle = Style{Distance: 3.2, Pitch: math.Radians(20), Height: 1.8, ViewAngle: 55}
	CombatStyle  = Style{Distance: 4.5, Pitch: math.Radians(30), Height: 2.0, ViewAngle: 60}
)

// ThirdPersonCamera follows a target from behind and stops at obstacles.
type ThirdPersonCamera struct {
	lens

	style    Style
	target   math.Vec3
	Facing   float32 // Horizontal rotation around target (radians)
	Distance float32

	MinDistance float32
	MaxDistance float32

	ZoomSensitivity float32

	position     math.Vec3
	findObstacle FindObstacleFunc
}

// NewThirdPersonCamera creates a third-person camera with the default style.
func NewThirdPersonCamera(aspect float32) *ThirdPersonCamera {
	c := &ThirdPersonCamera{
		lens:            newLens(DefaultStyle.ViewAngle, aspect),
		MinDistance:     1.0,
		MaxDistance:     10.0,
		ZoomSensitivity: 0.1,
	}
	c.SetStyle(DefaultStyle)
	return c
}

// SetStyle applies orbit parameters and resets the distance.
func (c *ThirdPersonCamera) SetStyle(s Style) {
	c.style = s
	c.Distance = s.Distance
	c.SetFieldOfView(s.ViewAngle)
	c.recompute()
}

// Style returns the current orbit parameters.
func (c *ThirdPersonCamera) Style() Style { return c.style }

// SetFindObstacle installs the obstacle query.
func (c *ThirdPersonCamera) SetFindObstacle(fn FindObstacleFunc) { c.findObstacle = fn }

// SetTargetPosition moves the orbit target and recomputes the eye.
func (c *ThirdPersonCamera) SetTargetPosition(p math.Vec3) {
	c.target = p
	c.recompute()
}

// TargetPosition returns the orbit target.
func (c *ThirdPersonCamera) TargetPosition() math.Vec3 { return c.target }

func (c *ThirdPersonCamera) Update(dt float32) { c.recompute() }

func (c *ThirdPersonCamera) Position() math.Vec3 { return c.position }

// View returns the view matrix for this camera looking at target.
func (c *ThirdPersonCamera) View() math.Mat4 {
	return math.LookAt(c.position, c.lookAt(), math.Up)
}

// HandleZoom updates distance from target.
func (c *ThirdPersonCamera) HandleZoom(delta float32) {
	c.Distance = math.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
	c.recompute()
}

func (c *ThirdPersonCamera) lookAt() math.Vec3 {
	return c.target.Add(math.Vec3{Z: c.style.Height})
}

func (c *ThirdPersonCamera) recompute() {
	center := c.lookAt()
	desired := center.Sub(lookDirection(c.Facing, -c.style.Pitch).Scale(c.Distance))
	if c.findObstacle != nil {
		if hit, ok := c.findObstacle(center, desired); ok {
			desired = hit
		}
	}
	c.position = desired
}
