// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/Faultbox/starforge/pkg/math"
)

// Default clip planes and field of view, in degrees.
const (
	DefaultNear = 0.1
	DefaultFar  = 10000.0
	DefaultFOV  = 55.0
)

// Camera is the common surface of every camera variant.
type Camera interface {
	Update(dt float32)
	View() math.Mat4
	Projection() math.Mat4
	Position() math.Vec3
}

// FindObstacleFunc reports the first obstacle between origin and dest,
// returning the intersection point.
type FindObstacleFunc func(origin, dest math.Vec3) (math.Vec3, bool)

// ObstacleAware is implemented by cameras that clamp against geometry.
type ObstacleAware interface {
	SetFindObstacle(fn FindObstacleFunc)
}

// Forward returns the ground-plane forward direction for a facing angle.
// Facing 0 looks along +Y.
func Forward(facing float32) math.Vec3 {
	return math.Vec3{X: -math.Sin(facing), Y: math.Cos(facing)}
}

// lens holds projection parameters shared by all variants.
type lens struct {
	fov    float32 // degrees
	aspect float32
	near   float32
	far    float32
}

func newLens(fov, aspect float32) lens {
	if fov <= 0 {
		fov = DefaultFOV
	}
	if aspect <= 0 {
		aspect = 1
	}
	return lens{fov: fov, aspect: aspect, near: DefaultNear, far: DefaultFar}
}

// Projection returns the perspective projection matrix.
func (l *lens) Projection() math.Mat4 {
	return math.Perspective(math.Radians(l.fov), l.aspect, l.near, l.far)
}

// FieldOfView returns the vertical field of view in degrees.
func (l *lens) FieldOfView() float32 { return l.fov }

// SetFieldOfView sets the vertical field of view in degrees.
func (l *lens) SetFieldOfView(fov float32) {
	if fov > 0 {
		l.fov = fov
	}
}

// lookDirection returns a unit vector for facing and pitch above the horizon.
func lookDirection(facing, pitch float32) math.Vec3 {
	f := Forward(facing)
	c := math.Cos(pitch)
	return math.Vec3{X: f.X * c, Y: f.Y * c, Z: math.Sin(pitch)}
}
