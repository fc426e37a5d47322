package camera

import (
	"fmt"

	"github.com/Faultbox/starforge/internal/engine/model"
	"github.com/Faultbox/starforge/pkg/math"
)

// AnimatedModel is the model a cutscene camera rides on.
type AnimatedModel interface {
	AbsoluteTransform() math.Mat4
	NodeAbsolutePosition(name string) (math.Vec3, bool)
	PlayAnimation(name string) bool
	IsAnimationFinished() bool
	Update(dt float32)
}

// AnimatedCamera follows the camera hook of an animated model.
type AnimatedCamera struct {
	lens

	model AnimatedModel
}

// NewAnimatedCamera creates a cutscene camera.
func NewAnimatedCamera(aspect float32) *AnimatedCamera {
	return &AnimatedCamera{lens: newLens(DefaultFOV, aspect)}
}

// SetModel attaches the camera to a model. A nil model detaches it.
func (c *AnimatedCamera) SetModel(m AnimatedModel) { c.model = m }

// AnimationName returns the model clip for an animation number.
func AnimationName(animNumber int) string {
	return fmt.Sprintf("cut%03dw", animNumber-1200+1)
}

// PlayAnimation starts the clip for an animation number.
func (c *AnimatedCamera) PlayAnimation(animNumber int) bool {
	if c.model == nil {
		return false
	}
	return c.model.PlayAnimation(AnimationName(animNumber))
}

// IsAnimationFinished reports whether the current clip has ended.
func (c *AnimatedCamera) IsAnimationFinished() bool {
	return c.model == nil || c.model.IsAnimationFinished()
}

func (c *AnimatedCamera) Update(dt float32) {
	if c.model != nil {
		c.model.Update(dt)
	}
}

func (c *AnimatedCamera) Position() math.Vec3 {
	if c.model == nil {
		return math.Vec3{}
	}
	if p, ok := c.model.NodeAbsolutePosition(model.CameraHook); ok {
		return p
	}
	return c.model.AbsoluteTransform().Translation()
}

// View looks along the model's forward axis from the hook.
func (c *AnimatedCamera) View() math.Mat4 {
	pos := c.Position()
	forward := math.Vec3{Y: 1}
	if c.model != nil {
		forward = c.model.AbsoluteTransform().TransformDirection(forward)
	}
	return math.LookAt(pos, pos.Add(forward), math.Up)
}
