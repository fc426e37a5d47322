package scene

import (
	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/internal/engine/walkmesh"
	"github.com/Faultbox/starforge/pkg/math"
)

// Model is a renderable instance owned by the scene graph.
type Model interface {
	Name() string
	LocalTransform() math.Mat4
	SetLocalTransform(m math.Mat4)
	AbsoluteTransform() math.Mat4
	// AABB is in model space.
	AABB() geometry.AABB
	NodeAbsolutePosition(name string) (math.Vec3, bool)
	SetCulled(culled bool)
	IsCulled() bool
	SetVisible(visible bool)
	IsVisible() bool
	PlayAnimation(name string) bool
	IsAnimationFinished() bool
	Update(dt float32)
}

// Provider resolves models and walkmeshes by resource name.
// Model returns a fresh instance on every call.
type Provider interface {
	Model(name string) (Model, error)
	Walkmesh(name string) (*walkmesh.Walkmesh, error)
}

// WorldAABB returns the model bounding box in world space.
func WorldAABB(m Model) geometry.AABB {
	return m.AABB().Transform(m.AbsoluteTransform())
}
