package object

import (
	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/engine/walkmesh"
	"github.com/Faultbox/starforge/pkg/math"
)

// DefaultDrawDistance is the distance beyond which models are culled.
const DefaultDrawDistance = 1024.0

// lineOfSightHeight is the eye height used when an object has no model.
const lineOfSightHeight = 1.7

// Object is implemented by every concrete object type.
type Object interface {
	Spatial() *SpatialObject
	ID() uint32
	Tag() string
	Type() Type
	Position() math.Vec3
	Room() string
	Model() scene.Model
	Walkmesh() *walkmesh.Walkmesh
	IsDead() bool
	IsSelectable() bool
	Update(dt float32)
}

// SpatialObject holds the state shared by all objects placed in an area.
type SpatialObject struct {
	id        uint32
	tag       string
	typ       Type
	blueprint string
	name      string

	position math.Vec3
	facing   float32
	room     string // Owning room name, empty when outside all rooms

	model    scene.Model
	walkmesh *walkmesh.Walkmesh

	drawDistance float32
	visible      bool
	stunt        bool
	selectable   bool
	dead         bool

	scripts map[ScriptEvent]string

	ActionQueue
}

func newSpatialObject(id uint32, typ Type) SpatialObject {
	return SpatialObject{
		id:           id,
		typ:          typ,
		drawDistance: DefaultDrawDistance,
		visible:      true,
		scripts:      make(map[ScriptEvent]string),
	}
}

// Spatial returns the shared object state.
func (s *SpatialObject) Spatial() *SpatialObject { return s }

func (s *SpatialObject) ID() uint32 { return s.id }

func (s *SpatialObject) Tag() string { return s.tag }

func (s *SpatialObject) SetTag(tag string) { s.tag = tag }

func (s *SpatialObject) Type() Type { return s.typ }

// Blueprint returns the blueprint the object was created from.
func (s *SpatialObject) Blueprint() string { return s.blueprint }

// Name returns the display name.
func (s *SpatialObject) Name() string { return s.name }

func (s *SpatialObject) SetName(name string) { s.name = name }

func (s *SpatialObject) Position() math.Vec3 { return s.position }

// SetPosition moves the object and its model.
func (s *SpatialObject) SetPosition(p math.Vec3) {
	s.position = p
	s.syncModel()
}

func (s *SpatialObject) Facing() float32 { return s.facing }

// SetFacing rotates the object and its model around the up axis.
func (s *SpatialObject) SetFacing(facing float32) {
	s.facing = facing
	s.syncModel()
}

// Transform returns the object-to-world transform.
func (s *SpatialObject) Transform() math.Mat4 {
	return math.Pose(s.position, s.facing)
}

func (s *SpatialObject) Room() string { return s.room }

func (s *SpatialObject) SetRoom(name string) { s.room = name }

func (s *SpatialObject) Model() scene.Model { return s.model }

// SetModel replaces the renderable and places it at the object pose.
func (s *SpatialObject) SetModel(m scene.Model) {
	s.model = m
	s.syncModel()
}

// Walkmesh returns the object-space collision mesh, if any.
func (s *SpatialObject) Walkmesh() *walkmesh.Walkmesh { return s.walkmesh }

func (s *SpatialObject) SetWalkmesh(w *walkmesh.Walkmesh) { s.walkmesh = w }

func (s *SpatialObject) IsVisible() bool { return s.visible }

// SetVisible shows or hides the object and its model.
func (s *SpatialObject) SetVisible(visible bool) {
	s.visible = visible
	if s.model != nil {
		s.model.SetVisible(visible)
	}
}

func (s *SpatialObject) DrawDistance() float32 { return s.drawDistance }

func (s *SpatialObject) SetDrawDistance(d float32) { s.drawDistance = d }

// IsStunt reports whether the object is in a cutscene and exempt from culling.
func (s *SpatialObject) IsStunt() bool { return s.stunt }

func (s *SpatialObject) SetStunt(stunt bool) { s.stunt = stunt }

func (s *SpatialObject) IsSelectable() bool { return s.selectable }

func (s *SpatialObject) SetSelectable(selectable bool) { s.selectable = selectable }

func (s *SpatialObject) IsDead() bool { return s.dead }

func (s *SpatialObject) SetDead(dead bool) { s.dead = dead }

// Script returns the script bound to an event, or "".
func (s *SpatialObject) Script(event ScriptEvent) string { return s.scripts[event] }

func (s *SpatialObject) SetScript(event ScriptEvent, name string) {
	if name == "" {
		delete(s.scripts, event)
		return
	}
	s.scripts[event] = name
}

// DistanceTo2 returns the squared distance to a point.
func (s *SpatialObject) DistanceTo2(p math.Vec3) float32 {
	return s.position.DistanceSquared(p)
}

// DistanceTo2D2 returns the squared ground-plane distance to a point.
func (s *SpatialObject) DistanceTo2D2(p math.Vec2) float32 {
	return s.position.XY().DistanceSquared(p)
}

// WorldAABB returns the model bounds in world space.
func (s *SpatialObject) WorldAABB() (geometry.AABB, bool) {
	if s.model == nil {
		return geometry.AABB{}, false
	}
	return scene.WorldAABB(s.model), true
}

// SightPoint returns the point used for line-of-sight tests: the model
// bounds centre, or eye height above the position without a model.
func (s *SpatialObject) SightPoint() math.Vec3 {
	if box, ok := s.WorldAABB(); ok && !box.IsEmpty() {
		return box.Center()
	}
	return s.position.Add(math.Vec3{Z: lineOfSightHeight})
}

// Update advances the model.
func (s *SpatialObject) Update(dt float32) {
	if s.model != nil {
		s.model.Update(dt)
	}
}

func (s *SpatialObject) syncModel() {
	if s.model != nil {
		s.model.SetLocalTransform(s.Transform())
	}
}
