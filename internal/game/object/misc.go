package object

import "github.com/Faultbox/starforge/pkg/math"

// Waypoint marks a named location.
type Waypoint struct {
	SpatialObject

	MapNote string
}

// NewWaypoint creates a waypoint.
func NewWaypoint(id uint32) *Waypoint {
	return &Waypoint{SpatialObject: newSpatialObject(id, TypeWaypoint)}
}

// Camera is a placed static camera, referenced by CameraID.
type Camera struct {
	SpatialObject

	CameraID    int
	FieldOfView float32 // Degrees
	Pitch       float32 // Radians above the horizon
	Height      float32
}

// NewCamera creates a camera object.
func NewCamera(id uint32) *Camera {
	return &Camera{SpatialObject: newSpatialObject(id, TypeCamera), FieldOfView: 55}
}

// EyePosition returns the camera eye in world space.
func (c *Camera) EyePosition() math.Vec3 {
	return c.position.Add(math.Vec3{Z: c.Height})
}

// Item lies on the ground or in a container.
type Item struct {
	SpatialObject

	StackSize int
}

// NewItem creates an item.
func NewItem(id uint32) *Item {
	i := &Item{SpatialObject: newSpatialObject(id, TypeItem), StackSize: 1}
	i.selectable = true
	return i
}

// Store is a merchant inventory.
type Store struct {
	SpatialObject

	MarkUp   int
	MarkDown int
	Items    []string
}

// NewStore creates a store.
func NewStore(id uint32) *Store {
	return &Store{SpatialObject: newSpatialObject(id, TypeStore), MarkUp: 100, MarkDown: 100}
}

// SpawnPoint is a creature spawn location of an encounter.
type SpawnPoint struct {
	Position math.Vec3
	Facing   float32
}

// Encounter is a region that spawns creatures.
type Encounter struct {
	SpatialObject

	Geometry    []math.Vec3 // Relative to the position
	SpawnPoints []SpawnPoint
	Templates   []string
	Active      bool
}

// NewEncounter creates an active encounter.
func NewEncounter(id uint32) *Encounter {
	return &Encounter{SpatialObject: newSpatialObject(id, TypeEncounter), Active: true}
}

// Contains tests a world-space ground point against the encounter polygon.
func (e *Encounter) Contains(p math.Vec2) bool {
	return PolygonContains(e.Geometry, p.Sub(e.position.XY()))
}

// AreaOfEffect is a transient spell region.
type AreaOfEffect struct {
	SpatialObject

	Radius    float32
	Remaining float32 // Seconds, 0 lasts forever
}

// NewAreaOfEffect creates an area of effect.
func NewAreaOfEffect(id uint32) *AreaOfEffect {
	return &AreaOfEffect{SpatialObject: newSpatialObject(id, TypeAreaOfEffect)}
}

// Expired reports whether a timed effect has run out.
func (a *AreaOfEffect) Expired() bool { return a.Remaining < 0 }

// Update counts down a timed effect.
func (a *AreaOfEffect) Update(dt float32) {
	a.SpatialObject.Update(dt)
	if a.Remaining > 0 {
		a.Remaining -= dt
		if a.Remaining <= 0 {
			a.Remaining = -1
		}
	}
}
