package area

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/engine/walkmesh"
	"github.com/Faultbox/starforge/pkg/math"
)

// Room is a section of an area with its own model and world-space walkmesh.
type Room struct {
	name     string
	position math.Vec3
	model    scene.Model
	walkmesh *walkmesh.Walkmesh

	tenants mapset.Set[uint32]
	visible bool
}

// NewRoom creates a visible room. Model and walkmesh may be nil.
func NewRoom(name string, position math.Vec3, model scene.Model, wm *walkmesh.Walkmesh) *Room {
	r := &Room{
		name:     name,
		position: position,
		model:    model,
		walkmesh: wm,
		tenants:  mapset.New[uint32](),
		visible:  true,
	}
	if model != nil {
		model.SetLocalTransform(math.Translate(position))
	}
	return r
}

func (r *Room) Name() string { return r.name }

func (r *Room) Position() math.Vec3 { return r.position }

func (r *Room) Model() scene.Model { return r.model }

func (r *Room) Walkmesh() *walkmesh.Walkmesh { return r.walkmesh }

func (r *Room) IsVisible() bool { return r.visible }

// SetVisible shows or hides the room model.
func (r *Room) SetVisible(visible bool) {
	r.visible = visible
	if r.model != nil {
		r.model.SetVisible(visible)
	}
}

func (r *Room) AddTenant(id uint32) { r.tenants.Put(id) }

func (r *Room) RemoveTenant(id uint32) { r.tenants.Remove(id) }

func (r *Room) HasTenant(id uint32) bool { return r.tenants.Has(id) }

// Tenants returns the ids of objects in the room, ascending.
func (r *Room) Tenants() []uint32 {
	ids := make([]uint32, 0, r.tenants.Size())
	r.tenants.Each(func(id uint32) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}

// Update advances the room model.
func (r *Room) Update(dt float32) {
	if r.model != nil {
		r.model.Update(dt)
	}
}

// AddRoom registers a room. Rooms keep their insertion order.
func (a *Area) AddRoom(r *Room) {
	if _, exists := a.rooms[r.name]; !exists {
		a.roomOrder = append(a.roomOrder, r.name)
	}
	a.rooms[r.name] = r
}

// Room returns a room by name, or nil.
func (a *Area) Room(name string) *Room { return a.rooms[name] }

// Rooms returns all rooms in load order.
func (a *Area) Rooms() []*Room {
	rooms := make([]*Room, 0, len(a.roomOrder))
	for _, name := range a.roomOrder {
		rooms = append(rooms, a.rooms[name])
	}
	return rooms
}

// SetVisibility replaces the room visibility relation. Pairs are made
// symmetric.
func (a *Area) SetVisibility(pairs map[string][]string) {
	a.visibility = make(map[string]mapset.Set[string])
	link := func(from, to string) {
		set, ok := a.visibility[from]
		if !ok {
			set = mapset.New[string]()
			a.visibility[from] = set
		}
		set.Put(to)
	}
	for room, adjacent := range pairs {
		for _, other := range adjacent {
			link(room, other)
			link(other, room)
		}
	}
}

// IsRoomVisibleFrom reports whether other is in the visibility relation of room.
func (a *Area) IsRoomVisibleFrom(room, other string) bool {
	set, ok := a.visibility[room]
	return ok && set.Has(other)
}
