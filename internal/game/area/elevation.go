package area

import (
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

const (
	elevationTestZ    = 1024.0
	elevationDistance = 2 * elevationTestZ
)

// ElevationAt probes straight down at a ground point and returns the room
// and height of the first walkable surface. The probe fails when an alive
// creature other than except stands there (only if creatures is set) or
// when a placeable's non-walkable face blocks it.
func (a *Area) ElevationAt(p math.Vec2, creatures bool, except uint32) (*Room, float32, bool) {
	probe := RaycastQuery{
		Origin:    p.Vec3(elevationTestZ),
		Direction: math.Down,
		Distance:  elevationDistance,
	}

	if creatures {
		q := probe
		q.Flags = RaycastAABB | RaycastAlive
		q.ObjectTypes = []object.Type{object.TypeCreature}
		q.Except = except
		if _, hit := a.collision.Raycast(q); hit {
			return nil, 0, false
		}
	}

	q := probe
	q.ObjectTypes = []object.Type{object.TypePlaceable}
	q.Except = except
	if _, hit := a.collision.Raycast(q); hit {
		return nil, 0, false
	}

	q = probe
	q.Flags = RaycastRooms | RaycastWalkable
	q.ObjectTypes = []object.Type{object.TypeDoor}
	q.Except = except
	result, hit := a.collision.Raycast(q)
	if !hit {
		return nil, 0, false
	}
	room := result.Room
	if room == nil && result.Object != nil {
		room = a.rooms[result.Object.Room()]
	}
	return room, result.Intersection.Z, true
}

// LandObject drops an object onto the surface under it, trying the exact
// position first and then one unit away in each cardinal direction. It
// reports whether a surface was found.
func (a *Area) LandObject(obj object.Object) bool {
	s := obj.Spatial()
	base := s.Position()
	for i := range 5 {
		pos := base
		if i > 0 {
			angle := float32(i-1) * math.Pi / 2
			pos = base.Add(math.Vec3{X: math.Sin(angle), Y: math.Cos(angle)})
		}
		room, z, ok := a.ElevationAt(pos.XY(), true, obj.ID())
		if !ok {
			continue
		}
		pos.Z = z
		s.SetPosition(pos)
		if room != nil {
			a.setObjectRoom(obj, room)
		}
		return true
	}
	return false
}
