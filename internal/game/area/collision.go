package area

import (
	"slices"

	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

// DefaultRaycastDistance is used when a query leaves Distance unset.
const DefaultRaycastDistance = 8.0

// segmentReach is the query distance for testing a segment of the given
// length. Objects are gathered by centre, so the reach extends past the
// segment end and callers compare the hit distance against length.
func segmentReach(length float32) float32 {
	return length + DefaultRaycastDistance
}

// RaycastFlags select what a raycast tests.
type RaycastFlags uint8

const (
	// RaycastAABB tests object bounding boxes instead of walkmeshes.
	RaycastAABB RaycastFlags = 1 << iota
	// RaycastRooms also tests room walkmeshes.
	RaycastRooms
	// RaycastWalkable tests walkable faces instead of non-walkable ones.
	RaycastWalkable
	// RaycastSelectable keeps only selectable objects.
	RaycastSelectable
	// RaycastAlive keeps only objects that are not dead.
	RaycastAlive
)

// RaycastQuery describes a ray and the geometry it is tested against.
type RaycastQuery struct {
	Origin    math.Vec3
	Direction math.Vec3
	Distance  float32
	Flags     RaycastFlags
	// ObjectTypes restricts tested objects. Empty tests every type.
	ObjectTypes []object.Type
	// Except is skipped. Zero skips nothing.
	Except uint32
}

// RaycastResult is the nearest hit of a raycast. Exactly one of Object and
// Room is set.
type RaycastResult struct {
	Object       object.Object
	Room         *Room
	Intersection math.Vec3
	Distance     float32
	Material     int
}

// CollisionDetector answers raycasts against the rooms and objects of an area.
type CollisionDetector struct {
	area *Area
}

// Raycast returns the nearest hit within the query distance across every
// enabled geometry class. It has no side effects.
func (d *CollisionDetector) Raycast(q RaycastQuery) (RaycastResult, bool) {
	dir := q.Direction.Normalize()
	ray := geometry.Ray{Origin: q.Origin, Direction: dir}
	maxDist := q.Distance
	if maxDist <= 0 {
		maxDist = DefaultRaycastDistance
	}
	walkable := q.Flags&RaycastWalkable != 0

	var best RaycastResult
	found := false
	bestDist := maxDist
	consider := func(r RaycastResult) {
		if r.Distance > bestDist || (found && r.Distance == bestDist) {
			return
		}
		best = r
		bestDist = r.Distance
		found = true
	}

	if q.Flags&RaycastRooms != 0 {
		origin2 := q.Origin.XY()
		for _, room := range d.area.Rooms() {
			wm := room.Walkmesh()
			if wm == nil || !wm.AABB().Contains2D(origin2) {
				continue
			}
			dist, material, ok := wm.Raycast(q.Origin, dir, walkable)
			if !ok {
				continue
			}
			consider(RaycastResult{Room: room, Distance: dist, Material: material})
		}
	}

	maxDist2 := maxDist * maxDist
	for _, obj := range d.area.Objects() {
		if !d.matches(obj, q) {
			continue
		}
		if obj.Spatial().DistanceTo2D2(q.Origin.XY()) > maxDist2 {
			continue
		}
		if q.Flags&RaycastAABB != 0 {
			m := obj.Model()
			if m == nil {
				continue
			}
			local := ray.Transform(m.AbsoluteTransform().Inverse())
			if dist, hit := local.IntersectAABB(m.AABB()); hit {
				consider(RaycastResult{Object: obj, Distance: dist})
			}
			continue
		}
		wm := obj.Walkmesh()
		if wm == nil {
			continue
		}
		local := ray.Transform(obj.Spatial().Transform().Inverse())
		if dist, material, ok := wm.Raycast(local.Origin, local.Direction, walkable); ok {
			consider(RaycastResult{Object: obj, Distance: dist, Material: material})
		}
	}

	if !found {
		return RaycastResult{}, false
	}
	best.Intersection = ray.At(best.Distance)
	return best, true
}

func (d *CollisionDetector) matches(obj object.Object, q RaycastQuery) bool {
	if q.Except != 0 && obj.ID() == q.Except {
		return false
	}
	if len(q.ObjectTypes) > 0 && !slices.Contains(q.ObjectTypes, obj.Type()) {
		return false
	}
	if q.Flags&RaycastSelectable != 0 && !obj.IsSelectable() {
		return false
	}
	if q.Flags&RaycastAlive != 0 && obj.IsDead() {
		return false
	}
	return true
}
