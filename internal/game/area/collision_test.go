package area

import (
	"testing"

	"github.com/Faultbox/starforge/internal/engine/walkmesh"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

func addWallPlaceable(a *Area, tag string, pos math.Vec3, facing float32) *object.Placeable {
	p := addPlaceable(a, tag, pos)
	p.SetFacing(facing)
	p.SetWalkmesh(walkmesh.New(tag, wallY(0, -1, 1)))
	return p
}

// addWideDoor adds a closed door whose wall runs along x=pos.X from
// pos.Y+minY to pos.Y+maxY.
func addWideDoor(a *Area, tag string, pos math.Vec3, minY, maxY float32) *object.Door {
	door := object.NewDoor(a.services.Factory.NextID())
	door.SetTag(tag)
	door.SetPosition(pos)
	door.SetWalkmeshes(walkmesh.New(tag, wallX(0, minY, maxY)), nil)
	a.Add(door)
	return door
}

func TestRaycastNearestAcrossClasses(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	room := addRoom(a, "main", append(floor(-50, -50, 50, 50, 0), wallY(6, -5, 5)...)...)
	p := addWallPlaceable(a, "screen", math.Vec3{Y: 3}, 0)

	base := RaycastQuery{
		Origin:    math.Vec3{Z: 1},
		Direction: math.Vec3{Y: 2},
		Flags:     RaycastRooms,
	}

	tests := []struct {
		name     string
		mutate   func(q *RaycastQuery)
		wantHit  bool
		wantObj  object.Object
		wantRoom *Room
		wantDist float32
	}{
		{"object nearer than room wall", func(q *RaycastQuery) {}, true, p, nil, 3},
		{"type filter leaves room", func(q *RaycastQuery) {
			q.ObjectTypes = []object.Type{object.TypeCreature}
		}, true, nil, room, 6},
		{"except leaves room", func(q *RaycastQuery) { q.Except = p.ID() }, true, nil, room, 6},
		{"objects only", func(q *RaycastQuery) { q.Flags = 0 }, true, p, nil, 3},
		{"too short", func(q *RaycastQuery) { q.Distance = 2 }, false, nil, nil, 0},
		{"walkable faces only", func(q *RaycastQuery) { q.Flags |= RaycastWalkable }, false, nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base
			tt.mutate(&q)
			result, hit := a.CollisionDetector().Raycast(q)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if !hit {
				return
			}
			if result.Object != tt.wantObj || result.Room != tt.wantRoom {
				t.Errorf("result = %+v", result)
			}
			if !near(result.Distance, tt.wantDist) {
				t.Errorf("distance = %v, want %v", result.Distance, tt.wantDist)
			}
			want := math.Vec3{Y: tt.wantDist, Z: 1}
			if !nearVec(result.Intersection, want) {
				t.Errorf("intersection = %v, want %v", result.Intersection, want)
			}
		})
	}
}

func TestRaycastObjectWalkmeshInObjectSpace(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	p := addWallPlaceable(a, "rotated", math.Vec3{X: 9}, math.Pi/2)

	result, hit := a.CollisionDetector().Raycast(RaycastQuery{
		Origin:    math.Vec3{Z: 1},
		Direction: math.Vec3{X: 1},
		Distance:  20,
	})
	if !hit || result.Object != p {
		t.Fatalf("Raycast = %+v, %v; want rotated placeable", result, hit)
	}
	if !near(result.Distance, 9) || !nearVec(result.Intersection, math.Vec3{X: 9, Z: 1}) {
		t.Errorf("hit at %v (distance %v), want x=9", result.Intersection, result.Distance)
	}
}

func TestRaycastAABBFilters(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	c := addCreature(a, "target", math.Vec3{Y: 4})
	q := RaycastQuery{
		Origin:    math.Vec3{Z: 0.5},
		Direction: math.Vec3{Y: 1},
		Flags:     RaycastAABB | RaycastAlive | RaycastSelectable,
	}

	result, hit := a.CollisionDetector().Raycast(q)
	if !hit || result.Object != c || !near(result.Distance, 3.6) {
		t.Fatalf("Raycast = %+v, %v; want creature at 3.6", result, hit)
	}

	c.SetSelectable(false)
	if _, hit := a.CollisionDetector().Raycast(q); hit {
		t.Error("unselectable creature should be skipped")
	}
	c.SetSelectable(true)

	c.Die()
	if _, hit := a.CollisionDetector().Raycast(q); hit {
		t.Error("dead creature should be skipped")
	}
	q.Flags &^= RaycastAlive
	if _, hit := a.CollisionDetector().Raycast(q); !hit {
		t.Error("dead creature should be hit without the alive flag")
	}
}

func TestRaycastSkipsRoomsNotUnderOrigin(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addRoom(a, "far", append(floor(100, -5, 110, 5, 0), wallY(3, 100, 110)...)...)

	if _, hit := a.CollisionDetector().Raycast(RaycastQuery{
		Origin:    math.Vec3{X: 95, Z: 1},
		Direction: math.Vec3{X: 1, Y: 1},
		Distance:  50,
		Flags:     RaycastRooms,
	}); hit {
		t.Error("room walkmesh not under the origin should not be tested")
	}
}
