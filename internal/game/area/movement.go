package area

import (
	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

const (
	obstacleTestZ       = 0.1
	minObstacleDistance = 0.5
	// deflection is the turn tried when the straight path is blocked.
	deflection = -0.75 * math.Pi
)

// MoveCreature moves a creature one step along dir. When the step is
// blocked it tries once more, turned by -135 degrees. It reports whether
// the creature moved.
func (a *Area) MoveCreature(c *object.Creature, dir math.Vec2, run bool, dt float32) bool {
	facing := -math.Atan2(dir.X, dir.Y)
	c.SetFacing(facing)

	step := c.Speed(run) * dt
	pos := c.Position()
	dest := pos.Add(math.Vec3{X: dir.X * step, Y: dir.Y * step})

	if a.creatureObstacle(c, dest) {
		facing += deflection
		right := math.Vec2{X: -math.Sin(facing), Y: math.Cos(facing)}.Normalize()
		dest = pos.Add(math.Vec3{X: right.X * step, Y: right.Y * step})

		if a.creatureObstacle(c, dest) {
			return false
		}
	}
	return a.doMoveCreature(c, dest)
}

// MoveCreatureTowards steps a creature towards a ground point.
func (a *Area) MoveCreatureTowards(c *object.Creature, point math.Vec2, run bool, dt float32) bool {
	delta := point.Sub(c.Position().XY())
	if delta.LengthSquared() == 0 {
		return false
	}
	return a.MoveCreature(c, delta.Normalize(), run, dt)
}

func (a *Area) doMoveCreature(c *object.Creature, dest math.Vec3) bool {
	room, z, ok := a.ElevationAt(dest.XY(), true, c.ID())
	if !ok {
		return false
	}
	oldRoom := c.Room()
	a.setObjectRoom(c, room)
	c.SetPosition(math.Vec3{X: dest.X, Y: dest.Y, Z: z})

	if c.ID() == a.leader {
		a.onPartyLeaderMoved(c.Room() != oldRoom)
	}
	a.checkTriggersIntersection(c)
	return true
}

// creatureObstacle reports whether alive creatures or room and door
// walls block the way to dest. The raycasts gather objects within the
// default raycast distance and only hits within the step length block.
func (a *Area) creatureObstacle(c *object.Creature, dest math.Vec3) bool {
	toDest := dest.Sub(c.Position())
	dir := toDest.Normalize()
	origin := c.Position().Add(math.Vec3{Z: obstacleTestZ})
	maxDist := max(toDest.Length(), minObstacleDistance)

	if result, hit := a.collision.Raycast(RaycastQuery{
		Origin:      origin,
		Direction:   dir,
		Flags:       RaycastAABB | RaycastAlive,
		ObjectTypes: []object.Type{object.TypeCreature},
		Except:      c.ID(),
	}); hit && result.Distance <= maxDist {
		logger.Debug("movement blocked by creature",
			zap.Uint32("id", c.ID()),
			zap.Uint32("blocker", result.Object.ID()))
		return true
	}

	if result, hit := a.collision.Raycast(RaycastQuery{
		Origin:      origin,
		Direction:   dir,
		Flags:       RaycastRooms,
		ObjectTypes: []object.Type{object.TypeDoor},
	}); hit && result.Distance <= maxDist {
		return true
	}
	return false
}

func (a *Area) onPartyLeaderMoved(roomChanged bool) {
	if roomChanged {
		a.updateRoomVisibility()
	}
	a.updateThirdPersonCameraTarget()
	a.SelectNearestObject()
}
