package area

import (
	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

// pointReachedDistance is how close a creature must get to a path point.
const pointReachedDistance = 1.0

// executeAreaActions runs the area's own queue. Only waits apply to it.
func (a *Area) executeAreaActions(dt float32) {
	action := a.CurrentAction()
	if action == nil {
		return
	}
	if action.Type == object.ActionWait {
		if a.advanceWait(action, dt) {
			a.CompleteCurrentAction()
		}
		return
	}
	logger.Debug("area cannot execute action", zap.Uint8("type", uint8(action.Type)))
	a.CompleteCurrentAction()
}

// executeActions runs the head of an object's action queue for one tick.
func (a *Area) executeActions(obj object.Object, dt float32) {
	s := obj.Spatial()
	action := s.CurrentAction()
	if action == nil {
		return
	}

	var done bool
	switch action.Type {
	case object.ActionWait:
		done = a.advanceWait(action, dt)
	case object.ActionMoveToPoint:
		done = a.executeMoveToPoint(obj, action, dt)
	case object.ActionFollowObject:
		done = a.executeFollowObject(obj, action, dt)
	case object.ActionOpenDoor:
		done = a.executeOpenDoor(obj, action)
	default:
		logger.Warn("unknown action", zap.Uint32("id", obj.ID()), zap.Uint8("type", uint8(action.Type)))
		done = true
	}
	if done {
		s.CompleteCurrentAction()
	}
}

func (a *Area) advanceWait(action *object.Action, dt float32) bool {
	action.Elapsed += dt
	return action.Elapsed >= action.Duration
}

// executeMoveToPoint follows a path to the action point, computing the
// path on first use.
func (a *Area) executeMoveToPoint(obj object.Object, action *object.Action, dt float32) bool {
	c, ok := obj.(*object.Creature)
	if !ok {
		return true
	}
	if action.Path == nil {
		action.Path = a.findPath(c.Position(), action.Point)
		action.PathIndex = 0
	}
	for action.PathIndex < len(action.Path) {
		target := action.Path[action.PathIndex]
		if c.DistanceTo2D2(target.XY()) > pointReachedDistance*pointReachedDistance {
			break
		}
		action.PathIndex++
	}
	if action.PathIndex >= len(action.Path) {
		c.SetMovementType(object.MovementNone)
		return true
	}
	return !a.stepTowards(c, action.Path[action.PathIndex], action.Run, dt)
}

// executeFollowObject moves a creature until it is within range of the
// target. A missing target completes the action.
func (a *Area) executeFollowObject(obj object.Object, action *object.Action, dt float32) bool {
	c, ok := obj.(*object.Creature)
	if !ok {
		return true
	}
	target := a.objectsByID[action.Target]
	if target == nil {
		return true
	}
	if c.DistanceTo2D2(target.Position().XY()) <= action.Range*action.Range {
		c.SetMovementType(object.MovementNone)
		return true
	}
	a.stepTowards(c, target.Position(), action.Run, dt)
	return false
}

// stepTowards moves one tick towards a point and reports whether the way
// was clear. A blocked creature stops.
func (a *Area) stepTowards(c *object.Creature, point math.Vec3, run bool, dt float32) bool {
	if a.MoveCreatureTowards(c, point.XY(), run, dt) {
		if run {
			c.SetMovementType(object.MovementRun)
		} else {
			c.SetMovementType(object.MovementWalk)
		}
		return true
	}
	c.SetMovementType(object.MovementNone)
	logger.Debug("creature blocked", zap.Uint32("id", c.ID()), zap.String("tag", c.Tag()))
	return false
}

// executeOpenDoor opens a door and runs its open script with the actor as
// triggerer. Locked doors stay shut.
func (a *Area) executeOpenDoor(obj object.Object, action *object.Action) bool {
	door, ok := a.objectsByID[action.Target].(*object.Door)
	if !ok {
		logger.Warn("open door: not a door", zap.Uint32("target", action.Target))
		return true
	}
	if door.Locked {
		logger.Debug("door is locked", zap.String("door", door.Tag()))
		return true
	}
	if !door.IsOpen() {
		door.Open()
		if name := door.Script(object.EventOpen); name != "" {
			a.runScript(name, door.ID(), obj.ID())
		}
	}
	return true
}

func (a *Area) findPath(from, to math.Vec3) []math.Vec3 {
	if a.pathfinder == nil {
		return []math.Vec3{from, to}
	}
	return a.pathfinder.FindPath(from, to)
}
