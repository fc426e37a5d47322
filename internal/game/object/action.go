package object

import "github.com/Faultbox/starforge/pkg/math"

// ActionType identifies a queued action.
type ActionType uint8

const (
	ActionMoveToPoint ActionType = iota
	ActionFollowObject
	ActionWait
	ActionOpenDoor
)

// Action is a unit of work in an object's action queue.
type Action struct {
	Type ActionType

	Point    math.Vec3 // MoveToPoint
	Target   uint32    // FollowObject, OpenDoor
	Range    float32   // FollowObject
	Duration float32   // Wait, seconds
	Run      bool

	// Execution state
	Path      []math.Vec3
	PathIndex int
	Elapsed   float32
}

// MoveToPoint returns an action that walks to a point along a path.
func MoveToPoint(p math.Vec3, run bool) *Action {
	return &Action{Type: ActionMoveToPoint, Point: p, Run: run}
}

// FollowObject returns an action that moves within range of an object.
func FollowObject(target uint32, distance float32, run bool) *Action {
	return &Action{Type: ActionFollowObject, Target: target, Range: distance, Run: run}
}

// Wait returns an action that idles for the given seconds.
func Wait(seconds float32) *Action {
	return &Action{Type: ActionWait, Duration: seconds}
}

// OpenDoor returns an action that opens a door.
func OpenDoor(door uint32) *Action {
	return &Action{Type: ActionOpenDoor, Target: door}
}

// ActionQueue is a FIFO of actions executed head first.
type ActionQueue struct {
	actions []*Action
}

// AddAction appends to the action queue.
func (q *ActionQueue) AddAction(a *Action) {
	q.actions = append(q.actions, a)
}

// CurrentAction returns the head of the queue, or nil.
func (q *ActionQueue) CurrentAction() *Action {
	if len(q.actions) == 0 {
		return nil
	}
	return q.actions[0]
}

// CompleteCurrentAction pops the head of the queue.
func (q *ActionQueue) CompleteCurrentAction() {
	if len(q.actions) == 0 {
		return
	}
	q.actions[0] = nil
	q.actions = q.actions[1:]
}

// ClearActions empties the queue.
func (q *ActionQueue) ClearActions() {
	q.actions = nil
}

// HasActions reports whether any action is queued.
func (q *ActionQueue) HasActions() bool {
	return len(q.actions) > 0
}
