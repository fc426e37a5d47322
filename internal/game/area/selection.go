package area

import (
	"sort"

	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/internal/game/object"
)

// updateObjectSelection clears selections that stopped being selectable.
func (a *Area) updateObjectSelection() {
	if obj := a.objectsByID[a.hilightedObject]; obj == nil || !obj.IsSelectable() {
		a.hilightedObject = object.InvalidID
	}
	if obj := a.objectsByID[a.selectedObject]; obj == nil || !obj.IsSelectable() {
		a.selectedObject = object.InvalidID
	}
}

// SelectableObjects returns selectable objects with a visible model within
// the selection distance of the leader, nearest first.
func (a *Area) SelectableObjects() []object.Object {
	leader := a.PartyLeader()
	if leader == nil {
		return nil
	}
	origin := leader.Position()
	maxDist2 := a.opts.SelectionDistance * a.opts.SelectionDistance

	type candidate struct {
		obj   object.Object
		dist2 float32
	}
	var candidates []candidate
	for _, obj := range a.objects {
		if !obj.IsSelectable() || obj.ID() == leader.ID() {
			continue
		}
		m := obj.Model()
		if m == nil || !m.IsVisible() {
			continue
		}
		dist2 := obj.Spatial().DistanceTo2(origin)
		if dist2 > maxDist2 {
			continue
		}
		candidates = append(candidates, candidate{obj, dist2})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist2 < candidates[j].dist2
	})
	result := make([]object.Object, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.obj)
	}
	return result
}

// SelectNextObject cycles the selection through selectable objects,
// wrapping at either end.
func (a *Area) SelectNextObject(reverse bool) {
	selectables := a.SelectableObjects()
	if len(selectables) == 0 {
		a.selectedObject = object.InvalidID
		return
	}
	if a.selectedObject == object.InvalidID {
		a.selectedObject = selectables[0].ID()
		return
	}
	current := -1
	for i, obj := range selectables {
		if obj.ID() == a.selectedObject {
			current = i
			break
		}
	}
	n := len(selectables)
	var next int
	switch {
	case current < 0 && reverse:
		next = n - 1
	case current < 0:
		next = 0
	case reverse:
		next = (current - 1 + n) % n
	default:
		next = (current + 1) % n
	}
	a.selectedObject = selectables[next].ID()
}

// SelectNearestObject selects the nearest selectable object.
func (a *Area) SelectNearestObject() {
	a.selectedObject = object.InvalidID
	a.SelectNextObject(false)
}

// SelectObject selects an object. Nil clears the selection.
func (a *Area) SelectObject(obj object.Object) {
	if obj == nil {
		a.selectedObject = object.InvalidID
		return
	}
	a.selectedObject = obj.ID()
}

// SelectedObject returns the selected object, or nil.
func (a *Area) SelectedObject() object.Object { return a.objectsByID[a.selectedObject] }

// HilightObject marks an object under the cursor. Nil clears it.
func (a *Area) HilightObject(obj object.Object) {
	if obj == nil {
		a.hilightedObject = object.InvalidID
		return
	}
	a.hilightedObject = obj.ID()
}

// HilightedObject returns the hilighted object, or nil.
func (a *Area) HilightedObject() object.Object { return a.objectsByID[a.hilightedObject] }

// ObjectAt returns the selectable creature, door or placeable whose bounds
// the ray hits first within the selection distance, ignoring the leader.
func (a *Area) ObjectAt(ray geometry.Ray) object.Object {
	q := RaycastQuery{
		Origin:      ray.Origin,
		Direction:   ray.Direction,
		Distance:    a.opts.SelectionDistance,
		Flags:       RaycastAABB | RaycastSelectable,
		ObjectTypes: []object.Type{object.TypeCreature, object.TypeDoor, object.TypePlaceable},
	}
	if leader := a.PartyLeader(); leader != nil {
		q.Except = leader.ID()
	}
	result, hit := a.collision.Raycast(q)
	if !hit {
		return nil
	}
	return result.Object
}
