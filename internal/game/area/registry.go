package area

import (
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

// Add registers an object and assigns it to the room under it. Adding an
// id twice is ignored.
func (a *Area) Add(obj object.Object) {
	if obj == nil {
		return
	}
	if _, exists := a.objectsByID[obj.ID()]; exists {
		logger.Warn("object already in area", zap.Uint32("id", obj.ID()))
		return
	}
	a.objects = append(a.objects, obj)
	a.objectsByID[obj.ID()] = obj
	a.objectsByTag[obj.Tag()] = append(a.objectsByTag[obj.Tag()], obj)
	a.objectsByType[obj.Type()] = append(a.objectsByType[obj.Type()], obj)

	if s, ok := obj.(*object.Sound); ok && a.services.Sounds != nil {
		s.SetPlayer(a.services.Sounds)
	}
	a.determineObjectRoom(obj)
}

// determineObjectRoom places the object in the room whose walkable surface
// lies under it. The position is left unchanged.
func (a *Area) determineObjectRoom(obj object.Object) {
	room, _, ok := a.ElevationAt(obj.Position().XY(), false, obj.ID())
	if !ok || room == nil {
		return
	}
	a.setObjectRoom(obj, room)
}

func (a *Area) setObjectRoom(obj object.Object, room *Room) {
	s := obj.Spatial()
	if old := a.rooms[s.Room()]; old != nil {
		old.RemoveTenant(obj.ID())
	}
	if room == nil {
		s.SetRoom("")
		return
	}
	room.AddTenant(obj.ID())
	s.SetRoom(room.Name())
}

// ObjectByID returns the object with the given id, or nil.
func (a *Area) ObjectByID(id uint32) object.Object {
	return a.objectsByID[id]
}

// ObjectByTag returns the nth object with the tag in insertion order, or
// nil when nth is out of range.
func (a *Area) ObjectByTag(tag string, nth int) object.Object {
	objs := a.objectsByTag[tag]
	if nth < 0 || nth >= len(objs) {
		return nil
	}
	return objs[nth]
}

// ObjectsByType returns the objects of a type in insertion order. The slice
// must not be modified.
func (a *Area) ObjectsByType(typ object.Type) []object.Object {
	return a.objectsByType[typ]
}

// Objects returns all objects in insertion order. The slice must not be
// modified.
func (a *Area) Objects() []object.Object {
	return a.objects
}

// DestroyObject queues an object for removal at the start of the next update.
func (a *Area) DestroyObject(obj object.Object) {
	if obj == nil || a.destroyQueued.Has(obj.ID()) {
		return
	}
	a.destroyQueued.Put(obj.ID())
	a.pendingDestroy = append(a.pendingDestroy, obj.ID())
}

func (a *Area) sweepDestroyed() {
	if len(a.pendingDestroy) == 0 {
		return
	}
	for _, id := range a.pendingDestroy {
		a.destroyNow(id)
		a.destroyQueued.Remove(id)
	}
	a.pendingDestroy = a.pendingDestroy[:0]
}

// destroyNow removes an object from its room, the scene and every index.
func (a *Area) destroyNow(id uint32) {
	obj := a.objectsByID[id]
	if obj == nil {
		return
	}
	if room := a.rooms[obj.Room()]; room != nil {
		room.RemoveTenant(id)
	}
	if m := obj.Model(); m != nil {
		a.services.Graph.RemoveRoot(m)
	}
	a.objects = removeObject(a.objects, obj)
	delete(a.objectsByID, id)

	tagged := removeObject(a.objectsByTag[obj.Tag()], obj)
	if len(tagged) == 0 {
		delete(a.objectsByTag, obj.Tag())
	} else {
		a.objectsByTag[obj.Tag()] = tagged
	}
	a.objectsByType[obj.Type()] = removeObject(a.objectsByType[obj.Type()], obj)

	for _, c := range a.objectsByType[object.TypeCreature] {
		c.(*object.Creature).Perception.Forget(id)
	}
	for _, obj := range a.objectsByType[object.TypeTrigger] {
		t := obj.(*object.Trigger)
		if !t.IsTenant(id) {
			continue
		}
		t.RemoveTenant(id)
		if name := t.Script(object.EventExit); name != "" {
			a.runScript(name, t.ID(), id)
		}
	}
	if a.selectedObject == id {
		a.selectedObject = object.InvalidID
	}
	if a.hilightedObject == id {
		a.hilightedObject = object.InvalidID
	}
	logger.Debug("object destroyed", zap.Uint32("id", id), zap.String("tag", obj.Tag()))
}

func removeObject(objs []object.Object, obj object.Object) []object.Object {
	if i := slices.Index(objs, obj); i >= 0 {
		return slices.Delete(objs, i, i+1)
	}
	return objs
}

// NearestObject returns the nth nearest object to origin that satisfies
// predicate. Ties keep insertion order. It returns nil when nth is out of
// range.
func (a *Area) NearestObject(origin math.Vec3, nth int, predicate func(object.Object) bool) object.Object {
	type candidate struct {
		obj   object.Object
		dist2 float32
	}
	var candidates []candidate
	for _, obj := range a.objects {
		if predicate == nil || predicate(obj) {
			candidates = append(candidates, candidate{obj, obj.Spatial().DistanceTo2(origin)})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist2 < candidates[j].dist2
	})
	if nth < 0 || nth >= len(candidates) {
		logger.Debug("nearest object out of range", zap.Int("nth", nth), zap.Int("candidates", len(candidates)))
		return nil
	}
	return candidates[nth].obj
}
