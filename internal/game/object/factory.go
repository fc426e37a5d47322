package object

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/engine/walkmesh"
	"github.com/Faultbox/starforge/internal/logger"
)

// firstObjectID is the first id handed out. Lower ids are reserved.
const firstObjectID = 2

// Factory creates objects with process-unique ids.
type Factory struct {
	nextID     atomic.Uint32
	blueprints BlueprintSource
	resources  scene.Provider
}

// NewFactory creates a factory. Either source may be nil.
func NewFactory(blueprints BlueprintSource, resources scene.Provider) *Factory {
	f := &Factory{blueprints: blueprints, resources: resources}
	f.nextID.Store(firstObjectID)
	return f
}

// NextID reserves a new object id.
func (f *Factory) NextID() uint32 {
	return f.nextID.Add(1) - 1
}

// New creates an object of the given type, applying the named blueprint
// when it exists. Missing blueprints, models and walkmeshes are logged and
// the object is created without them. Unknown type values panic.
func (f *Factory) New(typ Type, blueprint string) (Object, error) {
	id := f.NextID()

	var obj Object
	switch typ {
	case TypeCreature:
		obj = NewCreature(id)
	case TypeItem:
		obj = NewItem(id)
	case TypeDoor:
		obj = NewDoor(id)
	case TypePlaceable:
		obj = NewPlaceable(id)
	case TypeTrigger:
		obj = NewTrigger(id)
	case TypeSound:
		obj = NewSound(id)
	case TypeWaypoint:
		obj = NewWaypoint(id)
	case TypeStore:
		obj = NewStore(id)
	case TypeEncounter:
		obj = NewEncounter(id)
	case TypeAreaOfEffect:
		obj = NewAreaOfEffect(id)
	case TypeCamera:
		obj = NewCamera(id)
	case TypeArea:
		return nil, fmt.Errorf("create %s: not a spatial object", typ)
	default:
		panic(fmt.Sprintf("object: unknown type %d", uint8(typ)))
	}

	if blueprint != "" {
		obj.Spatial().blueprint = blueprint
		bp, ok := f.lookup(typ, blueprint)
		if !ok {
			logger.Warn("blueprint not found",
				zap.Stringer("type", typ),
				zap.String("blueprint", blueprint))
		} else {
			f.apply(obj, bp)
		}
	}
	return obj, nil
}

func (f *Factory) lookup(typ Type, name string) (*Blueprint, bool) {
	if f.blueprints == nil {
		return nil, false
	}
	return f.blueprints.Blueprint(typ, name)
}

func (f *Factory) apply(obj Object, bp *Blueprint) {
	s := obj.Spatial()
	s.tag = bp.Tag
	s.name = bp.Name
	if bp.Selectable != nil {
		s.selectable = *bp.Selectable
	}
	if bp.DrawDistance > 0 {
		s.drawDistance = bp.DrawDistance
	}
	for event, script := range bp.Scripts {
		s.SetScript(event, script)
	}
	if bp.Model != "" {
		s.SetModel(f.model(s, bp.Model))
	}

	switch o := obj.(type) {
	case *Creature:
		o.Faction = bp.Faction
		if bp.WalkSpeed > 0 {
			o.WalkSpeed = bp.WalkSpeed
		}
		if bp.RunSpeed > 0 {
			o.RunSpeed = bp.RunSpeed
		}
		if bp.SightRange > 0 {
			o.Perception.SightRange = bp.SightRange
		}
		if bp.HearingRange > 0 {
			o.Perception.HearingRange = bp.HearingRange
		}
	case *Door:
		o.LinkedToModule = bp.LinkedToModule
		o.LinkedTo = bp.LinkedTo
		o.Locked = bp.Locked
		o.SetWalkmeshes(f.walkmesh(s, bp.Walkmesh), f.walkmesh(s, bp.WalkmeshOpen))
	case *Placeable:
		o.Usable = bp.Usable
		s.walkmesh = f.walkmesh(s, bp.Walkmesh)
	case *Trigger:
		o.LinkedToModule = bp.LinkedToModule
		o.LinkedTo = bp.LinkedTo
	case *Sound:
		o.Sounds = append([]string(nil), bp.Sounds...)
		o.Active = bp.Active
		o.Looping = bp.Looping
		o.Continuous = bp.Continuous
		o.Positional = bp.Positional
		o.Priority = bp.Priority
		o.MaxDistance = bp.MaxDistance
		o.Interval = float32(bp.IntervalMs) / 1000
		o.Elevation = bp.Elevation
	case *Camera:
		if bp.FieldOfView > 0 {
			o.FieldOfView = bp.FieldOfView
		}
	case *Store:
		if bp.MarkUp > 0 {
			o.MarkUp = bp.MarkUp
		}
		if bp.MarkDown > 0 {
			o.MarkDown = bp.MarkDown
		}
		o.Items = append([]string(nil), bp.Items...)
	case *Encounter:
		o.Templates = append([]string(nil), bp.Templates...)
	case *AreaOfEffect:
		o.Radius = bp.Radius
		o.Remaining = bp.Duration
	}
}

func (f *Factory) model(s *SpatialObject, name string) scene.Model {
	if f.resources == nil {
		return nil
	}
	m, err := f.resources.Model(name)
	if err != nil {
		logger.Warn("model not found",
			zap.Uint32("id", s.id),
			zap.String("model", name),
			zap.Error(err))
		return nil
	}
	return m
}

func (f *Factory) walkmesh(s *SpatialObject, name string) *walkmesh.Walkmesh {
	if name == "" || f.resources == nil {
		return nil
	}
	w, err := f.resources.Walkmesh(name)
	if err != nil {
		logger.Warn("walkmesh not found",
			zap.Uint32("id", s.id),
			zap.String("walkmesh", name),
			zap.Error(err))
		return nil
	}
	return w
}
