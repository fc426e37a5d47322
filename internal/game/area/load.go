package area

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/assets"
	"github.com/Faultbox/starforge/internal/engine/camera"
	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/engine/walkmesh"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/game/pathfinder"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

// Location is a position with a facing.
type Location struct {
	Position math.Vec3
	Facing   float32
}

// Load builds the area from a definition: rooms, visibility, the path
// graph, properties and then the objects in a fixed type order.
func (a *Area) Load(def *assets.AreaDefinition) error {
	if def == nil {
		return fmt.Errorf("load area %s: nil definition", a.name)
	}
	if def.Name != "" {
		a.name = def.Name
	}
	a.loadRooms(def.Rooms)
	a.SetVisibility(def.Visibility)
	a.loadPaths(def.Paths)
	a.loadProperties(def.Properties)

	lists := []struct {
		typ        object.Type
		placements []assets.PlacementDef
	}{
		{object.TypeCreature, def.Creatures},
		{object.TypeDoor, def.Doors},
		{object.TypePlaceable, def.Placeables},
		{object.TypeWaypoint, def.Waypoints},
		{object.TypeTrigger, def.Triggers},
		{object.TypeSound, def.Sounds},
		{object.TypeCamera, def.Cameras},
		{object.TypeEncounter, def.Encounters},
		{object.TypeStore, def.Stores},
	}
	for _, list := range lists {
		for i := range list.placements {
			if err := a.loadPlacement(list.typ, &list.placements[i]); err != nil {
				return fmt.Errorf("load area %s: %w", a.name, err)
			}
		}
	}

	logger.Info("area loaded",
		zap.String("area", a.name),
		zap.Int("rooms", len(a.rooms)),
		zap.Int("objects", len(a.objects)),
		zap.Int("path_points", len(a.pathfinder.Points())))
	return nil
}

func (a *Area) loadRooms(rooms []assets.RoomDef) {
	for _, def := range rooms {
		var m scene.Model
		var wm *walkmesh.Walkmesh
		if a.services.Resources != nil {
			modelName := def.Model
			if modelName == "" {
				modelName = def.Name
			}
			var err error
			if m, err = a.services.Resources.Model(modelName); err != nil {
				logger.Warn("room model not found", zap.String("room", def.Name), zap.Error(err))
				m = nil
			}
			if def.Walkmesh != "" {
				if wm, err = a.services.Resources.Walkmesh(def.Walkmesh); err != nil {
					logger.Warn("room walkmesh not found", zap.String("room", def.Name), zap.Error(err))
					wm = nil
				}
			}
		}
		a.AddRoom(NewRoom(def.Name, def.Position.Vec(), m, wm))
	}
}

// loadPaths builds the path graph. Points without ground under them are
// dropped along with their edges.
func (a *Area) loadPaths(defs []assets.PathPointDef) {
	index := make(map[int]int, len(defs))
	points := make([]pathfinder.Point, 0, len(defs))
	for i, p := range defs {
		_, z, ok := a.ElevationAt(math.Vec2{X: p.X, Y: p.Y}, false, 0)
		if !ok {
			logger.Warn("path point elevation not found", zap.Int("point", i))
			continue
		}
		index[i] = len(points)
		points = append(points, pathfinder.Point{Position: math.Vec3{X: p.X, Y: p.Y, Z: z}})
	}
	for i, p := range defs {
		from, ok := index[i]
		if !ok {
			continue
		}
		for _, adj := range p.Adjacent {
			if to, ok := index[adj]; ok {
				points[from].Adjacent = append(points[from].Adjacent, to)
			}
		}
	}
	a.pathfinder = pathfinder.New(points)
}

func (a *Area) loadProperties(p assets.PropertiesDef) {
	a.ambient = p.Ambient.Vec()
	a.fog = scene.Fog{
		Enabled: p.Fog.Enabled,
		Near:    p.Fog.Near,
		Far:     p.Fog.Far,
		Color:   p.Fog.Color.Vec(),
	}
	a.grass = Grass{
		Model:         p.Grass.Model,
		Density:       p.Grass.Density,
		Probabilities: append([]float32(nil), p.Grass.Probabilities...),
	}
	for event, name := range p.Scripts {
		a.SetScript(object.ScriptEvent(event), name)
	}
	def, combat := a.cameraStyle, a.combatStyle
	if p.CameraStyle != nil {
		def = cameraStyle(*p.CameraStyle)
	}
	if p.CombatStyle != nil {
		combat = cameraStyle(*p.CombatStyle)
	}
	a.SetCameraStyles(def, combat)
	a.stealthXP.Enabled = p.StealthXP
	a.unescapable = p.Unescapable
}

func cameraStyle(d assets.CameraStyleDef) camera.Style {
	return camera.Style{
		Distance:  d.Distance,
		Pitch:     math.Radians(d.Pitch),
		Height:    d.Height,
		ViewAngle: d.ViewAngle,
	}
}

func (a *Area) loadPlacement(typ object.Type, p *assets.PlacementDef) error {
	obj, err := a.services.Factory.New(typ, p.Blueprint)
	if err != nil {
		return fmt.Errorf("placing %s %q: %w", typ, p.Blueprint, err)
	}
	s := obj.Spatial()
	if p.Tag != "" {
		s.SetTag(p.Tag)
	}
	s.SetPosition(p.Position.Vec())
	s.SetFacing(p.Facing)

	switch o := obj.(type) {
	case *object.Creature:
		a.LandObject(o)
	case *object.Door:
		if p.LinkedToModule != "" {
			o.LinkedToModule = p.LinkedToModule
		}
		if p.LinkedTo != "" {
			o.LinkedTo = p.LinkedTo
		}
	case *object.Waypoint:
		o.MapNote = p.MapNote
	case *object.Trigger:
		o.Geometry = vectors(p.Geometry)
		if p.LinkedToModule != "" {
			o.LinkedToModule = p.LinkedToModule
		}
		if p.LinkedTo != "" {
			o.LinkedTo = p.LinkedTo
		}
		o.TransitionDestin = p.TransitionDestin
	case *object.Camera:
		o.CameraID = p.CameraID
		if p.FieldOfView > 0 {
			o.FieldOfView = p.FieldOfView
		}
		o.Pitch = math.Radians(p.Pitch)
		o.Height = p.Height
	case *object.Encounter:
		o.Geometry = vectors(p.Geometry)
		for _, sp := range p.SpawnPoints {
			o.SpawnPoints = append(o.SpawnPoints, object.SpawnPoint{Position: sp.Position.Vec(), Facing: sp.Facing})
		}
	}
	a.Add(obj)
	return nil
}

func vectors(vs []assets.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(vs))
	for i, v := range vs {
		out[i] = v.Vec()
	}
	return out
}

// CreateObject instantiates a creature, item or placeable from a blueprint
// at a location, adds it to the area and the scene, and runs the spawn
// script of creatures. Other types are logged and yield nil.
func (a *Area) CreateObject(typ object.Type, blueprint string, loc Location) object.Object {
	switch typ {
	case object.TypeCreature, object.TypeItem, object.TypePlaceable:
	default:
		logger.Warn("create object: unsupported type", zap.Stringer("type", typ))
		return nil
	}
	obj, err := a.services.Factory.New(typ, blueprint)
	if err != nil {
		logger.Warn("create object failed", zap.Error(err))
		return nil
	}
	s := obj.Spatial()
	s.SetPosition(loc.Position)
	s.SetFacing(loc.Facing)

	a.Add(obj)
	if m := obj.Model(); m != nil {
		a.services.Graph.AddRoot(m)
	}
	if c, ok := obj.(*object.Creature); ok {
		a.runSpawnScript(c)
	}
	return obj
}

// RunSpawnScripts runs the spawn script of every creature.
func (a *Area) RunSpawnScripts() {
	for _, obj := range a.objectsByType[object.TypeCreature] {
		a.runSpawnScript(obj.(*object.Creature))
	}
}

func (a *Area) runSpawnScript(c *object.Creature) {
	if name := c.Script(object.EventSpawn); name != "" {
		a.runScript(name, c.ID(), object.InvalidID)
	}
}

// RunOnEnterScript runs the area enter script with the leader as triggerer.
func (a *Area) RunOnEnterScript() { a.runLeaderScript(object.EventEnter) }

// RunOnExitScript runs the area exit script with the leader as triggerer.
func (a *Area) RunOnExitScript() { a.runLeaderScript(object.EventExit) }

func (a *Area) runLeaderScript(event object.ScriptEvent) {
	name := a.scripts[event]
	if name == "" {
		return
	}
	leader := a.PartyLeader()
	if leader == nil {
		return
	}
	a.runScript(name, a.id, leader.ID())
}
