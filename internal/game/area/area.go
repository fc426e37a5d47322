// Package area implements the per-frame simulation of a game area: object
// lifecycle, spatial queries, room visibility, movement, perception,
// triggers and cameras.
package area

import (
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/engine/camera"
	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/game/pathfinder"
	"github.com/Faultbox/starforge/internal/game/reputation"
	"github.com/Faultbox/starforge/internal/game/script"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

// ModuleTransitioner schedules a move of the party to another module.
type ModuleTransitioner interface {
	ScheduleModuleTransition(module, entry string)
}

// Services are the collaborators an area consumes. Any of them may be nil
// except Factory and Graph, which New fills in when missing.
type Services struct {
	Resources    scene.Provider
	Factory      *object.Factory
	Scripts      script.Runner
	Sounds       object.SoundPlayer
	Reputes      reputation.Reputes
	Transitioner ModuleTransitioner
	Graph        *scene.Graph
}

// Options tune the update loop.
type Options struct {
	HeartbeatInterval  time.Duration
	PerceptionInterval time.Duration
	MaxSoundCount      int
	SelectionDistance  float32
	Aspect             float32
	FieldOfView        float32 // Degrees, first-person camera
	CameraType         CameraType
}

// DefaultOptions returns the stock loop settings.
func DefaultOptions() Options {
	return Options{
		HeartbeatInterval:  6 * time.Second,
		PerceptionInterval: time.Second,
		MaxSoundCount:      4,
		SelectionDistance:  64,
		Aspect:             16.0 / 9.0,
		FieldOfView:        camera.DefaultFOV,
		CameraType:         CameraThirdPerson,
	}
}

// Area owns the rooms and objects of a loaded area.
type Area struct {
	object.ActionQueue

	id       uint32
	name     string
	services Services
	opts     Options

	rooms      map[string]*Room
	roomOrder  []string
	visibility map[string]mapset.Set[string]
	pathfinder *pathfinder.PathFinder

	objects        []object.Object
	objectsByID    map[uint32]object.Object
	objectsByTag   map[string][]object.Object
	objectsByType  map[object.Type][]object.Object
	pendingDestroy []uint32
	destroyQueued  mapset.Set[uint32]

	collision *CollisionDetector

	ambient     math.Vec3
	fog         scene.Fog
	grass       Grass
	scripts     map[object.ScriptEvent]string
	cameraStyle camera.Style
	combatStyle camera.Style
	stealthXP   StealthXP
	unescapable bool

	cameraType  CameraType
	firstPerson *camera.FirstPersonCamera
	thirdPerson *camera.ThirdPersonCamera
	static      *camera.StaticCamera
	animated    *camera.AnimatedCamera
	dialog      *camera.DialogCamera

	party  []uint32
	leader uint32

	selectedObject  uint32
	hilightedObject uint32

	paused          bool
	heartbeatTimer  float32
	perceptionTimer float32
}

// StealthXP is the stealth experience state of an area.
type StealthXP struct {
	Enabled   bool
	Max       int
	Current   int
	Decrement int
}

// New creates an empty area.
func New(name string, services Services, opts Options) *Area {
	if services.Factory == nil {
		services.Factory = object.NewFactory(nil, services.Resources)
	}
	if services.Graph == nil {
		services.Graph = scene.NewGraph()
	}
	a := &Area{
		name:            name,
		services:        services,
		opts:            opts,
		rooms:           make(map[string]*Room),
		visibility:      make(map[string]mapset.Set[string]),
		objectsByID:     make(map[uint32]object.Object),
		objectsByTag:    make(map[string][]object.Object),
		objectsByType:   make(map[object.Type][]object.Object),
		destroyQueued:   mapset.New[uint32](),
		scripts:         make(map[object.ScriptEvent]string),
		cameraStyle:     camera.DefaultStyle,
		combatStyle:     camera.CombatStyle,
		cameraType:      opts.CameraType,
		leader:          object.InvalidID,
		selectedObject:  object.InvalidID,
		hilightedObject: object.InvalidID,
		heartbeatTimer:  seconds(opts.HeartbeatInterval),
	}
	a.id = services.Factory.NextID()
	a.collision = &CollisionDetector{area: a}
	a.initCameras(math.Vec3{}, 0)
	return a
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// ID returns the object id of the area, used as script caller.
func (a *Area) ID() uint32 { return a.id }

func (a *Area) Name() string { return a.name }

// CollisionDetector returns the raycaster over this area.
func (a *Area) CollisionDetector() *CollisionDetector { return a.collision }

// Pathfinder returns the path graph. It is nil before Load.
func (a *Area) Pathfinder() *pathfinder.PathFinder { return a.pathfinder }

// SetPaused stops everything but visibility, sounds and selection.
func (a *Area) SetPaused(paused bool) { a.paused = paused }

func (a *Area) IsPaused() bool { return a.paused }

func (a *Area) SetStealthXP(s StealthXP) { a.stealthXP = s }

func (a *Area) StealthXP() StealthXP { return a.stealthXP }

func (a *Area) SetUnescapable(unescapable bool) { a.unescapable = unescapable }

func (a *Area) IsUnescapable() bool { return a.unescapable }

func (a *Area) Ambient() math.Vec3 { return a.ambient }

func (a *Area) Fog() scene.Fog { return a.fog }

// GrassSettings returns the grass parameters loaded with the area.
func (a *Area) GrassSettings() Grass { return a.grass }

// SetScript binds an area-level event script.
func (a *Area) SetScript(event object.ScriptEvent, name string) {
	if name == "" {
		delete(a.scripts, event)
		return
	}
	a.scripts[event] = name
}

func (a *Area) Script(event object.ScriptEvent) string { return a.scripts[event] }

// Update advances the area by dt seconds.
func (a *Area) Update(dt float32) {
	a.sweepDestroyed()
	a.updateVisibility()
	a.updateSounds()
	a.updateObjectSelection()

	if !a.paused {
		a.executeAreaActions(dt)

		for _, name := range a.roomOrder {
			a.rooms[name].Update(dt)
		}
		for _, obj := range a.objects {
			obj.Update(dt)
			if t, ok := obj.(*object.Trigger); ok {
				a.updateTriggerTenants(t)
			}
			if !obj.IsDead() {
				a.executeActions(obj, dt)
			}
		}

		a.updatePerception(dt)
		a.updateHeartbeat(dt)
	}

	cam := a.ActiveCamera()
	cam.Update(dt)
	a.services.Graph.SetCamera(scene.CameraState{
		Position:   cam.Position(),
		View:       cam.View(),
		Projection: cam.Projection(),
	})
	a.services.Graph.Publish()
}

func (a *Area) updateHeartbeat(dt float32) {
	a.heartbeatTimer -= dt
	if a.heartbeatTimer > 0 {
		return
	}
	a.heartbeatTimer = seconds(a.opts.HeartbeatInterval)

	if name := a.scripts[object.EventHeartbeat]; name != "" {
		a.runScript(name, a.id, object.InvalidID)
	}
	for _, obj := range a.objects {
		if name := obj.Spatial().Script(object.EventHeartbeat); name != "" {
			a.runScript(name, obj.ID(), object.InvalidID)
		}
	}
}

func (a *Area) runScript(name string, caller, triggerer uint32) {
	if a.services.Scripts == nil {
		logger.Debug("no script runner", zap.String("script", name))
		return
	}
	a.services.Scripts.Run(name, caller, triggerer)
}
