package area

import (
	"testing"

	"github.com/Faultbox/starforge/internal/assets"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

const loadLibrary = `
models:
  room_main:
    bounds: [[-20, -20, 0], [20, 20, 6]]
  barrel:
    bounds: [[-0.5, -0.5, 0], [0.5, 0.5, 1]]
  guard:
    bounds: [[-0.4, -0.4, 0], [0.4, 0.4, 1.8]]
walkmeshes:
  main_floor:
    vertices: [[-20, -20, 0], [20, -20, 0], [20, 20, 0], [-20, 20, 0]]
    faces:
      - {indices: [0, 1, 2], material: 1}
      - {indices: [0, 2, 3], material: 3}
materials:
  walkable: [1, 3]
  grass: [3]
blueprints:
  creature:
    guard:
      tag: guard
      model: guard
      faction: 1
      scripts:
        spawn: guard_spawn
  placeable:
    barrel:
      tag: barrel
      model: barrel
      selectable: true
`

const loadArea = `
name: courtyard
rooms:
  - {name: main, model: room_main, walkmesh: main_floor}
visibility:
  main: []
paths:
  - {x: -10, y: 0, adjacent: [1, 2]}
  - {x: 100, y: 100, adjacent: [0, 2]}
  - {x: 10, y: 0, adjacent: [0, 1]}
properties:
  ambient: [0.2, 0.2, 0.3]
  fog: {enabled: true, near: 10, far: 50, color: [0.5, 0.5, 0.5]}
  grass: {model: grass, density: 0.1, probabilities: [1]}
  scripts:
    heartbeat: area_hb
    enter: area_enter
  camera_style: {distance: 5, pitch: 45, height: 2, view_angle: 50}
  unescapable: true
creatures:
  - {blueprint: guard, tag: gate_guard, position: [3, 4, 10], facing: 1.5}
placeables:
  - {blueprint: barrel, position: [-3, 0, 0]}
waypoints:
  - {tag: wp_entry, position: [0, 0, 0], map_note: Entrance}
triggers:
  - tag: exit
    position: [15, 0, 0]
    geometry: [[-1, -1, 0], [1, -1, 0], [1, 1, 0], [-1, 1, 0]]
    linked_to_module: m02
    linked_to: wp_m02_entry
    transition_destin: Lower Hall
cameras:
  - {camera_id: 4, position: [0, -10, 0], pitch: 10, height: 3}
`

func loadTestArea(t *testing.T) (*Area, *fakeScripts) {
	t.Helper()
	lib, err := assets.ParseLibrary([]byte(loadLibrary))
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	def, err := assets.ParseAreaDefinition([]byte(loadArea))
	if err != nil {
		t.Fatalf("ParseAreaDefinition: %v", err)
	}
	mgr := assets.NewManager(lib, t.TempDir())
	t.Cleanup(mgr.Close)

	scripts := &fakeScripts{}
	a := New("unnamed", Services{
		Resources: mgr,
		Factory:   object.NewFactory(mgr, mgr),
		Scripts:   scripts,
	}, DefaultOptions())
	if err := a.Load(def); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return a, scripts
}

func TestLoad(t *testing.T) {
	a, scripts := loadTestArea(t)

	if a.Name() != "courtyard" {
		t.Errorf("name = %q", a.Name())
	}
	room := a.Room("main")
	if room == nil || room.Model() == nil || room.Walkmesh() == nil {
		t.Fatalf("room main = %+v", room)
	}
	if len(room.Walkmesh().GrassFaces()) != 1 {
		t.Errorf("grass faces = %d, want 1", len(room.Walkmesh().GrassFaces()))
	}

	guard, ok := a.ObjectByTag("gate_guard", 0).(*object.Creature)
	if !ok {
		t.Fatal("gate_guard missing")
	}
	if guard.Faction != 1 || !nearVec(guard.Position(), math.Vec3{X: 3, Y: 4}) || guard.Room() != "main" {
		t.Errorf("guard faction=%d pos=%v room=%q", guard.Faction, guard.Position(), guard.Room())
	}
	if !near(guard.Facing(), 1.5) {
		t.Errorf("guard facing = %v", guard.Facing())
	}
	if a.ObjectByTag("barrel", 0) == nil {
		t.Error("barrel missing")
	}
	wp, ok := a.ObjectByTag("wp_entry", 0).(*object.Waypoint)
	if !ok || wp.MapNote != "Entrance" {
		t.Errorf("waypoint = %+v", wp)
	}
	trig, ok := a.ObjectByTag("exit", 0).(*object.Trigger)
	if !ok || len(trig.Geometry) != 4 || trig.LinkedToModule != "m02" || trig.LinkedTo != "wp_m02_entry" ||
		trig.TransitionDestin != "Lower Hall" {
		t.Errorf("trigger = %+v", trig)
	}
	cams := a.ObjectsByType(object.TypeCamera)
	if len(cams) != 1 || cams[0].(*object.Camera).CameraID != 4 || cams[0].(*object.Camera).Height != 3 {
		t.Errorf("cameras = %+v", cams)
	}

	// Creatures load before placeables.
	if objs := a.Objects(); objs[0] != guard {
		t.Errorf("first object = %v, want creature", objs[0].Tag())
	}

	if got := len(a.Pathfinder().Points()); got != 2 {
		t.Errorf("path points = %d, want 2 after dropping the off-mesh one", got)
	}
	if adj := a.Pathfinder().Points()[0].Adjacent; len(adj) != 1 || adj[0] != 1 {
		t.Errorf("adjacency = %v, want remapped [1]", adj)
	}

	if a.Ambient() != (math.Vec3{X: 0.2, Y: 0.2, Z: 0.3}) || !a.Fog().Enabled || a.Fog().Far != 50 {
		t.Errorf("ambient = %v, fog = %+v", a.Ambient(), a.Fog())
	}
	style := a.ThirdPersonCamera().Style()
	if style.Distance != 5 || !near(style.Pitch, math.Pi/4) {
		t.Errorf("camera style = %+v", style)
	}
	if !a.IsUnescapable() || a.Script(object.EventHeartbeat) != "area_hb" {
		t.Error("properties not applied")
	}
	if len(scripts.calls) != 0 {
		t.Errorf("Load ran scripts: %+v", scripts.calls)
	}

	a.RunSpawnScripts()
	if spawn := scripts.named("guard_spawn"); len(spawn) != 1 || spawn[0].caller != guard.ID() {
		t.Errorf("spawn calls = %+v", spawn)
	}
}

func TestLoadNilDefinition(t *testing.T) {
	env := newTestEnv(t)
	if err := env.area.Load(nil); err == nil {
		t.Error("Load(nil) succeeded")
	}
}
