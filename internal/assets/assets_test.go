package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

const testLibrary = `
models:
  room_a:
    bounds: [[-10, -10, 0], [10, 10, 5]]
  cutscene:
    bounds: [[0, 0, 0], [1, 1, 1]]
    hooks:
      camerahook: [0, 0, 2]
    clips:
      cut001w:
        length: 2
        tracks:
          camerahook:
            - {time: 0, position: [0, 0, 2]}
            - {time: 2, position: [4, 0, 2]}
walkmeshes:
  floor:
    vertices: [[-10, -10, 0], [10, -10, 0], [10, 10, 0], [-10, 10, 0]]
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
      model: cutscene
      faction: 2
      run_speed: 5
      scripts:
        notice: guard_notice
`

func TestParseLibrary(t *testing.T) {
	lib, err := ParseLibrary([]byte(testLibrary))
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	if len(lib.Models) != 2 || len(lib.Walkmeshes) != 1 {
		t.Errorf("models=%d walkmeshes=%d", len(lib.Models), len(lib.Walkmeshes))
	}
	bp := lib.Blueprints["creature"]["guard"]
	if bp == nil {
		t.Fatal("guard blueprint missing")
	}
	if bp.Faction != 2 || bp.RunSpeed != 5 || bp.Scripts[object.EventNotice] != "guard_notice" {
		t.Errorf("guard blueprint = %+v", bp)
	}
}

func TestParseLibraryRejectsBadIndex(t *testing.T) {
	data := []byte(`
walkmeshes:
  broken:
    vertices: [[0, 0, 0]]
    faces:
      - {indices: [0, 1, 2]}
`)
	if _, err := ParseLibrary(data); err == nil {
		t.Error("expected error for out of range vertex index")
	}
}

func newTestManager(t *testing.T, soundDir string) *Manager {
	t.Helper()
	lib, err := ParseLibrary([]byte(testLibrary))
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	return NewManager(lib, soundDir)
}

func TestManagerWalkmesh(t *testing.T) {
	m := newTestManager(t, "")

	wm, err := m.Walkmesh("floor")
	if err != nil {
		t.Fatalf("Walkmesh: %v", err)
	}
	faces := wm.Faces()
	if len(faces) != 2 {
		t.Fatalf("faces = %d, want 2", len(faces))
	}
	if !faces[0].Walkable || faces[0].Grass {
		t.Errorf("face 0 flags = %+v", faces[0])
	}
	if !faces[1].Walkable || !faces[1].Grass {
		t.Errorf("face 1 flags = %+v", faces[1])
	}

	again, _ := m.Walkmesh("floor")
	if again != wm {
		t.Error("walkmesh should be cached")
	}
	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d, %d, want 1, 1", hits, misses)
	}

	if _, err := m.Walkmesh("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing walkmesh error = %v, want ErrNotFound", err)
	}
}

func TestManagerModelInstances(t *testing.T) {
	m := newTestManager(t, "")

	a, err := m.Model("cutscene")
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	b, _ := m.Model("cutscene")
	if a == b {
		t.Error("each Model call should return a new instance")
	}

	a.SetLocalTransform(math.Translate(math.Vec3{X: 10}))
	if !a.PlayAnimation("cut001w") {
		t.Fatal("clip cut001w should exist")
	}
	a.Update(1)
	p, ok := a.NodeAbsolutePosition("camerahook")
	if !ok || p != (math.Vec3{X: 12, Z: 2}) {
		t.Errorf("camerahook = %+v, %v, want {12 0 2}", p, ok)
	}
	if q, _ := b.NodeAbsolutePosition("camerahook"); q != (math.Vec3{Z: 2}) {
		t.Errorf("second instance hook = %+v, want rest pose", q)
	}

	if _, err := m.Model("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing model error = %v", err)
	}
}

func TestManagerBlueprint(t *testing.T) {
	m := newTestManager(t, "")
	if _, ok := m.Blueprint(object.TypeCreature, "guard"); !ok {
		t.Error("guard should resolve")
	}
	if _, ok := m.Blueprint(object.TypeDoor, "guard"); ok {
		t.Error("blueprints are per type")
	}
}

func TestManagerLoadSound(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bird.wav"), []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestManager(t, dir)

	data, err := m.LoadSound("bird")
	if err != nil || string(data) != "RIFF" {
		t.Errorf("LoadSound = %q, %v", data, err)
	}
	if _, err := m.LoadSound("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing sound error = %v", err)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache[int]()
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get = %d, %v", v, ok)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
	if h, m := c.Stats(); h != 0 || m != 0 {
		t.Errorf("Stats after Clear = %d, %d", h, m)
	}
}

const testArea = `
name: testarea
rooms:
  - {name: room_a, model: room_a, walkmesh: floor}
  - {name: room_b, model: room_a}
visibility:
  room_a: [room_b]
paths:
  - {x: 0, y: 0, adjacent: [1]}
  - {x: 5, y: 0}
properties:
  ambient: [0.2, 0.2, 0.2]
  fog: {enabled: true, near: 10, far: 100}
  grass: {model: grass, density: 1, probabilities: [0.5, 0.5]}
  scripts: {heartbeat: area_hb}
  camera_style: {distance: 5, pitch: 25, height: 2, view_angle: 50}
creatures:
  - {blueprint: guard, tag: guard1, position: [1, 2, 0], facing: 1.5}
triggers:
  - blueprint: exit
    position: [5, 5, 0]
    geometry: [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0]]
    linked_to_module: next
`

func TestParseAreaDefinition(t *testing.T) {
	def, err := ParseAreaDefinition([]byte(testArea))
	if err != nil {
		t.Fatalf("ParseAreaDefinition: %v", err)
	}
	if def.Name != "testarea" || len(def.Rooms) != 2 || len(def.Paths) != 2 {
		t.Errorf("def = %+v", def)
	}
	if got := def.Visibility["room_a"]; len(got) != 1 || got[0] != "room_b" {
		t.Errorf("visibility = %v", got)
	}
	if def.Properties.CameraStyle == nil || def.Properties.CameraStyle.Distance != 5 {
		t.Errorf("camera style = %+v", def.Properties.CameraStyle)
	}
	if len(def.Creatures) != 1 || def.Creatures[0].Tag != "guard1" {
		t.Errorf("creatures = %+v", def.Creatures)
	}
	if len(def.Triggers) != 1 || len(def.Triggers[0].Geometry) != 4 {
		t.Errorf("triggers = %+v", def.Triggers)
	}
}

func TestParseAreaDefinitionRejectsDuplicateRooms(t *testing.T) {
	data := []byte("rooms:\n  - {name: a}\n  - {name: a}\n")
	if _, err := ParseAreaDefinition(data); err == nil {
		t.Error("expected duplicate room error")
	}
}

func TestLoadAreaDefinitionMissingFile(t *testing.T) {
	if _, err := LoadAreaDefinition(filepath.Join(t.TempDir(), "none.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped ErrNotExist", err)
	}
}
