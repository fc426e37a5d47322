package assets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AreaDefinition describes an area: its room layout, visibility, path
// graph, properties and initial object placements.
type AreaDefinition struct {
	Name       string              `yaml:"name"`
	Rooms      []RoomDef           `yaml:"rooms"`
	Visibility map[string][]string `yaml:"visibility"`
	Paths      []PathPointDef      `yaml:"paths"`
	Properties PropertiesDef       `yaml:"properties"`

	Creatures  []PlacementDef `yaml:"creatures"`
	Doors      []PlacementDef `yaml:"doors"`
	Placeables []PlacementDef `yaml:"placeables"`
	Waypoints  []PlacementDef `yaml:"waypoints"`
	Triggers   []PlacementDef `yaml:"triggers"`
	Sounds     []PlacementDef `yaml:"sounds"`
	Cameras    []PlacementDef `yaml:"cameras"`
	Encounters []PlacementDef `yaml:"encounters"`
	Stores     []PlacementDef `yaml:"stores"`
}

// RoomDef places a room model and its walkmesh.
type RoomDef struct {
	Name     string `yaml:"name"`
	Model    string `yaml:"model"`
	Walkmesh string `yaml:"walkmesh"`
	Position Vec3   `yaml:"position"`
}

// PathPointDef is a pathfinding vertex on the ground plane.
type PathPointDef struct {
	X        float32 `yaml:"x"`
	Y        float32 `yaml:"y"`
	Adjacent []int   `yaml:"adjacent"`
}

// PropertiesDef holds area-wide settings.
type PropertiesDef struct {
	Ambient     Vec3              `yaml:"ambient"`
	Fog         FogDef            `yaml:"fog"`
	Grass       GrassDef          `yaml:"grass"`
	Scripts     map[string]string `yaml:"scripts"`
	CameraStyle *CameraStyleDef   `yaml:"camera_style"`
	CombatStyle *CameraStyleDef   `yaml:"combat_camera_style"`
	StealthXP   bool              `yaml:"stealth_xp"`
	Unescapable bool              `yaml:"unescapable"`
}

// FogDef configures distance fog.
type FogDef struct {
	Enabled bool    `yaml:"enabled"`
	Near    float32 `yaml:"near"`
	Far     float32 `yaml:"far"`
	Color   Vec3    `yaml:"color"`
}

// GrassDef configures grass scattering on grass faces.
type GrassDef struct {
	Model   string  `yaml:"model"`
	Density float32 `yaml:"density"`
	// Probabilities select the cluster variant, one entry per variant.
	Probabilities []float32 `yaml:"probabilities"`
}

// CameraStyleDef configures the third-person camera. Pitch is in degrees.
type CameraStyleDef struct {
	Distance  float32 `yaml:"distance"`
	Pitch     float32 `yaml:"pitch"`
	Height    float32 `yaml:"height"`
	ViewAngle float32 `yaml:"view_angle"`
}

// PlacementDef is an object instance in the area. Fields that do not apply
// to a type are ignored.
type PlacementDef struct {
	Blueprint string  `yaml:"blueprint"`
	Tag       string  `yaml:"tag"`
	Position  Vec3    `yaml:"position"`
	Facing    float32 `yaml:"facing"`

	// Trigger and encounter polygon, relative to the position.
	Geometry    []Vec3          `yaml:"geometry"`
	SpawnPoints []SpawnPointDef `yaml:"spawn_points"`

	// Door and trigger links.
	LinkedToModule   string `yaml:"linked_to_module"`
	LinkedTo         string `yaml:"linked_to"`
	TransitionDestin string `yaml:"transition_destin"`

	// Camera
	CameraID    int     `yaml:"camera_id"`
	FieldOfView float32 `yaml:"field_of_view"`
	Pitch       float32 `yaml:"pitch"`
	Height      float32 `yaml:"height"`

	// Waypoint
	MapNote string `yaml:"map_note"`
}

// SpawnPointDef is an encounter spawn location.
type SpawnPointDef struct {
	Position Vec3    `yaml:"position"`
	Facing   float32 `yaml:"facing"`
}

// LoadAreaDefinition reads an area definition from a YAML file.
func LoadAreaDefinition(path string) (*AreaDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading area: %w", err)
	}
	def, err := ParseAreaDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("area %s: %w", path, err)
	}
	return def, nil
}

// ParseAreaDefinition decodes an area definition.
func ParseAreaDefinition(data []byte) (*AreaDefinition, error) {
	var def AreaDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing area: %w", err)
	}
	seen := make(map[string]bool, len(def.Rooms))
	for _, r := range def.Rooms {
		if r.Name == "" {
			return nil, fmt.Errorf("room without name")
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("duplicate room %s", r.Name)
		}
		seen[r.Name] = true
	}
	return &def, nil
}
