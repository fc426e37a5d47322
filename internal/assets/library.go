// Package assets loads the YAML asset library and area definitions.
package assets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

// Vec3 is a point written as a three element YAML sequence.
type Vec3 [3]float32

// Vec returns the point as a math vector.
func (v Vec3) Vec() math.Vec3 { return math.Vec3{X: v[0], Y: v[1], Z: v[2]} }

// Library is the root of an asset library file.
type Library struct {
	Models     map[string]ModelDef    `yaml:"models"`
	Walkmeshes map[string]WalkmeshDef `yaml:"walkmeshes"`
	Materials  MaterialsDef           `yaml:"materials"`
	// Blueprints are keyed by object type name, then blueprint name.
	Blueprints map[string]map[string]*object.Blueprint `yaml:"blueprints"`
}

// ModelDef describes a model: bounds, hook nodes and animations.
type ModelDef struct {
	Bounds [2]Vec3            `yaml:"bounds"`
	Hooks  map[string]Vec3    `yaml:"hooks"`
	Clips  map[string]ClipDef `yaml:"clips"`
}

// ClipDef is an animation with per-hook position tracks.
type ClipDef struct {
	Length float32             `yaml:"length"`
	Tracks map[string][]KeyDef `yaml:"tracks"`
}

// KeyDef is a single position keyframe.
type KeyDef struct {
	Time     float32 `yaml:"time"`
	Position Vec3    `yaml:"position"`
}

// WalkmeshDef is an indexed triangle mesh.
type WalkmeshDef struct {
	Vertices []Vec3    `yaml:"vertices"`
	Faces    []FaceDef `yaml:"faces"`
}

// FaceDef is a triangle referencing three vertices.
type FaceDef struct {
	Indices  [3]int `yaml:"indices"`
	Material int    `yaml:"material"`
}

// MaterialsDef lists surface material ids by property.
type MaterialsDef struct {
	Walkable []int `yaml:"walkable"`
	Grass    []int `yaml:"grass"`
}

// LoadLibrary reads an asset library from a YAML file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading library: %w", err)
	}
	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("library %s: %w", path, err)
	}
	return lib, nil
}

// ParseLibrary decodes an asset library.
func ParseLibrary(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parsing library: %w", err)
	}
	for name, wm := range lib.Walkmeshes {
		for i, f := range wm.Faces {
			for _, idx := range f.Indices {
				if idx < 0 || idx >= len(wm.Vertices) {
					return nil, fmt.Errorf("walkmesh %s: face %d: vertex index %d out of range", name, i, idx)
				}
			}
		}
	}
	return &lib, nil
}
