package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/internal/engine/model"
	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/engine/walkmesh"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

// ErrNotFound is returned for resources missing from the library.
var ErrNotFound = errors.New("resource not found")

// Manager resolves models, walkmeshes, blueprints and sounds from a library.
type Manager struct {
	library  *Library
	soundDir string

	walkable mapset.Set[int]
	grass    mapset.Set[int]

	models     *Cache[*model.Definition]
	walkmeshes *Cache[*walkmesh.Walkmesh]
	sounds     *Cache[[]byte]
}

// NewManager creates a manager over a library. Sounds are read from
// soundDir as <name>.wav.
func NewManager(lib *Library, soundDir string) *Manager {
	if lib == nil {
		lib = &Library{}
	}
	m := &Manager{
		library:    lib,
		soundDir:   soundDir,
		walkable:   mapset.New[int](),
		grass:      mapset.New[int](),
		models:     NewCache[*model.Definition](),
		walkmeshes: NewCache[*walkmesh.Walkmesh](),
		sounds:     NewCache[[]byte](),
	}
	for _, id := range lib.Materials.Walkable {
		m.walkable.Put(id)
	}
	for _, id := range lib.Materials.Grass {
		m.grass.Put(id)
	}
	return m
}

// IsWalkable reports whether a surface material can be walked on.
func (m *Manager) IsWalkable(material int) bool { return m.walkable.Has(material) }

// IsGrass reports whether grass grows on a surface material.
func (m *Manager) IsGrass(material int) bool { return m.grass.Has(material) }

// Model instantiates a new model node. Definitions are shared between
// instances.
func (m *Manager) Model(name string) (scene.Model, error) {
	def, ok := m.models.Get(name)
	if !ok {
		src, found := m.library.Models[name]
		if !found {
			return nil, fmt.Errorf("model %s: %w", name, ErrNotFound)
		}
		def = buildModel(name, src)
		m.models.Set(name, def)
	}
	return model.NewNode(def), nil
}

// Walkmesh returns the named walkmesh with face flags resolved from the
// material tables.
func (m *Manager) Walkmesh(name string) (*walkmesh.Walkmesh, error) {
	if wm, ok := m.walkmeshes.Get(name); ok {
		return wm, nil
	}
	src, found := m.library.Walkmeshes[name]
	if !found {
		return nil, fmt.Errorf("walkmesh %s: %w", name, ErrNotFound)
	}
	faces := make([]walkmesh.Face, 0, len(src.Faces))
	for _, f := range src.Faces {
		faces = append(faces, walkmesh.Face{
			Vertices: [3]math.Vec3{
				src.Vertices[f.Indices[0]].Vec(),
				src.Vertices[f.Indices[1]].Vec(),
				src.Vertices[f.Indices[2]].Vec(),
			},
			Material: f.Material,
			Walkable: m.IsWalkable(f.Material),
			Grass:    m.IsGrass(f.Material),
		})
	}
	wm := walkmesh.New(name, faces)
	m.walkmeshes.Set(name, wm)
	logger.Debug("walkmesh built", zap.String("name", name), zap.Int("faces", len(faces)))
	return wm, nil
}

// Blueprint returns a blueprint by object type and name.
func (m *Manager) Blueprint(typ object.Type, name string) (*object.Blueprint, bool) {
	byName, ok := m.library.Blueprints[typ.String()]
	if !ok {
		return nil, false
	}
	bp, ok := byName[name]
	return bp, ok && bp != nil
}

// LoadSound reads a WAV file from the sound directory.
func (m *Manager) LoadSound(name string) ([]byte, error) {
	if data, ok := m.sounds.Get(name); ok {
		return data, nil
	}
	path := filepath.Join(m.soundDir, name+".wav")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("sound %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("reading sound %s: %w", name, err)
	}
	m.sounds.Set(name, data)
	return data, nil
}

// Stats returns combined cache hits and misses.
func (m *Manager) Stats() (hits, misses int) {
	for _, s := range []func() (int, int){m.models.Stats, m.walkmeshes.Stats, m.sounds.Stats} {
		h, mi := s()
		hits += h
		misses += mi
	}
	return hits, misses
}

// Close drops all cached resources.
func (m *Manager) Close() {
	m.models.Clear()
	m.walkmeshes.Clear()
	m.sounds.Clear()
}

func buildModel(name string, src ModelDef) *model.Definition {
	def := &model.Definition{
		Name:   name,
		Bounds: geometry.NewAABB(src.Bounds[0].Vec(), src.Bounds[1].Vec()),
		Hooks:  make(map[string]math.Vec3, len(src.Hooks)),
		Clips:  make(map[string]*model.Clip, len(src.Clips)),
	}
	for hook, p := range src.Hooks {
		def.Hooks[hook] = p.Vec()
	}
	for clipName, c := range src.Clips {
		clip := &model.Clip{
			Name:   clipName,
			Length: c.Length,
			Tracks: make(map[string][]model.PositionKey, len(c.Tracks)),
		}
		for node, keys := range c.Tracks {
			track := make([]model.PositionKey, 0, len(keys))
			for _, k := range keys {
				track = append(track, model.PositionKey{Time: k.Time, Position: k.Position.Vec()})
			}
			clip.Tracks[node] = track
		}
		def.Clips[clipName] = clip
	}
	return def
}
