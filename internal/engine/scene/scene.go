// Package scene holds the renderable state of an area and publishes
// immutable snapshots for renderer and audio consumers.
package scene

import (
	"sync/atomic"

	"github.com/Faultbox/starforge/pkg/math"
)

// Fog settings applied to the whole scene.
type Fog struct {
	Enabled bool
	Near    float32
	Far     float32
	Color   math.Vec3
}

// GrassCluster is a single grass tuft scattered on a walkmesh face.
type GrassCluster struct {
	Position math.Vec3
	Variant  int
}

// RootState is the published state of a root model.
type RootState struct {
	Name      string
	Transform math.Mat4
	Visible   bool
	Culled    bool
}

// Snapshot is an immutable view of the graph at the end of a tick.
type Snapshot struct {
	Frame      uint64
	Camera     CameraState
	Ambient    math.Vec3
	Fog        Fog
	Roots      []RootState
	Grass      []GrassCluster
	GrassModel string
}

// CameraState is the camera used to render a snapshot.
type CameraState struct {
	Position   math.Vec3
	View       math.Mat4
	Projection math.Mat4
}

// Graph owns the root models of an area. It is written by the simulation
// thread only; readers use Latest.
type Graph struct {
	roots      []Model
	grass      []GrassCluster
	grassModel string
	ambient    math.Vec3
	fog        Fog
	camera     CameraState

	frame  uint64
	latest atomic.Pointer[Snapshot]
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Clear removes all roots and grass and resets lighting.
func (g *Graph) Clear() {
	g.roots = nil
	g.grass = nil
	g.grassModel = ""
	g.ambient = math.Vec3{}
	g.fog = Fog{}
}

// AddRoot adds a model to the graph. Adding the same model twice is a no-op.
func (g *Graph) AddRoot(m Model) {
	if m == nil {
		return
	}
	for _, r := range g.roots {
		if r == m {
			return
		}
	}
	g.roots = append(g.roots, m)
}

// RemoveRoot removes a model from the graph.
func (g *Graph) RemoveRoot(m Model) {
	for i, r := range g.roots {
		if r == m {
			g.roots = append(g.roots[:i], g.roots[i+1:]...)
			return
		}
	}
}

// Roots returns the root models in insertion order.
func (g *Graph) Roots() []Model {
	return g.roots
}

// SetGrass replaces the grass clusters and the model they instance.
func (g *Graph) SetGrass(model string, clusters []GrassCluster) {
	g.grassModel = model
	g.grass = clusters
}

// Grass returns the grass clusters.
func (g *Graph) Grass() []GrassCluster {
	return g.grass
}

func (g *Graph) SetAmbient(c math.Vec3) { g.ambient = c }

func (g *Graph) Ambient() math.Vec3 { return g.ambient }

func (g *Graph) SetFog(f Fog) { g.fog = f }

func (g *Graph) Fog() Fog { return g.fog }

// SetCamera records the camera used for the next snapshot.
func (g *Graph) SetCamera(c CameraState) { g.camera = c }

// Publish stores a snapshot of the current state.
func (g *Graph) Publish() *Snapshot {
	g.frame++
	snap := &Snapshot{
		Frame:      g.frame,
		Camera:     g.camera,
		Ambient:    g.ambient,
		Fog:        g.fog,
		Roots:      make([]RootState, 0, len(g.roots)),
		Grass:      append([]GrassCluster(nil), g.grass...),
		GrassModel: g.grassModel,
	}
	for _, m := range g.roots {
		snap.Roots = append(snap.Roots, RootState{
			Name:      m.Name(),
			Transform: m.AbsoluteTransform(),
			Visible:   m.IsVisible(),
			Culled:    m.IsCulled(),
		})
	}
	g.latest.Store(snap)
	return snap
}

// Latest returns the most recently published snapshot, or nil.
// Safe to call from any goroutine.
func (g *Graph) Latest() *Snapshot {
	return g.latest.Load()
}
