// Package model provides headless model instances with hook nodes and
// keyframed animation clips.
package model

import (
	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/pkg/math"
)

// PositionKey is a keyframe of a hook node position, in seconds.
type PositionKey struct {
	Time     float32
	Position math.Vec3
}

// Clip is a named animation. Tracks animate hook nodes by name.
type Clip struct {
	Name   string
	Length float32
	Tracks map[string][]PositionKey
}

// Definition describes a model resource shared by all its instances.
type Definition struct {
	Name   string
	Bounds geometry.AABB
	// Hooks are named attachment nodes in model space.
	Hooks map[string]math.Vec3
	Clips map[string]*Clip
}

// CameraHook is the hook node cameras attach to.
const CameraHook = "camerahook"
