package model

import (
	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/pkg/math"
)

// Node is a model instance placed in the world.
type Node struct {
	def       *Definition
	transform math.Mat4
	visible   bool
	culled    bool

	clip     *Clip
	clipTime float32
}

// NewNode instantiates a model definition at the identity transform.
func NewNode(def *Definition) *Node {
	return &Node{
		def:       def,
		transform: math.Identity(),
		visible:   true,
	}
}

func (n *Node) Name() string { return n.def.Name }

func (n *Node) LocalTransform() math.Mat4 { return n.transform }

func (n *Node) SetLocalTransform(m math.Mat4) { n.transform = m }

// AbsoluteTransform equals the local transform: instances are scene roots.
func (n *Node) AbsoluteTransform() math.Mat4 { return n.transform }

// AABB returns the bounding box in model space.
func (n *Node) AABB() geometry.AABB { return n.def.Bounds }

// NodeAbsolutePosition returns the world position of a hook node,
// following the active clip when it animates that node.
func (n *Node) NodeAbsolutePosition(name string) (math.Vec3, bool) {
	if n.clip != nil {
		if keys, ok := n.clip.Tracks[name]; ok && len(keys) > 0 {
			return n.transform.TransformPoint(InterpolatePositionKeys(keys, n.clipTime)), true
		}
	}
	local, ok := n.def.Hooks[name]
	if !ok {
		return math.Vec3{}, false
	}
	return n.transform.TransformPoint(local), true
}

func (n *Node) SetCulled(culled bool) { n.culled = culled }

func (n *Node) IsCulled() bool { return n.culled }

func (n *Node) SetVisible(visible bool) { n.visible = visible }

func (n *Node) IsVisible() bool { return n.visible }

// PlayAnimation starts a clip from the beginning. Unknown clips are ignored.
func (n *Node) PlayAnimation(name string) bool {
	clip, ok := n.def.Clips[name]
	if !ok {
		return false
	}
	n.clip = clip
	n.clipTime = 0
	return true
}

// IsAnimationFinished reports whether no clip is playing or the last one ended.
func (n *Node) IsAnimationFinished() bool {
	return n.clip == nil || n.clipTime >= n.clip.Length
}

// Update advances the active clip.
func (n *Node) Update(dt float32) {
	if n.clip == nil {
		return
	}
	n.clipTime = min(n.clipTime+dt, n.clip.Length)
}
