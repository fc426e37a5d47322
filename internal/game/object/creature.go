package object

import (
	"github.com/zyedidia/generic/mapset"
)

// Default creature parameters used when a blueprint leaves them unset.
const (
	DefaultWalkSpeed     = 1.75
	DefaultRunSpeed      = 4.0
	DefaultSightRange    = 20.0
	DefaultHearingRange  = 20.0
	creatureDrawDistance = 2048.0
)

// MovementType is the current locomotion of a creature.
type MovementType uint8

const (
	MovementNone MovementType = iota
	MovementWalk
	MovementRun
)

// Animation clip names played for each movement type.
var movementAnimations = map[MovementType]string{
	MovementNone: "pause1",
	MovementWalk: "walk",
	MovementRun:  "run",
}

// Perception holds what a creature currently sees and hears.
type Perception struct {
	SightRange   float32
	HearingRange float32
	Seen         mapset.Set[uint32]
	Heard        mapset.Set[uint32]
}

// NewPerception creates empty perception with the given ranges.
func NewPerception(sight, hearing float32) Perception {
	return Perception{
		SightRange:   sight,
		HearingRange: hearing,
		Seen:         mapset.New[uint32](),
		Heard:        mapset.New[uint32](),
	}
}

// Forget drops an object from both sets.
func (p *Perception) Forget(id uint32) {
	p.Seen.Remove(id)
	p.Heard.Remove(id)
}

// Creature is a mobile, perceiving object.
type Creature struct {
	SpatialObject

	WalkSpeed  float32
	RunSpeed   float32
	Faction    int
	Perception Perception

	movement MovementType
}

// NewCreature creates a creature with default speeds and ranges.
func NewCreature(id uint32) *Creature {
	c := &Creature{
		SpatialObject: newSpatialObject(id, TypeCreature),
		WalkSpeed:     DefaultWalkSpeed,
		RunSpeed:      DefaultRunSpeed,
		Perception:    NewPerception(DefaultSightRange, DefaultHearingRange),
	}
	c.selectable = true
	c.drawDistance = creatureDrawDistance
	return c
}

// MovementType returns the current locomotion.
func (c *Creature) MovementType() MovementType { return c.movement }

// SetMovementType switches locomotion and plays the matching clip.
func (c *Creature) SetMovementType(t MovementType) {
	if c.movement == t {
		return
	}
	c.movement = t
	if c.model != nil {
		c.model.PlayAnimation(movementAnimations[t])
	}
}

// Die marks the creature dead. Dead creatures stop acting and perceiving.
func (c *Creature) Die() {
	c.dead = true
	c.ClearActions()
	c.SetMovementType(MovementNone)
	c.Perception.Seen = mapset.New[uint32]()
	c.Perception.Heard = mapset.New[uint32]()
}

// Speed returns the run or walk speed in units per second.
func (c *Creature) Speed(run bool) float32 {
	if run {
		return c.RunSpeed
	}
	return c.WalkSpeed
}
