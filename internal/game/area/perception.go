package area

import (
	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/logger"
)

// updatePerception refreshes what each living creature sees and hears,
// once per perception interval.
func (a *Area) updatePerception(dt float32) {
	a.perceptionTimer -= dt
	if a.perceptionTimer > 0 {
		return
	}
	a.perceptionTimer = seconds(a.opts.PerceptionInterval)
	a.doUpdatePerception()
}

func (a *Area) doUpdatePerception() {
	creatures := a.objectsByType[object.TypeCreature]
	for _, obj := range creatures {
		if obj.IsDead() {
			continue
		}
		c := obj.(*object.Creature)
		p := &c.Perception
		hearing2 := p.HearingRange * p.HearingRange
		sight2 := p.SightRange * p.SightRange

		for _, other := range creatures {
			if other == obj {
				continue
			}
			dist2 := c.DistanceTo2(other.Position())
			heard := dist2 <= hearing2
			seen := dist2 <= sight2 && a.InLineOfSight(c, other)

			id := other.ID()
			noticed := false
			wasHeard := p.Heard.Has(id)
			switch {
			case heard && !wasHeard:
				p.Heard.Put(id)
				noticed = true
				logger.Debug("heard", zap.String("subject", c.Tag()), zap.String("object", other.Tag()))
			case !heard && wasHeard:
				p.Heard.Remove(id)
				logger.Debug("inaudible", zap.String("subject", c.Tag()), zap.String("object", other.Tag()))
			}

			wasSeen := p.Seen.Has(id)
			switch {
			case seen && !wasSeen:
				p.Seen.Put(id)
				noticed = true
				logger.Debug("seen", zap.String("subject", c.Tag()), zap.String("object", other.Tag()))
			case !seen && wasSeen:
				p.Seen.Remove(id)
				logger.Debug("vanished", zap.String("subject", c.Tag()), zap.String("object", other.Tag()))
			}

			if noticed {
				a.notice(c, other)
			}
		}
	}
}

func (a *Area) notice(c *object.Creature, other object.Object) {
	if name := c.Script(object.EventNotice); name != "" {
		a.runScript(name, c.ID(), other.ID())
	}
}

// InLineOfSight reports whether no room or door wall lies between the
// sight points of subject and target.
func (a *Area) InLineOfSight(subject, target object.Object) bool {
	from := subject.Spatial().SightPoint()
	to := target.Spatial().SightPoint()
	delta := to.Sub(from)
	dist := delta.Length()
	if dist == 0 {
		return true
	}
	result, hit := a.collision.Raycast(RaycastQuery{
		Origin:      from,
		Direction:   delta,
		Distance:    segmentReach(dist),
		Flags:       RaycastRooms,
		ObjectTypes: []object.Type{object.TypeDoor},
	})
	return !hit || result.Distance > dist
}
