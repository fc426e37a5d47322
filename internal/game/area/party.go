package area

import (
	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

// SetPartyLeader makes the creature with the given id the leader. The
// cameras and room visibility follow it from now on.
func (a *Area) SetPartyLeader(id uint32) {
	if _, ok := a.objectsByID[id].(*object.Creature); !ok {
		logger.Warn("party leader is not a creature in the area", zap.Uint32("id", id))
		return
	}
	a.leader = id
	a.onPartyLeaderMoved(true)
}

// PartyLeader returns the leader, or nil.
func (a *Area) PartyLeader() *object.Creature {
	c, _ := a.objectsByID[a.leader].(*object.Creature)
	return c
}

// Party returns the member ids in load order.
func (a *Area) Party() []uint32 { return a.party }

// LoadParty places the members at a location, lands them and adds them to
// the area. The first member leads.
func (a *Area) LoadParty(members []*object.Creature, position math.Vec3, facing float32) {
	for _, m := range members {
		m.SetPosition(position)
		m.SetFacing(facing)
		if !a.LandObject(m) {
			logger.Warn("party member not landed", zap.Uint32("id", m.ID()), zap.String("tag", m.Tag()))
		}
		a.Add(m)
		if model := m.Model(); model != nil {
			a.services.Graph.AddRoot(model)
		}
		a.party = append(a.party, m.ID())
	}
	if len(members) > 0 {
		a.initCameras(position, facing)
		a.SetPartyLeader(members[0].ID())
	}
}

// UnloadParty removes the party immediately, without waiting for the
// destroy sweep.
func (a *Area) UnloadParty() {
	for _, id := range a.party {
		a.destroyNow(id)
	}
	a.party = nil
	a.leader = object.InvalidID
}
