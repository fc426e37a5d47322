package area

import (
	"sort"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

// ReputationType is a reputation criterion.
type ReputationType uint8

const (
	ReputationFriend ReputationType = iota
	ReputationEnemy
	ReputationNeutral
)

// PerceptionType is a perception criterion over seen and heard.
type PerceptionType uint8

const (
	PerceptionSeenAndHeard PerceptionType = iota
	PerceptionNotSeenAndNotHeard
	PerceptionHeardAndNotSeen
	PerceptionSeenAndNotHeard
	PerceptionNotHeard
	PerceptionHeard
	PerceptionNotSeen
	PerceptionSeen
)

// CriteriaKind selects what a Criteria tests.
type CriteriaKind uint8

const (
	CriteriaReputation CriteriaKind = iota
	CriteriaPerception
)

// Criteria is one condition a creature must meet relative to a target.
type Criteria struct {
	Kind       CriteriaKind
	Reputation ReputationType
	Perception PerceptionType
}

// ByReputation returns a reputation criterion.
func ByReputation(r ReputationType) Criteria {
	return Criteria{Kind: CriteriaReputation, Reputation: r}
}

// ByPerception returns a perception criterion.
func ByPerception(p PerceptionType) Criteria {
	return Criteria{Kind: CriteriaPerception, Perception: p}
}

// NearestCreature returns the nth nearest creature to target matching all
// criteria, or nil. The target itself is never returned.
func (a *Area) NearestCreature(target object.Object, criteria []Criteria, nth int) *object.Creature {
	if target == nil {
		return nil
	}
	return a.nearestCreature(target.Position(), target, criteria, nth)
}

// NearestCreatureToLocation returns the nth nearest creature to a point
// matching all criteria, or nil. Criteria that need a target never match.
func (a *Area) NearestCreatureToLocation(p math.Vec3, criteria []Criteria, nth int) *object.Creature {
	return a.nearestCreature(p, nil, criteria, nth)
}

func (a *Area) nearestCreature(origin math.Vec3, target object.Object, criteria []Criteria, nth int) *object.Creature {
	type candidate struct {
		creature *object.Creature
		dist2    float32
	}
	var candidates []candidate
	for _, obj := range a.objectsByType[object.TypeCreature] {
		if target != nil && obj.ID() == target.ID() {
			continue
		}
		c := obj.(*object.Creature)
		if !a.matchesCriteria(c, criteria, target) {
			continue
		}
		candidates = append(candidates, candidate{c, c.DistanceTo2(origin)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist2 < candidates[j].dist2
	})
	if nth < 0 || nth >= len(candidates) {
		return nil
	}
	return candidates[nth].creature
}

func (a *Area) matchesCriteria(c *object.Creature, criteria []Criteria, target object.Object) bool {
	for _, crit := range criteria {
		switch crit.Kind {
		case CriteriaReputation:
			t, ok := target.(*object.Creature)
			if !ok || a.services.Reputes == nil {
				return false
			}
			var match bool
			switch crit.Reputation {
			case ReputationFriend:
				match = a.services.Reputes.IsFriend(c.Faction, t.Faction)
			case ReputationEnemy:
				match = a.services.Reputes.IsEnemy(c.Faction, t.Faction)
			case ReputationNeutral:
				match = a.services.Reputes.IsNeutral(c.Faction, t.Faction)
			default:
				match = true
			}
			if !match {
				return false
			}
		case CriteriaPerception:
			if target == nil {
				return false
			}
			if !matchesPerception(c, target.ID(), crit.Perception) {
				return false
			}
		}
	}
	return true
}

func matchesPerception(c *object.Creature, id uint32, p PerceptionType) bool {
	seen := c.Perception.Seen.Has(id)
	heard := c.Perception.Heard.Has(id)
	switch p {
	case PerceptionSeenAndHeard:
		return seen && heard
	case PerceptionNotSeenAndNotHeard:
		return !seen && !heard
	case PerceptionHeardAndNotSeen:
		return heard && !seen
	case PerceptionSeenAndNotHeard:
		return seen && !heard
	case PerceptionNotHeard:
		return !heard
	case PerceptionHeard:
		return heard
	case PerceptionNotSeen:
		return !seen
	case PerceptionSeen:
		return seen
	}
	return false
}
