package area

import (
	"sort"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

// listener is implemented by sound players with positional attenuation.
type listener interface {
	SetListener(p math.Vec3)
}

// updateSounds makes the best sounds audible: active sounds within their
// max distance of the listener, lowest priority value first, then nearest.
func (a *Area) updateSounds() {
	ref := a.soundReference()
	if l, ok := a.services.Sounds.(listener); ok {
		l.SetListener(ref)
	}

	type candidate struct {
		sound *object.Sound
		dist2 float32
	}
	var candidates []candidate
	for _, obj := range a.objectsByType[object.TypeSound] {
		s := obj.(*object.Sound)
		s.SetAudible(false)
		if !s.Active {
			continue
		}
		dist2 := s.DistanceTo2(ref)
		if dist2 > s.MaxDistance*s.MaxDistance {
			continue
		}
		candidates = append(candidates, candidate{s, dist2})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].sound.Priority != candidates[j].sound.Priority {
			return candidates[i].sound.Priority < candidates[j].sound.Priority
		}
		return candidates[i].dist2 < candidates[j].dist2
	})
	if len(candidates) > a.opts.MaxSoundCount {
		candidates = candidates[:a.opts.MaxSoundCount]
	}
	for _, c := range candidates {
		c.sound.SetAudible(true)
	}
}

// soundReference is the leader position in third person and the camera
// position otherwise.
func (a *Area) soundReference() math.Vec3 {
	if a.cameraType == CameraThirdPerson {
		if leader := a.PartyLeader(); leader != nil {
			return leader.Position()
		}
	}
	return a.ActiveCamera().Position()
}
