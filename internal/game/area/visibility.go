package area

import (
	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/internal/engine/scene"
)

func (a *Area) updateVisibility() {
	a.updateRoomVisibility()
	a.cullObjects()
}

// updateRoomVisibility shows every room unless the third-person camera
// follows a leader standing in a room. Then only the leader's room and the
// rooms visible from it are shown.
func (a *Area) updateRoomVisibility() {
	leaderRoom := ""
	if leader := a.PartyLeader(); leader != nil {
		leaderRoom = leader.Room()
	}
	allVisible := a.cameraType != CameraThirdPerson || a.rooms[leaderRoom] == nil

	for _, name := range a.roomOrder {
		room := a.rooms[name]
		if allVisible {
			room.SetVisible(true)
			continue
		}
		room.SetVisible(name == leaderRoom || a.IsRoomVisibleFrom(leaderRoom, name))
	}
}

// cullObjects marks object models outside the draw distance or the active
// camera frustum as culled. Stunt objects are never culled.
func (a *Area) cullObjects() {
	cam := a.ActiveCamera()
	frustum := geometry.ExtractFrustum(cam.Projection().Mul(cam.View()))
	eye := cam.Position()

	for _, obj := range a.objects {
		s := obj.Spatial()
		m := s.Model()
		if !s.IsVisible() || m == nil {
			continue
		}
		culled := false
		if !s.IsStunt() {
			box := scene.WorldAABB(m)
			drawDistance := s.DrawDistance()
			if box.Center().DistanceSquared(eye) > drawDistance*drawDistance {
				culled = true
			} else if !frustum.ContainsAABB(box) {
				culled = true
			}
		}
		m.SetCulled(culled)
	}
}
