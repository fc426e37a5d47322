package area

import (
	"testing"

	"github.com/Faultbox/starforge/pkg/math"
)

func TestMoveCreatureOpenFloor(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	c := addCreature(a, "walker", math.Vec3{})

	if !a.MoveCreature(c, math.Vec2{X: 1}, false, 1) {
		t.Fatal("MoveCreature on open floor failed")
	}
	want := math.Vec3{X: c.WalkSpeed}
	if !nearVec(c.Position(), want) {
		t.Errorf("position = %v, want %v", c.Position(), want)
	}
	if !near(c.Facing(), -math.Pi/2) {
		t.Errorf("facing = %v, want -pi/2", c.Facing())
	}

	if !a.MoveCreature(c, math.Vec2{Y: 1}, true, 0.5) {
		t.Fatal("run step failed")
	}
	want = want.Add(math.Vec3{Y: c.RunSpeed * 0.5})
	if !nearVec(c.Position(), want) {
		t.Errorf("position after run = %v, want %v", c.Position(), want)
	}
}

func TestMoveCreatureDeflectsAroundWall(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addRoom(a, "main", append(floor(-50, -50, 50, 50, 0), wallY(0.4, -5, 5)...)...)
	c := addCreature(a, "walker", math.Vec3{})

	if !a.MoveCreature(c, math.Vec2{Y: 1}, false, 0.1) {
		t.Fatal("deflected move failed")
	}
	pos := c.Position()
	if pos.X <= 0 || pos.Y >= 0 {
		t.Errorf("position = %v, want deflection towards +x and -y", pos)
	}
	step := c.WalkSpeed * 0.1
	if got := pos.XY().Length(); !near(got, step) {
		t.Errorf("step length = %v, want %v", got, step)
	}
}

func TestMoveCreatureBlockedTwice(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	faces := append(floor(-50, -50, 50, 50, 0), wallY(0.4, -5, 5)...)
	faces = append(faces, wallX(0.3, -5, 5)...)
	addRoom(a, "main", faces...)
	c := addCreature(a, "walker", math.Vec3{})

	if a.MoveCreature(c, math.Vec2{Y: 1}, false, 0.1) {
		t.Fatal("MoveCreature should fail when both directions are blocked")
	}
	if c.Position() != (math.Vec3{}) {
		t.Errorf("blocked creature moved to %v", c.Position())
	}
}

func TestMoveCreatureBlockedByCreature(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	c := addCreature(a, "walker", math.Vec3{})
	addCreature(a, "front", math.Vec3{Y: 0.8})
	addCreature(a, "side", math.Vec3{X: 0.6, Y: -0.6})

	if a.MoveCreature(c, math.Vec2{Y: 1}, false, 0.1) {
		t.Errorf("creature walked through others to %v", c.Position())
	}
}

func TestCreatureObstacleBeyondStepLength(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	c := addCreature(a, "walker", math.Vec3{})
	front := addCreature(a, "front", math.Vec3{Y: 0.8})

	tests := []struct {
		name string
		dest math.Vec3
		want bool
	}{
		{"box edge within step", math.Vec3{Y: 0.175}, true},
		{"moving away", math.Vec3{Y: -0.175}, false},
		{"sideways", math.Vec3{X: 0.175}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.creatureObstacle(c, tt.dest); got != tt.want {
				t.Errorf("creatureObstacle(%v) = %v, want %v", tt.dest, got, tt.want)
			}
		})
	}

	front.SetDead(true)
	if a.creatureObstacle(c, math.Vec3{Y: 0.175}) {
		t.Error("a dead creature should not block")
	}
}

func TestMoveCreatureOffWalkmesh(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addRoom(a, "main", floor(-1, -1, 1, 1, 0)...)
	c := addCreature(a, "walker", math.Vec3{X: 0.9})

	if a.MoveCreature(c, math.Vec2{X: 1}, true, 1) {
		t.Error("move beyond the walkmesh should fail")
	}
	if a.MoveCreatureTowards(c, c.Position().XY(), false, 1) {
		t.Error("move towards own position should fail")
	}
}

func TestLeaderRoomChangeUpdatesVisibility(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	roomA := addRoom(a, "a", floor(-10, -10, 0, 10, 0)...)
	roomB := addRoom(a, "b", floor(0, -10, 10, 10, 0)...)
	roomC := addRoom(a, "c", floor(10, -10, 20, 10, 0)...)
	a.SetVisibility(map[string][]string{"b": {"a"}})

	leader := addCreature(a, "leader", math.Vec3{X: -0.5})
	a.SetPartyLeader(leader.ID())
	if leader.Room() != "a" {
		t.Fatalf("leader room = %q, want a", leader.Room())
	}
	if !roomA.IsVisible() || !roomB.IsVisible() || roomC.IsVisible() {
		t.Errorf("from a: visible = %v %v %v, want true true false",
			roomA.IsVisible(), roomB.IsVisible(), roomC.IsVisible())
	}

	if !a.MoveCreature(leader, math.Vec2{X: 1}, false, 0.5) {
		t.Fatal("leader move failed")
	}
	if leader.Room() != "b" {
		t.Fatalf("leader room = %q, want b", leader.Room())
	}
	if roomA.HasTenant(leader.ID()) || !roomB.HasTenant(leader.ID()) {
		t.Error("room tenants not updated")
	}
	if !roomA.IsVisible() || !roomB.IsVisible() || roomC.IsVisible() {
		t.Errorf("from b: visible = %v %v %v, want true true false",
			roomA.IsVisible(), roomB.IsVisible(), roomC.IsVisible())
	}
	if got := a.ThirdPersonCamera().TargetPosition(); !nearVec(got, leader.Position()) {
		t.Errorf("camera target = %v, want leader position %v", got, leader.Position())
	}

	a.SetCameraType(CameraFirstPerson)
	a.Update(0)
	if !roomC.IsVisible() {
		t.Error("every room should be visible outside third person")
	}
}
