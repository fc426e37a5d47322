package area

import (
	"testing"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

func addTrigger(a *Area, tag string, pos math.Vec3, half float32) *object.Trigger {
	t := object.NewTrigger(a.services.Factory.NextID())
	t.SetTag(tag)
	t.SetPosition(pos)
	t.Geometry = []math.Vec3{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}
	a.Add(t)
	return t
}

func TestTriggerEnterAndExit(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	trig := addTrigger(a, "gate", math.Vec3{X: 10}, 1)
	trig.SetScript(object.EventEnter, "on_enter")
	trig.SetScript(object.EventExit, "on_exit")
	c := addCreature(a, "walker", math.Vec3{X: 8})

	if !a.MoveCreature(c, math.Vec2{X: 1}, false, 1) {
		t.Fatal("move failed")
	}
	if !trig.IsTenant(c.ID()) {
		t.Fatalf("creature at %v is not a tenant", c.Position())
	}
	enter := env.scripts.named("on_enter")
	if len(enter) != 1 || enter[0].caller != trig.ID() || enter[0].triggerer != c.ID() {
		t.Fatalf("enter calls = %+v", enter)
	}

	a.MoveCreature(c, math.Vec2{Y: 1}, false, 0.1)
	a.Update(0.01)
	if n := len(env.scripts.named("on_enter")); n != 1 {
		t.Errorf("enter fired %d times while inside, want 1", n)
	}
	if len(env.scripts.named("on_exit")) != 0 {
		t.Error("exit fired while inside")
	}

	c.SetPosition(math.Vec3{X: 20})
	a.Update(0.01)
	if trig.IsTenant(c.ID()) {
		t.Error("creature still a tenant after leaving")
	}
	exit := env.scripts.named("on_exit")
	if len(exit) != 1 || exit[0].caller != trig.ID() || exit[0].triggerer != c.ID() {
		t.Errorf("exit calls = %+v", exit)
	}
}

func TestTriggerTenantDestroyed(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	trig := addTrigger(a, "zone", math.Vec3{}, 2)
	c := addCreature(a, "walker", math.Vec3{X: -0.5})
	a.MoveCreature(c, math.Vec2{X: 1}, false, 0.1)
	if !trig.IsTenant(c.ID()) {
		t.Fatal("creature is not a tenant")
	}

	trig.SetScript(object.EventExit, "on_exit")
	a.DestroyObject(c)
	a.Update(0.01)
	if trig.IsTenant(c.ID()) {
		t.Error("destroyed creature still a tenant")
	}
	exits := env.scripts.named("on_exit")
	if len(exits) != 1 || exits[0].caller != trig.ID() || exits[0].triggerer != c.ID() {
		t.Errorf("exit scripts = %+v, want one for the destroyed tenant", exits)
	}
}

func TestTriggerModuleTransition(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	exit := addTrigger(a, "exit", math.Vec3{X: 1}, 1)
	exit.LinkedToModule = "m02"
	exit.LinkedTo = "wp_entry"
	exit.SetScript(object.EventEnter, "on_enter")
	other := addTrigger(a, "overlap", math.Vec3{X: 1}, 1)
	other.SetScript(object.EventEnter, "overlap_enter")

	c := addCreature(a, "walker", math.Vec3{X: -0.5})
	a.MoveCreature(c, math.Vec2{X: 1}, false, 0.5)

	if env.transit.calls != 1 || env.transit.module != "m02" || env.transit.entry != "wp_entry" {
		t.Errorf("transition = %+v, want m02/wp_entry once", env.transit)
	}
	if len(env.scripts.calls) != 0 {
		t.Errorf("scripts ran after a module transition: %+v", env.scripts.calls)
	}
}
