package area

import (
	"testing"

	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

func TestPerceptionSeenAndHeard(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	watcher := addCreature(a, "watcher", math.Vec3{})
	watcher.SetScript(object.EventNotice, "on_notice")
	other := addCreature(a, "other", math.Vec3{X: 5})

	a.Update(0.1)

	p := watcher.Perception
	if !p.Seen.Has(other.ID()) || !p.Heard.Has(other.ID()) {
		t.Fatalf("seen=%v heard=%v, want both", p.Seen.Has(other.ID()), p.Heard.Has(other.ID()))
	}
	calls := env.scripts.named("on_notice")
	if len(calls) != 1 || calls[0].caller != watcher.ID() || calls[0].triggerer != other.ID() {
		t.Fatalf("notice calls = %+v, want one from watcher about other", calls)
	}

	a.Update(1)
	if n := len(env.scripts.named("on_notice")); n != 1 {
		t.Errorf("notice calls = %d after steady state, want 1", n)
	}

	other.SetPosition(math.Vec3{X: 30})
	a.Update(1)
	p = watcher.Perception
	if p.Seen.Has(other.ID()) || p.Heard.Has(other.ID()) {
		t.Error("distant creature should be forgotten")
	}
}

func TestPerceptionInterval(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	watcher := addCreature(a, "watcher", math.Vec3{})
	a.Update(0.1)

	other := addCreature(a, "other", math.Vec3{X: 5})
	a.Update(0.5)
	if watcher.Perception.Seen.Has(other.ID()) {
		t.Error("perception updated before the interval elapsed")
	}
	a.Update(0.6)
	if !watcher.Perception.Seen.Has(other.ID()) {
		t.Error("perception not updated after the interval elapsed")
	}
}

func TestPerceptionWallBlocksSightOnly(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addRoom(a, "main", append(floor(-50, -50, 50, 50, 0), wallX(2.5, -5, 5)...)...)
	watcher := addCreature(a, "watcher", math.Vec3{})
	other := addCreature(a, "other", math.Vec3{X: 5})

	if a.InLineOfSight(watcher, other) {
		t.Error("wall should block line of sight")
	}
	a.Update(0.1)
	if watcher.Perception.Seen.Has(other.ID()) {
		t.Error("creature behind a wall should not be seen")
	}
	if !watcher.Perception.Heard.Has(other.ID()) {
		t.Error("creature behind a wall should be heard")
	}
}

func TestLineOfSightWideDoorOffSegment(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	watcher := addCreature(a, "watcher", math.Vec3{})
	other := addCreature(a, "other", math.Vec3{X: 4})
	// Centre is farther from the watcher than the target, the wall still
	// crosses the sight line.
	door := addWideDoor(a, "gate", math.Vec3{X: 2, Y: 3.5}, -4, 1)

	if a.InLineOfSight(watcher, other) {
		t.Error("wide door should block line of sight")
	}
	door.Open()
	if !a.InLineOfSight(watcher, other) {
		t.Error("open door without a walkmesh should not block")
	}
}

func TestPerceptionSkipsDeadSubjects(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	dead := addCreature(a, "dead", math.Vec3{})
	dead.SetScript(object.EventNotice, "on_notice")
	dead.Die()
	addCreature(a, "other", math.Vec3{X: 2})

	a.Update(0.1)
	if dead.Perception.Seen.Size() != 0 || len(env.scripts.calls) != 0 {
		t.Error("dead creatures should not perceive")
	}
}
