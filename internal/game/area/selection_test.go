package area

import (
	"testing"

	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/pkg/math"
)

func TestSelectionCycle(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	leader := addCreature(a, "leader", math.Vec3{})
	p1 := addPlaceable(a, "p1", math.Vec3{X: 2})
	p2 := addPlaceable(a, "p2", math.Vec3{X: 4})
	addPlaceable(a, "distant", math.Vec3{X: 100})
	hidden := addPlaceable(a, "hidden", math.Vec3{X: 1})
	hidden.SetVisible(false)
	inert := addPlaceable(a, "inert", math.Vec3{X: 1.5})
	inert.SetSelectable(false)

	a.SetPartyLeader(leader.ID())

	got := a.SelectableObjects()
	if len(got) != 2 || got[0] != p1 || got[1] != p2 {
		t.Fatalf("SelectableObjects = %v, want [p1 p2]", got)
	}
	if a.SelectedObject() != p1 {
		t.Fatalf("leader move should select the nearest object, got %v", a.SelectedObject())
	}

	steps := []struct {
		reverse bool
		want    object.Object
	}{
		{false, p2},
		{false, p1},
		{true, p2},
		{true, p1},
	}
	for i, s := range steps {
		a.SelectNextObject(s.reverse)
		if a.SelectedObject() != s.want {
			t.Errorf("step %d: selected %v, want %v", i, a.SelectedObject(), s.want)
		}
	}

	a.SelectObject(p2)
	a.HilightObject(p2)
	p2.SetSelectable(false)
	a.Update(0.01)
	if a.SelectedObject() != nil || a.HilightedObject() != nil {
		t.Error("unselectable object should lose selection and hilight")
	}
}

func TestSelectNextWithoutSelectables(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	p := addPlaceable(a, "p", math.Vec3{X: 2})
	a.SelectObject(p)

	a.SelectNextObject(false)
	if a.SelectedObject() != nil {
		t.Error("selection should clear without a leader")
	}
}

func TestObjectAt(t *testing.T) {
	env := newTestEnv(t)
	a := env.area
	addFloorRoom(a)
	leader := addCreature(a, "leader", math.Vec3{})
	a.SetPartyLeader(leader.ID())
	p := addPlaceable(a, "p", math.Vec3{X: 2})

	tests := []struct {
		name string
		ray  geometry.Ray
		want object.Object
	}{
		{"placeable", geometry.Ray{Origin: math.Vec3{X: 2, Y: -10, Z: 0.25}, Direction: math.Vec3{Y: 1}}, p},
		{"away from placeable", geometry.Ray{Origin: math.Vec3{X: 2, Y: -10, Z: 0.25}, Direction: math.Vec3{Y: -1}}, nil},
		{"leader ignored", geometry.Ray{Origin: math.Vec3{Y: -10, Z: 0.25}, Direction: math.Vec3{Y: 1}}, nil},
		{"beyond selection distance", geometry.Ray{Origin: math.Vec3{X: 2, Y: -100, Z: 0.25}, Direction: math.Vec3{Y: 1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.ObjectAt(tt.ray); got != tt.want {
				t.Errorf("ObjectAt = %v, want %v", got, tt.want)
			}
		})
	}
}
