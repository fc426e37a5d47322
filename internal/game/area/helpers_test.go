package area

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/internal/engine/model"
	"github.com/Faultbox/starforge/internal/engine/scene"
	"github.com/Faultbox/starforge/internal/engine/walkmesh"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/game/reputation"
	"github.com/Faultbox/starforge/pkg/math"
)

type scriptCall struct {
	name      string
	caller    uint32
	triggerer uint32
}

type fakeScripts struct {
	calls []scriptCall
	// onRun, when set, is called for every script after it is recorded.
	onRun func(scriptCall)
}

func (f *fakeScripts) Run(name string, caller, triggerer uint32) {
	call := scriptCall{name, caller, triggerer}
	f.calls = append(f.calls, call)
	if f.onRun != nil {
		f.onRun(call)
	}
}

func (f *fakeScripts) named(name string) []scriptCall {
	var out []scriptCall
	for _, c := range f.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

type fakeTransitioner struct {
	module string
	entry  string
	calls  int
}

func (f *fakeTransitioner) ScheduleModuleTransition(module, entry string) {
	f.module = module
	f.entry = entry
	f.calls++
}

type testEnv struct {
	area    *Area
	scripts *fakeScripts
	transit *fakeTransitioner
	graph   *scene.Graph
	reputes *reputation.Table
}

// newTestEnv creates an area with one walkable room covering
// [-50, 50] x [-50, 50] at z=0.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		scripts: &fakeScripts{},
		transit: &fakeTransitioner{},
		graph:   scene.NewGraph(),
		reputes: reputation.NewTable(4),
	}
	env.area = New("test", Services{
		Scripts:      env.scripts,
		Transitioner: env.transit,
		Graph:        env.graph,
		Reputes:      env.reputes,
	}, DefaultOptions())
	return env
}

// floor returns two walkable triangles covering a rectangle at height z.
func floor(minX, minY, maxX, maxY, z float32) []walkmesh.Face {
	a := math.Vec3{X: minX, Y: minY, Z: z}
	b := math.Vec3{X: maxX, Y: minY, Z: z}
	c := math.Vec3{X: maxX, Y: maxY, Z: z}
	d := math.Vec3{X: minX, Y: maxY, Z: z}
	return []walkmesh.Face{
		{Vertices: [3]math.Vec3{a, b, c}, Material: 1, Walkable: true},
		{Vertices: [3]math.Vec3{a, c, d}, Material: 1, Walkable: true},
	}
}

// wallY returns a non-walkable vertical quad in the plane y.
func wallY(y, minX, maxX float32) []walkmesh.Face {
	a := math.Vec3{X: minX, Y: y, Z: -1}
	b := math.Vec3{X: maxX, Y: y, Z: -1}
	c := math.Vec3{X: maxX, Y: y, Z: 3}
	d := math.Vec3{X: minX, Y: y, Z: 3}
	return []walkmesh.Face{
		{Vertices: [3]math.Vec3{a, b, c}, Material: 7},
		{Vertices: [3]math.Vec3{a, c, d}, Material: 7},
	}
}

// wallX returns a non-walkable vertical quad in the plane x.
func wallX(x, minY, maxY float32) []walkmesh.Face {
	a := math.Vec3{X: x, Y: minY, Z: -1}
	b := math.Vec3{X: x, Y: maxY, Z: -1}
	c := math.Vec3{X: x, Y: maxY, Z: 3}
	d := math.Vec3{X: x, Y: minY, Z: 3}
	return []walkmesh.Face{
		{Vertices: [3]math.Vec3{a, b, c}, Material: 7},
		{Vertices: [3]math.Vec3{a, c, d}, Material: 7},
	}
}

func addRoom(a *Area, name string, faces ...walkmesh.Face) *Room {
	r := NewRoom(name, math.Vec3{}, testModel(name, 50), walkmesh.New(name, faces))
	a.AddRoom(r)
	return r
}

func addFloorRoom(a *Area) *Room {
	return addRoom(a, "main", floor(-50, -50, 50, 50, 0)...)
}

// testModel returns a model whose bounds are a box of the given half
// size, standing on z=0.
func testModel(name string, half float32) scene.Model {
	return model.NewNode(&model.Definition{
		Name: name,
		Bounds: geometry.NewAABB(
			math.Vec3{X: -half, Y: -half},
			math.Vec3{X: half, Y: half, Z: 2 * half}),
	})
}

func addCreature(a *Area, tag string, pos math.Vec3) *object.Creature {
	c := object.NewCreature(a.services.Factory.NextID())
	c.SetTag(tag)
	c.SetPosition(pos)
	c.SetModel(testModel(tag, 0.4))
	a.Add(c)
	return c
}

func addPlaceable(a *Area, tag string, pos math.Vec3) *object.Placeable {
	p := object.NewPlaceable(a.services.Factory.NextID())
	p.SetTag(tag)
	p.SetSelectable(true)
	p.SetPosition(pos)
	p.SetModel(testModel(tag, 0.5))
	a.Add(p)
	return p
}

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-3
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}
