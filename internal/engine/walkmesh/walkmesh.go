// Package walkmesh holds triangle collision geometry for rooms and objects.
package walkmesh

import (
	gomath "math"

	"github.com/Faultbox/starforge/internal/engine/geometry"
	"github.com/Faultbox/starforge/pkg/math"
)

// Face is a single walkmesh triangle.
type Face struct {
	Vertices [3]math.Vec3
	Material int
	Walkable bool
	Grass    bool
}

// Area returns the surface area of the face.
func (f Face) Area() float32 {
	e1 := f.Vertices[1].Sub(f.Vertices[0])
	e2 := f.Vertices[2].Sub(f.Vertices[0])
	return e1.Cross(e2).Length() * 0.5
}

// Walkmesh is an immutable set of faces with a precomputed bounding box.
type Walkmesh struct {
	name  string
	faces []Face
	aabb  geometry.AABB
}

// New builds a walkmesh from faces. The slice is copied.
func New(name string, faces []Face) *Walkmesh {
	w := &Walkmesh{
		name:  name,
		faces: append([]Face(nil), faces...),
		aabb:  geometry.EmptyAABB(),
	}
	for _, f := range w.faces {
		for _, v := range f.Vertices {
			w.aabb = w.aabb.Expand(v)
		}
	}
	return w
}

// Name returns the resource name of the walkmesh.
func (w *Walkmesh) Name() string {
	return w.name
}

// Faces returns the faces of the walkmesh.
func (w *Walkmesh) Faces() []Face {
	return w.faces
}

// AABB returns the bounding box of all faces.
func (w *Walkmesh) AABB() geometry.AABB {
	return w.aabb
}

// Raycast returns the nearest face hit among walkable faces (walkable=true)
// or non-walkable faces (walkable=false), with the material of that face.
func (w *Walkmesh) Raycast(origin, dir math.Vec3, walkable bool) (distance float32, material int, ok bool) {
	ray := geometry.Ray{Origin: origin, Direction: dir}
	distance = float32(gomath.MaxFloat32)
	for i := range w.faces {
		f := &w.faces[i]
		if f.Walkable != walkable {
			continue
		}
		t, hit := ray.IntersectTriangle(f.Vertices[0], f.Vertices[1], f.Vertices[2])
		if !hit || t >= distance {
			continue
		}
		distance = t
		material = f.Material
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return distance, material, true
}

// GrassFaces returns the faces flagged as grass surfaces.
func (w *Walkmesh) GrassFaces() []Face {
	var out []Face
	for _, f := range w.faces {
		if f.Grass {
			out = append(out, f)
		}
	}
	return out
}
