package geometry

import "github.com/Faultbox/starforge/pkg/math"

// Frustum holds the six planes of a view frustum: left, right, bottom, top, near, far.
type Frustum struct {
	planes [6]plane
}

// plane is a x + b y + c z + d = 0 with a unit normal.
type plane struct {
	normal   math.Vec3
	distance float32
}

// ExtractFrustum extracts frustum planes from a view-projection matrix
// (Gribb/Hartmann).
func ExtractFrustum(vp math.Mat4) Frustum {
	row := func(i int) math.Vec4 {
		return math.Vec4{vp[i], vp[4+i], vp[8+i], vp[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	combine := func(a, b math.Vec4, sign float32) plane {
		return normalizePlane(plane{
			normal:   math.Vec3{X: a[0] + sign*b[0], Y: a[1] + sign*b[1], Z: a[2] + sign*b[2]},
			distance: a[3] + sign*b[3],
		})
	}

	var f Frustum
	f.planes[0] = combine(r3, r0, 1)
	f.planes[1] = combine(r3, r0, -1)
	f.planes[2] = combine(r3, r1, 1)
	f.planes[3] = combine(r3, r1, -1)
	f.planes[4] = combine(r3, r2, 1)
	f.planes[5] = combine(r3, r2, -1)
	return f
}

func normalizePlane(p plane) plane {
	length := p.normal.Length()
	if length == 0 {
		return p
	}
	return plane{
		normal:   p.normal.Scale(1 / length),
		distance: p.distance / length,
	}
}

// ContainsPoint tests if a point is inside the frustum.
func (f *Frustum) ContainsPoint(point math.Vec3) bool {
	for i := range f.planes {
		if f.planes[i].normal.Dot(point)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB tests if a box is inside or intersects the frustum.
// Uses the positive vertex of each plane, so it may keep boxes that sit
// just outside a frustum corner.
func (f *Frustum) ContainsAABB(box AABB) bool {
	for i := range f.planes {
		n := f.planes[i].normal
		p := box.Min
		if n.X >= 0 {
			p.X = box.Max.X
		}
		if n.Y >= 0 {
			p.Y = box.Max.Y
		}
		if n.Z >= 0 {
			p.Z = box.Max.Z
		}
		if n.Dot(p)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}
