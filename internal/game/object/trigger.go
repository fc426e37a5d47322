package object

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/Faultbox/starforge/pkg/math"
)

// Trigger is a polygonal region that tracks the objects inside it.
type Trigger struct {
	SpatialObject

	// Geometry is relative to the position. Orientation is ignored.
	Geometry []math.Vec3

	LinkedToModule string
	LinkedTo       string
	// TransitionDestin is the display name of the linked destination.
	TransitionDestin string

	tenants mapset.Set[uint32]
}

// NewTrigger creates a trigger without geometry.
func NewTrigger(id uint32) *Trigger {
	return &Trigger{
		SpatialObject: newSpatialObject(id, TypeTrigger),
		tenants:       mapset.New[uint32](),
	}
}

// IsLinkedToModule reports whether entering moves the party to another module.
func (t *Trigger) IsLinkedToModule() bool { return t.LinkedToModule != "" }

// Contains tests a world-space ground point against the polygon using
// even-odd crossings.
func (t *Trigger) Contains(p math.Vec2) bool {
	return PolygonContains(t.Geometry, p.Sub(t.position.XY()))
}

func (t *Trigger) AddTenant(id uint32) { t.tenants.Put(id) }

func (t *Trigger) RemoveTenant(id uint32) { t.tenants.Remove(id) }

func (t *Trigger) IsTenant(id uint32) bool { return t.tenants.Has(id) }

// Tenants returns the tenant ids in ascending order.
func (t *Trigger) Tenants() []uint32 {
	ids := make([]uint32, 0, t.tenants.Size())
	t.tenants.Each(func(id uint32) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}

// PolygonContains reports whether p lies inside the XY projection of poly.
func PolygonContains(poly []math.Vec3, p math.Vec2) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
