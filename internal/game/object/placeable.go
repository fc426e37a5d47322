package object

// Placeable is a static prop, optionally usable.
type Placeable struct {
	SpatialObject

	Usable bool
}

// NewPlaceable creates a placeable.
func NewPlaceable(id uint32) *Placeable {
	return &Placeable{SpatialObject: newSpatialObject(id, TypePlaceable)}
}
