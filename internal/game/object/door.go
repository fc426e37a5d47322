package object

import "github.com/Faultbox/starforge/internal/engine/walkmesh"

// Door blocks movement while closed and may link to another module.
type Door struct {
	SpatialObject

	LinkedToModule string
	LinkedTo       string
	Locked         bool

	open           bool
	closedWalkmesh *walkmesh.Walkmesh
	openWalkmesh   *walkmesh.Walkmesh
}

// NewDoor creates a closed door.
func NewDoor(id uint32) *Door {
	d := &Door{SpatialObject: newSpatialObject(id, TypeDoor)}
	d.selectable = true
	return d
}

// SetWalkmeshes sets the collision meshes for both door states.
func (d *Door) SetWalkmeshes(closed, open *walkmesh.Walkmesh) {
	d.closedWalkmesh = closed
	d.openWalkmesh = open
	d.applyWalkmesh()
}

func (d *Door) IsOpen() bool { return d.open }

// Open switches to the open walkmesh and plays the opening clip.
func (d *Door) Open() {
	if d.open {
		return
	}
	d.open = true
	d.applyWalkmesh()
	if d.model != nil {
		d.model.PlayAnimation("opening1")
	}
}

// Close switches back to the closed walkmesh.
func (d *Door) Close() {
	if !d.open {
		return
	}
	d.open = false
	d.applyWalkmesh()
	if d.model != nil {
		d.model.PlayAnimation("closing1")
	}
}

func (d *Door) applyWalkmesh() {
	if d.open {
		d.walkmesh = d.openWalkmesh
	} else {
		d.walkmesh = d.closedWalkmesh
	}
}
