package camera

import "github.com/Faultbox/starforge/pkg/math"

// DialogVariant selects how the dialog camera frames the conversation.
type DialogVariant int

const (
	DialogBoth DialogVariant = iota
	DialogSpeakerClose
	DialogListenerClose
)

// DialogCamera frames a speaker over the listener's shoulder.
type DialogCamera struct {
	lens

	speaker  math.Vec3
	listener math.Vec3
	variant  DialogVariant

	position     math.Vec3
	findObstacle FindObstacleFunc
}

// NewDialogCamera creates a dialog camera.
func NewDialogCamera(aspect float32) *DialogCamera {
	return &DialogCamera{lens: newLens(DefaultFOV, aspect)}
}

// SetFindObstacle installs the obstacle query.
func (c *DialogCamera) SetFindObstacle(fn FindObstacleFunc) { c.findObstacle = fn }

// SetSpeakerPosition sets the head position of the speaking object.
func (c *DialogCamera) SetSpeakerPosition(p math.Vec3) {
	c.speaker = p
	c.recompute()
}

// SetListenerPosition sets the head position of the listening object.
func (c *DialogCamera) SetListenerPosition(p math.Vec3) {
	c.listener = p
	c.recompute()
}

// SetVariant changes the framing.
func (c *DialogCamera) SetVariant(v DialogVariant) {
	c.variant = v
	c.recompute()
}

func (c *DialogCamera) Update(dt float32) { c.recompute() }

func (c *DialogCamera) Position() math.Vec3 { return c.position }

func (c *DialogCamera) View() math.Mat4 {
	return math.LookAt(c.position, c.focus(), math.Up)
}

func (c *DialogCamera) focus() math.Vec3 {
	switch c.variant {
	case DialogListenerClose:
		return c.listener
	case DialogSpeakerClose:
		return c.speaker
	default:
		return c.speaker.Lerp(c.listener, 0.5)
	}
}

func (c *DialogCamera) recompute() {
	// Anchor behind whoever is not in focus, offset to the side.
	from, to := c.listener, c.speaker
	if c.variant == DialogListenerClose {
		from, to = c.speaker, c.listener
	}
	dir := to.Sub(from)
	dir.Z = 0
	dir = dir.Normalize()
	side := math.Vec3{X: dir.Y, Y: -dir.X}

	distance := float32(1.0)
	if c.variant == DialogBoth {
		distance = 2.0
	}
	desired := from.Sub(dir.Scale(distance)).Add(side.Scale(0.5)).Add(math.Vec3{Z: 0.2})
	if c.findObstacle != nil {
		if hit, ok := c.findObstacle(from, desired); ok {
			desired = hit
		}
	}
	c.position = desired
}
