package area

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/starforge/internal/engine/camera"
	"github.com/Faultbox/starforge/internal/engine/model"
	"github.com/Faultbox/starforge/internal/game/object"
	"github.com/Faultbox/starforge/internal/logger"
	"github.com/Faultbox/starforge/pkg/math"
)

// CameraType selects one of the area cameras.
type CameraType uint8

const (
	CameraFirstPerson CameraType = iota
	CameraThirdPerson
	CameraStatic
	CameraAnimated
	CameraDialog
)

var cameraTypeNames = map[string]CameraType{
	"first_person": CameraFirstPerson,
	"third_person": CameraThirdPerson,
	"static":       CameraStatic,
	"animated":     CameraAnimated,
	"dialog":       CameraDialog,
}

// ParseCameraType returns the camera type with the given config name.
func ParseCameraType(name string) (CameraType, bool) {
	t, ok := cameraTypeNames[name]
	return t, ok
}

// CameraStyleType selects a third-person camera style.
type CameraStyleType uint8

const (
	CameraStyleDefault CameraStyleType = iota
	CameraStyleCombat
)

// eyeHeight is the first-person eye height above the entry point.
const eyeHeight = 1.7

func (a *Area) initCameras(entry math.Vec3, facing float32) {
	eye := entry.Add(math.Vec3{Z: eyeHeight})

	a.firstPerson = camera.NewFirstPersonCamera(a.opts.FieldOfView, a.opts.Aspect)
	a.firstPerson.SetPosition(eye)
	a.firstPerson.Facing = facing

	a.thirdPerson = camera.NewThirdPersonCamera(a.opts.Aspect)
	a.thirdPerson.SetStyle(a.cameraStyle)
	a.thirdPerson.SetFindObstacle(a.findCameraObstacle)
	a.thirdPerson.Facing = facing
	a.thirdPerson.SetTargetPosition(eye)

	a.dialog = camera.NewDialogCamera(a.opts.Aspect)
	a.dialog.SetFindObstacle(a.findCameraObstacle)

	a.animated = camera.NewAnimatedCamera(a.opts.Aspect)
	a.static = camera.NewStaticCamera(a.opts.Aspect)
}

// Camera returns the camera of the given type. Values outside the enum panic.
func (a *Area) Camera(t CameraType) camera.Camera {
	switch t {
	case CameraFirstPerson:
		return a.firstPerson
	case CameraThirdPerson:
		return a.thirdPerson
	case CameraStatic:
		return a.static
	case CameraAnimated:
		return a.animated
	case CameraDialog:
		return a.dialog
	default:
		panic(fmt.Sprintf("area: unsupported camera type %d", uint8(t)))
	}
}

func (a *Area) FirstPersonCamera() *camera.FirstPersonCamera { return a.firstPerson }

func (a *Area) ThirdPersonCamera() *camera.ThirdPersonCamera { return a.thirdPerson }

func (a *Area) StaticCamera() *camera.StaticCamera { return a.static }

func (a *Area) AnimatedCamera() *camera.AnimatedCamera { return a.animated }

func (a *Area) DialogCamera() *camera.DialogCamera { return a.dialog }

// CameraType returns the active camera type.
func (a *Area) CameraType() CameraType { return a.cameraType }

// SetCameraType switches the active camera.
func (a *Area) SetCameraType(t CameraType) {
	a.Camera(t)
	a.cameraType = t
}

// ActiveCamera returns the camera of the active type.
func (a *Area) ActiveCamera() camera.Camera { return a.Camera(a.cameraType) }

// findCameraObstacle clamps a camera segment against room and door walls.
func (a *Area) findCameraObstacle(origin, dest math.Vec3) (math.Vec3, bool) {
	delta := dest.Sub(origin)
	length := delta.Length()
	if length == 0 {
		return math.Vec3{}, false
	}
	dir := delta.Scale(1 / length)
	result, hit := a.collision.Raycast(RaycastQuery{
		Origin:      origin,
		Direction:   dir,
		Distance:    segmentReach(length),
		Flags:       RaycastRooms,
		ObjectTypes: []object.Type{object.TypeDoor},
	})
	if !hit || result.Distance > length {
		return math.Vec3{}, false
	}
	return origin.Add(dir.Scale(result.Distance)), true
}

// SetCameraStyles replaces the default and combat third-person styles.
func (a *Area) SetCameraStyles(def, combat camera.Style) {
	a.cameraStyle = def
	a.combatStyle = combat
	a.thirdPerson.SetStyle(def)
}

// SetThirdPersonCameraStyle applies the default or combat style.
func (a *Area) SetThirdPersonCameraStyle(t CameraStyleType) {
	switch t {
	case CameraStyleCombat:
		a.thirdPerson.SetStyle(a.combatStyle)
	default:
		a.thirdPerson.SetStyle(a.cameraStyle)
	}
}

// SetStaticCamera binds the static camera to the camera object with the
// given camera id. Unknown ids leave it unchanged.
func (a *Area) SetStaticCamera(cameraID int) {
	for _, obj := range a.objectsByType[object.TypeCamera] {
		c := obj.(*object.Camera)
		if c.CameraID != cameraID {
			continue
		}
		a.static.Bind(c.CameraID, c.EyePosition(), c.Facing(), c.Pitch, c.FieldOfView)
		return
	}
	logger.Warn("static camera not found", zap.Int("camera_id", cameraID))
}

// SetAnimatedCameraModel attaches the animated camera to a model by name.
func (a *Area) SetAnimatedCameraModel(name string) error {
	if a.services.Resources == nil {
		return fmt.Errorf("animated camera %s: no resources", name)
	}
	m, err := a.services.Resources.Model(name)
	if err != nil {
		return fmt.Errorf("animated camera: %w", err)
	}
	a.animated.SetModel(m)
	return nil
}

// StartDialogCamera frames a conversation between two objects.
func (a *Area) StartDialogCamera(speaker, listener object.Object, variant camera.DialogVariant) {
	a.dialog.SetSpeakerPosition(speaker.Spatial().SightPoint())
	a.dialog.SetListenerPosition(listener.Spatial().SightPoint())
	a.dialog.SetVariant(variant)
	a.SetCameraType(CameraDialog)
}

// updateThirdPersonCameraTarget aims the camera at the leader's camera
// hook, or its position without one.
func (a *Area) updateThirdPersonCameraTarget() {
	leader := a.PartyLeader()
	if leader == nil {
		return
	}
	target := leader.Position()
	if m := leader.Model(); m != nil {
		if hook, ok := m.NodeAbsolutePosition(model.CameraHook); ok {
			target = hook
		}
	}
	a.thirdPerson.SetTargetPosition(target)
}

// UpdateThirdPersonCameraFacing turns the camera behind the leader.
func (a *Area) UpdateThirdPersonCameraFacing() {
	if leader := a.PartyLeader(); leader != nil {
		a.thirdPerson.Facing = leader.Spatial().Facing()
		a.thirdPerson.Update(0)
	}
}
