package railview

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Object is anything a scene context can hold and paint: content meshes,
// gizmos, the demo's models.
type Object interface {
	// Transform recomputes camera-space geometry from the given
	// world-to-camera matrix.
	Transform(view *Matrix)

	// Paint draws the transformed object. cx, cy is the projection center
	// in destination pixels.
	Paint(dst *ebiten.Image, cx, cy int)

	// SetPosition moves the object's origin in world space.
	SetPosition(x, y, z float64)

	// Dispose releases the object's resources. Safe to call repeatedly.
	Dispose()
}

// Scene is an isolated scene context: one camera and one root container of
// objects, with no state shared with any other renderer. Sharing a render
// context across independent renderers corrupts each other's draw state,
// so every consumer constructs its own Scene and owns it exclusively.
//
// Dispose releases everything the context still owns. Using the context
// afterwards is a programming error and is refused.
type Scene struct {
	camera   *Camera
	objects  []Object
	disposed bool
}

func NewScene() *Scene {
	return &Scene{camera: NewCamera()}
}

func (s *Scene) Camera() *Camera {
	return s.camera
}

// Add inserts an object into the root container. Adding an object that is
// already a member returns ErrAlreadyAdded and changes nothing.
func (s *Scene) Add(obj Object) error {
	if s.disposed {
		return ErrDisposed
	}
	if s.Contains(obj) {
		return ErrAlreadyAdded
	}
	s.objects = append(s.objects, obj)
	return nil
}

// Remove detaches an object from the root container. Removing an object
// that is not a member is a no-op.
func (s *Scene) Remove(obj Object) error {
	if s.disposed {
		return ErrDisposed
	}
	for i, member := range s.objects {
		if member == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Scene) Contains(obj Object) bool {
	for _, member := range s.objects {
		if member == obj {
			return true
		}
	}
	return false
}

// Len is the number of objects in the root container.
func (s *Scene) Len() int {
	return len(s.objects)
}

func (s *Scene) Disposed() bool {
	return s.disposed
}

// Paint draws every object through the current camera, in insertion
// order. On a disposed context it does nothing rather than touch freed
// state.
func (s *Scene) Paint(dst *ebiten.Image, width, height int) {
	if s.disposed {
		return
	}
	view := s.camera.ViewMatrix()
	for _, obj := range s.objects {
		obj.Transform(view)
		obj.Paint(dst, width/2, height/2)
	}
}

// Dispose releases all objects still in the container and retires the
// context. At most one call does work; the rest are no-ops.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, obj := range s.objects {
		obj.Dispose()
	}
	s.objects = nil
}
