package railview

import (
	"github.com/go-gl/mathgl/mgl64"
)

const degeneratePoseEpsilon = 1e-9

// Camera owns the world-to-camera view matrix of one scene context. It is
// written to only by the viewport that owns the context.
type Camera struct {
	view    *Matrix
	pose    Pose
	hasPose bool
}

func NewCamera() *Camera {
	return &Camera{view: IdentityMatrix()}
}

// SetPose points the camera along the given rail pose. A degenerate pose,
// where the eye sits on its own look-at target, has no defined direction
// and leaves the current view in place.
func (c *Camera) SetPose(p Pose) {
	if p.Position == nil || p.LookAt == nil {
		return
	}
	if p.Position.DistanceTo(p.LookAt) < degeneratePoseEpsilon {
		return
	}
	c.view = LookAtMatrix(p.Position, p.LookAt, NewVector3(0, 1, 0))
	c.pose = Pose{Position: p.Position.Copy(), LookAt: p.LookAt.Copy()}
	c.hasPose = true
}

// Pose returns the last pose applied. ok is false until the first
// successful SetPose.
func (c *Camera) Pose() (pose Pose, ok bool) {
	return c.pose, c.hasPose
}

func (c *Camera) ViewMatrix() *Matrix {
	return c.view
}

// LookAtMatrix builds a world-to-camera matrix for a viewer at eye looking
// toward target. Camera space runs x right, y up, and +z into the screen,
// matching the projection in Mesh.Paint.
func LookAtMatrix(eye, target, up *Vector3) *Matrix {
	e := mgl64.Vec3{eye.X, eye.Y, eye.Z}
	c := mgl64.Vec3{target.X, target.Y, target.Z}
	forward := c.Sub(e).Normalize()

	worldUp := mgl64.Vec3{up.X, up.Y, up.Z}
	if worldUp.Cross(forward).Len() < degeneratePoseEpsilon {
		// Looking straight along the up axis; any horizontal works.
		worldUp = mgl64.Vec3{0, 0, 1}
	}

	view := FromMGL(mgl64.LookAtV(e, c, worldUp))
	// mgl's view space looks down -z; this renderer projects along +z.
	// Negating the right and forward columns flips the convention and
	// keeps the basis right-handed.
	for i := range view.Rows {
		view.Rows[i][0] = -view.Rows[i][0]
		view.Rows[i][2] = -view.Rows[i][2]
	}
	return view
}
