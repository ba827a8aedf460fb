package railview

import "math"

// ControlPoint is one waypoint on a rail: where the camera sits and what
// it looks toward when the rail is sampled there.
type ControlPoint struct {
	Position *Vector3
	LookAt   *Vector3
}

func NewControlPoint(pos, lookAt *Vector3) *ControlPoint {
	return &ControlPoint{Position: pos, LookAt: lookAt}
}

// Pose is one sampled camera placement along a rail.
type Pose struct {
	Position *Vector3
	LookAt   *Vector3
}

// Rail is an ordered camera path through the scene. This package only ever
// reads it; authoring and editing happen elsewhere, possibly against the
// same instance a viewer is holding. Viewports compare rails by instance
// identity to notice replacement.
type Rail struct {
	points []*ControlPoint
}

func NewRail(points ...*ControlPoint) *Rail {
	return &Rail{points: points}
}

func (r *Rail) AppendPoint(p *ControlPoint) {
	r.points = append(r.points, p)
}

func (r *Rail) PointCount() int {
	if r == nil {
		return 0
	}
	return len(r.points)
}

func (r *Rail) Points() []*ControlPoint {
	return r.points
}

// SampleAt returns the camera pose at normalized position t along the
// rail, with t clamped into [0,1]. Position and look-at interpolate
// linearly within each segment, so t=0 and t=1 land exactly on the first
// and last control points. Sampling an empty rail is undefined; callers
// check PointCount first.
func (r *Rail) SampleAt(t float64) Pose {
	t = clamp01(t)
	n := len(r.points)
	if n == 1 {
		only := r.points[0]
		return Pose{Position: only.Position.Copy(), LookAt: only.LookAt.Copy()}
	}

	scaled := t * float64(n-1)
	seg := int(math.Floor(scaled))
	if seg > n-2 {
		seg = n - 2
	}
	frac := scaled - float64(seg)

	from, to := r.points[seg], r.points[seg+1]
	return Pose{
		Position: LerpVector3(from.Position, to.Position, frac),
		LookAt:   LerpVector3(from.LookAt, to.LookAt, frac),
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
