package railview

import "math"

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{X: x, Y: y, Z: z}
}

func (v *Vector3) Copy() *Vector3 {
	return &Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v *Vector3) Normalize() {
	length := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if length == 0 {
		return
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
}

// DistanceTo returns the straight-line distance between v and other.
func (v *Vector3) DistanceTo(other *Vector3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// LerpVector3 interpolates between a and b by frac, where frac 0 is a and
// frac 1 is b.
func LerpVector3(a, b *Vector3, frac float64) *Vector3 {
	return NewVector3(
		a.X+(b.X-a.X)*frac,
		a.Y+(b.Y-a.Y)*frac,
		a.Z+(b.Z-a.Z)*frac,
	)
}
