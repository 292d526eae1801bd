package vector

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// FromR3 converts a golang/geo r3.Vector.
func FromR3(r r3.Vector) Vec3 { return Vec3{r.X, r.Y, r.Z} }

// ToR3 converts v to a golang/geo r3.Vector.
func (v Vec3) ToR3() r3.Vector { return r3.Vector{X: v.x, Y: v.y, Z: v.z} }

// FromMgl converts a mathgl vector.
func FromMgl(m mgl64.Vec3) Vec3 { return Vec3{m[0], m[1], m[2]} }

// ToMgl converts v to a mathgl vector.
func (v Vec3) ToMgl() mgl64.Vec3 { return mgl64.Vec3{v.x, v.y, v.z} }

// AngleBetween is AngleRad expressed as an s1.Angle.
func (v Vec3) AngleBetween(tol float64, to Vec3) s1.Angle {
	return s1.Angle(v.AngleRad(tol, to)) * s1.Radian
}
