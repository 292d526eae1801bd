// Package vector provides an immutable 3D vector and its algebra.
//
// A Vec3 is a point or a direction in 3D Euclidean space. Components are only
// readable; every operation returns a new value. Comparisons between vectors
// are always made within a tolerance, see EqualsTol and Comparer.
package vector

import "math"

// Vec3 is an immutable 3D vector.
type Vec3 struct{ x, y, z float64 }

var (
	zero  = Vec3{0, 0, 0}
	xAxis = Vec3{1, 0, 0}
	yAxis = Vec3{0, 1, 0}
	zAxis = Vec3{0, 0, 1}
)

// New creates a new 3D vector with the given components
func New(x, y, z float64) Vec3 {
	return Vec3{x: x, y: y, z: z}
}

// FromSlice builds (s[0], s[1], s[2]) from a 3 elements slice or
// (s[0], s[1], 0) from a 2 elements slice.
func FromSlice(s []float64) (Vec3, error) {
	switch len(s) {
	case 3:
		return Vec3{s[0], s[1], s[2]}, nil
	case 2:
		return Vec3{s[0], s[1], 0}, nil
	default:
		return Vec3{}, &ArgumentError{Len: len(s)}
	}
}

// Zero returns the (0,0,0) vector.
func Zero() Vec3 { return zero }

// XAxis returns the (1,0,0) unit vector.
func XAxis() Vec3 { return xAxis }

// YAxis returns the (0,1,0) unit vector.
func YAxis() Vec3 { return yAxis }

// ZAxis returns the (0,0,1) unit vector.
func ZAxis() Vec3 { return zAxis }

// X returns the x component
func (v Vec3) X() float64 { return v.x }

// Y returns the y component
func (v Vec3) Y() float64 { return v.y }

// Z returns the z component
func (v Vec3) Z() float64 { return v.z }

// Neg returns the vector with all components sign flipped.
func (v Vec3) Neg() Vec3 { return v.Mul(-1) }

// Add returns the sum of two vectors
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.x + o.x, v.y + o.y, v.z + o.z} }

// Sub returns the difference between two vectors
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.x - o.x, v.y - o.y, v.z - o.z} }

// Mul scales a vector by a scalar
func (v Vec3) Mul(k float64) Vec3 { return Vec3{v.x * k, v.y * k, v.z * k} }

// Scale is the scalar-first form of Mul: Scale(k, v) == v.Mul(k).
func Scale(k float64, v Vec3) Vec3 { return Vec3{k * v.x, k * v.y, k * v.z} }

// Div divides each component by k. A zero k yields IEEE infinities or NaN.
func (v Vec3) Div(k float64) Vec3 { return Vec3{v.x / k, v.y / k, v.z / k} }

// Length returns the vector's magnitude (Euclidean norm)
func (v Vec3) Length() float64 { return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z) }

// Distance returns the length of v - o.
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Length() }

// Distance2D returns the distance between v and o in the XY plane, ignoring Z.
func (v Vec3) Distance2D(o Vec3) float64 {
	dx, dy := v.x-o.x, v.y-o.y
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalized returns a unit vector in the same direction.
//
// The zero vector has no direction: its components come back as NaN, the
// same way Div(0) propagates. Use IsFinite to detect it.
func (v Vec3) Normalized() Vec3 {
	return v.Div(v.Length())
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.x) && isFinite(v.y) && isFinite(v.z)
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Dot returns the dot product of two vectors: |a| |b| cos(alpha)
func (v Vec3) Dot(o Vec3) float64 { return v.x*o.x + v.y*o.y + v.z*o.z }

// Cross returns the right-handed cross product of two vectors.
// The result is not normalized: its length is |a| |b| sin(alpha).
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		x: v.y*o.z - v.z*o.y,
		y: v.z*o.x - v.x*o.z,
		z: v.x*o.y - v.y*o.x,
	}
}

// Project returns the orthogonal projection of v onto to; the result is
// colinear with to. Projecting onto a zero vector fails with
// ErrDegenerateOperation.
func (v Vec3) Project(to Vec3) (Vec3, error) {
	l := to.Length()
	if l == 0 {
		return Vec3{}, &DegenerateError{Op: "project"}
	}
	return Scale(v.Dot(to)/l, to.Normalized()), nil
}

// Mid returns the point halfway between v and o.
func (v Vec3) Mid(o Vec3) Vec3 { return v.Add(o).Mul(0.5) }

// ScaleAbout scales v by factor with respect to center.
func (v Vec3) ScaleAbout(center Vec3, factor float64) Vec3 {
	return center.Add(v.Sub(center).Mul(factor))
}
