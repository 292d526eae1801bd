package vector

import (
	"math"

	"sci3d/internal/geometry/tolerance"
)

// Comparer holds a tolerance and the predicate used to compare reals with it.
//
// When comparing unit vectors Tol should be tolerance.NormLength; for points
// and non normalized directions use the length tolerance of the model.
// A nil Equal uses tolerance.Equals.
type Comparer struct {
	Tol   float64
	Equal tolerance.EqualFunc
}

// NewComparer returns a Comparer using tolerance.Equals.
func NewComparer(tol float64) Comparer {
	return Comparer{Tol: tol, Equal: tolerance.Equals}
}

func (c Comparer) eq(a, b float64) bool {
	if c.Equal == nil {
		return tolerance.Equals(c.Tol, a, b)
	}
	return c.Equal(c.Tol, a, b)
}

// Equals reports whether every component of a matches b within the tolerance.
func (c Comparer) Equals(a, b Vec3) bool {
	return c.eq(a.x, b.x) && c.eq(a.y, b.y) && c.eq(a.z, b.z)
}

// Angle returns the unsigned angle in radians between a and b, in [0, pi].
func (c Comparer) Angle(a, b Vec3) float64 {
	if c.Equals(a, b) {
		return 0
	}

	dp := a.Dot(b)
	l2 := a.Length() * b.Length()

	// acos is ill-conditioned near -1 and 1, where rounding can push the
	// ratio outside its domain.
	if c.eq(math.Abs(dp), l2) {
		if dp*l2 < 0 {
			return math.Pi
		}
		return 0
	}

	return math.Acos(dp / l2)
}

// Concordant reports whether a.Dot(b) exceeds the tolerance, a cheap test
// for a and b pointing the same general way.
func (c Comparer) Concordant(a, b Vec3) bool {
	return tolerance.GreaterThan(c.Tol, a.Dot(b), 0)
}

// AngleToward returns the angle in radians, in [0, 2pi), sweeping from a
// toward b rotating around refAxis by the right-hand rule.
func (c Comparer) AngleToward(a, b, refAxis Vec3) float64 {
	ang := c.Angle(a, b)
	if ang == 0 || c.Concordant(a.Cross(b), refAxis) {
		return ang
	}
	return 2*math.Pi - ang
}

// Parallel reports whether a and b have the same or opposite direction.
// Zero vectors are parallel to nothing.
func (c Comparer) Parallel(a, b Vec3) bool {
	ua, ub := a.Normalized(), b.Normalized()
	return c.Equals(ua, ub) || c.Equals(ua, ub.Neg())
}

// Perpendicular reports whether a and b are orthogonal.
// Zero vectors are perpendicular to nothing.
func (c Comparer) Perpendicular(a, b Vec3) bool {
	return c.eq(a.Normalized().Dot(b.Normalized()), 0)
}

// EqualsTol reports whether v matches (x, y, z) within tol.
func (v Vec3) EqualsTol(tol, x, y, z float64) bool {
	return NewComparer(tol).Equals(v, Vec3{x, y, z})
}

// EqualsTolVec reports whether v matches o within tol.
func (v Vec3) EqualsTolVec(tol float64, o Vec3) bool {
	return NewComparer(tol).Equals(v, o)
}

// AngleRad returns the angle (rad) between v and to, in [0, pi].
// tol must be tolerance.NormLength if comparing normalized vectors.
func (v Vec3) AngleRad(tol float64, to Vec3) float64 {
	return NewComparer(tol).Angle(v, to)
}

// Concordant reports whether v.Dot(o) > tol.
func (v Vec3) Concordant(tol float64, o Vec3) bool {
	return NewComparer(tol).Concordant(v, o)
}

// AngleToward returns the angle (rad) from v going toward to, rotating
// around refAxis with the right-hand rule, in [0, 2pi).
func (v Vec3) AngleToward(tol float64, to, refAxis Vec3) float64 {
	return NewComparer(tol).AngleToward(v, to, refAxis)
}

// IsParallelTo reports whether v and o are parallel or anti-parallel.
func (v Vec3) IsParallelTo(tol float64, o Vec3) bool {
	return NewComparer(tol).Parallel(v, o)
}

// IsPerpendicular reports whether v and o are orthogonal.
func (v Vec3) IsPerpendicular(tol float64, o Vec3) bool {
	return NewComparer(tol).Perpendicular(v, o)
}
