// Package tolerance provides the real-number comparisons used by the geometry
// packages. Two values are equal when they differ by no more than a tolerance.
package tolerance

import "math"

// NormLength is the tolerance used when comparing components of unit vectors.
const NormLength = 1e-4

// EqualFunc reports whether a and b are equal within tol.
type EqualFunc func(tol, a, b float64) bool

// Equals reports whether |a-b| <= tol.
func Equals(tol, a, b float64) bool {
	return math.Abs(a-b) <= tol
}

// GreaterThan reports whether a > b by more than tol.
func GreaterThan(tol, a, b float64) bool {
	return a > b && !Equals(tol, a, b)
}
