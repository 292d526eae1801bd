package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"sci3d/internal/geometry/tolerance"
)

func TestEqualsTol(t *testing.T) {
	v := New(1, 2, 3)
	assert.True(t, v.EqualsTol(1e-3, 1.0005, 2, 2.9995))
	assert.False(t, v.EqualsTol(1e-3, 1, 2, 3.01))
	assert.True(t, v.EqualsTolVec(0, New(1, 2, 3)))
	assert.False(t, v.EqualsTolVec(1e-3, New(1, 2.01, 3)))
}

func TestAngleRad(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"Orthogonal", XAxis(), YAxis(), math.Pi / 2},
		{"Same", New(1, 1, 0), New(1, 1, 0), 0},
		{"Parallel", New(1, 0, 0), New(5, 0, 0), 0},
		{"AntiParallel", New(1, 0, 0), New(-3, 0, 0), math.Pi},
		{"Diagonal", XAxis(), New(1, 1, 0), math.Pi / 4},
		{"Obtuse", XAxis(), New(-1, 1, 0), 3 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.AngleRad(tolerance.NormLength, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, math.Pi)
		})
	}
}

func TestAngleRadNearParallel(t *testing.T) {
	// the acos argument would leave [-1, 1] without the parallel branch
	a := New(1, 1e-9, 0)

	got := a.AngleRad(1e-4, New(2, 0, 0))
	assert.False(t, math.IsNaN(got))
	assert.Equal(t, 0.0, got)

	got = a.AngleRad(1e-4, New(-1, 0, 0))
	assert.Equal(t, math.Pi, got)
}

func TestConcordant(t *testing.T) {
	assert.True(t, XAxis().Concordant(tolerance.NormLength, New(1, 1, 0).Normalized()))
	assert.False(t, XAxis().Concordant(tolerance.NormLength, YAxis()))
	assert.False(t, XAxis().Concordant(tolerance.NormLength, XAxis().Neg()))
	assert.False(t, XAxis().Concordant(0.5, New(0.4, 1, 0)))

	// the dot product must exceed the tolerance, not merely reach it
	assert.False(t, XAxis().Concordant(0.5, New(0.5, 1, 0)))
	assert.True(t, XAxis().Concordant(0.5, New(0.5001, 1, 0)))
	assert.False(t, XAxis().Concordant(0, YAxis()))
}

func TestAngleToward(t *testing.T) {
	v1 := New(10, 0, 0)
	v2 := New(2, 5, 0)
	const radTol = 1e-9

	v1v2Zplus := v1.AngleToward(tolerance.NormLength, v2, ZAxis())
	v1v2Zminus := v1.AngleToward(tolerance.NormLength, v2, ZAxis().Neg())
	v2v1Zplus := v2.AngleToward(tolerance.NormLength, v1, ZAxis())
	v2v1Zminus := v2.AngleToward(tolerance.NormLength, v1, ZAxis().Neg())

	expected := math.Atan2(5, 2)
	assert.InDelta(t, expected, v1v2Zplus, radTol)
	assert.InDelta(t, v1v2Zplus, v2v1Zminus, radTol)
	assert.InDelta(t, 2*math.Pi-expected, v2v1Zplus, radTol)
	assert.InDelta(t, v2v1Zplus, v1v2Zminus, radTol)

	assert.InDelta(t, math.Pi/2, XAxis().AngleToward(tolerance.NormLength, YAxis(), ZAxis()), radTol)
	assert.InDelta(t, 3*math.Pi/2, YAxis().AngleToward(tolerance.NormLength, XAxis(), ZAxis()), radTol)
	assert.InDelta(t, math.Pi, XAxis().AngleToward(tolerance.NormLength, XAxis().Neg(), ZAxis()), radTol)
}

func TestAngleTowardParallelIsZero(t *testing.T) {
	got := New(1, 0, 0).AngleToward(tolerance.NormLength, New(3, 0, 0), ZAxis())
	assert.Equal(t, 0.0, got)
}

func TestParallelPerpendicular(t *testing.T) {
	assert.True(t, New(1, 2, 3).IsParallelTo(tolerance.NormLength, New(2, 4, 6)))
	assert.True(t, New(1, 2, 3).IsParallelTo(tolerance.NormLength, New(-2, -4, -6)))
	assert.False(t, New(1, 2, 3).IsParallelTo(tolerance.NormLength, New(1, 2, 4)))
	assert.False(t, Zero().IsParallelTo(tolerance.NormLength, XAxis()))

	assert.True(t, XAxis().IsPerpendicular(tolerance.NormLength, New(0, 3, -2)))
	assert.False(t, XAxis().IsPerpendicular(tolerance.NormLength, New(1, 1, 0)))
	assert.False(t, Zero().IsPerpendicular(tolerance.NormLength, XAxis()))
}

func TestComparerInjectedPredicate(t *testing.T) {
	var calls int
	exact := func(tol, a, b float64) bool {
		calls++
		return a == b
	}

	c := Comparer{Tol: 1, Equal: exact}
	assert.False(t, c.Equals(New(1, 2, 3), New(1.5, 2, 3)))
	assert.True(t, c.Equals(New(1, 2, 3), New(1, 2, 3)))
	assert.Positive(t, calls)

	// a nil predicate falls back to tolerance.Equals
	assert.True(t, Comparer{Tol: 1}.Equals(New(1, 2, 3), New(1.5, 2, 3)))
	assert.True(t, NewComparer(1).Equals(New(1, 2, 3), New(1.5, 2, 3)))
}

func TestComparerMatchesMethods(t *testing.T) {
	c := NewComparer(tolerance.NormLength)
	a, b := New(3, -1, 2), New(0.5, 4, 1)

	assert.Equal(t, a.AngleRad(c.Tol, b), c.Angle(a, b))
	assert.Equal(t, a.AngleToward(c.Tol, b, ZAxis()), c.AngleToward(a, b, ZAxis()))
	assert.Equal(t, a.Concordant(c.Tol, b), c.Concordant(a, b))
}
