package vector

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"sci3d/internal/geometry/tolerance"
)

func randomVectors(seed int64, n int) []Vec3 {
	rng := rand.New(rand.NewSource(seed)) // nolint gosec
	vs := make([]Vec3, n)
	for i := range vs {
		vs[i] = New(rng.Float64()*200-100, rng.Float64()*200-100, rng.Float64()*200-100)
	}
	return vs
}

func TestAlgebraProperties(t *testing.T) {
	vs := randomVectors(42, 64)

	for i := 0; i+1 < len(vs); i++ {
		a, b := vs[i], vs[i+1]

		assert.Equal(t, a.Add(b), b.Add(a), "addition commutes")
		assertVec(t, a.Cross(b).Neg(), b.Cross(a))
		assert.Equal(t, a.Sub(b).Length(), a.Distance(b))
		assert.Equal(t, a.Mul(3.5), Scale(3.5, a))
		assert.InDelta(t, 1, a.Normalized().Length(), tolerance.NormLength)

		// cross product is orthogonal to both operands
		c := a.Cross(b)
		assert.InDelta(t, 0, c.Dot(a), 1e-6)
		assert.InDelta(t, 0, c.Dot(b), 1e-6)

		ang := a.AngleRad(tolerance.NormLength, b)
		assert.GreaterOrEqual(t, ang, 0.0)
		assert.LessOrEqual(t, ang, 3.15)

		toward := a.AngleToward(tolerance.NormLength, b, c)
		assert.InDelta(t, ang, toward, 1e-12, "measured around a x b the sweep is the unsigned angle")
	}
}

func TestProjectProperties(t *testing.T) {
	vs := randomVectors(7, 32)

	for i := 0; i+1 < len(vs); i++ {
		v, to := vs[i], vs[i+1]
		p, err := v.Project(to)
		if !assert.NoError(t, err) {
			continue
		}

		assert.True(t, p.IsParallelTo(tolerance.NormLength, to))
		// the residual is orthogonal to the target
		assert.InDelta(t, 0, v.Sub(p).Dot(to), 1e-6)
	}
}
