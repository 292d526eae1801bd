package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdDistinct(t *testing.T) {
	assert.NotEqual(t, OrdX, OrdY)
	assert.NotEqual(t, OrdY, OrdZ)
	assert.NotEqual(t, OrdX, OrdZ)

	assert.Equal(t, "X", OrdX.String())
	assert.Equal(t, "Y", OrdY.String())
	assert.Equal(t, "Z", OrdZ.String())
	assert.Equal(t, "Ord(5)", Ord(5).String())
}

func TestAt(t *testing.T) {
	v := New(7, 8, 9)
	for i, expected := range []float64{7, 8, 9} {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	for _, i := range []int{-1, 3, 42} {
		_, err := v.At(i)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOrdinalOutOfRange)

		var oe *OrdinalError
		require.ErrorAs(t, err, &oe)
		assert.Equal(t, i, oe.Index)
	}
}

func TestSet(t *testing.T) {
	v := New(1, 2, 3)

	tests := []struct {
		name     string
		ord      Ord
		expected Vec3
	}{
		{"X", OrdX, New(10, 2, 3)},
		{"Y", OrdY, New(1, 10, 3)},
		{"Z", OrdZ, New(1, 2, 10)},
		{"Unknown", Ord(3), New(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.expected, v.Set(tt.ord, 10))
		})
	}

	assertVec(t, New(1, 2, 3), v)
}
