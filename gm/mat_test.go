package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMat_Inverse(t *testing.T) {
	m := RotationMat(2)
	require.NotEqual(t, m, m.Inverse())

	back := m.Inverse().Inverse()
	for row := range 2 {
		for col := range 2 {
			require.InDelta(t, m[row][col], back[row][col], 1e-12)
		}
	}
}

func TestMat_InverseIdentity(t *testing.T) {
	m := IdentityMat()
	require.Equal(t, m, m.Inverse())
}

func TestMat_TryInverseSingular(t *testing.T) {
	_, ok := ScaleMat(0, 1).TryInverse()
	require.False(t, ok)

	require.Panics(t, func() { ScaleMat(1, 0).Inverse() })
}

func TestMat_Mul(t *testing.T) {
	m := RotationMat(math.Pi).Mul(RotationMat(math.Pi / 2))
	expected := RotationMat(math.Pi * 1.5)

	for row := range 2 {
		for col := range 2 {
			require.InDelta(t, expected[row][col], m[row][col], 1e-12)
		}
	}
}

func TestMat_Transform(t *testing.T) {
	t.Run("rotate 180°", func(t *testing.T) {
		m := RotationMat(math.Pi)

		x, y := m.Transform(1, 1)
		require.InDelta(t, -1, x, 1e-6)
		require.InDelta(t, -1, y, 1e-6)

		x, y = m.Transform(0, 1)
		require.InDelta(t, 0, x, 1e-6)
		require.InDelta(t, -1, y, 1e-6)
	})

	t.Run("rotate 90°", func(t *testing.T) {
		m := RotationMat(math.Pi / 2)

		x, y := m.Transform(1, 1)
		require.InDelta(t, -1, x, 1e-6)
		require.InDelta(t, 1, y, 1e-6)

		x, y = m.Transform(1, 0)
		require.InDelta(t, 0, x, 1e-6)
		require.InDelta(t, 1, y, 1e-6)
	})

	t.Run("shear", func(t *testing.T) {
		x, y := ShearMat(2, 0).Transform(1, 3)
		require.Equal(t, 7.0, x)
		require.Equal(t, 3.0, y)
	})
}
