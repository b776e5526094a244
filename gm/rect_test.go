package gm

import (
	"testing"

	"github.com/oliverbestmann/pts"
	"github.com/stretchr/testify/require"
)

func TestBoundsOf(t *testing.T) {
	g := pts.NewGroup(pts.PtOf(1, 5, 0), pts.PtOf(-2, 3, 4), pts.PtOf(0, 8, 1))
	r := BoundsOf(g)

	require.True(t, r.Min.Equals(pts.PtOf(-2, 3, 0), 0))
	require.True(t, r.Max.Equals(pts.PtOf(1, 8, 4), 0))
	require.True(t, r.Size().Equals(pts.PtOf(3, 5, 4), 0))
	require.True(t, r.Center().Equals(pts.PtOf(-0.5, 5.5, 2), 0))

	for _, p := range g {
		require.True(t, r.Contains(p))
	}

	require.False(t, r.Contains(pts.PtOf(0, 0, 0)))
	require.False(t, r.Contains(pts.PtOf(0, 5)))

	empty := BoundsOf(pts.Group{})
	require.Equal(t, 0, empty.Min.Len())
}

func TestRect(t *testing.T) {
	r := RectWithPoints(pts.PtOf(4, 1), pts.PtOf(2, 3))
	require.Equal(t, "Rect(min=Pt(2, 1), max=Pt(4, 3))", r.String())

	moved := r.Translate(1, -1)
	require.True(t, moved.Min.Equals(pts.PtOf(3, 0), 0))
	require.True(t, r.Min.Equals(pts.PtOf(2, 1), 0))

	centered := RectWithCenterAndSize(pts.PtOf(0, 0), pts.PtOf(4, 2))
	require.True(t, centered.Min.Equals(pts.PtOf(-2, -1), 0))
	require.True(t, centered.Max.Equals(pts.PtOf(2, 1), 0))
	require.Len(t, centered.Group(), 2)
}
