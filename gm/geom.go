package gm

import (
	"log/slog"

	"github.com/oliverbestmann/pts"
)

// Scale scales all members of g around an anchor.
//
// Arguments: the scale factor, either a scalar or anything accepted by
// pts.NewPt (defaults to 1), and an optional anchor (defaults to the origin).
func Scale(g *pts.Group, args ...any) *pts.Group {
	factor := pts.Arg[any](args, 0, 1.0)
	anchor := pts.Arg[any](args, 1, nil)

	g.Scale(factor, anchor)
	return g
}

// Centroid returns the mean of all members of g. It has the dimension of the
// first member. The centroid of an empty group is an empty point.
func Centroid(g *pts.Group, _ ...any) *pts.Pt {
	if len(*g) == 0 {
		return pts.PtOf()
	}

	sum := (*g)[0].Clone()
	for _, p := range (*g)[1:] {
		sum.Add(p)
	}

	return sum.Divide(float64(len(*g)))
}

// Rotate2D rotates the x and y components of all members of g.
//
// Arguments: the angle in radians (float64 or Rad) and an optional
// anchor point (defaults to the origin).
func Rotate2D(g *pts.Group, args ...any) *pts.Group {
	angle := pts.Arg(args, 0, 0.0)

	tr := IdentityAffine().Rotate(Rad(angle))
	if anchor := pts.Arg[*pts.Pt](args, 1, nil); anchor != nil {
		tr = tr.Around(anchor)
	}

	tr.ApplyGroup(*g)
	return g
}

// Shear2D shears the x and y components of all members of g.
//
// Arguments: the shear factors along x and y, and an optional anchor point.
func Shear2D(g *pts.Group, args ...any) *pts.Group {
	sx := pts.Arg(args, 0, 0.0)
	sy := pts.Arg(args, 1, 0.0)

	tr := IdentityAffine().Shear(sx, sy)
	if anchor := pts.Arg[*pts.Pt](args, 2, nil); anchor != nil {
		tr = tr.Around(anchor)
	}

	tr.ApplyGroup(*g)
	return g
}

// Interpolate returns the point at the position given by the first argument
// along the polyline through the members of g, see pts.Group.Interpolate.
func Interpolate(g *pts.Group, args ...any) *pts.Pt {
	t := pts.Arg(args, 0, 0.0)
	if len(*g) == 0 {
		pts.Logger().Debug("Interpolating empty group", slog.Float64("t", t))
	}

	return g.Interpolate(t)
}
