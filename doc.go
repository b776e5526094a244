// Package pts provides points with a variable number of dimensions and
// ordered groups of such points.
//
// A Pt is created from a list of numbers, a slice, a map of named
// coordinates or another point:
//
//	p := pts.NewPt(1, 2, 3)
//	q := pts.NewPt(map[string]float64{"x": 1, "y": 2})
//
// Operations on a Pt change the point in place and return it, so they can be
// chained. Pure offers the same operations on a copy:
//
//	p.Add(1).Multiply(2)      // changes p
//	r := p.Pure().Add(1)      // p is unchanged
//
// A Group holds points in order and offers collection operations (Split,
// Insert, Remove, Zip) as well as geometry operations (Interpolate, MoveBy,
// MoveTo, Scale).
//
// Op and Ops bind a Transform to a point or group, returning a function that
// can be called again and again with different arguments. The transform
// catalog in package gm is written to be used this way.
package pts
