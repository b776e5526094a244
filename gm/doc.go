// Package gm (stands for geometry math) provides transforms and measures on
// top of the points and groups of package pts.
//
// Scale, Centroid, Rotate2D, Shear2D and Interpolate are transforms in the
// shape of pts.Transform, so they can be bound to a group with pts.Op:
//
//	scale := pts.Op(&group, gm.Scale)
//	scale(2.0)
//
// There is also a 2d matrix type Mat, an affine transform named Affine that
// acts on the x and y components of a point, an axis aligned box Rect, and a
// type named Rad to represent angle values in radian.
package gm
