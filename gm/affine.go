package gm

import "github.com/oliverbestmann/pts"

// Affine represents an affine transformation of the x and y components of a
// point. It consists of a Matrix that describes rotation, scale and shear, as
// well as a Translation.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	Matrix      Mat
	Translation [2]float64
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		Matrix: IdentityMat(),
	}
}

func (a Affine) Rotate(angle Rad) Affine {
	return a.Mul(Affine{Matrix: RotationMat(angle)})
}

func (a Affine) Scale(sx, sy float64) Affine {
	return a.Mul(Affine{Matrix: ScaleMat(sx, sy)})
}

func (a Affine) Shear(sx, sy float64) Affine {
	return a.Mul(Affine{Matrix: ShearMat(sx, sy)})
}

func (a Affine) Translate(dx, dy float64) Affine {
	return a.Mul(Affine{Matrix: IdentityMat(), Translation: [2]float64{dx, dy}})
}

// Around returns a transformation that applies a with the given point as
// its origin.
func (a Affine) Around(anchor *pts.Pt) Affine {
	x, _ := anchor.X()
	y, _ := anchor.Y()

	return IdentityAffine().Translate(x, y).Mul(a).Translate(-x, -y)
}

// Apply transforms the x and y components of p in place. Missing components
// are read as zero and are not added. Other components are not changed.
func (a Affine) Apply(p *pts.Pt) *pts.Pt {
	x, _ := p.X()
	y, _ := p.Y()

	x, y = a.Matrix.Transform(x, y)
	return p.To(x+a.Translation[0], y+a.Translation[1])
}

// ApplyVec transforms a vector. This is different from transforming
// a point in that it will not apply the translation component of the Affine transform.
// The vector will only be rotated, scaled and sheared.
func (a Affine) ApplyVec(p *pts.Pt) *pts.Pt {
	x, _ := p.X()
	y, _ := p.Y()

	x, y = a.Matrix.Transform(x, y)
	return p.To(x, y)
}

// ApplyGroup transforms every member of g in place.
func (a Affine) ApplyGroup(g pts.Group) pts.Group {
	for _, p := range g {
		a.Apply(p)
	}

	return g
}

// Mul multiplies the affine transformation with another transformation.
// The effect of the resulting transformation is the same as transforming a
// point first by other and then by a.
func (a Affine) Mul(other Affine) Affine {
	tx, ty := a.Matrix.Transform(other.Translation[0], other.Translation[1])

	return Affine{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: [2]float64{tx + a.Translation[0], ty + a.Translation[1]},
	}
}

// Inverse returns the inverse of the Affine transformation.
// This method will panic if an inverse can not be calculated.
func (a Affine) Inverse() Affine {
	inverse, ok := a.TryInverse()
	if !ok {
		panic("affine transformation is not invertible")
	}

	return inverse
}

// TryInverse returns the inverse of the Affine transformation if possible.
func (a Affine) TryInverse() (inverse Affine, ok bool) {
	mat, ok := a.Matrix.TryInverse()
	if !ok {
		return Affine{}, false
	}

	tx, ty := mat.Transform(a.Translation[0], a.Translation[1])
	inverse = Affine{
		Matrix:      mat,
		Translation: [2]float64{-tx, -ty},
	}

	return inverse, true
}
