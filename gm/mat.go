package gm

import "math"

// Mat describes a 2d matrix of float64 values in row major order. It acts on
// the x and y components of a point.
type Mat [2][2]float64

func IdentityMat() Mat {
	return Mat{
		{1, 0},
		{0, 1},
	}
}

// ScaleMat returns a matrix that scales x by sx and y by sy.
func ScaleMat(sx, sy float64) Mat {
	return Mat{
		{sx, 0},
		{0, sy},
	}
}

// RotationMat returns a rotation matrix that rotates
// counter clockwise by the given angle
func RotationMat(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		{cos, -sin},
		{sin, cos},
	}
}

// ShearMat returns a matrix that shears x by sx * y and y by sy * x.
func ShearMat(sx, sy float64) Mat {
	return Mat{
		{1, sx},
		{sy, 1},
	}
}

func (m Mat) Transform(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y, m[1][0]*x + m[1][1]*y
}

func (m Mat) Mul(n Mat) Mat {
	var res Mat
	for row := range 2 {
		for col := range 2 {
			res[row][col] = m[row][0]*n[0][col] + m[row][1]*n[1][col]
		}
	}

	return res
}

func (m Mat) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inverse returns the inverse of the matrix.
// This method will panic if the matrix is singular.
func (m Mat) Inverse() Mat {
	inverse, ok := m.TryInverse()
	if !ok {
		panic("matrix is not invertible")
	}

	return inverse
}

// TryInverse returns the inverse of the matrix if possible.
func (m Mat) TryInverse() (Mat, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Mat{}, false
	}

	f := 1 / det
	return Mat{
		{f * m[1][1], f * -m[0][1]},
		{f * -m[1][0], f * m[0][0]},
	}, true
}
