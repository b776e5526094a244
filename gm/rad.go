package gm

import (
	"math"

	"github.com/oliverbestmann/pts"
)

type Rad float64

// AngleOf returns the angle of p in the xy plane.
func AngleOf(p *pts.Pt) Rad {
	return Rad(p.Angle(pts.PlaneXY))
}

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	return (r+math.Pi).Bounded() - math.Pi
}

// Bounded returns the angle normalized to the range [0, 2π)
func (r Rad) Bounded() Rad {
	angle := math.Mod(float64(r), 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle)
}

// DifferenceTo returns the smallest difference between to angles
// normalized to the range [-π, π)
func (r Rad) DifferenceTo(other Rad) Rad {
	return (r - other).Normalized()
}

func (r Rad) Cos() float64 {
	return math.Cos(float64(r))
}

func (r Rad) Sin() float64 {
	return math.Sin(float64(r))
}

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}
