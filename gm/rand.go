package gm

import (
	"math"
	"math/rand/v2"

	"github.com/oliverbestmann/pts"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomPt returns a point with the given number of dimensions, each
// component sampled uniformly from [min, max).
func RandomPt(dims int, min, max float64) *pts.Pt {
	return pts.MakePt(dims, 0).Map(func(float64, int, *pts.Pt) float64 {
		return RandomIn(min, max)
	})
}

// RandomDirection returns a 2d vector of the given length pointing in a
// random direction.
func RandomDirection(length float64) *pts.Pt {
	return pts.MakePt(2, 0).ToAngleAt(RandomAngle().Radians(), length, false)
}
