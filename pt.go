package pts

import (
	"iter"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/viterin/vek"
)

// degenerate is the magnitude below which a vector has no usable direction.
const degenerate = 1e-12

// Pt is a point or vector with a variable number of components.
//
// Methods that change a point mutate the receiver and return it again, so
// calls can be chained. Use Pure to get the same operations on a copy.
type Pt struct {
	c []float64
}

// NewPt creates a new point. It accepts another point, a slice of numbers,
// a map[string]float64 with the keys x, y, z and w, or a list of numbers.
// The input is always copied.
//
// Arguments of any other shape result in an empty point.
func NewPt(args ...any) *Pt {
	values, ok := components(args)
	if !ok {
		Logger().Debug("Creating empty point from unsupported input",
			slog.Int("args", len(args)))
	}

	return &Pt{c: values}
}

// PtOf creates a new point from the given components.
func PtOf(values ...float64) *Pt {
	return &Pt{c: slices.Clone(values)}
}

// MakePt creates a point with the given number of dimensions, each
// component set to value.
func MakePt(dimensions int, value float64) *Pt {
	return &Pt{c: filled(dimensions, value)}
}

func (p *Pt) Clone() *Pt {
	return &Pt{c: slices.Clone(p.c)}
}

// Values returns a copy of the components of p.
func (p *Pt) Values() []float64 {
	return slices.Clone(p.c)
}

// Len returns the number of dimensions.
func (p *Pt) Len() int {
	return len(p.c)
}

// At returns the component at idx.
func (p *Pt) At(idx int) (float64, error) {
	if idx < 0 || idx >= len(p.c) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", idx, len(p.c))
	}

	return p.c[idx], nil
}

// Set updates the component at idx.
func (p *Pt) Set(idx int, value float64) error {
	if idx < 0 || idx >= len(p.c) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", idx, len(p.c))
	}

	p.c[idx] = value
	return nil
}

func (p *Pt) X() (float64, bool) { return p.named(0) }
func (p *Pt) Y() (float64, bool) { return p.named(1) }
func (p *Pt) Z() (float64, bool) { return p.named(2) }
func (p *Pt) W() (float64, bool) { return p.named(3) }

func (p *Pt) named(idx int) (float64, bool) {
	if idx >= len(p.c) {
		return 0, false
	}

	return p.c[idx], true
}

// component reads a component, treating missing ones as zero.
func (p *Pt) component(idx int) float64 {
	value, _ := p.named(idx)
	return value
}

// All iterates over the index and value of every component.
func (p *Pt) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for idx, value := range p.c {
			if !yield(idx, value) {
				return
			}
		}
	}
}

func (p *Pt) String() string {
	var sb strings.Builder
	sb.WriteString("Pt(")

	for idx, value := range p.c {
		if idx > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
	}

	sb.WriteString(")")
	return sb.String()
}

// To overwrites the components of p positionally. Values past the length
// of p are ignored.
func (p *Pt) To(args ...any) *Pt {
	copy(p.c, positional(args))
	return p
}

// Add adds a point, a list of numbers or a scalar to p. Missing components
// of a shorter operand leave p unchanged.
func (p *Pt) Add(args ...any) *Pt {
	if len(p.c) > 0 {
		vek.Add_Inplace(p.c, operand(args, len(p.c), 0))
	}

	return p
}

func (p *Pt) Subtract(args ...any) *Pt {
	if len(p.c) > 0 {
		vek.Sub_Inplace(p.c, operand(args, len(p.c), 0))
	}

	return p
}

func (p *Pt) Multiply(args ...any) *Pt {
	if len(p.c) > 0 {
		vek.Mul_Inplace(p.c, operand(args, len(p.c), 1))
	}

	return p
}

func (p *Pt) Divide(args ...any) *Pt {
	if len(p.c) > 0 {
		vek.Div_Inplace(p.c, operand(args, len(p.c), 1))
	}

	return p
}

// Dot returns the dot product of p with the operand.
func (p *Pt) Dot(args ...any) float64 {
	if len(p.c) == 0 {
		return 0
	}

	return vek.Dot(p.c, operand(args, len(p.c), 0))
}

// Magnitude returns the euclidean length of p.
func (p *Pt) Magnitude() float64 {
	if len(p.c) == 0 {
		return 0
	}

	return vek.Norm(p.c)
}

func (p *Pt) MagnitudeSq() float64 {
	return p.Dot(p)
}

// Distance returns the euclidean distance between p and other.
func (p *Pt) Distance(other *Pt) float64 {
	return p.Clone().Subtract(other).Magnitude()
}

// Unit returns a new point with the direction of p and a magnitude of one.
// The unit of a zero vector is a zero vector of the same dimension.
func (p *Pt) Unit() *Pt {
	magnitude := p.Magnitude()
	if magnitude < degenerate {
		Logger().Debug("Unit of zero vector", slog.Int("dims", len(p.c)))
		return MakePt(len(p.c), 0)
	}

	return p.Clone().Divide(magnitude)
}

// Cross sets p to the cross product of p and the operand. Both must have
// exactly three dimensions.
func (p *Pt) Cross(args ...any) (*Pt, error) {
	other := positional(args)
	if len(p.c) != 3 || len(other) != 3 {
		return p, errors.Wrapf(ErrDimensionMismatch,
			"cross product needs 3 dimensions, got %d and %d", len(p.c), len(other))
	}

	lhs := r3.Vector{X: p.c[0], Y: p.c[1], Z: p.c[2]}
	rhs := r3.Vector{X: other[0], Y: other[1], Z: other[2]}

	res := lhs.Cross(rhs)
	p.c[0], p.c[1], p.c[2] = res.X, res.Y, res.Z

	return p, nil
}

// Project sets p to its projection onto the direction of the operand,
// that is (p·o / |o|²) * o.
func (p *Pt) Project(args ...any) (*Pt, error) {
	other := operand(args, len(p.c), 0)

	magnitudeSq := 0.0
	if len(other) > 0 {
		magnitudeSq = vek.Dot(other, other)
	}

	if magnitudeSq < degenerate*degenerate {
		return p, errors.Wrap(ErrDegenerateVector, "project onto zero vector")
	}

	factor := p.Dot(other) / magnitudeSq

	copy(p.c, other)
	vek.MulNumber_Inplace(p.c, factor)

	return p, nil
}

// Plane names two axes of a point.
type Plane string

const (
	PlaneXY Plane = "xy"
	PlaneYZ Plane = "yz"
	PlaneXZ Plane = "xz"
)

// axes returns the indices of the plane's axes. Unknown planes map to xy.
func (pl Plane) axes() (int, int) {
	switch pl {
	case PlaneYZ:
		return 1, 2
	case PlaneXZ:
		return 0, 2
	default:
		return 0, 1
	}
}

// Angle returns the angle of p within the given plane, measured from the
// first axis of the plane towards the second. Missing components count as zero.
func (p *Pt) Angle(plane Plane) float64 {
	a, b := plane.axes()
	return math.Atan2(p.component(b), p.component(a))
}

// AngleBetween returns the angle of other minus the angle of p, both in the
// xy plane. A nil other counts as the origin.
func (p *Pt) AngleBetween(other *Pt) float64 {
	if other == nil {
		return -p.Angle(PlaneXY)
	}

	return other.Angle(PlaneXY) - p.Angle(PlaneXY)
}

// ToAngle rotates the x and y components of p around the origin to the
// given angle, keeping its magnitude.
func (p *Pt) ToAngle(radian float64) *Pt {
	return p.ToAngleAt(radian, p.Magnitude(), false)
}

// ToAngleAt sets the x and y components of p to the point at the given
// angle and distance from the origin. If fromCurrent is set, the offset is
// added to the current position instead. Other components are unchanged.
func (p *Pt) ToAngleAt(radian, magnitude float64, fromCurrent bool) *Pt {
	sin, cos := math.Sincos(radian)
	offset := []float64{cos * magnitude, sin * magnitude}

	if fromCurrent {
		return p.Add(offset)
	}

	return p.To(offset)
}

func (p *Pt) Abs() *Pt {
	if len(p.c) > 0 {
		vek.Abs_Inplace(p.c)
	}

	return p
}

// Min sets each component of p to the minimum of itself and the
// corresponding component of the operand.
func (p *Pt) Min(args ...any) *Pt {
	other := positional(args)
	if n := min(len(other), len(p.c)); n > 0 {
		vek.Minimum_Inplace(p.c[:n], other[:n])
	}

	return p
}

// Max sets each component of p to the maximum of itself and the
// corresponding component of the operand.
func (p *Pt) Max(args ...any) *Pt {
	other := positional(args)
	if n := min(len(other), len(p.c)); n > 0 {
		vek.Maximum_Inplace(p.c[:n], other[:n])
	}

	return p
}

// Lerp moves p towards other by the factor t. A value of 0 keeps p,
// a value of 1 moves it onto other. Components missing in other are kept.
func (p *Pt) Lerp(other *Pt, t float64) *Pt {
	if other == nil {
		return p
	}

	for idx := range min(len(p.c), len(other.c)) {
		p.c[idx] += (other.c[idx] - p.c[idx]) * t
	}

	return p
}

// Map replaces every component with the result of fn.
func (p *Pt) Map(fn func(value float64, idx int, p *Pt) float64) *Pt {
	for idx, value := range p.c {
		p.c[idx] = fn(value, idx, p)
	}

	return p
}

// Concat appends the components of the operand to p.
func (p *Pt) Concat(args ...any) *Pt {
	p.c = append(p.c, positional(args)...)
	return p
}

// Slice keeps the components in the half open range [start, end).
// Negative indices count from the end, out of range indices are clamped.
func (p *Pt) Slice(start, end int) *Pt {
	start = clampIndex(start, len(p.c))
	end = clampIndex(end, len(p.c))

	if end < start {
		end = start
	}

	p.c = slices.Clone(p.c[start:end])
	return p
}

// Take keeps the components at the given indices, in the given order.
// Indices out of range are skipped.
func (p *Pt) Take(indices ...int) *Pt {
	values := make([]float64, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(p.c) {
			values = append(values, p.c[idx])
		}
	}

	p.c = values
	return p
}

// Equals reports whether p and other have the same dimension and every
// pair of components differs by at most threshold.
func (p *Pt) Equals(other *Pt, threshold float64) bool {
	if other == nil || len(p.c) != len(other.c) {
		return false
	}

	for idx, value := range p.c {
		if math.Abs(value-other.c[idx]) > threshold {
			return false
		}
	}

	return true
}

// clampIndex resolves a possibly negative index against length and clamps
// it to [0, length].
func clampIndex(idx, length int) int {
	if idx < 0 {
		idx += length
	}

	return max(0, min(idx, length))
}
