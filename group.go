package pts

import (
	"math"
	"slices"
	"strings"
)

// Group is an ordered collection of points.
//
// Methods that change the length of a group take a *Group. Geometry
// methods change the member points in place and return the group again.
type Group []*Pt

// NewGroup creates a group holding copies of the given points.
// Nil points are skipped.
func NewGroup(pts ...*Pt) Group {
	return GroupFromPts(pts)
}

// GroupFromPts creates a group holding copies of the given points.
// Nil points are skipped.
func GroupFromPts(pts []*Pt) Group {
	group := make(Group, 0, len(pts))
	for _, pt := range pts {
		if pt != nil {
			group = append(group, pt.Clone())
		}
	}

	return group
}

// GroupFromArray creates a group with one point per slice of components.
func GroupFromArray(values [][]float64) Group {
	group := make(Group, 0, len(values))
	for _, components := range values {
		group = append(group, PtOf(components...))
	}

	return group
}

// Clone returns a deep copy of g.
func (g Group) Clone() Group {
	return GroupFromPts(g)
}

// Map returns a new group holding the results of fn for each member.
// If fn returns nil, the member itself is kept.
func (g Group) Map(fn func(p *Pt, idx int) *Pt) Group {
	mapped := make(Group, len(g))
	for idx, pt := range g {
		mapped[idx] = fn(pt, idx)
		if mapped[idx] == nil {
			mapped[idx] = pt
		}
	}

	return mapped
}

func (g Group) String() string {
	var sb strings.Builder
	sb.WriteString("Group(")

	for idx, pt := range g {
		if idx > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(pt.String())
	}

	sb.WriteString(")")
	return sb.String()
}

// Split partitions g into windows of size points. Each window starts stride
// points after the previous one; a stride of zero or less means stride equals
// size. Splitting stops once fewer than size points remain. The windows hold
// copies of the points.
func (g Group) Split(size, stride int) []Group {
	if size <= 0 {
		return nil
	}

	if stride <= 0 {
		stride = size
	}

	var windows []Group
	for start := 0; start+size <= len(g); start += stride {
		windows = append(windows, g[start:start+size].Clone())
	}

	return windows
}

// Insert inserts copies of the points of other at index. A negative index
// counts from the end of g.
func (g *Group) Insert(other Group, index int) *Group {
	index = clampIndex(index, len(*g))
	*g = slices.Insert(*g, index, other.Clone()...)
	return g
}

// Remove removes the points in the half open range [from, to) and returns
// them. Negative indices count from the end; indices out of range are clamped.
func (g *Group) Remove(from, to int) Group {
	from = clampIndex(from, len(*g))
	to = clampIndex(to, len(*g))

	if to <= from {
		return nil
	}

	removed := slices.Clone((*g)[from:to])
	*g = slices.Delete(*g, from, to)

	return removed
}

// RemoveCount removes up to count points starting at index and returns them.
// A negative index counts from the end.
func (g *Group) RemoveCount(index, count int) Group {
	start := clampIndex(index, len(*g))
	return g.Remove(start, start+min(max(count, 0), len(*g)-start))
}

// ZipOne builds a point from the component at idx of every member.
// Members without that component contribute fallback.
func (g Group) ZipOne(idx int, fallback float64) *Pt {
	values := make([]float64, len(g))
	for member, pt := range g {
		value, err := pt.At(idx)
		if err != nil {
			value = fallback
		}

		values[member] = value
	}

	return &Pt{c: values}
}

// Zip transposes g into one point per component position. The result has
// as many points as the shortest member has components, or as the longest
// if useLongest is set. Missing components are filled with fallback.
func (g Group) Zip(fallback float64, useLongest bool) Group {
	if len(g) == 0 {
		return Group{}
	}

	dims := g[0].Len()
	for _, pt := range g[1:] {
		if useLongest {
			dims = max(dims, pt.Len())
		} else {
			dims = min(dims, pt.Len())
		}
	}

	zipped := make(Group, dims)
	for idx := range dims {
		zipped[idx] = g.ZipOne(idx, fallback)
	}

	return zipped
}

// Interpolate returns the point at t along the polyline through all members.
// Every segment covers the same share of the range [0, 1], regardless of
// its length. t is clamped to [0, 1], NaN is treated as 0.
func (g Group) Interpolate(t float64) *Pt {
	switch len(g) {
	case 0:
		return &Pt{}
	case 1:
		return g[0].Clone()
	}

	if math.IsNaN(t) {
		t = 0
	}

	t = max(0, min(t, 1))

	segments := len(g) - 1
	scaled := t * float64(segments)

	idx := min(int(math.Floor(scaled)), segments-1)
	return g[idx].Pure().Lerp(g[idx+1], scaled-float64(idx))
}

// MoveBy adds the operand to every member.
func (g Group) MoveBy(args ...any) Group {
	args = snapshot(args)
	for _, pt := range g {
		pt.Add(args...)
	}

	return g
}

// MoveTo moves the group so that its first member ends up at the target.
// All members are moved by the same offset. Components of the first member
// not given by the target do not move.
func (g Group) MoveTo(args ...any) Group {
	if len(g) == 0 {
		return g
	}

	first := g[0]
	offset := first.Pure().To(args...).Subtract(first)

	return g.MoveBy(offset)
}

// Scale scales every member by factor around pivot. A nil pivot scales
// around the origin.
func (g Group) Scale(factor, pivot any) Group {
	factorArgs := snapshot([]any{factor})

	if pivot == nil {
		for _, pt := range g {
			pt.Multiply(factorArgs...)
		}

		return g
	}

	pivotArgs := snapshot([]any{pivot})
	for _, pt := range g {
		pt.Subtract(pivotArgs...).Multiply(factorArgs...).Add(pivotArgs...)
	}

	return g
}

// snapshot copies operand arguments so that later mutation of a point
// passed as operand, possibly a member of the group itself, has no effect.
// A single scalar is kept as is to preserve broadcasting.
func snapshot(args []any) []any {
	if len(args) == 1 {
		if _, ok := toFloat(args[0]); ok {
			return args
		}
	}

	values, ok := components(args)
	if !ok {
		return args
	}

	return []any{values}
}
