package gm

import (
	"fmt"

	"github.com/oliverbestmann/pts"
)

// Rect is an axis aligned box spanning any number of dimensions.
type Rect struct {
	Min, Max *pts.Pt
}

// RectWithPoints returns the smallest Rect containing a and b.
func RectWithPoints(a, b *pts.Pt) Rect {
	return Rect{
		Min: a.Pure().Min(b),
		Max: a.Pure().Max(b),
	}
}

// RectWithCenterAndSize returns the Rect of the given size centered at center.
func RectWithCenterAndSize(center, size *pts.Pt) Rect {
	half := size.Pure().Multiply(0.5)
	return Rect{
		Min: center.Pure().Subtract(half),
		Max: center.Pure().Add(half),
	}
}

// BoundsOf returns the bounding box of all members of g. The box has the
// dimension of the first member. An empty group has an empty box.
func BoundsOf(g pts.Group) Rect {
	if len(g) == 0 {
		return Rect{Min: pts.PtOf(), Max: pts.PtOf()}
	}

	bounds := Rect{Min: g[0].Clone(), Max: g[0].Clone()}
	for _, p := range g[1:] {
		bounds.Min.Min(p)
		bounds.Max.Max(p)
	}

	return bounds
}

func (r Rect) Center() *pts.Pt {
	return r.Min.Pure().Add(r.Max).Multiply(0.5)
}

func (r Rect) Size() *pts.Pt {
	return r.Max.Pure().Subtract(r.Min)
}

// Translate returns a new Rect moved by the given offset.
func (r Rect) Translate(offset ...any) Rect {
	return Rect{
		Min: r.Min.Pure().Add(offset...),
		Max: r.Max.Pure().Add(offset...),
	}
}

// Contains reports whether p lies within r, borders included. Only the
// dimensions of r are checked.
func (r Rect) Contains(p *pts.Pt) bool {
	for idx := range r.Min.Len() {
		lo, _ := r.Min.At(idx)
		hi, _ := r.Max.At(idx)

		value, err := p.At(idx)
		if err != nil || value < lo || value > hi {
			return false
		}
	}

	return true
}

// Group returns the corners Min and Max as a group.
func (r Rect) Group() pts.Group {
	return pts.NewGroup(r.Min, r.Max)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
