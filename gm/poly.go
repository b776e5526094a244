package gm

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/pts"
)

// vertices projects the members of g onto the xy plane.
func vertices(g pts.Group) []cp.Vector {
	verts := make([]cp.Vector, len(g))
	for idx, p := range g {
		x, _ := p.X()
		y, _ := p.Y()
		verts[idx] = cp.Vector{X: x, Y: y}
	}

	return verts
}

// Area returns the area of the polygon formed by the xy components of the
// members of g. Groups with fewer than three members have no area.
func Area(g pts.Group) float64 {
	if len(g) < 3 {
		return 0
	}

	verts := vertices(g)
	return math.Abs(cp.AreaForPoly(len(verts), verts, 0))
}

// PolygonCentroid returns the centroid of the area of the polygon formed by
// the xy components of the members of g. For polygons without area, the
// mean of the members' xy components is returned.
func PolygonCentroid(g pts.Group) *pts.Pt {
	verts := vertices(g)

	if Area(g) < 1e-12 {
		mean := g.Clone().Map(func(p *pts.Pt, idx int) *pts.Pt {
			return p.Take(0, 1)
		})

		return Centroid(&mean)
	}

	c := cp.CentroidForPoly(len(verts), verts)
	return pts.PtOf(c.X, c.Y)
}

// Perimeter returns the length of the line through the xy components of
// the members of g. If closed is set, the segment from the last member back
// to the first is included.
func Perimeter(g pts.Group, closed bool) float64 {
	verts := vertices(g)
	if len(verts) < 2 {
		return 0
	}

	var length float64
	for idx := 1; idx < len(verts); idx++ {
		length += verts[idx-1].Distance(verts[idx])
	}

	if closed {
		length += verts[len(verts)-1].Distance(verts[0])
	}

	return length
}
