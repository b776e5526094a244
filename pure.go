package pts

// Pure gives access to the operations of a point without changing the point.
// Every operation copies the point first and returns the modified copy.
//
//	q := p.Pure().Add(1, 2)  // p is unchanged
type Pure struct {
	p *Pt
}

// Pure returns a view of p whose operations work on a copy of p.
func (p *Pt) Pure() Pure {
	return Pure{p: p}
}

// Apply runs op on a copy of the point and returns the result.
func (f Pure) Apply(op func(p *Pt) *Pt) *Pt {
	return op(f.p.Clone())
}

func (f Pure) To(args ...any) *Pt       { return f.p.Clone().To(args...) }
func (f Pure) Add(args ...any) *Pt      { return f.p.Clone().Add(args...) }
func (f Pure) Subtract(args ...any) *Pt { return f.p.Clone().Subtract(args...) }
func (f Pure) Multiply(args ...any) *Pt { return f.p.Clone().Multiply(args...) }
func (f Pure) Divide(args ...any) *Pt   { return f.p.Clone().Divide(args...) }
func (f Pure) Abs() *Pt                 { return f.p.Clone().Abs() }
func (f Pure) Min(args ...any) *Pt      { return f.p.Clone().Min(args...) }
func (f Pure) Max(args ...any) *Pt      { return f.p.Clone().Max(args...) }
func (f Pure) Concat(args ...any) *Pt   { return f.p.Clone().Concat(args...) }
func (f Pure) Slice(start, end int) *Pt { return f.p.Clone().Slice(start, end) }
func (f Pure) Take(indices ...int) *Pt  { return f.p.Clone().Take(indices...) }

func (f Pure) Lerp(other *Pt, t float64) *Pt {
	return f.p.Clone().Lerp(other, t)
}

func (f Pure) Map(fn func(value float64, idx int, p *Pt) float64) *Pt {
	return f.p.Clone().Map(fn)
}

func (f Pure) ToAngle(radian float64) *Pt {
	return f.p.Clone().ToAngle(radian)
}

func (f Pure) ToAngleAt(radian, magnitude float64, fromCurrent bool) *Pt {
	return f.p.Clone().ToAngleAt(radian, magnitude, fromCurrent)
}

// Cross returns the cross product of the point and the operand. On error,
// the returned point is an unchanged copy.
func (f Pure) Cross(args ...any) (*Pt, error) {
	return f.p.Clone().Cross(args...)
}

// Project returns the projection of the point onto the operand. On error,
// the returned point is an unchanged copy.
func (f Pure) Project(args ...any) (*Pt, error) {
	return f.p.Clone().Project(args...)
}
