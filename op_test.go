package pts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPt_Op(t *testing.T) {
	addOne := func(a *Pt, args ...any) *Pt { return a.Pure().Add(1) }
	multiply := func(b *Pt, args ...any) *Pt { return b.Pure().Multiply(Arg(args, 0, 1.0)) }

	p := NewPt(3, 4, 5)
	pf1 := p.Op(addOne)
	pf2 := pf1().Op(multiply)
	r1 := pf2(2)
	r2 := r1.Op(func(p *Pt, args ...any) *Pt { return p.Pure().Multiply(3) })

	require.True(t, r2().Equals(NewPt(24, 30, 36), 0))

	// the receiver is never changed by these transforms
	require.True(t, p.Equals(NewPt(3, 4, 5), 0))

	// the same bound operation can be applied again with other arguments
	require.True(t, pf2(10).Equals(NewPt(40, 50, 60), 0))
}

func TestPt_OpSeesReceiverChanges(t *testing.T) {
	p := NewPt(1, 2)
	double := p.Op(func(p *Pt, args ...any) *Pt { return p.Pure().Multiply(2) })

	require.True(t, double().Equals(NewPt(2, 4), 0))

	p.To(10, 20)
	require.True(t, double().Equals(NewPt(20, 40), 0))
}

func TestPt_Ops(t *testing.T) {
	p := NewPt(1, 2, 3)
	ops := p.Ops(
		func(a *Pt, args ...any) *Pt { return a.Pure().Add(1, 2, 3) },
		func(b *Pt, args ...any) *Pt { return b.Pure().Multiply(Arg(args, 0, 1.0)) },
	)

	q := ops[0]().Add(ops[1](3))
	z, ok := q.Z()
	require.True(t, ok)
	require.Equal(t, 15.0, z)
}

func TestGroup_Op(t *testing.T) {
	g := GroupFromArray([][]float64{{1, 2}, {3, 4}, {5, 6}})
	scale := g.Op(func(g *Group, args ...any) *Group {
		g.Scale(Arg[any](args, 0, 1.0), nil)
		return g
	})

	scale(3)
	require.Equal(t, 12.0, g[1].c[1])

	scale(0.5)
	require.Equal(t, 6.0, g[1].c[1])
}

func TestOps_Erase(t *testing.T) {
	g := GroupFromArray([][]float64{{1, 2}, {3, 4}})

	count := func(g *Group, args ...any) int { return len(*g) }
	first := func(g *Group, args ...any) *Pt { return (*g)[0] }

	ops := Ops(&g, Erase(count), Erase(first))
	require.Equal(t, 2, ops[0]())
	require.Same(t, g[0], ops[1]())

	g.Insert(NewGroup(NewPt(0, 0)), 0)
	require.Equal(t, 3, ops[0]())
}

func TestArg(t *testing.T) {
	args := []any{2, "name", 1.5}

	require.Equal(t, 2.0, Arg(args, 0, 0.0))
	require.Equal(t, "name", Arg(args, 1, ""))
	require.Equal(t, 1.5, Arg(args, 2, 0.0))
	require.Equal(t, 7.0, Arg(args, 3, 7.0))
	require.Equal(t, 7.0, Arg(args, 1, 7.0))
	require.Equal(t, "fallback", Arg(args, 0, "fallback"))
	require.Equal(t, 4.0, Arg(nil, -1, 4.0))
}
