package pts

// Transform is a function applied to a receiver with additional,
// transform specific arguments.
type Transform[T, R any] func(receiver T, args ...any) R

// Bound is a Transform bound to a receiver. Calling it applies the
// transform to the receiver with the given arguments.
type Bound[R any] func(args ...any) R

// Op binds fn to receiver. The receiver is captured by reference: changes to
// it are visible to later calls of the returned function.
func Op[T, R any](receiver T, fn Transform[T, R]) Bound[R] {
	return func(args ...any) R {
		return fn(receiver, args...)
	}
}

// Ops binds every function in fns to receiver, keeping their order.
func Ops[T, R any](receiver T, fns ...Transform[T, R]) []Bound[R] {
	bound := make([]Bound[R], 0, len(fns))
	for _, fn := range fns {
		bound = append(bound, Op(receiver, fn))
	}

	return bound
}

// Erase hides the result type of fn, so transforms with different result
// types can be passed to the same call of Ops.
func Erase[T, R any](fn Transform[T, R]) Transform[T, any] {
	return func(receiver T, args ...any) any {
		return fn(receiver, args...)
	}
}

// Arg returns the argument at idx if present and of type T, and
// fallback otherwise. Numeric arguments are converted when T is float64.
func Arg[T any](args []any, idx int, fallback T) T {
	if idx < 0 || idx >= len(args) {
		return fallback
	}

	if value, ok := args[idx].(T); ok {
		return value
	}

	if _, wantFloat := any(fallback).(float64); wantFloat {
		if value, ok := toFloat(args[idx]); ok {
			return any(value).(T)
		}
	}

	return fallback
}

// Op binds fn to p, see Op.
func (p *Pt) Op(fn Transform[*Pt, *Pt]) Bound[*Pt] {
	return Op(p, fn)
}

// Ops binds every function in fns to p, see Ops.
func (p *Pt) Ops(fns ...Transform[*Pt, *Pt]) []Bound[*Pt] {
	return Ops(p, fns...)
}

// Op binds fn to g, see Op.
func (g *Group) Op(fn Transform[*Group, *Group]) Bound[*Group] {
	return Op(g, fn)
}

// Ops binds every function in fns to g, see Ops.
func (g *Group) Ops(fns ...Transform[*Group, *Group]) []Bound[*Group] {
	return Ops(g, fns...)
}
