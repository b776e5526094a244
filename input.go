package pts

import (
	"log/slog"
	"reflect"
	"slices"
)

// PointLike is implemented by values that can be copied into a Pt.
type PointLike interface {
	Values() []float64
}

// namedAxes lists the keys accepted in a map of named coordinates, in the
// order the components are assigned.
var namedAxes = [...]string{"x", "y", "z", "w"}

// components resolves constructor style arguments into a freshly allocated
// slice of components. The input is checked once, in this order:
//
//   - a single point like value (*Pt, Pt or PointLike)
//   - a single slice or array of numbers
//   - a single map[string]float64 with any of the keys x, y, z and w
//   - a list of numbers
//
// The second return value is false if args matches none of the shapes.
func components(args []any) ([]float64, bool) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case *Pt:
			if v == nil {
				return nil, false
			}
			return slices.Clone(v.c), true

		case Pt:
			return slices.Clone(v.c), true

		case PointLike:
			return slices.Clone(v.Values()), true

		case []float64:
			return slices.Clone(v), true

		case map[string]float64:
			return namedComponents(v), true
		}

		if values, ok := numericSlice(args[0]); ok {
			return values, true
		}
	}

	values := make([]float64, 0, len(args))
	for _, arg := range args {
		value, ok := toFloat(arg)
		if !ok {
			return nil, false
		}

		values = append(values, value)
	}

	return values, true
}

func namedComponents(named map[string]float64) []float64 {
	values := make([]float64, 0, len(namedAxes))
	for _, axis := range namedAxes {
		if value, ok := named[axis]; ok {
			values = append(values, value)
		}
	}

	return values
}

// operand resolves the argument of a binary operation to exactly dims
// components. A single scalar is broadcast to every component. A shorter
// operand is padded with identity, a longer one is truncated. Arguments of an
// unsupported shape resolve to identity everywhere.
func operand(args []any, dims int, identity float64) []float64 {
	if len(args) == 1 {
		if value, ok := toFloat(args[0]); ok {
			return filled(dims, value)
		}
	}

	values, ok := components(args)
	if !ok {
		Logger().Debug("Ignoring operand of unsupported shape",
			slog.Int("args", len(args)))
	}

	return resized(values, dims, identity)
}

// positional resolves args like components, but without broadcasting a
// single scalar. Unsupported shapes resolve to an empty slice.
func positional(args []any) []float64 {
	values, ok := components(args)
	if !ok {
		Logger().Debug("Ignoring operand of unsupported shape",
			slog.Int("args", len(args)))
	}

	return values
}

func filled(dims int, value float64) []float64 {
	values := make([]float64, max(dims, 0))
	for idx := range values {
		values[idx] = value
	}

	return values
}

func resized(values []float64, dims int, pad float64) []float64 {
	if len(values) >= dims {
		return values[:dims]
	}

	for len(values) < dims {
		values = append(values, pad)
	}

	return values
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true

	default:
		return 0, false
	}
}

func numericSlice(v any) ([]float64, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	values := make([]float64, rv.Len())
	for idx := range values {
		value, ok := toFloat(rv.Index(idx).Interface())
		if !ok {
			return nil, false
		}

		values[idx] = value
	}

	return values, true
}
