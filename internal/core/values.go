package core

import "fmt"

// Values holds the results of a node's children in declaration order, as
// passed to a router.
type Values []any

// Get returns the value at i as a T.
func Get[T any](v Values, i int) (T, error) {
	var zero T

	if i < 0 || i >= len(v) {
		return zero, fmt.Errorf("%w: %d of %d", errValueIndex, i, len(v))
	}

	out, ok := v[i].(T)
	if !ok {
		return zero, fmt.Errorf("%w: value %d is %T, not %T", errValueType, i, v[i], zero)
	}

	return out, nil
}

// MustGet is Get for callers whose tree guarantees the type; it panics on
// mismatch.
func MustGet[T any](v Values, i int) T {
	out, err := Get[T](v, i)
	if err != nil {
		panic(err)
	}

	return out
}
