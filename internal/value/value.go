// Package value converts raw token text into typed values.
//
// Conversion dispatches on the destination type: encoding.TextUnmarshaler and
// Set(string) implementations win, then strings, booleans, sized integers
// (with overflow detection), floats and durations are handled directly.
// Slices append one converted element per call, which is how positional and
// multi-value nodes accumulate.
package value

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Parse converts raw into a T.
func Parse[T any](raw string) (T, error) {
	var out T

	err := Set(reflect.ValueOf(&out).Elem(), raw)
	if err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}

// Set converts raw and stores it in v, which must be addressable.
// Slice destinations get the converted element appended.
func Set(v reflect.Value, raw string) error {
	if setter, ok := customSetter(v); ok {
		return setter(raw)
	}

	return setByKind(v, raw)
}

// Supported reports whether values of type t can be converted from text.
func Supported(t reflect.Type) bool {
	ptr := reflect.PointerTo(t)
	if ptr.Implements(textUnmarshalerType) || ptr.Implements(stringSetterType) {
		return true
	}

	switch t.Kind() { //nolint:exhaustive // default handles unsupported kinds
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return Supported(t.Elem())
	default:
		return false
	}
}

// unexported variables.
var (
	errStringSetterFailed    = errors.New("type assertion to Set(string) error failed")
	errTextUnmarshalerFailed = errors.New("type assertion to TextUnmarshaler failed")
	errUnsupportedValueType  = errors.New("unsupported value type")
	//nolint:gochecknoglobals // reflect type for time.Duration
	durationType = reflect.TypeFor[time.Duration]()
	//nolint:gochecknoglobals,inamedparam // reflect type for flag.Value style setters
	stringSetterType = reflect.TypeFor[interface{ Set(string) error }]()
	//nolint:gochecknoglobals // reflect type for text unmarshaling
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

func customSetter(v reflect.Value) (func(string) error, bool) {
	if !v.CanAddr() {
		return nil, false
	}

	ptr := v.Addr()
	if ptr.Type().Implements(textUnmarshalerType) {
		return func(raw string) error {
			u, ok := ptr.Interface().(encoding.TextUnmarshaler)
			if !ok {
				return errTextUnmarshalerFailed
			}

			return u.UnmarshalText([]byte(raw))
		}, true
	}

	if ptr.Type().Implements(stringSetterType) {
		return func(raw string) error {
			s, ok := ptr.Interface().(interface{ Set(s string) error })
			if !ok {
				return errStringSetterFailed
			}

			return s.Set(raw)
		}, true
	}

	return nil, false
}

func setBool(v reflect.Value, raw string) error {
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("parsing bool %q: %w", raw, err)
	}

	v.SetBool(parsed)

	return nil
}

// setByKind handles the type-specific conversion.
func setByKind(v reflect.Value, raw string) error {
	if v.Type() == durationType {
		return setDuration(v, raw)
	}

	switch v.Kind() { //nolint:exhaustive // default handles unsupported types
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		return setBool(v, raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(v, raw)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(v, raw)
	case reflect.Float32, reflect.Float64:
		return setFloat(v, raw)
	case reflect.Slice:
		return setSlice(v, raw)
	default:
		return fmt.Errorf("%w: %s", errUnsupportedValueType, v.Type())
	}

	return nil
}

func setDuration(v reflect.Value, raw string) error {
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}

	v.SetInt(int64(parsed))

	return nil
}

func setFloat(v reflect.Value, raw string) error {
	parsed, err := strconv.ParseFloat(raw, v.Type().Bits())
	if err != nil {
		return fmt.Errorf("parsing float %q: %w", raw, err)
	}

	v.SetFloat(parsed)

	return nil
}

// setInt parses with the destination's bit size so out-of-range input fails
// instead of wrapping.
func setInt(v reflect.Value, raw string) error {
	parsed, err := strconv.ParseInt(raw, 10, v.Type().Bits())
	if err != nil {
		return fmt.Errorf("parsing int %q: %w", raw, err)
	}

	v.SetInt(parsed)

	return nil
}

func setSlice(v reflect.Value, raw string) error {
	elem := reflect.New(v.Type().Elem()).Elem()

	err := Set(elem, raw)
	if err != nil {
		return err
	}

	v.Set(reflect.Append(v, elem))

	return nil
}

func setUint(v reflect.Value, raw string) error {
	parsed, err := strconv.ParseUint(raw, 10, v.Type().Bits())
	if err != nil {
		return fmt.Errorf("parsing uint %q: %w", raw, err)
	}

	v.SetUint(parsed)

	return nil
}
