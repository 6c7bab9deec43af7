package conv

import (
	"iter"
	"log/slog"

	"github.com/ardnew/tracekv/pkg"
)

// TypeCast is a function that converts a value of type T to type U.
type TypeCast[T, U any] func(T) U

// From is implemented by a type U that can construct itself from a T.
// The method is called on the zero value of U.
type From[T, U any] interface {
	From(T) U
}

// AnyValues returns the given values of type T as a sequence of any.
func AnyValues[T any](v ...T) iter.Seq[any] {
	var fn TypeCast[T, any] = func(v T) any { return v }

	return fn.Values(v...)
}

// Values returns an iterator over the given values, casting each value
// from type T to type U using the TypeCast receiver.
func (c TypeCast[T, U]) Values(v ...T) iter.Seq[U] {
	return func(yield func(U) bool) {
		for _, x := range v {
			if !yield(c(x)) {
				return
			}
		}
	}
}

// Slice returns a new slice holding the conversion of each element of v.
func (c TypeCast[T, U]) Slice(v []T) []U {
	return Map[T, U](v, c)
}

// Map returns a new slice holding fn applied to each element of v, in order.
func Map[T, U any](v []T, fn func(T) U) []U {
	out := make([]U, len(v))
	for i, x := range v {
		out[i] = fn(x)
	}

	return out
}

// MapRefs is like [Map], but passes each element by pointer into v.
func MapRefs[T, U any](v []T, fn func(*T) U) []U {
	out := make([]U, len(v))
	for i := range v {
		out[i] = fn(&v[i])
	}

	return out
}

// Convert returns a new slice holding U's conversion of each element of v.
//
// Type parameter T is inferred from v, so only the target type is named:
//
//	conv.Convert[Label](ids)
func Convert[U From[T, U], T any](v []T) []U {
	var zero U

	return Map(v, zero.From)
}

// ConvertRefs is like [Convert] for target types constructed from *T.
func ConvertRefs[U From[*T, U], T any](v []T) []U {
	var zero U

	return MapRefs(v, zero.From)
}

// TryMap applies a fallible conversion to each element of v, in order.
//
// Conversion stops at the first error. The returned error matches
// [pkg.ErrConvert], wraps the element error, and carries an "index" attribute
// with the position of the failing element. No partial result is returned.
func TryMap[T, U any](v []T, fn func(T) (U, error)) ([]U, error) {
	out := make([]U, len(v))

	for i, x := range v {
		u, err := fn(x)
		if err != nil {
			return nil, pkg.ErrConvert.Wrap(err).With(slog.Int("index", i))
		}

		out[i] = u
	}

	return out, nil
}
