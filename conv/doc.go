// Package conv converts slices element by element through an existing
// conversion.
//
// Every function here is order-preserving and total: the i-th output element
// is the conversion of the i-th input element, the output has the same length
// as the input, and the input slice is never modified. A nil or empty input
// yields an empty, non-nil slice.
//
// # Conversion Forms
//
// A conversion can be supplied three ways:
//
//   - A function value: [Map] with func(T) U, [MapRefs] with func(*T) U.
//   - A [TypeCast], which carries the function as a named type.
//   - A conversion constructor on the target type: [Convert] and
//     [ConvertRefs] use the From method of U's zero value, so the call site
//     names only the target type.
//
// The Refs variants hand each element to the conversion by pointer into the
// source slice, so large elements are not copied.
//
//	type Label string
//
//	func (Label) From(n int) Label { return Label(strconv.Itoa(n)) }
//
//	labels := conv.Convert[Label]([]int{1, 2, 3}) // ["1" "2" "3"]
//
// # Failure
//
// The Map and Convert families assume the element conversion cannot fail; a
// panic in the conversion propagates unchanged. [TryMap] accepts a fallible
// conversion and stops at the first error, returning a [pkg.ErrConvert] that
// wraps the element error and records its index.
package conv
