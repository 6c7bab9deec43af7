// Package opt renders optional values as strings.
//
// A present value is rendered in its canonical string form and an absent
// value renders as [Null] ("null"), unless the caller provides a fallback.
// Optional values are pointers (nil is absent) or [database/sql.Null].
// Every function is total and has no side effects.
//
//	opt.String(&count)           // "5"
//	opt.String[int](nil)         // "null"
//	opt.StringOr[int](nil, "-")  // "-"
//	opt.Date(&genesis)           // "2020-05-01"
//	opt.JSON(categories)         // `["DeFi","Layer 1"]`
//
// Fixed-pattern renderers are built from a [Func], which lifts any
// func(T) string into an optional-aware formatter.
package opt
