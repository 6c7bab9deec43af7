package opt

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// Null is the rendering of an absent value.
const Null = "null"

// Layouts of the fixed date and date-time patterns.
const (
	DateLayout     = "2006-01-02"          // YYYY-MM-DD
	DateTimeLayout = "2006-01-02 15:04:05" // YYYY-MM-DD HH:MM:SS
)

// Func renders a present value of type T.
type Func[T any] func(T) string

// Or renders v if present, otherwise returns fallback.
func (f Func[T]) Or(v *T, fallback string) string {
	if v == nil {
		return fallback
	}

	return f(*v)
}

// Format renders v if present, otherwise returns [Null].
func (f Func[T]) Format(v *T) string {
	return f.Or(v, Null)
}

// Nullable renders the value of v if valid, otherwise returns [Null].
func (f Func[T]) Nullable(v sql.Null[T]) string {
	if !v.Valid {
		return Null
	}

	return f(v.V)
}

// Ptr returns a pointer to a copy of v, a present optional value.
func Ptr[T any](v T) *T { return &v }

// canonical renders v with fmt's default formatting, which uses the String
// or Error method when v has one.
func canonical[T any](v T) string { return fmt.Sprint(v) }

// String renders v in its canonical string form, or [Null] if v is nil.
func String[T any](v *T) string {
	return Func[T](canonical[T]).Format(v)
}

// StringOr renders v in its canonical string form, or fallback if v is nil.
func StringOr[T any](v *T, fallback string) string {
	return Func[T](canonical[T]).Or(v, fallback)
}

// Nullable renders a [sql.Null] in its canonical string form, or [Null] if it
// is not valid.
func Nullable[T any](v sql.Null[T]) string {
	return Func[T](canonical[T]).Nullable(v)
}

// NullableOr renders a [sql.Null] in its canonical string form, or fallback
// if it is not valid.
func NullableOr[T any](v sql.Null[T], fallback string) string {
	if !v.Valid {
		return fallback
	}

	return canonical(v.V)
}

// Date renders v as YYYY-MM-DD in its own location, or [Null] if v is nil.
func Date(v *time.Time) string {
	return Func[time.Time](formatDate).Format(v)
}

// DateTime renders v as YYYY-MM-DD HH:MM:SS in its own location, or [Null]
// if v is nil.
func DateTime(v *time.Time) string {
	return Func[time.Time](formatDateTime).Format(v)
}

// Decimal renders v in plain decimal notation keeping its scale, so 65000.00
// stays "65000.00". Returns [Null] if v is nil.
func Decimal(v *decimal.Decimal) string {
	return Func[decimal.Decimal](formatDecimal).Format(v)
}

func formatDate(t time.Time) string     { return t.Format(DateLayout) }
func formatDateTime(t time.Time) string { return t.Format(DateTimeLayout) }

func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}

	return d.String()
}

// json sorts map keys like encoding/json but leaves <, > and & unescaped,
// since the output is display text rather than HTML.
//
//nolint:gochecknoglobals
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// JSON renders v as compact JSON text, or [Null] if v is nil.
//
// A nil pointer held in v also renders as "null". If v cannot be encoded
// (for example it contains a channel or func), the result is fmt's default
// formatting of v.
func JSON(v any) string {
	if v == nil {
		return Null
	}

	s, err := json.MarshalToString(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return s
}

// YAML renders v as single-line flow-style YAML, or [Null] if v is nil.
//
// If v cannot be encoded, the result is fmt's default formatting of v.
func YAML(v any) string {
	if v == nil {
		return Null
	}

	b, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
	if err != nil {
		return fmt.Sprint(v)
	}

	return strings.TrimSuffix(string(b), "\n")
}
