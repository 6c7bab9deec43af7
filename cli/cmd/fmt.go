package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/ardnew/tracekv/conv"
	"github.com/ardnew/tracekv/opt"
	"github.com/ardnew/tracekv/pkg"
)

// Fmt renders each argument as an optional value of the chosen kind.
// An empty argument is absent.
type Fmt struct {
	Kind     string `default:"string" enum:"string,date,datetime,decimal,json,yaml" help:"Value kind (${enum})"         short:"k"`
	Fallback string `default:"null"                                                 help:"Text rendered for absent values" short:"f"`

	Values []string `arg:"" help:"Values to format; an empty argument is absent." name:"value" optional:""`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	render, ok := renderers[f.Kind]
	if !ok {
		return pkg.ErrParseValue.
			With(slog.String("kind", f.Kind)).
			Wrap(fmt.Errorf("unknown kind %q", f.Kind))
	}

	lines, err := conv.TryMap(f.Values, func(s string) (string, error) {
		if s == "" {
			return f.Fallback, nil
		}

		return render(s)
	})
	if err != nil {
		return pkg.WrapError(err).With(slog.String("kind", f.Kind))
	}

	w := outputFrom(ctx)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// renderers maps each kind to a function that parses its textual form and
// renders the present value.
//
//nolint:gochecknoglobals
var renderers = map[string]func(string) (string, error){
	"string": present(
		func(s string) (string, error) { return s, nil },
		opt.String[string],
	),
	"date": present(
		func(s string) (time.Time, error) { return time.Parse(opt.DateLayout, s) },
		opt.Date,
	),
	"datetime": present(
		func(s string) (time.Time, error) {
			return time.Parse(opt.DateTimeLayout, s)
		},
		opt.DateTime,
	),
	"decimal": present(decimal.NewFromString, opt.Decimal),
	"json":    present(unmarshalJSON, func(v *any) string { return opt.JSON(*v) }),
	"yaml":    present(unmarshalYAML, func(v *any) string { return opt.YAML(*v) }),
}

// present composes a parser with an optional-value formatter.
func present[T any](
	parse func(string) (T, error),
	format func(*T) string,
) func(string) (string, error) {
	return func(s string) (string, error) {
		v, err := parse(s)
		if err != nil {
			return "", pkg.ErrParseValue.
				With(slog.String("value", s)).
				Wrap(err)
		}

		return format(&v), nil
	}
}

func unmarshalJSON(s string) (v any, err error) {
	err = jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(s, &v)

	return v, err
}

func unmarshalYAML(s string) (v any, err error) {
	err = yaml.Unmarshal([]byte(s), &v)

	return v, err
}
