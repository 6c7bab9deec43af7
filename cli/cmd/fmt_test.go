package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/ardnew/tracekv/pkg"
)

func runFmt(t *testing.T, f *Fmt) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	err := f.Run(WithOutput(context.Background(), &buf))

	return buf.String(), err
}

// TestFmtRun tests rendering of each value kind.
func TestFmtRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     string
		fallback string
		values   []string
		want     string
	}{
		{
			name:     "string",
			kind:     "string",
			fallback: "null",
			values:   []string{"hello", "", "world"},
			want:     "hello\nnull\nworld\n",
		},
		{
			name:     "string_fallback",
			kind:     "string",
			fallback: "n/a",
			values:   []string{""},
			want:     "n/a\n",
		},
		{
			name:     "date",
			kind:     "date",
			fallback: "null",
			values:   []string{"2020-05-01", ""},
			want:     "2020-05-01\nnull\n",
		},
		{
			name:     "datetime",
			kind:     "datetime",
			fallback: "null",
			values:   []string{"2021-12-31 23:59:59"},
			want:     "2021-12-31 23:59:59\n",
		},
		{
			name:     "decimal_keeps_scale",
			kind:     "decimal",
			fallback: "null",
			values:   []string{"65000.00", "-1.5"},
			want:     "65000.00\n-1.5\n",
		},
		{
			name:     "json_sorted_keys",
			kind:     "json",
			fallback: "null",
			values:   []string{`{"b": 1, "a": [true, null]}`, "null"},
			want:     "{\"a\":[true,null],\"b\":1}\nnull\n",
		},
		{
			name:     "yaml_flow",
			kind:     "yaml",
			fallback: "null",
			values:   []string{"[1, 2, 3]"},
			want:     "[1, 2, 3]\n",
		},
		{
			name:     "no_values",
			kind:     "string",
			fallback: "null",
			values:   nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := runFmt(t, &Fmt{Kind: tt.kind, Fallback: tt.fallback, Values: tt.values})
			if err != nil {
				t.Fatalf("Fmt.Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Fmt.Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFmtRunInvalidValue tests that the first unparsable value aborts the
// command before anything is written.
func TestFmtRunInvalidValue(t *testing.T) {
	t.Parallel()

	got, err := runFmt(t, &Fmt{
		Kind:     "date",
		Fallback: "null",
		Values:   []string{"2020-05-01", "05/01/2020", "not a date"},
	})
	if err == nil {
		t.Fatal("Fmt.Run() expected error for invalid date")
	}

	if got != "" {
		t.Errorf("Fmt.Run() wrote %q before failing", got)
	}

	if !errors.Is(err, pkg.ErrConvert) || !errors.Is(err, pkg.ErrParseValue) {
		t.Errorf("Fmt.Run() error = %v, want ErrConvert wrapping ErrParseValue", err)
	}

	var perr *pkg.Error
	if !errors.As(err, &perr) {
		t.Fatalf("Fmt.Run() error type = %T, want *pkg.Error", err)
	}

	var index int64 = -1
	for _, a := range perr.Attrs() {
		if a.Key == "index" && a.Value.Kind() == slog.KindInt64 {
			index = a.Value.Int64()
		}
	}

	if index != 1 {
		t.Errorf("Fmt.Run() error index = %d, want 1", index)
	}
}

// TestFmtRunUnknownKind tests that an unknown kind is rejected.
func TestFmtRunUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := runFmt(t, &Fmt{Kind: "roman", Values: []string{"IV"}})
	if !errors.Is(err, pkg.ErrParseValue) {
		t.Errorf("Fmt.Run() error = %v, want ErrParseValue", err)
	}
}
