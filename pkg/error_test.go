package pkg

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestError_Error_Formats(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", NewError("boom"), "boom"},
		{"message and cause", NewError("boom").Wrap(io.EOF), "boom: EOF"},
		{"cause only", WrapError(io.EOF), "EOF"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestError_Is_MatchesSentinelAfterWrap(t *testing.T) {
	err := error(ErrConvert.Wrap(io.EOF).With(slog.Int("index", 3)))

	if !errors.Is(err, ErrConvert) {
		t.Error("expected wrapped error to match ErrConvert")
	}

	if !errors.Is(err, io.EOF) {
		t.Error("expected wrapped error to match its cause")
	}

	if errors.Is(err, ErrParseValue) {
		t.Error("expected wrapped error not to match ErrParseValue")
	}
}

func TestWrapError_ReturnsExisting(t *testing.T) {
	orig := ErrInvalidPair.With(slog.String("arg", "x"))

	if got := WrapError(orig); got != orig {
		t.Error("expected WrapError to return the existing *Error")
	}
}

func TestError_With_DoesNotMutate(t *testing.T) {
	base := NewError("base").With(slog.String("a", "1"))
	derived := base.With(slog.String("b", "2"))

	if len(base.Attrs()) != 1 {
		t.Errorf("expected base to keep 1 attr, got %d", len(base.Attrs()))
	}

	if len(derived.Attrs()) != 2 {
		t.Errorf("expected derived to have 2 attrs, got %d", len(derived.Attrs()))
	}
}

func TestError_LogValue_Group(t *testing.T) {
	v := ErrConvert.Wrap(io.EOF).With(slog.Int("index", 1)).LogValue()

	if v.Kind() != slog.KindGroup {
		t.Fatalf("expected group value, got %v", v.Kind())
	}

	keys := map[string]bool{}
	for _, a := range v.Group() {
		keys[a.Key] = true
	}

	for _, k := range []string{"error", "cause", "index"} {
		if !keys[k] {
			t.Errorf("expected key %q in log value", k)
		}
	}
}
