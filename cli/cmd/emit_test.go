package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/tracekv/log"
	"github.com/ardnew/tracekv/pkg"
)

// captureLog replaces the default logger with a plain JSON logger writing to
// the returned buffer for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	prev := log.SetDefault(log.Make(&buf,
		log.WithPretty(false),
		log.WithLevel(log.LevelDebug),
	))
	t.Cleanup(func() { log.SetDefault(prev) })

	return &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any

	for line := range strings.Lines(buf.String()) {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}

		entries = append(entries, entry)
	}

	return entries
}

// TestEmitRun tests that all pairs are evaluated and logged as one record.
func TestEmitRun(t *testing.T) {
	buf := captureLog(t)
	t.Setenv("TRACEKV_TEST_USER", "alice")

	e := &Emit{
		Level:   "warn",
		Message: "checkout",
		Pairs: []string{
			"count=2+3",
			`user=env("TRACEKV_TEST_USER")`,
			"ok=1 < 2",
		},
	}

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Emit.Run() error = %v", err)
	}

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("Emit.Run() logged %d records, want 1", len(entries))
	}

	entry := entries[0]

	for key, want := range map[string]any{
		"level": "WARN",
		"msg":   "checkout",
		"count": "5",
		"user":  `"alice"`,
		"ok":    "true",
	} {
		if entry[key] != want {
			t.Errorf("record[%q] = %v, want %v", key, entry[key], want)
		}
	}
}

// TestEmitRunFilteredLevel tests that records below the logger level are
// dropped.
func TestEmitRunFilteredLevel(t *testing.T) {
	buf := captureLog(t)

	e := &Emit{Level: "trace", Pairs: []string{"n=1"}}
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Emit.Run() error = %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("Emit.Run() logged %q at filtered level", buf.String())
	}
}

// TestEmitRunErrors tests failures in level lookup and pair evaluation.
func TestEmitRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		emit    Emit
		wantErr *pkg.Error
		wantMsg string
	}{
		{
			name:    "unknown_level_suggests",
			emit:    Emit{Level: "wrn", Pairs: []string{"n=1"}},
			wantErr: pkg.ErrInvalidLevel,
			wantMsg: "did you mean warn?",
		},
		{
			name:    "unknown_level_no_suggestion",
			emit:    Emit{Level: "loud"},
			wantErr: pkg.ErrInvalidLevel,
			wantMsg: `"loud"`,
		},
		{
			name:    "no_pairs",
			emit:    Emit{Level: "info", Message: "empty"},
			wantErr: pkg.ErrInvalidPair,
			wantMsg: "at least one KEY=EXPR pair",
		},
		{
			name:    "missing_equals",
			emit:    Emit{Level: "info", Pairs: []string{"n"}},
			wantErr: pkg.ErrInvalidPair,
			wantMsg: "expected KEY=EXPR",
		},
		{
			name:    "empty_key",
			emit:    Emit{Level: "info", Pairs: []string{"=1"}},
			wantErr: pkg.ErrInvalidPair,
		},
		{
			name:    "compile",
			emit:    Emit{Level: "info", Pairs: []string{"n=1 +"}},
			wantErr: pkg.ErrExprCompile,
		},
		{
			name:    "evaluate",
			emit:    Emit{Level: "info", Pairs: []string{"n=1", `m=[1, 2][env("TRACEKV_UNSET") == "" ? 5 : 0]`}},
			wantErr: pkg.ErrExprEvaluate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			err := tt.emit.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Emit.Run() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Emit.Run() error = %q, want it to contain %q",
					err.Error(), tt.wantMsg)
			}

			if buf.Len() != 0 {
				t.Errorf("Emit.Run() logged %q despite error", buf.String())
			}
		})
	}
}
