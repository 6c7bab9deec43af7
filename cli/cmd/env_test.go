package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/expr-lang/expr"
)

// TestBuiltinEnvClone tests that callers cannot modify the shared environment.
func TestBuiltinEnvClone(t *testing.T) {
	env := builtinEnv()
	env["env"] = nil

	if builtinEnv()["env"] == nil {
		t.Error("builtinEnv() returned the shared map")
	}
}

// TestBuiltinEnvExpressions tests the helpers as seen from expressions.
func TestBuiltinEnvExpressions(t *testing.T) {
	t.Setenv("TRACEKV_TEST_PATH", "/usr/bin:/bin")

	when := time.Date(2020, 5, 1, 13, 4, 5, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		check func(any) bool
	}{
		{
			name:  "opt_date_present",
			input: `opt.date(when)`,
			check: func(v any) bool { return v == "2020-05-01" },
		},
		{
			name:  "opt_datetime_absent",
			input: `opt.datetime(nil)`,
			check: func(v any) bool { return v == "null" },
		},
		{
			name:  "opt_json",
			input: `opt.json({"b": 1, "a": 2})`,
			check: func(v any) bool { return v == `{"a":2,"b":1}` },
		},
		{
			name:  "path_cat",
			input: `path.cat("a", "b")`,
			check: func(v any) bool { return v == "a/b" },
		},
		{
			name:  "mung_prefix",
			input: `mung.prefix(env("TRACEKV_TEST_PATH"), "/opt/bin")`,
			check: func(v any) bool {
				s, ok := v.(string)

				return ok && strings.Contains(s, "/opt/bin") &&
					strings.Contains(s, "/usr/bin")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := builtinEnv()
			env["when"] = when

			got, err := expr.Eval(tt.input, env)
			if err != nil {
				t.Fatalf("expr.Eval(%q) error = %v", tt.input, err)
			}

			if !tt.check(got) {
				t.Errorf("expr.Eval(%q) = %#v", tt.input, got)
			}
		})
	}
}
