package cmd

import (
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ardnew/mung"

	"github.com/ardnew/tracekv/opt"
)

// builtinEnv returns a clone of the process-scoped environment available to
// emit expressions. The returned map can be mutated by the caller.
func builtinEnv() map[string]any {
	return maps.Clone(envCache())
}

//nolint:gochecknoglobals
var envCache = sync.OnceValue(func() map[string]any {
	return map[string]any{
		"hostname": getHostname(),
		"cwd":      getCwd,
		"env":      os.Getenv,
		"now":      time.Now,

		// Optional-value rendering; nil renders as opt.Null.
		"opt": map[string]any{
			"date":     optTime(opt.Date),
			"datetime": optTime(opt.DateTime),
			"json":     opt.JSON,
			"yaml":     opt.YAML,
		},

		"path": map[string]any{
			"abs":  pathAbs,
			"cat":  filepath.Join,
			"base": filepath.Base,
		},

		// PATH-like string manipulation.
		"mung": map[string]any{
			"prefix":   mungPrefix,
			"prefixif": mungPrefixIf,
		},
	}
})

// optTime adapts a time formatter to the untyped values expressions produce.
func optTime(format func(*time.Time) string) func(any) string {
	return func(v any) string {
		t, ok := v.(time.Time)
		if !ok {
			return format(nil)
		}

		return format(&t)
	}
}

func getHostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}

	return name
}

func getCwd() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	return dir
}

func pathAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return abs
}

func mungPrefix(key string, prefix ...string) string {
	return mung.Make(
		mung.WithSubjectItems(key),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()
}

func mungPrefixIf(
	key string,
	predicate func(string) bool,
	prefix ...string,
) string {
	return mung.Make(
		mung.WithSubjectItems(key),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
		mung.WithFilter(predicate),
	).String()
}
