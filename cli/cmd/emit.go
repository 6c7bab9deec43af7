package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/tracekv/conv"
	"github.com/ardnew/tracekv/kv"
	"github.com/ardnew/tracekv/log"
	"github.com/ardnew/tracekv/pkg"
)

// Emit evaluates each KEY=EXPR argument and logs the results as a single
// structured event.
type Emit struct {
	Level   string `default:"info" help:"Event level (${levels})" short:"l"`
	Message string `help:"Event message" short:"m"`

	Pairs []string `arg:"" help:"KEY=EXPR pairs; each EXPR is evaluated once, in order." name:"pair"`
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	level, err := lookupLevel(e.Level)
	if err != nil {
		return err
	}

	if len(e.Pairs) == 0 {
		return pkg.ErrInvalidPair.
			Wrap(errors.New("at least one KEY=EXPR pair is required"))
	}

	env := builtinEnv()

	pairs, err := conv.TryMap(e.Pairs, func(arg string) (kv.Pair, error) {
		return evalPair(arg, env)
	})
	if err != nil {
		return err
	}

	log.TraceContext(ctx, "emit",
		slog.String("level", level.String()),
		slog.Int("pairs", len(pairs)),
	)

	kv.New(log.Default(), kv.WithMessage(e.Message)).Emit(ctx, level, pairs...)

	return nil
}

// lookupLevel resolves a level name, suggesting the closest defined names
// when it is not recognized.
func lookupLevel(name string) (log.Level, error) {
	level, ok := log.LookupLevel(name)
	if ok {
		return level, nil
	}

	names := slices.Collect(log.Levels())

	var suggest []string
	for _, m := range fuzzy.Find(strings.ToLower(name), names) {
		suggest = append(suggest, m.Str)
	}

	err := pkg.ErrInvalidLevel.
		With(slog.String("level", name)).
		With(slog.Any("valid", names))

	if len(suggest) > 0 {
		return level, err.
			With(slog.Any("suggest", suggest)).
			Wrap(fmt.Errorf("%q (did you mean %s?)",
				name, strings.Join(suggest, " or ")))
	}

	return level, err.Wrap(fmt.Errorf("%q", name))
}

// evalPair splits arg at its first '=' and evaluates the right-hand side.
func evalPair(arg string, env map[string]any) (kv.Pair, error) {
	key, src, ok := strings.Cut(arg, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return kv.Pair{}, pkg.ErrInvalidPair.
			With(slog.String("pair", arg)).
			Wrap(fmt.Errorf("expected KEY=EXPR, got %q", arg))
	}

	key = strings.TrimSpace(key)

	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return kv.Pair{}, pkg.ErrExprCompile.
			With(slog.String("key", key), slog.String("expr", src)).
			Wrap(err)
	}

	value, err := expr.Run(program, env)
	if err != nil {
		return kv.Pair{}, pkg.ErrExprEvaluate.
			With(slog.String("key", key), slog.String("expr", src)).
			Wrap(err)
	}

	return kv.Of(key, value), nil
}
