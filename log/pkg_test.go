package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/tracekv/log"
)

// swapDefault installs l as the default logger for the duration of t.
func swapDefault(t *testing.T, l log.Logger) {
	t.Helper()

	prev := log.SetDefault(l)
	t.Cleanup(func() { log.SetDefault(prev) })
}

func TestPackage_Functions_UseDefaultLogger(t *testing.T) {
	l, buf := capture(log.WithLevel(log.LevelTrace), log.WithCaller(true))
	swapDefault(t, l)

	ctx := t.Context()

	log.Trace("a")
	log.DebugContext(ctx, "b")
	log.Info("c", slog.String("key", "value"))
	log.WarnContext(ctx, "d")
	log.Error("e")
	log.With(slog.Int("n", 1)).Info("f")

	got := entries(t, buf)
	require.Len(t, got, 6)

	for i, want := range []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "INFO"} {
		assert.Equal(t, want, got[i]["level"])
		assert.True(t,
			strings.HasSuffix(sourceFunction(t, got[i]), "TestPackage_Functions_UseDefaultLogger"),
			sourceFunction(t, got[i]))
	}

	assert.Equal(t, "value", got[2]["key"])
	assert.InDelta(t, 1, got[5]["n"], 0)
}

func TestPackage_SetDefault_ReturnsPrevious(t *testing.T) {
	a, _ := capture()
	b, _ := capture(log.WithLevel(log.LevelError))

	swapDefault(t, a)

	prev := log.SetDefault(b)
	assert.Equal(t, a.Level(), prev.Level())
	assert.Equal(t, log.LevelError, log.Default().Level())
}

func TestPackage_Config_KeepsOutput(t *testing.T) {
	l, buf := capture()
	swapDefault(t, l)

	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatText))
	log.Debug("configured")

	assert.Equal(t, log.LevelDebug, log.Default().Level())
	assert.Equal(t, "level=DEBUG msg=configured\n", buf.String())
}

func TestPackage_Config_FromZeroDefault(t *testing.T) {
	swapDefault(t, log.Logger{})

	var buf bytes.Buffer

	log.Config(log.WithOutput(&buf), log.WithPretty(false), log.WithTimeLayout(""))
	log.Info("revived")

	assert.Equal(t, `{"level":"INFO","msg":"revived"}`+"\n", buf.String())
}
