package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hcpath/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Format: "json", Output: &buf})
	require.NoError(t, err)
	l.WithRun("r1").WithHops(5).Info("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "r1", rec["run"])
	assert.EqualValues(t, 5, rec["k"])

	// A buffer is not a terminal, so auto picks JSON.
	buf.Reset()
	l, err = logging.New(logging.Config{Output: &buf, Level: "warn"})
	require.NoError(t, err)
	l.Info("dropped")
	l.WithGraph("g.txt").Warn("kept")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"graph":"g.txt"`)

	buf.Reset()
	l, err = logging.New(logging.Config{Format: "text", Output: &buf})
	require.NoError(t, err)
	l.Info("plain", "n", 1)
	assert.Contains(t, buf.String(), "msg=plain n=1")

	_, err = logging.New(logging.Config{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrInvalidFormat)
	_, err = logging.New(logging.Config{Level: "nope"})
	assert.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestNoopLogger(t *testing.T) {
	l := logging.NoopLogger()
	require.NotNil(t, l.Logger)
	assert.NotPanics(t, func() { l.WithRun("x").Error("nothing happens") })
}
