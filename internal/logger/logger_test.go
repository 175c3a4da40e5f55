package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: false, Writer: &buf})
	L.Error("should not appear")
	require.Zero(t, buf.Len())
}

func TestInitTextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Writer: &buf, Level: slog.LevelInfo})
	defer Init(Options{})

	L.Debug("hidden")
	L.Info("parsed", "chunks", 3)
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "chunks=3")
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Writer: &buf, Level: slog.LevelDebug, JSON: true})
	defer Init(Options{})

	L.Debug("parsed", "type", "IEND")
	require.Contains(t, buf.String(), `"type":"IEND"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}
