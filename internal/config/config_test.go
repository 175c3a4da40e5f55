package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pngctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
output: json
backup: true
log_level: debug
text:
  compress: true
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, OutputJSON, cfg.Output)
	require.True(t, cfg.Backup)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.Text.Compress)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "backup: true\n"))
	require.NoError(t, err)
	require.Equal(t, OutputText, cfg.Output)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvVar, writeConfig(t, "output: json\n"))
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, OutputJSON, cfg.Output)
}

func TestLoadFlagWinsOverEnv(t *testing.T) {
	t.Setenv(EnvVar, writeConfig(t, "output: json\n"))
	cfg, err := Load(writeConfig(t, "output: text\n"))
	require.NoError(t, err)
	require.Equal(t, OutputText, cfg.Output)
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadFile(writeConfig(t, "output: [unclosed\n"))
	require.Error(t, err)

	_, err = LoadFile(writeConfig(t, "output: xml\nlog_level: loud\n"))
	require.ErrorContains(t, err, "output must be")
	require.ErrorContains(t, err, "log_level")
}
