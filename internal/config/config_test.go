package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DATERANGE_CONFIG", "")
	return home
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("log-level", "info", "")
	fs.String("log-file", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "Date Range Field", cfg.UI.Caption)
	require.Equal(t, "2006-01-02", cfg.UI.DateFormat)
	require.Equal(t, "Begin date", cfg.UI.BeginPlaceholder)
	require.Equal(t, "End date", cfg.UI.EndPlaceholder)
	require.Equal(t, "Local", cfg.UI.Timezone)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(home, ".local", "state", "daterangefield", "demo.log"), cfg.Log.File)
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
caption = "Stay"
date_format = "02/01/2006"

[log]
level = "debug"
`), 0o600))
	t.Setenv("DATERANGE_CONFIG", path)
	t.Setenv("DATERANGE_UI_END_PLACEHOLDER", "Check-out")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "Stay", cfg.UI.Caption)
	require.Equal(t, "02/01/2006", cfg.UI.DateFormat)
	require.Equal(t, "Begin date", cfg.UI.BeginPlaceholder)
	require.Equal(t, "Check-out", cfg.UI.EndPlaceholder)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFlagsOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o600))

	cfg, err := Load(testFlags(t, "--config", path, "--log-level", "debug", "--log-file", ""))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "", cfg.Log.File)
}

func TestLoadUnchangedFlagsKeepFileValues(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o600))

	cfg, err := Load(testFlags(t, "--config", path))
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("DATERANGE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load(nil)
	require.Error(t, err)
}
