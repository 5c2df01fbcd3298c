package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(Sources{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bridger.toml", `
jobs = 4
cache_size = 10
cache_dir = "/tmp/rb"
format = "yaml"
color = "never"
strict = true
include = ["Person*", "Student"]
log_level = "debug"
`)

	cfg, err := Load(Sources{File: path, EnvFile: writeFile(t, dir, "empty.env", "")})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, 10, cfg.CacheSize)
	assert.Equal(t, "/tmp/rb", cfg.CacheDir)
	assert.True(t, cfg.DiskCache)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.WarningsAsErrors)
	assert.Equal(t, []string{"Person*", "Student"}, cfg.Include)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestCacheDirRespectsExplicitDiskCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bridger.toml", "cache_dir = \"x\"\ndisk_cache = false\n")

	cfg, err := Load(Sources{File: path, EnvFile: writeFile(t, dir, "empty.env", "")})
	require.NoError(t, err)
	assert.False(t, cfg.DiskCache)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bridger.toml", "jobs = 4\nformat = \"yaml\"\n")

	t.Setenv("RESET_BRIDGER_JOBS", "2")
	t.Setenv("RESET_BRIDGER_FORMAT", "json")
	t.Setenv("RESET_BRIDGER_EXCLUDE", "Internal*, ,Legacy")
	t.Setenv("RESET_BRIDGER_WARNINGS_AS_ERRORS", "true")

	cfg, err := Load(Sources{File: path, EnvFile: writeFile(t, dir, "empty.env", "")})
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, []string{"Internal*", "Legacy"}, cfg.Exclude)
	assert.True(t, cfg.WarningsAsErrors)
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, "test.env", "RESET_BRIDGER_COLOR=always\nRESET_BRIDGER_CACHE_SIZE=7\n")

	// Variables already in the environment win over the .env file.
	t.Setenv("RESET_BRIDGER_CACHE_SIZE", "9")
	// Make sure godotenv's assignment is undone after the test.
	t.Setenv("RESET_BRIDGER_COLOR", "")
	require.NoError(t, os.Unsetenv("RESET_BRIDGER_COLOR"))

	cfg, err := Load(Sources{EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, 9, cfg.CacheSize)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.env", "")

	tests := []struct {
		name    string
		toml    string
		env     map[string]string
		message string
	}{
		{name: "unknown key", toml: "log_levle = \"info\"\n", message: "did you mean log_level?"},
		{name: "bad toml", toml: "jobs = \n", message: "config"},
		{name: "bad format", toml: "format = \"yml\"\n", message: "format: unknown value"},
		{name: "bad color", toml: "color = \"sometimes\"\n", message: "color"},
		{name: "negative jobs", toml: "jobs = -1\n", message: "jobs must be"},
		{name: "bad env int", env: map[string]string{"RESET_BRIDGER_JOBS": "many"}, message: "RESET_BRIDGER_JOBS"},
		{name: "bad env bool", env: map[string]string{"RESET_BRIDGER_STRICT": "maybe"}, message: "RESET_BRIDGER_STRICT"},
		{name: "bad log level", env: map[string]string{"RESET_BRIDGER_LOG_LEVEL": "loud"}, message: "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := writeFile(t, t.TempDir(), "bridger.toml", tt.toml)

			_, err := Load(Sources{File: path, EnvFile: empty})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	_, err := Load(Sources{File: filepath.Join(dir, "missing.toml"), EnvFile: empty})
	assert.Error(t, err)

	_, err = Load(Sources{File: writeFile(t, dir, "ok.toml", ""), EnvFile: filepath.Join(dir, "missing.env")})
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,,b, "))
	assert.Nil(t, SplitList(""))
}
