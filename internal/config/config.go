// Package config loads reset-bridger settings.
//
// Sources are applied in order, later ones winning: built-in defaults, the
// TOML config file, a .env file and then RESET_BRIDGER_* environment
// variables. Command-line flags are applied last by the CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"reset-bridger/internal/naming"
)

const (
	// DefaultFile is the config file looked up when none is given.
	DefaultFile = "reset-bridger.toml"
	// DefaultEnvFile is the dotenv file looked up when none is given.
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "RESET_BRIDGER_"
)

// Output formats.
const (
	FormatPretty = "pretty"
	FormatYAML   = "yaml"
	FormatJSON   = "json"
	FormatDump   = "dump"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	formats   = []string{FormatPretty, FormatYAML, FormatJSON, FormatDump}
	colors    = []string{ColorAuto, ColorAlways, ColorNever}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Config holds all settings.
type Config struct {
	Jobs             int      `toml:"jobs"`
	CacheSize        int      `toml:"cache_size"`
	DiskCache        bool     `toml:"disk_cache"`
	CacheDir         string   `toml:"cache_dir"`
	Format           string   `toml:"format"`
	Color            string   `toml:"color"`
	Strict           bool     `toml:"strict"`
	WarningsAsErrors bool     `toml:"warnings_as_errors"`
	Include          []string `toml:"include"`
	Exclude          []string `toml:"exclude"`
	LogLevel         string   `toml:"log_level"`
}

// Sources names the files Load reads. Empty names select the defaults,
// which may be absent. Explicitly named files must exist.
type Sources struct {
	File    string
	EnvFile string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		CacheSize: 1024,
		Format:    FormatPretty,
		Color:     ColorAuto,
		LogLevel:  "warn",
	}
}

// Load builds a Config from the given sources.
func Load(src Sources) (*Config, error) {
	cfg := Default()

	if err := loadFile(cfg, src.File); err != nil {
		return nil, err
	}

	if err := loadEnvFile(src.EnvFile); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		key := undecoded[0].String()
		msg := fmt.Sprintf("config %s: unknown key %q", path, key)

		if s := naming.Suggest(key, knownKeys(), 1); len(s) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", s[0])
		}

		return errors.New(msg)
	}

	// Naming a cache directory turns the disk cache on unless the file
	// says otherwise.
	if meta.IsDefined("cache_dir") && !meta.IsDefined("disk_cache") {
		cfg.DiskCache = true
	}

	return nil
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("env file %s: %w", path, err)
	}

	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok
	}

	ints := map[string]*int{"JOBS": &cfg.Jobs, "CACHE_SIZE": &cfg.CacheSize}
	for key, dst := range ints {
		if v, ok := get(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}

			*dst = n
		}
	}

	bools := map[string]*bool{
		"DISK_CACHE":         &cfg.DiskCache,
		"STRICT":             &cfg.Strict,
		"WARNINGS_AS_ERRORS": &cfg.WarningsAsErrors,
	}
	for key, dst := range bools {
		if v, ok := get(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}

			*dst = b
		}
	}

	strs := map[string]*string{
		"CACHE_DIR": &cfg.CacheDir,
		"FORMAT":    &cfg.Format,
		"COLOR":     &cfg.Color,
		"LOG_LEVEL": &cfg.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := get(key); ok {
			*dst = v
		}
	}

	lists := map[string]*[]string{"INCLUDE": &cfg.Include, "EXCLUDE": &cfg.Exclude}
	for key, dst := range lists {
		if v, ok := get(key); ok {
			*dst = SplitList(v)
		}
	}

	return nil
}

// SplitList splits a comma-separated list, dropping empty items.
func SplitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}

	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0, got %d", c.CacheSize)
	}

	if err := oneOf("format", c.Format, formats); err != nil {
		return err
	}

	if err := oneOf("color", c.Color, colors); err != nil {
		return err
	}

	return oneOf("log_level", strings.ToLower(c.LogLevel), logLevels)
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func oneOf(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}

	msg := fmt.Sprintf("%s: unknown value %q (want one of %s)", key, value, strings.Join(allowed, ", "))
	if s := naming.Suggest(value, allowed, 1); len(s) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", s[0])
	}

	return errors.New(msg)
}

func knownKeys() []string {
	return []string{
		"jobs", "cache_size", "disk_cache", "cache_dir", "format", "color",
		"strict", "warnings_as_errors", "include", "exclude", "log_level",
	}
}
