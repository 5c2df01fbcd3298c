package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"reset-bridger/internal/cache"
	"reset-bridger/internal/config"
	"reset-bridger/internal/driver"
	"reset-bridger/internal/render"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath string
	envFile    string
	format     string
	color      string
	verbose    bool
	jobs       int
	include    []string
	exclude    []string
	diskCache  bool
	cacheDir   string
	strict     bool
	werror     bool
	output     string
}

func (o *globalOptions) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	f.StringVar(&o.envFile, "env-file", "", "dotenv file (default "+config.DefaultEnvFile+" if present)")
	f.StringVar(&o.format, "format", config.FormatPretty, "output format (pretty|yaml|json|dump)")
	f.StringVar(&o.color, "color", config.ColorAuto, "colorize output (auto|always|never)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log debug events to stderr")
	f.IntVarP(&o.jobs, "jobs", "j", 0, "parallel projections (0 = GOMAXPROCS)")
	f.StringSliceVar(&o.include, "include", nil, "only report classes matching these globs")
	f.StringSliceVar(&o.exclude, "exclude", nil, "skip classes matching these globs")
	f.BoolVar(&o.diskCache, "disk-cache", false, "persist projections in the disk cache")
	f.StringVar(&o.cacheDir, "cache-dir", "", "disk cache directory (default $XDG_CACHE_HOME/reset-bridger)")
	f.BoolVar(&o.strict, "strict", false, "fail when projections report errors")
	f.BoolVar(&o.werror, "warnings-as-errors", false, "fail on warnings too")
	f.StringVarP(&o.output, "output", "o", "", "write the result to this file instead of stdout")
}

// settings is the resolved configuration of one command run.
type settings struct {
	cfg    *config.Config
	logger *slog.Logger
	color  bool
}

// load resolves config sources, then applies the flags the user set.
func (o *globalOptions) load(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.Load(config.Sources{File: o.configPath, EnvFile: o.envFile})
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("format") {
		cfg.Format = o.format
	}

	if flags.Changed("color") {
		cfg.Color = o.color
	}

	if flags.Changed("jobs") {
		cfg.Jobs = o.jobs
	}

	if flags.Changed("include") {
		cfg.Include = o.include
	}

	if flags.Changed("exclude") {
		cfg.Exclude = o.exclude
	}

	if flags.Changed("disk-cache") {
		cfg.DiskCache = o.diskCache
	}

	if flags.Changed("cache-dir") {
		cfg.CacheDir = o.cacheDir
		cfg.DiskCache = cfg.DiskCache || !flags.Changed("disk-cache")
	}

	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}

	if flags.Changed("warnings-as-errors") {
		cfg.WarningsAsErrors = o.werror
	}

	if o.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	colored := render.UseColor(cfg.Color, stdoutFile(cmd))
	if o.output != "" && o.output != "-" {
		colored = cfg.Color == config.ColorAlways
	}

	return &settings{cfg: cfg, logger: logger, color: colored}, nil
}

// stdoutFile returns the command output when it is an *os.File.
func stdoutFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)
	return f
}

func (s *settings) driverOptions() (driver.Options, error) {
	filter, err := driver.NewFilter(s.cfg.Include, s.cfg.Exclude)
	if err != nil {
		return driver.Options{}, err
	}

	var disk *cache.DiskCache
	if s.cfg.DiskCache {
		disk, err = cache.OpenDiskCache(s.cfg.CacheDir)
		if err != nil {
			return driver.Options{}, err
		}

		s.logger.Debug("disk cache enabled", "dir", disk.Dir())
	}

	c, err := cache.New(s.cfg.CacheSize, disk)
	if err != nil {
		return driver.Options{}, err
	}

	return driver.Options{
		Jobs:   s.cfg.Jobs,
		Filter: filter,
		Cache:  c,
		Logger: s.logger,
	}, nil
}

func (s *settings) renderOptions() render.Options {
	return render.Options{Format: s.cfg.Format, Color: s.color}
}

// openOutput returns the destination for results and a function closing it.
func (o *globalOptions) openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if o.output == "" || o.output == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(o.output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, f.Close, nil
}
