package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

// Config describes one sampling run.
type Config struct {
	PoolSize      int    `yaml:"pool"`
	Preview       int    `yaml:"preview"`
	Bins          int    `yaml:"bins"`
	Seed          uint64 `yaml:"seed"`
	DrawsFile     string `yaml:"draws"`
	PlotFile      string `yaml:"plot"`
	AcceptanceMap string `yaml:"acceptance_map"`
	GridCells     int    `yaml:"grid"`
	Format        string `yaml:"format"`
	Show          int    `yaml:"show"`
	Ask           bool   `yaml:"ask"`
	LogLevel      string `yaml:"log_level"`

	ConfigFile string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		PoolSize:  2000,
		Preview:   5,
		Bins:      10,
		PlotFile:  "plot.png",
		GridCells: 20,
		Format:    "text",
		Show:      20,
		LogLevel:  "info",
	}
}

// Bind registers the command line flags. Flag defaults are the current
// field values.
func (c *Config) Bind(flags *pflag.FlagSet) {
	flags.IntVar(&c.PoolSize, "pool", c.PoolSize, "number of candidate pairs to draw")
	flags.IntVar(&c.Preview, "preview", c.Preview, "size of the step by step demonstration, 0 to skip it")
	flags.IntVar(&c.Bins, "bins", c.Bins, "number of histogram bins over [0, 1]")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "seed of the random source, 0 seeds from the clock")
	flags.StringVar(&c.DrawsFile, "draws", c.DrawsFile, "file with fixed uniform draws to use instead of the random source")
	flags.StringVar(&c.PlotFile, "plot", c.PlotFile, "histogram chart file (.png, .jpg or .pdf), empty to skip")
	flags.StringVar(&c.AcceptanceMap, "acceptance-map", c.AcceptanceMap, "acceptance heat map file, empty to skip")
	flags.IntVar(&c.GridCells, "grid", c.GridCells, "cells per side of the acceptance map")
	flags.StringVar(&c.Format, "format", c.Format, "report format: text, csv or json")
	flags.IntVar(&c.Show, "show", c.Show, "number of accepted values echoed in the report")
	flags.BoolVar(&c.Ask, "ask", c.Ask, "ask for an integer on standard input during the preview")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file with run settings, explicit flags take precedence")
}

// LoadFile reads settings from a YAML file. Flags that were set
// explicitly on the command line keep their values.
func (c *Config) LoadFile(path string, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read config file")
	}

	changed := map[string]string{}
	if flags != nil {
		flags.Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}

	for name, value := range changed {
		if err := flags.Set(name, value); err != nil {
			return errors.Wrapf(err, "restoring flag --%s", name)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.Bins <= 0:
		return errors.Wrapf(ErrInvalid, "bins must be positive, got %d", c.Bins)
	case c.GridCells <= 0:
		return errors.Wrapf(ErrInvalid, "grid must be positive, got %d", c.GridCells)
	case c.Preview < 0:
		return errors.Wrapf(ErrInvalid, "preview must not be negative, got %d", c.Preview)
	case c.Show < 0:
		return errors.Wrapf(ErrInvalid, "show must not be negative, got %d", c.Show)
	case c.Format != "text" && c.Format != "csv" && c.Format != "json":
		return errors.Wrapf(ErrInvalid, "unknown format %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return errors.Wrapf(ErrInvalid, "unknown log level %q", c.LogLevel)
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

// DrawsNeeded is the number of uniform draws one run consumes.
func (c *Config) DrawsNeeded() int {
	return 2*max(c.Preview, 0) + 2*max(c.PoolSize, 0)
}

func (c *Config) ToString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pool size:      %d\n", c.PoolSize)
	fmt.Fprintf(&b, "preview size:   %d\n", c.Preview)
	fmt.Fprintf(&b, "bins:           %d\n", c.Bins)
	if c.DrawsFile != "" {
		fmt.Fprintf(&b, "draws file:     %s\n", c.DrawsFile)
	} else {
		fmt.Fprintf(&b, "seed:           %d\n", c.Seed)
	}
	fmt.Fprintf(&b, "plot file:      %s\n", c.PlotFile)
	fmt.Fprintf(&b, "acceptance map: %s (%dx%d)\n", c.AcceptanceMap, c.GridCells, c.GridCells)
	fmt.Fprintf(&b, "format:         %s\n", c.Format)
	fmt.Fprintf(&b, "show:           %d\n", c.Show)
	fmt.Fprintf(&b, "ask:            %t\n", c.Ask)
	fmt.Fprintf(&b, "log level:      %s\n", c.LogLevel)
	fmt.Fprintf(&b, "config file:    %s", c.ConfigFile)
	return b.String()
}
