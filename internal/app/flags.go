package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gol-duel/internal/core"
	"gol-duel/internal/patterns"
)

// PatternRandom selects a random fill instead of a named pattern.
const PatternRandom = "random"

// Config represents the command-line parameters for the application.
type Config struct {
	File string `json:"-"`

	Sim         string  `json:"sim"`
	Scale       int     `json:"scale"`
	TPS         int     `json:"tps"`
	Seed        int64   `json:"seed"`
	Interval    float64 `json:"interval"`
	Workers     int     `json:"workers"`
	Budget      int     `json:"budget"`
	Radius      int     `json:"radius"`
	Pattern     string  `json:"pattern"`
	Generations int     `json:"generations"`
	Log         string  `json:"log"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "life",
		Scale:       6,
		TPS:         60,
		Seed:        42,
		Interval:    0.1,
		Budget:      50,
		Radius:      20,
		Pattern:     "Pentomino-R",
		Generations: 200,
		Log:         "dev",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file; flags override it")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life or duel)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the GUI loop")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Interval, "interval", c.Interval, "seconds between generations")
	fs.IntVar(&c.Workers, "workers", c.Workers, "evaluation workers (0 = one per CPU)")
	fs.IntVar(&c.Budget, "budget", c.Budget, "cells each player may place before the start")
	fs.IntVar(&c.Radius, "radius", c.Radius, "half-width of the square used by random fills")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern name, pattern file, or \"random\"")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generation limit for headless runs (0 = unlimited)")
	fs.StringVar(&c.Log, "log", c.Log, "logger: dev, prod or none")
}

// LoadConfig loads configuration from a JSON file on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	config.File = filename

	return config, nil
}

// Parse builds a Config from command-line arguments. When -config names a
// file it is loaded first and the flags are applied again on top of it.
func Parse(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Parse] invalid flags")
	}
	if cfg.File == "" {
		return cfg, nil
	}

	fileCfg, err := LoadConfig(cfg.File)
	if err != nil {
		return nil, err
	}
	over := flag.NewFlagSet(name, flag.ContinueOnError)
	fileCfg.Bind(over)
	if err := over.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Parse] invalid flags")
	}
	return fileCfg, nil
}

// SimOptions converts the engine-related settings into a factory map.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"interval": strconv.FormatFloat(c.Interval, 'f', -1, 64),
		"budget":   strconv.Itoa(c.Budget),
		"radius":   strconv.Itoa(c.Radius),
	}
	if c.Workers > 0 {
		opts["workers"] = strconv.Itoa(c.Workers)
	}
	return opts
}

// NewSim builds the configured engine from the registry.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, errors.Errorf("[NewSim] unknown sim %q", c.Sim)
	}
	return factory(c.SimOptions()), nil
}

// InitialPattern resolves the -pattern setting to a built-in pattern or a
// pattern file. It reports ok=false for PatternRandom.
func (c *Config) InitialPattern() (p core.Pattern, ok bool, err error) {
	if strings.EqualFold(c.Pattern, PatternRandom) {
		return core.Pattern{}, false, nil
	}
	if p, found := patterns.ByName(c.Pattern); found {
		return p, true, nil
	}
	p, err = patterns.Load(c.Pattern)
	if err != nil {
		return core.Pattern{}, false, errors.Wrapf(err, "[InitialPattern] %q is neither a built-in pattern nor a readable file", c.Pattern)
	}
	return p, true, nil
}

// Logger builds the logger selected by -log.
func (c *Config) Logger() (*zap.Logger, error) {
	switch strings.ToLower(c.Log) {
	case "", "dev", "development":
		return zap.NewDevelopment()
	case "prod", "production":
		return zap.NewProduction()
	case "none", "off":
		return zap.NewNop(), nil
	default:
		return nil, errors.Errorf("[Logger] unknown logger %q", c.Log)
	}
}
