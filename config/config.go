// Package config holds the hillclimb CLI settings: built-in defaults,
// an optional YAML file, and validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/hillclimb"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of CLI settings.
type Config struct {
	// Input is the height map path; "-" reads stdin, empty uses the built-in sample.
	Input string `yaml:"input"`
	// Workers bounds concurrent searches for the scenic query.
	Workers int `yaml:"workers"`
	// Frontier is "dijkstra" or "bfs".
	Frontier string `yaml:"frontier"`
	// Render prints the map and the shortest route before the answers.
	Render bool `yaml:"render"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when neither file nor flags say otherwise.
func Default() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		Frontier: hillclimb.FrontierDijkstra.String(),
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads a YAML file over the defaults and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode is Load over an io.Reader. An empty document yields the defaults.
func Decode(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := hillclimb.ParseFrontier(c.Frontier); err != nil {
		return fmt.Errorf("%w: frontier: %v", ErrInvalidConfig, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level; call Validate first.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// SolverOptions translates the settings into hillclimb options.
func (c Config) SolverOptions(log logrus.FieldLogger) ([]hillclimb.Option, error) {
	f, err := hillclimb.ParseFrontier(c.Frontier)
	if err != nil {
		return nil, err
	}
	return []hillclimb.Option{
		hillclimb.WithWorkers(c.Workers),
		hillclimb.WithFrontier(f),
		hillclimb.WithLogger(log),
	}, nil
}

// Fields renders the settings for structured logging.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"input":     c.Input,
		"workers":   c.Workers,
		"frontier":  c.Frontier,
		"render":    c.Render,
		"log_level": c.LogLevel,
	}
}
