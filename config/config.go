// Package config loads the command's YAML settings.
//
// A file is optional: Default gives a working configuration and Load only
// overrides the keys the file sets.
//
//	input_dir: inputs
//	log_level: info
//	inputs:
//	  16: /tmp/valves.txt
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no path is given.
const DefaultPath = "aoc.yaml"

// Sentinel errors for Validate.
var (
	// ErrBadLogLevel indicates an unknown log_level.
	ErrBadLogLevel = errors.New("config: bad log level")
	// ErrBadInput indicates an override for a day outside 1..25 or an empty path.
	ErrBadInput = errors.New("config: bad input override")
)

// Config is the command's settings.
type Config struct {
	InputDir string         `yaml:"input_dir"`
	LogLevel string         `yaml:"log_level"`
	Inputs   map[int]string `yaml:"inputs"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{InputDir: "inputs", LogLevel: "info"}
}

// Load reads path over Default. An empty path means DefaultPath, which may
// be absent; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the log level and every per-day override.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	for day, p := range c.Inputs {
		if day < 1 || day > 25 {
			return fmt.Errorf("%w: day %d", ErrBadInput, day)
		}
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: empty path for day %d", ErrBadInput, day)
		}
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return l, nil
}

// InputPath returns the override for day, else <input_dir>/dayNN.txt.
func (c Config) InputPath(day int) string {
	if p, ok := c.Inputs[day]; ok {
		return p
	}

	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}
