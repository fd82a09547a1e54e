// Package config loads runtime configuration from YAML.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/value-runtime/errors"
)

const (
	DefaultMaxActionName = 64
	DefaultLogLevel      = "warn"
)

// Config is the file form of the runtime options.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Libraries are opened at startup and exposed as named handles.
	Libraries []Library `yaml:"libraries"`
	// MemoryLimit bounds the elements held by string values. Zero means
	// unlimited.
	MemoryLimit int `yaml:"memory_limit"`
	// MaxActionName bounds the names accepted by action lookup.
	MaxActionName int `yaml:"max_action_name"`
	// StrictIndex reports procedure index failures instead of answering
	// with the illegal action.
	StrictIndex bool `yaml:"strict_index"`
}

// Library names a WebAssembly module to load.
type Library struct {
	Name             string `yaml:"name"`
	Path             string `yaml:"path"`
	MemoryLimitPages uint32 `yaml:"memory_limit_pages"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		MaxActionName: DefaultMaxActionName,
	}
}

// Load reads and validates the configuration at path. Relative library
// paths are resolved against the directory of the file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "open "+path)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	for i := range cfg.Libraries {
		if p := cfg.Libraries[i].Path; p != "" && !filepath.IsAbs(p) {
			cfg.Libraries[i].Path = filepath.Join(dir, p)
		}
	}
	return cfg, nil
}

// Parse decodes a configuration document. Unknown fields are rejected and
// omitted fields keep their defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var err error
	if c.MemoryLimit < 0 {
		err = multierr.Append(err, invalid("memory_limit must not be negative, got %d", c.MemoryLimit))
	}
	if c.MaxActionName <= 0 {
		err = multierr.Append(err, invalid("max_action_name must be positive, got %d", c.MaxActionName))
	}
	if _, lerr := zapcore.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, invalid("log_level %q is not a level", c.LogLevel))
	}
	seen := make(map[string]bool, len(c.Libraries))
	for i, lib := range c.Libraries {
		switch {
		case lib.Name == "":
			err = multierr.Append(err, invalid("libraries[%d] has no name", i))
		case seen[lib.Name]:
			err = multierr.Append(err, invalid("library %q declared twice", lib.Name))
		}
		if lib.Path == "" {
			err = multierr.Append(err, invalid("libraries[%d] has no path", i))
		}
		seen[lib.Name] = true
	}
	return err
}

// Level returns the configured log level, or warn when it does not parse.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return lvl
}

func invalid(format string, args ...any) error {
	return errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf(format, args...))
}
