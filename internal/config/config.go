package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the base directory when no
// explicit path is given.
const FileName = "appfiles.yaml"

const (
	DefaultComponent = "app_files"
	DefaultSourceDir = "web/"
	DefaultHeader    = "app_files.h"
	DefaultSource    = "app_files.c"
)

// Collision policies.
const (
	OnCollisionError = "error"
	OnCollisionWarn  = "warn"
)

// Config describes one generation run. Relative paths are resolved against
// BaseDir, not the process working directory.
type Config struct {
	// Component is the logical component name used in symbol names.
	Component string `yaml:"component"`
	// SourceDir is the directory of static assets to embed.
	SourceDir string `yaml:"source_dir"`
	// Header is the path of the generated declarations file.
	Header string `yaml:"header"`
	// Source is the path of the generated definitions file.
	Source string `yaml:"source"`
	// BaseDir anchors relative paths. Empty means the executable's directory.
	BaseDir string `yaml:"base_dir"`
	// OnCollision selects what happens when two files share a symbol name.
	OnCollision string `yaml:"on_collision"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Load reads a YAML config file.
//
// If optional is true a missing file is not an error and yields an empty
// Config.
func Load(path string, optional bool) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays every non-empty field of override onto c.
func (c *Config) Merge(override Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Component, override.Component)
	set(&c.SourceDir, override.SourceDir)
	set(&c.Header, override.Header)
	set(&c.Source, override.Source)
	set(&c.BaseDir, override.BaseDir)
	set(&c.OnCollision, override.OnCollision)
	set(&c.Logging.Level, override.Logging.Level)
	set(&c.Logging.Path, override.Logging.Path)
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Component == "" {
		config.Component = DefaultComponent
	}
	if config.SourceDir == "" {
		config.SourceDir = DefaultSourceDir
	}
	if config.Header == "" {
		config.Header = DefaultHeader
	}
	if config.Source == "" {
		config.Source = DefaultSource
	}
	if config.OnCollision == "" {
		config.OnCollision = OnCollisionError
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks the configuration for values the generator cannot use.
func Validate(config *Config) error {
	if config.Component == "" {
		return fmt.Errorf("component name must not be empty")
	}

	switch config.OnCollision {
	case OnCollisionError, OnCollisionWarn:
		// ok
	default:
		return fmt.Errorf("invalid on_collision policy: %s (allowed: %s, %s)", config.OnCollision, OnCollisionError, OnCollisionWarn)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	if config.Header != "" && config.Header == config.Source {
		return fmt.Errorf("header and source must be different files (both %s)", config.Header)
	}

	return nil
}

// Resolve makes SourceDir, Header and Source absolute against BaseDir.
// A trailing separator on SourceDir is kept, since it changes how symbol
// names are rooted.
func Resolve(config *Config) {
	config.SourceDir = resolvePath(config.BaseDir, config.SourceDir)
	config.Header = resolvePath(config.BaseDir, config.Header)
	config.Source = resolvePath(config.BaseDir, config.Source)
}

func resolvePath(base, p string) string {
	if p == "" {
		return p
	}
	trailing := os.IsPathSeparator(p[len(p)-1]) || strings.HasSuffix(p, "/")
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	} else {
		p = filepath.Clean(p)
	}
	if trailing && !os.IsPathSeparator(p[len(p)-1]) {
		p += string(os.PathSeparator)
	}
	return p
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
