package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, "app_files", cfg.Component)
	assert.Equal(t, "web/", cfg.SourceDir)
	assert.Equal(t, "app_files.h", cfg.Header)
	assert.Equal(t, "app_files.c", cfg.Source)
	assert.Equal(t, OnCollisionError, cfg.OnCollision)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Component: "ui", SourceDir: "site", OnCollision: OnCollisionWarn}
	ApplyDefaults(cfg)

	assert.Equal(t, "ui", cfg.Component)
	assert.Equal(t, "site", cfg.SourceDir)
	assert.Equal(t, OnCollisionWarn, cfg.OnCollision)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:      "bad collision policy",
			mutate:    func(c *Config) { c.OnCollision = "ignore" },
			wantError: "invalid on_collision policy",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "trace" },
			wantError: "invalid logging level",
		},
		{
			name:      "same output twice",
			mutate:    func(c *Config) { c.Source = c.Header },
			wantError: "must be different files",
		},
		{
			name:   "uppercase log level",
			mutate: func(c *Config) { c.Logging.Level = "DEBUG" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			ApplyDefaults(cfg)
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := strings.Join([]string{
		"component: dashboard",
		"source_dir: public/",
		"on_collision: warn",
		"logging:",
		"  level: debug",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "dashboard", cfg.Component)
	assert.Equal(t, "public/", cfg.SourceDir)
	assert.Equal(t, OnCollisionWarn, cfg.OnCollision)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Empty(t, cfg.Header)
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)

	_, err = Load(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("component: [unterminated"), 0644))

	_, err := Load(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestMerge(t *testing.T) {
	cfg := Config{Component: "a", SourceDir: "web/", Logging: LoggingConfig{Level: "info"}}
	cfg.Merge(Config{SourceDir: "www/", Logging: LoggingConfig{Path: "gen.log"}})

	assert.Equal(t, "a", cfg.Component)
	assert.Equal(t, "www/", cfg.SourceDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "gen.log", cfg.Logging.Path)
}

func TestResolve(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "out.c")
	sep := string(os.PathSeparator)

	cfg := &Config{BaseDir: base, SourceDir: "web/", Header: "gen/app_files.h", Source: abs}
	Resolve(cfg)

	assert.Equal(t, filepath.Join(base, "web")+sep, cfg.SourceDir)
	assert.Equal(t, filepath.Join(base, "gen", "app_files.h"), cfg.Header)
	assert.Equal(t, abs, cfg.Source)

	cfg = &Config{BaseDir: base, SourceDir: "web"}
	Resolve(cfg)
	assert.Equal(t, filepath.Join(base, "web"), cfg.SourceDir)
}
