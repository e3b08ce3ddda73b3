package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xll-gen/appfiles-gen/internal/config"
)

// TestRunInit verifies that init writes a config file that loads back to the defaults.
func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, runInit(&out, dir, false))
	assert.Contains(t, out.String(), config.FileName)

	cfg, err := config.Load(filepath.Join(dir, config.FileName), false)
	require.NoError(t, err)

	want := &config.Config{}
	config.ApplyDefaults(want)
	assert.Equal(t, want, cfg)
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("component: keep\n"), 0644))

	err := runInit(&bytes.Buffer{}, dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "component: keep\n", string(data))

	require.NoError(t, runInit(&bytes.Buffer{}, dir, true))
	cfg, err := config.Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultComponent, cfg.Component)
}

// TestRunInit_ThenGenerate checks the starter config drives a full run.
func TestRunInit_ThenGenerate(t *testing.T) {
	base := newProject(t, "index.html")
	require.NoError(t, runInit(&bytes.Buffer{}, base, false))

	out, _, err := run(t, nil, generateFlags{baseDir: base})
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 1 symbols")
}
