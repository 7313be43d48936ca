package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "input/Part I.xlsx", cfg.Input.Part1)
	assert.Equal(t, "input/Part V.xlsx", cfg.Input.Part5)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.InDelta(t, 92, cfg.Pipeline.FuzzyThreshold, 1e-9)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadNoFileUsesDefaults(t *testing.T) {
	// Run from a directory without a config.yaml.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
input:
  part1: data/handbook_part1.xlsx
pipeline:
  workers: 8
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/handbook_part1.xlsx", cfg.Input.Part1)
	assert.Equal(t, "input/Part V.xlsx", cfg.Input.Part5, "unset keys keep defaults")
	assert.Equal(t, 8, cfg.Pipeline.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  dir: from_file\n"), 0644))

	t.Setenv("IRDA_OUTPUT_DIR", "from_env")
	t.Setenv("IRDA_PIPELINE_WORKERS", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Output.Dir)
	assert.Equal(t, 2, cfg.Pipeline.Workers)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "negative workers", yaml: "pipeline:\n  workers: -1\n"},
		{name: "threshold too high", yaml: "pipeline:\n  fuzzy_threshold: 150\n"},
		{name: "empty input", yaml: "input:\n  part1: \"\"\n"},
		{name: "malformed yaml", yaml: "input: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
