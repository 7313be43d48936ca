package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration: defaults, overlaid by
// an optional YAML file, overlaid by IRDA_-prefixed environment variables.
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig locates the two source workbooks.
type InputConfig struct {
	Part1 string `yaml:"part1" envconfig:"PART1"`
	Part5 string `yaml:"part5" envconfig:"PART5"`
}

// OutputConfig locates the artifact directory.
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR"`
}

// PipelineConfig tunes extraction.
type PipelineConfig struct {
	Workers        int     `yaml:"workers" envconfig:"WORKERS"`
	FuzzyThreshold float64 `yaml:"fuzzy_threshold" envconfig:"FUZZY_THRESHOLD"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			Part1: "input/Part I.xlsx",
			Part5: "input/Part V.xlsx",
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Pipeline: PipelineConfig{
			Workers:        4,
			FuzzyThreshold: 92,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/etl.log",
		},
	}
}

// Load builds the effective configuration. configFile may be "" to skip
// the file layer; a named file that does not exist is an error, while the
// default "config.yaml" is optional.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	explicit := configFile != ""
	if !explicit {
		configFile = "config.yaml"
	}
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if err := envconfig.Process("IRDA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Input.Part1 == "" || c.Input.Part5 == "" {
		return fmt.Errorf("both input workbook paths must be set")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output directory must be set")
	}
	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("pipeline workers must be at least 1, got %d", c.Pipeline.Workers)
	}
	if c.Pipeline.FuzzyThreshold <= 0 || c.Pipeline.FuzzyThreshold > 100 {
		return fmt.Errorf("fuzzy threshold must be in (0, 100], got %v", c.Pipeline.FuzzyThreshold)
	}
	return nil
}
