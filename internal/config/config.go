package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds dlclint configuration.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Checks    ChecksConfig    `yaml:"checks"`
	Output    OutputConfig    `yaml:"output"`
}

type GeneratorConfig struct {
	Model       string  `yaml:"model"`       // provider:model, e.g. "anthropic:claude-sonnet-4-6"
	Temperature float64 `yaml:"temperature"` // 0.0–1.0
	MaxTokens   int     `yaml:"max_tokens"`
}

type ChecksConfig struct {
	// Disabled lists check IDs to skip, e.g. "CHK-ADDRESS-FORMAT".
	Disabled []string `yaml:"disabled"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // json | md
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Model:       "anthropic:claude-sonnet-4-6",
			Temperature: 0.2,
			MaxTokens:   8192,
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}

func applyDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.Generator.Model == "" {
		cfg.Generator.Model = def.Generator.Model
	}
	if cfg.Generator.MaxTokens == 0 {
		cfg.Generator.MaxTokens = def.Generator.MaxTokens
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
}
