package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dlclint.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Generator.Model == "" {
		t.Error("default generator model not set")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("default format = %q, want json", cfg.Output.Format)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := writeConfig(t, "checks:\n  disabled: [CHK-ADDRESS-FORMAT]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Checks.Disabled) != 1 || cfg.Checks.Disabled[0] != "CHK-ADDRESS-FORMAT" {
		t.Errorf("disabled = %v", cfg.Checks.Disabled)
	}
	if cfg.Generator.MaxTokens == 0 {
		t.Error("max_tokens default not applied")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "generator: [not a map\n")
	if _, err := Load(path); err == nil {
		t.Error("expected YAML error, got nil")
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty model", func(c *Config) { c.Generator.Model = "" }},
		{"no provider prefix", func(c *Config) { c.Generator.Model = "gpt-4o" }},
		{"temperature out of range", func(c *Config) { c.Generator.Temperature = 1.5 }},
		{"negative max tokens", func(c *Config) { c.Generator.MaxTokens = -1 }},
		{"bad disabled entry", func(c *Config) { c.Checks.Disabled = []string{"address"} }},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
