package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Generator.Model) == "" {
		return errors.New("generator.model must be set")
	}
	if !strings.Contains(cfg.Generator.Model, ":") {
		return fmt.Errorf("generator.model %q must use provider:model form", cfg.Generator.Model)
	}
	if cfg.Generator.Temperature < 0 || cfg.Generator.Temperature > 1 {
		return fmt.Errorf("generator.temperature %v out of range [0, 1]", cfg.Generator.Temperature)
	}
	if cfg.Generator.MaxTokens < 0 {
		return fmt.Errorf("generator.max_tokens %d must be non-negative", cfg.Generator.MaxTokens)
	}

	for _, id := range cfg.Checks.Disabled {
		if !strings.HasPrefix(id, "CHK-") {
			return fmt.Errorf("checks.disabled entry %q is not a check ID", id)
		}
	}

	switch cfg.Output.Format {
	case "json", "md":
	default:
		return fmt.Errorf("output.format must be json or md, got %q", cfg.Output.Format)
	}

	return nil
}
