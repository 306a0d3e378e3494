package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, applies defaults and resolves the model
// API credential from the environment variable named by llm.api_key_env.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.LLM.APIKeys = splitKeys(os.Getenv(cfg.LLM.APIKeyEnv))
	return &cfg, nil
}

// Default returns a validated config without reading a file.
func Default() *Config {
	var cfg Config
	_ = cfg.Validate()
	cfg.LLM.APIKeys = splitKeys(os.Getenv(cfg.LLM.APIKeyEnv))
	return &cfg
}

// RequireAPIKey reports an error when no credential was found.
func (c *Config) RequireAPIKey() error {
	if len(c.LLM.APIKeys) == 0 {
		return fmt.Errorf("%s is not set", c.LLM.APIKeyEnv)
	}
	return nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
