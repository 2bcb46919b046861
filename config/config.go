package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SelectorConfig lists the class names that may carry each product field
// in the target site's markup
type SelectorConfig struct {
	Container []string `yaml:"container"`
	Name      []string `yaml:"name"`
	Price     []string `yaml:"price"`
}

// Config describes the scraping target: which addresses to try, how the
// markup is shaped, and which keywords identify eyewear products
type Config struct {
	URLs           []string       `yaml:"urls"`
	TimeoutSeconds int            `yaml:"timeout_seconds"`
	Selectors      SelectorConfig `yaml:"selectors"`
	Keywords       []string       `yaml:"keywords"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a default configuration. Selector and keyword
// lists are left empty here; the parser and filter supply their own
// defaults for empty sets.
func DefaultConfig() *Config {
	return &Config{
		URLs: []string{
			"https://www.zerezes.com.br",
			"https://zerezes.com.br",
			"https://www.zerezes.com",
		},
		TimeoutSeconds: 10,
	}
}

// Timeout returns the per-attempt fetch timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
