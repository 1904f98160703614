package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies environment overrides and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored.
func LoadDotEnv(files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

// ApplyEnv overrides credentials and model selection from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DOCASSIST_PROVIDER"); v != "" {
		c.AI.Provider = v
	}
	if v := os.Getenv("DOCASSIST_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" && c.AI.BaseURL == "" {
		c.AI.BaseURL = v
	}

	if c.AI.APIKey != "" {
		return
	}
	switch strings.ToLower(c.AI.Provider) {
	case ProviderGemini:
		c.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	default:
		c.AI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}
