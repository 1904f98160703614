package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	AI          AIConfig          `yaml:"ai"`
	Summary     SummaryConfig     `yaml:"summary"`
	Paths       PathsConfig       `yaml:"paths"`
	Cleanup     CleanupConfig     `yaml:"cleanup"`
	Limits      LimitsConfig      `yaml:"limits"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type AIConfig struct {
	Provider             string   `yaml:"provider"`
	APIKey               string   `yaml:"api_key"`
	BaseURL              string   `yaml:"base_url"`
	Model                string   `yaml:"model"`
	MaxTokens            int      `yaml:"max_tokens"`
	Temperature          *float32 `yaml:"temperature"`
	KeyPointsMaxTokens   int      `yaml:"key_points_max_tokens"`
	KeyPointsTemperature *float32 `yaml:"key_points_temperature"`
}

// SummaryConfig holds the defaults used when a caller does not choose.
type SummaryConfig struct {
	Style    string `yaml:"style"`
	Language string `yaml:"language"`
}

type PathsConfig struct {
	Upload   string `yaml:"upload"`
	Output   string `yaml:"output"`
	Inbox    string `yaml:"inbox"`
	Archived string `yaml:"archived"`
	Reports  string `yaml:"reports"`
}

type CleanupConfig struct {
	MaxAge time.Duration `yaml:"max_age"`
}

type LimitsConfig struct {
	MaxFileSize       int64    `yaml:"max_file_size"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	DefaultTemperature          float32 = 0.7
	DefaultKeyPointsTemperature float32 = 0.5
)

// SummaryTemperature returns the configured sampling temperature. An explicit
// 0 is kept.
func (a AIConfig) SummaryTemperature() float32 {
	if a.Temperature == nil {
		return DefaultTemperature
	}
	return *a.Temperature
}

// KeyPointsTemp returns the sampling temperature for key point extraction.
func (a AIConfig) KeyPointsTemp() float32 {
	if a.KeyPointsTemperature == nil {
		return DefaultKeyPointsTemperature
	}
	return *a.KeyPointsTemperature
}

func float32Ptr(v float32) *float32 {
	return &v
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate checks the configuration and fills in defaults for unset values.
func (c *Config) Validate() error {
	c.AI.Provider = strings.ToLower(strings.TrimSpace(c.AI.Provider))
	if c.AI.Provider == "" {
		c.AI.Provider = ProviderOpenAI
	}
	if c.AI.Provider != ProviderOpenAI && c.AI.Provider != ProviderGemini {
		return fmt.Errorf("ai.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.AI.Provider)
	}
	if c.AI.MaxTokens < 0 {
		return fmt.Errorf("ai.max_tokens must not be negative")
	}
	if c.AI.Temperature == nil {
		c.AI.Temperature = float32Ptr(DefaultTemperature)
	}
	if c.AI.KeyPointsTemperature == nil {
		c.AI.KeyPointsTemperature = float32Ptr(DefaultKeyPointsTemperature)
	}
	if t := *c.AI.Temperature; t < 0 || t > 2 {
		return fmt.Errorf("ai.temperature must be between 0 and 2")
	}
	if t := *c.AI.KeyPointsTemperature; t < 0 || t > 2 {
		return fmt.Errorf("ai.key_points_temperature must be between 0 and 2")
	}
	if c.Cleanup.MaxAge < 0 {
		return fmt.Errorf("cleanup.max_age must not be negative")
	}

	if c.AI.Model == "" {
		if c.AI.Provider == ProviderGemini {
			c.AI.Model = "gemini-2.5-flash"
		} else {
			c.AI.Model = "gpt-4.1-nano"
		}
	}
	if c.AI.MaxTokens == 0 {
		c.AI.MaxTokens = 1000
	}
	if c.AI.KeyPointsMaxTokens == 0 {
		c.AI.KeyPointsMaxTokens = 800
	}

	if c.Summary.Style == "" {
		c.Summary.Style = "comprehensive"
	}
	if c.Summary.Language == "" {
		c.Summary.Language = "en"
	}

	if c.Paths.Upload == "" {
		c.Paths.Upload = "uploads"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "outputs"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Reports == "" {
		c.Paths.Reports = "data/reports"
	}

	if c.Cleanup.MaxAge == 0 {
		c.Cleanup.MaxAge = 24 * time.Hour
	}
	if c.Limits.MaxFileSize == 0 {
		c.Limits.MaxFileSize = 16 * 1024 * 1024
	}
	if len(c.Limits.AllowedExtensions) == 0 {
		c.Limits.AllowedExtensions = []string{"pdf", "docx", "txt"}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// IsAllowedExtension reports whether ext (with or without a leading dot) is accepted.
func (c *Config) IsAllowedExtension(ext string) bool {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	for _, allowed := range c.Limits.AllowedExtensions {
		if strings.TrimPrefix(strings.ToLower(allowed), ".") == ext {
			return true
		}
	}
	return false
}
